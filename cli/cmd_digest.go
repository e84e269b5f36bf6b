package main

import (
	"fmt"
	"io"
	"os"

	v1 "github.com/DougAnderson444/shake-multihash/v1"
	"github.com/multiformats/go-multibase"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// DigestCommand defines the CLI command parameters
type DigestCommand struct {
	Files        []string `json:"files"`
	Code         string   `json:"code"`
	Length       int      `json:"length"`
	Base         string   `json:"base"`
	ConfigOutput bool     `json:"config"`
	JSONOutput   bool     `json:"json"`
	Help         bool     `json:"help"`
	stdin        io.Reader
}

// DigestJSONResult is a struct used to serialize JSON output
type DigestJSONResult struct {
	File      string `json:"file"`
	Code      uint64 `json:"code"`
	Name      string `json:"name"`
	Family    string `json:"family"`
	Length    int    `json:"length"`
	Multihash string `json:"multihash"`
	Digest    string `json:"digest"`
}

var digestCommand *DigestCommand
var argCode string
var argLength int
var argBase string

// digestCmd represents the digest command
var digestCmd = &cobra.Command{
	Use:   "digest [file ...]",
	Short: "Give the multihash of files or stdin",
	Long: `This subcommand computes the multihash of every file given.
Without files, or with file "-", stdin is hashed. For example:

	shakemh digest --code shake-256-48 ./bin/shakemh

By default, the digest size is the fixed size of the code
(48 bytes for shake-128-48 and shake-256-48). With --length,
the SHAKE function of the code is squeezed for the given number
of bytes (at most 64) and tagged with the same multicodec.
`,
	// Args considers all arguments (in the function arguments and global variables
	// of the command line parser) with the goal to define the global DigestCommand instance
	// called digestCommand and fill it with admissible parameters to run the digest command.
	// It EITHER succeeds, fill digestCommand appropriately and returns nil.
	// OR returns an error instance and digestCommand is incomplete.
	Args: func(cmd *cobra.Command, args []string) error {
		digestCommand = new(DigestCommand)
		digestCommand.Files = args
		digestCommand.Code = argCode
		digestCommand.Length = argLength
		digestCommand.Base = argBase
		digestCommand.ConfigOutput = argConfigOutput
		digestCommand.JSONOutput = argJSONOutput
		digestCommand.Help = false
		digestCommand.stdin = stdin

		// handle environment variables
		/// SHAKEMH_CODE and SHAKEMH_BASE were already handled
		if digestCommand.Length == 0 {
			if l, ok := EnvToInt("SHAKEMH_LENGTH"); ok {
				digestCommand.Length = l
			}
		}

		// default values
		if len(digestCommand.Files) == 0 {
			digestCommand.Files = []string{`-`}
		}

		return digestCommand.Validate()
	},
	Run: func(cmd *cobra.Command, args []string) {
		// NOTE global input variables: {w, log, digestCommand}
		exitCode, cmdError = digestCommand.Run(w, log)
		// NOTE global output variables: {exitCode, cmdError}
	},
}

func init() {
	rootCmd.AddCommand(digestCmd)
	f := digestCmd.PersistentFlags()

	f.StringVarP(&argCode, `code`, `c`, EnvOr("SHAKEMH_CODE", v1.DefaultCode().Name()), `multihash code, by name or number`)
	f.IntVarP(&argLength, `length`, `l`, 0, `digest length in bytes, 0 selects the fixed length of the code`)
	f.StringVarP(&argBase, `base`, `b`, EnvOr("SHAKEMH_BASE", `base16`), `multibase encoding of the output`)
}

// Validate checks the parameters which do not depend on the input
func (c *DigestCommand) Validate() error {
	if _, err := v1.CodeFromString(c.Code); err != nil {
		return err
	}
	if c.Length < 0 || c.Length > v1.AllocSize {
		return fmt.Errorf(`expected --length between 0 and %d, is %d`, v1.AllocSize, c.Length)
	}
	if _, err := multibase.EncoderByName(c.Base); err != nil {
		return fmt.Errorf(`unknown multibase %q`, c.Base)
	}
	return nil
}

// Run executes the CLI command digest on the given parameter set,
// writes the result to Output w and errors/information messages to log.
// It returns a triple (exit code, error)
func (c *DigestCommand) Run(w Output, log Logger) (int, error) {
	if c.ConfigOutput {
		// config output is printed in JSON independent of c.JSONOutput
		if err := printJSON(w, c, false); err != nil {
			return exitIO, fmt.Errorf(configJSONErrMsg, err)
		}
		return exitOK, nil
	}

	code, err := v1.CodeFromString(c.Code)
	if err != nil {
		return exitUnsupported, err
	}
	encoder, err := multibase.EncoderByName(c.Base)
	if err != nil {
		return exitUsage, err
	}

	results := make([]DigestJSONResult, 0, len(c.Files))
	for _, file := range c.Files {
		log.Debugf(`hashing %s with %s`, file, code)

		mh, err := c.digestFile(code, file)
		if errors.Is(err, v1.ErrCapacityExceeded) {
			return exitUsage, err
		}
		if err != nil {
			return exitIO, err
		}

		// a digest of custom length has no entry in the code table
		name := code.Name()
		if c.Length != 0 {
			name = code.Family().Name()
		}
		result := DigestJSONResult{
			File:      file,
			Code:      mh.Code(),
			Name:      name,
			Family:    code.Family().Name(),
			Length:    int(mh.Size()),
			Multihash: encoder.Encode(mh.Bytes()),
			Digest:    mh.HexDigest(),
		}
		if c.JSONOutput {
			results = append(results, result)
		} else {
			w.Printfln("%s  %s", result.Multihash, result.File)
		}
	}

	if c.JSONOutput {
		if err := printJSON(w, results, false); err != nil {
			return exitIO, fmt.Errorf(resultJSONErrMsg, err)
		}
	}
	return exitOK, nil
}

// digestFile hashes the file at path or stdin for path `-`
func (c *DigestCommand) digestFile(code v1.Code, path string) (v1.Multihash, error) {
	var r io.Reader
	if path == `-` {
		r = c.stdin
	} else {
		fd, err := os.Open(path)
		if err != nil {
			return v1.Multihash{}, err
		}
		defer fd.Close()
		r = fd
	}

	if c.Length == 0 {
		return v1.DigestReader(code, r)
	}
	return code.Family().DigestReader(r, make([]byte, c.Length))
}
