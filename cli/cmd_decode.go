package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	v1 "github.com/DougAnderson444/shake-multihash/v1"
	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-multihash"
	"github.com/spf13/cobra"
)

// DecodeCommand defines the CLI command parameters
type DecodeCommand struct {
	Multihashes  []string `json:"multihashes"`
	Hex          bool     `json:"hex"`
	ConfigOutput bool     `json:"config"`
	JSONOutput   bool     `json:"json"`
	Help         bool     `json:"help"`
}

// DecodeJSONResult is a struct used to serialize JSON output
type DecodeJSONResult struct {
	Input     string `json:"input"`
	Base      string `json:"base,omitempty"`
	Code      uint64 `json:"code"`
	Name      string `json:"name"`
	Length    int    `json:"length"`
	Digest    string `json:"digest"`
	Supported bool   `json:"supported"`
}

var decodeCommand *DecodeCommand
var argHex bool

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode <multihash> [<multihash> ...]",
	Short: "Split multihashes into code, length and digest",
	Long: `This subcommand decodes multibase-encoded multihashes, for example

	shakemh decode f1814865dc5bfa15ac88bf82c8b0ad14a35e9d2293909

With --hex, the arguments are plain hexadecimal strings without
multibase prefix. Codes outside of the code table are decoded too,
but reported as unsupported.
`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf(`decode requires at least one multihash`)
		}

		decodeCommand = new(DecodeCommand)
		decodeCommand.Multihashes = args
		decodeCommand.Hex = argHex
		decodeCommand.ConfigOutput = argConfigOutput
		decodeCommand.JSONOutput = argJSONOutput
		decodeCommand.Help = false
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		// NOTE global input variables: {w, log, decodeCommand}
		exitCode, cmdError = decodeCommand.Run(w, log)
		// NOTE global output variables: {exitCode, cmdError}
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
	decodeCmd.PersistentFlags().BoolVar(&argHex, `hex`, false, `arguments are hexadecimal without multibase prefix`)
}

// Run executes the CLI command decode on the given parameter set,
// writes the result to Output w and errors/information messages to log.
// It returns a triple (exit code, error)
func (c *DecodeCommand) Run(w Output, log Logger) (int, error) {
	if c.ConfigOutput {
		// config output is printed in JSON independent of c.JSONOutput
		if err := printJSON(w, c, false); err != nil {
			return exitIO, fmt.Errorf(configJSONErrMsg, err)
		}
		return exitOK, nil
	}

	results := make([]DecodeJSONResult, 0, len(c.Multihashes))
	for _, input := range c.Multihashes {
		result, err := c.decode(input)
		if err != nil {
			return exitUsage, fmt.Errorf(`decoding %q: %s`, input, err)
		}
		log.WithField(`base`, result.Base).Debugf(`decoded %s`, input)

		if c.JSONOutput {
			results = append(results, result)
			continue
		}
		support := `supported`
		if !result.Supported {
			support = `unsupported`
		}
		w.Printfln("%s\n\tcode:   0x%x (%s, %s)\n\tlength: %d\n\tdigest: %s", result.Input, result.Code, result.Name, support, result.Length, result.Digest)
	}

	if c.JSONOutput {
		if err := printJSON(w, results, false); err != nil {
			return exitIO, fmt.Errorf(resultJSONErrMsg, err)
		}
	}
	return exitOK, nil
}

func (c *DecodeCommand) decode(input string) (DecodeJSONResult, error) {
	result := DecodeJSONResult{Input: input}

	var data []byte
	var err error
	if c.Hex {
		data, err = hex.DecodeString(strings.TrimPrefix(input, `0x`))
	} else {
		var enc multibase.Encoding
		enc, data, err = multibase.Decode(input)
		result.Base = multibase.EncodingToStr[enc]
	}
	if err != nil {
		return result, err
	}

	mh, err := v1.Parse(data)
	if err != nil {
		return result, err
	}

	result.Code = mh.Code()
	result.Length = int(mh.Size())
	result.Digest = mh.HexDigest()
	result.Name = multihash.Codes[mh.Code()]
	if result.Name == "" {
		result.Name = `unknown`
	}
	_, err = v1.CodeFromUint64(mh.Code())
	result.Supported = err == nil
	return result, nil
}
