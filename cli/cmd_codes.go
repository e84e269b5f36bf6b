package main

import (
	"fmt"

	v1 "github.com/DougAnderson444/shake-multihash/v1"
	"github.com/spf13/cobra"
)

// CodesCommand defines the CLI command parameters
type CodesCommand struct {
	CheckSupport string `json:"check-support"`
	ConfigOutput bool   `json:"config"`
	JSONOutput   bool   `json:"json"`
	Help         bool   `json:"help"`
}

// CodeData contains the metadata of one entry of the code table
type CodeData struct {
	Name    string `json:"name"`
	Code    uint64 `json:"code"`
	Family  string `json:"family"`
	Size    int    `json:"size"`
	Default bool   `json:"default"`
}

// CodesJSONResult is a struct used to serialize JSON output
type CodesJSONResult struct {
	CheckSucceeded bool       `json:"check-result"`
	Codes          []CodeData `json:"codes"`
	AllocSize      int        `json:"alloc-size"`
}

var codesCommand *CodesCommand
var argCheckSupport string

// codesCmd represents the codes command
var codesCmd = &cobra.Command{
	Use:   "codes",
	Short: "List the supported multihash codes",
	Long: `Lists the code table: every multihash code with its name,
XOF family and fixed digest size. With --check-support, exit code 100
indicates that the given code (name or number) is unsupported.
`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return fmt.Errorf(`codes takes no arguments, got %d`, len(args))
		}

		codesCommand = new(CodesCommand)
		codesCommand.CheckSupport = argCheckSupport
		codesCommand.ConfigOutput = argConfigOutput
		codesCommand.JSONOutput = argJSONOutput
		codesCommand.Help = false
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		// NOTE global input variables: {w, log, codesCommand}
		exitCode, cmdError = codesCommand.Run(w, log)
		// NOTE global output variables: {exitCode, cmdError}
	},
}

func init() {
	rootCmd.AddCommand(codesCmd)
	codesCmd.PersistentFlags().StringVar(&argCheckSupport, `check-support`, ``, `exit code 100 indicates that the given code is unsupported`)
}

// Run executes the CLI command codes on the given parameter set,
// writes the result to Output w and errors/information messages to log.
// It returns a triple (exit code, error)
func (c *CodesCommand) Run(w Output, log Logger) (int, error) {
	if c.ConfigOutput {
		// config output is printed in JSON independent of c.JSONOutput
		if err := printJSON(w, c, false); err != nil {
			return exitIO, fmt.Errorf(configJSONErrMsg, err)
		}
		return exitOK, nil
	}

	data := CodesJSONResult{
		CheckSucceeded: false,
		Codes:          codeTable(),
		AllocSize:      v1.AllocSize,
	}

	if c.CheckSupport != "" {
		_, err := v1.CodeFromString(c.CheckSupport)
		data.CheckSucceeded = err == nil
		log.WithField(`code`, c.CheckSupport).Debugf(`supported: %t`, data.CheckSucceeded)
	}

	if c.JSONOutput {
		if err := printJSON(w, &data, true); err != nil {
			return exitIO, fmt.Errorf(resultJSONErrMsg, err)
		}
	} else {
		w.Println("code  name          family     size")
		for _, cd := range data.Codes {
			isDefault := ""
			if cd.Default {
				isDefault = " *"
			}
			w.Printfln("0x%02x  %-12s  %-9s  %d%s", cd.Code, cd.Name, cd.Family, cd.Size, isDefault)
		}
	}

	if c.CheckSupport != "" && !data.CheckSucceeded {
		return exitCheckFailed, nil
	}
	return exitOK, nil
}

// codeTable returns the metadata of all supported codes
func codeTable() []CodeData {
	codes := v1.Codes()
	table := make([]CodeData, 0, len(codes))
	for _, code := range codes {
		table = append(table, CodeData{
			Name:    code.Name(),
			Code:    code.Uint64(),
			Family:  code.Family().Name(),
			Size:    code.Size(),
			Default: code == v1.DefaultCode(),
		})
	}
	return table
}
