package main

import (
	"fmt"

	v1 "github.com/DougAnderson444/shake-multihash/v1"
	"github.com/spf13/cobra"
)

// VersionCommand defines the CLI command parameters
type VersionCommand struct {
	ConfigOutput bool `json:"config"`
	JSONOutput   bool `json:"json"`
	Help         bool `json:"help"`
}

// VersionJSONResult is a struct used to serialize JSON output
type VersionJSONResult struct {
	Version     string     `json:"version"`
	ReleaseDate string     `json:"release-date"`
	License     string     `json:"license"`
	Codes       []CodeData `json:"codes"`
	AllocSize   int        `json:"alloc-size"`
	Bugs        string     `json:"bugs"`
}

var versionCommand *VersionCommand

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "returns metadata about this implementation",
	Long: `Returns the implementation's

• version
• release date
• license name
• list of supported multihash codes
• URL to report bugs
`,
	Args: func(cmd *cobra.Command, args []string) error {
		versionCommand = new(VersionCommand)
		versionCommand.ConfigOutput = argConfigOutput
		versionCommand.JSONOutput = argJSONOutput
		versionCommand.Help = false
		return nil
	},
	// Run the version subcommand with versionCommand.
	Run: func(cmd *cobra.Command, args []string) {
		// NOTE global input variables: {w, log, versionCommand}
		exitCode, cmdError = versionCommand.Run(w, log)
		// NOTE global output variables: {exitCode, cmdError}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

const humanReadableRepresentation = `version:           %s
release date:      %s
license:           %s
multihash size:    at most %d bytes of digest
report bugs to:    %s

codes:
(* denotes default code)
`

// Run executes the CLI command version on the given parameter set,
// writes the result to Output w and errors/information messages to log.
// It returns a triple (exit code, error)
func (c *VersionCommand) Run(w Output, log Logger) (int, error) {
	if c.ConfigOutput {
		// config output is printed in JSON independent of c.JSONOutput
		if err := printJSON(w, c, false); err != nil {
			return exitIO, fmt.Errorf(configJSONErrMsg, err)
		}
		return exitOK, nil
	}

	data := VersionJSONResult{}
	data.Version = fmt.Sprintf("%d.%d.%d", v1.VERSION_MAJOR, v1.VERSION_MINOR, v1.VERSION_PATCH)
	data.ReleaseDate = v1.RELEASE_DATE
	data.License = `MIT`
	data.Codes = codeTable()
	data.AllocSize = v1.AllocSize
	data.Bugs = `https://github.com/DougAnderson444/shake-multihash/issues/`

	if c.JSONOutput {
		if err := printJSON(w, &data, true); err != nil {
			return exitIO, fmt.Errorf(resultJSONErrMsg, err)
		}
		return exitOK, nil
	}

	w.Printf(humanReadableRepresentation, data.Version, data.ReleaseDate, data.License, data.AllocSize, data.Bugs)
	for _, cd := range data.Codes {
		isDefault := ""
		if cd.Default {
			isDefault = " *"
		}
		w.Printfln("\t%s%s  0x%02x", cd.Name, isDefault, cd.Code)
	}
	return exitOK, nil
}
