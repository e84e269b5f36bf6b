package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "shakemh",
	Short: "Self-describing SHAKE digests",
	Long: `shakemh computes and decodes multihashes of the SHAKE-128
and SHAKE-256 extendable-output functions.

A multihash is the digest prefixed by the multicodec of the hash
function (0x18 for SHAKE-128, 0x19 for SHAKE-256) and the digest
length, both as unsigned varints. For example:

	echo -n hello | shakemh digest --code shake-128-48

returns the SHAKE-128 multihash with 48 bytes of digest.
`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	w = &plainOutput{device: os.Stdout}
	log = newLogger(os.Stderr)
	stdin = os.Stdin

	cobra.OnInitialize(configureLogger)

	f := rootCmd.PersistentFlags()
	f.BoolVar(&argConfigOutput, `config`, false, `only prints the configuration and terminates`)
	f.BoolVar(&argJSONOutput, `json`, false, `return output as JSON, not as plain text`)
	f.BoolVarP(&argVerbose, `verbose`, `v`, false, `log debug messages to stderr`)
}

// cli runs the command line given by args and returns the exit code
func cli(args []string, in io.Reader, out, errOut io.Writer) int {
	w = &plainOutput{device: out}
	log = newLogger(errOut)
	stdin = in
	exitCode, cmdError = exitOK, nil

	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	if err := rootCmd.Execute(); err != nil {
		log.WithField(`exitcode`, exitUsage).Error(err)
		return exitUsage
	}

	if cmdError != nil {
		if exitCode == exitOK {
			exitCode = 1
		}
		log.WithField(`exitcode`, exitCode).Error(cmdError)
	}
	return exitCode
}

func main() {
	os.Exit(cli(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
