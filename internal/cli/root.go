package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "comps",
	Short: "Inspect, validate and merge yum comps documents",
	Long: `comps reads the package-group metadata of RPM repositories (comps.xml),
reports problems in it, rewrites it in canonical form and merges several
documents into one.

Parsing is tolerant: unknown elements and bad values are reported as
diagnostics and the rest of the document is kept. Only malformed XML fails.

Configuration:
  comps.yaml in the working directory (or --config), overridden by the
  COMPS_OUTPUT, COMPS_STRICT and COMPS_LOCK_TIMEOUT environment variables
  (a .env file is loaded if present), overridden by flags.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  20 - Malformed comps document
  21 - Document could not be read or written
  22 - Validation failed (error diagnostics in strict mode)`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout, os.Stderr)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().String("config", "", "Path to a comps.yaml config file (default: ./comps.yaml if present)")
}

// getVerboseFlag reads the persistent verbose flag, also when a subcommand
// runs without going through rootCmd.Execute.
func getVerboseFlag(cmd *cobra.Command) bool {
	f := cmd.Flag("verbose")
	return f != nil && f.Value.String() == "true"
}

func getConfigFlag(cmd *cobra.Command) string {
	f := cmd.Flag("config")
	if f == nil {
		return ""
	}
	return f.Value.String()
}
