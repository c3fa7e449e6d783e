package cli

import (
	"github.com/spf13/cobra"
	"github.com/subvet/subvet/internal/logging"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "subvet",
	Short: "Strict WebVTT caption checker and converter",
	Long: `Subvet reads WebVTT caption files with a strict, single-shot parser
and reports the first grammar violation with its line number and byte
offset.

Valid files can be converted to SRT.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
}
