package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/subvet/subvet/internal/webvtt"
)

var checkCmd = &cobra.Command{
	Use:   "check [vtt_file]",
	Short: "Validate a WebVTT file and report diagnostics",
	Long: `Parse a WebVTT file with the strict reader. Any grammar violation
fails the whole document and is reported with its line number and byte
offset.

Examples:
  subvet check captions.vtt
  subvet check -v captions.vtt`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	logger.Debugw("Parsing caption file", "path", path, "bytes", len(data))

	doc, err := webvtt.Parse(string(data))
	if err != nil {
		var perr *webvtt.ParseError
		if errors.As(err, &perr) {
			logger.Errorw("Invalid caption file",
				"path", path,
				"line", perr.Line,
				"offset", perr.Offset,
			)
		}
		return fmt.Errorf("invalid caption file: %w", err)
	}

	logger.Infow("Caption file is valid",
		"path", path,
		"cues", len(doc.Cues),
	)
	for _, cue := range doc.Cues {
		fmt.Printf("%.3f --> %.3f  %q\n", cue.Start, cue.End, cue.Text)
	}

	return nil
}
