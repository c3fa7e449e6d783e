package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/subvet/subvet/internal/subtitle"
	"github.com/subvet/subvet/internal/webvtt"
)

var convertCmd = &cobra.Command{
	Use:   "convert [vtt_file]",
	Short: "Convert a WebVTT file to SRT",
	Long: `Parse a WebVTT file with the strict reader and write the resulting
cues as an SRT file.

The reader consumes one cue block per document; run 'subvet check' first
to see exactly what will be converted.

Examples:
  subvet convert captions.vtt
  subvet convert captions.vtt -o out/captions.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	path := args[0]
	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		outputPath = deriveOutputPath(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	doc, err := webvtt.Parse(string(data))
	if err != nil {
		return fmt.Errorf("invalid caption file: %w", err)
	}

	logger.Infow("Converting caption file",
		"input", path,
		"output", outputPath,
		"cues", len(doc.Cues),
	)

	writer, err := subtitle.NewWriter(subtitle.FormatSRT)
	if err != nil {
		return err
	}
	if err := writer.Write(subtitle.FromDocument(doc), outputPath); err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Converted successfully: %s\n", absOutput)

	return nil
}

func deriveOutputPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + ".srt"
}
