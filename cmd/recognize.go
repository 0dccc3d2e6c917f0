// file: cmd/recognize.go
// version: 1.1.0
// guid: 210fe45d-5ca3-478d-973e-b6b0819c6907

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/medboxlabs/medbox-reader/internal/matcher"
)

var entitiesFile string

// recognizeCmd represents the recognize command
var recognizeCmd = &cobra.Command{
	Use:   "recognize [file]",
	Short: "Recognize medications in extracted text",
	Long: `Recognize medications in OCR-extracted text read from a file, or from
stdin when no file (or "-") is given. Optionally narrows tokens to named
entities supplied as a JSON file of {"text","label"} spans.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args)
		if err != nil {
			return err
		}

		var spans []matcher.EntitySpan
		if entitiesFile != "" {
			spans, err = readEntitySpans(entitiesFile)
			if err != nil {
				return err
			}
		}

		rec, err := buildRecognizer(nil)
		if err != nil {
			return err
		}

		result, err := rec.Recognize(context.Background(), text, spans)
		if err != nil {
			return err
		}

		printResult(cmd.OutOrStdout(), result.Recognized)
		return nil
	},
}

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <files...>",
	Short: "Recognize medications across multiple text files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := buildRecognizer(nil)
		if err != nil {
			return err
		}

		bar := progressbar.Default(int64(len(args)))
		combined := make(matcher.RecognizedSet)
		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			result, err := rec.Recognize(context.Background(), string(data), nil)
			if err != nil {
				return fmt.Errorf("recognize %s: %w", path, err)
			}
			for name := range result.Recognized {
				combined[name] = struct{}{}
			}
			bar.Add(1)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "\nProcessed %d files\n", len(args))
		printResult(cmd.OutOrStdout(), combined)
		return nil
	},
}

func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return string(data), nil
}

func readEntitySpans(path string) ([]matcher.EntitySpan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read entities %s: %w", path, err)
	}
	var spans []matcher.EntitySpan
	if err := json.Unmarshal(data, &spans); err != nil {
		return nil, fmt.Errorf("parse entities %s: %w", path, err)
	}
	return spans, nil
}

func printResult(w io.Writer, set matcher.RecognizedSet) {
	if len(set) == 0 {
		fmt.Fprintln(w, "No recognized medications.")
		return
	}
	fmt.Fprintln(w, "Recognized medications:")
	for _, name := range set.Names() {
		fmt.Fprintf(w, "  %s\n", name)
	}
}

func init() {
	recognizeCmd.Flags().StringVar(&entitiesFile, "entities", "", "JSON file of entity spans from an external NER collaborator")

	rootCmd.AddCommand(recognizeCmd)
	rootCmd.AddCommand(batchCmd)
}
