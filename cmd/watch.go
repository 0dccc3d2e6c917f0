// file: cmd/watch.go
// version: 1.0.0
// guid: ab2be4a9-93f8-4daa-8cc9-7e07bbfc8fd1

package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/medboxlabs/medbox-reader/internal/recognizer"
	"github.com/medboxlabs/medbox-reader/internal/watcher"
)

var watchDebounce time.Duration

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Watch a drop directory for OCR text extracts",
	Long: `Watch a directory where the OCR collaborator drops .txt extracts and run
a recognition pass on each file once writes settle.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := buildRecognizer(recognizer.WriterAnnouncer{W: cmd.OutOrStdout()})
		if err != nil {
			return err
		}

		w := watcher.New(func(path string) {
			data, err := os.ReadFile(path)
			if err != nil {
				log.Printf("[WARN] watch: read %s: %v", path, err)
				return
			}
			result, err := rec.Recognize(context.Background(), string(data), nil)
			if err != nil {
				log.Printf("[ERROR] watch: recognize %s: %v", path, err)
				return
			}
			log.Printf("[INFO] watch: %s pass %s recognized %d medication(s)",
				path, result.PassID, len(result.Recognized))
		}, watchDebounce)

		if err := w.Start(args[0]); err != nil {
			return fmt.Errorf("watch %s: %w", args[0], err)
		}
		defer w.Stop()

		fmt.Fprintf(cmd.OutOrStdout(), "Watching %s for OCR text extracts (Ctrl-C to stop)\n", args[0])

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		return nil
	},
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watcher.DefaultDebounce, "quiet period before a file is processed")
	rootCmd.AddCommand(watchCmd)
}
