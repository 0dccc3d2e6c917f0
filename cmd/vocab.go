// file: cmd/vocab.go
// version: 1.0.0
// guid: 32835d9d-9b9e-48f6-b231-640dceffedda

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/medboxlabs/medbox-reader/internal/config"
)

var listVocab bool

// vocabCmd represents the vocab command
var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Validate and inspect the reference vocabulary",
	Long: `Load the configured reference vocabulary and report whether it forms a
valid index (non-empty, unique canonical names).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := buildIndex()
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Vocabulary: %s\n", config.AppConfig.VocabPath)
		fmt.Fprintf(cmd.OutOrStdout(), "Records: %d\n", index.Len())

		if listVocab {
			for _, r := range index.Records() {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", r.CanonicalName)
			}
		}
		return nil
	},
}

func init() {
	vocabCmd.Flags().BoolVar(&listVocab, "list", false, "list every canonical name")
	rootCmd.AddCommand(vocabCmd)
}
