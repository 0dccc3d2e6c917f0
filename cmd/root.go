// file: cmd/root.go
// version: 1.2.0
// guid: dd61e0ab-2903-49cd-9001-9e34fb90ef44

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/medboxlabs/medbox-reader/internal/config"
	"github.com/medboxlabs/medbox-reader/internal/recognizer"
	"github.com/medboxlabs/medbox-reader/internal/vocab"
)

var cfgFile string
var vocabPath string
var vocabColumn string
var threshold int
var entityLabels []string
var workers int
var speakCommand string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "medbox-reader",
	Short: "Recognize medication names in OCR-extracted text",
	Long: `Medbox Reader matches noisy OCR-extracted text against a reference
vocabulary of medication names using fuzzy matching, and announces the
recognized set.

Image capture, OCR, and named-entity recognition are external collaborators;
this tool consumes their text and annotation output.`,
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.medbox-reader.yaml)")
	rootCmd.PersistentFlags().StringVar(&vocabPath, "vocab", "", "reference vocabulary file (.csv or .yaml)")
	rootCmd.PersistentFlags().StringVar(&vocabColumn, "vocab-column", "Molecule", "CSV column holding medication names")
	rootCmd.PersistentFlags().IntVar(&threshold, "threshold", 85, "acceptance threshold in [0,100], inclusive")
	rootCmd.PersistentFlags().StringSliceVar(&entityLabels, "labels", []string{"ORG", "PRODUCT"}, "entity labels accepted by the entity filter")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 1, "number of parallel matching workers")
	rootCmd.PersistentFlags().StringVar(&speakCommand, "speak-cmd", "", "external text-to-speech command for announcements (e.g. espeak)")

	viper.BindPFlag("vocab_path", rootCmd.PersistentFlags().Lookup("vocab"))
	viper.BindPFlag("vocab_column", rootCmd.PersistentFlags().Lookup("vocab-column"))
	viper.BindPFlag("threshold", rootCmd.PersistentFlags().Lookup("threshold"))
	viper.BindPFlag("entity_labels", rootCmd.PersistentFlags().Lookup("labels"))
	viper.BindPFlag("workers", rootCmd.PersistentFlags().Lookup("workers"))
	viper.BindPFlag("speak_command", rootCmd.PersistentFlags().Lookup("speak-cmd"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".medbox-reader")
	}

	viper.SetEnvPrefix("MEDBOX")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}

	config.InitConfig()
}

// buildIndex loads and validates the configured reference vocabulary.
func buildIndex() (*vocab.Index, error) {
	if config.AppConfig.VocabPath == "" {
		return nil, fmt.Errorf("reference vocabulary not specified (--vocab)")
	}
	records, err := vocab.Load(config.AppConfig.VocabPath, config.AppConfig.VocabColumn)
	if err != nil {
		return nil, err
	}
	index, err := vocab.BuildIndex(records)
	if err != nil {
		return nil, fmt.Errorf("invalid reference vocabulary %s: %w", config.AppConfig.VocabPath, err)
	}
	return index, nil
}

// buildRecognizer assembles the pipeline from the active configuration.
func buildRecognizer(announce recognizer.Announcer) (*recognizer.Recognizer, error) {
	index, err := buildIndex()
	if err != nil {
		return nil, err
	}
	if announce == nil {
		announce = recognizer.NopAnnouncer{}
	}
	if config.AppConfig.SpeakCommand != "" {
		announce = recognizer.MultiAnnouncer{
			announce,
			recognizer.ExecAnnouncer{Command: config.AppConfig.SpeakCommand},
		}
	}
	return recognizer.New(index, recognizer.Options{
		Threshold:    config.AppConfig.Threshold,
		EntityLabels: config.AppConfig.EntityLabels,
		Workers:      config.AppConfig.Workers,
		Announcer:    announce,
	})
}
