// file: cmd/serve.go
// version: 1.0.0
// guid: 7d798b96-2767-4f50-b464-155df59ccb91

package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/medboxlabs/medbox-reader/internal/config"
	"github.com/medboxlabs/medbox-reader/internal/server"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the recognition HTTP API",
	Long: `Start an HTTP server exposing POST /api/v1/recognize for OCR
collaborators, plus vocabulary, health, and Prometheus metrics endpoints.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := buildRecognizer(nil)
		if err != nil {
			return err
		}

		cfg := server.DefaultConfig()
		cfg.Host = config.AppConfig.Server.Host
		cfg.Port = config.AppConfig.Server.Port
		cfg.RequestsPerMinute = config.AppConfig.Server.RequestsPerMinute
		cfg.Burst = config.AppConfig.Server.Burst

		if port := cmd.Flag("port").Value.String(); cmd.Flag("port").Changed {
			cfg.Port = port
		}
		if host := cmd.Flag("host").Value.String(); cmd.Flag("host").Changed {
			cfg.Host = host
		}
		if rt := cmd.Flag("read-timeout").Value.String(); rt != "" {
			if d, err := time.ParseDuration(rt); err == nil {
				cfg.ReadTimeout = d
			}
		}
		if wt := cmd.Flag("write-timeout").Value.String(); wt != "" {
			if d, err := time.ParseDuration(wt); err == nil {
				cfg.WriteTimeout = d
			}
		}

		srv := server.New(rec, cfg)
		return srv.Start(cfg)
	},
}

func init() {
	serveCmd.Flags().String("port", "8080", "port to run the recognition API on")
	serveCmd.Flags().String("host", "localhost", "host to bind the recognition API to")
	serveCmd.Flags().String("read-timeout", "15s", "read timeout (e.g. 15s, 1m)")
	serveCmd.Flags().String("write-timeout", "15s", "write timeout (e.g. 15s, 1m)")

	rootCmd.AddCommand(serveCmd)
}
