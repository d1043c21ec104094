// Package main is the entry point for the talent-api server and its tools
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/KirkDiggler/talent-api/cmd/server/client"
	"github.com/KirkDiggler/talent-api/internal/config"
)

var (
	configDir string
	verbose   bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "talent-api",
	Short: "Talent API gRPC server",
	Long: `Talent API validates and stores talent definitions, manages the rarity
tiers they are classified by and keeps free-form reports.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		v := config.NewViper()
		if configDir != "" {
			v = config.NewViper(configDir)
		}
		for key, name := range map[string]string{"server.verbose": "verbose", "server.port": "port"} {
			f := cmd.Flags().Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("failed to bind %s flag: %w", name, err)
			}
		}

		loaded, err := config.Load(v)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded

		zapCfg := zap.NewProductionConfig()
		if cfg.Server.Verbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		slog.SetDefault(slog.New(newSlogHandler(logger)))
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "directory holding config.yaml")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(samplesCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(revalidateCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
