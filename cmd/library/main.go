package main

import (
	"os"
	"path/filepath"

	"github.com/project/studentlibrary/config"
	"github.com/project/studentlibrary/internal/app"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "library",
		Short:         "Library catalog and student borrowing tracker",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, _ []string) {
			cfg, err := config.NewConfig(cmd.Flags())
			if err != nil {
				log.Fatalf("can not get application config: %s", err)
			}

			logger, err := NewFileLogger(cfg.Log.File)
			if err != nil {
				log.Fatalf("can not initialize logger: %s", err)
			}
			defer func() { _ = logger.Sync() }()

			if err = app.Run(cmd.Context(), logger, cfg, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
				log.Fatalf("can not run library: %s", err)
			}
		},
	}
	config.RegisterFlags(rootCmd.Flags())

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%s", err)
	}
}

// NewFileLogger writes JSON entries to logFile, leaving the console to the
// menu.
func NewFileLogger(logFile string) (*zap.Logger, error) {
	if dir := filepath.Dir(logFile); dir != "." {
		_ = os.MkdirAll(dir, 0755)
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)

	if err != nil {
		return nil, err
	}

	writeSyncer := zapcore.AddSync(file)
	encoderCfg := zap.NewProductionEncoderConfig()
	encoder := zapcore.NewJSONEncoder(encoderCfg)

	core := zapcore.NewCore(encoder, writeSyncer, zap.InfoLevel)

	return zap.New(core), nil
}
