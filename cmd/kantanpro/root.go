package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kantanpro/kantanpro/internal/config"
)

const envPrefix = "KANTANPRO"

func newRootCmd() *cobra.Command {
	cfg, err := config.NewConfigurationWithDefaults()
	if err != nil {
		panic(err)
	}
	v := viper.New()

	root := &cobra.Command{
		Use:          "kantanpro",
		Short:        "KantanPro local business data",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(v, cfg); err != nil {
				return err
			}
			logger, err := newLogger(cfg.LogFormat, cfg.LogLevel)
			if err != nil {
				return err
			}
			zap.ReplaceGlobals(logger)
			zap.S().Named("cmd").Debugw("configuration loaded", "config", cfg.DebugMap())
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = zap.L().Sync()
		},
	}

	registerFlags(root.PersistentFlags(), cfg)
	if err := v.BindPFlags(root.PersistentFlags()); err != nil {
		panic(err)
	}

	root.AddCommand(
		newServeCmd(cfg),
		newMigrateCmd(cfg),
		newSeedCmd(cfg),
		newReportCmd(cfg),
		newSettingsCmd(cfg),
	)

	return root
}

func registerFlags(flags *pflag.FlagSet, cfg *config.Configuration) {
	flags.String("config", "", "Path to a config file (yaml, json or toml)")
	flags.String("log-format", cfg.LogFormat, "Log format: console or json")
	flags.String("log-level", cfg.LogLevel, "Log level: debug, info, warn or error")

	flags.String("server-mode", cfg.Server.ServerMode, "Server mode: dev or prod")
	flags.String("address", cfg.Server.Address, "HTTP listen address")
	flags.Int("port", cfg.Server.HTTPPort, "HTTP listen port")
	flags.String("statics-folder", cfg.Server.StaticsFolder, "Folder holding the built UI (prod mode)")

	flags.String("data-dir", cfg.Store.DataDir, "Directory of the database file (default: user config dir/KantanPro)")
	flags.String("db-file", cfg.Store.FileName, "Database file name, or :memory:")
	flags.Duration("busy-timeout", cfg.Store.BusyTimeout, "sqlite busy timeout")
	flags.String("journal-mode", cfg.Store.JournalMode, "sqlite journal mode")
}

// loadConfig overlays the config file, KANTANPRO_* variables and flags on
// the defaults. Flags win over the environment, which wins over the file.
func loadConfig(v *viper.Viper, cfg *config.Configuration) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	cfg.LogFormat = v.GetString("log-format")
	cfg.LogLevel = v.GetString("log-level")
	cfg.Server.ServerMode = v.GetString("server-mode")
	cfg.Server.Address = v.GetString("address")
	cfg.Server.HTTPPort = v.GetInt("port")
	cfg.Server.StaticsFolder = v.GetString("statics-folder")
	cfg.Store.DataDir = v.GetString("data-dir")
	cfg.Store.FileName = v.GetString("db-file")
	cfg.Store.BusyTimeout = v.GetDuration("busy-timeout")
	cfg.Store.JournalMode = v.GetString("journal-mode")

	return cfg.Validate()
}

func newLogger(format, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var zcfg zap.Config
	if format == config.LogFormatJSON {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
