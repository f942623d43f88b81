// Package config defines the configuration of the kantanpro binary.
//
// # Configuration Structure
//
//	Configuration
//	├── Server         - HTTP server settings
//	├── Store          - Database file location and connection settings
//	├── Bridge         - Scheduler settings of the Bridge
//	├── LogFormat      - Logging format
//	└── LogLevel       - Logging verbosity
//
// # Server Configuration
//
//	┌──────────────────┬─────────────┬────────────────────────────────────────┐
//	│ Field            │ Default     │ Description                            │
//	├──────────────────┼─────────────┼────────────────────────────────────────┤
//	│ ServerMode       │ "dev"       │ "prod" serves StaticsFolder as an SPA  │
//	│ Address          │ "127.0.0.1" │ Listen address                         │
//	│ HTTPPort         │ 8000        │ Listen port                            │
//	│ StaticsFolder    │ ""          │ Path to the built UI                   │
//	└──────────────────┴─────────────┴────────────────────────────────────────┘
//
// # Store Configuration
//
//	┌──────────────────┬────────────────┬─────────────────────────────────────┐
//	│ Field            │ Default        │ Description                         │
//	├──────────────────┼────────────────┼─────────────────────────────────────┤
//	│ DataDir          │ ""             │ UserConfigDir()/KantanPro when empty│
//	│ FileName         │ "kantanpro.db" │ ":memory:" for a throwaway database │
//	│ BusyTimeout      │ 5s             │ sqlite busy timeout                 │
//	│ JournalMode      │ "WAL"          │ sqlite journal mode                 │
//	└──────────────────┴────────────────┴─────────────────────────────────────┘
//
// Bridge.Workers defaults to 1 and Validate rejects any other value.
//
// Defaults come from creasty/defaults struct tags. The cmd package overlays
// flags, KANTANPRO_* environment variables and an optional config file
// through viper.
//
//	cfg, err := config.NewConfigurationWithDefaults()
//	...
//	log.Infow("configuration loaded", "config", cfg.DebugMap())
package config
