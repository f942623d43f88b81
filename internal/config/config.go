package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/creasty/defaults"
)

const (
	ServerModeDev  = "dev"
	ServerModeProd = "prod"

	LogFormatConsole = "console"
	LogFormatJSON    = "json"

	appDirName = "KantanPro"
)

type Configuration struct {
	Server    Server
	Store     Store
	Bridge    Bridge
	LogFormat string `default:"console"`
	LogLevel  string `default:"info"`
}

type Server struct {
	ServerMode    string `default:"dev"`
	Address       string `default:"127.0.0.1"`
	HTTPPort      int    `default:"8000"`
	StaticsFolder string
}

type Store struct {
	// DataDir defaults to the per-user application data directory.
	DataDir     string
	FileName    string        `default:"kantanpro.db"`
	BusyTimeout time.Duration `default:"5s"`
	JournalMode string        `default:"WAL"`
}

type Bridge struct {
	Workers int `default:"1"`
}

// NewConfigurationWithDefaults returns a configuration with every default
// tag applied.
func NewConfigurationWithDefaults() (*Configuration, error) {
	c := &Configuration{}
	if err := defaults.Set(c); err != nil {
		return nil, fmt.Errorf("failed to apply configuration defaults: %w", err)
	}
	return c, nil
}

func (c *Configuration) Validate() error {
	switch c.Server.ServerMode {
	case ServerModeDev, ServerModeProd:
	default:
		return fmt.Errorf("invalid server mode %q: must be %q or %q", c.Server.ServerMode, ServerModeDev, ServerModeProd)
	}
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("invalid http port %d", c.Server.HTTPPort)
	}
	switch c.LogFormat {
	case LogFormatConsole, LogFormatJSON:
	default:
		return fmt.Errorf("invalid log format %q: must be %q or %q", c.LogFormat, LogFormatConsole, LogFormatJSON)
	}
	if c.Store.FileName == "" {
		return fmt.Errorf("database file name is empty")
	}
	if c.Bridge.Workers != 1 {
		return fmt.Errorf("invalid bridge workers %d: the database accepts a single writer", c.Bridge.Workers)
	}
	return nil
}

// ListenAddress is host:port for the HTTP server.
func (s Server) ListenAddress() string {
	return fmt.Sprintf("%s:%d", s.Address, s.HTTPPort)
}

// Path returns the database file path, filling in the default data
// directory. A FileName of ":memory:" is returned as is.
func (s Store) Path() (string, error) {
	if s.FileName == ":memory:" {
		return s.FileName, nil
	}
	dir := s.DataDir
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve the user config directory: %w", err)
		}
		dir = filepath.Join(base, appDirName)
	}
	return filepath.Join(dir, s.FileName), nil
}

// DebugMap flattens the configuration for logging.
func (c Configuration) DebugMap() map[string]any {
	return map[string]any{
		"server.mode":      c.Server.ServerMode,
		"server.address":   c.Server.Address,
		"server.http_port": c.Server.HTTPPort,
		"server.statics":   c.Server.StaticsFolder,
		"store.data_dir":   c.Store.DataDir,
		"store.file_name":  c.Store.FileName,
		"store.busy":       c.Store.BusyTimeout.String(),
		"store.journal":    c.Store.JournalMode,
		"bridge.workers":   c.Bridge.Workers,
		"log_format":       c.LogFormat,
		"log_level":        c.LogLevel,
	}
}
