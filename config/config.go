// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Copyright (c) 2017-2023 The Spacemesh developers

package config

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/jessevdk/go-flags"

	"github.com/spacemeshos/binutil/symbols"
)

const (
	defaultConfigFilename  = "binutil.conf"
	defaultMaxLogFiles     = 3
	defaultMaxLogFileSize  = 10
	defaultEllipsis        = "..."
	defaultSymbolTableSize = symbols.DefaultTableLimit
)

var defaultConfigFile = filepath.Join(defaultConfigDir(), defaultConfigFilename)

func defaultConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, "binutil")
}

// Config defines the global options of binutil.
// Command specific options live on the commands themselves.
//
//nolint:lll
type Config struct {
	ConfigFile     string `short:"c" long:"configfile"     description:"Path to configuration file"`
	DebugLog       bool   `long:"debuglog"                 description:"Enable debug logs"`
	JSONLog        bool   `long:"jsonlog"                  description:"Whether to log in JSON format"`
	LogFile        string `long:"logfile"                  description:"Also write logs to this file"`
	MaxLogFiles    int    `long:"maxlogfiles"              description:"Maximum logfiles to keep (0 for no rotation)"`
	MaxLogFileSize int    `long:"maxlogfilesize"           description:"Maximum logfile size in MB"`

	Ellipsis        string `long:"ellipsis"          description:"Marker appended by abbreviate"`
	SymbolTableSize int    `long:"symbol-table-size" description:"Maximum number of interned symbols"`
	LRUSymbols      bool   `long:"lru-symbols"       description:"Evict least recently used symbols instead of failing when the table is full"`
}

// DefaultConfig returns a config with default hardcoded values.
func DefaultConfig() *Config {
	return &Config{
		ConfigFile:      defaultConfigFile,
		MaxLogFiles:     defaultMaxLogFiles,
		MaxLogFileSize:  defaultMaxLogFileSize,
		Ellipsis:        defaultEllipsis,
		SymbolTableSize: defaultSymbolTableSize,
	}
}

// ParseFlags reads the global options from args, leaving everything it
// does not know for the command parser.
func ParseFlags(preCfg *Config, args []string) (*Config, error) {
	if _, err := flags.NewParser(preCfg, flags.IgnoreUnknown).ParseArgs(args); err != nil {
		return nil, err
	}
	return preCfg, nil
}

// ReadConfigFile reads values from a conf file.
// A missing default file is not an error, a missing explicit one is.
func ReadConfigFile(preCfg *Config) (*Config, error) {
	preCfg.ConfigFile = cleanAndExpandPath(preCfg.ConfigFile)
	if preCfg.ConfigFile == "" {
		return preCfg, nil
	}

	if err := flags.IniParse(preCfg.ConfigFile, preCfg); err != nil {
		var iniError *flags.IniError
		if errors.As(err, &iniError) {
			return nil, err
		}
		if errors.Is(err, os.ErrNotExist) && preCfg.ConfigFile == defaultConfigFile {
			return preCfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return preCfg, nil
}

// Validate reports every invalid option at once.
func (c *Config) Validate() error {
	var result *multierror.Error
	if c.MaxLogFiles < 0 {
		result = multierror.Append(result, fmt.Errorf("maxlogfiles must not be negative, got %d", c.MaxLogFiles))
	}
	if c.MaxLogFileSize < 0 {
		result = multierror.Append(result, fmt.Errorf("maxlogfilesize must not be negative, got %d", c.MaxLogFileSize))
	}
	if c.SymbolTableSize <= 0 {
		result = multierror.Append(result, fmt.Errorf("symbol-table-size must be positive, got %d", c.SymbolTableSize))
	}
	return result.ErrorOrNil()
}

// SetupConfig validates cfg and expands the paths it holds.
func SetupConfig(cfg *Config) (*Config, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.LogFile = cleanAndExpandPath(cfg.LogFile)
	return cfg, nil
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
// This function is taken from https://github.com/btcsuite/btcd
func cleanAndExpandPath(path string) string {
	if path == "" {
		return ""
	}

	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		var homeDir string
		user, err := user.Current()
		if err == nil {
			homeDir = user.HomeDir
		} else {
			homeDir = os.Getenv("HOME")
		}

		path = strings.Replace(path, "~", homeDir, 1)
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but the variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}
