package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/spacemeshos/binutil/config"
	"github.com/spacemeshos/binutil/logging"
)

// binutil binary version.
// It should be passed during the build with '-ldflags "-X main.version="'.
var version = "unknown"

// binutilMain is the true entry point for binutil. This function is required
// since defers created in the top-level scope of a main method aren't
// executed if os.Exit() is called.
func binutilMain(args []string, stdout io.Writer) error {
	var err error
	// Start with a default Config with sane settings
	cfg := config.DefaultConfig()
	// Pre-parse the command line to check for an alternative Config file
	cfg, err = config.ParseFlags(cfg, args)
	if err != nil {
		return err
	}
	// Load configuration file overwriting defaults with any specified options
	cfg, err = config.ReadConfigFile(cfg)
	if err != nil {
		return err
	}

	a := &app{cfg: cfg, out: stdout}
	parser := flags.NewParser(cfg, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "binutil"
	if err := a.register(parser); err != nil {
		return err
	}
	parser.CommandHandler = func(command flags.Commander, args []string) error {
		if command == nil {
			return nil
		}
		cfg, err := config.SetupConfig(cfg)
		if err != nil {
			return err
		}

		logLevel := zap.InfoLevel
		if cfg.DebugLog {
			logLevel = zap.DebugLevel
		}
		logger := logging.New(logging.Options{
			Level:      logLevel,
			File:       cfg.LogFile,
			MaxSizeMB:  cfg.MaxLogFileSize,
			MaxBackups: cfg.MaxLogFiles,
			JSON:       cfg.JSONLog,
		})
		defer func() { _ = logger.Sync() }()
		a.ctx = logging.NewContext(context.Background(), logger)

		logger.Debug("starting command",
			zap.String("version", version),
			zap.String("command", parser.Active.Name),
			zap.Strings("args", args),
		)
		if err := a.init(); err != nil {
			return err
		}
		return command.Execute(args)
	}

	// Finally, parse the command line again so that it takes precedence
	// over the config file.
	_, err = parser.ParseArgs(args)
	return err
}

func main() {
	// Call the "real" main in a nested manner so the defers will properly
	// be executed in the case of a graceful shutdown.
	if err := binutilMain(os.Args[1:], os.Stdout); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			_, _ = fmt.Fprintln(os.Stdout, err)
			return
		}
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
