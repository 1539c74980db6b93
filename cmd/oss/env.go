package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"oss/config"
	"oss/misc"
	"oss/state"
)

// setupEnv runs after command line is parsed and before any command action.
// It loads configuration, starts debug report when requested and builds
// program logger.
func setupEnv(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if cmd.NArg() == 0 {
		// help or version output, environment is not needed
		return ctx, nil
	}

	env := state.EnvFromContext(ctx)
	configFile := cmd.String("config")

	cfg, err := config.LoadConfiguration(configFile)
	if err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	env.Cfg = cfg

	if cmd.Bool("debug") {
		if env.Rpt, err = startReport(cfg, configFile); err != nil {
			return ctx, err
		}
	}

	if env.Log, err = cfg.Logging.Prepare(env.Rpt); err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}
	env.RedirectStdLog()

	env.Log.Debug("Program started",
		zap.Strings("args", os.Args),
		zap.String("ver", misc.GetVersion()),
		zap.String("runtime", runtime.Version()),
		zap.String("hash", misc.GetGitHash()),
		zap.Bool("defaults", cfg.Engine.ApplyDefaults),
		zap.Duration("transition", cfg.Engine.Animation.Duration),
		zap.Stringer("curve", cfg.Engine.Animation.Curve))

	switch {
	case env.Rpt != nil:
		env.Log.Info("Creating debug report", zap.String("location", env.Rpt.Name()))
	case len(configFile) == 0:
		env.Log.Info("Using defaults (no configuration file)")
	}
	return ctx, nil
}

// startReport creates debug archive and puts effective configuration into it
// when configuration came from a file.
func startReport(cfg *config.Config, configFile string) (*config.Report, error) {
	rpt, err := cfg.Reporting.Prepare()
	if err != nil {
		return nil, fmt.Errorf("unable to prepare debug reporter: %w", err)
	}
	if len(configFile) > 0 {
		if data, err := config.Dump(cfg); err == nil {
			rpt.StoreData("config/"+filepath.Base(configFile), data)
		}
	}
	return rpt, nil
}

// teardownEnv flushes logs and closes debug report. From here on errors go
// to stderr.
func teardownEnv(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if env.Log != nil {
		env.Log.Debug("Program ended", zap.Duration("elapsed", env.Uptime()), zap.Strings("parsed args", cmd.Args().Slice()))
	}
	env.RestoreStdLog()

	var err error
	if env.Rpt != nil {
		if e := env.Rpt.Close(); e != nil {
			err = multierr.Append(err, fmt.Errorf("unable to close debug report: %w", e))
		}
	}
	if env.Cfg != nil {
		err = multierr.Append(err, dropEmptyPanicLog(env.Cfg.Logging.FileLogger.Destination))
	}
	return err
}

// dropEmptyPanicLog removes panic output file created next to file log if
// nothing was written there.
func dropEmptyPanicLog(logDest string) error {
	if len(logDest) == 0 {
		return nil
	}
	debug.SetCrashOutput(nil, debug.CrashOptions{})

	fname := filepath.Join(filepath.Dir(logDest), misc.GetAppName()+"-panic.log")
	fi, err := os.Stat(fname)
	if err != nil || fi.Size() != 0 {
		return nil
	}
	if err := os.Remove(fname); err != nil {
		return fmt.Errorf("unable to remove empty panic log file '%s': %w", fname, err)
	}
	return nil
}

// errLogged is set when command error already went to the program log, so
// main does not print it again.
var errLogged bool

// logCommandError is called before teardownEnv, while log is still open.
func logCommandError(ctx context.Context, _ *cli.Command, err error) {
	if env := state.EnvFromContext(ctx); env.Log != nil {
		env.Log.Error("Program ended with error", zap.Error(err))
		errLogged = true
	}
}

// passUsageError leaves reporting to logCommandError or main.
func passUsageError(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return err
}

func unknownCommand(ctx context.Context, _ *cli.Command, name string) {
	if env := state.EnvFromContext(ctx); env.Log != nil {
		env.Log.Warn("Unknown command, nothing to do", zap.String("command", name))
	}
}
