package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/sitelicense/pkg/config"
	"github.com/dmitrymomot/sitelicense/pkg/logger"
	"github.com/dmitrymomot/sitelicense/svc/licensing"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "licensectl: %v\n", err)
		os.Exit(1)
	}
}

var errScenarioFailed = errors.New("scenario had failed steps")

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("licensectl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	envFile := fs.String("env", "", "optional .env file to load before reading the environment")
	scenarioPath := fs.String("scenario", "", "path to a YAML scenario, - for stdin")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *scenarioPath == "" {
		fs.Usage()
		return errors.New("-scenario is required")
	}

	if *envFile != "" {
		if err := config.LoadEnv(*envFile); err != nil {
			return err
		}
	}
	var app config.App
	if err := config.Load(&app); err != nil {
		return err
	}
	if err := app.Validate(); err != nil {
		return err
	}

	log, err := newLogger(app, stderr, *scenarioPath)
	if err != nil {
		return err
	}
	logger.SetAsDefault(log)

	sc, err := readScenario(*scenarioPath)
	if err != nil {
		return err
	}

	svc := licensing.NewService(
		licensing.WithLogger(log),
		licensing.WithBcryptCost(app.BcryptCost),
	)

	result, runErr := licensing.RunScenario(ctx, svc, sc, licensing.WithRunLogger(log))
	if result != nil {
		enc := yaml.NewEncoder(stdout)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return errors.Join(runErr, err)
		}
		if err := enc.Close(); err != nil {
			return errors.Join(runErr, err)
		}
	}
	if runErr != nil {
		return runErr
	}
	if result.Failed > 0 {
		log.WarnContext(ctx, "scenario finished with failures", slog.Int("failed", result.Failed))
		return fmt.Errorf("%w: %d", errScenarioFailed, result.Failed)
	}
	log.InfoContext(ctx, "scenario finished",
		slog.Int("steps", len(result.Steps)),
		logger.Enabled(enabledTotal(result.Customers)),
	)
	return nil
}

func newLogger(app config.App, w io.Writer, scenario string) (*slog.Logger, error) {
	level, err := logger.ParseLevel(app.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: LOG_LEVEL %q", config.ErrInvalidConfig, app.LogLevel)
	}
	opts := []logger.Option{
		logger.WithEnvironment(app.Env, app.Name),
		logger.WithLevel(level),
		logger.WithOutput(w),
		logger.WithAttr(slog.String("scenario", scenario)),
		logger.WithContextExtractors(logger.StepExtractor),
	}
	if app.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.Format(app.LogFormat)))
	}
	return logger.New(opts...), nil
}

func enabledTotal(customers []licensing.CustomerView) int {
	n := 0
	for _, c := range customers {
		if c.Subscription != nil {
			n += c.Subscription.EnabledCount()
		}
	}
	return n
}

func readScenario(path string) (licensing.Scenario, error) {
	if path == "-" {
		return licensing.ParseScenario(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return licensing.Scenario{}, err
	}
	defer f.Close()
	return licensing.ParseScenario(f)
}
