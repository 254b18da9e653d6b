package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/contenthub/internal/content"
	"github.com/desertthunder/contenthub/internal/formatter"
	"github.com/desertthunder/contenthub/internal/shared"
	"github.com/desertthunder/contenthub/internal/store"
	"github.com/urfave/cli/v3"
)

// BackendOpener builds the content store selected by a configuration.
type BackendOpener func(cfg *shared.Config, logger *log.Logger) (store.Backend, error)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
//
// The backend is opened lazily on first use so that setup commands work without one.
type Runner struct {
	config  *shared.Config
	backend store.Backend
	content *content.Service
	open    BackendOpener
	logger  *log.Logger
	output  io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config  *shared.Config
	Backend store.Backend
	Opener  BackendOpener
	Logger  *log.Logger
	Output  io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Opener == nil {
		opts.Opener = OpenBackend
	}

	return &Runner{
		config:  opts.Config,
		backend: opts.Backend,
		open:    opts.Opener,
		logger:  opts.Logger,
		output:  opts.Output,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, articlesCommand, videosCommand, productsCommand, relatedCommand,
		exportCommand, serveCommand, mcpCommand, browseCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// Before loads the configuration named by --config and applies --log-level.
//
// A missing config file is not an error: the embedded defaults and environment overrides are used.
func (r *Runner) Before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if r.config == nil {
		config, err := r.loadConfig(cmd.String("config"))
		if err != nil {
			return ctx, err
		}
		r.config = config
	}

	level := r.config.Log.Level
	if cmd.IsSet("log-level") {
		level = cmd.String("log-level")
	}
	ll, err := shared.ParseLevel(level)
	if err != nil {
		return ctx, err
	}
	shared.SetLogLevel(r.logger, ll)
	return ctx, nil
}

// After closes the backend if one was opened.
func (r *Runner) After(ctx context.Context, cmd *cli.Command) error {
	if r.backend == nil {
		return nil
	}
	if err := r.backend.Close(); err != nil {
		r.logger.Warn("failed to close content store", "driver", r.backend.Name(), "error", err)
	}
	return nil
}

func (r *Runner) loadConfig(path string) (*shared.Config, error) {
	if _, err := os.Stat(path); err != nil {
		r.logger.Debug("config file not found, using defaults", "path", path)
		config := shared.DefaultConfig()
		config.ApplyEnv(os.LookupEnv)
		return config, nil
	}

	config, err := shared.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrInvalidConfig, err)
	}
	return config, nil
}

// SetLogger swaps the logger, e.g. to keep log lines out of the terminal UI.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
	r.content = nil
}

// service returns the Query Layer over the configured backend, opening the backend on first use.
func (r *Runner) service() (*content.Service, error) {
	if r.content != nil {
		return r.content, nil
	}
	if r.backend == nil {
		if r.config == nil {
			r.config = shared.DefaultConfig()
		}
		backend, err := r.open(r.config, r.logger)
		if err != nil {
			return nil, err
		}
		r.backend = backend
		r.logger.Debug("content store opened", "driver", backend.Name())
	}
	r.content = content.NewService(r.backend, r.logger)
	return r.content, nil
}

// outputFormat resolves --json and --format into a single format.
func outputFormat(cmd *cli.Command) (formatter.Format, error) {
	if cmd.Bool("json") {
		return formatter.FormatJSON, nil
	}
	return formatter.ParseFormat(cmd.String("format"))
}

// render writes v as JSON or its table in format.
func (r *Runner) render(format formatter.Format, v any, table formatter.Table) error {
	if format == formatter.FormatJSON {
		return r.writeJSON(v, true)
	}

	out, err := formatter.Render(v, table, format)
	if err != nil {
		return err
	}
	if _, err := r.output.Write(out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writeLines(lines []string) error {
	for _, line := range lines {
		if err := r.writePlain("%s\n", line); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
