package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/j-mracek/libcomps/internal/config"
	"github.com/j-mracek/libcomps/internal/logging"
	"github.com/j-mracek/libcomps/internal/tui"
	"github.com/j-mracek/libcomps/pkg/comps"
	"github.com/j-mracek/libcomps/pkg/compsxml"
)

// stdoutPath selects standard output as the write target.
const stdoutPath = "-"

// session bundles what every subcommand needs.
type session struct {
	ctx      context.Context
	cmd      *cobra.Command
	settings config.Settings
	logger   comps.Logger
	painter  tui.Painter
}

// newSession loads godotenv and configuration for cmd.
// A missing ./comps.yaml is not an error; a missing --config file is.
func newSession(cmd *cobra.Command) (*session, error) {
	_ = godotenv.Load()

	verbose := getVerboseFlag(cmd)
	logger := logging.NewWriterLogger(cmd.ErrOrStderr(), verbose)

	projectCfg, err := loadProjectConfig(getConfigFlag(cmd))
	if err != nil {
		return nil, err
	}

	settings, err := config.Resolve(projectCfg, os.LookupEnv)
	if err != nil {
		return nil, err
	}
	logger.Verbose("Settings: output=%q strict=%v lock_timeout=%s", settings.Output, settings.Strict, settings.LockTimeout)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	return &session{
		ctx:      ctx,
		cmd:      cmd,
		settings: settings,
		logger:   logger,
		painter:  tui.NewPainter(tui.DetectMode(cmd.ErrOrStderr())),
	}, nil
}

func loadProjectConfig(explicit string) (*config.ProjectConfig, error) {
	if explicit != "" {
		cfg, err := config.LoadFile(explicit)
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("%w: %s does not exist", comps.ErrInvalidConfig, explicit)
		}
		return cfg, err
	}

	cfg, err := config.Load(".")
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, nil // Config file not found is not an error
		}
		return nil, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}
	return cfg, nil
}

func (s *session) codecOptions(source string) []compsxml.Option {
	return []compsxml.Option{
		compsxml.WithLogger(s.logger),
		compsxml.WithSource(source),
		compsxml.WithIndent(s.settings.Indent),
		compsxml.WithLockTimeout(s.settings.LockTimeout),
	}
}

// load parses path. In strict mode error diagnostics fail the load with
// comps.ErrValidation.
func (s *session) load(path string, strict bool) (*comps.Comps, compsxml.Diagnostics, error) {
	doc, diags, err := compsxml.ParseFile(s.ctx, path, s.codecOptions(path)...)
	return s.checked(path, doc, diags, err, strict)
}

// parse is load for bytes the caller already read.
func (s *session) parse(path string, raw []byte, strict bool) (*comps.Comps, compsxml.Diagnostics, error) {
	doc, diags, err := compsxml.ParseBytes(raw, s.codecOptions(path)...)
	return s.checked(path, doc, diags, err, strict)
}

func (s *session) checked(path string, doc *comps.Comps, diags compsxml.Diagnostics, err error, strict bool) (*comps.Comps, compsxml.Diagnostics, error) {
	if err != nil {
		return nil, diags, err
	}
	if strict && diags.HasErrors() {
		return nil, diags, fmt.Errorf("%w: %s has %d error diagnostic(s)", comps.ErrValidation, path, len(diags.Errors()))
	}
	return doc, diags, nil
}

// write serializes doc to path, or to the command's stdout for "" and "-".
func (s *session) write(doc *comps.Comps, path string) error {
	if path == "" || path == stdoutPath {
		return compsxml.Serialize(s.cmd.OutOrStdout(), doc, s.codecOptions(stdoutPath)...)
	}
	if err := compsxml.SerializeToFile(s.ctx, doc, path, s.codecOptions(path)...); err != nil {
		return err
	}
	fmt.Fprintln(s.cmd.ErrOrStderr(), s.painter.Success("Wrote "+path))
	return nil
}
