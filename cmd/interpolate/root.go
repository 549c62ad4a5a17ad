package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/VanillaMaster/interpolate/pkg/literal"
	"github.com/VanillaMaster/interpolate/pkg/markup"
	"github.com/VanillaMaster/interpolate/pkg/prompt"
	"github.com/VanillaMaster/interpolate/pkg/render"
	"github.com/VanillaMaster/interpolate/pkg/values"
)

type config struct {
	mode        string
	modeSet     bool
	file        string
	valuesFile  string
	assignments []string
	interactive bool
	sanitize    bool
	verbose     bool
	output      string
}

// deps holds the process boundaries so tests can swap them.
type deps struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	driver func() prompt.Driver
}

func defaultDeps() deps {
	return deps{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		driver: prompt.NewSurveyDriver,
	}
}

func newRootCmd(d deps) *cobra.Command {
	cfg := &config{}

	cmd := &cobra.Command{
		Use:   "interpolate [template]",
		Short: "Interpolate a ${...} template literal as text, HTML or CSS",
		Long: `interpolate merges a template literal with substitution values.

The template comes from the first argument, --file, or stdin. Placeholders are
written ${name}, ${0} or ${path.to.value}; \${ produces a literal "${".`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.modeSet = cmd.Flags().Changed("mode")
			logger := newLogger(d.stderr, cfg.verbose)
			slog.SetDefault(logger)
			return run(cmd.Context(), cfg, args, d, logger)
		},
	}
	cmd.SetIn(d.stdin)
	cmd.SetOut(d.stdout)
	cmd.SetErr(d.stderr)

	flags := cmd.Flags()
	flags.StringVarP(&cfg.mode, "mode", "m", render.DefaultRenderer, "renderer to use: text, html or css")
	flags.StringVarP(&cfg.file, "file", "f", "", "read the template from a file")
	flags.StringVar(&cfg.valuesFile, "values", "", "JSON or YAML document holding substitution values")
	flags.StringArrayVarP(&cfg.assignments, "set", "s", nil, "set a value as name=value or index=value (repeatable)")
	flags.BoolVarP(&cfg.interactive, "interactive", "i", false, "prompt for values that are not provided")
	flags.BoolVar(&cfg.sanitize, "sanitize", false, "sanitise HTML output with a user-content policy")
	flags.BoolVarP(&cfg.verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVarP(&cfg.output, "output", "o", "", "write output to a file instead of stdout")

	return cmd
}

func run(ctx context.Context, cfg *config, args []string, d deps, logger *slog.Logger) error {
	source, err := readTemplate(cfg, args, d.stdin)
	if err != nil {
		return err
	}

	lit, err := literal.Parse(source)
	if err != nil {
		return err
	}
	logger.Debug("template parsed",
		"fragments", len(lit.Fragments()),
		"expressions", lit.Expressions())

	vals, err := loadValues(cfg)
	if err != nil {
		return err
	}

	var markupOptions []markup.Option
	if cfg.sanitize {
		markupOptions = append(markupOptions, markup.WithPolicy(markup.UGCPolicy()))
	}
	registry := render.NewDefaultRegistry(markupOptions...)

	mode := cfg.mode
	if cfg.interactive {
		driver := d.driver()
		if !cfg.modeSet {
			mode, err = prompt.Choose(ctx, driver, "Renderer", registry.List(), mode)
			if err != nil {
				return err
			}
		}
		known := func(expr string) bool {
			_, ok := literal.Resolve(expr, vals.Named, vals.Positional)
			return ok
		}
		answers, err := prompt.Collect(ctx, driver, lit.Expressions(), known)
		if err != nil {
			return err
		}
		vals = vals.Merge(values.Values{Named: answers})
	}

	renderer, err := registry.Lookup(mode)
	if err != nil {
		return err
	}
	if cfg.sanitize && renderer.Name() != "html" {
		logger.Warn("--sanitize only applies to html output", "mode", renderer.Name())
	}

	substitutions, err := lit.Bind(vals.Named, vals.Positional)
	if err != nil {
		return err
	}

	out, err := renderer.Render(ctx, lit.Fragments(), substitutions)
	if err != nil {
		return fmt.Errorf("render %s: %w", renderer.Name(), err)
	}
	logger.Debug("rendered",
		"renderer", renderer.Name(),
		"content_type", renderer.ContentType(),
		"bytes", len(out))

	return writeOutput(cfg.output, d.stdout, out, logger)
}

func readTemplate(cfg *config, args []string, stdin io.Reader) (string, error) {
	switch {
	case len(args) > 0 && cfg.file != "":
		return "", fmt.Errorf("pass the template as an argument or with --file, not both")
	case len(args) > 0:
		return args[0], nil
	case cfg.file != "":
		data, err := os.ReadFile(cfg.file)
		if err != nil {
			return "", fmt.Errorf("read template: %w", err)
		}
		return string(data), nil
	default:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read template from stdin: %w", err)
		}
		text := string(data)
		if trimmed, ok := strings.CutSuffix(text, "\r\n"); ok {
			return trimmed, nil
		}
		return strings.TrimSuffix(text, "\n"), nil
	}
}

func loadValues(cfg *config) (values.Values, error) {
	var vals values.Values
	if cfg.valuesFile != "" {
		loaded, err := values.Load(cfg.valuesFile)
		if err != nil {
			return values.Values{}, err
		}
		vals = loaded
	}
	if err := vals.Assign(cfg.assignments...); err != nil {
		return values.Values{}, err
	}
	return vals, nil
}

func writeOutput(path string, stdout io.Writer, out []byte, logger *slog.Logger) error {
	if path == "" {
		_, err := stdout.Write(out)
		return err
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logger.Info("output written", "path", path, "bytes", len(out))
	return nil
}
