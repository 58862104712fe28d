package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/jonwraymond/anythingllm-mcp/anythingllm"
	"github.com/jonwraymond/anythingllm-mcp/catalog"
	"github.com/jonwraymond/anythingllm-mcp/config"
	"github.com/jonwraymond/anythingllm-mcp/dispatch"
	"github.com/jonwraymond/anythingllm-mcp/logging"
	"github.com/jonwraymond/anythingllm-mcp/server"
	"github.com/jonwraymond/anythingllm-mcp/session"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

const defaultSearchLimit = 10

// buildApp wires the command tree. Protocol traffic and command output go
// to stdout; logs go to stderr.
func buildApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "anythingllm-mcp",
		Usage:     "MCP server for AnythingLLM",
		Version:   version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "path to a YAML config file"},
			&cli.StringFlag{Name: "base-url", Usage: "default AnythingLLM base URL for initialize_anythingllm"},
			&cli.StringFlag{Name: "log-level", Usage: "log level (trace, debug, info, warn, error)"},
			&cli.StringFlag{Name: "log-format", Usage: "log format (json, console)"},
		},
		Action: func(c *cli.Context) error {
			return runServe(c, stderr)
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "serve MCP over stdin/stdout",
				Action: func(c *cli.Context) error {
					return runServe(c, stderr)
				},
			},
			{
				Name:  "tools",
				Usage: "list the available tools",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "query", Aliases: []string{"q"}, Usage: "free-text search over tool names and descriptions"},
					&cli.IntFlag{Name: "limit", Value: defaultSearchLimit, Usage: "maximum number of search results"},
				},
				Action: func(c *cli.Context) error {
					return runTools(c.App.Writer, c.String("query"), c.Int("limit"))
				},
			},
		},
	}
}

// loadConfig reads the config file and environment, then applies global
// flag overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	if v := c.String("base-url"); v != "" {
		cfg.BaseURL = v
	}
	if v := c.String("log-level"); v != "" {
		cfg.Log.Level = v
	}
	if v := c.String("log-format"); v != "" {
		cfg.Log.Format = v
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServe(c *cli.Context, stderr io.Writer) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	logger := logging.New(logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format, Writer: stderr})

	srv, err := newServer(cfg, logger)
	if err != nil {
		return err
	}
	return srv.Serve(c.Context)
}

func newServer(cfg *config.Config, logger zerolog.Logger) (*server.Server, error) {
	reg, err := catalog.New()
	if err != nil {
		return nil, fmt.Errorf("build tool registry: %w", err)
	}

	clientLogger := logger.With().Str("component", "anythingllm").Logger()
	opts := append(cfg.ClientOptions(), anythingllm.WithLogger(clientLogger))
	d, err := dispatch.New(dispatch.Config{
		Registry:       reg,
		Sessions:       session.NewStore(opts...),
		DefaultBaseURL: cfg.BaseURL,
		Logger:         logger,
		ValidateInput:  true,
	})
	if err != nil {
		return nil, err
	}

	return server.New(server.Config{
		Dispatcher: d,
		Version:    version,
		Logger:     logger,
	})
}

func runTools(w io.Writer, query string, limit int) error {
	reg, err := catalog.New()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if query == "" {
		for _, s := range reg.List() {
			fmt.Fprintf(tw, "%s\t%s\n", s.Name(), s.Description())
		}
		return tw.Flush()
	}

	if limit <= 0 {
		limit = defaultSearchLimit
	}
	hits, err := reg.Search(query, limit)
	if err != nil {
		return fmt.Errorf("search tools: %w", err)
	}
	for _, h := range hits {
		fmt.Fprintf(tw, "%s\t%s\n", h.Name, h.ShortDescription)
	}
	return tw.Flush()
}

// run is a test seam for executing the app with explicit arguments.
func run(ctx context.Context, stdout, stderr io.Writer, args ...string) error {
	return buildApp(stdout, stderr).RunContext(ctx, append([]string{"anythingllm-mcp"}, args...))
}
