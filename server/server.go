// Package server exposes the tool registry as an MCP server.
//
// Two request kinds are served: tools/list returns every tool in
// registry order, and tools/call runs one tool through the dispatcher.
// A call to an unknown tool, or one made before initialization, is
// answered with an error-flagged result rather than a protocol error.
package server

import (
	"context"
	"errors"

	"github.com/jonwraymond/anythingllm-mcp/dispatch"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
)

// Implementation identity advertised during the MCP handshake.
const (
	DefaultName    = "anythingllm-mcp-server"
	DefaultVersion = "1.0.0"
)

// ErrDispatcherRequired is returned by New when Config.Dispatcher is nil.
var ErrDispatcherRequired = errors.New("server: Dispatcher is required")

// Config configures a Server.
type Config struct {
	// Dispatcher executes tool calls.
	// Required.
	Dispatcher *dispatch.Dispatcher

	// Name and Version identify the server to clients.
	// Defaults: DefaultName, DefaultVersion
	Name    string
	Version string

	// Logger receives protocol-level events. The zero value discards.
	Logger zerolog.Logger
}

// Server is an MCP server backed by a Dispatcher.
type Server struct {
	mcp        *mcp.Server
	dispatcher *dispatch.Dispatcher
	tools      []*mcp.Tool
	logger     zerolog.Logger
}

// New creates a Server and registers every tool of the dispatcher's
// registry.
func New(cfg Config) (*Server, error) {
	if cfg.Dispatcher == nil {
		return nil, ErrDispatcherRequired
	}
	if cfg.Name == "" {
		cfg.Name = DefaultName
	}
	if cfg.Version == "" {
		cfg.Version = DefaultVersion
	}

	s := &Server{
		dispatcher: cfg.Dispatcher,
		logger:     cfg.Logger.With().Str("component", "server").Logger(),
	}
	s.mcp = mcp.NewServer(&mcp.Implementation{Name: cfg.Name, Version: cfg.Version}, nil)

	for _, spec := range cfg.Dispatcher.Registry().List() {
		t := spec.MCPTool()
		s.tools = append(s.tools, t)
		s.mcp.AddTool(t, s.handleCall)
	}
	s.mcp.AddReceivingMiddleware(s.middleware)

	return s, nil
}

// MCP returns the underlying protocol server.
func (s *Server) MCP() *mcp.Server {
	return s.mcp
}

// Run serves a single session over t until the peer disconnects or ctx is
// cancelled.
func (s *Server) Run(ctx context.Context, t mcp.Transport) error {
	s.logger.Info().Int("tools", len(s.tools)).Msg("serving")
	err := s.mcp.Run(ctx, t)
	if err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Error().Err(err).Msg("session ended with error")
		return err
	}
	s.logger.Info().Msg("session ended")
	return nil
}

// Serve runs the server over stdin/stdout.
func (s *Server) Serve(ctx context.Context) error {
	return s.Run(ctx, &mcp.StdioTransport{})
}

// Tools returns the advertised tools in registry order.
func (s *Server) Tools() []*mcp.Tool {
	out := make([]*mcp.Tool, len(s.tools))
	copy(out, s.tools)
	return out
}

func (s *Server) handleCall(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res := s.dispatcher.DispatchRaw(ctx, req.Params.Name, req.Params.Arguments)
	return dispatch.Render(res), nil
}

// middleware answers tools/list in registry order and routes every
// tools/call through the dispatcher, including calls to unregistered
// names.
func (s *Server) middleware(next mcp.MethodHandler) mcp.MethodHandler {
	return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
		switch method {
		case "tools/list":
			return &mcp.ListToolsResult{Tools: s.Tools()}, nil
		case "tools/call":
			if call, ok := req.(*mcp.CallToolRequest); ok && call.Params != nil {
				return s.handleCall(ctx, call)
			}
		}
		return next(ctx, method, req)
	}
}
