// Package dispatch routes tool calls to their handlers and normalizes every
// outcome into a Result.
//
// Dispatch never returns an error and never panics: unknown tools, calls
// made before initialization, backend failures and handler panics all come
// back as a Result whose Error is set. Render turns a Result into the
// protocol's text content.
package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonwraymond/anythingllm-mcp/session"
	"github.com/jonwraymond/anythingllm-mcp/tools"
	"github.com/rs/zerolog"
	"github.com/xeipuuv/gojsonschema"
)

// InitializeMessage is returned by a successful initialize call.
const InitializeMessage = "AnythingLLM client initialized successfully"

// Dispatcher executes tool calls against the current session.
// It is safe for concurrent use.
type Dispatcher struct {
	registry *tools.Registry
	sessions *session.Store
	logger   zerolog.Logger
	cfg      Config
}

// New creates a Dispatcher with the given configuration.
func New(cfg Config) (*Dispatcher, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	return &Dispatcher{
		registry: cfg.Registry,
		sessions: cfg.Sessions,
		logger:   cfg.Logger.With().Str("component", "dispatch").Logger(),
		cfg:      cfg,
	}, nil
}

// Registry returns the tool registry.
func (d *Dispatcher) Registry() *tools.Registry {
	return d.registry
}

// DispatchRaw dispatches the call with raw JSON arguments.
// Arguments are decoded only once the tool is known and a session exists,
// so unknown tools and uninitialized calls are reported regardless of
// what the arguments contain. Malformed arguments produce a failure result.
func (d *Dispatcher) DispatchRaw(ctx context.Context, name string, raw json.RawMessage) Result {
	return d.dispatch(ctx, name, func() (tools.Args, error) {
		return tools.DecodeArgs(raw)
	})
}

// Dispatch runs the named tool with args.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, args tools.Args) Result {
	return d.dispatch(ctx, name, func() (tools.Args, error) {
		return args, nil
	})
}

type argsFunc func() (tools.Args, error)

func (d *Dispatcher) dispatch(ctx context.Context, name string, decode argsFunc) (res Result) {
	start := time.Now()
	res = Result{Tool: name, CallID: uuid.NewString()}

	defer func() {
		if r := recover(); r != nil {
			res.Value = nil
			res.Error = fmt.Errorf("%w: %v", ErrHandlerPanic, r)
		}
		res.Duration = time.Since(start)
		d.logResult(res)
	}()

	res.Value, res.Error = d.call(ctx, res.CallID, name, decode)
	if res.Error != nil {
		res.Value = nil
	}
	return res
}

func (d *Dispatcher) call(ctx context.Context, callID, name string, decode argsFunc) (any, error) {
	spec, ok := d.registry.Lookup(name)
	if !ok {
		return nil, &UnknownToolError{Name: name}
	}

	if spec.Initialize {
		args, err := decodeArgs(decode)
		if err != nil {
			return nil, err
		}
		return d.initialize(args)
	}

	// Snapshot the session before any backend call.
	sess, ok := d.sessions.Current()
	if !ok {
		return nil, ErrNotInitialized
	}

	args, err := decodeArgs(decode)
	if err != nil {
		return nil, err
	}

	if d.cfg.ValidateInput {
		if err := validateArgs(spec.InputSchema(), args); err != nil {
			d.logger.Warn().
				Str("tool", name).
				Str("call_id", callID).
				Err(err).
				Msg("arguments do not match input schema")
		}
	}

	return spec.Handler(ctx, sess.Client(), args)
}

func decodeArgs(decode argsFunc) (tools.Args, error) {
	args, err := decode()
	if err != nil {
		return nil, err
	}
	if args == nil {
		args = tools.Args{}
	}
	return args, nil
}

func (d *Dispatcher) initialize(args tools.Args) (any, error) {
	apiKey := args.String("apiKey")
	if apiKey == "" {
		return nil, fmt.Errorf("%w: apiKey", ErrMissingArgument)
	}
	baseURL := args.StringOr("baseUrl", d.cfg.DefaultBaseURL)

	sess := d.sessions.Initialize(baseURL, apiKey)
	return map[string]any{
		"message": InitializeMessage,
		"baseUrl": sess.BaseURL,
	}, nil
}

func (d *Dispatcher) logResult(res Result) {
	var ev *zerolog.Event
	if res.OK() {
		ev = d.logger.Info()
	} else {
		ev = d.logger.Warn().Err(res.Error)
	}
	ev.Str("tool", res.Tool).
		Str("call_id", res.CallID).
		Dur("duration", res.Duration).
		Bool("ok", res.OK()).
		Msg("tool call")
}

// validateArgs checks args against an object input schema.
func validateArgs(schema any, args tools.Args) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(schema),
		gojsonschema.NewGoLoader(map[string]any(args)),
	)
	if err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("schema validation errors: %s", strings.Join(msgs, "; "))
	}
	return nil
}
