// Package session holds the single active AnythingLLM session of a server
// process.
//
// The store has exactly two states: empty, and initialized with a
// {base URL, API key} pair. Initialization always succeeds and replaces
// any earlier session whole; there is no teardown.
package session

import (
	"sync/atomic"

	"github.com/jonwraymond/anythingllm-mcp/anythingllm"
)

// Session is an initialized connection configuration.
// It is immutable; a new Initialize produces a new Session.
type Session struct {
	// BaseURL is the normalized service root, without a trailing "/".
	BaseURL string

	// APIKey is the bearer credential.
	APIKey string

	client *anythingllm.Client
}

// Client returns the connector derived from this session.
func (s *Session) Client() *anythingllm.Client {
	return s.client
}

// Store is a single-slot session holder safe for concurrent use.
// Readers always observe either the previous or the next session, never a
// mix of both.
type Store struct {
	current atomic.Pointer[Session]
	opts    []anythingllm.Option
}

// NewStore creates an empty store. opts are applied to every connector the
// store builds.
func NewStore(opts ...anythingllm.Option) *Store {
	return &Store{opts: opts}
}

// Initialize replaces the current session. It never fails; an unreachable
// base URL or bad key only surfaces on the next backend call.
func (st *Store) Initialize(baseURL, apiKey string) *Session {
	client := anythingllm.New(baseURL, apiKey, st.opts...)
	s := &Session{
		BaseURL: client.BaseURL(),
		APIKey:  apiKey,
		client:  client,
	}
	st.current.Store(s)
	return s
}

// Current returns the active session, if any.
func (st *Store) Current() (*Session, bool) {
	s := st.current.Load()
	return s, s != nil
}
