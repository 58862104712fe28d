package anythingllm

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// maxEventSize bounds a single stream-chat event line.
const maxEventSize = 1024 * 1024

// StreamChunk is a single event of the stream-chat event stream.
type StreamChunk struct {
	ID           string `json:"uuid,omitempty"`
	Type         string `json:"type,omitempty"`
	TextResponse string `json:"textResponse,omitempty"`
	Sources      []any  `json:"sources,omitempty"`
	Close        bool   `json:"close,omitempty"`
	Error        any    `json:"error,omitempty"`
}

// StreamedChat is the aggregated result of a stream-chat response.
type StreamedChat struct {
	ID           string `json:"id,omitempty"`
	TextResponse string `json:"textResponse"`
	Sources      []any  `json:"sources,omitempty"`
	Chunks       int    `json:"chunks"`
	Closed       bool   `json:"closed"`
}

// ReadChatStream consumes a stream-chat event stream and aggregates the
// text chunks into a single response.
//
// Behavior:
//   - Lines of the form "data: {...}" are decoded as StreamChunk
//   - Blank lines, comments and non-JSON payloads are skipped
//   - Reading stops at the first chunk with close=true or at EOF
//   - A chunk carrying a non-empty error aborts with ErrStream
func ReadChatStream(r io.Reader) (*StreamedChat, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxEventSize)

	out := &StreamedChat{}
	var text strings.Builder

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		payload, ok := strings.CutPrefix(line, "data:")
		if !ok {
			continue
		}
		payload = strings.TrimSpace(payload)
		if payload == "" {
			continue
		}

		var chunk StreamChunk
		if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
			continue
		}
		if hasStreamError(chunk.Error) {
			return nil, fmt.Errorf("%w: %v", ErrStream, chunk.Error)
		}

		out.Chunks++
		if out.ID == "" {
			out.ID = chunk.ID
		}
		text.WriteString(chunk.TextResponse)
		if len(chunk.Sources) > 0 {
			out.Sources = append(out.Sources, chunk.Sources...)
		}
		if chunk.Close {
			out.Closed = true
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: read stream: %v", ErrTransport, err)
	}

	out.TextResponse = text.String()
	return out, nil
}

func hasStreamError(v any) bool {
	switch e := v.(type) {
	case nil:
		return false
	case bool:
		return e
	case string:
		return e != ""
	default:
		return true
	}
}
