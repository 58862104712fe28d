// Package anythingllm provides a client for the AnythingLLM developer API.
//
// The Client is constructed from a base URL and an API key and performs
// one HTTP call per method:
//
//   - Do: JSON request/response with bearer authorization
//   - Upload: multipart/form-data file upload
//   - Stream: raw response body for the stream-chat endpoint
//
// # Errors
//
// Non-2xx responses are returned as *APIError carrying the status code and
// the response body verbatim; errors.Is(err, ErrAPI) reports them. Network
// failures wrap ErrTransport. No retries are attempted.
//
//	client := anythingllm.New("http://localhost:3001/", apiKey)
//	ws, err := client.ListWorkspaces(ctx)
//	var apiErr *anythingllm.APIError
//	if errors.As(err, &apiErr) {
//	    fmt.Println(apiErr.StatusCode)
//	}
package anythingllm
