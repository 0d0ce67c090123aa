package httpfile

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Result records the outcome of executing one request file. Per-artifact
// failures (unreadable file, parse error, transport error, non-2xx status)
// land here instead of propagating, so a batch keeps going.
type Result struct {
	Path     string
	Success  bool
	Response string // raw response text on dispatch, diagnostic otherwise
}

// Executor dispatches parsed request files over an HTTP client.
type Executor struct {
	client *http.Client
	log    *zap.Logger
}

// NewExecutor creates an Executor. client carries the transport policy
// (TLS settings, timeouts); nil falls back to http.DefaultClient.
func NewExecutor(client *http.Client, log *zap.Logger) *Executor {
	if client == nil {
		client = http.DefaultClient
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Executor{client: client, log: log}
}

// Execute reads, parses and dispatches one request file. Exactly one
// request per call, no retries.
func (e *Executor) Execute(ctx context.Context, path string) Result {
	content, err := os.ReadFile(path)
	if err != nil {
		return Result{Path: path, Response: fmt.Sprintf("reading request file: %v", err)}
	}

	parsed, err := Parse(content)
	if err != nil {
		e.log.Error("request file is malformed", zap.String("path", path), zap.Error(err))
		return Result{Path: path, Response: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, parsed.Method, parsed.URL, strings.NewReader(parsed.Body))
	if err != nil {
		return Result{Path: path, Response: fmt.Sprintf("building request: %v", err)}
	}
	for name, values := range parsed.Header {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}

	e.log.Debug("dispatching request",
		zap.String("method", parsed.Method),
		zap.String("url", parsed.URL),
		zap.String("path", path))

	resp, err := e.client.Do(req)
	if err != nil {
		e.log.Error("request dispatch failed", zap.String("path", path), zap.Error(err))
		return Result{Path: path, Response: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{Path: path, Response: fmt.Sprintf("reading response body: %v", err)}
	}

	line := statusLine(resp)
	return Result{
		Path:     path,
		Success:  successStatusLine(line),
		Response: rawResponse(line, resp.Header, body),
	}
}

// statusLine reconstructs the response status line, e.g. "HTTP/1.1 204 No Content".
func statusLine(resp *http.Response) string {
	return fmt.Sprintf("HTTP/%d.%d %s", resp.ProtoMajor, resp.ProtoMinor, resp.Status)
}

// successStatusLine reports whether the status line carries a 2xx token.
func successStatusLine(line string) bool {
	return strings.Contains(line, "200 OK") ||
		strings.Contains(line, "201 Created") ||
		strings.Contains(line, "204")
}

// rawResponse renders the response the way it travelled on the wire, so the
// diagnostic in a Result is self-contained.
func rawResponse(statusLine string, header http.Header, body []byte) string {
	var b strings.Builder
	b.WriteString(statusLine)
	b.WriteString("\n")
	for name, values := range header {
		for _, v := range values {
			fmt.Fprintf(&b, "%s: %s\n", name, v)
		}
	}
	b.WriteString("\n")
	b.Write(body)
	return b.String()
}
