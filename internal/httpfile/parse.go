// Package httpfile parses and executes rendered .http request files.
//
// The on-disk grammar is: an optional leading // comment line, a request
// line "<METHOD> <URL>" within the first two lines, any number of
// "Name: value" header lines, a blank line, then the raw body.
package httpfile

import (
	"net/http"
	"strings"
)

// DefaultMethod is assumed when the request line carries a URL without a
// method token.
const DefaultMethod = http.MethodPost

// ParseError describes a malformed request file. It is scoped to the one
// artifact being parsed and never aborts a batch.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "invalid HTTP request file: " + e.Reason
}

// Request is the parsed form of a rendered request file.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   string
}

func isComment(line string) bool {
	return strings.HasPrefix(line, "//") || strings.HasPrefix(line, "#")
}

// Parse splits content on the first blank line into a header block and a
// body, then extracts the request line and headers from the block.
func Parse(content []byte) (*Request, error) {
	headerBlock, body, found := strings.Cut(string(content), "\n\n")
	if !found {
		return nil, &ParseError{Reason: "missing blank line before body"}
	}

	lines := strings.Split(headerBlock, "\n")

	method, rawURL := DefaultMethod, ""
	for i, line := range lines {
		if i > 1 {
			break
		}
		if isComment(line) || !strings.Contains(line, " ") {
			continue
		}
		first, rest, _ := strings.Cut(line, " ")
		if strings.Contains(first, "://") {
			// Bare URL without a method token.
			rawURL = first
		} else {
			method, rawURL = first, rest
		}
		break
	}
	if rawURL == "" {
		return nil, &ParseError{Reason: "no request line with a URL found"}
	}

	header := http.Header{}
	for _, line := range lines {
		if isComment(line) {
			continue
		}
		if name, value, ok := strings.Cut(line, ": "); ok {
			header.Add(name, value)
		}
	}

	return &Request{Method: method, URL: rawURL, Header: header, Body: body}, nil
}
