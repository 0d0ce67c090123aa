package httpfile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubenboadana/WoffuAutomatizer/internal/httpfile"
)

func TestParse(t *testing.T) {
	t.Run("comment line, request line, headers, body", func(t *testing.T) {
		content := "// fill-in request\n" +
			"PUT https://woffu.test/api/svc/signs/123\n" +
			"Authorization: Bearer abc\n" +
			"Content-Type: application/json\n" +
			"\n" +
			`{"diaryId": 123}`

		req, err := httpfile.Parse([]byte(content))
		require.NoError(t, err)
		assert.Equal(t, "PUT", req.Method)
		assert.Equal(t, "https://woffu.test/api/svc/signs/123", req.URL)
		assert.Equal(t, "Bearer abc", req.Header.Get("Authorization"))
		assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
		assert.Equal(t, `{"diaryId": 123}`, req.Body)
	})

	t.Run("no comment line", func(t *testing.T) {
		req, err := httpfile.Parse([]byte("POST https://woffu.test/x\n\nbody"))
		require.NoError(t, err)
		assert.Equal(t, "POST", req.Method)
		assert.Equal(t, "https://woffu.test/x", req.URL)
	})

	t.Run("bare URL defaults the method", func(t *testing.T) {
		req, err := httpfile.Parse([]byte("https://woffu.test/x extra\n\nbody"))
		require.NoError(t, err)
		assert.Equal(t, httpfile.DefaultMethod, req.Method)
		assert.Equal(t, "https://woffu.test/x", req.URL)
	})

	t.Run("missing blank line is a parse error", func(t *testing.T) {
		_, err := httpfile.Parse([]byte("POST https://woffu.test/x\nAccept: */*\n"))
		var parseErr *httpfile.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Contains(t, parseErr.Error(), "missing blank line")
	})

	t.Run("no URL is a parse error", func(t *testing.T) {
		_, err := httpfile.Parse([]byte("// just a comment\nNoSpacesHere\n\nbody"))
		var parseErr *httpfile.ParseError
		require.ErrorAs(t, err, &parseErr)
	})

	t.Run("request line after the second line is not recognized", func(t *testing.T) {
		content := "// one\n// two\nPOST https://woffu.test/x\n\nbody"
		_, err := httpfile.Parse([]byte(content))
		require.Error(t, err)
	})

	t.Run("comment headers are skipped", func(t *testing.T) {
		content := "POST https://woffu.test/x\n" +
			"# X-Skip: yes\n" +
			"// X-Also-Skip: yes\n" +
			"X-Keep: value\n" +
			"\nbody"
		req, err := httpfile.Parse([]byte(content))
		require.NoError(t, err)
		assert.Empty(t, req.Header.Get("X-Skip"))
		assert.Empty(t, req.Header.Get("X-Also-Skip"))
		assert.Equal(t, "value", req.Header.Get("X-Keep"))
	})

	t.Run("body is kept byte-for-byte", func(t *testing.T) {
		body := "{\n  \"a\": 1,\n\n  \"b\": 2\n}\n"
		req, err := httpfile.Parse([]byte("POST https://woffu.test/x\n\n" + body))
		require.NoError(t, err)
		assert.Equal(t, body, req.Body)
	})
}
