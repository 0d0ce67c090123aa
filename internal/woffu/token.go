package woffu

import (
	"encoding/base64"
	"encoding/json"
	"strconv"
	"strings"
)

// UserIDFromToken attempts a local decode of the JWT payload segment without
// verifying the signature. It returns false whenever the token does not have
// three segments, the payload is not base64url-encoded JSON, or the UserId
// claim is absent or malformed. No network access; the caller is expected to
// fall back to the API on failure.
func UserIDFromToken(token string) (int64, bool) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return 0, false
	}

	decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(parts[1], "="))
	if err != nil {
		return 0, false
	}

	var claims map[string]any
	if err := json.Unmarshal(decoded, &claims); err != nil {
		return 0, false
	}

	// Woffu encodes the claim as a JSON string, but accept a number too.
	switch v := claims["UserId"].(type) {
	case string:
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, false
		}
		return id, true
	case float64:
		return int64(v), true
	default:
		return 0, false
	}
}
