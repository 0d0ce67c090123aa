// Package render turns the operator's HTTP request template into one
// concrete request file per actionable diary entry.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rubenboadana/WoffuAutomatizer/internal/model"
)

// Placeholder conventions understood by Render. The literal markers are
// replaced everywhere they occur; the JSON patterns rewrite the field value
// in place.
const (
	diaryIDMarker = "DIARY_ID"
	tokenMarker   = "TOKEN_PLACEHOLDER"
)

var (
	datePattern   = regexp.MustCompile(`"date":\s*"[^"]+"`)
	userIDPattern = regexp.MustCompile(`"userId":\s*0`)
)

// ReadTemplate loads the request template file.
func ReadTemplate(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading template file: %w", err)
	}
	return string(data), nil
}

// Render substitutes the diary id, bearer token, date and user id into the
// template. The four substitutions target disjoint patterns, so their order
// does not matter.
func Render(template string, e model.DiaryEntry, userID int64, token string) string {
	out := strings.ReplaceAll(template, diaryIDMarker, strconv.FormatInt(e.DiaryID, 10))
	out = strings.ReplaceAll(out, tokenMarker, token)
	out = datePattern.ReplaceAllString(out, fmt.Sprintf(`"date": "%s"`, e.Date))
	out = userIDPattern.ReplaceAllString(out, fmt.Sprintf(`"userId": %d`, userID))
	return out
}

// ArtifactName returns the request filename for a diary date. Dates are
// unique within one month's diary set, so a collision overwrites (last
// write wins).
func ArtifactName(date string) string {
	return fmt.Sprintf("woffu_request_%s.http", date)
}

// WriteArtifact writes one rendered request into dir and returns its path.
func WriteArtifact(dir, date, content string) (string, error) {
	path := filepath.Join(dir, ArtifactName(date))
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return "", fmt.Errorf("writing request file %s: %w", path, err)
	}
	return path, nil
}

// TimestampedDir returns the per-run output directory under base.
func TimestampedDir(base string, now time.Time) string {
	return filepath.Join(base, "woffu_requests_"+now.Format("20060102_150405"))
}
