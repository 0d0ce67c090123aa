package cmd

import (
	"testing"

	"github.com/rubenboadana/WoffuAutomatizer/internal/model"
)

func TestStrOrDash(t *testing.T) {
	val := "08:30"
	empty := ""
	tests := []struct {
		input *string
		want  string
	}{
		{nil, "-"},
		{&empty, "-"},
		{&val, "08:30"},
	}
	for _, tt := range tests {
		if got := strOrDash(tt.input); got != tt.want {
			t.Errorf("strOrDash(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestDayKind(t *testing.T) {
	yes, no := true, false
	tests := []struct {
		name  string
		entry model.DiaryEntry
		want  string
	}{
		{"holiday", model.DiaryEntry{IsHoliday: &yes, IsWeekend: &no}, "holiday"},
		{"weekend", model.DiaryEntry{IsHoliday: &no, IsWeekend: &yes}, "weekend"},
		{"workday", model.DiaryEntry{IsHoliday: &no, IsWeekend: &no}, ""},
		{"unclassified", model.DiaryEntry{}, ""},
	}
	for _, tt := range tests {
		if got := dayKind(tt.entry); got != tt.want {
			t.Errorf("%s: dayKind = %q, want %q", tt.name, got, tt.want)
		}
	}
}
