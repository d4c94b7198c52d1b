package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/scaffold/internal/adapters/logger"
	"go.trai.ch/scaffold/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	assert.Empty(t, logger.CollectErrorEntriesExported(nil))

	entries := logger.CollectErrorEntriesExported(errors.New("simple error"))
	assert.Equal(t, []logger.ErrorEntry{{Message: "simple error"}}, entries)

	chain := zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle layer"), "outer layer")
	entries = logger.CollectErrorEntriesExported(chain)
	messages := make([]string, 0, len(entries))
	for _, e := range entries {
		messages = append(messages, e.Message)
	}
	assert.Equal(t, []string{"outer layer", "middle layer", "root cause"}, messages)
}

func TestCollectErrorEntries_ResolutionError(t *testing.T) {
	err := &domain.ResolutionError{
		Request: domain.InjectionRequest{Target: "clock"},
		Err:     errors.New("not registered"),
	}

	entries := logger.CollectErrorEntriesExported(err)
	assert.Len(t, entries, 1)
	assert.Contains(t, entries[0].Message, "clock")
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "empty",
			entries: nil,
			want:    "",
		},
		{
			name:    "single",
			entries: []logger.ErrorEntry{{Message: "single error"}},
			want:    "Error: single error",
		},
		{
			name: "causes",
			entries: []logger.ErrorEntry{
				{Message: "first"},
				{Message: "second"},
				{Message: "third"},
			},
			want: "Error: first\n\n  Caused by:\n    → second\n    → third",
		},
		{
			name: "sorted metadata",
			entries: []logger.ErrorEntry{{
				Message:  "error",
				Metadata: map[string]any{"zebra": "z", "alpha": "a"},
			}},
			want: "Error: error\n       alpha: a\n       zebra: z",
		},
		{
			name: "multiline cause with metadata",
			entries: []logger.ErrorEntry{
				{Message: "main"},
				{Message: "cause line1\ncause line2", Metadata: map[string]any{"line": 3}},
			},
			want: "Error: main\n\n  Caused by:\n    → cause line1\n      cause line2\n      line: 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntriesExported(tt.entries))
		})
	}
}
