package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseWindow(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  TimeWindow
		valid bool
	}{
		{"evening hours", "6 PM - 9 PM", TimeWindow{1080, 1260}, true},
		{"morning to afternoon", "10 AM - 2 PM", TimeWindow{600, 840}, true},
		{"with minutes", "6:30 PM - 9:15 PM", TimeWindow{1110, 1155}, true},
		{"lowercase", "6 pm - 9 pm", TimeWindow{1080, 1260}, true},
		{"no spaces around dash", "6 PM-9 PM", TimeWindow{1080, 1260}, true},
		{"midnight start", "12 AM - 6 AM", TimeWindow{0, 360}, true},
		{"noon start", "12 PM - 3 PM", TimeWindow{720, 900}, true},
		{"start equals end", "9 AM - 9 AM", TimeWindow{}, false},
		{"start after end", "9 PM - 6 PM", TimeWindow{}, false},
		{"missing separator", "6 PM 9 PM", TimeWindow{}, false},
		{"too many clauses", "6 PM - 8 PM - 9 PM", TimeWindow{}, false},
		{"no meridiem", "18:00 - 21:00", TimeWindow{}, false},
		{"hour out of range", "13 PM - 2 PM", TimeWindow{}, false},
		{"empty", "", TimeWindow{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseWindow(tt.text)
			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
