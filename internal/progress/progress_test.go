package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercent(t *testing.T) {
	cases := []struct {
		name  string
		done  int64
		total int64
		want  int
	}{
		{"empty", 0, 0, 0},
		{"none done", 0, 5, 0},
		{"all done", 4, 4, 100},
		{"one of three truncates down", 1, 3, 33},
		{"two of three truncates down", 2, 3, 66},
		{"one of seven", 1, 7, 14},
		{"half", 1, 2, 50},
		{"negative total treated as empty", 0, -1, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Percent(tc.done, tc.total))
		})
	}
}
