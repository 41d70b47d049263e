package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompletionPercent(t *testing.T) {
	cases := []struct {
		name        string
		answered    int
		catalogSize int
		photoCount  int
		want        int
	}{
		{"untouched", 0, 18, 0, 0},
		{"half the questions, no photo", 9, 18, 0, 47},
		{"all questions, no photo", 18, 18, 0, 94},
		{"all questions, one photo", 18, 18, 1, 100},
		{"extra photos add nothing", 18, 18, 6, 100},
		{"photo only", 0, 18, 1, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, completionPercent(tc.answered, tc.catalogSize, tc.photoCount))
		})
	}
}
