package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPluralize(t *testing.T) {
	assert.Equal(t, "task", Pluralize(1, "task", "tasks"))
	assert.Equal(t, "tasks", Pluralize(0, "task", "tasks"))
	assert.Equal(t, "tasks", Pluralize(2, "task", "tasks"))
}

func TestCount(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{count: 0, want: "0 albums"},
		{count: 1, want: "1 album"},
		{count: 6, want: "6 albums"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Count(tt.count, "album", "albums"))
		})
	}
}

func TestJoinChoices(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		want  string
	}{
		{name: "empty", items: nil, want: ""},
		{name: "single", items: []string{"light"}, want: "light"},
		{name: "pair", items: []string{"light", "dark"}, want: "light or dark"},
		{name: "list", items: []string{"light", "dark", "auto"}, want: "light, dark, or auto"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JoinChoices(tt.items))
		})
	}
}
