package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPkgAlias(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"", ""},
		{"fieldaccess", "fieldaccess"},
		{"example.com/lib/fieldaccess", "fieldaccess"},
		{"example.com/fieldaccess/v2", "fieldaccess"},
		{"example.com/fieldaccess/v1", "v1"},
		{"example.com/fieldaccess/vnext", "vnext"},
		{"v3", "v3"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, PkgAlias(tt.path))
		})
	}
}

func TestFirst(t *testing.T) {
	v, ok := First([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	_, ok = First([]int(nil))
	assert.False(t, ok)

	assert.True(t, IsEmpty([]int{}))
	assert.False(t, IsEmpty([]int{1}))
}
