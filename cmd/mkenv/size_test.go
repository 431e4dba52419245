package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseSize(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"131072", 131072},
		{"0x20000", 131072},
		{"0X20000", 131072},
		{"128k", 131072},
		{"8k", 8192},
		{"1MiB", 1048576},
	}
	for _, c := range cases {
		got, err := parseSize(c.in)
		require.NoError(t, err, "parseSize(%q)", c.in)
		assert.Equal(t, c.want, got, "parseSize(%q)", c.in)
	}
}

func Test_ParseSizeRejectsGarbage(t *testing.T) {
	for _, in := range []string{"0x", "0xzz", "bogus", "-8", "0", "-0x10"} {
		_, err := parseSize(in)
		require.Error(t, err, "parseSize(%q)", in)
	}
}
