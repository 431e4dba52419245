package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/docker/go-units"
)

// parseSize parses an image size written as decimal ("131072"), hex
// ("0x20000", the way flash partition sizes usually appear), or with a
// binary unit suffix ("128k", "1MiB"). An empty string means "use the
// minimum" and parses to 0.
func parseSize(s string) (int, error) {
	if s == "" {
		return 0, nil
	}

	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		n, err := strconv.ParseInt(s[2:], 16, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid size %q: %w", s, err)
		}
		return checkSize(s, n)
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return checkSize(s, n)
	}

	n, err := units.RAMInBytes(s)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	return checkSize(s, n)
}

func checkSize(s string, n int64) (int, error) {
	if n <= 0 || n > math.MaxInt32 {
		return 0, fmt.Errorf("size %q is out of range", s)
	}
	return int(n), nil
}
