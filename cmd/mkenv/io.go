package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// readSource reads the key=value text to pack. "-" reads stdin and a .gz
// path is gunzipped transparently.
func readSource(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("unable to read stdin: %w", err)
		}
		return data, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open source file: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("unable to read gzip source %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read source %s: %w", path, err)
	}
	return data, nil
}

// readImage reads an environment image. "-" reads stdin.
func readImage(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("unable to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read image file: %w", err)
	}
	return data, nil
}

// writeTarget writes a complete output buffer. "-" writes stdout. The
// buffer is only ever written whole; a failed conversion leaves no file.
func writeTarget(path string, data []byte) error {
	if path == "-" {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("unable to write stdout: %w", err)
		}
		return nil
	}

	if err := os.WriteFile(path, data, 0o666); err != nil {
		return fmt.Errorf("unable to write target file: %w", err)
	}
	return nil
}
