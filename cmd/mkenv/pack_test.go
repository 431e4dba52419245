package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bootenv-tools/mkenv/pkg/envimage"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEnv = "baudrate=115200\nbootdelay=5\n"

func Test_PackUnpackRoundTrip(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "uboot.env.txt")
	image := filepath.Join(dir, "uboot.env")
	recovered := filepath.Join(dir, "recovered.txt")
	require.NoError(t, os.WriteFile(source, []byte(testEnv), 0o644))

	cli := &CLI{}
	logger := testLogger(t)

	pack := PackCmd{Size: "0x80", Source: source, Image: image}
	require.NoError(t, pack.Run(cli, logger))

	img, err := os.ReadFile(image)
	require.NoError(t, err)
	require.Len(t, img, 0x80)

	unpack := UnpackCmd{Strict: true, Image: image, Source: recovered}
	require.NoError(t, unpack.Run(cli, logger))

	text, err := os.ReadFile(recovered)
	require.NoError(t, err)
	assert.Equal(t, testEnv, string(text))
}

func Test_PackRedundantWithProfile(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "profiles.toml")
	source := filepath.Join(dir, "env.txt")
	image := filepath.Join(dir, "env.img")
	require.NoError(t, os.WriteFile(config, []byte("[mx28evk]\nsize = \"0x40\"\nredundant = true\n"), 0o644))
	require.NoError(t, os.WriteFile(source, []byte(testEnv), 0o644))

	cli := &CLI{Config: config}
	logger := testLogger(t)

	pack := PackCmd{Profile: "mx28evk", Source: source, Image: image}
	require.NoError(t, pack.Run(cli, logger))

	img, err := os.ReadFile(image)
	require.NoError(t, err)
	require.Len(t, img, 0x40)
	assert.Equal(t, byte(1), img[4], "flag byte should be active")

	res, err := envimage.Decode(img, 1)
	require.NoError(t, err)
	assert.True(t, res.ChecksumOK)
	assert.Equal(t, testEnv, string(res.Text))
}

func Test_PackGzipSource(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "env.txt.gz")
	image := filepath.Join(dir, "env.img")

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte(testEnv))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, os.WriteFile(source, buf.Bytes(), 0o644))

	pack := PackCmd{Source: source, Image: image}
	require.NoError(t, pack.Run(&CLI{}, testLogger(t)))

	img, err := os.ReadFile(image)
	require.NoError(t, err)

	res, err := envimage.Decode(img, 0)
	require.NoError(t, err)
	assert.True(t, res.ChecksumOK)
	assert.Equal(t, testEnv, string(res.Text))
}

func Test_PackSizeTooSmall(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "env.txt")
	image := filepath.Join(dir, "env.img")
	require.NoError(t, os.WriteFile(source, []byte(testEnv), 0o644))

	pack := PackCmd{Size: "16", Source: source, Image: image}
	err := pack.Run(&CLI{}, testLogger(t))
	require.Error(t, err)

	var tooSmall *envimage.SizeTooSmallError
	require.ErrorAs(t, err, &tooSmall)

	// No partial target file is left behind.
	_, err = os.Stat(image)
	require.True(t, os.IsNotExist(err))
}

func Test_UnpackStrictCatchesCorruption(t *testing.T) {
	dir := t.TempDir()
	image := filepath.Join(dir, "env.img")
	recovered := filepath.Join(dir, "recovered.txt")

	img, err := envimage.Encode([]byte(testEnv), envimage.EncodeOptions{})
	require.NoError(t, err)
	img[10] ^= 0xFF
	require.NoError(t, os.WriteFile(image, img, 0o644))

	unpack := UnpackCmd{Strict: true, Image: image, Source: recovered}
	err = unpack.Run(&CLI{}, testLogger(t))
	require.Error(t, err)
	require.Contains(t, err.Error(), "checksum")

	// Lenient policy still wrote the best-effort text.
	_, statErr := os.Stat(recovered)
	require.NoError(t, statErr)
}
