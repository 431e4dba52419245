package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bootenv-tools/mkenv/pkg/envimage"
)

// InfoCmd prints header diagnostics for an environment image without
// extracting it.
type InfoCmd struct {
	Redundant bool `short:"r" help:"The image carries a redundant-environment flag byte."`

	Image string `arg:"" help:"Image file to inspect; - reads stdin."`
}

func (c *InfoCmd) Run(cli *CLI, logger *slog.Logger) error {
	img, err := readImage(c.Image)
	if err != nil {
		return err
	}

	flagsSize := 0
	if c.Redundant {
		flagsSize = 1
	}

	res, err := envimage.Decode(img, flagsSize)
	if err != nil {
		return fmt.Errorf("unable to inspect %s: %w", c.Image, err)
	}

	stored := binary.LittleEndian.Uint32(img[:envimage.ChecksumSize])
	computed := envimage.Checksum(0, img[envimage.ChecksumSize+flagsSize:])

	crcStatus := "ok"
	if !res.ChecksumOK {
		crcStatus = "MISMATCH"
	}
	terminator := "found"
	if !res.TerminatorFound {
		terminator = "missing"
	}

	fmt.Printf("image:      %s\n", c.Image)
	fmt.Printf("size:       %d bytes\n", len(img))
	fmt.Printf("crc:        stored %08x, computed %08x (%s)\n", stored, computed, crcStatus)
	if flagsSize == 1 {
		fmt.Printf("flag:       %s\n", flagString(img[envimage.ChecksumSize]))
	}
	fmt.Printf("payload:    %d bytes\n", len(res.Text))
	fmt.Printf("terminator: %s\n", terminator)

	if !res.ChecksumOK {
		return errors.New("checksum mismatch")
	}
	return nil
}

func flagString(b byte) string {
	switch b {
	case 0:
		return "0 (obsolete)"
	case 1:
		return "1 (active)"
	default:
		return fmt.Sprintf("%d (unexpected)", b)
	}
}
