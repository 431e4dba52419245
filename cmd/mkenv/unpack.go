package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/bootenv-tools/mkenv/pkg/envimage"
)

// UnpackCmd recovers key=value text from an environment image.
type UnpackCmd struct {
	Redundant bool   `short:"r" help:"The image carries a redundant-environment flag byte. The image does not record this itself."`
	Strict    bool   `help:"Exit non-zero when the checksum fails or the terminator is missing. Text is still written."`
	Profile   string `short:"p" help:"Board profile to take the redundancy setting from."`

	Image  string `arg:"" help:"Source image file; - reads stdin."`
	Source string `arg:"" help:"Target key=value text file; - writes stdout."`
}

func (c *UnpackCmd) Run(cli *CLI, logger *slog.Logger) error {
	redundant := c.Redundant
	if c.Profile != "" {
		prof, err := loadProfile(cli.Config, c.Profile, logger)
		if err != nil {
			return err
		}
		redundant = redundant || prof.Redundant
	}

	img, err := readImage(c.Image)
	if err != nil {
		return err
	}

	flagsSize := 0
	if redundant {
		flagsSize = 1
	}

	res, err := envimage.Decode(img, flagsSize)
	if err != nil {
		return fmt.Errorf("unable to unpack %s: %w", c.Image, err)
	}

	if !res.ChecksumOK {
		logger.Warn("checksum mismatch, recovering text anyway", "image", c.Image)
	}
	if !res.TerminatorFound {
		logger.Warn("no end-of-list terminator, text may be truncated or carry trailing garbage", "image", c.Image)
	}

	if err := writeTarget(c.Source, res.Text); err != nil {
		return err
	}

	logger.Info("unpacked environment image",
		"image", c.Image,
		"source", c.Source,
		"bytes", len(res.Text))

	if c.Strict {
		if !res.ChecksumOK {
			return errors.New("checksum mismatch")
		}
		if !res.TerminatorFound {
			return errors.New("no end-of-list terminator")
		}
	}
	return nil
}
