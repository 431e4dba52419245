package main

import (
	"fmt"
	"log/slog"

	"github.com/bootenv-tools/mkenv/pkg/envimage"
)

// PackCmd builds an environment image from key=value text.
type PackCmd struct {
	Size      string `short:"s" help:"Total image size in bytes; decimal, 0x hex, or a size suffix like 128k. Defaults to the minimum that fits."`
	Redundant bool   `short:"r" help:"Write the redundant-environment flag byte, marked active."`
	Obsolete  bool   `help:"Mark the flag byte obsolete instead of active; implies the redundant layout."`
	NoCRC     bool   `name:"no-crc" help:"Leave the checksum word zeroed."`
	Profile   string `short:"p" help:"Board profile to take size and redundancy defaults from."`

	Source string `arg:"" help:"Source key=value text file; .gz is gunzipped, - reads stdin."`
	Image  string `arg:"" help:"Target image file; - writes stdout."`
}

func (c *PackCmd) Run(cli *CLI, logger *slog.Logger) error {
	opts := envimage.EncodeOptions{SkipCRC: c.NoCRC}

	if c.Profile != "" {
		prof, err := loadProfile(cli.Config, c.Profile, logger)
		if err != nil {
			return err
		}
		if prof.Redundant {
			opts.Flag = envimage.FlagActive
		}
		if prof.Size != "" {
			opts.Size, err = parseSize(prof.Size)
			if err != nil {
				return fmt.Errorf("profile %q: %w", c.Profile, err)
			}
		}
	}

	// Explicit flags win over profile defaults.
	if c.Redundant {
		opts.Flag = envimage.FlagActive
	}
	if c.Obsolete {
		opts.Flag = envimage.FlagObsolete
	}
	if c.Size != "" {
		size, err := parseSize(c.Size)
		if err != nil {
			return err
		}
		opts.Size = size
	}

	text, err := readSource(c.Source)
	if err != nil {
		return err
	}

	img, err := envimage.Encode(text, opts)
	if err != nil {
		return fmt.Errorf("unable to pack %s: %w", c.Source, err)
	}

	logger.Info("packed environment image",
		"source", c.Source,
		"image", c.Image,
		"size", len(img),
		"redundant", opts.Flag != envimage.FlagNone)

	return writeTarget(c.Image, img)
}
