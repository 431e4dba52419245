package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/lmittmann/tint"
)

// version is overridden at build time via -ldflags.
var version = "dev"

// CLI is the top-level command grammar.
type CLI struct {
	Verbose int              `short:"v" type:"counter" help:"How verbose to be, can use multiple (warn, info, debug)."`
	Config  string           `help:"Path to the board profiles config file." type:"path"`
	Version kong.VersionFlag `help:"Print version and exit."`

	Pack   PackCmd   `cmd:"" help:"Pack key=value text into a boot environment image."`
	Unpack UnpackCmd `cmd:"" help:"Unpack a boot environment image back into key=value text."`
	Info   InfoCmd   `cmd:"" help:"Show header diagnostics for an environment image."`
}

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("mkenv"),
		kong.Description("Convert between key=value text and bootloader environment images."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	err := ctx.Run(&cli, newLogger(cli.Verbose))
	ctx.FatalIfErrorf(err)
}

func newLogger(verbosity int) *slog.Logger {
	level := slog.LevelWarn
	switch verbosity {
	case 0:
	case 1:
		level = slog.LevelInfo
	default: // 2+
		level = slog.LevelDebug
	}

	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
	}))
}
