package main

import (
	"log/slog"
	"os"

	"gifmaker/config"
	"gifmaker/parallel"
	"gifmaker/preview"
	"gifmaker/sequence"
	"gifmaker/series"
	"gifmaker/tileset"

	"github.com/alecthomas/kong"
)

type levelFlag string

func (l levelFlag) AfterApply() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l)); err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

var cli struct {
	Config   kong.ConfigFlag `help:"Load flag values from a YAML file" placeholder:"FILE"`
	LogLevel levelFlag       `help:"Log level (debug, info, warn, error)" default:"info"`
	Workers  int             `help:"Number of workers encoding frames, 0 uses every CPU" default:"1"`

	Series  series.CLICmd  `cmd:"" help:"Build gif from series of images."`
	Tileset tileset.CLICmd `cmd:"" help:"Build gif from tileset indices."`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("gifmaker"),
		kong.Description("Create gif files from series of images or tileset."),
		kong.UsageOnError(),
		kong.Configuration(config.YAML, config.DefaultPaths...),
	)

	pool := parallel.Start(cli.Workers)
	defer pool.Cancel()

	if err := kctx.Run(pool.Do, pool.Wait, sequence.PreviewFunc(preview.Run)); err != nil {
		slog.Error("could not build gif", "command", kctx.Command(), "error", err)
		pool.Cancel()
		os.Exit(1)
	}
}
