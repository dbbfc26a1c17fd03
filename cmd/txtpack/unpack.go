package main

import (
	"bytes"
	"context"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/txtpack/internal/logger"
	"github.com/samcharles93/txtpack/internal/store"
	"github.com/samcharles93/txtpack/pkg/bundle"
)

func unpackCmd(cfg Config) *cli.Command {
	var (
		input  string
		outDir string
	)

	return &cli.Command{
		Name:  "unpack",
		Usage: "Unpack a delimited stream back into individual files",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "input",
				Aliases:     []string{"i"},
				Usage:       "bundle file to read (default: stdin)",
				Destination: &input,
			},
			&cli.StringFlag{
				Name:        "output-dir",
				Aliases:     []string{"o"},
				Usage:       "directory to write files to",
				Value:       ".",
				Destination: &outDir,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log := logger.FromContext(ctx)

			if cfg.OutputDir != "" && !cmd.IsSet("output-dir") {
				outDir = cfg.OutputDir
			}

			data, release, err := store.ReadInput(input)
			if err != nil {
				return exitTag(tagFailedToReadInput, err)
			}
			defer func() { _ = release() }()

			if len(bytes.TrimSpace(data)) == 0 {
				return exitTag(tagNoInputContent, nil)
			}

			recs := bundle.Unpack(data, cfg.bundleConfig())
			if len(recs) == 0 {
				return exitTag(tagNoValidDelimiters, nil)
			}

			if err := store.EnsureDir(outDir); err != nil {
				return exitTag(tagFailedToCreateDir, err)
			}
			if err := store.WriteAll(outDir, recs); err != nil {
				return exitTag(tagFailedToWriteFile, err)
			}

			for _, r := range recs {
				log.Debug("wrote file", "name", r.Name, "bytes", len(r.Content))
			}
			log.Info("unpacked", "files", len(recs), "dir", outDir)
			return nil
		},
	}
}
