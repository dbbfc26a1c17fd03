package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/txtpack/internal/fileset"
	"github.com/samcharles93/txtpack/internal/logger"
	"github.com/samcharles93/txtpack/pkg/bundle"
)

func packCmd(cfg Config) *cli.Command {
	var (
		dir    string
		output string
	)

	return &cli.Command{
		Name:      "pack",
		Usage:     "Pack files matching a pattern into a delimited stream on stdout",
		ArgsUsage: "<pattern>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "directory",
				Aliases:     []string{"d"},
				Usage:       "directory to search for files",
				Value:       ".",
				Destination: &dir,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "write the bundle to a file instead of stdout",
				Destination: &output,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log := logger.FromContext(ctx)

			pattern := cmd.Args().First()
			if pattern == "" {
				return cli.Exit("usage: txtpack pack <pattern>", 2)
			}
			if cfg.SearchDir != "" && !cmd.IsSet("directory") {
				dir = cfg.SearchDir
			}

			paths, err := fileset.Match(dir, pattern)
			if err != nil {
				return exitTag(matchTag(err), err)
			}
			files, err := fileset.ReadAll(paths)
			if err != nil {
				return exitTag(tagFailedToReadFile, err)
			}

			out := bundle.Pack(files, cfg.bundleConfig())
			log.Debug("packed", "files", len(files), "bytes", len(out))

			if output != "" {
				if err := os.WriteFile(output, out, 0o644); err != nil {
					return exitTag(tagFailedToWriteFile, err)
				}
				log.Info("bundle written", "path", output, "files", len(files))
				return nil
			}
			if _, err := os.Stdout.Write(out); err != nil {
				return exitTag(tagFailedToWriteFile, err)
			}
			return nil
		},
	}
}
