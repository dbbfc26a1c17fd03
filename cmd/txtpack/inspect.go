package main

import (
	"context"
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/samcharles93/txtpack/internal/store"
	"github.com/samcharles93/txtpack/pkg/bundle"
)

func inspectCmd(cfg Config) *cli.Command {
	var jsonOut bool

	return &cli.Command{
		Name:      "inspect",
		Usage:     "List the records in a bundle without writing any files",
		ArgsUsage: "[bundle]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "emit the manifest as JSON",
				Destination: &jsonOut,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			data, release, err := store.ReadInput(cmd.Args().First())
			if err != nil {
				return exitTag(tagFailedToReadInput, err)
			}
			defer func() { _ = release() }()

			recs := bundle.Unpack(data, cfg.bundleConfig())
			if len(recs) == 0 {
				return exitTag(tagNoValidDelimiters, nil)
			}

			if jsonOut {
				type entry struct {
					Name  string `json:"name"`
					Bytes int    `json:"bytes"`
				}
				manifest := struct {
					Files []entry `json:"files"`
				}{}
				for _, r := range recs {
					manifest.Files = append(manifest.Files, entry{Name: r.Name, Bytes: len(r.Content)})
				}
				out, err := json.MarshalIndent(manifest, "", "  ")
				if err != nil {
					return cli.Exit(fmt.Sprintf("error: %v", err), 1)
				}
				_, _ = os.Stdout.Write(append(out, '\n'))
				return nil
			}

			for _, r := range recs {
				fmt.Printf("  %-40s %8d bytes\n", r.Name, len(r.Content))
			}
			fmt.Printf("\n%d file(s) in bundle\n", len(recs))
			return nil
		},
	}
}
