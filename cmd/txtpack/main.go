package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/txtpack/internal/logger"
)

func main() {
	cfg := LoadConfig()
	log := newLogger(cfg)

	app := &cli.Command{
		Name:  "txtpack",
		Usage: "Pack text files into a single delimited stream and back",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
		Commands: []*cli.Command{
			packCmd(cfg),
			unpackCmd(cfg),
			inspectCmd(cfg),
			serveCmd(cfg),
			versionCmd(),
		},
	}

	ctx := logger.WithContext(context.Background(), log)
	if err := app.Run(ctx, os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
