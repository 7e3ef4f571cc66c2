package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/wrenfield/docdex/internal"
	pkgconfig "github.com/wrenfield/docdex/pkg/config"
)

// run builds the action for one invocation mode.
func run(watch bool) func(context.Context, *cli.Command) error {
	return func(ctx context.Context, cmd *cli.Command) error {
		cfg := internal.NewDefaultConfig()
		if err := pkgconfig.LoadOptional(cmd.String("config"), cfg); err != nil {
			return fmt.Errorf("failed to parse config: %w", err)
		}

		opts := []internal.Option{
			internal.WithConfig(cfg),
		}
		if root := cmd.String("root"); root != "" {
			opts = append(opts, internal.WithRoot(root))
		}
		if watch {
			opts = append(opts, internal.WithWatch())
		}

		if err := internal.Run(ctx, opts...); err != nil {
			return fmt.Errorf("app run error: %w", err)
		}

		return nil
	}
}

// flags returns a fresh flag set so commands do not share flag instances.
func flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to config file",
			DefaultText: "docdex.yaml",
			Value:       "docdex.yaml",
			Sources:     cli.EnvVars("DOCDEX_CONFIG_FILE"),
		},
		&cli.StringFlag{
			Name:    "root",
			Aliases: []string{"r"},
			Usage:   "Repository root to index",
			Sources: cli.EnvVars("DOCDEX_ROOT"),
		},
	}
}

func main() {
	cmd := &cli.Command{
		Name:   "docdex",
		Usage:  "Cross-reference Markdown documentation tags into a generated index table",
		Action: run(false),
		Flags:  flags(),
		Commands: []*cli.Command{
			{
				Name:   "build",
				Usage:  "Scan the collections once and rewrite the tag index",
				Action: run(false),
				Flags:  flags(),
			},
			{
				Name:   "watch",
				Usage:  "Rebuild the tag index whenever a collection changes",
				Action: run(true),
				Flags:  flags(),
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
