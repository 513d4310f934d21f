package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/five82/flashdeck/internal/app"
	"github.com/five82/flashdeck/internal/config"
)

func view(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() > 1 {
		return errors.New("view takes at most one deck file or directory")
	}
	opts := app.Options{
		ConfigPath: cmd.String("config"),
		PrefsPath:  cmd.String("prefs"),
		Deck:       cmd.Args().First(),
	}
	return app.Run(ctx, opts)
}

func stats(ctx context.Context, cmd *cli.Command) error {
	paths := cmd.Args().Slice()
	if len(paths) == 0 {
		return errors.New("stats needs at least one deck file")
	}
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	results, err := app.CollectStats(ctx, paths, cfg.Codec(), runtime.NumCPU())
	if err != nil {
		return err
	}
	for _, s := range results {
		fmt.Fprintln(os.Stdout, s)
	}
	return nil
}

func starred(_ context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 1 {
		return errors.New("starred needs exactly one deck file")
	}
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	_, err = app.WriteStarred(os.Stdout, cmd.Args().First(), cfg.Codec())
	return err
}

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cmd := &cli.Command{
		Name:      "flashdeck",
		Usage:     "Study flashcard decks stored as delimited text files",
		ArgsUsage: "[DECK|DIR]",
		Action:    view,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "~/.config/flashdeck/config.toml",
				Sources:     cli.EnvVars("FLASHDECK_CONFIG"),
			},
			&cli.StringFlag{
				Name:        "prefs",
				Usage:       "Path to preferences file",
				DefaultText: "~/.config/flashdeck/prefs.toml",
				Sources:     cli.EnvVars("FLASHDECK_PREFS"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "view",
				Usage:     "Open a deck, or browse a directory of decks",
				ArgsUsage: "[DECK|DIR]",
				Action:    view,
			},
			{
				Name:      "stats",
				Usage:     "Print the number of terms and starred terms of each deck",
				ArgsUsage: "DECK...",
				Action:    stats,
			},
			{
				Name:      "starred",
				Usage:     "Write the starred cards of a deck to stdout",
				ArgsUsage: "DECK",
				Action:    starred,
			},
		},
	}

	if err := cmd.Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "flashdeck: %v\n", err)
		return 1
	}
	return 0
}
