package main

import (
	"fmt"
	"os"

	"github.com/andreyvit/scoredb"
	"github.com/urfave/cli/v2"
)

var (
	configFlag = cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "config file (yaml, toml or json)",
		EnvVars: []string{"SCOREDB_CONFIG"},
	}
	backendFlag = cli.StringFlag{
		Name:  "backend",
		Usage: "storage backend: memory, bolt or leveldb (overrides config)",
	}
	pathFlag = cli.StringFlag{
		Name:  "path",
		Usage: "database file or directory (overrides config)",
	}
	ownerFlag = cli.StringFlag{
		Name:  "owner",
		Usage: "contract address owning the state, hx… or cx…",
	}
	schemeFlag = cli.StringFlag{
		Name:  "write-scheme",
		Usage: "key scheme for new regions: v1 or v2 (overrides config)",
	}
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "scoredb",
		Usage: "inspect and edit contract state",
		Flags: []cli.Flag{
			&configFlag,
			&backendFlag,
			&pathFlag,
			&ownerFlag,
			&schemeFlag,
		},
		Commands: []*cli.Command{
			&Dump,
			&Var,
			&Array,
			&Dict,
			&Export,
			&Import,
		},
	}
}

func openDB(ctx *cli.Context) (*scoredb.DB, error) {
	cfg, err := scoredb.LoadConfig(ctx.String(configFlag.Name))
	if err != nil {
		return nil, err
	}
	if s := ctx.String(backendFlag.Name); s != "" {
		cfg.Backend, err = scoredb.ParseBackend(s)
		if err != nil {
			return nil, err
		}
	}
	if s := ctx.String(pathFlag.Name); s != "" {
		cfg.Path = s
	}
	if s := ctx.String(schemeFlag.Name); s != "" {
		cfg.WriteScheme, err = scoredb.ParseScheme(s)
		if err != nil {
			return nil, err
		}
	}
	if cfg.Backend == scoredb.MemoryBackend {
		fmt.Fprintln(ctx.App.ErrWriter, "warning: using the memory backend, nothing will be persisted")
	}
	opt, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	return scoredb.Open(opt)
}

func ownerOf(ctx *cli.Context) (scoredb.Address, error) {
	s := ctx.String(ownerFlag.Name)
	if s == "" {
		return scoredb.Address{}, fmt.Errorf("--%s is required", ownerFlag.Name)
	}
	return scoredb.ParseAddress(s)
}

// withDB opens the database for the duration of an action.
func withDB(action func(ctx *cli.Context, db *scoredb.DB) error) cli.ActionFunc {
	return func(ctx *cli.Context) (err error) {
		db, err := openDB(ctx)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := db.Close(); err == nil {
				err = cerr
			}
		}()
		return action(ctx, db)
	}
}
