package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"

	"github.com/andreyvit/scoredb"
	"github.com/urfave/cli/v2"
)

var Dump = cli.Command{
	Action:    withDB(dump),
	Name:      "dump",
	Usage:     "prints raw keys and values",
	ArgsUsage: "[<hex prefix>]",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "decode", Usage: "split V2 keys into their frames"},
		&cli.BoolFlag{Name: "keys-only", Usage: "omit values"},
	},
}

func dump(ctx *cli.Context, db *scoredb.DB) error {
	var prefix []byte
	if ctx.Args().Len() > 0 {
		var err error
		prefix, err = hex.DecodeString(ctx.Args().Get(0))
		if err != nil {
			return fmt.Errorf("invalid prefix: %w", err)
		}
	}
	flags := scoredb.DumpKeys | scoredb.DumpValues | scoredb.DumpStats
	if ctx.Bool("decode") {
		flags |= scoredb.DumpDecoded
	}
	if ctx.Bool("keys-only") {
		flags &^= scoredb.DumpValues
	}
	return db.View(func(tx *scoredb.Tx) error {
		return tx.Dump(ctx.App.Writer, prefix, flags)
	})
}

var Var = cli.Command{
	Name:  "var",
	Usage: "reads and writes VarDB scalars",
	Subcommands: []*cli.Command{
		{
			Name:      "get",
			ArgsUsage: "<name>",
			Flags:     []cli.Flag{&typeFlag},
			Action:    withDB(varGet),
		},
		{
			Name:      "set",
			ArgsUsage: "<name> <value>",
			Flags:     []cli.Flag{&typeFlag},
			Action:    withDB(varSet),
		},
		{
			Name:      "remove",
			ArgsUsage: "<name>",
			Action:    withDB(varRemove),
		},
	},
}

func openVar(ctx *cli.Context, tx *scoredb.Tx, nargs int) (*scoredb.VarDB[[]byte], error) {
	if ctx.Args().Len() != nargs {
		return nil, fmt.Errorf("expected %d arguments, got %d", nargs, ctx.Args().Len())
	}
	owner, err := ownerOf(ctx)
	if err != nil {
		return nil, err
	}
	return scoredb.NewVarDB[[]byte](parseKey(ctx.Args().Get(0)), tx.Score(owner))
}

func varGet(ctx *cli.Context, db *scoredb.DB) error {
	return db.View(func(tx *scoredb.Tx) error {
		v, err := openVar(ctx, tx, 1)
		if err != nil {
			return err
		}
		raw, err := v.Get()
		if err != nil {
			return err
		}
		return printValue(ctx, raw)
	})
}

func varSet(ctx *cli.Context, db *scoredb.DB) error {
	return db.Update(func(tx *scoredb.Tx) error {
		v, err := openVar(ctx, tx, 2)
		if err != nil {
			return err
		}
		raw, err := parseValue(ctx.String(typeFlag.Name), ctx.Args().Get(1))
		if err != nil {
			return err
		}
		return v.Set(raw)
	})
}

func varRemove(ctx *cli.Context, db *scoredb.DB) error {
	return db.Update(func(tx *scoredb.Tx) error {
		v, err := openVar(ctx, tx, 1)
		if err != nil {
			return err
		}
		return v.Remove()
	})
}

var Array = cli.Command{
	Name:  "array",
	Usage: "reads and writes ArrayDB lists",
	Subcommands: []*cli.Command{
		{
			Name:      "list",
			ArgsUsage: "<name>",
			Flags:     []cli.Flag{&typeFlag},
			Action:    withDB(arrayList),
		},
		{
			Name:      "get",
			ArgsUsage: "<name> <index>",
			Flags:     []cli.Flag{&typeFlag},
			Action:    withDB(arrayGet),
		},
		{
			Name:      "push",
			ArgsUsage: "<name> <value>",
			Flags:     []cli.Flag{&typeFlag},
			Action:    withDB(arrayPush),
		},
		{
			Name:      "pop",
			ArgsUsage: "<name>",
			Flags:     []cli.Flag{&typeFlag},
			Action:    withDB(arrayPop),
		},
	},
}

func openArray(ctx *cli.Context, tx *scoredb.Tx, nargs int) (*scoredb.ArrayDB[[]byte], error) {
	if ctx.Args().Len() != nargs {
		return nil, fmt.Errorf("expected %d arguments, got %d", nargs, ctx.Args().Len())
	}
	owner, err := ownerOf(ctx)
	if err != nil {
		return nil, err
	}
	return scoredb.NewArrayDB[[]byte](parseKey(ctx.Args().Get(0)), tx.Score(owner))
}

func arrayList(ctx *cli.Context, db *scoredb.DB) error {
	return db.View(func(tx *scoredb.Tx) error {
		a, err := openArray(ctx, tx, 1)
		if err != nil {
			return err
		}
		values, err := a.Values()
		if err != nil {
			return err
		}
		for i, raw := range values {
			s, err := formatValue(ctx.String(typeFlag.Name), raw)
			if err != nil {
				return err
			}
			fmt.Fprintf(ctx.App.Writer, "%d: %s\n", i, s)
		}
		fmt.Fprintf(ctx.App.Writer, "(%d elements)\n", a.Len())
		return nil
	})
}

func arrayGet(ctx *cli.Context, db *scoredb.DB) error {
	return db.View(func(tx *scoredb.Tx) error {
		a, err := openArray(ctx, tx, 2)
		if err != nil {
			return err
		}
		index, err := strconv.Atoi(ctx.Args().Get(1))
		if err != nil {
			return fmt.Errorf("invalid index: %w", err)
		}
		raw, err := a.Get(index)
		if err != nil {
			return err
		}
		return printValue(ctx, raw)
	})
}

func arrayPush(ctx *cli.Context, db *scoredb.DB) error {
	return db.Update(func(tx *scoredb.Tx) error {
		a, err := openArray(ctx, tx, 2)
		if err != nil {
			return err
		}
		raw, err := parseValue(ctx.String(typeFlag.Name), ctx.Args().Get(1))
		if err != nil {
			return err
		}
		return a.Put(raw)
	})
}

func arrayPop(ctx *cli.Context, db *scoredb.DB) error {
	return db.Update(func(tx *scoredb.Tx) error {
		a, err := openArray(ctx, tx, 1)
		if err != nil {
			return err
		}
		raw, ok, err := a.Pop()
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(ctx.App.Writer, "(empty)")
			return nil
		}
		return printValue(ctx, raw)
	})
}

var Dict = cli.Command{
	Name:  "dict",
	Usage: "reads and writes DictDB maps; the number of keys sets the depth",
	Subcommands: []*cli.Command{
		{
			Name:      "get",
			ArgsUsage: "<name> <key>...",
			Flags:     []cli.Flag{&typeFlag},
			Action:    withDB(dictGet),
		},
		{
			Name:      "set",
			ArgsUsage: "<name> <key>... <value>",
			Flags:     []cli.Flag{&typeFlag},
			Action:    withDB(dictSet),
		},
		{
			Name:      "remove",
			ArgsUsage: "<name> <key>...",
			Action:    withDB(dictRemove),
		},
	},
}

// openDictLeaf descends through keys[:len-1] and returns the depth-1 DictDB
// together with the last key.
func openDictLeaf(ctx *cli.Context, tx *scoredb.Tx, name string, keys []any) (*scoredb.DictDB[[]byte], any, error) {
	if len(keys) == 0 {
		return nil, nil, fmt.Errorf("at least one key is required")
	}
	owner, err := ownerOf(ctx)
	if err != nil {
		return nil, nil, err
	}
	d, err := scoredb.NewDictDB[[]byte](parseKey(name), tx.Score(owner), len(keys))
	if err != nil {
		return nil, nil, err
	}
	last := len(keys) - 1
	for _, k := range keys[:last] {
		d, err = d.Sub(k)
		if err != nil {
			return nil, nil, err
		}
	}
	return d, keys[last], nil
}

func dictGet(ctx *cli.Context, db *scoredb.DB) error {
	args := ctx.Args().Slice()
	if len(args) < 2 {
		return fmt.Errorf("expected <name> <key>...")
	}
	return db.View(func(tx *scoredb.Tx) error {
		d, key, err := openDictLeaf(ctx, tx, args[0], parseKeys(args[1:]))
		if err != nil {
			return err
		}
		raw, err := d.Get(key)
		if err != nil {
			return err
		}
		return printValue(ctx, raw)
	})
}

func dictSet(ctx *cli.Context, db *scoredb.DB) error {
	args := ctx.Args().Slice()
	if len(args) < 3 {
		return fmt.Errorf("expected <name> <key>... <value>")
	}
	n := len(args)
	raw, err := parseValue(ctx.String(typeFlag.Name), args[n-1])
	if err != nil {
		return err
	}
	return db.Update(func(tx *scoredb.Tx) error {
		d, key, err := openDictLeaf(ctx, tx, args[0], parseKeys(args[1:n-1]))
		if err != nil {
			return err
		}
		return d.Set(key, raw)
	})
}

func dictRemove(ctx *cli.Context, db *scoredb.DB) error {
	args := ctx.Args().Slice()
	if len(args) < 2 {
		return fmt.Errorf("expected <name> <key>...")
	}
	return db.Update(func(tx *scoredb.Tx) error {
		d, key, err := openDictLeaf(ctx, tx, args[0], parseKeys(args[1:]))
		if err != nil {
			return err
		}
		return d.Remove(key)
	})
}

var Export = cli.Command{
	Action:    withDB(export),
	Name:      "export",
	Usage:     "writes a compressed snapshot of the whole store",
	ArgsUsage: "<file>",
}

func export(ctx *cli.Context, db *scoredb.DB) error {
	if ctx.Args().Len() != 1 {
		return fmt.Errorf("missing snapshot file")
	}
	f, err := os.Create(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	n, err := db.Export(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.App.Writer, "Exported %d entries\n", n)
	return nil
}

var Import = cli.Command{
	Action:    withDB(importSnapshot),
	Name:      "import",
	Usage:     "loads a snapshot written by export",
	ArgsUsage: "<file>",
}

func importSnapshot(ctx *cli.Context, db *scoredb.DB) error {
	if ctx.Args().Len() != 1 {
		return fmt.Errorf("missing snapshot file")
	}
	f, err := os.Open(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	defer f.Close()
	n, err := db.Import(f)
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.App.Writer, "Imported %d entries\n", n)
	return nil
}

func printValue(ctx *cli.Context, raw []byte) error {
	s, err := formatValue(ctx.String(typeFlag.Name), raw)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, s)
	return nil
}
