package main

import (
	"fmt"
	"os"

	"github.com/rjson-format/go-rjson/parse"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

func runPatch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: patch requires a patch file and an optional target", cli.ErrUsage)
	}
	ops, err := loadPatch(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	doc, err := cfg.readInput(args[1:])
	if err != nil {
		return err
	}
	// TODO patch natively on *ir.Node to preserve comments
	d, err := marshalJSON(doc)
	if err != nil {
		return err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return fmt.Errorf("error applying patch: %w", err)
	}
	res, err := parse.Parse(out)
	if err != nil {
		return err
	}
	return cfg.writeOutput(cc.Out, res)
}

func loadPatch(cfg *MainConfig, arg string) (jsonpatch.Patch, error) {
	f, err := os.Open(arg)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", arg, err)
	}
	defer f.Close()
	node, err := cfg.decode(f)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	d, err := marshalJSON(node)
	if err != nil {
		return nil, err
	}
	ops, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding patch %s: %w", arg, err)
	}
	return ops, nil
}
