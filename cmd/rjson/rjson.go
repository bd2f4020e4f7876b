package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rjson-format/go-rjson/encode"
	"github.com/rjson-format/go-rjson/format"
	"github.com/rjson-format/go-rjson/ir"
	"github.com/rjson-format/go-rjson/parse"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func rjsonMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.H {
		cfg.Main.Usage(cc, nil)
		return nil
	}
	if cfg.V {
		fmt.Fprintf(cc.Out, "rjson %s\n", version)
		return nil
	}
	if count(cfg.J, cfg.C, cfg.Y) > 1 {
		return fmt.Errorf("%w: must specify at most one of -j[son] -c[ompact] -y[aml]", cli.ErrUsage)
	}
	if len(args) > 0 {
		if sub := cfg.Main.FindSub(cc, args[0]); sub != nil {
			err := sub.Run(cc, args[1:])
			if errors.Is(err, cli.ErrUsage) {
				sub.Usage(cc, err)
				os.Exit(sub.Exit(cc, err))
			}
			return err
		}
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: at most one input file, got %d", cli.ErrUsage, len(args))
	}
	node, err := cfg.readInput(args)
	if err != nil {
		return err
	}
	return cfg.writeOutput(cc.Out, node)
}

func count(vs ...bool) int {
	ttl := 0
	for _, v := range vs {
		if v {
			ttl++
		}
	}
	return ttl
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) readInput(args []string) (*ir.Node, error) {
	r := io.Reader(os.Stdin)
	name := "<stdin>"
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", args[0], err)
		}
		defer f.Close()
		r = f
		name = args[0]
	}
	node, err := cfg.decode(r)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", name, err)
	}
	return node, nil
}

func (cfg *MainConfig) decode(r io.Reader) (*ir.Node, error) {
	if cfg.InFormat != nil && cfg.InFormat.IsJSON() {
		return parse.ParseJSONReader(r)
	}
	return parse.ParseReader(r, cfg.parseOpts()...)
}

func (cfg *MainConfig) writeOutput(w io.Writer, node *ir.Node) error {
	if cfg.Y {
		return writeYAML(w, node)
	}
	if err := encode.Encode(node, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding: %w", err)
	}
	_, err := io.WriteString(w, encode.DefaultEol())
	return err
}

func writeYAML(w io.Writer, node *ir.Node) error {
	d, err := yaml.Marshal(node.ToAny())
	if err != nil {
		return fmt.Errorf("error encoding yaml: %w", err)
	}
	_, err = w.Write(d)
	return err
}

func marshalJSON(node *ir.Node) ([]byte, error) {
	var buf bytes.Buffer
	err := encode.Encode(node, &buf, encode.EncodeFormat(format.CompactFormat))
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
