package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rjson-format/go-rjson/dsf"
	"github.com/rjson-format/go-rjson/encode"
	"github.com/rjson-format/go-rjson/format"
	"github.com/rjson-format/go-rjson/ir"
	"github.com/rjson-format/go-rjson/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	J bool `cli:"name=j aliases=json desc='emit formatted json'"`
	C bool `cli:"name=c aliases=compact desc='emit minimal json'"`
	Y bool `cli:"name=y aliases=yaml desc='emit yaml'"`

	Color bool `cli:"name=color desc='encode with color'"`
	B     bool `cli:"name=b aliases=braces desc='open braces on the same line'"`
	NC    bool `cli:"name=nc desc='drop comments'"`
	Root  bool `cli:"name=root desc='omit braces around a root object'"`
	Math  bool `cli:"name=math desc='accept NaN and Inf values'"`
	Hex   bool `cli:"name=hex desc='accept 0x hexadecimal values'"`

	H bool `cli:"name=h aliases=help desc='show this help'"`
	V bool `cli:"name=v aliases=version desc='print version and exit'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) providers() []ir.ExtProvider {
	var res []ir.ExtProvider
	if cfg.Math {
		res = append(res, dsf.Math())
	}
	if cfg.Hex {
		res = append(res, dsf.Hex(false))
	}
	return res
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	res := []parse.ParseOption{
		parse.Comments(!cfg.NC),
	}
	if provs := cfg.providers(); len(provs) > 0 {
		res = append(res, parse.Providers(provs...))
	}
	return res
}

func (cfg *MainConfig) outFormat() format.Format {
	fmat := format.RJSONFormat
	switch {
	case cfg.J:
		fmat = format.JSONFormat
	case cfg.C:
		fmat = format.CompactFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	return fmat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.EncodeComments(!cfg.NC),
		encode.BracesSameLine(cfg.B),
		encode.OmitRootBraces(cfg.Root),
	}
	if provs := cfg.providers(); len(provs) > 0 {
		res = append(res, encode.Providers(provs...))
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type PatchConfig struct {
	*MainConfig

	Patch *cli.Command
}
