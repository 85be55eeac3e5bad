package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/signadot/yamlops/encode"
	"github.com/signadot/yamlops/format"
	"github.com/signadot/yamlops/parse"
)

type MainConfig struct {
	Engine  string `cli:"name=e aliases=engine desc='tree engine: yaml3 or ir'"`
	Color   bool   `cli:"name=color desc='color diffs'"`
	WireOut bool   `cli:"name=wire desc='output in compact format'"`
	Indent  int    `cli:"name=indent desc='indentation of output'"`

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

func (cfg *MainConfig) inFormat() format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	return format.YAMLFormat
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return cfg.inFormat()
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{parse.ParseFormat(cfg.inFormat())}
}

func (cfg *MainConfig) encOpts() []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.Indent > 0 {
		res = append(res, encode.EncodeIndent(cfg.Indent))
	}
	return res
}

// useColor reports whether diffs written to w should be colored: when
// -color is given, or when it is not and w is a terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type SortConfig struct {
	*MainConfig
	Sort *cli.Command
}

type ConvertConfig struct {
	*MainConfig
	To      string `cli:"name=to desc='target engine: yaml3 or ir'"`
	Convert *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Check *cli.Command
}

type TreeConfig struct {
	*MainConfig
	Tree *cli.Command
}

type EqConfig struct {
	*MainConfig
	Unordered bool `cli:"name=unordered desc='ignore mapping key order'"`
	Eq        *cli.Command
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg as string'"`
	Patch  *cli.Command
}
