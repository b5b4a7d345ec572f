package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/yesagainivan/cosy"
	"github.com/yesagainivan/cosy/encode"
	"github.com/yesagainivan/cosy/format"
	"github.com/yesagainivan/cosy/ir"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='render with color'"`
	Compact bool `cli:"name=compact desc='render on a single line'"`
	Indent  int  `cli:"name=indent desc='spaces per nesting level (default 4)'"`

	OutFormat format.Format

	Main *cli.Command
}

func (cfg *MainConfig) fmtOpt(_ *cli.Context, v string) (any, error) {
	f, err := format.ParseFormat(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.OutFormat = f
	return f, nil
}

// render writes node in the selected output format. YAML and JSON go
// through the Go value bridge and lose comments.
func (cfg *MainConfig) render(node *ir.Node, w io.Writer) error {
	switch cfg.OutFormat {
	case format.YAMLFormat:
		data, err := cosy.ToYAML(node)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case format.JSONFormat:
		data, err := cosy.ToJSON(node)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return encode.Encode(node, w, cfg.encOpts(w)...)
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{}
	if cfg.Indent > 0 {
		res = append(res, encode.Indent(cfg.Indent))
	}
	if cfg.Compact {
		res = append(res, encode.Newlines(false))
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Schema string `cli:"name=schema desc='schema file to validate against'"`

	Check *cli.Command
}

type MergeConfig struct {
	*MainConfig

	Merge *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
