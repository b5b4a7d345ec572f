package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/yesagainivan/cosy"
)

func diffFiles(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two files", cli.ErrUsage)
	}
	a, err := loadArg(args[0])
	if err != nil {
		return fmt.Errorf("error loading %s: %w", args[0], err)
	}
	b, err := loadArg(args[1])
	if err != nil {
		return fmt.Errorf("error loading %s: %w", args[1], err)
	}
	out := cosy.Diff(a, b)
	if out == "" {
		return nil
	}
	if _, err := io.WriteString(cc.Out, out); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
