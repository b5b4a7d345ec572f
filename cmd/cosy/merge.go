package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/yesagainivan/cosy"
)

func mergeFiles(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		cfg.Merge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: merge requires at least one file", cli.ErrUsage)
	}
	node, err := cosy.LoadAndMerge(args)
	if err != nil {
		return err
	}
	return cfg.render(node, cc.Out)
}
