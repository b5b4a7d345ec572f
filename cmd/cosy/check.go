package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/yesagainivan/cosy"
	"github.com/yesagainivan/cosy/schema"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Schema == "" {
		return fmt.Errorf("%w: check requires -schema", cli.ErrUsage)
	}
	schemaNode, err := cosy.LoadFile(cfg.Schema)
	if err != nil {
		return fmt.Errorf("error loading schema %s: %w", cfg.Schema, err)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	failed := false
	for _, arg := range args {
		node, err := loadArg(arg)
		if err != nil {
			return fmt.Errorf("error loading %s: %w", arg, err)
		}
		report, err := schema.Validate(node, schemaNode)
		if err != nil {
			return fmt.Errorf("error validating %s: %w", arg, err)
		}
		for _, it := range report {
			fmt.Fprintf(cc.Out, "%s: %s\n", arg, it)
		}
		if len(report.Errors()) != 0 {
			failed = true
		}
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}
