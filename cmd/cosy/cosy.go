package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/yesagainivan/cosy"
	"github.com/yesagainivan/cosy/include"
	"github.com/yesagainivan/cosy/ir"
)

func cosyMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// loadArg loads a file path, or stdin for "-". Stdin resolves
// extends/include against the current directory.
func loadArg(arg string) (*ir.Node, error) {
	if arg != "-" {
		return cosy.LoadFile(arg)
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, err
	}
	node, err := cosy.FromString(string(data))
	if err != nil {
		return nil, err
	}
	if err := include.Resolve(node, "."); err != nil {
		return nil, err
	}
	return node, nil
}
