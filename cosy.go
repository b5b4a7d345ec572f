// Package cosy loads, composes and renders COSY configuration files.
//
// COSY is a configuration format with unquoted keys, line comments
// that survive parsing, newline or comma separators, and file
// composition through extends and include directives.
//
// # Usage
//
//	node, err := cosy.LoadFile("app.cosy")
//	if err != nil { ... }
//	var cfg Config
//	err = gomap.Decode(node, &cfg)
//
// # Related Packages
//
//   - github.com/yesagainivan/cosy/parse - text to value trees
//   - github.com/yesagainivan/cosy/encode - value trees to text
//   - github.com/yesagainivan/cosy/merge - deep merge
//   - github.com/yesagainivan/cosy/include - extends/include resolution
//   - github.com/yesagainivan/cosy/schema - validation
//   - github.com/yesagainivan/cosy/gomap - Go value bridge
package cosy

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/yesagainivan/cosy/eval"
	"github.com/yesagainivan/cosy/include"
	"github.com/yesagainivan/cosy/ir"
	"github.com/yesagainivan/cosy/merge"
	"github.com/yesagainivan/cosy/parse"
)

// FromString expands ${EXPR} placeholders against the process
// environment and parses the result.
func FromString(s string) (*ir.Node, error) {
	expanded, err := eval.ExpandEnv(s, nil)
	if err != nil {
		return nil, NewError(err)
	}
	node, err := parse.Parse([]byte(expanded))
	if err != nil {
		return nil, NewError(err)
	}
	return node, nil
}

// LoadFile reads path, expands ${EXPR} placeholders, parses, and
// resolves extends/include directives against the file's directory.
func LoadFile(path string) (*ir.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewError(fmt.Errorf("load %s: %w", path, err))
	}
	expanded, err := eval.ExpandEnv(string(data), nil)
	if err != nil {
		return nil, NewError(fmt.Errorf("load %s: %w", path, err))
	}
	node, err := parse.Parse([]byte(expanded))
	if err != nil {
		return nil, NewError(fmt.Errorf("load %s: %w", path, err))
	}
	if err := include.Resolve(node, filepath.Dir(path)); err != nil {
		return nil, NewError(fmt.Errorf("load %s: %w", path, err))
	}
	return node, nil
}

// LoadAndMerge loads every path in order and merges each onto the
// accumulated result, so later files win. No paths yields an empty
// object.
func LoadAndMerge(paths []string) (*ir.Node, error) {
	acc := ir.NewObject()
	for _, path := range paths {
		node, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		merge.Merge(acc, node)
	}
	return acc, nil
}
