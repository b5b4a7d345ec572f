// Package include resolves the extends and include directives by
// loading, parsing and merging the referenced files.
//
// Precedence, lowest to highest: the extends base, then the include
// mixin, then the node's own fields. Both directive keys are stripped
// from the result.
package include

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/yesagainivan/cosy/debug"
	"github.com/yesagainivan/cosy/ir"
	"github.com/yesagainivan/cosy/merge"
	"github.com/yesagainivan/cosy/parse"
)

// MaxDepth bounds include/extends recursion. This is a depth limit,
// not cycle detection: a cyclic include pair exhausts it quickly, and
// a legitimately deep chain of more than MaxDepth hops is rejected.
const MaxDepth = 10

// Resolve resolves every extends/include directive under node, in
// place. Relative paths are resolved against baseDir; each loaded file
// uses its own directory as the base for its nested directives.
func Resolve(node *ir.Node, baseDir string) error {
	return resolve(node, baseDir, 0)
}

func resolve(node *ir.Node, baseDir string, depth int) error {
	if depth > MaxDepth {
		return fmt.Errorf("%w (max %d)", ErrRecursionLimit, MaxDepth)
	}
	switch node.Type {
	case ir.ObjectType:
		// directives never survive into output
		extendsVal := node.Delete("extends")
		includeVal := node.Delete("include")

		// resolve local fields before merging with inherited bases,
		// so includes nested under siblings are not skipped
		for _, v := range node.Values {
			if err := resolve(v, baseDir, depth); err != nil {
				return err
			}
		}

		if extendsVal == nil && includeVal == nil {
			return nil
		}

		base := ir.NewObject()
		if extendsVal != nil {
			loaded, err := loadAndResolve("extends", extendsVal, baseDir, depth)
			if err != nil {
				return err
			}
			base = loaded
		}
		if includeVal != nil {
			mixin, err := loadAndResolve("include", includeVal, baseDir, depth)
			if err != nil {
				return err
			}
			merge.Merge(base, mixin)
		}

		local := &ir.Node{Type: ir.ObjectType, Fields: node.Fields, Values: node.Values}
		merge.Merge(base, local)
		node.Fields = base.Fields
		node.Values = base.Values
		return nil
	case ir.ArrayType:
		for _, v := range node.Values {
			if err := resolve(v, baseDir, depth); err != nil {
				return err
			}
		}
	}
	return nil
}

func loadAndResolve(directive string, val *ir.Node, baseDir string, depth int) (*ir.Node, error) {
	if val.Type != ir.StringType {
		return nil, fmt.Errorf("%w: %s value must be a string, found %s",
			ErrBadTarget, directive, val.Type)
	}
	path := filepath.Join(baseDir, val.String)
	if debug.Include() {
		debug.Logf("include: loading %s (depth %d)\n", path, depth)
	}
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s target: %w", directive, err)
	}
	loaded, err := parse.Parse(d)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", path, err)
	}
	if err := resolve(loaded, filepath.Dir(path), depth+1); err != nil {
		return nil, err
	}
	if loaded.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: file %q must hold an object, found %s",
			ErrBadTarget, val.String, loaded.Type)
	}
	return loaded, nil
}
