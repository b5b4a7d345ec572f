// Package merge implements the cosy deep merge.
//
// Objects merge key by key. Every other kind, arrays included,
// replaces wholesale. Arrays are never concatenated.
package merge

import "github.com/yesagainivan/cosy/ir"

// Merge deep-merges override into base, in place. override is never
// mutated and never shares nodes with the result.
func Merge(base, override *ir.Node) {
	if base.Type == ir.ObjectType && override.Type == ir.ObjectType {
		for i, key := range override.Fields {
			if bv := base.Get(key); bv != nil {
				Merge(bv, override.Values[i])
				continue
			}
			// new keys land after base's own, in override order
			base.Set(key, override.Values[i].Clone())
		}
		return
	}
	*base = *override.Clone()
}
