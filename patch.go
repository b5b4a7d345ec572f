package cosy

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/yesagainivan/cosy/gomap"
	"github.com/yesagainivan/cosy/ir"
)

// MergePatch applies patch to doc with RFC 7386 semantics: objects
// merge, null removes a field, anything else replaces. Comments do
// not survive, the patch goes through the JSON bridge.
func MergePatch(doc, patch *ir.Node) (*ir.Node, error) {
	docData, err := json.Marshal(gomap.ToAny(doc))
	if err != nil {
		return nil, fmt.Errorf("merge patch: %w", err)
	}
	patchData, err := json.Marshal(gomap.ToAny(patch))
	if err != nil {
		return nil, fmt.Errorf("merge patch: %w", err)
	}
	res, err := jsonpatch.MergePatch(docData, patchData)
	if err != nil {
		return nil, fmt.Errorf("merge patch: %w", err)
	}
	return gomap.FromJSON(res)
}
