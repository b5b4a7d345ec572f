// Package encode renders value trees back to configuration text.
//
// The output round-trips: parsing the encoded text yields a tree equal
// to the input, comments included, and encoding is idempotent over
// parse/encode cycles.
//
// # Usage
//
//	node, _ := parse.Parse(src)
//	err := encode.Encode(node, os.Stdout)
//
//	// compact, single line
//	s, err := encode.String(node, encode.Newlines(false))
//
// # Related Packages
//
//   - github.com/yesagainivan/cosy/ir - value tree representation
//   - github.com/yesagainivan/cosy/parse - parse text to value trees
package encode
