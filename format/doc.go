// Package format names the output formats the cosy tool can render:
// cosy, yaml, json.
//
// # Related Packages
//
//   - github.com/yesagainivan/cosy/encode - Encode value trees to text
//   - github.com/yesagainivan/cosy - YAML and JSON conversion
package format
