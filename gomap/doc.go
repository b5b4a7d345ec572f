// Package gomap bridges value trees and Go values.
//
// The bridge goes through encoding/json, so struct fields map through
// their json tags and custom Marshaler/Unmarshaler implementations
// apply. Comments do not survive the bridge, and object key order is
// not preserved when encoding Go maps (keys come out sorted).
//
// # Usage
//
//	var cfg struct {
//	    Host string `json:"host"`
//	    Port int    `json:"port"`
//	}
//	err := gomap.Decode(node, &cfg)
//
//	node, err := gomap.Encode(cfg)
package gomap
