// Command enumgen writes enum.Register calls for Go enumeration types.
//
// Typical use is from a go:generate directive next to the type:
//
//	//go:generate enumgen --type Direction,Layer
package main

import (
	"go.lepak.sg/gamekit/cmd/enumgen/cmd"
)

func main() {
	cmd.Execute()
}
