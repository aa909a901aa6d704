package scene

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

var logger logrus.FieldLogger = logrus.StandardLogger()

// SetLogger replaces the logger used for diagnostics.
func SetLogger(l logrus.FieldLogger) {
	logger = l
}

// debug turns on checks that cost a little on every tree operation.
var debug bool

// SetDebug turns the debug checks on or off for every tree. With debug on,
// using a destroyed node in a tree operation panics instead of silently
// corrupting the tree.
func SetDebug(enabled bool) {
	debug = enabled
}

func debugCheckDestroyed(n *Node, op string) {
	if n.destroyed {
		panic(fmt.Sprintf("scene debug: %s on destroyed node %q", op, n.Name))
	}
}
