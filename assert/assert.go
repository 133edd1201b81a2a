//go:build !noassert

package assert

import "fmt"

// T panics with a formatted message if check is false.
func T(check bool, msgFmt string, args ...any) {

	if check {
		return
	}

	panic(fmt.Sprintf("assert failed: "+msgFmt, args...))
}
