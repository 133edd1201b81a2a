//go:build noassert

package assert

// T is a no-op when the noassert build tag is set.
func T(check bool, msgFmt string, args ...any) {
}
