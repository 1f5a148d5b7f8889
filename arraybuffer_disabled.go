//go:build simplejs_notypedarray

package simplejs

// The binary-data object family is compiled out under this tag. Contexts
// come up without the ArrayBuffer builtin, and the predicate below is the
// only surviving surface so hosts keep compiling.

// IsArrayBuffer reports whether v is an ArrayBuffer object. Always false
// when the typed-array feature is compiled out.
func IsArrayBuffer(v JSValue) bool {
	return false
}
