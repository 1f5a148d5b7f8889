package simplejs

import "fmt"

// JSErrorKind distinguishes the standard error constructors the engine
// raises.
type JSErrorKind int

const (
	GenericError JSErrorKind = iota
	TypeError
	RangeError
)

func (k JSErrorKind) String() string {
	switch k {
	case TypeError:
		return "TypeError"
	case RangeError:
		return "RangeError"
	default:
		return "Error"
	}
}

// ScriptError is a user-facing engine error. Operations return it through
// their error result; builtin wrappers hand it to scripts as an error
// value.
type ScriptError struct {
	Kind    JSErrorKind
	Message string
}

func (e *ScriptError) Error() string {
	return e.Kind.String() + ": " + e.Message
}

func newRangeError(format string, args ...interface{}) *ScriptError {
	return &ScriptError{Kind: RangeError, Message: fmt.Sprintf(format, args...)}
}

func newTypeError(format string, args ...interface{}) *ScriptError {
	return &ScriptError{Kind: TypeError, Message: fmt.Sprintf(format, args...)}
}
