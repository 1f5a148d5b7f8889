//go:build !simplejs_notypedarray

package simplejs

import "math"

func init() {
	builtinBuilders[BuiltinArrayBufferPrototype] = buildArrayBufferPrototype
	registerBuiltinInstaller(installArrayBufferBuiltin)
}

// installArrayBufferBuiltin registers the ArrayBuffer constructor in the
// context's global scope. Script-visible failures come back as error
// values, not Go errors.
func installArrayBufferBuiltin(ctx *RunContext) {
	ctx.RegisterGoFunc("ArrayBuffer", func(args ...JSValue) JSValue {
		v, err := OpCreateArrayBuffer(ctx, args)
		if err != nil {
			return ErrorVal(err)
		}
		return v
	})
}

// buildArrayBufferPrototype builds the shared ArrayBuffer.prototype
// singleton, chained to Object.prototype. Prototype methods take the
// receiver as their first argument.
func buildArrayBufferPrototype(ctx *RunContext) *JSValue {
	objProto := ctx.builtins.acquire(ctx, BuiltinObjectPrototype)
	defer objProto.release()

	proto := ObjectVal(map[string]JSValue{
		"byteLength": FunctionVal(arrayBufferByteLengthGetter()),
		"slice":      FunctionVal(arrayBufferSlice(ctx)),
	})
	proto.Proto = objProto.value
	return &proto
}

// arrayBufferByteLengthGetter implements get ArrayBuffer.prototype.byteLength
// (ES2015 24.1.4.1).
func arrayBufferByteLengthGetter() func(args ...JSValue) JSValue {
	return func(args ...JSValue) JSValue {
		if len(args) == 0 || !IsArrayBuffer(args[0]) {
			return ErrorVal(newTypeError("byteLength called on a non-ArrayBuffer receiver"))
		}
		return NumberVal(float64(ArrayBufferByteLength(args[0])))
	}
}

// arrayBufferSlice implements ArrayBuffer.prototype.slice (ES2015
// 24.1.4.3): relative begin and end are clamped into [0, byteLength], and
// the resolved range is copied into a fresh buffer. The one-argument form
// is exactly a suffix clone.
func arrayBufferSlice(ctx *RunContext) func(args ...JSValue) JSValue {
	return func(args ...JSValue) JSValue {
		if len(args) == 0 || !IsArrayBuffer(args[0]) {
			return ErrorVal(newTypeError("slice called on a non-ArrayBuffer receiver"))
		}
		this := args[0]
		srcLen := ArrayBufferByteLength(this)

		begin, err := resolveSliceIndex(args, 1, 0, srcLen)
		if err != nil {
			return ErrorVal(err)
		}
		end, err := resolveSliceIndex(args, 2, srcLen, srcLen)
		if err != nil {
			return ErrorVal(err)
		}
		if end < begin {
			end = begin
		}

		if end == srcLen {
			cloned, err := CloneArrayBuffer(ctx, this, begin)
			if err != nil {
				return ErrorVal(err)
			}
			return cloned
		}

		sliced, err := NewArrayBufferObject(ctx, end-begin)
		if err != nil {
			return ErrorVal(err)
		}
		copy(ArrayBufferBytes(sliced), ArrayBufferBytes(this)[begin:end])
		return sliced
	}
}

// resolveSliceIndex coerces the argument at position i and clamps it into
// [0, length], counting negative values back from length. A missing or
// undefined argument resolves to def.
func resolveSliceIndex(args []JSValue, i int, def, length uint32) (uint32, error) {
	if i >= len(args) || args[i].IsUndefined() {
		return def, nil
	}
	num, err := ToNumberValue(args[i])
	if err != nil {
		return 0, err
	}
	rel := math.Trunc(num)
	if math.IsNaN(rel) {
		rel = 0
	}
	if rel < 0 {
		rel += float64(length)
		if rel < 0 {
			return 0, nil
		}
	}
	if rel > float64(length) {
		return length, nil
	}
	return uint32(rel), nil
}
