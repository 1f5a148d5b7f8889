//go:build !simplejs_notypedarray

package simplejs

import (
	"encoding/binary"
	"math"
)

// The pool layout of an ArrayBuffer record:
//   header (arrayBufferHeaderSize bytes: class tag, byte length)
//   data buffer (byteLength bytes)
// Header and data live in one allocation; the data bytes start immediately
// after the header and never move.

// arrayBufferHeaderSize is the record header reserved in front of the data
// region. It already is a multiple of memAlignment.
const arrayBufferHeaderSize = 8

// MaxArrayBufferLength is the largest byte length for which
// arrayBufferHeaderSize + alignment padding + length still fits the 32-bit
// allocation size. Lengths above it are rejected before any allocation.
const MaxArrayBufferLength = math.MaxUint32 - arrayBufferHeaderSize - memAlignment + 1

// ArrayBuffer is the engine's fixed-length raw byte object. The length is
// fixed at creation; only the data contents may change afterwards, through
// aliased handles.
type ArrayBuffer struct {
	ClassObject
	byteLength uint32
	data       []byte
}

// OpCreateArrayBuffer is the ArrayBuffer constructor entry point
// (ES2015 24.1.1.1). With no argument the length is 0; otherwise the
// argument is coerced to a number and must round-trip exactly through
// uint32 truncation. Errors are *ScriptError values; coercion failures are
// propagated unchanged.
func OpCreateArrayBuffer(ctx *RunContext, args []JSValue) (JSValue, error) {
	var length uint32

	if len(args) > 0 {
		num, err := ToNumberValue(args[0])
		if err != nil {
			return Undefined(), err
		}
		length = numberToUint32(num)

		if num != float64(length) {
			return Undefined(), newRangeError("Invalid ArrayBuffer length")
		}
	}

	if length > MaxArrayBufferLength {
		return Undefined(), newRangeError("Invalid ArrayBuffer length")
	}

	return NewArrayBufferObject(ctx, length)
}

// NewArrayBufferObject allocates a zero-filled ArrayBuffer of the given
// byte length, linked to the shared ArrayBuffer prototype. length must
// already be validated against MaxArrayBufferLength; OpCreateArrayBuffer
// does that for host inputs. Ownership of the returned value passes to
// the caller.
func NewArrayBufferObject(ctx *RunContext, length uint32) (JSValue, error) {
	proto := ctx.builtins.acquire(ctx, BuiltinArrayBufferPrototype)
	defer proto.release()

	// The pool's size type is int; on 32-bit platforms a length that passed
	// the 32-bit guard can still exceed it, so the record size is computed
	// in uint64 before narrowing.
	size := uint64(arrayBufferHeaderSize) + uint64(length)
	if size > math.MaxInt {
		return Undefined(), newRangeError("Invalid ArrayBuffer length")
	}

	off, err := ctx.mem.Alloc(int(size))
	if err != nil {
		return Undefined(), newRangeError("Invalid ArrayBuffer length")
	}

	// The header mirrors the tag and length into the pool so the record is
	// self-describing; the live object reads the struct fields below.
	header := ctx.mem.Read(off, arrayBufferHeaderSize)
	binary.LittleEndian.PutUint32(header[0:4], uint32(ClassArrayBuffer))
	binary.LittleEndian.PutUint32(header[4:8], length)

	// Fresh buffers must never expose previously used pool contents.
	ctx.mem.Zero(off+arrayBufferHeaderSize, int(length))

	buf := &ArrayBuffer{
		ClassObject: ClassObject{Class: ClassArrayBuffer, Proto: proto.value},
		byteLength:  length,
		data:        ctx.mem.Read(off+arrayBufferHeaderSize, int(length)),
	}
	return classObjectVal(buf), nil
}

// CloneArrayBuffer creates a new ArrayBuffer holding the suffix of src
// starting at offset (ES2015 24.1.1.4). Callers validate offset against
// the source length with their own user-facing bounds checks; an
// out-of-range offset here is a bug in the calling code.
func CloneArrayBuffer(ctx *RunContext, src JSValue, offset uint32) (JSValue, error) {
	srcBuf := arrayBufferOf(src)
	if offset > srcBuf.byteLength {
		panic("simplejs: ArrayBuffer clone offset out of range")
	}

	length := srcBuf.byteLength - offset
	cloned, err := NewArrayBufferObject(ctx, length)
	if err != nil {
		return Undefined(), err
	}
	copy(arrayBufferOf(cloned).data, srcBuf.data[offset:])
	return cloned, nil
}

// IsArrayBuffer reports whether v is an ArrayBuffer object. False for
// every primitive and for objects of any other class. Never fails.
func IsArrayBuffer(v JSValue) bool {
	return v.ObjectClass() == ClassArrayBuffer
}

// arrayBufferOf unwraps an ArrayBuffer value. Callers gate with
// IsArrayBuffer first.
func arrayBufferOf(v JSValue) *ArrayBuffer {
	buf, ok := v.Object.(*ArrayBuffer)
	if !ok || buf.Class != ClassArrayBuffer {
		panic("simplejs: value is not an ArrayBuffer")
	}
	return buf
}

// ArrayBufferByteLength returns the byte length of an ArrayBuffer value.
func ArrayBufferByteLength(v JSValue) uint32 {
	return arrayBufferOf(v).byteLength
}

// ArrayBufferBytes returns the data region of an ArrayBuffer value. The
// slice aliases the object's storage, it is not a copy: writes through it
// are visible to every other holder of a reference to the same object.
func ArrayBufferBytes(v JSValue) []byte {
	return arrayBufferOf(v).data
}
