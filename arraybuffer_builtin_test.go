//go:build !simplejs_notypedarray

package simplejs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeFilledBuffer(t *testing.T, ctx *RunContext, n int) JSValue {
	t.Helper()
	v, err := OpCreateArrayBuffer(ctx, []JSValue{NumberVal(float64(n))})
	require.NoError(t, err)
	data := ArrayBufferBytes(v)
	for i := range data {
		data[i] = byte(i + 1)
	}
	return v
}

func protoMethod(t *testing.T, v JSValue, name string) func(args ...JSValue) JSValue {
	t.Helper()
	require.NotNil(t, v.Proto)
	fn := v.Proto.ToObject()[name]
	require.True(t, fn.IsFunction(), "prototype has no %s method", name)
	return fn.ToFunction()
}

func TestArrayBufferConstructorGlobal(t *testing.T) {
	ctx := newTestContext()
	ctor, ok := ctx.Global("ArrayBuffer")
	require.True(t, ok)
	require.True(t, ctor.IsFunction())

	v := ctor.ToFunction()(NumberVal(8))
	require.True(t, IsArrayBuffer(v))
	assert.Equal(t, uint32(8), ArrayBufferByteLength(v))
}

func TestArrayBufferConstructorErrorValue(t *testing.T) {
	ctx := newTestContext()
	ctor, ok := ctx.Global("ArrayBuffer")
	require.True(t, ok)

	v := ctor.ToFunction()(NumberVal(2.5))
	require.True(t, v.IsError())
	assert.Contains(t, v.ToError().Error(), "Invalid ArrayBuffer length")
}

func TestPrototypeSingletonShared(t *testing.T) {
	ctx := newTestContext()
	a, err := OpCreateArrayBuffer(ctx, nil)
	require.NoError(t, err)
	b, err := OpCreateArrayBuffer(ctx, []JSValue{NumberVal(3)})
	require.NoError(t, err)

	require.NotNil(t, a.Proto)
	assert.Same(t, a.Proto, b.Proto)

	// the chain ends at Object.prototype
	objProto := ctx.builtins.acquire(ctx, BuiltinObjectPrototype)
	defer objProto.release()
	assert.Same(t, objProto.value, a.Proto.Proto)
}

func TestByteLengthGetter(t *testing.T) {
	ctx := newTestContext()
	v := makeFilledBuffer(t, ctx, 8)

	byteLength := protoMethod(t, v, "byteLength")
	assert.Equal(t, float64(8), byteLength(v).ToNumber())

	res := byteLength(NumberVal(3))
	require.True(t, res.IsError())
}

func TestSliceBasic(t *testing.T) {
	ctx := newTestContext()
	v := makeFilledBuffer(t, ctx, 10)
	slice := protoMethod(t, v, "slice")

	res := slice(v, NumberVal(2), NumberVal(5))
	require.True(t, IsArrayBuffer(res))
	assert.Equal(t, []byte{3, 4, 5}, ArrayBufferBytes(res))
}

func TestSliceDefaultsToSuffixClone(t *testing.T) {
	ctx := newTestContext()
	v := makeFilledBuffer(t, ctx, 10)
	slice := protoMethod(t, v, "slice")

	res := slice(v, NumberVal(3))
	require.True(t, IsArrayBuffer(res))
	assert.Equal(t, []byte{4, 5, 6, 7, 8, 9, 10}, ArrayBufferBytes(res))

	res = slice(v)
	assert.Equal(t, ArrayBufferBytes(v), ArrayBufferBytes(res))
}

func TestSliceNegativeIndices(t *testing.T) {
	ctx := newTestContext()
	v := makeFilledBuffer(t, ctx, 10)
	slice := protoMethod(t, v, "slice")

	res := slice(v, NumberVal(-3))
	assert.Equal(t, []byte{8, 9, 10}, ArrayBufferBytes(res))

	res = slice(v, NumberVal(-100))
	assert.Equal(t, uint32(10), ArrayBufferByteLength(res))

	res = slice(v, NumberVal(0), NumberVal(-2))
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, ArrayBufferBytes(res))
}

func TestSliceBeginPastEnd(t *testing.T) {
	ctx := newTestContext()
	v := makeFilledBuffer(t, ctx, 10)
	slice := protoMethod(t, v, "slice")

	res := slice(v, NumberVal(7), NumberVal(3))
	require.True(t, IsArrayBuffer(res))
	assert.Equal(t, uint32(0), ArrayBufferByteLength(res))
}

func TestSliceCoercionError(t *testing.T) {
	ctx := newTestContext()
	v := makeFilledBuffer(t, ctx, 4)
	slice := protoMethod(t, v, "slice")

	res := slice(v, ObjectVal(map[string]JSValue{"a": NumberVal(1)}))
	require.True(t, res.IsError())
	assert.Contains(t, res.ToError().Error(), "TypeError")
}

func TestSliceResultIsACopy(t *testing.T) {
	ctx := newTestContext()
	v := makeFilledBuffer(t, ctx, 6)
	slice := protoMethod(t, v, "slice")

	res := slice(v, NumberVal(1), NumberVal(4))
	ArrayBufferBytes(res)[0] = 0xFF
	assert.Equal(t, byte(2), ArrayBufferBytes(v)[1])
}

func TestSliceWrongReceiver(t *testing.T) {
	ctx := newTestContext()
	v := makeFilledBuffer(t, ctx, 2)
	slice := protoMethod(t, v, "slice")

	res := slice(StringVal("nope"))
	require.True(t, res.IsError())
}

func TestFacadeInstallsBuiltins(t *testing.T) {
	js := NewSimpleJS(1 << 12)
	_, ok := js.Context().Global("ArrayBuffer")
	assert.True(t, ok)
}
