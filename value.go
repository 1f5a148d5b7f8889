package simplejs

import (
	"math"
	"strconv"
	"strings"
)

// JSValueType represents the type of a JS value.
type JSValueType int

const (
	JSUndefined JSValueType = iota
	JSNull
	JSBoolean
	JSNumber
	JSString
	JSObject
	JSFunction
	JSError
)

func (v JSValueType) String() string {
	switch v {
	case JSUndefined:
		return "undefined"
	case JSNull:
		return "null"
	case JSBoolean:
		return "boolean"
	case JSNumber:
		return "number"
	case JSString:
		return "string"
	case JSObject:
		return "object"
	case JSFunction:
		return "function"
	case JSError:
		return "error"
	default:
		return "unknown"
	}
}

// ClassID tags an engine-internal specialized object kind: a generic
// object record extended with engine-managed state, as opposed to a plain
// map-backed object.
type ClassID int

const (
	ClassNone ClassID = iota
	ClassArrayBuffer
)

func (c ClassID) String() string {
	switch c {
	case ClassArrayBuffer:
		return "ArrayBuffer"
	default:
		return "Object"
	}
}

// ClassObject is the common header of class objects: the prototype link
// and the class tag, both set at creation and never mutated afterwards.
type ClassObject struct {
	Class ClassID
	Proto *JSValue
}

func (o *ClassObject) objectClass() ClassID { return o.Class }
func (o *ClassObject) prototype() *JSValue  { return o.Proto }

// classed is implemented by every class-object payload.
type classed interface {
	objectClass() ClassID
	prototype() *JSValue
}

// JSValue is a JavaScript value.
type JSValue struct {
	Type     JSValueType
	Bool     bool
	Number   float64
	String   string
	Object   interface{} // map[string]JSValue, []JSValue, or a classed payload
	Function func(args ...JSValue) JSValue
	Error    error

	Proto   *JSValue // 原型链支持
	IsArray bool     // Array marker
}

// Constructors
func Undefined() JSValue          { return JSValue{Type: JSUndefined} }
func Null() JSValue               { return JSValue{Type: JSNull} }
func BoolVal(b bool) JSValue      { return JSValue{Type: JSBoolean, Bool: b} }
func NumberVal(n float64) JSValue { return JSValue{Type: JSNumber, Number: n} }
func StringVal(s string) JSValue  { return JSValue{Type: JSString, String: s} }
func ObjectVal(o map[string]JSValue) JSValue {
	// Check if this is an array-like object (all keys are numeric or 'length')
	isArray := true
	for k := range o {
		if k == "length" {
			continue
		}
		_, err := strconv.Atoi(k)
		if err != nil {
			isArray = false
			break
		}
	}
	return JSValue{Type: JSObject, Object: o, IsArray: isArray}
}
func FunctionVal(fn func(args ...JSValue) JSValue) JSValue {
	return JSValue{Type: JSFunction, Function: fn}
}
func ErrorVal(err error) JSValue { return JSValue{Type: JSError, Error: err} }

// classObjectVal wraps a class-object payload as an object value. The
// value's prototype link is the one stored on the payload's header.
func classObjectVal(payload classed) JSValue {
	return JSValue{Type: JSObject, Object: payload, Proto: payload.prototype()}
}

// Type checks
func (v JSValue) IsUndefined() bool { return v.Type == JSUndefined }
func (v JSValue) IsNull() bool      { return v.Type == JSNull }
func (v JSValue) IsBoolean() bool   { return v.Type == JSBoolean }
func (v JSValue) IsNumber() bool    { return v.Type == JSNumber }
func (v JSValue) IsString() bool    { return v.Type == JSString }
func (v JSValue) IsObject() bool    { return v.Type == JSObject }
func (v JSValue) IsFunction() bool  { return v.Type == JSFunction }
func (v JSValue) IsError() bool     { return v.Type == JSError }

// ObjectClass returns the class tag of v, or ClassNone when v is not an
// object or is a plain map/array object.
func (v JSValue) ObjectClass() ClassID {
	if v.Type != JSObject {
		return ClassNone
	}
	if c, ok := v.Object.(classed); ok {
		return c.objectClass()
	}
	return ClassNone
}

// Accessors
func (v JSValue) ToBool() bool {
	switch v.Type {
	case JSUndefined, JSNull:
		return false
	case JSBoolean:
		return v.Bool
	case JSNumber:
		// 0 和 NaN 为 false，其他为 true
		return v.Number != 0 && !math.IsNaN(v.Number)
	case JSString:
		// 空字符串为 false，非空为 true
		return v.String != ""
	case JSObject, JSFunction:
		// 对象和函数总是 true
		return true
	default:
		return false
	}
}

func (v JSValue) ToNumber() float64 { return v.Number }

func (v JSValue) ToString() string {
	switch v.Type {
	case JSUndefined:
		return "undefined"
	case JSNull:
		return "null"
	case JSBoolean:
		if v.Bool {
			return "true"
		}
		return "false"
	case JSNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case JSString:
		return v.String
	case JSObject:
		if c, ok := v.Object.(classed); ok {
			return "[object " + c.objectClass().String() + "]"
		}
		if v.IsArray {
			// handle slice arrays
			if arrSlice, ok := v.Object.([]JSValue); ok {
				parts := make([]string, len(arrSlice))
				for i, e := range arrSlice {
					parts[i] = e.ToString()
				}
				return "[" + strings.Join(parts, ", ") + "]"
			}
			// handle map-based array-like objects
			if objMap, ok := v.Object.(map[string]JSValue); ok {
				if l, ok := objMap["length"]; ok && int(l.ToNumber()) == len(objMap)-1 {
					parts := make([]string, int(l.ToNumber()))
					for i := 0; i < len(parts); i++ {
						key := strconv.Itoa(i)
						if elem, ok := objMap[key]; ok {
							parts[i] = elem.ToString()
						} else {
							parts[i] = "undefined"
						}
					}
					return "[" + strings.Join(parts, ", ") + "]"
				}
			}
		}
		return "[object Object]"
	case JSFunction:
		return "[function]"
	case JSError:
		if v.Error != nil {
			return v.Error.Error()
		}
		return "Error"
	default:
		return ""
	}
}

func (v JSValue) ToObject() map[string]JSValue {
	// If array type, convert underlying slice to object map
	if v.IsArray {
		if arr, ok := v.Object.([]JSValue); ok {
			m := make(map[string]JSValue)
			for i, e := range arr {
				m[strconv.Itoa(i)] = e
			}
			m["length"] = NumberVal(float64(len(arr)))
			return m
		}
	}
	if realv, ok := v.Object.(map[string]JSValue); ok {
		return realv
	}
	return nil
}

func (v JSValue) ToArray() []JSValue {
	if realv, ok := v.Object.([]JSValue); ok {
		return realv
	}
	// Support JSObject arrays stored as map[string]JSValue with IsArray marker
	if v.Type == JSObject && v.IsArray {
		if m, ok := v.Object.(map[string]JSValue); ok {
			lengthVal, okLen := m["length"]
			length := 0
			if okLen {
				length = int(lengthVal.ToNumber())
			}
			arr := make([]JSValue, length)
			for i := 0; i < length; i++ {
				idx := strconv.Itoa(i)
				if elem, ok := m[idx]; ok {
					arr[i] = elem
				} else {
					arr[i] = Undefined()
				}
			}
			return arr
		}
	}
	return nil
}
func (v JSValue) ToFunction() func(args ...JSValue) JSValue { return v.Function }
func (v JSValue) ToError() error                            { return v.Error }

// Add a helper to check if a JSValue is an array
func (v JSValue) IsArrayType() bool {
	return v.Type == JSObject && v.IsArray
}
