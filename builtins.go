package simplejs

// BuiltinID identifies a shared builtin object singleton of a context.
type BuiltinID int

const (
	BuiltinObjectPrototype BuiltinID = iota
	BuiltinArrayBufferPrototype
	builtinCount
)

// builtinBuilders holds the constructor for each singleton. Feature
// packages fill their slots from init; a nil slot means the feature is
// compiled out.
var builtinBuilders [builtinCount]func(*RunContext) *JSValue

// builtinInstallers run once per context, in registration order, from
// NewContext. Feature packages append from init (same discipline as
// goscript package registration: register everything first, then build
// contexts).
var builtinInstallers []func(*RunContext)

func registerBuiltinInstaller(fn func(*RunContext)) {
	builtinInstallers = append(builtinInstallers, fn)
}

type builtinEntry struct {
	value *JSValue
	refs  int
}

// builtinTable holds the lazily instantiated builtin singletons of one
// context.
type builtinTable struct {
	entries [builtinCount]*builtinEntry
}

func newBuiltinTable() *builtinTable {
	return &builtinTable{}
}

// builtinRef is a transient reference to a builtin singleton. Holders use
// the value and release the reference on every exit path; anything that
// must keep the singleton alive afterwards links it into its own
// prototype chain.
type builtinRef struct {
	value *JSValue
	table *builtinTable
	id    BuiltinID
}

func (r *builtinRef) release() {
	r.table.deref(r.id)
}

// acquire returns a referenced handle to the singleton, building it on
// first use.
func (t *builtinTable) acquire(ctx *RunContext, id BuiltinID) *builtinRef {
	e := t.entries[id]
	if e == nil {
		build := builtinBuilders[id]
		if build == nil {
			panic("simplejs: builtin not available: " + id.String())
		}
		// The table keeps one reference of its own.
		e = &builtinEntry{refs: 1}
		t.entries[id] = e
		e.value = build(ctx)
	}
	e.refs++
	return &builtinRef{value: e.value, table: t, id: id}
}

func (t *builtinTable) deref(id BuiltinID) {
	e := t.entries[id]
	if e == nil || e.refs <= 1 {
		panic("simplejs: builtin refcount underflow: " + id.String())
	}
	e.refs--
}

func (id BuiltinID) String() string {
	switch id {
	case BuiltinObjectPrototype:
		return "Object.prototype"
	case BuiltinArrayBufferPrototype:
		return "ArrayBuffer.prototype"
	default:
		return "unknown builtin"
	}
}

func init() {
	builtinBuilders[BuiltinObjectPrototype] = buildObjectPrototype
}

// buildObjectPrototype builds the root prototype object. It carries no
// methods of its own in this runtime core; it exists as the end of every
// prototype chain.
func buildObjectPrototype(ctx *RunContext) *JSValue {
	proto := ObjectVal(map[string]JSValue{})
	return &proto
}
