package simplejs

// RunContext holds execution state.
type RunContext struct {
	mem      *Memory
	global   *Scope
	builtins *builtinTable
}

// NewContext creates a JS runtime context with a memory pool of the given
// size and the registered builtins installed in its global scope.
func NewContext(size int) *RunContext {
	ctx := &RunContext{
		mem:      NewMemory(size),
		global:   NewScope(nil),
		builtins: newBuiltinTable(),
	}
	for _, install := range builtinInstallers {
		install(ctx)
	}
	return ctx
}

// GC triggers garbage collection (optional in Go).
func (ctx *RunContext) GC() {
	// no-op, rely on Go GC
}

// RegisterGoFunc registers a Go function into the JS global scope.
func (ctx *RunContext) RegisterGoFunc(name string, fn func(args ...JSValue) JSValue) {
	ctx.global.Set(name, FunctionVal(fn))
}

// Global looks up a name in the global scope.
func (ctx *RunContext) Global(name string) (JSValue, bool) {
	return ctx.global.Get(name)
}
