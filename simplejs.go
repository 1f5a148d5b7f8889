package simplejs

// SimpleJS is the top-level JS engine.
type SimpleJS struct {
	ctx *RunContext
}

// NewSimpleJS creates a new SimpleJS instance.
func NewSimpleJS(size int) *SimpleJS {
	return &SimpleJS{ctx: NewContext(size)}
}

// Context returns the runtime context, for host code that calls engine
// operations directly.
func (s *SimpleJS) Context() *RunContext {
	return s.ctx
}
