package stream

// Context is the kind of the innermost open container.
type Context int

const (
	// TopLevel means no container is open.
	TopLevel Context = iota
	Object
	Array
)

func (c Context) String() string {
	switch c {
	case Object:
		return "object"
	case Array:
		return "array"
	default:
		return "top level"
	}
}

// State provides the stack and separator bookkeeping of a Writer.
// It only answers questions and records transitions; it writes nothing.
//
// A single hasElement flag is enough for the separator: opening a
// container clears it, and closing one sets it because the closed
// container is an element of its parent.
type State struct {
	stack      []Context
	maxDepth   int
	started    bool
	hasElement bool
}

// rule carries the diagnostics of one operation.
type rule struct {
	op      string
	empty   string // no container open
	wrong   string // wrong container kind
	badKind string
}

var (
	ruleStartObject      = rule{op: "StartObject", empty: msgObjectComplete, wrong: msgObjectNotInArray}
	ruleStartObjectNamed = rule{op: "StartObjectNamed", empty: msgNamedObjectNoCtx, wrong: msgNamedObjectOutside}
	ruleStartArray       = rule{op: "StartArray", empty: msgArrayComplete, wrong: msgArrayNotInArray}
	ruleStartArrayNamed  = rule{op: "StartArrayNamed", empty: msgNamedArrayNoCtx, wrong: msgNamedArrayOutside}
	ruleValue            = rule{op: "WriteValue", empty: msgValueNoCtx, wrong: msgValueOutside, badKind: msgValueBadKind}
	rulePair             = rule{op: "WritePair", empty: msgPairNoCtx, wrong: msgPairOutside, badKind: msgPairBadKind}
	ruleEndContext       = rule{op: "EndContext", empty: msgCloseNoCtx}
	ruleEndFile          = rule{op: "EndFile"}
	ruleFlush            = rule{op: "Flush"}
)

// NewState creates a State allowing at most maxDepth open containers.
func NewState(maxDepth int) *State {
	if maxDepth < 1 {
		maxDepth = DefaultMaxDepth
	}
	return &State{maxDepth: maxDepth}
}

// Depth returns the number of open containers (0 = top level).
func (s *State) Depth() int {
	return len(s.stack)
}

// MaxDepth returns the nesting bound.
func (s *State) MaxDepth() int {
	return s.maxDepth
}

// Current returns the innermost open container, or TopLevel.
func (s *State) Current() Context {
	if len(s.stack) == 0 {
		return TopLevel
	}
	return s.stack[len(s.stack)-1]
}

// At returns the container at depth i, 1 being the outermost.
func (s *State) At(i int) Context {
	if i < 1 || i > len(s.stack) {
		return TopLevel
	}
	return s.stack[i-1]
}

// Started reports whether a top level container has been opened.
func (s *State) Started() bool {
	return s.started
}

// Complete reports whether the top level container has been closed.
func (s *State) Complete() bool {
	return s.started && len(s.stack) == 0
}

// HasElement reports whether the current container already holds an
// element, that is whether the next element needs a separator.
func (s *State) HasElement() bool {
	return s.hasElement
}

// IsInObject returns true if currently inside an object.
func (s *State) IsInObject() bool {
	return s.Current() == Object
}

// IsInArray returns true if currently inside an array.
func (s *State) IsInArray() bool {
	return s.Current() == Array
}

// checkOpen validates an unnamed open: only at the start of the file or
// directly inside an array.
func (s *State) checkOpen(r rule) string {
	if s.started {
		if len(s.stack) == 0 {
			return r.empty
		}
		if s.Current() != Array {
			return r.wrong
		}
	}
	return s.checkDepth()
}

// checkNamedOpen validates a named open, which needs an object.
func (s *State) checkNamedOpen(r rule) string {
	if msg := s.checkIn(Object, r); msg != "" {
		return msg
	}
	return s.checkDepth()
}

func (s *State) checkDepth() string {
	if len(s.stack) >= s.maxDepth {
		return msgMaxDepth
	}
	return ""
}

// checkScalar validates a value or pair write. The kind is checked
// first so an unknown kind is reported wherever it is written.
func (s *State) checkScalar(want Context, kind Kind, r rule) string {
	if !kind.Valid() {
		return r.badKind
	}
	return s.checkIn(want, r)
}

func (s *State) checkIn(want Context, r rule) string {
	if len(s.stack) == 0 {
		return r.empty
	}
	if s.Current() != want {
		return r.wrong
	}
	return ""
}

func (s *State) checkClose(r rule) string {
	if len(s.stack) == 0 {
		return r.empty
	}
	return ""
}

func (s *State) push(c Context) {
	s.stack = append(s.stack, c)
	s.started = true
	s.hasElement = false
}

func (s *State) pop() Context {
	n := len(s.stack)
	c := s.stack[n-1]
	s.stack = s.stack[:n-1]
	s.hasElement = true
	return c
}

func (s *State) element() {
	s.hasElement = true
}

func (s *State) reset(maxDepth int) {
	s.stack = s.stack[:0]
	s.maxDepth = maxDepth
	s.started = false
	s.hasElement = false
}
