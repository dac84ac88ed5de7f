package stream

import "errors"

// ErrorKind classifies a stream diagnostic.
type ErrorKind int

const (
	// KindStructure reports a request that JSON structure does not allow
	// at the writer's current position. Nothing is emitted and the writer
	// state is unchanged, so the caller may carry on with a corrected call.
	KindStructure ErrorKind = iota + 1

	// KindBufferExhausted reports an operation whose output does not fit
	// into a Buffer sink.
	KindBufferExhausted

	// KindIO reports a failed write to the destination of a Direct sink.
	// It is sticky: every later operation returns it until Reset.
	KindIO
)

func (k ErrorKind) String() string {
	switch k {
	case KindStructure:
		return "structural violation"
	case KindBufferExhausted:
		return "buffer exhausted"
	case KindIO:
		return "i/o failure"
	default:
		return "unknown"
	}
}

// Sentinels for use with errors.Is.
var (
	ErrStructure       = errors.New("structural violation")
	ErrBufferExhausted = errors.New("buffer exhausted")
	ErrIO              = errors.New("i/o failure")
)

// Error represents a stream error.
type Error struct {
	Kind ErrorKind
	Op   string // name of the Writer method that failed
	Msg  string
	Err  error // underlying write error, KindIO only
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the kind sentinels.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrStructure:
		return e.Kind == KindStructure
	case ErrBufferExhausted:
		return e.Kind == KindBufferExhausted
	case ErrIO:
		return e.Kind == KindIO
	}
	return false
}

const (
	msgObjectComplete     = "Attempted to open an object when file is already complete."
	msgObjectNotInArray   = "Attempted to open an object when not starting a file or in array context."
	msgNamedObjectNoCtx   = "Attempted to start a named object when no context is open."
	msgNamedObjectOutside = "Attempted to open a named object outside an object context."
	msgArrayComplete      = "Attempted to open an array when file is already complete."
	msgArrayNotInArray    = "Attempted to open an array when not starting a file or in array context."
	msgNamedArrayNoCtx    = "Attempted to start a named array when no context is open."
	msgNamedArrayOutside  = "Attempted to open a named array outside an object context."
	msgValueNoCtx         = "Attempted to print a single value when no context is open."
	msgValueOutside       = "Attempted to print a single value outside an array context."
	msgValueBadKind       = "Attempted to print a single value of an invalid type."
	msgPairNoCtx          = "Attempted to print a pair when no context is open."
	msgPairOutside        = "Attempted to print a name: value pair outside an object context."
	msgPairBadKind        = "Attempted to print a name: value pair value of an invalid value type."
	msgCloseNoCtx         = "Attempted to close a context when no context is open."
	msgMaxDepth           = "Attempted to exceed the maximum nesting depth."
	msgBufferExhausted    = "Stream buffer too small for the current write operation."
	msgWriteFailed        = "Failed to write to the output stream."
)
