package stream

import (
	"errors"
	"strconv"
)

// Writer emits JSON text token by token, validating every request
// against JSON structure. It never holds the document; each call writes
// its tokens to the Sink and is final.
//
// A failing call emits nothing and leaves the Writer as it was, except
// for I/O failures which are sticky. A Writer is not safe for concurrent
// use.
type Writer struct {
	sink    Sink
	state   *State
	opts    *options
	offset  int64
	frag    []byte
	lastErr *Error
	broken  *Error
}

// NewWriter creates a Writer for one document delivered to sink.
func NewWriter(sink Sink, opts ...Option) *Writer {
	if sink == nil {
		panic("stream: NewWriter with nil Sink")
	}
	o := newOptions(opts)
	return &Writer{
		sink:  sink,
		state: NewState(o.maxDepth),
		opts:  o,
	}
}

// Reset discards all state and prepares the Writer for a new document.
func (w *Writer) Reset(sink Sink, opts ...Option) {
	if sink == nil {
		panic("stream: Reset with nil Sink")
	}
	w.sink = sink
	w.opts = newOptions(opts)
	w.state.reset(w.opts.maxDepth)
	w.offset = 0
	w.frag = w.frag[:0]
	w.lastErr = nil
	w.broken = nil
}

// Queryable State Methods

// Depth returns the current nesting depth (0 = top level).
func (w *Writer) Depth() int {
	return w.state.Depth()
}

// Context returns the innermost open container.
func (w *Writer) Context() Context {
	return w.state.Current()
}

// IsInObject returns true if currently inside an object.
func (w *Writer) IsInObject() bool {
	return w.state.IsInObject()
}

// IsInArray returns true if currently inside an array.
func (w *Writer) IsInArray() bool {
	return w.state.IsInArray()
}

// Started reports whether the top level container has been opened.
func (w *Writer) Started() bool {
	return w.state.Started()
}

// Complete reports whether the document has been closed.
func (w *Writer) Complete() bool {
	return w.state.Complete()
}

// Pretty reports whether pretty mode is on.
func (w *Writer) Pretty() bool {
	return w.opts.pretty
}

// Offset returns the number of bytes delivered to the sink.
func (w *Writer) Offset() int64 {
	return w.offset
}

// LastError returns the message of the last call if it failed, and ""
// if it succeeded.
func (w *Writer) LastError() string {
	if w.lastErr == nil {
		return ""
	}
	return w.lastErr.Msg
}

// Structure Control Methods

// StartObject opens an object at the start of the document or as an
// element of the current array.
func (w *Writer) StartObject() error {
	return w.open(ruleStartObject, Object, "", false)
}

// StartObjectNamed opens an object as the value of member name of the
// current object.
func (w *Writer) StartObjectNamed(name string) error {
	return w.open(ruleStartObjectNamed, Object, name, true)
}

// StartArray opens an array at the start of the document or as an
// element of the current array.
func (w *Writer) StartArray() error {
	return w.open(ruleStartArray, Array, "", false)
}

// StartArrayNamed opens an array as the value of member name of the
// current object.
func (w *Writer) StartArrayNamed(name string) error {
	return w.open(ruleStartArrayNamed, Array, name, true)
}

// EndContext closes the innermost open container.
func (w *Writer) EndContext() error {
	if err := w.begin(); err != nil {
		return err
	}
	if msg := w.state.checkClose(ruleEndContext); msg != "" {
		return w.fail(ruleEndContext.op, msg)
	}
	depth := w.state.Depth()
	w.closer(w.state.Current(), depth)
	if err := w.emit(ruleEndContext.op); err != nil {
		return err
	}
	w.state.pop()
	return nil
}

// EndFile closes every open container. On a document with nothing open
// it does nothing and succeeds.
func (w *Writer) EndFile() error {
	if err := w.begin(); err != nil {
		return err
	}
	depth := w.state.Depth()
	if depth == 0 {
		return nil
	}
	for d := depth; d > 0; d-- {
		w.closer(w.state.At(d), d)
	}
	if err := w.emit(ruleEndFile.op); err != nil {
		return err
	}
	for range depth {
		w.state.pop()
	}
	return nil
}

// Value Writing Methods

// WriteValue writes a value into the current array. String payloads are
// quoted, Number payloads are written as given and the payload of the
// literal kinds is ignored.
func (w *Writer) WriteValue(kind Kind, text string) error {
	if err := w.begin(); err != nil {
		return err
	}
	if msg := w.state.checkScalar(Array, kind, ruleValue); msg != "" {
		return w.fail(ruleValue.op, msg)
	}
	w.separator()
	w.value(kind, text)
	if err := w.emit(ruleValue.op); err != nil {
		return err
	}
	w.state.element()
	return nil
}

// WritePair writes the member name with a value into the current
// object.
func (w *Writer) WritePair(name string, kind Kind, text string) error {
	if err := w.begin(); err != nil {
		return err
	}
	if msg := w.state.checkScalar(Object, kind, rulePair); msg != "" {
		return w.fail(rulePair.op, msg)
	}
	w.separator()
	w.name(name)
	w.value(kind, text)
	if err := w.emit(rulePair.op); err != nil {
		return err
	}
	w.state.element()
	return nil
}

// WriteString writes a string value into the current array.
func (w *Writer) WriteString(s string) error {
	return w.WriteValue(String, s)
}

// WriteInt writes an integer value into the current array.
func (w *Writer) WriteInt(n int64) error {
	return w.WriteValue(Number, strconv.FormatInt(n, 10))
}

// WriteFloat writes a float value into the current array. NaN and the
// infinities have no JSON form; the caller must not pass them.
func (w *Writer) WriteFloat(f float64) error {
	return w.WriteValue(Number, strconv.FormatFloat(f, 'g', -1, 64))
}

// WriteBool writes true or false into the current array.
func (w *Writer) WriteBool(b bool) error {
	return w.WriteValue(Bool(b), "")
}

// WriteNull writes null into the current array.
func (w *Writer) WriteNull() error {
	return w.WriteValue(Null, "")
}

// Control Methods

// Flush flushes the destination of a Direct sink if it buffers.
func (w *Writer) Flush() error {
	if w.broken != nil {
		w.lastErr = w.broken
		return w.broken
	}
	f, ok := w.sink.(interface{ Flush() error })
	if !ok {
		return nil
	}
	if err := f.Flush(); err != nil {
		return w.ioFail(ruleFlush.op, err)
	}
	return nil
}

func (w *Writer) open(r rule, c Context, name string, named bool) error {
	if err := w.begin(); err != nil {
		return err
	}
	var msg string
	if named {
		msg = w.state.checkNamedOpen(r)
	} else {
		msg = w.state.checkOpen(r)
	}
	if msg != "" {
		return w.fail(r.op, msg)
	}
	w.separator()
	if named {
		w.name(name)
	}
	w.opener(c)
	if err := w.emit(r.op); err != nil {
		return err
	}
	w.state.push(c)
	return nil
}

// begin starts an operation.
func (w *Writer) begin() error {
	w.lastErr = nil
	w.frag = w.frag[:0]
	if w.broken != nil {
		w.lastErr = w.broken
		return w.broken
	}
	w.sink.Begin()
	return nil
}

func (w *Writer) fail(op, msg string) error {
	w.lastErr = &Error{Kind: KindStructure, Op: op, Msg: msg}
	return w.lastErr
}

// emit hands the fragment to the sink.
func (w *Writer) emit(op string) error {
	err := w.sink.Emit(w.frag)
	if err == nil {
		w.offset += int64(len(w.frag))
		return nil
	}
	if errors.Is(err, ErrBufferExhausted) {
		w.lastErr = &Error{Kind: KindBufferExhausted, Op: op, Msg: msgBufferExhausted}
		return w.lastErr
	}
	return w.ioFail(op, err)
}

func (w *Writer) ioFail(op string, err error) error {
	w.broken = &Error{Kind: KindIO, Op: op, Msg: msgWriteFailed, Err: err}
	w.lastErr = w.broken
	return w.broken
}
