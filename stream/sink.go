package stream

import (
	"io"
)

// DefaultBufferSize is the capacity used by NewBuffer for sizes below 1.
const DefaultBufferSize = 4096

// Sink receives the output of a Writer, one fragment per operation.
type Sink interface {
	// Begin is called at the start of every operation, successful or not.
	Begin()
	// Emit delivers everything one successful operation produced. It is
	// called at most once per operation.
	Emit(p []byte) error
}

// Direct returns a Sink that forwards each fragment to w as it is
// produced. Output length is unbounded.
func Direct(w io.Writer) Sink {
	return &directSink{w: w}
}

type directSink struct {
	w io.Writer
}

func (d *directSink) Begin() {}

func (d *directSink) Emit(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	n, err := d.w.Write(p)
	if err != nil {
		return err
	}
	if n < len(p) {
		return io.ErrShortWrite
	}
	return nil
}

// Flush flushes the destination if it buffers, e.g. a *bufio.Writer.
func (d *directSink) Flush() error {
	if f, ok := d.w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// Buffer is a bounded Sink owned by the caller. It holds only the output
// of the most recent operation: every operation clears it first, so the
// caller reads it after each call, before the next one.
type Buffer struct {
	buf []byte
}

// NewBuffer creates a Buffer holding at most capacity bytes per
// operation.
func NewBuffer(capacity int) *Buffer {
	if capacity < 1 {
		capacity = DefaultBufferSize
	}
	return &Buffer{buf: make([]byte, 0, capacity)}
}

func (b *Buffer) Begin() {
	b.buf = b.buf[:0]
}

// Emit stores p, or fails with ErrBufferExhausted leaving the Buffer
// empty when p does not fit.
func (b *Buffer) Emit(p []byte) error {
	if len(p) > cap(b.buf) {
		b.buf = b.buf[:0]
		return ErrBufferExhausted
	}
	b.buf = append(b.buf[:0], p...)
	return nil
}

// Bytes returns the output of the last operation. The slice is only
// valid until the next operation.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

// String returns the output of the last operation.
func (b *Buffer) String() string {
	return string(b.buf)
}

// Len returns the number of bytes held.
func (b *Buffer) Len() int {
	return len(b.buf)
}

// Cap returns the capacity fixed at creation.
func (b *Buffer) Cap() int {
	return cap(b.buf)
}

// WriteTo drains the buffer into w.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	if len(b.buf) == 0 {
		return 0, nil
	}
	n, err := w.Write(b.buf)
	b.buf = b.buf[:0]
	return int64(n), err
}
