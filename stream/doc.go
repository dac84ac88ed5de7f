// Package stream writes JSON text incrementally.
//
// A Writer turns structural calls (open an object, write a pair, close
// the container, ...) directly into tokens on a Sink. No document tree is
// built and nothing already written is revisited. The Writer enforces
// JSON structure: objects hold name/value pairs, arrays hold values, and
// the document is a single top level object or array. It does not check
// content: strings are quoted but not escaped and numbers are written as
// given, unless a Transform is installed (see package sanitize).
//
// # Example: Direct output
//
//	w := stream.NewWriter(stream.Direct(os.Stdout), stream.WithPretty(true))
//	w.StartObject()
//	w.WritePair("name", stream.String, "value")
//	w.StartArrayNamed("list")
//	w.WriteValue(stream.Number, "1")
//	w.WriteValue(stream.Null, "")
//	w.EndFile()
//
// # Example: Buffered output
//
// A Buffer holds the output of the most recent call only, so it must be
// read after every call:
//
//	buf := stream.NewBuffer(1024)
//	w := stream.NewWriter(buf)
//	if err := w.StartArray(); err != nil {
//	    return err
//	}
//	out.Write(buf.Bytes())
//
// # Errors
//
// Every operation returns nil or a *Error. NewWriter and Reset panic
// when given a nil Sink. Structural errors
// (ErrStructure) leave the Writer unchanged and may be ignored or
// retried. A Buffer that is too small fails the operation with
// ErrBufferExhausted. A failed write to a Direct sink's destination
// returns ErrIO and is repeated by every later call until Reset.
package stream
