package script

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/signadot/jsonstream/stream"
)

// Diagnostic records a structural error reported by the writer for one
// step.
type Diagnostic struct {
	Step int
	Op   Op
	Msg  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("step %d (%s): %s", d.Step, d.Op, d.Msg)
}

// Report summarizes a run.
type Report struct {
	Steps       int // steps executed
	Diagnostics []Diagnostic
	Bytes       int64 // bytes written by the writer
	Complete    bool  // the document was closed
}

// Runner replays scripts on a Writer.
//
// Structural errors are recorded in the Report and the run goes on with
// the next step, unless StopOnError is set. Buffer exhaustion, write
// failures and expression errors end the run.
type Runner struct {
	Writer *stream.Writer

	// Buffer, if the Writer's sink, is drained into Out after every step.
	Buffer *stream.Buffer
	Out    io.Writer

	// Vars are merged over the script's vars.
	Vars        Env
	StopOnError bool
	Logger      *slog.Logger
}

// New creates a Runner writing to out. A bufSize above 0 routes output
// through a Buffer of that capacity, drained after each step.
func New(out io.Writer, bufSize int, opts ...stream.Option) *Runner {
	r := &Runner{Out: out}
	if bufSize > 0 {
		r.Buffer = stream.NewBuffer(bufSize)
		r.Writer = stream.NewWriter(r.Buffer, opts...)
		return r
	}
	r.Writer = stream.NewWriter(stream.Direct(out), opts...)
	return r
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return r.Logger
}

// Run executes the steps of s in order. ctx is checked between steps.
func (r *Runner) Run(ctx context.Context, s *Script) (*Report, error) {
	log := r.logger()
	env := Env{}
	for k, v := range s.Vars {
		env[k] = v
	}
	for k, v := range r.Vars {
		env[k] = v
	}
	rep := &Report{}
	if err := s.Validate(); err != nil {
		return rep, err
	}
	defer func() {
		rep.Bytes = r.Writer.Offset()
		rep.Complete = r.Writer.Complete()
	}()
	for i := range s.Steps {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		st := &s.Steps[i]
		rep.Steps++
		err := r.apply(st, env)
		if derr := r.drain(); derr != nil {
			return rep, fmt.Errorf("error writing output: %w", derr)
		}
		if err == nil {
			log.Debug("step", "index", i, "op", st.Op, "depth", r.Writer.Depth())
			continue
		}
		if !errors.Is(err, stream.ErrStructure) {
			return rep, fmt.Errorf("step %d (%s): %w", i, st.Op, err)
		}
		d := Diagnostic{Step: i, Op: st.Op, Msg: r.Writer.LastError()}
		rep.Diagnostics = append(rep.Diagnostics, d)
		log.Warn("structural error", "step", i, "op", st.Op, "msg", d.Msg)
		if r.StopOnError {
			return rep, fmt.Errorf("step %d (%s): %w", i, st.Op, err)
		}
	}
	return rep, nil
}

func (r *Runner) apply(st *Step, env Env) error {
	w := r.Writer
	switch st.Op {
	case OpStartObject:
		if st.Name != nil {
			return w.StartObjectNamed(*st.Name)
		}
		return w.StartObject()
	case OpStartArray:
		if st.Name != nil {
			return w.StartArrayNamed(*st.Name)
		}
		return w.StartArray()
	case OpValue, OpPair:
		kind, text, err := st.payload(env)
		if err != nil {
			return err
		}
		if st.Op == OpValue {
			return w.WriteValue(kind, text)
		}
		return w.WritePair(*st.Name, kind, text)
	case OpEnd:
		return w.EndContext()
	case OpEndFile:
		return w.EndFile()
	}
	return fmt.Errorf("unknown op %q", st.Op)
}

func (r *Runner) drain() error {
	if r.Buffer == nil || r.Out == nil {
		return nil
	}
	_, err := r.Buffer.WriteTo(r.Out)
	return err
}
