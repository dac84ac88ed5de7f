package script

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/jsonstream/stream"
)

const sample = `
pretty: false
vars:
  n: 3
  who: world
steps:
  - op: start_object
  - {op: pair, name: a, value: 1}
  - {op: pair, name: neg, value: -2}
  - {op: pair, name: f, value: 1.5}
  - {op: pair, name: s, value: x}
  - {op: pair, name: str, kind: string, value: 42}
  - {op: pair, name: num, kind: number, value: "7e1"}
  - {op: pair, name: b, value: true}
  - {op: pair, name: z, value: null}
  - {op: pair, name: twice, expr: "n * 2"}
  - {op: pair, name: greet, expr: '"hello " + who'}
  - {op: pair, name: big, expr: "n > 2"}
  - op: start_array
    name: list
  - {op: value, kind: "null", value: ignored}
  - op: end
  - op: end_file
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Pretty == nil || *s.Pretty {
		t.Error("expected pretty: false")
	}
	if len(s.Steps) != 16 {
		t.Fatalf("expected 16 steps, got %d", len(s.Steps))
	}
	if s.Steps[12].Op != OpStartArray || s.Steps[12].Name == nil || *s.Steps[12].Name != "list" {
		t.Errorf("unexpected step: %+v", s.Steps[12])
	}
}

func TestRun_Sample(t *testing.T) {
	s, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var out bytes.Buffer
	r := New(&out, 0, s.Options()...)
	rep, err := r.Run(context.Background(), s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := `{"a": 1,"neg": -2,"f": 1.5,"s": "x","str": "42","num": 7e1,"b": true,"z": null,` +
		`"twice": 6,"greet": "hello world","big": true,"list": [null]}`
	if out.String() != expected {
		t.Errorf("expected %q, got %q", expected, out.String())
	}
	want := &Report{Steps: 16, Bytes: int64(len(expected)), Complete: true}
	if diff := cmp.Diff(want, rep); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_Demo(t *testing.T) {
	const expected = `{
  "Gooble": {
    "Awesome": "Possum",
    "Answer": 42,
    "Incredible": true,
    "Redundant": false,
    "DBA Word": null
  },
  "Another": "Element",
  "Arrrr-EH?": [
    [
      "Possum",
      42,
      true,
      false,
      null
    ],
    {
      "Objectify this": {
        "Luggage combo": 12345
      }
    }
  ]
}`
	for _, bufSize := range []int{0, 64} {
		var out bytes.Buffer
		r := New(&out, bufSize, stream.WithPretty(true))
		rep, err := r.Run(context.Background(), Demo())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.String() != expected {
			t.Errorf("bufSize %d: expected:\n%s\ngot:\n%s", bufSize, expected, out.String())
		}
		if len(rep.Diagnostics) != 0 || !rep.Complete {
			t.Errorf("bufSize %d: unexpected report %+v", bufSize, rep)
		}
	}
}

func TestRun_Diagnostics(t *testing.T) {
	s, err := Parse([]byte(`
steps:
  - op: end
  - op: start_object
  - {op: value, kind: string, value: v}
  - {op: pair, name: k, kind: string, value: v}
  - {op: pair, name: bad, kind: object, value: v}
  - op: end_file
  - op: start_array
  - op: end_file
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var out bytes.Buffer
	rep, err := New(&out, 0).Run(context.Background(), s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Diagnostic{
		{Step: 0, Op: OpEnd, Msg: "Attempted to close a context when no context is open."},
		{Step: 2, Op: OpValue, Msg: "Attempted to print a single value outside an array context."},
		{Step: 4, Op: OpPair, Msg: "Attempted to print a name: value pair value of an invalid value type."},
		{Step: 6, Op: OpStartArray, Msg: "Attempted to open an array when file is already complete."},
	}
	if diff := cmp.Diff(want, rep.Diagnostics); diff != "" {
		t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
	}
	if out.String() != `{"k": "v"}` {
		t.Errorf("expected %q, got %q", `{"k": "v"}`, out.String())
	}
	if rep.Steps != 8 || !rep.Complete {
		t.Errorf("unexpected report %+v", rep)
	}
	if got := want[0].String(); got != "step 0 (end): Attempted to close a context when no context is open." {
		t.Errorf("unexpected %q", got)
	}
}

func TestRun_LiteralIgnoresPayload(t *testing.T) {
	s, err := Parse([]byte(`
steps:
  - op: start_array
  - {op: value, kind: "null", value: {a: 1}}
  - {op: value, kind: "true", value: [1, 2]}
  - {op: value, kind: "false", expr: "missing +"}
  - op: end_file
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var out bytes.Buffer
	rep, err := New(&out, 0).Run(context.Background(), s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "[null,true,false]" {
		t.Errorf("expected %q, got %q", "[null,true,false]", out.String())
	}
	if !rep.Complete || len(rep.Diagnostics) != 0 {
		t.Errorf("unexpected report %+v", rep)
	}
}

func TestRun_StopOnError(t *testing.T) {
	s := &Script{Steps: []Step{{Op: OpStartArray}, {Op: OpPair, Name: name("x"), Kind: "null"}, {Op: OpEndFile}}}
	var out bytes.Buffer
	r := New(&out, 0)
	r.StopOnError = true
	rep, err := r.Run(context.Background(), s)
	if !errors.Is(err, stream.ErrStructure) {
		t.Fatalf("expected structural error, got %v", err)
	}
	if rep.Steps != 2 || rep.Complete || len(rep.Diagnostics) != 1 {
		t.Errorf("unexpected report %+v", rep)
	}
	if out.String() != "[" {
		t.Errorf("expected %q, got %q", "[", out.String())
	}
}

func TestRun_BufferExhausted(t *testing.T) {
	s := &Script{Steps: []Step{
		{Op: OpStartArray},
		{Op: OpValue, Value: strings.Repeat("x", 32)},
		{Op: OpEndFile},
	}}
	var out bytes.Buffer
	rep, err := New(&out, 16).Run(context.Background(), s)
	if !errors.Is(err, stream.ErrBufferExhausted) {
		t.Fatalf("expected buffer exhausted, got %v", err)
	}
	if rep.Steps != 2 || out.String() != "[" {
		t.Errorf("unexpected report %+v with output %q", rep, out.String())
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rep, err := New(&bytes.Buffer{}, 0).Run(ctx, Demo())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if rep.Steps != 0 {
		t.Errorf("expected no steps, got %d", rep.Steps)
	}
}

func TestRun_ExprError(t *testing.T) {
	s := &Script{Steps: []Step{{Op: OpStartArray}, {Op: OpValue, Expr: "missing +"}}}
	_, err := New(&bytes.Buffer{}, 0).Run(context.Background(), s)
	if err == nil || errors.Is(err, stream.ErrStructure) {
		t.Fatalf("expected expression error, got %v", err)
	}
}

func TestRun_Vars(t *testing.T) {
	s := &Script{
		Vars:  map[string]any{"n": 1},
		Steps: []Step{{Op: OpStartArray}, {Op: OpValue, Expr: "n + cfg.m"}, {Op: OpEndFile}},
	}
	env := Env{}
	for _, a := range []string{"n=10", "cfg.m=5"} {
		if err := env.SetVar(a); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	var out bytes.Buffer
	r := New(&out, 0)
	r.Vars = env
	if _, err := r.Run(context.Background(), s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "[15]" {
		t.Errorf("expected %q, got %q", "[15]", out.String())
	}
}

func TestEnv_SetVar(t *testing.T) {
	env := Env{}
	if err := env.SetVar("novalue"); err == nil {
		t.Error("expected error without =")
	}
	if err := env.SetVar("a=1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := env.SetVar("a.b=2"); err == nil {
		t.Error("expected error descending into a scalar")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		step Step
	}{
		{"unknown op", Step{Op: "write"}},
		{"pair without name", Step{Op: OpPair, Kind: "null"}},
		{"named value", Step{Op: OpValue, Name: name("x")}},
		{"end with args", Step{Op: OpEnd, Value: 1}},
		{"value and expr", Step{Op: OpValue, Value: 1, Expr: "1"}},
	}
	for _, tt := range tests {
		s := &Script{Steps: []Step{tt.step}}
		if err := s.Validate(); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
	if _, err := Parse([]byte("steps: [")); err == nil {
		t.Error("expected decoding error")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.yaml")
	data, err := Demo().Marshal()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var want, got bytes.Buffer
	if _, err := New(&want, 0).Run(context.Background(), Demo()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := New(&got, 0).Run(context.Background(), s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(want.String(), got.String()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
