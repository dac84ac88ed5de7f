package stream

import "testing"

func TestState_Transitions(t *testing.T) {
	s := NewState(4)
	if s.Depth() != 0 || s.Current() != TopLevel || s.Started() || s.Complete() {
		t.Fatal("new state should be empty")
	}
	if msg := s.checkOpen(ruleStartObject); msg != "" {
		t.Fatalf("unexpected violation: %s", msg)
	}
	s.push(Object)
	if !s.Started() || s.HasElement() || !s.IsInObject() {
		t.Error("expected started, empty object")
	}
	s.element()
	s.push(Array)
	if s.HasElement() || !s.IsInArray() || s.Depth() != 2 {
		t.Error("expected fresh array at depth 2")
	}
	if s.At(1) != Object || s.At(2) != Array || s.At(3) != TopLevel || s.At(0) != TopLevel {
		t.Error("unexpected At results")
	}
	if c := s.pop(); c != Array {
		t.Errorf("expected to pop array, got %v", c)
	}
	if !s.HasElement() {
		t.Error("closed container should count as an element of its parent")
	}
	s.pop()
	if !s.Complete() {
		t.Error("expected complete")
	}
	if msg := s.checkOpen(ruleStartArray); msg != msgArrayComplete {
		t.Errorf("expected %q, got %q", msgArrayComplete, msg)
	}
	s.reset(2)
	if s.Started() || s.Depth() != 0 || s.MaxDepth() != 2 {
		t.Error("reset did not clear state")
	}
}

func TestState_Checks(t *testing.T) {
	s := NewState(0)
	if s.MaxDepth() != DefaultMaxDepth {
		t.Errorf("expected default max depth, got %d", s.MaxDepth())
	}
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"named at start", s.checkNamedOpen(ruleStartObjectNamed), msgNamedObjectNoCtx},
		{"value at start", s.checkScalar(Array, String, ruleValue), msgValueNoCtx},
		{"bad kind first", s.checkScalar(Array, Kind(0), ruleValue), msgValueBadKind},
		{"close at start", s.checkClose(ruleEndContext), msgCloseNoCtx},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.want, tt.got)
		}
	}
}

func TestKind(t *testing.T) {
	for _, k := range []Kind{String, Number, True, False, Null} {
		if !k.Valid() {
			t.Errorf("%v should be valid", k)
		}
		p, err := ParseKind(k.String())
		if err != nil || p != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), p, err)
		}
	}
	if Kind(0).Valid() || Kind(6).Valid() {
		t.Error("out of range kinds should be invalid")
	}
	if Kind(9).String() != "Kind(9)" {
		t.Errorf("unexpected %q", Kind(9).String())
	}
	if _, err := ParseKind("object"); err == nil {
		t.Error("expected error for unknown kind")
	}
	if Bool(true) != True || Bool(false) != False {
		t.Error("Bool mapping")
	}
}
