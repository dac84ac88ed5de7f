// Package script describes a JSON document as a list of structural
// steps and replays them on a stream.Writer.
//
// Scripts are YAML:
//
//	pretty: true
//	vars: {n: 3}
//	steps:
//	  - op: start_object
//	  - {op: pair, name: a, kind: number, value: 1}
//	  - {op: pair, name: twice, expr: "n * 2"}
//	  - op: start_array
//	    name: list
//	  - {op: value, kind: string, value: x}
//	  - op: end_file
package script

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/signadot/jsonstream/stream"
)

// Op names a structural operation.
type Op string

const (
	OpStartObject Op = "start_object"
	OpStartArray  Op = "start_array"
	OpValue       Op = "value"
	OpPair        Op = "pair"
	OpEnd         Op = "end"
	OpEndFile     Op = "end_file"
)

// Ops returns all operations.
func Ops() []Op {
	return []Op{OpStartObject, OpStartArray, OpValue, OpPair, OpEnd, OpEndFile}
}

func (op Op) valid() bool {
	for _, o := range Ops() {
		if o == op {
			return true
		}
	}
	return false
}

// Step is one structural operation. Name makes start_object and
// start_array named; it is required by pair. The payload of value and
// pair comes from Expr when set, otherwise from Value. When Kind is
// empty it is inferred from the payload's type.
type Step struct {
	Op    Op      `yaml:"op"`
	Name  *string `yaml:"name,omitempty"`
	Kind  string  `yaml:"kind,omitempty"`
	Value any     `yaml:"value,omitempty"`
	Expr  string  `yaml:"expr,omitempty"`
}

// Script is a document description.
type Script struct {
	Pretty *bool          `yaml:"pretty,omitempty"`
	Indent *string        `yaml:"indent,omitempty"`
	Vars   map[string]any `yaml:"vars,omitempty"`
	Steps  []Step         `yaml:"steps"`
}

// Parse parses and validates a script.
func Parse(data []byte) (*Script, error) {
	s := &Script{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("error decoding script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("error processing %s: %w", path, err)
	}
	return s, nil
}

// Validate checks that every step names a known operation with the
// fields it needs. It does not check the steps against JSON structure;
// that is the writer's job when the script runs.
func (s *Script) Validate() error {
	for i := range s.Steps {
		st := &s.Steps[i]
		if !st.Op.valid() {
			return fmt.Errorf("step %d: unknown op %q", i, st.Op)
		}
		switch st.Op {
		case OpPair:
			if st.Name == nil {
				return fmt.Errorf("step %d: pair requires a name", i)
			}
		case OpValue:
			if st.Name != nil {
				return fmt.Errorf("step %d: value takes no name, use pair", i)
			}
		case OpEnd, OpEndFile:
			if st.Name != nil || st.Value != nil || st.Expr != "" {
				return fmt.Errorf("step %d: %s takes no arguments", i, st.Op)
			}
		}
		if st.Expr != "" && st.Value != nil {
			return fmt.Errorf("step %d: value and expr are exclusive", i)
		}
	}
	return nil
}

// Options returns the writer options the script asks for.
func (s *Script) Options() []stream.Option {
	var opts []stream.Option
	if s.Pretty != nil {
		opts = append(opts, stream.WithPretty(*s.Pretty))
	}
	if s.Indent != nil {
		opts = append(opts, stream.WithIndent(*s.Indent))
	}
	return opts
}

// Marshal encodes s as YAML.
func (s *Script) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}
