package script

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/goccy/go-yaml"

	"github.com/signadot/jsonstream/stream"
)

// Env holds the variables visible to step expressions.
type Env map[string]any

// SetVar parses path=val and stores the YAML value of val at the dotted
// path, creating intermediate maps.
func (env Env) SetVar(a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("argument %q expected key=val", a)
	}
	var v any
	if err := yaml.Unmarshal([]byte(val), &v); err != nil {
		return err
	}
	parts := strings.Split(key, ".")
	n := len(parts)
	tmpEnv := map[string]any(env)
	for i, part := range parts {
		if i == n-1 {
			tmpEnv[part] = v
			break
		}
		next := tmpEnv[part]
		if next == nil {
			next = map[string]any{}
			tmpEnv[part] = next
		}
		nextEnv, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot access %s, list or scalar", strings.Join(parts[:i+1], "."))
		}
		tmpEnv = nextEnv
	}
	return nil
}

// payload resolves the kind and text of a value or pair step. The
// payload of a literal kind is not evaluated.
func (st *Step) payload(env Env) (stream.Kind, string, error) {
	var kind stream.Kind
	if st.Kind != "" {
		k, err := stream.ParseKind(st.Kind)
		if err != nil {
			// left to the writer, which reports it as an invalid type
			return 0, "", nil
		}
		switch k {
		case stream.True, stream.False, stream.Null:
			return k, "", nil
		}
		kind = k
	}
	v := st.Value
	if st.Expr != "" {
		program, err := expr.Compile(st.Expr, expr.Env(map[string]any(env)))
		if err != nil {
			return 0, "", fmt.Errorf("error compiling %q: %w", st.Expr, err)
		}
		v, err = expr.Run(program, map[string]any(env))
		if err != nil {
			return 0, "", fmt.Errorf("error evaluating %q: %w", st.Expr, err)
		}
	}
	inferred, text, err := render(v)
	if err != nil {
		return 0, "", err
	}
	if kind == 0 {
		return inferred, text, nil
	}
	return kind, text, nil
}

// render maps a decoded or computed value to a kind and its text.
func render(v any) (stream.Kind, string, error) {
	switch x := v.(type) {
	case nil:
		return stream.Null, "", nil
	case bool:
		return stream.Bool(x), strconv.FormatBool(x), nil
	case string:
		return stream.String, x, nil
	case float64:
		return stream.Number, strconv.FormatFloat(x, 'g', -1, 64), nil
	case float32:
		return stream.Number, strconv.FormatFloat(float64(x), 'g', -1, 32), nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return stream.Number, strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return stream.Number, strconv.FormatUint(rv.Uint(), 10), nil
	}
	return 0, "", fmt.Errorf("cannot write a %T as a JSON value", v)
}
