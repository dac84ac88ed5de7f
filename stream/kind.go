package stream

import "fmt"

// Kind tags a scalar value. The zero Kind is not valid.
type Kind int

const (
	String Kind = iota + 1
	Number
	True
	False
	Null
)

var kindNames = [...]string{
	String: "string",
	Number: "number",
	True:   "true",
	False:  "false",
	Null:   "null",
}

// Valid reports whether k is one of the five recognized kinds.
func (k Kind) Valid() bool {
	return k >= String && k <= Null
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Bool returns True or False.
func Bool(b bool) Kind {
	if b {
		return True
	}
	return False
}

// ParseKind parses the lower case name of a kind, as returned by
// Kind.String.
func ParseKind(s string) (Kind, error) {
	for k := String; k <= Null; k++ {
		if kindNames[k] == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown value kind %q", s)
}
