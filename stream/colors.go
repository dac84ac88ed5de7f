package stream

import (
	"github.com/fatih/color"
)

// ColorAttr names the token classes that can be colored.
type ColorAttr int

const (
	PunctColor ColorAttr = iota
	NameColor
	StringColor
	NumberColor
	BoolColor
	NullColor
)

// ColorFunc wraps its operands in color sequences.
type ColorFunc func(a ...any) string

// Colors maps token classes to color functions. Classes without an entry
// use Default, and a nil Default leaves them uncolored.
type Colors struct {
	Default ColorFunc
	Map     map[ColorAttr]ColorFunc
}

// NewColors returns the default palette. Whether sequences are actually
// produced follows color.NoColor.
func NewColors() *Colors {
	return &Colors{
		Map: map[ColorAttr]ColorFunc{
			PunctColor:  color.RGB(196, 128, 128).SprintFunc(),
			NameColor:   color.RGB(196, 96, 16).SprintFunc(),
			StringColor: color.RGB(8, 196, 16).SprintFunc(),
			NumberColor: color.RGB(128, 216, 236).SprintFunc(),
			BoolColor:   color.New(color.FgCyan).SprintFunc(),
			NullColor:   color.RGB(168, 0, 196).SprintFunc(),
		},
	}
}

func (c *Colors) apply(attr ColorAttr, s string) string {
	if c == nil {
		return s
	}
	if f, ok := c.Map[attr]; ok && f != nil {
		return f(s)
	}
	if c.Default != nil {
		return c.Default(s)
	}
	return s
}
