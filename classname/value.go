package classname

import (
	"maps"
	"slices"
	"strings"
)

// Value is a class expression. The set of implementations is closed:
// [String], [Cond], [List] and [Empty].
type Value interface {
	appendTokens(dst []string) []string
}

// String is one or more whitespace-separated class names.
type String string

func (s String) appendTokens(dst []string) []string {
	return append(dst, strings.Fields(string(s))...)
}

// Toggle includes Class when On is true.
type Toggle struct {
	Class string
	On    bool
}

// Cond is an ordered list of conditional classes.
type Cond []Toggle

func (c Cond) appendTokens(dst []string) []string {
	for _, t := range c {
		if t.On {
			dst = append(dst, strings.Fields(t.Class)...)
		}
	}
	return dst
}

// Map builds a Cond from m. Go maps are unordered, so keys are sorted to keep
// the output deterministic; use Cond directly when order matters.
func Map(m map[string]bool) Cond {
	c := make(Cond, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		c = append(c, Toggle{Class: k, On: m[k]})
	}
	return c
}

// If returns a Cond with a single toggle.
func If(on bool, class string) Cond {
	return Cond{{Class: class, On: on}}
}

// List is a nested sequence of values. Nil elements are ignored.
type List []Value

func (l List) appendTokens(dst []string) []string {
	for _, v := range l {
		if v != nil {
			dst = v.appendTokens(dst)
		}
	}
	return dst
}

// Empty contributes nothing.
type Empty struct{}

func (Empty) appendTokens(dst []string) []string {
	return dst
}

// Tokens flattens values into class tokens in input order.
func Tokens(values ...Value) []string {
	return List(values).appendTokens(nil)
}

// Join flattens values and joins the tokens with single spaces without
// resolving conflicts or removing duplicates.
func Join(values ...Value) string {
	return strings.Join(Tokens(values...), " ")
}
