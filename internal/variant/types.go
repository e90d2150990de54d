package variant

import (
	"github.com/alexisbeaulieu97/fluidcss/internal/domain/fluid"
)

// Declaration is one resolved property of an entry.
type Declaration struct {
	Property string
	Value    string
	Axis     fluid.Axis
}

// Group is a set of declarations rendered as a unit. Descriptors that group
// by axis receive one group per styled axis; others receive a single group
// with an empty Axis.
type Group struct {
	Axis         fluid.Axis
	Declarations []Declaration
}

// Entry is a size entry after every property has been resolved to CSS.
type Entry struct {
	ID     int
	Label  string
	Slug   string
	Groups []Group
}

// Declarations flattens the entry's groups in order.
func (e Entry) Declarations() []Declaration {
	var out []Declaration
	for _, g := range e.Groups {
		out = append(out, g.Declarations...)
	}
	return out
}

// Multi reports whether the entry resolves to more than one declaration, in
// which case names carry a property suffix.
func (e Entry) Multi() bool {
	return len(e.Declarations()) > 1
}

// Section is a wrapped block of per-entry output. Render returns the lines
// for one entry; an entry with nothing to say returns "".
type Section struct {
	Open   string
	Close  string
	Render func(e Entry) string
	// SkipEmpty drops Open/Close when no entry rendered anything.
	SkipEmpty bool
}

// Descriptor defines one output flavor.
type Descriptor struct {
	Key         string
	DisplayName string
	// Comment wraps free text in the flavor's comment syntax.
	Comment func(text string) string
	// Open and Close wrap all sections.
	Open        string
	Close       string
	Sections    []Section
	GroupByAxis bool
	// Usage returns the footer text (without comment syntax) for the first
	// rendered entry.
	Usage func(first Entry) string
}
