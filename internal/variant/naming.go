package variant

import (
	"regexp"
	"strings"

	"github.com/alexisbeaulieu97/fluidcss/internal/domain/fluid"
)

var slugInvalid = regexp.MustCompile(`[^a-z0-9_-]+`)

// DigitPrefix is prepended to slugs that would otherwise start with a digit.
// Neither CSS class selectors nor Sass variables may begin with one, so "2xl"
// is emitted as "size-2xl" by every variant.
const DigitPrefix = "size-"

// Slug turns a label into an identifier usable as a custom property, class
// or variable name. Leading sigils ("--", "$", ".") are dropped.
func Slug(label string) string {
	s := strings.ToLower(strings.TrimSpace(label))
	s = strings.TrimLeft(s, "-$.")
	s = slugInvalid.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s != "" && s[0] >= '0' && s[0] <= '9' {
		s = DigitPrefix + s
	}
	return s
}

// CustomProperty names the CSS custom property holding d.
func CustomProperty(e Entry, d Declaration) string {
	return "--" + qualified(e, d)
}

// ScssVariable names the SCSS variable holding d.
func ScssVariable(e Entry, d Declaration) string {
	return "$" + qualified(e, d)
}

// ClassName names the utility class for g. Entries styling several axes get
// one modifier class per axis.
func ClassName(e Entry, g Group) string {
	if len(e.Groups) > 1 && g.Axis != "" {
		return "." + e.Slug + "--" + string(g.Axis)
	}
	return "." + e.Slug
}

// Identifiers returns every bare name the entry is emitted under: the slug
// (framework keys), one per declaration (custom properties, SCSS variables)
// and one per class. Names repeated within the entry are returned once.
func (e Entry) Identifiers() []string {
	var names []string
	seen := make(map[string]bool)
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	add(e.Slug)
	for _, d := range e.Declarations() {
		add(qualified(e, d))
	}
	for _, g := range e.Groups {
		add(strings.TrimPrefix(ClassName(e, g), "."))
	}
	return names
}

func qualified(e Entry, d Declaration) string {
	if !e.Multi() {
		return e.Slug
	}
	return e.Slug + "-" + Slug(d.Property)
}

// frameworkKeys maps CSS properties onto framework theme keys.
var frameworkKeys = map[string]string{
	fluid.PropertyFontSize: "fontSize",
	"letter-spacing":       "letterSpacing",
	"line-height":          "lineHeight",
	"width":                "width",
	"min-width":            "minWidth",
	"max-width":            "maxWidth",
	"height":               "height",
	"min-height":           "minHeight",
	"max-height":           "maxHeight",
	"border-radius":        "borderRadius",
	"border-width":         "borderWidth",
}

// FrameworkKey returns the theme key a property extends. Unmapped box
// properties (padding, margin, gap, ...) extend spacing.
func FrameworkKey(property string) string {
	if key, ok := frameworkKeys[strings.ToLower(property)]; ok {
		return key
	}
	return "spacing"
}
