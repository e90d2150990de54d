package variant

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/fluidcss/internal/domain/fluid"
)

// Built-in variant keys.
const (
	KeyVariables = "variables"
	KeyClasses   = "classes"
	KeySCSS      = "scss"
	KeyFallback  = "fallback"
	KeyFramework = "framework"
)

func cssComment(text string) string { return "/* " + text + " */" }

func lineComment(text string) string { return "// " + text }

func builtinDescriptors() []Descriptor {
	return []Descriptor{
		{
			Key:         KeyVariables,
			DisplayName: "CSS custom properties",
			Comment:     cssComment,
			Sections:    []Section{{Open: ":root {\n", Close: "}\n", Render: renderCustomProperties}},
			Usage: func(first Entry) string {
				d := first.Declarations()[0]
				return fmt.Sprintf("Usage: %s: var(%s);", d.Property, CustomProperty(first, d))
			},
		},
		{
			Key:         KeyClasses,
			DisplayName: "Utility classes",
			Comment:     cssComment,
			GroupByAxis: true,
			Sections:    []Section{{Render: renderClassRules}},
			Usage:       classUsage,
		},
		{
			Key:         KeySCSS,
			DisplayName: "SCSS variables",
			Comment:     lineComment,
			Sections:    []Section{{Render: renderScssVariables}},
			Usage: func(first Entry) string {
				d := first.Declarations()[0]
				return fmt.Sprintf("Usage: %s: %s;", d.Property, ScssVariable(first, d))
			},
		},
		{
			Key:         KeyFallback,
			DisplayName: "CSS with fallbacks",
			Comment:     cssComment,
			Sections: []Section{
				{Open: ":root {\n", Close: "}\n", Render: renderCustomProperties},
				{Open: "\n", Render: renderFallbackRules},
			},
			Usage: classUsage,
		},
		{
			Key:         KeyFramework,
			DisplayName: "Framework theme config",
			Comment:     lineComment,
			Open:        "module.exports = {\n  theme: {\n    extend: {\n",
			Close:       "    },\n  },\n};\n",
			Sections:    frameworkSections(),
			Usage: func(first Entry) string {
				d := first.Declarations()[0]
				key := FrameworkKey(d.Property)
				return fmt.Sprintf("Usage: theme('%s.%s')", key, frameworkName(first, key, d))
			},
		},
	}
}

func renderCustomProperties(e Entry) string {
	var b strings.Builder
	for _, d := range e.Declarations() {
		fmt.Fprintf(&b, "  %s: %s;\n", CustomProperty(e, d), d.Value)
	}
	return b.String()
}

func renderClassRules(e Entry) string {
	var b strings.Builder
	for _, g := range e.Groups {
		fmt.Fprintf(&b, "%s {\n", ClassName(e, g))
		for _, d := range g.Declarations {
			fmt.Fprintf(&b, "  %s: %s;\n", d.Property, d.Value)
		}
		b.WriteString("}\n")
	}
	return b.String()
}

func renderScssVariables(e Entry) string {
	var b strings.Builder
	for _, d := range e.Declarations() {
		fmt.Fprintf(&b, "%s: %s;\n", ScssVariable(e, d), d.Value)
	}
	return b.String()
}

func renderFallbackRules(e Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, ".%s {\n", e.Slug)
	for _, d := range e.Declarations() {
		fmt.Fprintf(&b, "  %s: %s;\n", d.Property, d.Value)
		fmt.Fprintf(&b, "  %s: var(%s);\n", d.Property, CustomProperty(e, d))
	}
	b.WriteString("}\n")
	return b.String()
}

func classUsage(first Entry) string {
	return fmt.Sprintf(`Usage: <p class="%s">...</p>`, strings.TrimPrefix(ClassName(first, first.Groups[0]), "."))
}

// frameworkOrder is the key order inside the theme extension.
var frameworkOrder = []string{
	"fontSize", "lineHeight", "letterSpacing", "spacing",
	"width", "minWidth", "maxWidth", "height", "minHeight", "maxHeight",
	"borderRadius", "borderWidth",
}

func frameworkSections() []Section {
	sections := make([]Section, 0, len(frameworkOrder))
	for _, key := range frameworkOrder {
		sections = append(sections, Section{
			Open:      fmt.Sprintf("      %s: {\n", key),
			Close:     "      },\n",
			Render:    frameworkRenderer(key),
			SkipEmpty: true,
		})
	}
	return sections
}

// frameworkRenderer emits the entry's declarations that extend key. A line
// height is folded into the font-size tuple when the entry has one.
func frameworkRenderer(key string) func(Entry) string {
	return func(e Entry) string {
		decls := e.Declarations()
		lineHeight, hasLineHeight := findDeclaration(decls, "line-height")
		_, hasFontSize := findDeclaration(decls, fluid.PropertyFontSize)

		var b strings.Builder
		for _, d := range decls {
			if FrameworkKey(d.Property) != key {
				continue
			}
			name := frameworkName(e, key, d)
			switch {
			case d.Property == "line-height" && hasFontSize:
				continue
			case d.Property == fluid.PropertyFontSize && hasLineHeight:
				fmt.Fprintf(&b, "        '%s': ['%s', { lineHeight: '%s' }],\n", name, d.Value, lineHeight.Value)
			default:
				fmt.Fprintf(&b, "        '%s': '%s',\n", name, d.Value)
			}
		}
		return b.String()
	}
}

// frameworkName is the entry slug, suffixed with the property when the entry
// puts more than one declaration under the same key.
func frameworkName(e Entry, key string, d Declaration) string {
	count := 0
	for _, other := range e.Declarations() {
		if FrameworkKey(other.Property) == key {
			count++
		}
	}
	if count > 1 {
		return e.Slug + "-" + Slug(d.Property)
	}
	return e.Slug
}

func findDeclaration(decls []Declaration, property string) (Declaration, bool) {
	for _, d := range decls {
		if d.Property == property {
			return d, true
		}
	}
	return Declaration{}, false
}
