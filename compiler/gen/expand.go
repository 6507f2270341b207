package gen

import "strings"

// Placeholders recognized in stubs.
const (
	PlaceholderFieldType = "FIELDTYPE"
	PlaceholderUp        = "UPMIGRATION"
	PlaceholderDown      = "DOWNMIGRATION"
	PlaceholderClass     = "DummyClass"
	PlaceholderTable     = "DummyTable"
	PlaceholderBaseClass = "DummyBaseClass"
)

// RepeatFragment returns one copy of fragment per field type, with FIELDTYPE
// replaced by the lowercased type. Copies are concatenated in order without a
// separator; an empty list yields "".
func RepeatFragment(fragment string, types []string) string {
	var b strings.Builder
	for _, t := range types {
		b.WriteString(strings.ReplaceAll(fragment, PlaceholderFieldType, strings.ToLower(t)))
	}
	return b.String()
}

// ExpandAttributes replaces marker in tmpl with fragment repeated per field type.
func ExpandAttributes(tmpl, marker, fragment string, types []string) string {
	if !strings.Contains(tmpl, marker) {
		return tmpl
	}
	return strings.ReplaceAll(tmpl, marker, RepeatFragment(fragment, types))
}

// Populate fills the class, table and base class placeholders. All three are
// replaced in one pass, so substituted values are never rescanned.
func Populate(tmpl, name, baseClass, suffix string) string {
	r := strings.NewReplacer(
		PlaceholderClass, ClassName(name, suffix),
		PlaceholderTable, name,
		PlaceholderBaseClass, baseClass,
	)
	return r.Replace(tmpl)
}

// render runs both attribute passes and then Populate over tmpl.
func render(tmpl string, frags stubSet, types []string, name, baseClass, suffix string) string {
	tmpl = ExpandAttributes(tmpl, PlaceholderUp, frags.up, types)
	tmpl = ExpandAttributes(tmpl, PlaceholderDown, frags.down, types)
	return Populate(tmpl, name, baseClass, suffix)
}
