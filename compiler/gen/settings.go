package gen

import "slices"

// FieldTypesKey is the settings key holding the ordered attribute type list.
const FieldTypesKey = "eav.fieldTypes"

// Settings reads named configuration lists.
type Settings interface {
	// Strings returns the list stored under key, or def when unset.
	Strings(key string, def []string) []string
}

// StaticSettings is a map-backed Settings.
type StaticSettings map[string][]string

// Strings implements Settings.
func (s StaticSettings) Strings(key string, def []string) []string {
	if v, ok := s[key]; ok {
		return slices.Clone(v)
	}
	return def
}

// FieldTypes returns the configured attribute types from s.
func FieldTypes(s Settings) []string {
	if s == nil {
		return nil
	}
	return s.Strings(FieldTypesKey, []string{})
}
