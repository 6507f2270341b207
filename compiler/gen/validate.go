package gen

import (
	"go/token"
	"regexp"
	"strings"
)

var (
	entityNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	fieldTypeRe  = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)
)

// ValidateEntityName checks that name can be used as a table name, a file
// name fragment and (after Pascal conversion) part of a Go identifier.
func ValidateEntityName(name string) error {
	if name == "" {
		return NewValidationError("name", name, "cannot be empty")
	}
	if !entityNameRe.MatchString(name) {
		return NewValidationError("name", name, "must match [A-Za-z_][A-Za-z0-9_]*")
	}
	return nil
}

// ValidateBaseClass checks that base is a Go identifier, optionally
// package-qualified (migrate.EntityMigration).
func ValidateBaseClass(base string) error {
	if base == "" {
		return NewValidationError("base class", base, "cannot be empty")
	}
	for _, part := range strings.Split(base, ".") {
		if !token.IsIdentifier(part) {
			return NewValidationError("base class", base, "must be a Go identifier or pkg.Identifier")
		}
	}
	return nil
}

// ValidateFieldTypes checks every configured attribute type.
func ValidateFieldTypes(types []string) error {
	for _, t := range types {
		if !fieldTypeRe.MatchString(t) {
			return NewValidationError("field type", t, "must match [A-Za-z][A-Za-z0-9_]*")
		}
	}
	return nil
}
