package gen

import (
	"time"

	"github.com/go-openapi/inflect"
)

// TimestampLayout is the layout of the migration file prefix (YYYY_MM_DD_HHMMSS).
const TimestampLayout = "2006_01_02_150405"

// MainSuffix distinguishes the main table class from the attribute class.
const MainSuffix = "Main"

// Kind selects which of the two migration files a name refers to.
type Kind int

const (
	// KindMain is the entity table migration.
	KindMain Kind = iota
	// KindAttribute is the attribute value tables migration.
	KindAttribute
)

// String returns the kind name used in logs and errors.
func (k Kind) String() string {
	if k == KindMain {
		return "main"
	}
	return "attribute"
}

// suffix returns the class name disambiguator for k.
func (k Kind) suffix() string {
	if k == KindMain {
		return MainSuffix
	}
	return ""
}

// ClassName returns "Create" + Pascal(name) + "Entity" + suffix + "Table".
func ClassName(name, suffix string) string {
	return "Create" + inflect.Camelize(name) + "Entity" + suffix + "Table"
}

// MigrationName returns the file name of a migration without directory,
// e.g. 2024_01_01_120000_create_product_entity_main_table.go.
func MigrationName(t time.Time, name string, kind Kind, ext string) string {
	base := t.Format(TimestampLayout) + "_create_" + name + "_entity"
	if kind == KindMain {
		base += "_main"
	}
	return base + "_table" + ext
}
