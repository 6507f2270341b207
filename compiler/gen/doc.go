// Package gen scaffolds the schema-change files of an Entity-Attribute-Value
// entity.
//
// A Creator writes two Go migration files for an entity: a "main" file
// creating the entity table and an "attribute" file creating one value table
// per configured attribute type. Both are rendered from stubs:
//
//	create.entity.main.stub             main table body
//	create.entity.stub                  attribute tables body
//	attribute.type.up.migration.stub    repeated per type in place of UPMIGRATION
//	attribute.type.down.migration.stub  repeated per type in place of DOWNMIGRATION
//
// # Placeholders
//
//   - FIELDTYPE: the lowercased attribute type (inside fragments only)
//   - DummyClass: Create{Pascal(name)}Entity{Main|}Table
//   - DummyTable: the entity name, verbatim
//   - DummyBaseClass: the base type the generated migration embeds
//
// The attribute type list is read from Settings under the key
// "eav.fieldTypes". Its order is kept and duplicates are not removed.
//
// # File names
//
//	{YYYY_MM_DD_HHMMSS}_create_{name}_entity_main_table.go
//	{YYYY_MM_DD_HHMMSS}_create_{name}_entity_table.go
//
// Both timestamps come from a single clock reading; the attribute file is
// stamped TimestampStep (2s by default) after the main file.
//
// # Error Handling
//
//   - StubError: a stub is missing (matches ErrStubNotFound)
//   - WriteError: the file store rejected a write (matches ErrWriteFailed)
//   - ValidationError: an input is not a safe identifier
//   - GenerationError: formatting the generated source failed
//   - ConfigError: an option was given an invalid value
//
// Example error handling:
//
//	if _, err := c.Create(ctx, "product", dir, "EntityMigration"); err != nil {
//		if errors.Is(err, gen.ErrStubNotFound) {
//			// publish or fix the stubs directory
//		}
//		return err
//	}
package gen
