// Package record defines the typed row kinds of the inspiral analysis:
// Detector geometry, SnglInspiral event rows, and CoincMap rows linking
// events to coincidence groupings.
//
// Each row kind exposes its fields through a static, reflection-free column
// table addressed by column name, trading in the small tagged Value type.
// The column tables are where all validation lives: inline string capacities,
// integer widths, and identifier class identity. A failed Set never modifies
// the row.
//
// Rows are not safe for concurrent mutation; callers sharing a row across
// goroutines must serialize access externally.
package record
