// Package gwtools provides typed, bounds-checked access to the row types of a
// gravitational-wave inspiral analysis: detector geometry, single-inspiral
// event rows, and event/coincidence mappings, plus the harness for computing
// the e-thinca coincidence statistic between two events.
//
// # Records and columns
//
// Rows live in github.com/hupe1980/gwtools/record. Every row kind exposes its
// fields both as ordinary struct members and through a declarative column
// table addressed by column name:
//
//	row := record.NewSnglInspiral(reg)
//	_ = row.Set("mass1", record.Float(1.4))
//	v, _ := row.Get("ifo")
//
// Inline string columns are stored in a fixed-capacity block and enforce their
// maximum length on assignment; identifier columns validate the identifier
// class against the ilwd.Registry the row was built with.
//
// # Identifiers
//
// Package ilwd models row identifiers as class-tagged 64-bit integers with the
// canonical "table:column:n" string form. A Registry resolves the three
// well-known classes (process, sngl_inspiral event, coincidence event) once at
// startup and is passed explicitly to everything that validates identifiers.
//
// # Coincidence
//
// Package ethinca runs a pluggable pairwise overlap metric over two event
// rows, translating the REAL8 fail-NaN sentinel into ErrNotCoincident.
// Package coincindex groups coincidence-map rows by coincidence identifier
// using roaring bitmaps.
//
// # Persistence
//
// Package snapshot writes versioned, checksummed, zstd-compressed table
// snapshots through the blobstore abstraction (memory, local filesystem, S3).
package gwtools
