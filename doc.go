// Package binstream implements a binary codec for fixed-layout byte
// representations of scalar values: signed and unsigned integers of
// every width, IEEE 754 single and double precision floats, a compact
// binary16 half precision format, strings and enumerations, under a
// selectable byte order.
//
// The package has two layers. Package-level Encode / Decode functions
// convert a single scalar to and from its fixed-length byte sequence.
// On top of them, Writer and Reader wrap an io.Writer or io.Reader and
// provide ordered, position-tracked stream operations that compose into
// arbitrary caller-defined layouts. The layout of every value is
// determined entirely by the caller's sequence of operations; there is
// no self-describing format, no versioning and no compression.
package binstream
