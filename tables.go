// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifcore

import "strings"

// The tag, layout and lookup tables in this file's types are produced by an
// offline generator (see gen/) that mines them from ExifTool's sources. They
// are injected into Decode as read-only static data so tests can substitute
// synthetic tables; nothing in this package mutates them.

// TagDefinition describes one known tag within a namespace.
type TagDefinition struct {
	ID   TagID
	Name string

	// Expected wire formats. Empty means any; a mismatch between declared
	// and observed format is recovered by best-effort coercion, never an
	// error.
	Formats []TagFormat

	// Conversion renders the raw value for display. ConvNone falls back to
	// the raw rendering and is counted as unmapped.
	Conversion ConversionID

	// SubIFD marks the tag as a pointer to a nested directory decoded
	// under the given namespace.
	SubIFD Namespace

	// MakerNote marks the tag as a manufacturer blob whose layout is
	// selected by matching the Make context against MakerNoteSpecs.
	MakerNote bool

	// Binary marks the tag as a manufacturer binary record extracted via
	// ProcessBinaryData with the given layout.
	Binary *BinaryLayout

	// Condition, if set, gates whether this definition applies at all.
	Condition *Condition

	// Seed marks tags whose raw value must be captured as a decryption
	// seed for later encrypted sections.
	Seed SeedRole

	// PreserveRaw marks offset/length pairs the preview extractor consumes;
	// their values are kept losslessly in raw form.
	PreserveRaw bool

	// AddBase adds Options.BaseOffset to the raw value, so preview offsets
	// address the original file rather than the segment.
	AddBase bool
}

// SeedRole identifies which decryption key a tag's value feeds.
type SeedRole uint8

const (
	SeedNone SeedRole = iota
	SeedSerial
	SeedCount
)

// TagSet is the flattened tag-definition table for one namespace.
type TagSet map[TagID]TagDefinition

// Condition is a declarative predicate over already-decoded context: a
// camera model prefix, the value of an earlier tag, or both. An unmet
// condition suppresses the field or definition, it never errors.
type Condition struct {
	// ModelPrefix matches when the decoded camera model starts with it.
	ModelPrefix string

	// ValAt matches when the field/tag at the given index has been decoded
	// to Equals.
	ValAt    uint32
	Equals   int64
	HasValAt bool
}

// Matches reports whether the condition holds in ctx.
func (c *Condition) Matches(ctx *Context) bool {
	if c == nil {
		return true
	}
	if c.ModelPrefix != "" {
		if ctx == nil || !strings.HasPrefix(ctx.Model, c.ModelPrefix) {
			return false
		}
	}
	if c.HasValAt {
		if ctx == nil {
			return false
		}
		v, ok := ctx.val(c.ValAt)
		if !ok || v != c.Equals {
			return false
		}
	}
	return true
}

// Context carries the already-decoded state a condition or seed-dependent
// extraction may consult. It is created per decode call and never shared.
type Context struct {
	// Model is the camera model string (tag 0x0110), if seen.
	Model string
	// Make is the camera make string (tag 0x010f), if seen.
	Make string

	// Decryption seeds captured during the walk.
	Serial    uint32
	Count     uint32
	hasSerial bool
	hasCount  bool

	// Values decoded earlier in the current binary record, keyed by field
	// index.
	vals map[uint32]int64
}

func (c *Context) val(index uint32) (int64, bool) {
	if c == nil || c.vals == nil {
		return 0, false
	}
	v, ok := c.vals[index]
	return v, ok
}

func (c *Context) setVal(index uint32, v int64) {
	if c.vals == nil {
		c.vals = make(map[uint32]int64)
	}
	c.vals[index] = v
}

// SetSeed stores a decryption seed.
func (c *Context) SetSeed(role SeedRole, v uint32) {
	switch role {
	case SeedSerial:
		c.Serial = v
		c.hasSerial = true
	case SeedCount:
		c.Count = v
		c.hasCount = true
	}
}

// HasSeeds reports whether both decryption seeds have been captured.
func (c *Context) HasSeeds() bool {
	return c.hasSerial && c.hasCount
}

// forRecord returns a copy of c with a fresh value scope for one binary
// record, so field conditions in one record never observe another's values.
func (c *Context) forRecord() *Context {
	if c == nil {
		return &Context{}
	}
	cc := *c
	cc.vals = nil
	return &cc
}

// OffsetBase selects what sub-structure internal offsets are relative to.
// The correct base is camera-model-dependent and only empirically
// discoverable, so it is an explicit per-manufacturer parameter, never a
// guess.
//
//go:generate stringer -type=OffsetBase
type OffsetBase uint8

const (
	// OffsetBaseSegment: offsets are relative to the enclosing segment
	// start (the TIFF header), as in Canon maker notes.
	OffsetBaseSegment OffsetBase = iota
	// OffsetBaseBlob: offsets are relative to the sub-structure's own
	// start, after HeaderLen bytes, as in Nikon maker notes.
	OffsetBaseBlob
)

// MakerNoteSpec describes how one manufacturer's maker note blob is entered:
// how much header to skip, what its internal offsets are relative to, and
// which namespace its tags decode under.
type MakerNoteSpec struct {
	// MakePrefix selects this spec when the Make tag starts with it.
	MakePrefix string

	Ns Namespace

	// HeaderLen bytes are skipped before the nested IFD begins.
	HeaderLen int

	// Base selects the offset base for pointer values inside the note.
	Base OffsetBase

	// EmbeddedTIFF: the note carries its own TIFF header (byte order +
	// IFD offset) after HeaderLen, as Nikon type 3 notes do.
	EmbeddedTIFF bool
}

// LookupID names one shared integer-to-string lookup table. A given table is
// referenced by id from many tag definitions and never copied per tag.
//
//go:generate stringer -type=LookupID
type LookupID uint16

// LookupTable is one named shared integer-to-string mapping.
type LookupTable map[int64]string

// TransformID identifies a manufacturer decryption transform applied to a
// private copy of a blob before field extraction.
//
//go:generate stringer -type=TransformID
type TransformID uint8

const (
	TransformNone TransformID = iota
	// TransformNikonXor is the serial/count keyed XOR stream used by Nikon
	// encrypted sections. It is obfuscation, not security.
	TransformNikonXor
)

// FieldCountMode selects how a field's element count is determined.
type FieldCountMode uint8

const (
	// CountFixed uses FieldSpec.Count.
	CountFixed FieldCountMode = iota
	// CountNulTerminated reads bytes until a NUL, bounded by the record.
	CountNulTerminated
	// CountPascal reads a length byte first (Pascal string).
	CountPascal
	// CountRemainder consumes the rest of the record.
	CountRemainder
	// CountFromField takes the count from the previously extracted field
	// at FieldSpec.CountFrom.
	CountFromField
)

// FieldSpec describes one field in a binary layout table.
//
// Offset semantics: a positive integer part is a byte index from the start
// of the blob; a negative one counts from the end (trailer records). A
// fractional part selects a bit within that byte, so 586.1 is bit 1 of byte
// 586 and is independent of a plain field at 586.
type FieldSpec struct {
	Offset float64
	Name   string
	Format TagFormat

	CountMode FieldCountMode
	Count     int
	CountFrom uint32

	// Mask, if nonzero, is ANDed onto the integer value, which is then
	// shifted down to the mask's lowest set bit.
	Mask uint32

	Condition  *Condition
	Conversion ConversionID

	// Encrypted fields are read from the decrypted copy of the blob.
	Encrypted bool
}

// BinaryLayout is the declarative table ProcessBinaryData extracts one
// manufacturer blob with.
type BinaryLayout struct {
	Ns     Namespace
	Fields []FieldSpec

	// Decrypt, when not TransformNone, is applied to a private copy of the
	// blob before any Encrypted field is read. DecryptStart is the byte
	// index the cipher starts at. If the required seeds are unavailable
	// the whole table's extraction is skipped, never guessed.
	Decrypt      TransformID
	DecryptStart int
}

// Tables is the complete injectable set of generated static data.
type Tables struct {
	Tags       map[Namespace]TagSet
	Lookups    map[LookupID]LookupTable
	MakerNotes []MakerNoteSpec

	// Xlat holds the two substitution tables the Nikon XOR transform is
	// keyed with.
	Xlat *[2][256]byte
}

// Lookup resolves a shared table by id.
func (t *Tables) Lookup(id LookupID) LookupTable {
	if t == nil {
		return nil
	}
	return t.Lookups[id]
}

func (t *Tables) definition(ns Namespace, id TagID, ctx *Context) (TagDefinition, bool) {
	if t == nil {
		return TagDefinition{}, false
	}
	set, ok := t.Tags[ns]
	if !ok {
		return TagDefinition{}, false
	}
	def, ok := set[id]
	if !ok || !def.Condition.Matches(ctx) {
		return TagDefinition{}, false
	}
	return def, true
}

func (t *Tables) makerNoteSpec(make string) (MakerNoteSpec, bool) {
	if t == nil {
		return MakerNoteSpec{}, false
	}
	for _, spec := range t.MakerNotes {
		if strings.HasPrefix(make, spec.MakePrefix) {
			return spec, true
		}
	}
	return MakerNoteSpec{}, false
}
