// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifcore

import (
	"encoding/binary"
	"fmt"
	"math"
	"path"
	"strconv"
	"strings"
)

// entrySize is the fixed size of one directory entry:
//   - 2 bytes for the tag id
//   - 2 bytes for the data format
//   - 4 bytes for the number of values of that format
//   - 4 bytes for the value itself, if it fits, otherwise for a pointer to
//     another location in the segment; this could be the beginning of
//     another IFD.
const entrySize = 12

type decoder struct {
	data  []byte
	order binary.ByteOrder

	// adj is added to every pointer value before it is used as an index
	// into data. Sub-structure offsets are frequently relative to the
	// sub-structure's own start plus a fixed header length, not to the
	// segment start; the per-manufacturer MakerNoteSpec decides.
	adj int

	opts   Options
	tables *Tables

	ctx      *Context
	result   *Result
	visited  map[int]struct{}
	tagCount *uint32
}

func newDecoder(opts Options) *decoder {
	var n uint32
	return &decoder{
		data:     opts.Data,
		order:    opts.ByteOrder.binary(),
		opts:     opts,
		tables:   opts.Tables,
		ctx:      &Context{},
		result:   newResult(opts),
		visited:  make(map[int]struct{}),
		tagCount: &n,
	}
}

func (d *decoder) decode() (*Result, error) {
	offset := d.opts.IFDOffset

	if d.opts.ByteOrder == ByteOrderAuto {
		if len(d.data) < 8 {
			return nil, newInvalidHeaderErrorf("segment is %d bytes", len(d.data))
		}
		switch binary.BigEndian.Uint16(d.data[:2]) {
		case byteOrderBigEndian:
			d.order = binary.BigEndian
		case byteOrderLittleEndian:
			d.order = binary.LittleEndian
		default:
			return nil, newInvalidHeaderErrorf("unknown byte order marker 0x%x", d.data[:2])
		}
		if magic := d.order.Uint16(d.data[2:4]); magic != tiffMagic {
			return nil, newInvalidHeaderErrorf("bad magic %d", magic)
		}
		offset = int(d.order.Uint32(d.data[4:8]))
	}

	err := d.decodeIFD(offset, NsIFD0, "IFD0", 0)
	if err == errStop || err == ErrCycle {
		err = nil
	}
	return d.result, err
}

// decodeIFD walks the directory at offset and follows its next-directory
// chain. Malformed individual entries are skipped, not fatal; only callback
// errors and the stop sentinel propagate.
func (d *decoder) decodeIFD(offset int, ns Namespace, pathNs string, depth int) error {
	if depth > d.opts.MaxDepth {
		d.result.CyclesDetected++
		d.opts.Warnf("exifcore: max depth %d exceeded at %s", d.opts.MaxDepth, pathNs)
		return ErrCycle
	}
	if _, seen := d.visited[offset]; seen {
		d.result.CyclesDetected++
		d.opts.Warnf("exifcore: directory at offset %d already visited", offset)
		return ErrCycle
	}
	d.visited[offset] = struct{}{}

	if offset < 0 || offset+2 > len(d.data) {
		d.opts.Warnf("exifcore: directory offset %d out of bounds", offset)
		return newBoundsErrorf("directory at %d", offset)
	}

	numEntries := int(d.order.Uint16(d.data[offset : offset+2]))
	entriesStart := offset + 2

	// Bounds-check the declared entry count against the buffer; decode the
	// entries that fit.
	maxEntries := (len(d.data) - entriesStart) / entrySize
	if numEntries > maxEntries {
		d.opts.Warnf("exifcore: directory at %d declares %d entries, only %d fit", offset, numEntries, maxEntries)
		d.result.SkippedEntries += numEntries - maxEntries
		numEntries = maxEntries
	}

	for i := 0; i < numEntries; i++ {
		err := d.decodeEntry(entriesStart+i*entrySize, ns, pathNs, depth)
		switch {
		case err == nil:
		case err == errStop:
			return errStop
		case IsBounds(err):
			d.result.SkippedEntries++
			d.opts.Warnf("exifcore: %s entry %d skipped: %v", pathNs, i, err)
		default:
			return err
		}
	}

	// Next-directory pointer (IFD chaining, e.g. the thumbnail IFD).
	nextPos := entriesStart + numEntries*entrySize
	if nextPos+4 > len(d.data) {
		return nil
	}
	next := int(d.order.Uint32(d.data[nextPos : nextPos+4]))
	if next == 0 {
		return nil
	}
	chainNs := chainNamespace(ns)
	if err := d.decodeIFD(d.adj+next, chainNs, string(chainNs), depth+1); err != nil {
		if err == errStop {
			return errStop
		}
		// CycleDetected or a bounds failure in the chained directory:
		// stop following, keep what we have.
	}
	return nil
}

func (d *decoder) decodeEntry(pos int, ns Namespace, pathNs string, depth int) error {
	if pos+entrySize > len(d.data) {
		return newBoundsErrorf("entry at %d", pos)
	}

	tagID := TagID(d.order.Uint16(d.data[pos : pos+2]))
	format := TagFormat(d.order.Uint16(d.data[pos+2 : pos+4]))
	count := d.order.Uint32(d.data[pos+4 : pos+8])
	valueField := pos + 8

	elemSize, known := formatSize[format]
	if !known {
		return newBoundsErrorf("unknown format %d for tag 0x%04x", format, tagID)
	}
	if count > math.MaxUint32/elemSize {
		return newBoundsErrorf("count %d overflows for tag 0x%04x", count, tagID)
	}
	size := int(elemSize * count)

	def, hasDef := d.tables.definition(ns, tagID, d.ctx)
	tagName := def.Name
	if tagName == "" {
		tagName = fmt.Sprintf("%s0x%04x", UnknownPrefix, uint16(tagID))
	}

	// Resolve inline vs offset-pointer storage.
	valOff := valueField
	if size > 4 {
		ptr := int(d.order.Uint32(d.data[valueField : valueField+4]))
		valOff = d.adj + ptr
		if valOff < 0 || valOff+size > len(d.data) {
			return newBoundsErrorf("tag 0x%04x value at %d+%d", tagID, valOff, size)
		}
	}

	if hasDef && def.SubIFD != "" {
		tv := d.decodeValue(format, count, d.data[valOff:valOff+size])
		ptr, ok := tv.ToInt64()
		if !ok {
			return newBoundsErrorf("tag 0x%04x: sub-IFD pointer not numeric", tagID)
		}
		subPath := path.Join(pathNs, string(def.SubIFD))
		if err := d.decodeIFD(d.adj+int(ptr), def.SubIFD, subPath, depth+1); err != nil {
			if err == errStop {
				return errStop
			}
			// Sub-structure failures are local to the sub-structure.
		}
		return nil
	}

	if hasDef && def.MakerNote {
		d.decodeMakerNote(valOff, size, pathNs, depth)
		return nil
	}

	if hasDef && def.Binary != nil {
		blob := d.data[valOff : valOff+size]
		d.emitBinary(blob, def.Binary, path.Join(pathNs, string(def.Binary.Ns)))
		return nil
	}

	if size > int(d.opts.LimitTagSize) {
		d.opts.Warnf("exifcore: tag 0x%04x value of %d bytes exceeds limit", tagID, size)
		return nil
	}

	raw := d.decodeValue(format, count, d.data[valOff:valOff+size])

	switch tagID {
	case tagMake:
		if ns == NsIFD0 {
			if s, ok := raw.Interface().(string); ok {
				d.ctx.Make = s
			}
		}
	case tagModel:
		if ns == NsIFD0 {
			if s, ok := raw.Interface().(string); ok {
				d.ctx.Model = s
			}
		}
	}

	if hasDef && def.Seed != SeedNone {
		if v, ok := raw.ToInt64(); ok {
			d.ctx.SetSeed(def.Seed, uint32(v))
		}
	}

	if hasDef && def.AddBase && d.opts.BaseOffset != 0 {
		if v, ok := raw.ToInt64(); ok {
			raw = NewTagValue(raw.Format(), d.order, 1, uint32(v)+uint32(d.opts.BaseOffset))
		}
	}

	return d.emit(TagInfo{
		Key:       TagKey{Ns: ns, ID: tagID},
		Tag:       tagName,
		Namespace: pathNs,
		Raw:       raw,
	}, def, hasDef)
}

// emit converts, filters and records one decoded tag.
func (d *decoder) emit(ti TagInfo, def TagDefinition, hasDef bool) error {
	switch {
	case !hasDef || def.Conversion == ConvNone:
		ti.Display = ti.Raw.Text()
		d.result.UnmappedConversions++
	case def.PreserveRaw:
		// Offset/length tags the preview extractor consumes stay raw.
		ti.Display = ti.Raw.Text()
	default:
		ti.Display = Convert(ti.Raw, def.Conversion, d.tables)
	}

	if !d.opts.ShouldHandleTag(ti) {
		return nil
	}

	*d.tagCount++
	if *d.tagCount > d.opts.LimitNumTags {
		return errStop
	}

	d.result.add(ti)
	return d.opts.HandleTag(ti)
}

// decodeMakerNote enters a manufacturer sub-structure. Any failure inside is
// local: the note is recorded as opaque bytes instead.
func (d *decoder) decodeMakerNote(valOff, size int, pathNs string, depth int) {
	spec, known := d.tables.makerNoteSpec(d.ctx.Make)
	if !known {
		d.emitOpaque(valOff, size, pathNs)
		return
	}

	subPath := path.Join(pathNs, string(spec.Ns))
	start := valOff + spec.HeaderLen
	if start >= len(d.data) {
		d.opts.Warnf("exifcore: %s maker note header exceeds segment", spec.Ns)
		return
	}

	sub := *d
	if spec.EmbeddedTIFF {
		// The note carries its own TIFF header; its offsets are relative
		// to that embedded header.
		if start+8 > len(d.data) {
			d.opts.Warnf("exifcore: %s embedded TIFF header out of bounds", spec.Ns)
			return
		}
		switch binary.BigEndian.Uint16(d.data[start : start+2]) {
		case byteOrderBigEndian:
			sub.order = binary.BigEndian
		case byteOrderLittleEndian:
			sub.order = binary.LittleEndian
		default:
			d.opts.Warnf("exifcore: %s embedded TIFF header has no byte order marker", spec.Ns)
			return
		}
		sub.adj = start
		ifdOff := int(sub.order.Uint32(d.data[start+4 : start+8]))
		if err := sub.decodeIFD(start+ifdOff, spec.Ns, subPath, depth+1); err != nil && err != errStop && err != ErrCycle {
			d.opts.Warnf("exifcore: %s maker note: %v", spec.Ns, err)
		}
		return
	}

	if spec.Base == OffsetBaseBlob {
		sub.adj = start
	}
	if err := sub.decodeIFD(start, spec.Ns, subPath, depth+1); err != nil && err != errStop && err != ErrCycle {
		d.opts.Warnf("exifcore: %s maker note: %v", spec.Ns, err)
	}
}

func (d *decoder) emitOpaque(valOff, size int, pathNs string) {
	if size > int(d.opts.LimitTagSize) {
		size = int(d.opts.LimitTagSize)
	}
	blob := make([]byte, size)
	copy(blob, d.data[valOff:valOff+size])
	ti := TagInfo{
		Key:       TagKey{Ns: NsIFD0, ID: tagIDMakerNote},
		Tag:       "MakerNoteUnknown",
		Namespace: pathNs,
		Raw:       NewTagValue(FormatUndef, d.order, size, blob),
	}
	ti.Display = ti.Raw.Text()
	if d.opts.ShouldHandleTag(ti) {
		d.result.add(ti)
	}
}

// emitBinary extracts one manufacturer binary record and merges the
// synthesized tags into the result, indistinguishable from directly decoded
// tags downstream.
func (d *decoder) emitBinary(blob []byte, layout *BinaryLayout, pathNs string) {
	fields := extractBinary(blob, d.order, layout, d.ctx, d.tables, d.opts.Warnf)
	for _, f := range fields {
		def := TagDefinition{Name: f.Name, Conversion: f.Conversion}
		if err := d.emit(TagInfo{
			Key:       TagKey{Ns: layout.Ns, ID: f.ID},
			Tag:       f.Name,
			Namespace: pathNs,
			Raw:       f.Value,
		}, def, true); err != nil {
			return
		}
	}
}

// decodeValue decodes count elements of the given format from b per the
// current byte order. b has already been bounds-checked.
func (d *decoder) decodeValue(format TagFormat, count uint32, b []byte) TagValue {
	n := int(count)
	switch format {
	case FormatString:
		return NewTagValue(format, d.order, n, string(trimBytesNulls(b[:n])))
	case FormatUndef:
		cp := make([]byte, n)
		copy(cp, b[:n])
		return NewTagValue(format, d.order, n, cp)
	}

	if n == 1 {
		return NewTagValue(format, d.order, 1, decodeElem(format, d.order, b))
	}

	es := int(formatSize[format])
	values := make([]any, n)
	for i := 0; i < n; i++ {
		values[i] = decodeElem(format, d.order, b[i*es:])
	}
	return NewTagValue(format, d.order, n, values)
}

func decodeElem(format TagFormat, order binary.ByteOrder, b []byte) any {
	switch format {
	case FormatUint8:
		return b[0]
	case FormatInt8:
		return int8(b[0])
	case FormatUint16:
		return order.Uint16(b)
	case FormatInt16:
		return int16(order.Uint16(b))
	case FormatUint32:
		return order.Uint32(b)
	case FormatInt32:
		return int32(order.Uint32(b))
	case FormatURational:
		return NewRat[uint32](order.Uint32(b), order.Uint32(b[4:]))
	case FormatSRational:
		return NewRat[int32](int32(order.Uint32(b)), int32(order.Uint32(b[4:])))
	case FormatFloat:
		return float64(math.Float32frombits(order.Uint32(b)))
	case FormatDouble:
		return math.Float64frombits(order.Uint64(b))
	default:
		return b[0]
	}
}

// chainNamespace names the next directory in a chain: IFD0's chain is IFD1,
// IFD1's is IFD2, and so on. Non-numbered namespaces chain under themselves.
func chainNamespace(ns Namespace) Namespace {
	s := string(ns)
	if !strings.HasPrefix(s, "IFD") {
		return ns
	}
	i, err := strconv.Atoi(s[3:])
	if err != nil {
		return ns
	}
	return Namespace("IFD" + strconv.Itoa(i+1))
}
