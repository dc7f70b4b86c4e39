// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifcore

import (
	"bytes"
	"encoding/binary"
	"errors"
	"strings"
	"testing"

	"github.com/rwcarlsen/goexif/exif"

	qt "github.com/frankban/quicktest"
	"github.com/google/go-cmp/cmp"
)

// segment builds a synthetic TIFF-structured segment: a header, directories
// with pointer fixups, and out-of-line data. Pointers are absolute segment
// offsets, which is also what a sub-builder's offsets are relative to its own
// start, so a whole sub-segment can be embedded as a maker note blob.
type segmentByteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

type segment struct {
	order segmentByteOrder
	buf   []byte
}

func newSegment(order segmentByteOrder) *segment {
	s := &segment{order: order}
	if order == binary.LittleEndian {
		s.buf = append(s.buf, 'I', 'I')
	} else {
		s.buf = append(s.buf, 'M', 'M')
	}
	s.buf = s.order.AppendUint16(s.buf, tiffMagic)
	s.buf = s.order.AppendUint32(s.buf, 0)
	return s
}

func (s *segment) setRoot(offset uint32) {
	s.order.PutUint32(s.buf[4:8], offset)
}

type dirEntry struct {
	id     TagID
	format TagFormat
	count  uint32
	inline [4]byte
	data   []byte
}

// appendIFD writes one directory with the given next-directory pointer.
// Entries carrying out-of-line data get their pointer fixed up to the data
// area appended directly after the directory.
func (s *segment) appendIFD(next uint32, entries ...dirEntry) uint32 {
	start := uint32(len(s.buf))
	dataOff := start + 2 + uint32(len(entries))*entrySize + 4
	var data []byte
	s.buf = s.order.AppendUint16(s.buf, uint16(len(entries)))
	for _, e := range entries {
		s.buf = s.order.AppendUint16(s.buf, uint16(e.id))
		s.buf = s.order.AppendUint16(s.buf, uint16(e.format))
		s.buf = s.order.AppendUint32(s.buf, e.count)
		if e.data != nil {
			s.buf = s.order.AppendUint32(s.buf, dataOff+uint32(len(data)))
			data = append(data, e.data...)
		} else {
			s.buf = append(s.buf, e.inline[:]...)
		}
	}
	s.buf = s.order.AppendUint32(s.buf, next)
	s.buf = append(s.buf, data...)
	return start
}

func (s *segment) appendBlob(b []byte) uint32 {
	off := uint32(len(s.buf))
	s.buf = append(s.buf, b...)
	return off
}

func (s *segment) entryU16(id TagID, v uint16) dirEntry {
	e := dirEntry{id: id, format: FormatUint16, count: 1}
	s.order.PutUint16(e.inline[:2], v)
	return e
}

func (s *segment) entryU32(id TagID, v uint32) dirEntry {
	e := dirEntry{id: id, format: FormatUint32, count: 1}
	s.order.PutUint32(e.inline[:], v)
	return e
}

func (s *segment) entryString(id TagID, v string) dirEntry {
	b := append([]byte(v), 0)
	e := dirEntry{id: id, format: FormatString, count: uint32(len(b))}
	if len(b) <= 4 {
		copy(e.inline[:], b)
		return e
	}
	e.data = b
	return e
}

func (s *segment) entryURats(id TagID, pairs ...[2]uint32) dirEntry {
	var b []byte
	for _, p := range pairs {
		b = s.order.AppendUint32(b, p[0])
		b = s.order.AppendUint32(b, p[1])
	}
	return dirEntry{id: id, format: FormatURational, count: uint32(len(pairs)), data: b}
}

func (s *segment) entryUndef(id TagID, b []byte) dirEntry {
	e := dirEntry{id: id, format: FormatUndef, count: uint32(len(b))}
	if len(b) <= 4 {
		copy(e.inline[:], b)
		return e
	}
	e.data = append([]byte(nil), b...)
	return e
}

// entryPtr writes an explicit pointer value, for values that already live
// elsewhere in the segment (maker note blobs, sub-directories).
func (s *segment) entryPtr(id TagID, format TagFormat, count, ptr uint32) dirEntry {
	e := dirEntry{id: id, format: format, count: count}
	s.order.PutUint32(e.inline[:], ptr)
	return e
}

func TestDecodeBothByteOrders(t *testing.T) {
	for _, order := range []segmentByteOrder{binary.LittleEndian, binary.BigEndian} {
		t.Run(order.String(), func(t *testing.T) {
			c := qt.New(t)

			s := newSegment(order)
			root := s.appendIFD(0,
				s.entryString(tagMake, "TestCam"),
				s.entryString(tagModel, "X100"),
				s.entryU16(0x0112, 6),
				s.entryU32(0x0100, 1024),
			)
			s.setRoot(root)

			res, err := Decode(Options{Data: s.buf})
			c.Assert(err, qt.IsNil)
			c.Assert(len(res.Tags()), qt.Equals, 4)

			ti, ok := res.Get(TagKey{Ns: NsIFD0, ID: 0x0112})
			c.Assert(ok, qt.IsTrue)
			c.Assert(ti.Tag, qt.Equals, "Orientation")
			c.Assert(ti.Raw.Interface(), qt.Equals, uint16(6))
			c.Assert(ti.Display, qt.Equals, "Rotate 90 CW")

			mk, ok := res.GetNamed("Make")
			c.Assert(ok, qt.IsTrue)
			c.Assert(mk.Display, qt.Equals, "TestCam")
			c.Assert(mk.Namespace, qt.Equals, "IFD0")

			width, ok := res.GetNamed("ImageWidth")
			c.Assert(ok, qt.IsTrue)
			c.Assert(width.Raw.Interface(), qt.Equals, uint32(1024))
		})
	}
}

func TestDecodeInjectedTables(t *testing.T) {
	c := qt.New(t)

	// All static data is injected, so a synthetic table can drive the whole
	// pipeline end to end.
	tables := &Tables{
		Tags: map[Namespace]TagSet{
			NsIFD0: {
				0x0001: {ID: 0x0001, Name: "NightMode", Conversion: ConvOnOff},
			},
		},
	}

	s := newSegment(binary.LittleEndian)
	root := s.appendIFD(0, s.entryU16(0x0001, 0))
	s.setRoot(root)

	res, err := Decode(Options{Data: s.buf, Tables: tables})
	c.Assert(err, qt.IsNil)
	ti, ok := res.GetNamed("NightMode")
	c.Assert(ok, qt.IsTrue)
	c.Assert(ti.Display, qt.Equals, "Off")
	c.Assert(res.UnmappedConversions, qt.Equals, 0)
}

func TestDecodeExplicitByteOrder(t *testing.T) {
	c := qt.New(t)

	s := newSegment(binary.BigEndian)
	root := s.appendIFD(0, s.entryU16(0x0112, 3))
	s.setRoot(root)

	// An explicit order skips header validation; decoding starts at
	// IFDOffset directly.
	res, err := Decode(Options{
		Data:      s.buf,
		ByteOrder: ByteOrderBigEndian,
		IFDOffset: int(root),
	})
	c.Assert(err, qt.IsNil)
	ti, ok := res.GetNamed("Orientation")
	c.Assert(ok, qt.IsTrue)
	c.Assert(ti.Display, qt.Equals, "Rotate 180")
}

func TestDecodeInvalidHeader(t *testing.T) {
	c := qt.New(t)

	for _, data := range [][]byte{
		nil,
		{},
		{'I', 'I'},
		[]byte("XXXX\x00\x00\x00\x08"),
		[]byte("II\x00\x99\x08\x00\x00\x00"), // bad magic
	} {
		_, err := Decode(Options{Data: data})
		if data == nil {
			c.Assert(err, qt.IsNotNil)
			continue
		}
		c.Assert(errors.Is(err, ErrInvalidHeader), qt.IsTrue, qt.Commentf("data %q", data))
	}
}

func TestDecodeSubIFD(t *testing.T) {
	c := qt.New(t)

	s := newSegment(binary.LittleEndian)
	exifIFD := s.appendIFD(0,
		s.entryURats(0x829a, [2]uint32{1, 200}),
		s.entryURats(0x829d, [2]uint32{28, 5}),
		s.entryUndef(0x9286, append([]byte("ASCII\x00\x00\x00"), "hello world"...)),
	)
	root := s.appendIFD(0,
		s.entryString(tagMake, "TestCam"),
		s.entryU32(0x8769, exifIFD),
	)
	s.setRoot(root)

	res, err := Decode(Options{Data: s.buf})
	c.Assert(err, qt.IsNil)

	et, ok := res.Get(TagKey{Ns: NsExif, ID: 0x829a})
	c.Assert(ok, qt.IsTrue)
	c.Assert(et.Tag, qt.Equals, "ExposureTime")
	c.Assert(et.Namespace, qt.Equals, "IFD0/ExifIFD")
	c.Assert(et.Raw.Interface(), qt.Equals, NewRat[uint32](1, 200))
	c.Assert(et.Display, qt.Equals, "1/200")

	fn, ok := res.GetNamed("FNumber")
	c.Assert(ok, qt.IsTrue)
	c.Assert(fn.Display, qt.Equals, "5.6")

	uc, ok := res.GetNamed("UserComment")
	c.Assert(ok, qt.IsTrue)
	c.Assert(uc.Display, qt.Equals, "hello world")
}

func TestDecodeGPS(t *testing.T) {
	c := qt.New(t)

	s := newSegment(binary.LittleEndian)
	gpsIFD := s.appendIFD(0,
		s.entryString(0x0001, "N"),
		s.entryURats(0x0002, [2]uint32{40, 1}, [2]uint32{30, 1}, [2]uint32{0, 1}),
	)
	root := s.appendIFD(0, s.entryU32(0x8825, gpsIFD))
	s.setRoot(root)

	res, err := Decode(Options{Data: s.buf})
	c.Assert(err, qt.IsNil)

	lat, ok := res.Get(TagKey{Ns: NsGPS, ID: 0x0002})
	c.Assert(ok, qt.IsTrue)
	c.Assert(lat.Tag, qt.Equals, "GPSLatitude")
	c.Assert(lat.Namespace, qt.Equals, "IFD0/GPSInfoIFD")
	c.Assert(lat.Display, qt.Equals, "40.500000")
}

func TestDecodeChainedIFD(t *testing.T) {
	c := qt.New(t)

	s := newSegment(binary.LittleEndian)
	ifd1 := s.appendIFD(0,
		s.entryU32(0x0201, 1000),
		s.entryU32(0x0202, 500),
	)
	root := s.appendIFD(ifd1, s.entryU16(0x0112, 1))
	s.setRoot(root)

	res, err := Decode(Options{Data: s.buf, BaseOffset: 12})
	c.Assert(err, qt.IsNil)

	// The thumbnail pair lives in the chained directory, is kept raw, and
	// gets the base offset added so it addresses the original file.
	off, ok := res.Get(TagKey{Ns: NsIFD1, ID: 0x0201})
	c.Assert(ok, qt.IsTrue)
	c.Assert(off.Namespace, qt.Equals, "IFD1")
	c.Assert(off.Display, qt.Equals, "1012")

	o, l, ok := res.PreviewRange()
	c.Assert(ok, qt.IsTrue)
	c.Assert(o, qt.Equals, int64(1012))
	c.Assert(l, qt.Equals, int64(500))
}

func TestDecodeNoPreview(t *testing.T) {
	c := qt.New(t)

	s := newSegment(binary.LittleEndian)
	root := s.appendIFD(0, s.entryU16(0x0112, 1))
	s.setRoot(root)

	res, err := Decode(Options{Data: s.buf})
	c.Assert(err, qt.IsNil)
	_, _, ok := res.PreviewRange()
	c.Assert(ok, qt.IsFalse)
}

func TestDecodeCycle(t *testing.T) {
	c := qt.New(t)

	s := newSegment(binary.LittleEndian)
	root := s.appendIFD(0, s.entryU16(0x0112, 1))
	s.setRoot(root)
	// Point the next-directory pointer back at the directory itself.
	nextPos := root + 2 + entrySize
	s.order.PutUint32(s.buf[nextPos:nextPos+4], root)

	var warnings []string
	res, err := Decode(Options{
		Data:  s.buf,
		Warnf: func(format string, args ...any) { warnings = append(warnings, format) },
	})
	c.Assert(err, qt.IsNil)
	c.Assert(res.CyclesDetected, qt.Equals, 1)
	c.Assert(len(res.Tags()), qt.Equals, 1)
	c.Assert(len(warnings), qt.Equals, 1)
}

func TestDecodeMaxDepth(t *testing.T) {
	c := qt.New(t)

	s := newSegment(binary.LittleEndian)
	ifd2 := s.appendIFD(0, s.entryU16(0x0128, 2))
	ifd1 := s.appendIFD(ifd2, s.entryU32(0x0201, 9))
	root := s.appendIFD(ifd1, s.entryU16(0x0112, 1))
	s.setRoot(root)

	res, err := Decode(Options{Data: s.buf, MaxDepth: 1})
	c.Assert(err, qt.IsNil)
	// root (depth 0) and its chain (depth 1) decode; the third directory is
	// stopped by the depth guard and everything before it is kept.
	c.Assert(res.CyclesDetected, qt.Equals, 1)
	c.Assert(len(res.Tags()), qt.Equals, 2)
}

func TestDecodeTruncatedDirectory(t *testing.T) {
	c := qt.New(t)

	s := newSegment(binary.LittleEndian)
	root := s.appendIFD(0, s.entryU16(0x0112, 6))
	s.setRoot(root)
	// Claim far more entries than the buffer holds.
	s.order.PutUint16(s.buf[root:root+2], 1000)

	res, err := Decode(Options{Data: s.buf})
	c.Assert(err, qt.IsNil)
	c.Assert(res.SkippedEntries, qt.Equals, 999)
	ti, ok := res.GetNamed("Orientation")
	c.Assert(ok, qt.IsTrue)
	c.Assert(ti.Raw.Interface(), qt.Equals, uint16(6))
}

func TestDecodeMalformedEntrySkipped(t *testing.T) {
	c := qt.New(t)

	s := newSegment(binary.LittleEndian)
	bad := dirEntry{id: 0x0131, format: TagFormat(99), count: 1}
	root := s.appendIFD(0,
		s.entryU16(0x0112, 1),
		bad,
		s.entryU16(0x0128, 2),
	)
	s.setRoot(root)

	res, err := Decode(Options{Data: s.buf})
	c.Assert(err, qt.IsNil)
	c.Assert(res.SkippedEntries, qt.Equals, 1)
	c.Assert(len(res.Tags()), qt.Equals, 2)
}

func TestDecodeOutOfBoundsPointer(t *testing.T) {
	c := qt.New(t)

	s := newSegment(binary.LittleEndian)
	root := s.appendIFD(0,
		s.entryPtr(0x010e, FormatString, 100, 0xffff00),
		s.entryU16(0x0112, 1),
	)
	s.setRoot(root)

	res, err := Decode(Options{Data: s.buf})
	c.Assert(err, qt.IsNil)
	c.Assert(res.SkippedEntries, qt.Equals, 1)
	_, ok := res.GetNamed("Orientation")
	c.Assert(ok, qt.IsTrue)
}

func TestDecodeUnknownTag(t *testing.T) {
	c := qt.New(t)

	s := newSegment(binary.LittleEndian)
	root := s.appendIFD(0, s.entryU16(0xeeee, 7))
	s.setRoot(root)

	res, err := Decode(Options{Data: s.buf})
	c.Assert(err, qt.IsNil)
	ti, ok := res.Get(TagKey{Ns: NsIFD0, ID: 0xeeee})
	c.Assert(ok, qt.IsTrue)
	c.Assert(ti.Tag, qt.Equals, UnknownPrefix+"0xeeee")
	c.Assert(ti.Display, qt.Equals, "7")
	c.Assert(res.UnmappedConversions, qt.Equals, 1)
}

func TestDecodeDuplicateTagLastWins(t *testing.T) {
	c := qt.New(t)

	s := newSegment(binary.LittleEndian)
	root := s.appendIFD(0,
		s.entryU16(0x0112, 1),
		s.entryU16(0x0112, 3),
	)
	s.setRoot(root)

	res, err := Decode(Options{Data: s.buf})
	c.Assert(err, qt.IsNil)
	c.Assert(len(res.Tags()), qt.Equals, 1)
	ti, _ := res.GetNamed("Orientation")
	c.Assert(ti.Raw.Interface(), qt.Equals, uint16(3))
}

func TestDecodeShouldHandleTag(t *testing.T) {
	c := qt.New(t)

	s := newSegment(binary.LittleEndian)
	root := s.appendIFD(0,
		s.entryString(tagMake, "TestCam"),
		s.entryU16(0x0112, 1),
	)
	s.setRoot(root)

	var handled []string
	res, err := Decode(Options{
		Data:            s.buf,
		ShouldHandleTag: func(ti TagInfo) bool { return ti.Tag == "Orientation" },
		HandleTag: func(ti TagInfo) error {
			handled = append(handled, ti.Tag)
			return nil
		},
	})
	c.Assert(err, qt.IsNil)
	c.Assert(handled, qt.DeepEquals, []string{"Orientation"})
	c.Assert(len(res.Tags()), qt.Equals, 1)
}

func TestDecodeHandleTagError(t *testing.T) {
	c := qt.New(t)

	s := newSegment(binary.LittleEndian)
	root := s.appendIFD(0,
		s.entryU16(0x0112, 1),
		s.entryU16(0x0128, 2),
	)
	s.setRoot(root)

	myErr := errors.New("handler failed")
	_, err := Decode(Options{
		Data:      s.buf,
		HandleTag: func(ti TagInfo) error { return myErr },
	})
	c.Assert(errors.Is(err, myErr), qt.IsTrue)
}

func TestDecodeLimitNumTags(t *testing.T) {
	c := qt.New(t)

	s := newSegment(binary.LittleEndian)
	root := s.appendIFD(0,
		s.entryU16(0x0100, 1),
		s.entryU16(0x0101, 2),
		s.entryU16(0x0112, 3),
		s.entryU16(0x0128, 4),
	)
	s.setRoot(root)

	res, err := Decode(Options{Data: s.buf, LimitNumTags: 2})
	c.Assert(err, qt.IsNil)
	c.Assert(len(res.Tags()), qt.Equals, 2)
}

func TestDecodeLimitTagSize(t *testing.T) {
	c := qt.New(t)

	s := newSegment(binary.LittleEndian)
	root := s.appendIFD(0,
		s.entryString(0x010e, strings.Repeat("x", 100)),
		s.entryU16(0x0112, 1),
	)
	s.setRoot(root)

	res, err := Decode(Options{Data: s.buf, LimitTagSize: 50})
	c.Assert(err, qt.IsNil)
	_, ok := res.GetNamed("ImageDescription")
	c.Assert(ok, qt.IsFalse)
	_, ok = res.GetNamed("Orientation")
	c.Assert(ok, qt.IsTrue)
}

func TestDecodeDeterministic(t *testing.T) {
	c := qt.New(t)

	s := buildCanonSegment()

	res1, err := Decode(Options{Data: s.buf})
	c.Assert(err, qt.IsNil)
	res2, err := Decode(Options{Data: s.buf})
	c.Assert(err, qt.IsNil)

	j1, err := res1.MarshalJSON()
	c.Assert(err, qt.IsNil)
	j2, err := res2.MarshalJSON()
	c.Assert(err, qt.IsNil)
	c.Assert(cmp.Diff(string(j1), string(j2)), qt.Equals, "")
}

func TestResultMarshalJSON(t *testing.T) {
	c := qt.New(t)

	s := newSegment(binary.LittleEndian)
	root := s.appendIFD(0, s.entryU16(0x0112, 6))
	s.setRoot(root)

	res, err := Decode(Options{Data: s.buf})
	c.Assert(err, qt.IsNil)
	j, err := res.MarshalJSON()
	c.Assert(err, qt.IsNil)
	c.Assert(string(j), qt.Contains, `"IFD0:Orientation"`)
	c.Assert(string(j), qt.Contains, `"Rotate 90 CW"`)

	raw, err := Decode(Options{Data: s.buf, RawMode: true})
	c.Assert(err, qt.IsNil)
	j, err = raw.MarshalJSON()
	c.Assert(err, qt.IsNil)
	c.Assert(string(j), qt.Contains, `"value":6`)
}

// buildCanonSegment assembles a segment with a Canon maker note: a plain IFD
// at the blob start whose internal offsets are relative to the segment, as
// Canon writes them.
func buildCanonSegment() *segment {
	s := newSegment(binary.LittleEndian)

	settings := make([]byte, 42)
	le := binary.LittleEndian
	le.PutUint16(settings[2:], 1)    // MacroMode: On
	le.PutUint16(settings[6:], 3)    // Quality: Fine
	le.PutUint16(settings[8:], 2)    // CanonFlashMode: Auto
	le.PutUint16(settings[14:], 1)   // FocusMode: Manual
	le.PutUint16(settings[22:], 1)   // LensType
	le.PutUint16(settings[24:], 200) // MaxFocalLength
	le.PutUint16(settings[26:], 70)  // MinFocalLength

	canonIFD := s.appendIFD(0,
		s.entryUndef(0x0001, settings),
		s.entryString(0x0006, "IMG:Test"),
	)
	canonEnd := uint32(len(s.buf))

	exifIFD := s.appendIFD(0,
		s.entryPtr(tagIDMakerNote, FormatUndef, canonEnd-canonIFD, canonIFD),
	)
	root := s.appendIFD(0,
		s.entryString(tagMake, "Canon"),
		s.entryString(tagModel, "Canon EOS R5"),
		s.entryU32(0x8769, exifIFD),
	)
	s.setRoot(root)
	return s
}

func TestDecodeCanonMakerNote(t *testing.T) {
	c := qt.New(t)

	s := buildCanonSegment()
	res, err := Decode(Options{Data: s.buf})
	c.Assert(err, qt.IsNil)

	img, ok := res.Get(TagKey{Ns: NsCanon, ID: 0x0006})
	c.Assert(ok, qt.IsTrue)
	c.Assert(img.Tag, qt.Equals, "CanonImageType")
	c.Assert(img.Namespace, qt.Equals, "IFD0/ExifIFD/Canon")
	c.Assert(img.Display, qt.Equals, "IMG:Test")

	// The packed CameraSettings record is extracted into synthesized tags,
	// indistinguishable from directly decoded ones.
	macro, ok := res.Get(TagKey{Ns: "Canon.CameraSettings", ID: 0})
	c.Assert(ok, qt.IsTrue)
	c.Assert(macro.Tag, qt.Equals, "MacroMode")
	c.Assert(macro.Namespace, qt.Equals, "IFD0/ExifIFD/Canon/Canon.CameraSettings")
	c.Assert(macro.Display, qt.Equals, "On")

	lens, ok := res.Get(TagKey{Ns: "Canon.CameraSettings", ID: 6})
	c.Assert(ok, qt.IsTrue)
	c.Assert(lens.Tag, qt.Equals, "LensType")
	c.Assert(lens.Display, qt.Equals, "Canon EF 50mm f/1.8")

	quality, _ := res.Get(TagKey{Ns: "Canon.CameraSettings", ID: 2})
	c.Assert(quality.Display, qt.Equals, "Fine")
	focal, _ := res.Get(TagKey{Ns: "Canon.CameraSettings", ID: 7})
	c.Assert(focal.Display, qt.Equals, "200 mm")
}

func TestDecodeNikonMakerNote(t *testing.T) {
	c := qt.New(t)

	const (
		serial = uint32(12345678)
		count  = uint32(1234)
	)

	// The lens record's version header stays plain; the rest is run through
	// the XOR transform. Encrypting is the same operation as decrypting.
	lensData := make([]byte, 16)
	copy(lensData, "0204")
	lensData[12] = 6  // LensID
	lensData[13] = 40 // ApertureAtMinFocal
	lensData[14] = 55 // MinFocalLength
	lensData[15] = 55 // MaxFocalLength
	encrypted := nikonDecrypt(lensData, 4, serial, count, &nikonXlat)

	// Type 3 notes carry their own TIFF header after a 10-byte signature;
	// internal offsets are relative to that embedded header, which a
	// sub-builder's offsets already are.
	note := newSegment(binary.LittleEndian)
	noteIFD := note.appendIFD(0,
		note.entryString(0x001d, "12345678"),
		note.entryU32(0x00a7, count),
		note.entryUndef(0x0098, encrypted),
	)
	note.setRoot(noteIFD)
	blob := append([]byte("Nikon\x00\x02\x11\x00\x00"), note.buf...)

	s := newSegment(binary.LittleEndian)
	blobOff := s.appendBlob(blob)
	exifIFD := s.appendIFD(0,
		s.entryPtr(tagIDMakerNote, FormatUndef, uint32(len(blob)), blobOff),
	)
	root := s.appendIFD(0,
		s.entryString(tagMake, "NIKON CORPORATION"),
		s.entryU32(0x8769, exifIFD),
	)
	s.setRoot(root)

	res, err := Decode(Options{Data: s.buf})
	c.Assert(err, qt.IsNil)

	sn, ok := res.Get(TagKey{Ns: NsNikon, ID: 0x001d})
	c.Assert(ok, qt.IsTrue)
	c.Assert(sn.Tag, qt.Equals, "SerialNumber")
	c.Assert(sn.Namespace, qt.Equals, "IFD0/ExifIFD/Nikon")
	c.Assert(sn.Display, qt.Equals, "12345678")

	version, ok := res.Get(TagKey{Ns: "Nikon.LensData", ID: 0})
	c.Assert(ok, qt.IsTrue)
	c.Assert(version.Tag, qt.Equals, "LensDataVersion")
	c.Assert(version.Raw.Interface(), qt.Equals, "0204")

	lens, ok := res.Get(TagKey{Ns: "Nikon.LensData", ID: 1})
	c.Assert(ok, qt.IsTrue)
	c.Assert(lens.Tag, qt.Equals, "LensID")
	c.Assert(lens.Display, qt.Equals, "AF Micro-Nikkor 55mm f/2.8")
	maxFocal, _ := res.Get(TagKey{Ns: "Nikon.LensData", ID: 4})
	c.Assert(maxFocal.Display, qt.Equals, "55")
}

func TestDecodeNikonMakerNoteMissingSeeds(t *testing.T) {
	c := qt.New(t)

	lensData := make([]byte, 16)
	copy(lensData, "0204")

	note := newSegment(binary.LittleEndian)
	// No serial or shutter count tags: the encrypted record must be
	// skipped, never decrypted with guessed keys.
	noteIFD := note.appendIFD(0,
		note.entryUndef(0x0098, lensData),
	)
	note.setRoot(noteIFD)
	blob := append([]byte("Nikon\x00\x02\x11\x00\x00"), note.buf...)

	s := newSegment(binary.LittleEndian)
	blobOff := s.appendBlob(blob)
	exifIFD := s.appendIFD(0,
		s.entryPtr(tagIDMakerNote, FormatUndef, uint32(len(blob)), blobOff),
	)
	root := s.appendIFD(0,
		s.entryString(tagMake, "NIKON CORPORATION"),
		s.entryU32(0x8769, exifIFD),
	)
	s.setRoot(root)

	var warnings []string
	res, err := Decode(Options{
		Data:  s.buf,
		Warnf: func(format string, args ...any) { warnings = append(warnings, format) },
	})
	c.Assert(err, qt.IsNil)
	_, ok := res.Get(TagKey{Ns: "Nikon.LensData", ID: 0})
	c.Assert(ok, qt.IsFalse)
	c.Assert(len(warnings), qt.Not(qt.Equals), 0)
}

func TestDecodeUnknownMakerNoteKeptOpaque(t *testing.T) {
	c := qt.New(t)

	blob := []byte("PENTAX proprietary bytes")

	s := newSegment(binary.LittleEndian)
	blobOff := s.appendBlob(blob)
	exifIFD := s.appendIFD(0,
		s.entryPtr(tagIDMakerNote, FormatUndef, uint32(len(blob)), blobOff),
	)
	root := s.appendIFD(0,
		s.entryString(tagMake, "PENTAX"),
		s.entryU32(0x8769, exifIFD),
	)
	s.setRoot(root)

	res, err := Decode(Options{Data: s.buf})
	c.Assert(err, qt.IsNil)
	ti, ok := res.GetNamed("MakerNoteUnknown")
	c.Assert(ok, qt.IsTrue)
	c.Assert(ti.Raw.Bytes(), qt.DeepEquals, blob)
}

// TestDecodeAgainstGoexif cross-checks the values this decoder extracts from
// a synthetic segment against an independent EXIF implementation.
func TestDecodeAgainstGoexif(t *testing.T) {
	c := qt.New(t)

	s := newSegment(binary.LittleEndian)
	root := s.appendIFD(0,
		s.entryString(tagMake, "TestCam"),
		s.entryString(tagModel, "X100"),
		s.entryU16(0x0112, 6),
		s.entryU32(0x0100, 1024),
	)
	s.setRoot(root)

	res, err := Decode(Options{Data: s.buf})
	c.Assert(err, qt.IsNil)

	x, err := exif.Decode(bytes.NewReader(s.buf))
	c.Assert(err, qt.IsNil)

	for _, check := range []struct {
		field exif.FieldName
		name  string
	}{
		{exif.Make, "Make"},
		{exif.Model, "Model"},
	} {
		theirTag, err := x.Get(check.field)
		c.Assert(err, qt.IsNil)
		theirs, err := theirTag.StringVal()
		c.Assert(err, qt.IsNil)
		ours, ok := res.GetNamed(check.name)
		c.Assert(ok, qt.IsTrue)
		c.Assert(ours.Display, qt.Equals, theirs)
	}

	theirOrientation, err := x.Get(exif.Orientation)
	c.Assert(err, qt.IsNil)
	n, err := theirOrientation.Int(0)
	c.Assert(err, qt.IsNil)
	ourOrientation, _ := res.GetNamed("Orientation")
	ourN, ok := ourOrientation.Raw.ToInt64()
	c.Assert(ok, qt.IsTrue)
	c.Assert(ourN, qt.Equals, int64(n))
}
