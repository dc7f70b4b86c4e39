// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

// Package exifcore decodes structured metadata (camera settings, lens
// identity, timestamps, embedded preview locations) from TIFF-structured
// metadata segments: an IFD tag decoder, a table-driven binary record
// extractor for manufacturer blobs, and a conversion registry that renders
// raw values for display. The segment itself (the bytes, byte order and base
// offset) is located by the caller; all tables are injected, immutable data.
package exifcore

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"
)

// UnknownPrefix is used as prefix for unknown tag names.
const UnknownPrefix = "UnknownTag_"

const (
	byteOrderBigEndian    = 0x4d4d
	byteOrderLittleEndian = 0x4949
	tiffMagic             = 42

	tagMake        TagID = 0x010f
	tagModel       TagID = 0x0110
	tagIDMakerNote TagID = 0x927c
)

// ByteOrder is the endianness of a metadata segment, fixed once per segment.
//
//go:generate stringer -type=ByteOrder
type ByteOrder uint8

const (
	// ByteOrderAuto detects the order from the segment's leading II/MM
	// marker.
	ByteOrderAuto ByteOrder = iota
	ByteOrderLittleEndian
	ByteOrderBigEndian
)

func (b ByteOrder) binary() binary.ByteOrder {
	if b == ByteOrderLittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// HandleTagFunc is the function that is called for each decoded tag.
type HandleTagFunc func(info TagInfo) error

// TagInfo is one decoded tag.
type TagInfo struct {
	// The qualified tag id.
	Key TagKey
	// The tag name, or UnknownPrefix + hex id when unmapped.
	Tag string
	// The path to the directory the tag was found in, e.g.
	// "IFD0/ExifIFD/Nikon".
	Namespace string
	// The raw decoded value.
	Raw TagValue
	// The converted display string.
	Display string
}

// Options contains the options for the Decode function.
type Options struct {
	// Data is the metadata segment, positioned at the segment start.
	Data []byte

	// ByteOrder of the segment. ByteOrderAuto reads it from the segment's
	// TIFF header; an explicit order skips header validation and decoding
	// starts directly at IFDOffset.
	ByteOrder ByteOrder

	// BaseOffset is added to reported preview/thumbnail offsets so the
	// downstream extractor can address the original file directly.
	BaseOffset int

	// IFDOffset is where the first directory starts when ByteOrder is
	// explicit. Ignored when the order is auto-detected from the header.
	IFDOffset int

	// Tables is the generated static data to decode with.
	// Defaults to DefaultTables().
	Tables *Tables

	// If set, the decoder skips tags for which this returns false.
	ShouldHandleTag func(info TagInfo) bool

	// The function to call for each tag, in addition to collecting the
	// tag into the Result.
	HandleTag HandleTagFunc

	// Warnf will be called for each recovered, tag-local failure.
	Warnf func(string, ...any)

	// RawMode selects the raw half of each tag for serialization.
	RawMode bool

	// BinaryAsBase64 renders opaque values as base64 in JSON instead of a
	// length-annotated placeholder.
	BinaryAsBase64 bool

	// Timeout is the maximum time the decoder will spend on a segment.
	// Mostly useful for testing. If set to 0, the decoder will not time out.
	Timeout time.Duration

	// LimitNumTags is the maximum number of tags to decode.
	// Default value is 5000.
	LimitNumTags uint32

	// LimitTagSize is the maximum size in bytes of a tag value to decode.
	// Larger values are skipped with a warning. Default value is 10000.
	LimitTagSize uint32

	// MaxDepth is the maximum directory nesting and chain depth.
	// Default value is 10.
	MaxDepth int
}

// Result is the outcome of decoding one metadata segment: an ordered
// mapping of qualified tag to its raw value and display string, plus
// counters for skipped and unmapped entries.
type Result struct {
	tags  []TagInfo
	index map[TagKey]int

	rawMode        bool
	binaryAsBase64 bool

	// UnmappedConversions counts tags rendered via raw fallback because no
	// conversion is mapped. Not an error; used to prioritize table work.
	UnmappedConversions int

	// CyclesDetected counts directory chains stopped by the cycle guard.
	CyclesDetected int

	// SkippedEntries counts malformed entries that were skipped.
	SkippedEntries int
}

func newResult(opts Options) *Result {
	return &Result{
		index:          make(map[TagKey]int),
		rawMode:        opts.RawMode,
		binaryAsBase64: opts.BinaryAsBase64,
	}
}

func (r *Result) add(ti TagInfo) {
	if i, found := r.index[ti.Key]; found {
		r.tags[i] = ti
		return
	}
	r.index[ti.Key] = len(r.tags)
	r.tags = append(r.tags, ti)
}

// Tags returns all decoded tags in decode order.
func (r *Result) Tags() []TagInfo {
	return r.tags
}

// Get returns the tag with the given key.
func (r *Result) Get(key TagKey) (TagInfo, bool) {
	i, found := r.index[key]
	if !found {
		return TagInfo{}, false
	}
	return r.tags[i], true
}

// GetNamed returns the first tag with the given name, in decode order.
func (r *Result) GetNamed(name string) (TagInfo, bool) {
	for _, ti := range r.tags {
		if ti.Tag == name {
			return ti, true
		}
	}
	return TagInfo{}, false
}

// Raw returns the tag-id-to-raw-value map.
func (r *Result) Raw() map[TagKey]TagValue {
	m := make(map[TagKey]TagValue, len(r.tags))
	for _, ti := range r.tags {
		m[ti.Key] = ti.Raw
	}
	return m
}

// PreviewRange returns the byte range of the embedded preview image in the
// original file, resolved from the raw (pre-conversion) offset and length
// tags, or false if the segment carries none.
func (r *Result) PreviewRange() (offset, length int64, ok bool) {
	off, okOff := r.GetNamed("ThumbnailOffset")
	ln, okLen := r.GetNamed("ThumbnailLength")
	if !okOff || !okLen {
		return 0, 0, false
	}
	o, ok1 := off.Raw.ToInt64()
	l, ok2 := ln.Raw.ToInt64()
	if !ok1 || !ok2 {
		return 0, 0, false
	}
	return o, l, true
}

// MarshalJSON renders the ordered qualified-name-to-value mapping. RawMode
// selects the raw half; otherwise display strings are emitted.
func (r *Result) MarshalJSON() ([]byte, error) {
	type pair struct {
		Name  string `json:"name"`
		Value any    `json:"value"`
	}
	out := make([]pair, 0, len(r.tags))
	for _, ti := range r.tags {
		name := string(ti.Key.Ns) + ":" + ti.Tag
		if r.rawMode {
			out = append(out, pair{Name: name, Value: ti.Raw.JSONValue(r.binaryAsBase64)})
		} else {
			out = append(out, pair{Name: name, Value: ti.Display})
		}
	}
	return json.Marshal(out)
}

// Decode decodes the metadata segment in opts.Data and returns the decoded
// tags. Only an invalid segment header is fatal; any malformed entry, field
// or sub-structure is skipped with a warning and decoding continues.
func Decode(opts Options) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(error); ok && rerr == errStop {
				return
			}
			err = fmt.Errorf("exifcore: unknown panic: %v", r)
		}
	}()

	if opts.Data == nil {
		return nil, fmt.Errorf("exifcore: no data provided")
	}

	const (
		defaultLimitNumTags = 5000
		defaultLimitTagSize = 10000
		defaultMaxDepth     = 10
	)

	if opts.LimitNumTags == 0 {
		opts.LimitNumTags = defaultLimitNumTags
	}
	if opts.LimitTagSize == 0 {
		opts.LimitTagSize = defaultLimitTagSize
	}
	if opts.MaxDepth == 0 {
		opts.MaxDepth = defaultMaxDepth
	}
	if opts.Warnf == nil {
		opts.Warnf = func(string, ...any) {}
	}
	if opts.ShouldHandleTag == nil {
		opts.ShouldHandleTag = func(TagInfo) bool { return true }
	}
	if opts.HandleTag == nil {
		opts.HandleTag = func(TagInfo) error { return nil }
	}
	if opts.Tables == nil {
		opts.Tables = DefaultTables()
	}

	decode := func() (*Result, error) {
		d := newDecoder(opts)
		return d.decode()
	}

	if opts.Timeout > 0 {
		type res struct {
			r   *Result
			err error
		}
		resc := make(chan res, 1)
		go func() {
			defer func() {
				if r := recover(); r != nil {
					resc <- res{err: fmt.Errorf("exifcore: unknown panic: %v", r)}
				}
			}()
			r, err := decode()
			resc <- res{r: r, err: err}
		}()
		select {
		case <-time.After(opts.Timeout):
			return nil, fmt.Errorf("exifcore: timed out after %s", opts.Timeout)
		case rr := <-resc:
			return rr.r, rr.err
		}
	}

	return decode()
}
