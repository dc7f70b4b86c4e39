// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifcore

import (
	"encoding"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// TagFormat is the wire primitive kind of a decoded value.
// The numeric values match the TIFF type codes.
//
//go:generate stringer -type=TagFormat
type TagFormat uint16

const (
	FormatUint8     TagFormat = 1
	FormatString    TagFormat = 2
	FormatUint16    TagFormat = 3
	FormatUint32    TagFormat = 4
	FormatURational TagFormat = 5
	FormatInt8      TagFormat = 6
	FormatUndef     TagFormat = 7
	FormatInt16     TagFormat = 8
	FormatInt32     TagFormat = 9
	FormatSRational TagFormat = 10
	FormatFloat     TagFormat = 11
	FormatDouble    TagFormat = 12
)

// Size in bytes of one element of each format.
var formatSize = map[TagFormat]uint32{
	FormatUint8:     1,
	FormatString:    1,
	FormatUint16:    2,
	FormatUint32:    4,
	FormatURational: 8,
	FormatInt8:      1,
	FormatUndef:     1,
	FormatInt16:     2,
	FormatInt32:     4,
	FormatSRational: 8,
	FormatFloat:     4,
	FormatDouble:    8,
}

// Namespace scopes tag ids so identical raw ids from different vendors never
// collide, e.g. "IFD0", "Canon", "Nikon.ShotInfo".
type Namespace string

const (
	NsIFD0    Namespace = "IFD0"
	NsIFD1    Namespace = "IFD1"
	NsExif    Namespace = "ExifIFD"
	NsGPS     Namespace = "GPSInfoIFD"
	NsInterop Namespace = "InteroperabilityIFD"
	NsCanon   Namespace = "Canon"
	NsNikon   Namespace = "Nikon"
)

// TagID is a raw tag id within one namespace.
type TagID uint16

// TagKey is the qualified id of a decoded tag.
type TagKey struct {
	Ns Namespace
	ID TagID
}

func (k TagKey) String() string {
	return fmt.Sprintf("%s:0x%04x", k.Ns, uint16(k.ID))
}

// TagValue is the decoded value of one tag: a primitive, an array of
// primitives, or opaque bytes, together with its wire format and element
// count. The zero TagValue is invalid.
type TagValue struct {
	format TagFormat
	count  int
	order  binary.ByteOrder
	v      any
}

// NewTagValue wraps an already-decoded Go value. v must be one of the decoded
// primitive types (unsigned/signed integers, Rat, float64, string), a []any
// of those, or a []byte.
func NewTagValue(format TagFormat, order binary.ByteOrder, count int, v any) TagValue {
	if order == nil {
		order = binary.BigEndian
	}
	return TagValue{format: format, count: count, order: order, v: v}
}

// Format returns the wire format the value was decoded from.
func (t TagValue) Format() TagFormat { return t.format }

// Count returns the element count.
func (t TagValue) Count() int { return t.count }

// Interface returns the decoded Go value.
func (t TagValue) Interface() any { return t.v }

// IsZero reports whether t holds no decoded value.
func (t TagValue) IsZero() bool { return t.v == nil }

// Bytes returns the opaque byte representation, or nil if the value is not
// opaque.
func (t TagValue) Bytes() []byte {
	b, _ := t.v.([]byte)
	return b
}

// Elems returns the value as a slice of elements. Scalars are returned as a
// one-element slice so single-element arrays and scalars convert alike.
func (t TagValue) Elems() []any {
	switch v := t.v.(type) {
	case nil:
		return nil
	case []any:
		return v
	case []byte:
		el := make([]any, len(v))
		for i, b := range v {
			el[i] = b
		}
		return el
	default:
		return []any{v}
	}
}

// ToInt64 widens whatever was actually decoded into a single integer:
// integer scalars of any width, the first element of an integer array, or
// the leading bytes of an opaque blob reinterpreted per the value's byte
// order. Manufacturer tables sometimes declare formats inconsistent with
// what was written, so callers must not assume the declared format.
func (t TagValue) ToInt64() (int64, bool) {
	v := t.v
	if vv, ok := v.([]any); ok {
		if len(vv) == 0 {
			return 0, false
		}
		v = vv[0]
	}
	switch vv := v.(type) {
	case uint8:
		return int64(vv), true
	case uint16:
		return int64(vv), true
	case uint32:
		return int64(vv), true
	case uint64:
		return int64(vv), true
	case int8:
		return int64(vv), true
	case int16:
		return int64(vv), true
	case int32:
		return int64(vv), true
	case int64:
		return vv, true
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(vv), 10, 64)
		return i, err == nil
	case []byte:
		switch {
		case len(vv) >= 4:
			return int64(t.order.Uint32(vv[:4])), true
		case len(vv) >= 2:
			return int64(t.order.Uint16(vv[:2])), true
		case len(vv) == 1:
			return int64(vv[0]), true
		}
		return 0, false
	case float64:
		return int64(vv), true
	case Rat[uint32]:
		if vv.Den() == 0 {
			return 0, false
		}
		return int64(vv.Num() / vv.Den()), true
	case Rat[int32]:
		if vv.Den() == 0 {
			return 0, false
		}
		return int64(vv.Num() / vv.Den()), true
	default:
		return 0, false
	}
}

// ToFloat64 is the floating point counterpart of ToInt64.
func (t TagValue) ToFloat64() (float64, bool) {
	v := t.v
	if vv, ok := v.([]any); ok {
		if len(vv) == 0 {
			return 0, false
		}
		v = vv[0]
	}
	switch vv := v.(type) {
	case float64:
		return vv, true
	case float64Provider:
		return vv.Float64(), true
	default:
		i, ok := t.ToInt64()
		return float64(i), ok
	}
}

// Text renders the raw value the way it would appear in raw mode: numbers
// plainly, arrays space delimited, strings trimmed of padding, opaque bytes
// as a length-annotated placeholder.
func (t TagValue) Text() string {
	return elemText(t.v)
}

func elemText(v any) string {
	switch vv := v.(type) {
	case nil:
		return ""
	case string:
		return printableString(vv)
	case []byte:
		return fmt.Sprintf("(Binary data %d bytes)", len(vv))
	case []any:
		var sb strings.Builder
		for i, e := range vv {
			if i > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(elemText(e))
		}
		return sb.String()
	case float64:
		return strconv.FormatFloat(vv, 'f', -1, 64)
	case fmt.Stringer:
		return vv.String()
	default:
		return fmt.Sprintf("%v", vv)
	}
}

// JSONValue returns a value suitable for encoding/json: arrays as arrays,
// rationals as "n/d" strings, opaque bytes as a length placeholder, or as
// explicit base64 when binaryAsBase64 is set.
func (t TagValue) JSONValue(binaryAsBase64 bool) any {
	return jsonValue(t.v, binaryAsBase64)
}

func jsonValue(v any, binaryAsBase64 bool) any {
	switch vv := v.(type) {
	case []byte:
		if binaryAsBase64 {
			return base64.StdEncoding.EncodeToString(vv)
		}
		return fmt.Sprintf("(Binary data %d bytes)", len(vv))
	case []any:
		out := make([]any, len(vv))
		for i, e := range vv {
			out[i] = jsonValue(e, binaryAsBase64)
		}
		return out
	case Rat[uint32]:
		return vv.String()
	case Rat[int32]:
		return vv.String()
	default:
		return vv
	}
}

// MarshalJSON renders opaque bytes as a length-annotated placeholder.
// Use JSONValue to opt in to base64.
func (t TagValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.JSONValue(false))
}

// Rat is a rational number.
type Rat[T int32 | uint32] interface {
	Num() T
	Den() T
	Float64() float64

	// String returns the string representation of the rational number.
	// If the denominator is 1, the string will be the numerator only.
	// Rationals with a zero denominator render as "inf" or "undef".
	String() string
}

var (
	_ encoding.TextMarshaler = rat[int32]{}
	_ float64Provider        = rat[uint32]{}
)

// rat is a lightweight version of math/big.Rat.
type rat[T int32 | uint32] struct {
	num T
	den T
}

func (r rat[T]) Num() T { return r.num }

func (r rat[T]) Den() T { return r.den }

func (r rat[T]) Float64() float64 {
	if r.den == 0 {
		if r.num == 0 {
			return math.NaN()
		}
		return math.Inf(float64Sign(r.num))
	}
	return float64(r.num) / float64(r.den)
}

func (r rat[T]) String() string {
	if r.den == 0 {
		if r.num == 0 {
			return "undef"
		}
		return "inf"
	}
	if r.den == 1 {
		return fmt.Sprintf("%d", r.num)
	}
	return fmt.Sprintf("%d/%d", r.num, r.den)
}

func (r rat[T]) MarshalText() (text []byte, err error) {
	return []byte(r.String()), nil
}

func float64Sign[T int32 | uint32](v T) int {
	if float64(v) < 0 {
		return -1
	}
	return 1
}

// NewRat returns a new Rat with the given numerator and denominator.
// A zero denominator is tolerated: such values never divide and render as
// "inf" or "undef".
func NewRat[T int32 | uint32](num, den T) Rat[T] {
	if den != 0 {
		// Remove the greatest common divisor.
		gcd := func(a, b T) T {
			for b != 0 {
				a, b = b, a%b
			}
			return a
		}
		d := gcd(num, den)
		if d != 1 && d != 0 {
			num, den = num/d, den/d
		}
		// Denominator must be positive.
		if den < 0 {
			num, den = -num, -den
		}
	}
	return rat[T]{num: num, den: den}
}

type float64Provider interface {
	Float64() float64
}

func printableString(s string) string {
	ss := strings.Map(func(r rune) rune {
		if unicode.IsGraphic(r) {
			return r
		}
		return -1
	}, s)

	return strings.TrimSpace(ss)
}

func toFloat64(v any) float64 {
	switch vv := v.(type) {
	case float64Provider:
		return vv.Float64()
	case float64:
		return vv
	case uint8:
		return float64(vv)
	case uint16:
		return float64(vv)
	case uint32:
		return float64(vv)
	case int8:
		return float64(vv)
	case int16:
		return float64(vv)
	case int32:
		return float64(vv)
	default:
		return 0
	}
}

func trimBytesNulls(b []byte) []byte {
	var lo, hi int
	for lo = 0; lo < len(b) && b[lo] == 0; lo++ {
	}
	for hi = len(b) - 1; hi >= 0 && b[hi] == 0; hi-- {
	}
	if lo > hi {
		return nil
	}
	return b[lo : hi+1]
}
