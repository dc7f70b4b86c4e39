// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifcore

import (
	"encoding/binary"
	"math"
	"math/bits"
)

// extractedField is one synthesized tag produced from a binary record. The
// id is the field's position in the layout table, namespaced under the
// layout's namespace, so ids stay unique even when a byte offset carries
// both a whole-byte field and bit fields.
type extractedField struct {
	ID         TagID
	Name       string
	Value      TagValue
	Conversion ConversionID
}

// extractBinary decodes one opaque manufacturer blob into many typed values
// per the layout's declarative field list. Every field is bounds-checked
// independently, so one malformed field cannot abort extraction of the
// rest. An unmet field condition yields no entry, not an error.
func extractBinary(blob []byte, order binary.ByteOrder, layout *BinaryLayout, ctx *Context, tables *Tables, warnf func(string, ...any)) []extractedField {
	if layout == nil || len(blob) == 0 {
		return nil
	}
	if warnf == nil {
		warnf = func(string, ...any) {}
	}

	rctx := ctx.forRecord()

	// Encrypted sections are decrypted into a private copy of the blob; the
	// original bytes are never modified. If the seeds are unavailable the
	// whole table's extraction is skipped, never guessed.
	var decrypted []byte
	if layout.Decrypt != TransformNone {
		var err error
		decrypted, err = decryptTransform(layout.Decrypt, blob, layout.DecryptStart, rctx, tables)
		if err != nil {
			warnf("exifcore: %s: %v", layout.Ns, err)
			return nil
		}
	}

	var out []extractedField
	for i, f := range layout.Fields {
		src := blob
		if f.Encrypted {
			if decrypted == nil {
				warnf("exifcore: %s field %q is encrypted but layout has no transform", layout.Ns, f.Name)
				continue
			}
			src = decrypted
		}

		if !f.Condition.Matches(rctx) {
			continue
		}

		byteOff, bit, isBit := splitOffset(f.Offset, len(src))
		if byteOff < 0 || byteOff >= len(src) {
			warnf("exifcore: %s field %q offset %v out of bounds", layout.Ns, f.Name, f.Offset)
			continue
		}

		var v TagValue
		if isBit {
			v = NewTagValue(FormatUint8, order, 1, (src[byteOff]>>bit)&1)
		} else {
			var ok bool
			v, ok = extractField(src, byteOff, order, f, rctx)
			if !ok {
				warnf("exifcore: %s field %q at %d does not fit", layout.Ns, f.Name, byteOff)
				continue
			}
		}

		if f.Mask != 0 {
			if n, ok := v.ToInt64(); ok {
				masked := uint32(n) & f.Mask
				masked >>= uint(bits.TrailingZeros32(f.Mask))
				v = NewTagValue(v.Format(), order, 1, masked)
			}
		}

		// Make integer fields visible to later conditions and counts,
		// keyed by byte offset the way the layout tables reference them.
		if byteOff >= 0 && !isBit {
			if n, ok := v.ToInt64(); ok {
				rctx.setVal(uint32(byteOff), n)
			}
		}

		out = append(out, extractedField{
			ID:         TagID(i),
			Name:       f.Name,
			Value:      v,
			Conversion: f.Conversion,
		})
	}
	return out
}

// splitOffset resolves a FieldSpec offset: positive from the blob start,
// negative from the end, and a fractional part selecting a bit within the
// byte (586.1 is bit 1 of byte 586, independent of a plain field at 586).
func splitOffset(offset float64, blobLen int) (byteOff, bit int, isBit bool) {
	intPart, frac := math.Modf(offset)
	byteOff = int(intPart)
	if offset < 0 {
		byteOff = blobLen + byteOff
		frac = -frac
	}
	if frac != 0 {
		bit = int(math.Round(frac * 10))
		if bit >= 0 && bit <= 7 {
			return byteOff, bit, true
		}
	}
	return byteOff, 0, false
}

func extractField(src []byte, byteOff int, order binary.ByteOrder, f FieldSpec, rctx *Context) (TagValue, bool) {
	format := f.Format
	if format == 0 {
		format = FormatUint8
	}
	es := int(formatSize[format])

	count := f.Count
	switch f.CountMode {
	case CountFixed:
		if count <= 0 {
			count = 1
		}
	case CountNulTerminated:
		end := byteOff
		for end < len(src) && src[end] != 0 {
			end++
		}
		return NewTagValue(FormatString, order, end-byteOff, string(src[byteOff:end])), true
	case CountPascal:
		n := int(src[byteOff])
		if byteOff+1+n > len(src) {
			return TagValue{}, false
		}
		return NewTagValue(FormatString, order, n, string(src[byteOff+1:byteOff+1+n])), true
	case CountRemainder:
		count = (len(src) - byteOff) / es
		if count == 0 {
			return TagValue{}, false
		}
	case CountFromField:
		n, ok := rctx.val(f.CountFrom)
		if !ok || n < 0 {
			return TagValue{}, false
		}
		count = int(n)
		if count == 0 {
			return NewTagValue(format, order, 0, []any{}), true
		}
	}

	if count > (len(src)-byteOff)/es {
		return TagValue{}, false
	}

	if format == FormatString {
		return NewTagValue(format, order, count, string(trimBytesNulls(src[byteOff:byteOff+count]))), true
	}
	if format == FormatUndef {
		cp := make([]byte, count)
		copy(cp, src[byteOff:byteOff+count])
		return NewTagValue(format, order, count, cp), true
	}

	if count == 1 {
		return NewTagValue(format, order, 1, decodeElem(format, order, src[byteOff:])), true
	}
	values := make([]any, count)
	for i := 0; i < count; i++ {
		values[i] = decodeElem(format, order, src[byteOff+i*es:])
	}
	return NewTagValue(format, order, count, values), true
}
