// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifcore

import "fmt"

// decryptTransform applies the manufacturer transform to a private copy of
// blob, starting the cipher at start. The original bytes are never touched.
// Manufacturer "encryption" is obfuscation, not security.
func decryptTransform(id TransformID, blob []byte, start int, ctx *Context, tables *Tables) ([]byte, error) {
	switch id {
	case TransformNone:
		cp := make([]byte, len(blob))
		copy(cp, blob)
		return cp, nil
	case TransformNikonXor:
		if ctx == nil || !ctx.HasSeeds() {
			return nil, fmt.Errorf("%w: serial and shutter count required", ErrMissingSeed)
		}
		if tables == nil || tables.Xlat == nil {
			return nil, fmt.Errorf("%w: substitution tables not loaded", ErrMissingSeed)
		}
		return nikonDecrypt(blob, start, ctx.Serial, ctx.Count, tables.Xlat), nil
	default:
		return nil, fmt.Errorf("exifcore: unknown transform %d", id)
	}
}

// nikonDecrypt runs the serial/count keyed XOR stream over a copy of data
// from start on. The key schedule folds the shutter count into one byte,
// then seeds the stream from the two substitution tables: ci stays fixed,
// cj accumulates ci*ck each step, ck increments from 0x60.
func nikonDecrypt(data []byte, start int, serial, count uint32, xlat *[2][256]byte) []byte {
	out := make([]byte, len(data))
	copy(out, data)

	if start < 0 {
		start = 0
	}
	if start >= len(out) {
		return out
	}

	var key uint32
	for i := 0; i < 4; i++ {
		key ^= (count >> (i * 8)) & 0xff
	}

	ci := xlat[0][serial&0xff]
	cj := xlat[1][key&0xff]
	ck := byte(0x60)

	for i := start; i < len(out); i++ {
		cj += ci * ck
		ck++
		out[i] ^= cj
	}
	return out
}
