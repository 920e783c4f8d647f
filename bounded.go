// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzxpress

package lzxpress

import (
	"encoding/binary"
	"fmt"
)

// readByteAt reads one byte from src at *pos and advances *pos.
func readByteAt(src []byte, pos *int) (byte, error) {
	if *pos >= len(src) {
		return 0, ErrMemLimit
	}

	b := src[*pos]
	*pos++

	return b, nil
}

// readLE16 reads one little-endian uint16 from src at *pos and advances *pos by 2.
func readLE16(src []byte, pos *int) (uint16, error) {
	if len(src)-*pos < 2 {
		return 0, ErrMemLimit
	}

	v := binary.LittleEndian.Uint16(src[*pos:])
	*pos += 2

	return v, nil
}

// readLE32 reads one little-endian uint32 from src at *pos and advances *pos by 4.
func readLE32(src []byte, pos *int) (uint32, error) {
	if len(src)-*pos < 4 {
		return 0, ErrMemLimit
	}

	v := binary.LittleEndian.Uint32(src[*pos:])
	*pos += 4

	return v, nil
}

// appendLE16 appends v as two little-endian bytes.
func appendLE16(dst []byte, v int) []byte {
	return append(dst, tokenByte(v), tokenByte(v>>8))
}

// appendLE32 appends v as four little-endian bytes.
func appendLE32(dst []byte, v int) []byte {
	return append(dst, tokenByte(v), tokenByte(v>>8), tokenByte(v>>16), tokenByte(v>>24))
}

// tokenByte packs the low 8 bits of v as required by the token layouts.
func tokenByte(v int) byte {
	// #nosec G115 -- token fields intentionally keep only the low 8 bits.
	return byte(v & 0xff)
}

// checkOutputLimit reports whether n more bytes fit after produced under limit (0 = unlimited).
func checkOutputLimit(produced, n, limit int) error {
	if limit > 0 && n > limit-produced {
		return fmt.Errorf("%w: produced=%d need=%d limit=%d", ErrOutputLimit, produced, n, limit)
	}

	return nil
}
