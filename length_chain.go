// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzxpress

package lzxpress

import "math"

// lengthStep is one level of the LZXpress match-length escape ladder.
//
//	base   3 bits in the token      0..6 direct, 7 escapes
//	nibble half of a shared byte    0..14 direct (+7), 15 escapes
//	byte   one extra byte           0..254 direct (+7+15), 255 escapes
//	word   16-bit field             nonzero: length-3 verbatim, 0 escapes
//	dword  32-bit field             length-3 verbatim
type lengthStep uint8

const (
	stepBase lengthStep = iota
	stepNibble
	stepByte
	stepWord
	stepDword
	stepDone
)

// String returns the ladder level name.
func (s lengthStep) String() string {
	switch s {
	case stepBase:
		return "base"
	case stepNibble:
		return "nibble"
	case stepByte:
		return "byte"
	case stepWord:
		return "word"
	case stepDword:
		return "dword"
	case stepDone:
		return "done"
	default:
		return "unknown"
	}
}

// lengthReader holds the decoder-side state the ladder needs: the input cursor
// and the position of a shared nibble byte whose high half is still unread.
type lengthReader struct {
	src       []byte
	pos       int
	nibblePos int // -1 when no half-consumed nibble byte is pending
}

// step resolves one ladder level. value carries the bias-free length accumulated
// so far; on stepDone it is the match length minus lzxMinMatch.
func (r *lengthReader) step(s lengthStep, value int) (lengthStep, int, error) {
	switch s {
	case stepBase:
		if value < lenBaseEscape {
			return stepDone, value, nil
		}

		return stepNibble, value, nil

	case stepNibble:
		var nibble int
		if r.nibblePos < 0 {
			b, err := readByteAt(r.src, &r.pos)
			if err != nil {
				return s, 0, err
			}

			r.nibblePos = r.pos - 1
			nibble = int(b & 0x0f)
		} else {
			nibble = int(r.src[r.nibblePos] >> 4)
			r.nibblePos = -1
		}

		if nibble < lenNibbleEscape {
			return stepDone, nibble + lenNibbleBias, nil
		}

		return stepByte, 0, nil

	case stepByte:
		b, err := readByteAt(r.src, &r.pos)
		if err != nil {
			return s, 0, err
		}

		if b < lenByteEscape {
			return stepDone, int(b) + lenByteBias + lenNibbleBias, nil
		}

		return stepWord, 0, nil

	case stepWord:
		w, err := readLE16(r.src, &r.pos)
		if err != nil {
			return s, 0, err
		}

		if w == 0 {
			return stepDword, 0, nil
		}

		if w < lenWordBias {
			return s, 0, ErrCorruptedData
		}

		return stepDone, int(w), nil

	case stepDword:
		d, err := readLE32(r.src, &r.pos)
		if err != nil {
			return s, 0, err
		}

		if d < lenWordBias || uint64(d) > uint64(math.MaxInt-lzxMinMatch) {
			return s, 0, ErrCorruptedData
		}

		return stepDone, int(d), nil
	}

	return s, 0, ErrOther
}

// matchLength walks the ladder starting from the 3-bit token field and returns
// the full match length (bias included).
func (r *lengthReader) matchLength(base int) (int, error) {
	s, value := stepBase, base
	for s != stepDone {
		var err error
		s, value, err = r.step(s, value)
		if err != nil {
			return 0, err
		}
	}

	return value + lzxMinMatch, nil
}

// lengthWriter is the encoder-side mirror of lengthReader.
type lengthWriter struct {
	nibblePos int // -1 when no emitted nibble byte has a free high half
}

// step emits the field for one ladder level. rest is the length minus lzxMinMatch
// minus every bias consumed below s; total is the length minus lzxMinMatch.
// It returns the next level (stepDone when the length is fully encoded).
func (w *lengthWriter) step(out []byte, s lengthStep, rest, total int) ([]byte, lengthStep, int) {
	switch s {
	case stepBase:
		// The 3-bit field itself lives in the token; the caller writes it.
		if rest < lenBaseEscape {
			return out, stepDone, 0
		}

		return out, stepNibble, rest - lenNibbleBias

	case stepNibble:
		nibble := min(rest, lenNibbleEscape)
		if w.nibblePos < 0 {
			w.nibblePos = len(out)
			out = append(out, tokenByte(nibble))
		} else {
			out[w.nibblePos] |= tokenByte(nibble << 4)
			w.nibblePos = -1
		}

		if rest < lenNibbleEscape {
			return out, stepDone, 0
		}

		return out, stepByte, rest - lenByteBias

	case stepByte:
		if rest < lenByteEscape {
			return append(out, tokenByte(rest)), stepDone, 0
		}

		return append(out, lenByteEscape), stepWord, total

	case stepWord:
		if rest > 0 && rest < 1<<16 {
			return appendLE16(out, rest), stepDone, 0
		}

		return appendLE16(out, 0), stepDword, rest

	case stepDword:
		return appendLE32(out, rest), stepDone, 0
	}

	return out, stepDone, 0
}

// appendLength emits every escape field needed for a match of length bytes
// after its token. The token's own 3-bit field is min(length-3, 7).
func (w *lengthWriter) appendLength(out []byte, length int) []byte {
	total := length - lzxMinMatch
	s, rest := stepBase, total
	for s != stepDone {
		out, s, rest = w.step(out, s, rest, total)
	}

	return out
}
