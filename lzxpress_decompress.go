// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzxpress

package lzxpress

import "fmt"

// Decompress decompresses LZXpress (MS-XCA plain LZ77) data. opts may be nil.
// The whole of src is decoded; there is no terminator other than running out of
// input at a match bit. On error no partial output is returned.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	out, err := decompressLZXpress(src, opts.outputLimit())
	if err != nil {
		return nil, err
	}

	return out, nil
}

// decompressLZXpress decodes src token by token. Every field read is bounds
// checked first, so truncated or hostile input fails with an error instead of
// reading outside src.
func decompressLZXpress(src []byte, limit int) ([]byte, error) {
	var (
		indicator uint32
		bitsLeft  int
	)

	r := lengthReader{src: src, nibblePos: -1}
	out := make([]byte, 0, initialOutputCap(len(src), limit))

	for r.pos < len(src) {
		if bitsLeft == 0 {
			word, err := readLE32(src, &r.pos)
			if err != nil {
				return nil, fmt.Errorf("%w: indicator word at %d", err, r.pos)
			}

			indicator = word
			bitsLeft = lzxIndicatorBits
		}

		bitsLeft--
		if (indicator>>bitsLeft)&1 == 0 {
			b, err := readByteAt(src, &r.pos)
			if err != nil {
				return nil, fmt.Errorf("%w: literal at %d", err, r.pos)
			}

			if err := checkOutputLimit(len(out), 1, limit); err != nil {
				return nil, err
			}

			out = append(out, b)
			continue
		}

		// A match bit with the input exactly consumed ends the stream (MS-XCA 2.4.4).
		if r.pos == len(src) {
			break
		}

		tokenPos := r.pos
		token, err := readLE16(src, &r.pos)
		if err != nil {
			return nil, fmt.Errorf("%w: match token at %d", err, tokenPos)
		}

		offset := int(token>>lzxOffsetShift) + 1
		length, err := r.matchLength(int(token & lzxTokenLenMask))
		if err != nil {
			return nil, fmt.Errorf("%w: match length for token at %d", err, tokenPos)
		}

		if offset > len(out) {
			return nil, fmt.Errorf("%w: offset %d exceeds %d decoded bytes (token at %d)",
				ErrCorruptedData, offset, len(out), tokenPos)
		}

		if err := checkOutputLimit(len(out), length, limit); err != nil {
			return nil, err
		}

		out, err = appendBackRef(out, offset, length)
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

// initialOutputCap guesses an output capacity from the input size, capped by limit.
func initialOutputCap(inLen, limit int) int {
	guess := inLen * 2
	if limit > 0 && guess > limit {
		return limit
	}

	return guess
}
