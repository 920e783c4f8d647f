// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzxpress

package lzxpress

import "encoding/binary"

// indicatorWriter accumulates literal/match bits for the current 32-token group
// and back-patches them into the 4-byte placeholder reserved ahead of the group.
type indicatorWriter struct {
	bits        uint32
	count       int
	placeholder int // offset of the reserved indicator word in the output
}

// begin reserves the first indicator placeholder.
func (iw *indicatorWriter) begin(out []byte) []byte {
	iw.bits, iw.count = 0, 0
	iw.placeholder = len(out)

	return append(out, 0, 0, 0, 0)
}

// push records the bit for a token whose bytes are already in out.
// A full word is written back and a fresh placeholder reserved after the token.
func (iw *indicatorWriter) push(out []byte, match bool) []byte {
	iw.bits <<= 1
	if match {
		iw.bits |= 1
	}

	iw.count++
	if iw.count < lzxIndicatorBits {
		return out
	}

	binary.LittleEndian.PutUint32(out[iw.placeholder:], iw.bits)

	return iw.begin(out)
}

// finish writes the last word. Unused low bits are set to 1: a set bit with no
// input left is the decoder's end-of-stream marker.
func (iw *indicatorWriter) finish(out []byte) {
	pad := uint(lzxIndicatorBits - iw.count)
	bits := iw.bits<<pad | (uint32(1)<<pad - 1)
	binary.LittleEndian.PutUint32(out[iw.placeholder:], bits)
}
