// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzxpress

package lzxpress

// appendBackRef appends length bytes replayed from offset bytes behind the end of dst.
// If offset < length, source and destination overlap and each appended byte becomes
// the source of a later one, which is how a short period expands into a run.
func appendBackRef(dst []byte, offset, length int) ([]byte, error) {
	if offset <= 0 || offset > len(dst) {
		return dst, ErrCorruptedData
	}

	start := len(dst) - offset
	if offset >= length {
		return append(dst, dst[start:start+length]...), nil
	}

	for i := range length {
		dst = append(dst, dst[start+i])
	}

	return dst, nil
}

// copyBackRef copies length bytes from dst[outputPos-offset:] to dst[outputPos:].
// If offset < length, source and destination overlap; copy must be byte-by-byte so that
// repeated bytes (RLE) are correct. The built-in copy does not handle overlapping regions
// where src precedes dst.
func copyBackRef(dst []byte, outputPos, offset, length int) error {
	mPos := outputPos - offset
	if offset <= 0 || mPos < 0 {
		return ErrCorruptedData
	}

	if length > len(dst)-outputPos {
		return ErrMemLimit
	}

	if offset >= length {
		copy(dst[outputPos:outputPos+length], dst[mPos:mPos+length])
		return nil
	}

	for i := range length {
		dst[outputPos+i] = dst[mPos+i]
	}

	return nil
}
