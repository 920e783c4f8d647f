// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzxpress

package lzxpress

// Compress compresses src into the LZXpress (MS-XCA plain LZ77) format.
// opts may be nil (full 8 KiB window). The parse is greedy: at each position the
// longest match wins and, among equal lengths, the nearest offset.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	finder := acquireMatchFinder(src, opts.searchWindow())
	defer releaseMatchFinder(finder)

	out := make([]byte, 0, CompressBound(len(src)))
	var (
		flags  indicatorWriter
		length lengthWriter
	)
	length.nibblePos = -1
	out = flags.begin(out)

	for pos := 0; pos < len(src); {
		matchOff, matchLen := finder.find(pos)
		if matchOff == 0 {
			out = append(out, src[pos])
			out = flags.push(out, false)
			pos++
			continue
		}

		token := (matchOff-1)<<lzxOffsetShift | min(matchLen-lzxMinMatch, lzxTokenLenMask)
		out = appendLE16(out, token)
		out = length.appendLength(out, matchLen)
		out = flags.push(out, true)
		pos += matchLen
	}

	flags.finish(out)

	return out, nil
}

// CompressBound returns the largest output Compress can produce for n input bytes:
// every byte a literal plus one indicator word per 32 tokens and the closing word.
func CompressBound(n int) int {
	if n < 0 {
		n = 0
	}

	return n + (n/lzxIndicatorBits+1)*lzxIndicatorSize
}

// commonPrefixLen returns the number of leading bytes a and b share.
func commonPrefixLen(a, b []byte) int {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return i
		}
	}

	return n
}
