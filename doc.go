// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzxpress

/*
Package lzxpress implements the LZXpress (MS-XCA plain LZ77) compression format
and an LZNT1 decoder, as found in SMB, DRSUAPI replication payloads and NTFS.

LZXpress streams interleave 32-bit indicator words with literals and 16-bit match
tokens (13-bit offset, 3-bit length) whose long lengths escape through a shared
nibble, an extra byte and a 16/32-bit field. LZNT1 streams are a sequence of
chunks with a 2-byte header; compressed chunks use flag bytes and copy tokens
whose offset/length split widens as the chunk output grows.

Every decoder checks bounds before each read and write: hostile input yields
ErrMemLimit or ErrCorruptedData, never a panic. Test with errors.Is.

# LZXpress

Compress and decompress whole buffers. Options may be nil:

	enc, err := lzxpress.Compress(data, nil)
	dec, err := lzxpress.Decompress(enc, nil)

Bound the output when the input is untrusted:

	dec, err := lzxpress.Decompress(enc, &lzxpress.DecompressOptions{MaxOutputSize: 1 << 20})
	if errors.Is(err, lzxpress.ErrOutputLimit) {
		// refuse oversized payload
	}

# LZNT1

Decode into a growable buffer:

	out, err := lzxpress.DecompressLZNT1(src, nil)

To reuse caller-managed output memory (no per-call output allocation):

	dst := make([]byte, expectedLen)
	out, err := lzxpress.DecompressLZNT1Into(src, dst)

dst must be at least len(src) bytes. A copy token that would run past the end of
dst is truncated to fit, so decoding into a buffer sized to the expected output
succeeds; a literal that does not fit is an error.

From an io.Reader (the stream is read fully, then decoded):

	out, err := lzxpress.DecompressLZNT1FromReader(r, &lzxpress.DecompressOptions{MaxInputSize: 1 << 20})
	out, err = lzxpress.DecompressLZNT1IntoFromReader(r, dst, nil)
*/
package lzxpress
