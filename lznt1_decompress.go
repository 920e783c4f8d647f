// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzxpress

package lzxpress

import "fmt"

// DecompressLZNT1 decompresses an LZNT1 chunk stream into a growable buffer.
// opts may be nil; opts.MaxOutputSize turns unbounded growth into ErrOutputLimit.
func DecompressLZNT1(src []byte, opts *DecompressOptions) ([]byte, error) {
	limit := opts.outputLimit()
	sink := &growableSink{
		buf:   make([]byte, 0, initialOutputCap(len(src), limit)),
		limit: limit,
	}

	if err := decodeLZNT1(src, sink); err != nil {
		return nil, err
	}

	return sink.buf, nil
}

// DecompressLZNT1Into decompresses an LZNT1 chunk stream into dst and returns
// dst[:n]. dst must be at least as long as src. Literals that do not fit fail
// with ErrMemLimit; a copy that runs past the end of dst is truncated to fit.
func DecompressLZNT1Into(src, dst []byte) ([]byte, error) {
	if len(dst) == 0 || len(dst) < len(src) {
		return nil, fmt.Errorf("%w: output capacity %d below input size %d", ErrMemLimit, len(dst), len(src))
	}

	sink := &fixedSink{buf: dst}
	if err := decodeLZNT1(src, sink); err != nil {
		return nil, err
	}

	return dst[:sink.n], nil
}

// decodeLZNT1 walks the chunk stream and writes everything to sink.
func decodeLZNT1(src []byte, sink lznt1Sink) error {
	pos := 0
	for pos < len(src) {
		chunkStart := pos
		header, err := readLE16(src, &pos)
		if err != nil {
			return fmt.Errorf("%w: chunk header at %d", err, chunkStart)
		}

		payloadLen := int(header&lznt1SizeMask) + 1
		if payloadLen > len(src)-pos {
			return fmt.Errorf("%w: chunk at %d needs %d bytes, %d left",
				ErrMemLimit, chunkStart, payloadLen, len(src)-pos)
		}

		payload := src[pos : pos+payloadLen]
		if header&lznt1CompressedFlag == 0 {
			err = sink.writeRaw(payload)
		} else {
			err = decodeLZNT1Chunk(payload, sink)
		}

		if err != nil {
			return fmt.Errorf("%w (chunk at %d)", err, chunkStart)
		}

		// Payloads may carry trailing padding; the header length is authoritative.
		pos = chunkStart + lznt1HeaderSize + payloadLen
	}

	return nil
}

// decodeLZNT1Chunk decodes one compressed chunk payload: flag bytes each
// followed by up to 8 tokens, bit i (LSB first) selecting a copy token.
// A copy token that straddles the end of the payload is ErrMemLimit, and the
// offset/length split stops narrowing at a 4-bit length field (copyTokenSplit).
func decodeLZNT1Chunk(payload []byte, sink lznt1Sink) error {
	chunkBase := sink.produced()
	pos := 0

	for pos < len(payload) {
		flags := payload[pos]
		pos++

		for bit := 0; bit < lznt1FlagGroup && pos < len(payload); bit++ {
			if (flags>>bit)&1 == 0 {
				if err := sink.writeLiteral(payload[pos]); err != nil {
					return err
				}

				pos++
				continue
			}

			tokenPos := pos
			token, err := readLE16(payload, &pos)
			if err != nil {
				return fmt.Errorf("%w: copy token at payload offset %d", err, tokenPos)
			}

			mask, shift := copyTokenSplit(sink.produced() - chunkBase)
			length := int(token&mask) + lznt1MinMatch
			offset := int(token>>shift) + 1

			if offset > sink.produced() {
				return fmt.Errorf("%w: offset %d exceeds %d decoded bytes",
					ErrCorruptedData, offset, sink.produced())
			}

			if err := sink.copyBack(offset, length); err != nil {
				return err
			}
		}
	}

	return nil
}

// copyTokenSplit returns the length mask and offset shift for a copy token
// decoded after chunkProduced bytes of the current chunk. Offsets get one more
// bit each time chunkProduced-1 reaches the next power of two from 16 on.
func copyTokenSplit(chunkProduced int) (mask uint16, shift uint) {
	mask, shift = lznt1InitialMask, lznt1InitialShift
	for p := chunkProduced - 1; p >= lznt1SplitThreshold && shift > lznt1MinShift; p >>= 1 {
		mask >>= 1
		shift--
	}

	return mask, shift
}
