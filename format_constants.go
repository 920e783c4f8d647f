// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzxpress

package lzxpress

// LZXpress (MS-XCA plain LZ77) format constants.
const (
	lzxIndicatorBits = 32   // tokens described by one indicator word
	lzxIndicatorSize = 4    // bytes in one indicator word
	lzxMaxOffset     = 8192 // 13-bit offset field, biased by one
	lzxMaxScanLen    = 8192 // longest match the compressor measures
	lzxMinMatch      = 3    // bias of every encoded match length
	lzxOffsetShift   = 3    // token = (offset-1)<<3 | length bits
	lzxTokenLenMask  = 0x7
)

// LZXpress length-escape ladder. Each level escapes to the next when its field
// holds the all-ones value; biases accumulate on the way up.
const (
	lenBaseEscape   = 7
	lenNibbleEscape = 15
	lenByteEscape   = 255
	lenNibbleBias   = 7
	lenByteBias     = 15
	lenWordBias     = lenNibbleBias + lenByteBias // stored in the 16/32-bit fields
)

// LZNT1 chunk and copy-token constants.
const (
	lznt1HeaderSize     = 2
	lznt1CompressedFlag = 0x8000
	lznt1SizeMask       = 0x0fff
	lznt1FlagGroup      = 8
	lznt1MinMatch       = 3
	lznt1InitialMask    = 0x0fff // length bits while fewer than 17 bytes are produced
	lznt1InitialShift   = 12
	lznt1SplitThreshold = 0x10
	lznt1MinShift       = 4 // split of a full 4096-byte chunk
)
