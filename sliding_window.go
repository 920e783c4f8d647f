// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzxpress

package lzxpress

import "sync"

const (
	mfHashBits = 15
	mfHashSize = 1 << mfHashBits
	mfRingMask = lzxMaxOffset - 1
)

// matchFinder keys every input position by its first 3 bytes and chains
// positions sharing a key, newest first. Links live in a ring of lzxMaxOffset
// slots: a link is only followed while it stays inside the window, and a slot
// is only reused by a position a full window later.
//
// The chain is walked to the window edge with no length cutoff, so it visits
// every offset whose first 3 bytes could match, in nearest-first order. Offsets
// that differ in the first 3 bytes match at most 2 bytes and never beat the
// minimum, so the result equals a scan over every offset.
type matchFinder struct {
	src    []byte
	window int
	next   int // first position not yet inserted

	head [mfHashSize]int   // newest position+1 per key, 0 when empty
	prev [lzxMaxOffset]int // older position+1 with the same key, by position mod ring size
}

// head3 returns the hash key for the 3 bytes at data[0:3].
func head3(data []byte) int {
	key := uint(data[0])
	key = (key << 5) ^ uint(data[1])
	key = (key << 5) ^ uint(data[2])
	key = (key * 0x9f5f) >> 5
	return int(key & (mfHashSize - 1))
}

// reset prepares the finder for a new input.
func (m *matchFinder) reset(src []byte, window int) {
	m.src = src
	m.window = window
	m.next = 0
	clear(m.head[:])
}

// insertUpTo links every position before pos that has 3 bytes of input.
func (m *matchFinder) insertUpTo(pos int) {
	last := min(pos, len(m.src)-lzxMinMatch+1)
	for ; m.next < last; m.next++ {
		key := head3(m.src[m.next:])
		m.prev[m.next&mfRingMask] = m.head[key]
		m.head[key] = m.next + 1
	}
}

// find returns the nearest offset with the longest match at pos, or (0, 0)
// when no match of at least lzxMinMatch bytes exists. Positions must be
// queried in increasing order.
func (m *matchFinder) find(pos int) (matchOff int, matchLen int) {
	maxLen := min(lzxMaxScanLen, len(m.src)-pos)
	if maxLen < lzxMinMatch {
		return 0, 0
	}

	m.insertUpTo(pos)

	bestLen := lzxMinMatch - 1
	lookahead := m.src[pos : pos+maxLen]
	for cand := m.head[head3(lookahead)]; cand != 0; cand = m.prev[(cand-1)&mfRingMask] {
		off := pos - (cand - 1)
		if off > m.window {
			break
		}

		// Sources may run into the lookahead itself; that is what encodes runs.
		n := commonPrefixLen(m.src[pos-off:pos-off+maxLen], lookahead)
		if n > bestLen {
			bestLen = n
			matchOff = off
			if bestLen == maxLen {
				break
			}
		}
	}

	if matchOff == 0 {
		return 0, 0
	}

	return matchOff, bestLen
}

// matchFinderPool is a pool of match finders.
var matchFinderPool = sync.Pool{
	New: func() any {
		return &matchFinder{}
	},
}

// acquireMatchFinder acquires a match finder from the pool, reset for src.
func acquireMatchFinder(src []byte, window int) *matchFinder {
	m := matchFinderPool.Get().(*matchFinder)
	m.reset(src, window)
	return m
}

// releaseMatchFinder releases a match finder to the pool.
func releaseMatchFinder(m *matchFinder) {
	if m == nil {
		return
	}

	m.src = nil
	matchFinderPool.Put(m)
}
