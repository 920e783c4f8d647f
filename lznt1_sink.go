// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzxpress

package lzxpress

import "fmt"

// lznt1Sink receives decoded LZNT1 output. The decoder validates copy offsets
// against produced() before calling copyBack; sinks differ only in how they
// treat output that does not fit.
type lznt1Sink interface {
	// produced returns the number of bytes written so far across all chunks.
	produced() int
	// writeLiteral appends one byte.
	writeLiteral(b byte) error
	// writeRaw appends the payload of an uncompressed chunk.
	writeRaw(p []byte) error
	// copyBack replays length bytes starting offset bytes behind the end.
	copyBack(offset, length int) error
}

// growableSink appends to a slice that grows as needed.
// Contract: any write past limit (when limit > 0) is a hard ErrOutputLimit.
type growableSink struct {
	buf   []byte
	limit int
}

func (s *growableSink) produced() int { return len(s.buf) }

func (s *growableSink) writeLiteral(b byte) error {
	if err := checkOutputLimit(len(s.buf), 1, s.limit); err != nil {
		return err
	}

	s.buf = append(s.buf, b)
	return nil
}

func (s *growableSink) writeRaw(p []byte) error {
	if err := checkOutputLimit(len(s.buf), len(p), s.limit); err != nil {
		return err
	}

	s.buf = append(s.buf, p...)
	return nil
}

func (s *growableSink) copyBack(offset, length int) error {
	if err := checkOutputLimit(len(s.buf), length, s.limit); err != nil {
		return err
	}

	var err error
	s.buf, err = appendBackRef(s.buf, offset, length)
	return err
}

// fixedSink writes by index into a caller-provided buffer of fixed capacity.
// Contract: a literal or raw byte that does not fit is ErrMemLimit, while a copy
// longer than the remaining capacity is silently clamped to fill the buffer.
// The clamp lets a caller decode a known-size prefix into an exactly sized buffer.
type fixedSink struct {
	buf []byte
	n   int
}

func (s *fixedSink) produced() int { return s.n }

func (s *fixedSink) writeLiteral(b byte) error {
	if s.n >= len(s.buf) {
		return fmt.Errorf("%w: output full at %d bytes", ErrMemLimit, s.n)
	}

	s.buf[s.n] = b
	s.n++
	return nil
}

func (s *fixedSink) writeRaw(p []byte) error {
	if len(p) > len(s.buf)-s.n {
		return fmt.Errorf("%w: raw chunk of %d bytes at %d/%d", ErrMemLimit, len(p), s.n, len(s.buf))
	}

	s.n += copy(s.buf[s.n:], p)
	return nil
}

func (s *fixedSink) copyBack(offset, length int) error {
	length = min(length, len(s.buf)-s.n)
	if err := copyBackRef(s.buf, s.n, offset, length); err != nil {
		return err
	}

	s.n += length
	return nil
}
