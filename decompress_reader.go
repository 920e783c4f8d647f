// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzxpress

package lzxpress

import "io"

// DecompressFromReader reads the full stream then calls Decompress. No decoding logic of its own.
// If opts.MaxInputSize > 0 and more bytes are available, returns ErrInputTooLarge.
func DecompressFromReader(r io.Reader, opts *DecompressOptions) ([]byte, error) {
	src, err := readAllLimited(r, opts)
	if err != nil {
		return nil, err
	}

	return Decompress(src, opts)
}

// DecompressLZNT1FromReader reads the full stream then calls DecompressLZNT1.
// If opts.MaxInputSize > 0 and more bytes are available, returns ErrInputTooLarge.
func DecompressLZNT1FromReader(r io.Reader, opts *DecompressOptions) ([]byte, error) {
	src, err := readAllLimited(r, opts)
	if err != nil {
		return nil, err
	}

	return DecompressLZNT1(src, opts)
}

// DecompressLZNT1IntoFromReader reads the full stream then calls DecompressLZNT1Into with dst.
// Only opts.MaxInputSize applies; the output is bounded by len(dst).
func DecompressLZNT1IntoFromReader(r io.Reader, dst []byte, opts *DecompressOptions) ([]byte, error) {
	src, err := readAllLimited(r, opts)
	if err != nil {
		return nil, err
	}

	return DecompressLZNT1Into(src, dst)
}

// readAllLimited reads r to EOF, reading at most MaxInputSize+1 bytes so an
// oversized stream is detected without buffering all of it.
func readAllLimited(r io.Reader, opts *DecompressOptions) ([]byte, error) {
	if r == nil {
		return nil, ErrNilReader
	}

	if opts == nil || opts.MaxInputSize <= 0 {
		return io.ReadAll(r)
	}

	src, err := io.ReadAll(io.LimitReader(r, int64(opts.MaxInputSize)+1))
	if err != nil {
		return nil, err
	}

	if len(src) > opts.MaxInputSize {
		return nil, ErrInputTooLarge
	}

	return src, nil
}
