// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzxpress

package lzxpress

// DecompressOptions configures the LZXpress and LZNT1 decoders.
// Zero values disable the corresponding limit.
type DecompressOptions struct {
	// MaxOutputSize aborts decoding with ErrOutputLimit once the output would grow past it.
	// Set it when decoding untrusted input: a 2-byte token can expand to thousands of bytes.
	MaxOutputSize int
	// MaxInputSize limits how many bytes the FromReader entry points may read.
	MaxInputSize int
}

// DefaultDecompressOptions returns options without output or input limits.
func DefaultDecompressOptions() *DecompressOptions {
	return &DecompressOptions{}
}

// CompressOptions configures the LZXpress compressor.
type CompressOptions struct {
	// MaxOffset bounds the backward match search distance (1..8192, 0 = 8192).
	// Smaller values trade ratio for speed; the output stays decodable either way.
	MaxOffset int
}

// DefaultCompressOptions returns options searching the full 8 KiB window.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{MaxOffset: lzxMaxOffset}
}

// searchWindow returns MaxOffset clamped to the encodable window.
func (o *CompressOptions) searchWindow() int {
	if o == nil || o.MaxOffset <= 0 || o.MaxOffset > lzxMaxOffset {
		return lzxMaxOffset
	}

	return o.MaxOffset
}

// outputLimit returns MaxOutputSize, or 0 when opts is nil.
func (o *DecompressOptions) outputLimit() int {
	if o == nil || o.MaxOutputSize < 0 {
		return 0
	}

	return o.MaxOutputSize
}
