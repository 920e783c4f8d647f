// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzxpress

package lzxpress

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by the LZXpress and LZNT1 codecs.
var (
	// ErrMemLimit is returned when a read or write would cross a buffer boundary:
	// truncated header, indicator word, token or chunk, or a full fixed-capacity output.
	ErrMemLimit = errors.New("memory limit would be violated")
	// ErrCorruptedData is returned when a back-reference points before the start of the output
	// or a length escape underflows its bias.
	ErrCorruptedData = errors.New("corrupted data")
	// ErrOther is reserved for conditions no other error describes.
	ErrOther = errors.New("unknown error")

	// ErrOutputLimit is returned when decoding would exceed DecompressOptions.MaxOutputSize.
	// It wraps ErrMemLimit.
	ErrOutputLimit = fmt.Errorf("%w: output exceeds MaxOutputSize", ErrMemLimit)
	// ErrInputTooLarge is returned when a reader yields more than DecompressOptions.MaxInputSize bytes.
	// It wraps ErrMemLimit.
	ErrInputTooLarge = fmt.Errorf("%w: input exceeds MaxInputSize", ErrMemLimit)
	// ErrNilReader is returned by the reader entry points when r is nil.
	ErrNilReader = errors.New("reader is nil")
)
