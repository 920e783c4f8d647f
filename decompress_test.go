package lzxpress

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// Hand-built malformed streams, one per bounds or bias check in the decoder.
var lzxpressRegressionVectors = []struct {
	name    string
	data    []byte
	wantErr error
}{
	{
		// First token is a match; nothing has been produced to copy from.
		name:    "match-before-output",
		data:    []byte{0x00, 0x00, 0x00, 0x80, 0x00, 0x00},
		wantErr: ErrCorruptedData,
	},
	{
		// Literal 'a' then a long match whose nibble byte is missing.
		name:    "nibble-past-end",
		data:    []byte{0x00, 0x00, 0x00, 0x40, 'a', 0x07, 0x00},
		wantErr: ErrMemLimit,
	},
	{
		// 16-bit escape present but one byte short.
		name:    "word-escape-truncated",
		data:    []byte{0x00, 0x00, 0x00, 0x40, 'a', 0x07, 0x00, 0x0f, 0xff, 0x30},
		wantErr: ErrMemLimit,
	},
	{
		// 16-bit escape smaller than the cumulative bias.
		name:    "word-escape-underflow",
		data:    []byte{0x00, 0x00, 0x00, 0x40, 'a', 0x07, 0x00, 0x0f, 0xff, 0x05, 0x00},
		wantErr: ErrCorruptedData,
	},
	{
		// 32-bit escape smaller than the cumulative bias.
		name:    "dword-escape-underflow",
		data:    []byte{0x00, 0x00, 0x00, 0x40, 'a', 0x07, 0x00, 0x0f, 0xff, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00},
		wantErr: ErrCorruptedData,
	},
	{
		// Offset 2 after a single literal.
		name:    "offset-past-start",
		data:    []byte{0x00, 0x00, 0x00, 0x40, 'a', 0x08, 0x00},
		wantErr: ErrCorruptedData,
	},
	{
		name:    "short-indicator",
		data:    []byte{0x00, 0x00, 0x00},
		wantErr: ErrMemLimit,
	},
	{
		name:    "one-byte-token",
		data:    []byte{0x00, 0x00, 0x00, 0x40, 'a', 0x00},
		wantErr: ErrMemLimit,
	},
	{
		name:    "literal-past-end",
		data:    []byte{0x00, 0x00, 0x00, 0x00},
		wantErr: ErrMemLimit,
	},
}

func TestDecompress_RegressionVectorsRejected(t *testing.T) {
	for _, tc := range lzxpressRegressionVectors {
		t.Run(tc.name, func(t *testing.T) {
			out, err := Decompress(tc.data, nil)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if out != nil {
				t.Fatalf("expected no partial output, got %d bytes", len(out))
			}
		})
	}
}

func TestDecompress_DwordEscape(t *testing.T) {
	// Literal 'a', then a match of 70003 bytes at offset 1 through the 32-bit field.
	const total = 70000
	data := []byte{0x00, 0x00, 0x00, 0x40, 'a', 0x07, 0x00, 0x0f, 0xff, 0x00, 0x00}
	data = appendLE32(data, total)

	out, err := Decompress(data, nil)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if want := bytes.Repeat([]byte{'a'}, 1+total+lzxMinMatch); !bytes.Equal(out, want) {
		t.Fatalf("decoded %d bytes, want %d", len(out), len(want))
	}
}

func TestDecompress_TruncatedInputNeverPanics(t *testing.T) {
	data := bytes.Repeat([]byte("0123456789abcdef"), 64)
	data = append(data, bytes.Repeat([]byte{'q'}, 700)...)
	enc, err := Compress(data, nil)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	for cut := 0; cut < len(enc); cut++ {
		out, decErr := Decompress(enc[:cut], nil)
		if decErr != nil {
			if !errors.Is(decErr, ErrMemLimit) && !errors.Is(decErr, ErrCorruptedData) {
				t.Fatalf("cut=%d: unexpected error %v", cut, decErr)
			}
			continue
		}

		// A cut on a token boundary decodes to a prefix of the input.
		if !bytes.HasPrefix(data, out) {
			t.Fatalf("cut=%d: output is not a prefix of the input", cut)
		}
	}
}

func TestDecompress_MaxOutputSize(t *testing.T) {
	data := bytes.Repeat([]byte("bounded-output"), 100)
	enc, err := Compress(data, nil)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	_, err = Decompress(enc, &DecompressOptions{MaxOutputSize: len(data) - 1})
	if !errors.Is(err, ErrOutputLimit) || !errors.Is(err, ErrMemLimit) {
		t.Fatalf("expected ErrOutputLimit wrapping ErrMemLimit, got %v", err)
	}

	out, err := Decompress(enc, &DecompressOptions{MaxOutputSize: len(data)})
	if err != nil {
		t.Fatalf("Decompress with exact limit failed: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatal("decoded output mismatch")
	}
}

func TestDecompress_MaxOutputSizeStopsExpansionBomb(t *testing.T) {
	// 15 bytes that would expand to 4 GiB without a limit.
	data := []byte{0x00, 0x00, 0x00, 0x40, 'a', 0x07, 0x00, 0x0f, 0xff, 0x00, 0x00, 0xff, 0xff, 0xff, 0xff}

	_, err := Decompress(data, &DecompressOptions{MaxOutputSize: 1 << 16})
	if !errors.Is(err, ErrOutputLimit) {
		t.Fatalf("expected ErrOutputLimit, got %v", err)
	}
}

func TestDecompressFromReader_NilReader(t *testing.T) {
	_, err := DecompressFromReader(nil, nil)
	if !errors.Is(err, ErrNilReader) {
		t.Fatalf("expected ErrNilReader, got %v", err)
	}
}

func TestDecompressFromReader_MaxInputSize(t *testing.T) {
	data := bytes.Repeat([]byte("xyz"), 200)
	enc, err := Compress(data, nil)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	_, err = DecompressFromReader(bytes.NewReader(enc), &DecompressOptions{MaxInputSize: len(enc) - 1})
	if !errors.Is(err, ErrInputTooLarge) {
		t.Fatalf("expected ErrInputTooLarge, got %v", err)
	}

	out, err := DecompressFromReader(bytes.NewReader(enc), &DecompressOptions{MaxInputSize: len(enc)})
	if err != nil {
		t.Fatalf("DecompressFromReader failed: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatal("decoded output mismatch")
	}

	_, err = DecompressFromReader(strings.NewReader("\x00\x00"), nil)
	if !errors.Is(err, ErrMemLimit) {
		t.Fatalf("expected ErrMemLimit for short stream, got %v", err)
	}
}

func TestAppendBackRef(t *testing.T) {
	t.Run("non-overlapping", func(t *testing.T) {
		dst, err := appendBackRef([]byte("abcdefgh"), 8, 4)
		if err != nil {
			t.Fatalf("appendBackRef failed: %v", err)
		}
		if got, want := string(dst), "abcdefghabcd"; got != want {
			t.Fatalf("unexpected dst: got %q want %q", got, want)
		}
	})

	t.Run("overlapping", func(t *testing.T) {
		dst, err := appendBackRef([]byte("ABC"), 3, 5)
		if err != nil {
			t.Fatalf("appendBackRef failed: %v", err)
		}
		if got, want := string(dst), "ABCABCAB"; got != want {
			t.Fatalf("unexpected dst: got %q want %q", got, want)
		}
	})

	t.Run("offset-past-start", func(t *testing.T) {
		_, err := appendBackRef([]byte("ab"), 3, 2)
		if !errors.Is(err, ErrCorruptedData) {
			t.Fatalf("expected ErrCorruptedData, got %v", err)
		}
	})

	t.Run("zero-offset", func(t *testing.T) {
		_, err := appendBackRef([]byte("ab"), 0, 2)
		if !errors.Is(err, ErrCorruptedData) {
			t.Fatalf("expected ErrCorruptedData, got %v", err)
		}
	})
}

func TestCopyBackRef(t *testing.T) {
	t.Run("non-overlapping", func(t *testing.T) {
		dst := []byte("abcdefghXXXXXXXX")
		if err := copyBackRef(dst, 8, 8, 4); err != nil {
			t.Fatalf("copyBackRef failed: %v", err)
		}
		if got, want := string(dst), "abcdefghabcdXXXX"; got != want {
			t.Fatalf("unexpected dst: got %q want %q", got, want)
		}
	})

	t.Run("overlapping", func(t *testing.T) {
		dst := []byte{'A', 'B', 'C', 0, 0, 0, 0, 0}
		if err := copyBackRef(dst, 3, 3, 5); err != nil {
			t.Fatalf("copyBackRef failed: %v", err)
		}
		if got, want := string(dst), "ABCABCAB"; got != want {
			t.Fatalf("unexpected dst: got %q want %q", got, want)
		}
	})

	t.Run("lookbehind-underrun", func(t *testing.T) {
		dst := make([]byte, 8)
		err := copyBackRef(dst, 2, 3, 2)
		if !errors.Is(err, ErrCorruptedData) {
			t.Fatalf("expected ErrCorruptedData, got %v", err)
		}
	})

	t.Run("output-overrun", func(t *testing.T) {
		dst := make([]byte, 8)
		err := copyBackRef(dst, 7, 1, 2)
		if !errors.Is(err, ErrMemLimit) {
			t.Fatalf("expected ErrMemLimit, got %v", err)
		}
	})
}

func FuzzDecompress(f *testing.F) {
	f.Add(xcaAlphabetEncoded)
	f.Add(xcaRunEncoded)
	f.Add(smbTextEncoded)
	for _, tc := range lzxpressRegressionVectors {
		f.Add(tc.data)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		out, err := Decompress(data, &DecompressOptions{MaxOutputSize: 1 << 20})
		if err != nil {
			if !errors.Is(err, ErrMemLimit) && !errors.Is(err, ErrCorruptedData) {
				t.Fatalf("unexpected error class: %v", err)
			}
			if out != nil {
				t.Fatalf("partial output returned with error")
			}
		}
	})
}
