// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzxpress

package command

import (
	"io"

	"github.com/woozymasta/lzxpress"

	"github.com/nuclio/errors"
	"github.com/spf13/cobra"
)

const (
	formatLZXpress = "lzxpress"
	formatLZNT1    = "lznt1"
)

type decompressCommandeer struct {
	cmd            *cobra.Command
	rootCommandeer *RootCommandeer
	streamOptions  streamOptions
	format         string
	maxOutput      int
	maxInput       int
	capacity       int
}

func newDecompressCommandeer(rootCommandeer *RootCommandeer) *decompressCommandeer {
	commandeer := &decompressCommandeer{
		rootCommandeer: rootCommandeer,
	}

	cmd := &cobra.Command{
		Use:   "decompress",
		Short: "Decompress an LZXpress or LZNT1 stream",
		Long: `Decompress the input and write the result to the output.

With --format lznt1 and --capacity, the stream is decoded into a buffer of
exactly that many bytes; copies running past its end are truncated.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {

			// initialize root
			if err := rootCommandeer.initialize(); err != nil {
				return errors.Wrap(err, "Failed to initialize root")
			}

			return commandeer.decompress(cmd)
		},
	}

	commandeer.streamOptions.addFlags(cmd)
	cmd.Flags().StringVarP(&commandeer.format, "format", "f", formatLZXpress, "Stream format - \"lzxpress\" or \"lznt1\"")
	cmd.Flags().IntVar(&commandeer.maxOutput,
		"max-output",
		getEnvOrDefaultInt(maxOutputEnvVarName, 0),
		"Fail when the output would exceed this many bytes (0 for no limit)")
	cmd.Flags().IntVar(&commandeer.maxInput,
		"max-input",
		getEnvOrDefaultInt(maxInputEnvVarName, 0),
		"Fail when the input exceeds this many bytes (0 for no limit)")
	cmd.Flags().IntVar(&commandeer.capacity, "capacity", 0, "Decode LZNT1 into a fixed buffer of this size")

	commandeer.cmd = cmd

	return commandeer
}

func (d *decompressCommandeer) decompress(cmd *cobra.Command) error {
	if d.capacity > 0 && d.format != formatLZNT1 {
		return errors.Errorf("--capacity requires --format %s", formatLZNT1)
	}

	input, err := d.streamOptions.openInput(cmd)
	if err != nil {
		return errors.Wrap(err, "Failed to open data to decompress")
	}
	defer input.Close() // nolint: errcheck

	counter := &countingReader{reader: input}
	options := &lzxpress.DecompressOptions{
		MaxOutputSize: d.maxOutput,
		MaxInputSize:  d.maxInput,
	}

	var decompressed []byte

	switch d.format {
	case formatLZXpress:
		decompressed, err = lzxpress.DecompressFromReader(counter, options)
	case formatLZNT1:
		if d.capacity > 0 {
			decompressed, err = lzxpress.DecompressLZNT1IntoFromReader(counter, make([]byte, d.capacity), options)
		} else {
			decompressed, err = lzxpress.DecompressLZNT1FromReader(counter, options)
		}
	default:
		return errors.Errorf("Unknown format %q", d.format)
	}

	if err != nil {
		return errors.Wrapf(err, "Failed to decompress %s stream", d.format)
	}

	d.rootCommandeer.loggerInstance.DebugWith("Decompressed",
		"format", d.format,
		"inputSize", counter.count,
		"outputSize", len(decompressed),
		"capacity", d.capacity)

	return d.streamOptions.writeOutput(cmd, decompressed)
}

type countingReader struct {
	reader io.Reader
	count  int
}

func (cr *countingReader) Read(p []byte) (int, error) {
	n, err := cr.reader.Read(p)
	cr.count += n
	return n, err
}
