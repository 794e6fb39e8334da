// Command tracegen reads a WAV file, ingests it as a Simd_I16x8
// TimelineBuffer, resamples it to a target rate, downsamples it to a
// fixed bin count for visualization, and prints an engineering-unit
// summary. It is the CLI demonstrator for the ingest/egress boundary
// contract, adapted from the teacher's cmd/resample-wav.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-audio/wav"
	"go.uber.org/zap"

	"github.com/bfarago/timelinedb"
	"github.com/bfarago/timelinedb/internal/ingest"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "tracegen:", err)
		os.Exit(1)
	}
}

func run() error {
	targetRate := flag.Float64("rate", 48000, "target sample rate in Hz")
	binCount := flag.Int("bins", 256, "number of min/max visualization bins")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [options] input.wav\n\n", os.Args[0])
		flag.PrintDefaults()
		return fmt.Errorf("missing input file")
	}

	logger := zap.NewNop()
	if *verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}
	}
	defer func() { _ = logger.Sync() }()

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return fmt.Errorf("invalid WAV file: %s", args[0])
	}
	format := decoder.Format()
	logger.Info("decoded WAV header",
		zap.Int("sample_rate_hz", format.SampleRate),
		zap.Int("channels", format.NumChannels),
	)

	pcm, err := decoder.FullPCMBuffer()
	if err != nil {
		return fmt.Errorf("failed to decode PCM data: %w", err)
	}

	src := timelinedb.New()
	if err := ingest.FromPCMBuffer(pcm, src, ingest.ForceSimdI16x8); err != nil {
		return fmt.Errorf("failed to ingest PCM buffer: %w", err)
	}
	logger.Info("ingested timeline buffer", zap.Int("sample_count", src.SampleCount))

	dst := timelinedb.New()
	conv := timelinedb.NewSampleRateConverter(nil)
	if err := conv.Prepare(src, *targetRate, dst); err != nil {
		return fmt.Errorf("failed to prepare sample-rate conversion: %w", err)
	}
	if err := conv.Convert(src, dst); err != nil {
		return fmt.Errorf("failed to convert sample rate: %w", err)
	}

	outMin := timelinedb.New()
	outMax := timelinedb.New()
	agg := timelinedb.NewMinMaxAggregator(nil)
	if err := agg.Prepare(dst, outMin, outMax, *binCount); err != nil {
		return fmt.Errorf("failed to prepare min/max aggregation: %w", err)
	}
	if err := agg.Aggregate(dst, outMin, outMax, dst.SampleCount, 0); err != nil {
		return fmt.Errorf("failed to aggregate min/max: %w", err)
	}

	freqValue, freqUnit := dst.TimeBase.EngineeringFrequency()
	intervalValue, intervalUnit := dst.TimeBase.EngineeringInterval()
	activeBackend, err := timelinedb.BackendName(-1)
	if err != nil {
		return err
	}

	fmt.Printf("input:  %d samples, %d Hz\n", src.SampleCount, format.SampleRate)
	fmt.Printf("output: %d samples, %.3f %s (%.3f %s/sample)\n", dst.SampleCount, freqValue, freqUnit, intervalValue, intervalUnit)
	fmt.Printf("bins:   %d min/max pairs via %s\n", *binCount, activeBackend)
	return nil
}
