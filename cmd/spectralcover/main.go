// Command spectralcover computes spectral cover values from a WAVE file.
//
// Usage:
//
//	spectralcover [flags] file.wav
//
// Each output line is "time_in<TAB>time_out<TAB>value" with times in seconds.
// The input must be 16-bit mono PCM.
//
// Examples:
//
//	spectralcover -o cover.txt recording.wav
//	spectralcover -w 1024 -s 512 -g 2 recording.wav
//	spectralcover -m -d 3 -f minimum.txt recording.wav
//
// See "Water flow detection from a wearable device with a new feature, the
// spectral cover", CBMI 2012, for the feature definition.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/spectralcover/dsp/pcm"
	"github.com/cwbudde/spectralcover/internal/logging"
	"github.com/cwbudde/spectralcover/internal/wavfile"
	"github.com/cwbudde/spectralcover/measure/cover"
	"go.uber.org/zap"
)

var errUsage = errors.New("incorrect number of arguments")

type options struct {
	input      string
	output     string
	minimumOut string
	verbose    bool
	degenerate string
	cfg        cover.Config
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	def := cover.DefaultConfig()
	opts := options{cfg: def}

	fs := flag.NewFlagSet("spectralcover", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.output, "o", "out.txt", "output file")
	fs.IntVar(&opts.cfg.WindowSize, "w", def.WindowSize, "window size (samples)")
	fs.IntVar(&opts.cfg.HopSize, "s", def.HopSize, "hop size (samples)")
	fs.BoolVar(&opts.verbose, "v", false, "verbose")
	fs.BoolVar(&opts.cfg.Minimum, "m", false, "compute the spectral cover minimum")
	fs.Float64Var(&opts.cfg.MinimumSeconds, "d", def.MinimumSeconds, "minimum window duration (seconds)")
	fs.StringVar(&opts.minimumOut, "f", "minimum.out.txt", "minimum output file")
	fs.Float64Var(&opts.cfg.Gamma, "g", def.Gamma, "gamma parameter")
	fs.IntVar(&opts.cfg.Workers, "workers", 0, "parallel workers (0 = GOMAXPROCS)")
	fs.StringVar(&opts.degenerate, "degenerate", cover.DegenerateZero.String(), "value for zero-energy frames: zero, nan or error")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: spectralcover [flags] file.wav\n\n")
		fmt.Fprintf(stderr, "Computes spectral cover values from a 16-bit mono WAVE file.\n")
		fmt.Fprintf(stderr, "Output syntax is: time_in \\t time_out \\t value\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return options{}, errUsage
	}
	opts.input = fs.Arg(0)

	policy, err := cover.ParseDegeneratePolicy(opts.degenerate)
	if err != nil {
		return options{}, err
	}
	opts.cfg.Degenerate = policy

	return opts, nil
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(2)
	}
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	log := logging.New(logging.WithVerbose(opts.verbose), logging.WithOutput(stderr))
	defer func() { _ = log.Sync() }()

	info, payload, err := wavfile.Read(opts.input)
	if err != nil {
		return err
	}
	log.Debug("reading file",
		zap.String("file", opts.input),
		zap.Int("channels", info.Channels),
		zap.Int("sample_rate", info.SampleRate),
		zap.Int("bits", info.BitDepth),
		zap.Int("frames", info.Frames),
	)

	wave, err := pcm.Decode(payload, info.Channels, info.BitDepth, info.Frames, info.SampleRate)
	if err != nil {
		return fmt.Errorf("%s: %w", opts.input, err)
	}

	log.Debug("spectral cover computation",
		zap.Int("window", opts.cfg.WindowSize),
		zap.Int("hop", opts.cfg.HopSize),
		zap.Float64("gamma", opts.cfg.Gamma),
		zap.Stringer("degenerate", opts.cfg.Degenerate),
	)

	res, err := cover.Run(ctx, wave, opts.cfg)
	if err != nil {
		return err
	}

	if err := writeSeries(opts.output, res.Cover); err != nil {
		return err
	}
	log.Debug("spectral cover values written",
		zap.String("file", opts.output),
		zap.Int("values", res.Cover.Len()),
		zap.Float64("rate", res.Cover.Rate()),
	)

	if res.Minimum == nil {
		return nil
	}

	if err := writeSeries(opts.minimumOut, *res.Minimum); err != nil {
		return err
	}
	log.Debug("spectral cover minimum values written",
		zap.String("file", opts.minimumOut),
		zap.Float64("window_seconds", opts.cfg.MinimumSeconds),
		zap.Int("values", res.Minimum.Len()),
	)

	return nil
}

func writeSeries(path string, s cover.Series) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := cover.WriteTSV(f, s); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
