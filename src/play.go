package main

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/oto"
	"github.com/jinjor/tonegen/src/pcm"
	"github.com/jinjor/tonegen/src/tone"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	channelNum        = 2
	bufferSizeInBytes = 4096
)

type toneFlags struct {
	note        string
	freq        float64
	wave        string
	rate        int
	depth       int
	volume      float64
	duration    float64
	samples     int
	offset      int
	fidelity    string
	periodCount string
	bendTo      string
	silence     bool
}

func (f *toneFlags) register(cmd *cobra.Command) {
	d := tone.DefaultWaveParams()
	cmd.Flags().StringVar(&f.note, "note", "", "note name, e.g. A4 (overrides --freq)")
	cmd.Flags().Float64Var(&f.freq, "freq", d.Frequency, "frequency in Hz")
	cmd.Flags().StringVar(&f.wave, "wave", d.Generator.Name, "sine, triangle, saw or square")
	cmd.Flags().IntVar(&f.rate, "rate", d.SampleRate, "sample rate in Hz")
	cmd.Flags().IntVar(&f.depth, "depth", d.BitDepth, "bit depth (1-64)")
	cmd.Flags().Float64Var(&f.volume, "volume", d.Volume, "volume (0-1)")
	cmd.Flags().Float64Var(&f.duration, "duration", 0, "duration in ms")
	cmd.Flags().IntVar(&f.samples, "samples", 0, "exact number of samples")
	cmd.Flags().IntVar(&f.offset, "offset", 0, "phase offset in samples")
	cmd.Flags().StringVar(&f.fidelity, "fidelity", tone.FidelityApproximate.String(), "approximate, accurate or exact")
	cmd.Flags().StringVar(&f.periodCount, "period-count", tone.PeriodCountPow10.String(), "pow10 or xor")
	cmd.Flags().StringVar(&f.bendTo, "bend-to", "", "bend to this note")
	cmd.Flags().BoolVar(&f.silence, "silence", false, "play silence")
}

func (f *toneFlags) size() tone.SizeRequest {
	if f.duration == 0 && f.samples == 0 {
		return tone.Duration(200)
	}
	return tone.SizeRequest{Duration: f.duration, Samples: f.samples}
}

func (f *toneFlags) params() (tone.WaveParams, error) {
	p := tone.DefaultWaveParams()
	p.Frequency = f.freq
	if f.note != "" {
		freq, err := tone.Frequency(f.note)
		if err != nil {
			return p, err
		}
		p.Frequency = freq
	}
	g, err := tone.GeneratorByName(f.wave)
	if err != nil {
		return p, err
	}
	mode, err := tone.ParsePeriodCountMode(f.periodCount)
	if err != nil {
		return p, err
	}
	p.Generator = g
	p.SampleRate = f.rate
	p.BitDepth = f.depth
	p.Volume = f.volume
	p.PeriodCount = mode
	return p, nil
}

// synthesize builds the buffer described by the flags.
func (f *toneFlags) synthesize(logger *zap.Logger) (tone.Buffer, error) {
	if f.silence {
		s := tone.NewSilence(tone.SilenceParams{SampleRate: f.rate, BitDepth: f.depth})
		logger.Info(s.String(), zap.Stringer("size", f.size()))
		return s.Accurate(f.size())
	}
	p, err := f.params()
	if err != nil {
		return tone.Buffer{}, err
	}
	if f.bendTo != "" {
		end, err := tone.Frequency(f.bendTo)
		if err != nil {
			return tone.Buffer{}, err
		}
		b := tone.NewLinearBend(tone.BendParams{
			StartFrequency: p.Frequency,
			EndFrequency:   end,
			SampleRate:     p.SampleRate,
			BitDepth:       p.BitDepth,
			Volume:         p.Volume,
			Generator:      p.Generator,
		})
		logger.Info(b.String(), zap.Stringer("size", f.size()))
		return b.Approximate(f.size())
	}
	fidelity, err := tone.ParseFidelity(f.fidelity)
	if err != nil {
		return tone.Buffer{}, err
	}
	fp := tone.NewFixedPitch(p)
	logger.Info(fp.String(), zap.Stringer("size", f.size()), zap.Stringer("fidelity", fidelity))
	return fp.Tone(f.size(), f.offset, fidelity)
}

func newPlayCmd() *cobra.Command {
	flags := &toneFlags{}
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a tone, bend or silence",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger()
			if err != nil {
				return err
			}
			defer logger.Sync()

			buf, err := flags.synthesize(logger)
			if err != nil {
				return err
			}
			out, err := newOutput(flags.rate, flags.depth, logger)
			if err != nil {
				return err
			}
			defer out.Close()
			return out.play(cmd.Context(), buf)
		},
	}
	flags.register(cmd)
	return cmd
}

// ----- Output ----- //

type output struct {
	otoContext     *oto.Context
	player         *oto.Player
	bitDepth       int
	bytesPerSample int
	logger         *zap.Logger
}

func newOutput(sampleRate int, bitDepth int, logger *zap.Logger) (*output, error) {
	bytesPerSample := 2
	if bitDepth <= 8 {
		bytesPerSample = 1
	}
	otoContext, err := oto.NewContext(sampleRate, channelNum, bytesPerSample, bufferSizeInBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio output: %w", err)
	}
	return &output{
		otoContext:     otoContext,
		player:         otoContext.NewPlayer(),
		bitDepth:       bitDepth,
		bytesPerSample: bytesPerSample,
		logger:         logger,
	}, nil
}

// play writes buf in chunks so that cancellation is noticed between them.
func (o *output) play(ctx context.Context, buf tone.Buffer) error {
	data, err := pcm.Bytes(buf, o.bitDepth, channelNum, o.bytesPerSample)
	if err != nil {
		return err
	}
	o.logger.Debug("playing", zap.Int("samples", buf.Len()), zap.Int("bytes", len(data)))
	for len(data) > 0 {
		select {
		case <-ctx.Done():
			o.logger.Info("play interrupted")
			return nil
		default:
		}
		n := bufferSizeInBytes
		if n > len(data) {
			n = len(data)
		}
		if _, err := o.player.Write(data[:n]); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

func (o *output) Close() error {
	o.logger.Debug("Closing audio output...")
	if err := o.player.Close(); err != nil {
		o.logger.Warn("error while closing player", zap.Error(err))
	}
	return o.otoContext.Close()
}
