package main

import (
	"context"

	"github.com/jinjor/tonegen/src/tone"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/rtmididrv"
	"go.uber.org/zap"
)

func newListenCmd() *cobra.Command {
	flags := &toneFlags{}
	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Play a fixed pitch tone for every note-on from the first MIDI input",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger()
			if err != nil {
				return err
			}
			defer logger.Sync()

			out, err := newOutput(flags.rate, flags.depth, logger)
			if err != nil {
				return err
			}
			defer out.Close()

			ctx := cmd.Context()
			for data := range listenToMidiIn(ctx, logger) {
				note, ok := noteOn(data)
				if !ok {
					continue
				}
				buf, err := flags.noteTone(note)
				if err != nil {
					logger.Warn("skipping note", zap.Int("note", note), zap.Error(err))
					continue
				}
				if err := out.play(ctx, buf); err != nil {
					return err
				}
			}
			logger.Info("listen ended.")
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

// noteOn returns the note number of a note-on message. A note-on with
// velocity zero is a note-off.
func noteOn(data []byte) (int, bool) {
	if len(data) < 3 {
		return 0, false
	}
	if data[0]>>4 == 9 && data[2] > 0 {
		return int(data[1]), true
	}
	return 0, false
}

func (f *toneFlags) noteTone(note int) (tone.Buffer, error) {
	name, err := tone.NoteName(note)
	if err != nil {
		return tone.Buffer{}, err
	}
	p, err := f.params()
	if err != nil {
		return tone.Buffer{}, err
	}
	p.Frequency = tone.Tones[name]
	fidelity, err := tone.ParseFidelity(f.fidelity)
	if err != nil {
		return tone.Buffer{}, err
	}
	return tone.NewFixedPitch(p).Tone(f.size(), f.offset, fidelity)
}

// listenToMidiIn forwards raw messages from the first MIDI input until ctx
// is done.
func listenToMidiIn(ctx context.Context, logger *zap.Logger) <-chan []byte {
	ch := make(chan []byte, 65536)
	go func() {
		defer close(ch)
		drv, err := rtmididrv.New()
		if err != nil {
			logger.Error("failed to initialize MIDI driver", zap.Error(err))
			return
		}
		defer func() {
			if err := drv.Close(); err != nil {
				logger.Warn("failed to close MIDI driver", zap.Error(err))
			}
		}()
		ins, err := drv.Ins()
		if err != nil {
			logger.Error("failed to get MIDI IN", zap.Error(err))
			return
		}
		if len(ins) == 0 {
			logger.Warn("MIDI IN not found")
			return
		}
		in := ins[0]
		if err := in.Open(); err != nil {
			logger.Error("failed to open MIDI IN", zap.Error(err))
			return
		}
		logger.Info("opened " + in.String())
		defer func() {
			if err := in.Close(); err != nil {
				logger.Warn("failed to close MIDI IN", zap.Error(err))
			}
		}()
		logger.Info("start listening MIDI IN...")
		if err := in.SetListener(func(data []byte, deltaMicroseconds int64) {
			msg := make([]byte, len(data))
			copy(msg, data)
			select {
			case ch <- msg:
			default:
				logger.Warn("dropping MIDI message")
			}
		}); err != nil {
			logger.Error("failed to set listener", zap.Error(err))
			return
		}
		defer func() {
			logger.Info("stop listening MIDI IN...")
			if err := in.StopListening(); err != nil {
				logger.Warn("failed to stop listening", zap.Error(err))
			}
		}()
		<-ctx.Done()
	}()
	return ch
}
