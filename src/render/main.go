package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/faiface/beep/wav"
	"github.com/jinjor/tonegen/src/pcm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var outDir string

var rootCmd = &cobra.Command{
	Use:          "render <jobs.json>",
	Short:        "Render tone jobs to WAV files",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := zap.NewProduction()
		if err != nil {
			return err
		}
		defer logger.Sync()

		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		jobs, err := parseJobs(data)
		if err != nil {
			return err
		}
		if err := renderAll(cmd.Context(), jobs, outDir, logger); err != nil {
			logger.Error("render failed", zap.Error(err))
			return err
		}
		logger.Info("Successfully rendered jobs.", zap.Int("jobs", len(jobs)))
		return nil
	},
}

func main() {
	rootCmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory")
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func renderAll(ctx context.Context, jobs []*job, dir string, logger *zap.Logger) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, j := range jobs {
		j := j
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := j.render()
			if err != nil {
				return fmt.Errorf("%s: %w", j.File, err)
			}
			logger.Info("generated "+r.desc, zap.String("file", j.File), zap.Int("samples", r.buf.Len()))
			if err := save(filepath.Join(dir, j.File), r); err != nil {
				return fmt.Errorf("%s: %w", j.File, err)
			}
			logger.Info("saved", zap.String("file", j.File))
			return nil
		})
	}
	return g.Wait()
}

func save(path string, r *rendered) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	if err := wav.Encode(file, pcm.NewStreamer(r.buf, r.bitDepth), pcm.Format(r.sampleRate, r.bitDepth)); err != nil {
		return err
	}
	return file.Close()
}
