// Command cuemerge merges the CUE sheets of a multi-disc audiobook into a
// single chapter timeline. It writes a combined CUE sheet, an FFmetadata
// chapter file and a plain clock-time chapter list, and can optionally
// concatenate the disc audio and mux the result into an M4B audiobook.
//
// Usage:
//
//	cuemerge -in ./book [-out ./out] [-format chapters|m4b-ffmpeg|m4b-mp4box]
//
// External tool paths are read from the environment (FFMPEG_PATH,
// FFPROBE_PATH, SOX_PATH, MP4BOX_PATH), optionally via a .env file.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/simonhull/cuemerge"
)

func main() {
	var (
		inDir   = flag.String("in", "", "directory containing the disc CUE sheets (required)")
		outDir  = flag.String("out", "", "output directory (default $OUTPUT_DIR or .)")
		format  = flag.String("format", "chapters", "output format: chapters, m4b-ffmpeg or m4b-mp4box")
		title   = flag.String("title", "", "audiobook title metadata")
		artist  = flag.String("artist", "", "audiobook artist metadata")
		cover   = flag.String("cover", "", "cover art image to embed (m4b-ffmpeg only)")
		dryRun  = flag.Bool("dry-run", false, "validate and report without writing any files")
		watch   = flag.Bool("watch", false, "watch the input directory and process new book subdirectories")
		verbose = flag.Bool("v", false, "verbose logging")
		version = flag.Bool("version", false, "print the version and exit")
	)
	flag.Parse()

	if *version {
		fmt.Println(cuemerge.GetVersion())
		return
	}
	if *inDir == "" {
		fmt.Fprintln(os.Stderr, "cuemerge: -in is required")
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := loadConfig()
	if *outDir == "" {
		*outDir = cfg.OutputDir
	}

	opts, err := buildOptions(cfg, *format, *title, *artist, *cover, *dryRun, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cuemerge: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	proc := cuemerge.NewProcessor(opts...)

	if *watch {
		if err := watchAndProcess(ctx, proc, *inDir, *outDir, logger); err != nil {
			fmt.Fprintf(os.Stderr, "cuemerge: %v\n", err)
			os.Exit(1)
		}
		return
	}

	result, err := proc.Process(ctx, *inDir, *outDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cuemerge: %v\n", err)
		os.Exit(1)
	}
	report(result)
}

// buildOptions translates the flag set into Processor options. The merge
// and mux collaborators are only attached for the m4b formats.
func buildOptions(cfg config, format, title, artist, cover string, dryRun bool, logger *slog.Logger) ([]cuemerge.Option, error) {
	opts := []cuemerge.Option{
		cuemerge.WithDurationSource(cuemerge.FFprobe{Path: cfg.FFprobePath}),
		cuemerge.WithLogger(logger),
	}
	if title != "" || artist != "" || cover != "" {
		opts = append(opts, cuemerge.WithMetadata(cuemerge.Metadata{
			Title:    title,
			Artist:   artist,
			CoverArt: cover,
		}))
	}
	if dryRun {
		opts = append(opts, cuemerge.WithDryRun())
	}

	switch format {
	case "chapters":
	case "m4b-ffmpeg":
		opts = append(opts,
			cuemerge.WithMerger(cuemerge.Sox{Path: cfg.SoxPath}),
			cuemerge.WithMuxer(cuemerge.FFmpegMux{Path: cfg.FFmpegPath}),
		)
	case "m4b-mp4box":
		opts = append(opts,
			cuemerge.WithMerger(cuemerge.Sox{Path: cfg.SoxPath}),
			cuemerge.WithMuxer(cuemerge.MP4Box{Path: cfg.MP4BoxPath}),
		)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
	return opts, nil
}

func report(r *cuemerge.Result) {
	fmt.Printf("merged %d discs into %d chapters (%s total)\n",
		r.Sheets, r.Chapters, cuemerge.ClockString(r.TotalMS))
	for _, path := range []string{r.CombinedCue, r.FFMetadata, r.ClockList, r.MergedAudio, r.Audiobook} {
		if path != "" {
			fmt.Println("  " + path)
		}
	}
}
