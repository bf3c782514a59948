package main

import (
	"os"

	"github.com/joho/godotenv"
)

// config carries the external tool paths. Every field can be overridden
// through the environment or a .env file in the working directory.
type config struct {
	FFmpegPath  string
	FFprobePath string
	SoxPath     string
	MP4BoxPath  string
	OutputDir   string
}

const (
	defaultFFmpeg  = "ffmpeg"
	defaultFFprobe = "ffprobe"
	defaultSox     = "sox"
	defaultMP4Box  = "MP4Box"
	defaultOutDir  = "."
)

// loadConfig reads tool paths from the environment, falling back to the
// bare command names so PATH lookup applies.
func loadConfig() config {
	_ = godotenv.Load()

	return config{
		FFmpegPath:  envOr("FFMPEG_PATH", defaultFFmpeg),
		FFprobePath: envOr("FFPROBE_PATH", defaultFFprobe),
		SoxPath:     envOr("SOX_PATH", defaultSox),
		MP4BoxPath:  envOr("MP4BOX_PATH", defaultMP4Box),
		OutputDir:   envOr("OUTPUT_DIR", defaultOutDir),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
