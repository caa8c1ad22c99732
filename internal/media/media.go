package media

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

const defaultProbeTimeout = 30 * time.Second

// media file information
type Info struct {
	Path       string
	Duration   time.Duration
	FormatName string
	HasVideo   bool
	HasAudio   bool
	Width      int
	Height     int
}

// interface for reading media file information
type Prober interface {
	Probe(path string) (*Info, error)
}

// ffprobe backed implementation
type FFProbe struct {
	Timeout time.Duration
}

func NewProber() *FFProbe {
	return &FFProbe{Timeout: defaultProbeTimeout}
}

// reports whether ffprobe is on PATH
func Available() bool {
	_, err := exec.LookPath("ffprobe")
	return err == nil
}

// runs ffprobe on path
func (p *FFProbe) Probe(path string) (*Info, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("media file not found: %s", path)
	}

	out, err := ffmpeg.ProbeWithTimeout(path, p.Timeout, ffmpeg.KwArgs{})
	if err != nil {
		return nil, fmt.Errorf("ffprobe failed: %w", err)
	}

	info, err := parseProbeOutput([]byte(out))
	if err != nil {
		return nil, err
	}
	info.Path = path
	return info, nil
}

// JSON output from ffprobe -show_format -show_streams
type probeOutput struct {
	Streams []struct {
		CodecType string `json:"codec_type"`
		Width     int    `json:"width"`
		Height    int    `json:"height"`
	} `json:"streams"`
	Format struct {
		FormatName string `json:"format_name"`
		Duration   string `json:"duration"`
	} `json:"format"`
}

func parseProbeOutput(data []byte) (*Info, error) {
	var probe probeOutput
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}

	info := &Info{FormatName: probe.Format.FormatName}

	if d := strings.TrimSpace(probe.Format.Duration); d != "" {
		seconds, err := strconv.ParseFloat(d, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse duration: %w", err)
		}
		info.Duration = time.Duration(math.Round(seconds*1000)) * time.Millisecond
	}

	for _, s := range probe.Streams {
		switch s.CodecType {
		case "video":
			if !info.HasVideo {
				info.Width = s.Width
				info.Height = s.Height
			}
			info.HasVideo = true
		case "audio":
			info.HasAudio = true
		}
	}

	return info, nil
}
