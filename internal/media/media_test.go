package media

import (
	"path/filepath"
	"testing"
	"time"
)

func TestParseProbeOutput(t *testing.T) {
	data := []byte(`{
  "streams": [
    {"index": 0, "codec_type": "video", "codec_name": "h264", "width": 1920, "height": 1080},
    {"index": 1, "codec_type": "audio", "codec_name": "aac"}
  ],
  "format": {"format_name": "mov,mp4,m4a,3gp,3g2,mj2", "duration": "83.450000"}
}`)

	info, err := parseProbeOutput(data)
	if err != nil {
		t.Fatalf("parseProbeOutput returned error: %v", err)
	}
	if info.Duration != 83450*time.Millisecond {
		t.Errorf("Duration = %v, want 83.45s", info.Duration)
	}
	if !info.HasVideo || !info.HasAudio {
		t.Errorf("expected video and audio streams, got %+v", info)
	}
	if info.Width != 1920 || info.Height != 1080 {
		t.Errorf("unexpected dimensions %dx%d", info.Width, info.Height)
	}
}

func TestParseProbeOutputAudioOnly(t *testing.T) {
	data := []byte(`{"streams":[{"codec_type":"audio"}],"format":{"format_name":"wav"}}`)
	info, err := parseProbeOutput(data)
	if err != nil {
		t.Fatalf("parseProbeOutput returned error: %v", err)
	}
	if info.HasVideo || !info.HasAudio || info.Duration != 0 {
		t.Errorf("unexpected info %+v", info)
	}
}

func TestParseProbeOutputErrors(t *testing.T) {
	inputs := []string{
		`not json`,
		`{"format":{"duration":"abc"}}`,
	}
	for _, in := range inputs {
		if _, err := parseProbeOutput([]byte(in)); err == nil {
			t.Errorf("expected error for %q", in)
		}
	}
}

func TestProbeMissingFile(t *testing.T) {
	_, err := NewProber().Probe(filepath.Join(t.TempDir(), "missing.mp4"))
	if err == nil {
		t.Error("expected error for missing media file")
	}
}
