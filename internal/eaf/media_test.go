package eaf

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestMimeType(t *testing.T) {
	tests := map[string]string{
		"movie.mp4":        "video/mp4",
		"MOVIE.MP4":        "video/mp4",
		"clip.avi":         "video/x-msvideo",
		"clip.mov":         "video/quicktime",
		"clip.mkv":         "video/x-matroska",
		"song.mp3":         "audio/mpeg",
		"take.wav":         "audio/wav",
		"voice.m4a":        "audio/mp4",
		"stream.webm":      DefaultMimeType,
		"noext":            DefaultMimeType,
		"dir.mp4/file.ogg": DefaultMimeType,
	}
	for in, want := range tests {
		if got := MimeType(in); got != want {
			t.Errorf("MimeType(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNewMediaDescriptorLocalPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "my movie.mp4")
	md := NewMediaDescriptor(path)

	if !strings.HasPrefix(md.MediaURL, "file:///") {
		t.Errorf("expected file URL, got %q", md.MediaURL)
	}
	if !strings.HasSuffix(md.MediaURL, "my%20movie.mp4") {
		t.Errorf("expected escaped basename at end of %q", md.MediaURL)
	}
	if md.RelativeMediaURL != "./my movie.mp4" {
		t.Errorf("RelativeMediaURL = %q", md.RelativeMediaURL)
	}
	if md.MimeType != "video/mp4" {
		t.Errorf("MimeType = %q", md.MimeType)
	}
}

func TestNewMediaDescriptorURL(t *testing.T) {
	md := NewMediaDescriptor("https://example.com/media/talk.wav")
	if md.MediaURL != "https://example.com/media/talk.wav" {
		t.Errorf("MediaURL = %q", md.MediaURL)
	}
	if md.RelativeMediaURL != "./talk.wav" {
		t.Errorf("RelativeMediaURL = %q", md.RelativeMediaURL)
	}
	if md.MimeType != "audio/wav" {
		t.Errorf("MimeType = %q", md.MimeType)
	}
}

func TestCleanText(t *testing.T) {
	in := "a\x00b\x07c\td\ne\rf\x7fg & <h>"
	want := "abc\td\ne\rfg & <h>"
	if got := CleanText(in); got != want {
		t.Errorf("CleanText = %q, want %q", got, want)
	}
}
