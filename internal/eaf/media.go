package eaf

import (
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

const DefaultMimeType = "video/*"

var mimeTypes = map[string]string{
	"mp4": "video/mp4",
	"avi": "video/x-msvideo",
	"mov": "video/quicktime",
	"mkv": "video/x-matroska",
	"mp3": "audio/mpeg",
	"wav": "audio/wav",
	"m4a": "audio/mp4",
}

// media type label for a media file, derived from its extension
func MimeType(mediaPath string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(mediaPath)), ".")
	if mt, ok := mimeTypes[ext]; ok {
		return mt
	}
	return DefaultMimeType
}

// NewMediaDescriptor describes mediaPath. Local paths become absolute
// file:// URLs; anything that already has a scheme is kept verbatim.
func NewMediaDescriptor(mediaPath string) *MediaDescriptor {
	return &MediaDescriptor{
		MediaURL:         mediaURL(mediaPath),
		MimeType:         MimeType(mediaPath),
		RelativeMediaURL: "./" + mediaBase(mediaPath),
	}
}

func mediaURL(mediaPath string) string {
	if strings.Contains(mediaPath, "://") {
		return mediaPath
	}
	abs, err := filepath.Abs(mediaPath)
	if err != nil {
		abs = mediaPath
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	if !strings.HasPrefix(u.Path, "/") {
		// windows drive paths
		u.Path = "/" + u.Path
	}
	return u.String()
}

func mediaBase(mediaPath string) string {
	if strings.Contains(mediaPath, "://") {
		if u, err := url.Parse(mediaPath); err == nil && u.Path != "" {
			return path.Base(u.Path)
		}
	}
	return filepath.Base(mediaPath)
}
