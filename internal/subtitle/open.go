package subtitle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

const DefaultEncoding = "utf-8"

// resolves an encoding label such as "utf-8", "latin1" or "windows-1252"
func LookupEncoding(name string) (encoding.Encoding, error) {
	if strings.TrimSpace(name) == "" {
		name = DefaultEncoding
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unsupported text encoding %q: %w", name, err)
	}
	return enc, nil
}

// reads a subtitle file and decodes it to a UTF-8 string
func ReadFile(path, encodingName string) (string, error) {
	enc, err := LookupEncoding(encodingName)
	if err != nil {
		return "", err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read subtitle file: %w", err)
	}

	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s as %s: %w", filepath.Base(path), encodingName, err)
	}
	return string(decoded), nil
}

// parses a subtitle file from disk
func Open(path, encodingName string, opts ParseOptions) (*ParseResult, error) {
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".srt" {
		return nil, fmt.Errorf("unsupported subtitle format: %s", ext)
	}

	content, err := ReadFile(path, encodingName)
	if err != nil {
		return nil, err
	}
	return ParseSRT(content, filepath.Base(path), opts), nil
}
