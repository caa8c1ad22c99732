package eaf

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mgpai22/srt2eaf/internal/subtitle"
)

// Tier holds the cues of one input file.
type Tier struct {
	Name        string // unique TIER_ID
	DisplayName string // file basename without extension
	SourceFile  string
	Cues        []subtitle.Cue // sorted by start time
}

// span from the earliest start to the latest end, zero without cues
func (t *Tier) TotalDuration() int64 {
	if len(t.Cues) == 0 {
		return 0
	}
	minStart := t.Cues[0].StartTime
	maxEnd := t.Cues[0].EndTime
	for _, c := range t.Cues[1:] {
		if c.StartTime < minStart {
			minStart = c.StartTime
		}
		if c.EndTime > maxEnd {
			maxEnd = c.EndTime
		}
	}
	return maxEnd - minStart
}

// latest cue end, zero without cues
func (t *Tier) End() int64 {
	var end int64
	for _, c := range t.Cues {
		if c.EndTime > end {
			end = c.EndTime
		}
	}
	return end
}

// SanitizeTierName replaces every character outside [A-Za-z0-9_-] with '_'.
func SanitizeTierName(name string) string {
	var sb strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9',
			r == '_', r == '-':
			sb.WriteRune(r)
		default:
			sb.WriteByte('_')
		}
	}
	if sb.Len() == 0 {
		return "tier"
	}
	return sb.String()
}

// DisplayName is the file basename without its extension.
func DisplayName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// TierNamer hands out unique tier ids for one document.
type TierNamer struct {
	used map[string]bool
}

func NewTierNamer() *TierNamer {
	return &TierNamer{used: make(map[string]bool)}
}

// Unique sanitizes name and appends _1, _2, ... until it is unused.
func (n *TierNamer) Unique(name string) string {
	base := SanitizeTierName(name)
	candidate := base
	for i := 1; n.used[candidate]; i++ {
		candidate = fmt.Sprintf("%s_%d", base, i)
	}
	n.used[candidate] = true
	return candidate
}

// NewTier builds a tier for path, naming it through namer.
func NewTier(path string, cues []subtitle.Cue, namer *TierNamer) *Tier {
	display := DisplayName(path)
	return &Tier{
		Name:        namer.Unique(display),
		DisplayName: display,
		SourceFile:  path,
		Cues:        cues,
	}
}
