package subtitle

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

const timeRangeSeparator = " --> "

var (
	blankLineRegex = regexp.MustCompile(`\n[ \t]*\n(?:[ \t]*\n)*`)
	tagRegex       = regexp.MustCompile(`<[^>]*>`)
	braceRegex     = regexp.MustCompile(`\{[^}]*\}`)
)

// result of parsing a single block, exactly one field is set
type blockResult struct {
	cue *Cue
	err error
}

// ParseSRT splits SRT content into cues sorted by start time. Malformed
// blocks are skipped and reported in ParseResult.Errors; they never fail
// the whole file.
func ParseSRT(content, label string, opts ParseOptions) *ParseResult {
	result := &ParseResult{Cues: []Cue{}}

	for i, block := range splitSRTBlocks(content) {
		res := parseSRTBlock(block, opts)
		if res.err != nil {
			result.Errors = append(result.Errors, BlockError{
				Label:  label,
				Block:  i + 1,
				Reason: res.err,
			})
			continue
		}
		result.Cues = append(result.Cues, *res.cue)
	}

	sort.SliceStable(result.Cues, func(i, j int) bool {
		return result.Cues[i].StartTime < result.Cues[j].StartTime
	})

	return result
}

func splitSRTBlocks(content string) []string {
	content = strings.TrimPrefix(content, "\ufeff")
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	parts := blankLineRegex.Split(content, -1)
	blocks := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			blocks = append(blocks, p)
		}
	}
	return blocks
}

func parseSRTBlock(block string, opts ParseOptions) blockResult {
	lines := strings.Split(block, "\n")
	if countNonBlank(lines) < 2 {
		return blockResult{err: errors.New("block needs an index and a time range")}
	}

	indexLine := strings.TrimSpace(lines[0])
	index, err := strconv.Atoi(indexLine)
	if err != nil {
		return blockResult{err: fmt.Errorf("invalid subtitle index %q", indexLine)}
	}

	timing := strings.TrimSpace(lines[1])
	startStr, endStr, ok := strings.Cut(timing, timeRangeSeparator)
	if !ok {
		return blockResult{err: fmt.Errorf("missing time range separator in %q", timing)}
	}

	start, err := ParseTimestamp(startStr)
	if err != nil {
		return blockResult{err: fmt.Errorf("start time: %w", err)}
	}
	end, err := ParseTimestamp(endStr)
	if err != nil {
		return blockResult{err: fmt.Errorf("end time: %w", err)}
	}
	if start >= end {
		return blockResult{err: fmt.Errorf(
			"start %s is not before end %s",
			FormatTimestamp(start),
			FormatTimestamp(end),
		)}
	}

	text := strings.Join(lines[2:], "\n")
	if !opts.PreserveFormatting {
		text = StripFormatting(text)
	}

	return blockResult{cue: &Cue{
		Index:     index,
		StartTime: start,
		EndTime:   end,
		Text:      strings.TrimSpace(text),
	}}
}

// removes HTML-like tags and {...} override spans
func StripFormatting(text string) string {
	text = tagRegex.ReplaceAllString(text, "")
	return braceRegex.ReplaceAllString(text, "")
}

func countNonBlank(lines []string) int {
	n := 0
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			n++
		}
	}
	return n
}
