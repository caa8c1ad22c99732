package subtitle

import "fmt"

// represents single subtitle cue, times are milliseconds from 00:00:00,000
type Cue struct {
	Index     int
	StartTime int64
	EndTime   int64
	Text      string
}

func (c Cue) Duration() int64 {
	return c.EndTime - c.StartTime
}

// options for parsing SRT content
type ParseOptions struct {
	// keeps <...> and {...} markup in cue text
	PreserveFormatting bool
}

// outcome of parsing one SRT file
type ParseResult struct {
	Cues   []Cue
	Errors []BlockError
}

// BlockError describes an SRT block that was skipped.
type BlockError struct {
	Label  string
	Block  int // 1-based ordinal of the block in the file
	Reason error
}

func (e BlockError) Error() string {
	return fmt.Sprintf("%s: block %d: %v", e.Label, e.Block, e.Reason)
}

func (e BlockError) Unwrap() error { return e.Reason }
