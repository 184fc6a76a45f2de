package sequence

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Unpadded marks a sequence whose frame numbers are written without a fixed
// width ("a.1", "a.11").
const Unpadded = 0

// Querier is the read-only view over a finalized sequence.
type Querier interface {
	FirstTime() int
	LastTime() int
	Duration() int
	FrameCount() int
	Step() int
	Frames() []int
	MissingFrames() []int
	StandardPattern() string
	FilenameAt(frame int) (string, error)
	AbsoluteFilenameAt(frame int) (string, error)
	AbsoluteFirstFilename() string
}

var _ Querier = (*Sequence)(nil)

// Sequence is one detected numbered group of files within a directory.
// Values are built by Builder and never change afterwards; accessors hand
// out copies.
type Sequence struct {
	directory string
	prefix    string
	suffix    string
	padding   int
	frames    []int // unique, ascending, non-empty
	step      int
}

// newSequence finalizes a sequence from already sorted unique frames.
func newSequence(dir string, key Key, padding int, frames []int) *Sequence {
	return &Sequence{
		directory: dir,
		prefix:    key.Prefix,
		suffix:    key.Suffix,
		padding:   padding,
		frames:    frames,
		step:      detectStep(frames),
	}
}

// Directory returns the directory the sequence was detected in.
func (s *Sequence) Directory() string { return s.directory }

// Prefix returns the text before the frame number.
func (s *Sequence) Prefix() string { return s.prefix }

// Suffix returns the text after the frame number, extension included.
func (s *Sequence) Suffix() string { return s.suffix }

// Padding returns the fixed frame number width, or Unpadded.
func (s *Sequence) Padding() int { return s.padding }

// IsPadded reports whether frame numbers are zero-padded to a fixed width
// greater than one.
func (s *Sequence) IsPadded() bool { return s.padding > 1 }

// FirstTime returns the lowest frame number.
func (s *Sequence) FirstTime() int { return s.frames[0] }

// LastTime returns the highest frame number.
func (s *Sequence) LastTime() int { return s.frames[len(s.frames)-1] }

// Duration returns the nominal span last - first + 1, missing frames included.
func (s *Sequence) Duration() int { return s.LastTime() - s.FirstTime() + 1 }

// FrameCount returns the number of frames actually present.
func (s *Sequence) FrameCount() int { return len(s.frames) }

// Step returns the regular spacing between frames, 1 for a dense range.
func (s *Sequence) Step() int { return s.step }

// Frames returns a copy of the frame numbers in ascending order.
func (s *Sequence) Frames() []int {
	out := make([]int, len(s.frames))
	copy(out, s.frames)
	return out
}

// Contains reports whether frame is part of the sequence.
func (s *Sequence) Contains(frame int) bool {
	i := sort.SearchInts(s.frames, frame)
	return i < len(s.frames) && s.frames[i] == frame
}

// MissingFrames returns the frames on the step grid between first and last
// that are absent. The result is empty, never nil, for a complete sequence.
func (s *Sequence) MissingFrames() []int {
	missing := make([]int, 0)
	for i := 1; i < len(s.frames); i++ {
		for f := s.frames[i-1] + s.step; f < s.frames[i]; f += s.step {
			missing = append(missing, f)
		}
	}
	return missing
}

// MissingCount returns the number of missing frames.
func (s *Sequence) MissingCount() int {
	return (s.Duration()+s.step-1)/s.step - len(s.frames)
}

// HasMissing reports whether the sequence has gaps.
func (s *Sequence) HasMissing() bool {
	return s.MissingCount() > 0
}

// Ranges returns the frame set as contiguous runs on the step grid,
// e.g. "1-3,6" or "10-20x2".
func (s *Sequence) Ranges() string {
	return FormatRanges(s.frames, s.step)
}

// MissingRanges returns the missing frames in the notation of Ranges, or
// "" when the sequence is complete. Gaps are written as runs without
// enumerating their frames.
func (s *Sequence) MissingRanges() string {
	var parts []string
	s.eachGap(func(lo, hi int) bool {
		parts = append(parts, formatRun(lo, hi, s.step))
		return true
	})
	return strings.Join(parts, ",")
}

// FirstMissing returns at most n missing frames in ascending order.
func (s *Sequence) FirstMissing(n int) []int {
	missing := make([]int, 0)
	if n <= 0 {
		return missing
	}
	s.eachGap(func(lo, hi int) bool {
		for f := lo; f <= hi; f += s.step {
			if len(missing) == n {
				return false
			}
			missing = append(missing, f)
		}
		return len(missing) < n
	})
	return missing
}

// eachGap calls fn with the first and last missing frame of every gap until
// fn returns false.
func (s *Sequence) eachGap(fn func(lo, hi int) bool) {
	for i := 1; i < len(s.frames); i++ {
		lo, hi := s.frames[i-1]+s.step, s.frames[i]-s.step
		if lo > hi {
			continue
		}
		if !fn(lo, hi) {
			return
		}
	}
}

// FormatRanges collapses sorted frames into runs spaced by step.
func FormatRanges(frames []int, step int) string {
	if len(frames) == 0 {
		return ""
	}
	if step < 1 {
		step = 1
	}
	var parts []string
	start := frames[0]
	prev := start
	flush := func() {
		parts = append(parts, formatRun(start, prev, step))
	}
	for _, f := range frames[1:] {
		if f == prev+step {
			prev = f
			continue
		}
		flush()
		start, prev = f, f
	}
	flush()
	return strings.Join(parts, ",")
}

func formatRun(first, last, step int) string {
	switch {
	case first == last:
		return strconv.Itoa(first)
	case step == 1:
		return fmt.Sprintf("%d-%d", first, last)
	default:
		return fmt.Sprintf("%d-%dx%d", first, last, step)
	}
}

// StandardPattern returns the printf-style template of the sequence, such as
// "foo.%03d.png", or "a.%d" when frame numbers are not padded. Literal '%'
// characters in the name are doubled.
func (s *Sequence) StandardPattern() string {
	verb := "%d"
	if s.padding > 1 {
		verb = fmt.Sprintf("%%0%dd", s.padding)
	}
	return escapePercent(s.prefix) + verb + escapePercent(s.suffix)
}

// HashPattern returns the template with one '#' per padded digit, or '@'
// when frame numbers are not padded: "foo.###.png", "a.@".
func (s *Sequence) HashPattern() string {
	marker := "@"
	if s.padding > 1 {
		marker = strings.Repeat("#", s.padding)
	}
	return s.prefix + marker + s.suffix
}

// FilenameAt returns the filename of frame, or a *FrameError wrapping
// ErrFrameNotPresent if the frame is not part of the sequence.
func (s *Sequence) FilenameAt(frame int) (string, error) {
	if !s.Contains(frame) {
		return "", &FrameError{Pattern: s.StandardPattern(), Frame: frame}
	}
	return s.NameFor(frame), nil
}

// AbsoluteFilenameAt is FilenameAt joined with the sequence directory.
func (s *Sequence) AbsoluteFilenameAt(frame int) (string, error) {
	name, err := s.FilenameAt(frame)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.directory, name), nil
}

// FirstFilename returns the filename of the first frame.
func (s *Sequence) FirstFilename() string { return s.NameFor(s.FirstTime()) }

// LastFilename returns the filename of the last frame.
func (s *Sequence) LastFilename() string { return s.NameFor(s.LastTime()) }

// AbsoluteFirstFilename returns the path of the first frame.
func (s *Sequence) AbsoluteFirstFilename() string {
	return filepath.Join(s.directory, s.FirstFilename())
}

// AbsoluteLastFilename returns the path of the last frame.
func (s *Sequence) AbsoluteLastFilename() string {
	return filepath.Join(s.directory, s.LastFilename())
}

// Filenames returns the filename of every present frame in order.
func (s *Sequence) Filenames() []string {
	names := make([]string, len(s.frames))
	for i, f := range s.frames {
		names[i] = s.NameFor(f)
	}
	return names
}

// String returns "pattern [ranges]".
func (s *Sequence) String() string {
	return fmt.Sprintf("%s [%s]", s.StandardPattern(), s.Ranges())
}

// NameFor renders the filename frame has or would have in the sequence,
// whether or not it is present.
func (s *Sequence) NameFor(frame int) string {
	return fmt.Sprintf("%s%0*d%s", s.prefix, s.padding, frame, s.suffix)
}

func escapePercent(s string) string {
	return strings.ReplaceAll(s, "%", "%%")
}

// detectStep returns the gcd of consecutive frame differences.
func detectStep(frames []int) int {
	step := 0
	for i := 1; i < len(frames); i++ {
		step = gcd(step, frames[i]-frames[i-1])
	}
	if step <= 0 {
		return 1
	}
	return step
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}
