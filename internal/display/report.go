package display

import (
	"github.com/harrison/seqparser/internal/browse"
	"github.com/harrison/seqparser/internal/sequence"
)

// Report is the serializable form of a browse result.
type Report struct {
	Directory string       `json:"directory" yaml:"directory"`
	ScanID    string       `json:"scan_id" yaml:"scan_id"`
	Items     []ReportItem `json:"items" yaml:"items"`
	Summary   Summary      `json:"summary" yaml:"summary"`
}

// ReportItem describes one folder, file or sequence.
type ReportItem struct {
	Name     string          `json:"name" yaml:"name"`
	Type     string          `json:"type" yaml:"type"`
	TypeCode int             `json:"type_code" yaml:"type_code"`
	Path     string          `json:"path" yaml:"path"`
	Sequence *SequenceReport `json:"sequence,omitempty" yaml:"sequence,omitempty"`
}

// SequenceReport carries the queries of a sequence.
type SequenceReport struct {
	Pattern       string `json:"pattern" yaml:"pattern"`
	HashPattern   string `json:"hash_pattern" yaml:"hash_pattern"`
	Prefix        string `json:"prefix" yaml:"prefix"`
	Suffix        string `json:"suffix" yaml:"suffix"`
	Padding       int    `json:"padding" yaml:"padding"`
	First         int    `json:"first" yaml:"first"`
	Last          int    `json:"last" yaml:"last"`
	Duration      int    `json:"duration" yaml:"duration"`
	FrameCount    int    `json:"frame_count" yaml:"frame_count"`
	Step          int    `json:"step" yaml:"step"`
	Ranges        string `json:"ranges" yaml:"ranges"`
	MissingCount  int    `json:"missing_count" yaml:"missing_count"`
	MissingRanges string `json:"missing_ranges" yaml:"missing_ranges"`
	FirstFilename string `json:"first_filename" yaml:"first_filename"`
}

// Summary mirrors browse.Summary with serialization tags.
type Summary struct {
	Folders       int `json:"folders" yaml:"folders"`
	Files         int `json:"files" yaml:"files"`
	Sequences     int `json:"sequences" yaml:"sequences"`
	Frames        int `json:"frames" yaml:"frames"`
	MissingFrames int `json:"missing_frames" yaml:"missing_frames"`
}

// NewReport converts a browse result.
func NewReport(result *browse.Result) Report {
	items := make([]ReportItem, 0, len(result.Items))
	for _, it := range result.Items {
		ri := ReportItem{
			Name:     it.Name(),
			Type:     it.Kind().String(),
			TypeCode: it.TypeCode(),
			Path:     it.Path(),
		}
		if seq, ok := it.Sequence(); ok {
			ri.Sequence = newSequenceReport(seq)
		}
		items = append(items, ri)
	}

	s := result.Summary()
	return Report{
		Directory: result.Directory,
		ScanID:    result.ScanID,
		Items:     items,
		Summary: Summary{
			Folders:       s.Folders,
			Files:         s.Files,
			Sequences:     s.Sequences,
			Frames:        s.Frames,
			MissingFrames: s.MissingFrames,
		},
	}
}

func newSequenceReport(seq *sequence.Sequence) *SequenceReport {
	return &SequenceReport{
		Pattern:       seq.StandardPattern(),
		HashPattern:   seq.HashPattern(),
		Prefix:        seq.Prefix(),
		Suffix:        seq.Suffix(),
		Padding:       seq.Padding(),
		First:         seq.FirstTime(),
		Last:          seq.LastTime(),
		Duration:      seq.Duration(),
		FrameCount:    seq.FrameCount(),
		Step:          seq.Step(),
		Ranges:        seq.Ranges(),
		MissingCount:  seq.MissingCount(),
		MissingRanges: seq.MissingRanges(),
		FirstFilename: seq.FirstFilename(),
	}
}
