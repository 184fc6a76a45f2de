package browse

import (
	"path/filepath"
	"time"

	"github.com/harrison/seqparser/internal/sequence"
)

// Kind is the variant tag of an Item.
type Kind int

const (
	// KindFolder is a subdirectory.
	KindFolder Kind = iota
	// KindFile is a regular file that is not part of a sequence.
	KindFile
	// KindSequence is a detected file sequence.
	KindSequence
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindFolder:
		return "folder"
	case KindFile:
		return "file"
	case KindSequence:
		return "sequence"
	default:
		return "unknown"
	}
}

// Numeric item type codes used by consumers of the original listing format.
const (
	TypeCodeFolder   = 0
	TypeCodeSequence = 1
	TypeCodeFile     = 2
)

// Item is one classified directory entry: a folder, a file or a sequence.
// A sequence item exclusively owns its *sequence.Sequence.
type Item struct {
	kind Kind
	dir  string
	name string
	seq  *sequence.Sequence
}

// NewFolderItem returns a folder item for name inside dir.
func NewFolderItem(dir, name string) Item {
	return Item{kind: KindFolder, dir: dir, name: name}
}

// NewFileItem returns a file item for name inside dir.
func NewFileItem(dir, name string) Item {
	return Item{kind: KindFile, dir: dir, name: name}
}

// NewSequenceItem returns an item wrapping seq.
func NewSequenceItem(seq *sequence.Sequence) Item {
	return Item{kind: KindSequence, dir: seq.Directory(), name: seq.StandardPattern(), seq: seq}
}

// Kind returns the variant of the item.
func (it Item) Kind() Kind { return it.kind }

// TypeCode returns the numeric type of the item.
func (it Item) TypeCode() int {
	switch it.kind {
	case KindSequence:
		return TypeCodeSequence
	case KindFile:
		return TypeCodeFile
	default:
		return TypeCodeFolder
	}
}

// Directory returns the directory the item was found in.
func (it Item) Directory() string { return it.dir }

// Name returns the entry name, or the standard pattern for a sequence.
func (it Item) Name() string { return it.name }

// Path returns the item name joined with its directory.
func (it Item) Path() string { return filepath.Join(it.dir, it.name) }

// Sequence returns the sequence of a sequence item.
func (it Item) Sequence() (*sequence.Sequence, bool) {
	return it.seq, it.kind == KindSequence
}

// IsFolder reports whether the item is a folder.
func (it Item) IsFolder() bool { return it.kind == KindFolder }

// IsFile reports whether the item is a plain file.
func (it Item) IsFile() bool { return it.kind == KindFile }

// IsSequence reports whether the item is a sequence.
func (it Item) IsSequence() bool { return it.kind == KindSequence }

// Result is the classified content of one directory.
type Result struct {
	Directory string
	ScanID    string // identifies this scan in log output
	Items     []Item
	Elapsed   time.Duration
}

// Summary counts the items of a Result.
type Summary struct {
	Folders       int
	Files         int
	Sequences     int
	Frames        int // frames present across all sequences
	MissingFrames int
}

// Folders returns the folder items in result order.
func (r *Result) Folders() []Item { return r.filter(KindFolder) }

// Files returns the file items in result order.
func (r *Result) Files() []Item { return r.filter(KindFile) }

// Sequences returns the sequences in result order.
func (r *Result) Sequences() []*sequence.Sequence {
	var seqs []*sequence.Sequence
	for _, it := range r.Items {
		if seq, ok := it.Sequence(); ok {
			seqs = append(seqs, seq)
		}
	}
	return seqs
}

// Summary returns item and frame counts.
func (r *Result) Summary() Summary {
	var s Summary
	for _, it := range r.Items {
		switch it.kind {
		case KindFolder:
			s.Folders++
		case KindFile:
			s.Files++
		case KindSequence:
			s.Sequences++
			s.Frames += it.seq.FrameCount()
			s.MissingFrames += it.seq.MissingCount()
		}
	}
	return s
}

func (r *Result) filter(kind Kind) []Item {
	var items []Item
	for _, it := range r.Items {
		if it.kind == kind {
			items = append(items, it)
		}
	}
	return items
}
