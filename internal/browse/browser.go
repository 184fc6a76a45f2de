// Package browse classifies the entries of a directory into folders, plain
// files and file sequences.
//
// The directory listing comes from a Lister; OSLister reads the local
// filesystem. Browse performs exactly one enumeration per call and then
// groups names in memory with the sequence package, so a Result is either
// complete or not returned at all.
package browse

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/gobwas/glob"
	"github.com/google/uuid"

	"github.com/harrison/seqparser/internal/sequence"
)

// Logger receives browse trace messages. *logger.ConsoleLogger
// satisfies it.
type Logger interface {
	LogDebug(message string)
}

type nopLogger struct{}

func (nopLogger) LogDebug(string) {}

// Option configures a Browser.
type Option func(*Browser) error

// WithPolicy sets the sequence grouping policy.
func WithPolicy(p sequence.Policy) Option {
	return func(b *Browser) error {
		b.policy = p
		return nil
	}
}

// WithIgnore skips entries whose name matches any of the glob patterns.
// Patterns use gobwas/glob syntax, e.g. "*.tmp" or "{.DS_Store,Thumbs.db}".
func WithIgnore(patterns ...string) Option {
	return func(b *Browser) error {
		for _, p := range patterns {
			if strings.TrimSpace(p) == "" {
				continue
			}
			g, err := glob.Compile(p)
			if err != nil {
				return fmt.Errorf("invalid ignore pattern %q: %w", p, err)
			}
			b.ignore = append(b.ignore, g)
		}
		return nil
	}
}

// WithHidden controls whether entries starting with "." are listed.
func WithHidden(show bool) Option {
	return func(b *Browser) error {
		b.showHidden = show
		return nil
	}
}

// WithLogger sets the logger. A nil logger, including a nil pointer
// wrapped in the interface, disables logging.
func WithLogger(l Logger) Option {
	return func(b *Browser) error {
		if isNilLogger(l) {
			l = nopLogger{}
		}
		b.logger = l
		return nil
	}
}

func isNilLogger(l Logger) bool {
	if l == nil {
		return true
	}
	v := reflect.ValueOf(l)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// Browser classifies directory listings. It holds no state between calls
// and is safe for concurrent use.
type Browser struct {
	lister     Lister
	policy     sequence.Policy
	ignore     []glob.Glob
	showHidden bool
	logger     Logger
}

// NewBrowser creates a Browser reading from lister, or from the local
// filesystem when lister is nil.
func NewBrowser(lister Lister, opts ...Option) (*Browser, error) {
	if lister == nil {
		lister = OSLister{}
	}
	b := &Browser{
		lister:     lister,
		policy:     sequence.DefaultPolicy(),
		showHidden: true,
		logger:     nopLogger{},
	}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Browse lists the local directory at path with the default settings.
func Browse(path string) (*Result, error) {
	b, _ := NewBrowser(nil)
	return b.Browse(path)
}

// FoldersOnly lists the folder names of the local directory at path.
func FoldersOnly(path string) ([]string, error) {
	b, _ := NewBrowser(nil)
	return b.FoldersOnly(path)
}

// Browse enumerates path once and classifies its entries. Folders are never
// grouped into sequences. Items are sorted by name, ties broken by kind.
// Sequence paths are joined with path as given.
func (b *Browser) Browse(path string) (*Result, error) {
	start := time.Now()
	path = filepath.Clean(path)
	scanID := uuid.New().String()

	b.logger.LogDebug(fmt.Sprintf("scan %s: listing %s", scanID, path))
	entries, err := b.list(path)
	if err != nil {
		b.logger.LogDebug(fmt.Sprintf("scan %s: %v", scanID, err))
		return nil, err
	}

	var items []Item
	var tokens []sequence.Token
	for _, e := range entries {
		if e.IsDir {
			items = append(items, NewFolderItem(path, e.Name))
			continue
		}
		tokens = append(tokens, sequence.Tokenize(e.Name))
	}

	seqs, leftovers := sequence.Builder{Policy: b.policy}.Build(path, tokens)
	for _, seq := range seqs {
		b.logger.LogDebug(fmt.Sprintf("scan %s: sequence %s", scanID, seq))
		items = append(items, NewSequenceItem(seq))
	}
	for _, tok := range leftovers {
		items = append(items, NewFileItem(path, tok.Name))
	}

	sortItems(items)

	result := &Result{
		Directory: path,
		ScanID:    scanID,
		Items:     items,
		Elapsed:   time.Since(start),
	}

	s := result.Summary()
	b.logger.LogDebug(fmt.Sprintf("scan %s: %s: %d folders, %d files, %d sequences (%d frames, %d missing) in %s",
		scanID, path, s.Folders, s.Files, s.Sequences, s.Frames, s.MissingFrames,
		result.Elapsed.Round(time.Microsecond)))

	return result, nil
}

// FoldersOnly returns the sorted names of the subfolders of path.
func (b *Browser) FoldersOnly(path string) ([]string, error) {
	path = filepath.Clean(path)
	entries, err := b.list(path)
	if err != nil {
		return nil, err
	}

	folders := make([]string, 0)
	for _, e := range entries {
		if e.IsDir {
			folders = append(folders, e.Name)
		}
	}
	sort.Strings(folders)
	return folders, nil
}

// list runs the single enumeration of a call and applies entry filters.
func (b *Browser) list(path string) ([]Entry, error) {
	raw, err := b.lister.ListEntries(path)
	if err != nil {
		var pathErr *PathError
		if errors.As(err, &pathErr) {
			return nil, err
		}
		return nil, NewPathError("browse", path, err)
	}

	entries := make([]Entry, 0, len(raw))
	for _, e := range raw {
		if b.skip(e.Name) {
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (b *Browser) skip(name string) bool {
	if !b.showHidden && strings.HasPrefix(name, ".") {
		return true
	}
	for _, g := range b.ignore {
		if g.Match(name) {
			b.logger.LogDebug(fmt.Sprintf("ignoring %s", name))
			return true
		}
	}
	return false
}

func sortItems(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].name != items[j].name {
			return items[i].name < items[j].name
		}
		return items[i].kind < items[j].kind
	})
}
