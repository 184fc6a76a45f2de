package sequence

import (
	"sort"
)

// DefaultMinLength is the smallest group that forms a sequence. A lone
// numbered file is reported as a plain file.
const DefaultMinLength = 2

// Policy holds the grouping thresholds of the builder.
type Policy struct {
	// MinLength is the minimum number of members for a family to become a
	// sequence. Values below 1 are treated as 1.
	MinLength int

	// StrictPadding splits every family by numeric width, so "a.1" and
	// "a.11" form two groups instead of one unpadded sequence.
	StrictPadding bool
}

// DefaultPolicy returns the inclusive grouping policy: families of two or
// more, mixed widths accepted when one padding rule reconstructs them all.
func DefaultPolicy() Policy {
	return Policy{
		MinLength:     DefaultMinLength,
		StrictPadding: false,
	}
}

// Builder groups tokens of one directory into sequences.
type Builder struct {
	Policy Policy
}

// Build groups tokens with the default policy and no directory.
func Build(tokens []Token) ([]*Sequence, []Token) {
	return Builder{Policy: DefaultPolicy()}.Build("", tokens)
}

// Build groups tokens into sequences detected in dir and returns the tokens
// that did not join any sequence. Sequences are ordered by prefix, suffix and
// padding; leftovers by name. Build never fails.
func (b Builder) Build(dir string, tokens []Token) ([]*Sequence, []Token) {
	minLength := b.Policy.MinLength
	if minLength < 1 {
		minLength = 1
	}

	var leftovers []Token
	families := make(map[Key]*family)
	var keys []Key

	for _, tok := range tokens {
		if !tok.HasNumber {
			leftovers = append(leftovers, tok)
			continue
		}
		key := tok.Key()
		fam, exists := families[key]
		if !exists {
			fam = &family{key: key}
			families[key] = fam
			keys = append(keys, key)
		}
		fam.add(tok)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Prefix != keys[j].Prefix {
			return keys[i].Prefix < keys[j].Prefix
		}
		return keys[i].Suffix < keys[j].Suffix
	})

	var seqs []*Sequence
	for _, key := range keys {
		fam := families[key]

		groups := []*family{fam}
		if b.Policy.StrictPadding {
			groups = fam.splitByWidth()
		} else if _, ok := fam.resolvePadding(); !ok {
			groups = fam.splitByWidth()
		}

		var found []*Sequence
		for _, g := range groups {
			if len(g.members) < minLength {
				leftovers = append(leftovers, g.members...)
				continue
			}
			padding, _ := g.resolvePadding()
			found = append(found, newSequence(dir, key, padding, uniqueFrames(g.members)))
		}
		sort.SliceStable(found, func(i, j int) bool {
			return found[i].padding < found[j].padding
		})
		seqs = append(seqs, found...)
	}

	sort.SliceStable(leftovers, func(i, j int) bool {
		return leftovers[i].Name < leftovers[j].Name
	})

	return seqs, leftovers
}

func uniqueFrames(members []Token) []int {
	frames := make([]int, 0, len(members))
	for _, m := range members {
		frames = append(frames, m.Value)
	}
	sort.Ints(frames)

	out := make([]int, 0, len(frames))
	for _, f := range frames {
		if len(out) > 0 && out[len(out)-1] == f {
			continue
		}
		out = append(out, f)
	}
	return out
}
