package sequence

// Compatible reports whether a and b belong to the same sequence family:
// both carry a number and they share prefix and suffix. Widths are not
// compared; the builder decides how mixed widths are padded.
func Compatible(a, b Token) bool {
	return a.HasNumber && b.HasNumber && a.Prefix == b.Prefix && a.Suffix == b.Suffix
}

// family accumulates the members of one (prefix, suffix) group while a
// Build call runs. It never escapes the builder.
type family struct {
	key     Key
	members []Token
}

func (f *family) add(t Token) {
	f.members = append(f.members, t)
}

// resolvePadding picks the padding width that reconstructs every member of
// the family. ok is false when no single width can, e.g. "01" next to "002".
//
// Members written with leading zeros pin the width exactly; the others only
// require a width no larger than their own.
func (f *family) resolvePadding() (padding int, ok bool) {
	if len(f.members) == 0 {
		return Unpadded, true
	}

	common := f.members[0].Width
	same := true
	for _, m := range f.members[1:] {
		if m.Width != common {
			same = false
			break
		}
	}
	if same {
		return common, true
	}

	pinned := 0
	for _, m := range f.members {
		if !m.Padded() {
			continue
		}
		if pinned != 0 && m.Width != pinned {
			return 0, false
		}
		pinned = m.Width
	}
	if pinned == 0 {
		return Unpadded, true
	}
	for _, m := range f.members {
		if m.Width < pinned {
			return 0, false
		}
	}
	return pinned, true
}

// splitByWidth breaks a family whose widths cannot share a padding into one
// family per width. Members of equal width always reconstruct with that width.
func (f *family) splitByWidth() []*family {
	byWidth := make(map[int]*family)
	var order []int
	for _, m := range f.members {
		sub, exists := byWidth[m.Width]
		if !exists {
			sub = &family{key: f.key}
			byWidth[m.Width] = sub
			order = append(order, m.Width)
		}
		sub.add(m)
	}

	subs := make([]*family, 0, len(order))
	for _, w := range order {
		subs = append(subs, byWidth[w])
	}
	return subs
}
