// Package sequence detects numbered file sequences and models them.
//
// A sequence is a set of files in one directory that share a prefix and a
// suffix and differ only by a numeric index, for example foo.001.png through
// foo.006.png. The package works purely on names: it never touches the
// filesystem.
//
// # Pipeline
//
//	tokens := make([]sequence.Token, 0, len(names))
//	for _, name := range names {
//	    tokens = append(tokens, sequence.Tokenize(name))
//	}
//	seqs, leftovers := sequence.Builder{Policy: sequence.DefaultPolicy()}.Build(dir, tokens)
//
// Tokenize splits a name into prefix, numeric field and suffix. Compatible
// decides whether two tokens belong to the same family. Builder groups the
// tokens, resolves the padding rule of every family and finalizes immutable
// Sequence values. Tokens that do not end up in a sequence are returned as
// leftovers so the caller can report them as plain files.
//
// # Queries
//
// *Sequence implements Querier: first and last frame, duration, step,
// missing frames, printf-style and hash-style patterns and filename
// reconstruction for any frame in the set.
//
//	seq.StandardPattern()       // "foo.%03d.png"
//	seq.HashPattern()           // "foo.###.png"
//	seq.MissingFrames()         // [4 5]
//	seq.AbsoluteFirstFilename() // "/shots/foo.001.png"
package sequence
