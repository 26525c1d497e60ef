package contenthash

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// FilePrefix and FileSuffix bracket the hash in a snapshot file name
	FilePrefix = "geom-"
	FileSuffix = ".geom"

	anyWord = "[[:xdigit:]]{8}"
)

// HashPattern matches the text of v with unknown words matching any 8 hex
// digits.
func HashPattern(v Value) string {
	parts := make([]string, Words)
	for i, w := range v {
		if w == 0 {
			parts[i] = anyWord
			continue
		}
		parts[i] = fmt.Sprintf("%08x", w)
	}
	return strings.Join(parts, "-")
}

// FileName is the snapshot file name for v
func FileName(v Value) string {
	return FilePrefix + v.hex() + FileSuffix
}

// FilePattern matches the snapshot file names that may hold v
func FilePattern(v Value) string {
	return regexp.QuoteMeta(FilePrefix) + HashPattern(v) + regexp.QuoteMeta(FileSuffix) + "$"
}

// NamePattern matches geometry names carrying a hash equivalent to v
func NamePattern(prefix string, v Value) string {
	return "^" + regexp.QuoteMeta(prefix) + "-" + HashPattern(v)
}

// AlignedNamePattern matches geometry names carrying both hash and align
func AlignedNamePattern(prefix string, hash Value, align AlignmentID) string {
	return NamePattern(prefix, hash) + alignmentSep + HashPattern(align.Value)
}
