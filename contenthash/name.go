package contenthash

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultPrefix starts the name of every hashed geometry
const DefaultPrefix = "ND280Geometry"

// alignmentSep separates the geometry hash from the alignment hash
const alignmentSep = ":"

// ParseHash reads five words from the start of s. Each of the first four
// words must be exactly 8 characters followed by a dash, and the last must
// have at least 8 characters. Anything after the last word is ignored.
func ParseHash(s string) (Value, error) {
	var v Value
	rest := s
	for i := 0; i < Words; i++ {
		if i < Words-1 {
			if strings.Index(rest, "-") != wordChars {
				return Value{}, fmt.Errorf("%w: '-' misplaced in %q", ErrHashFormat, s)
			}
		} else if len(rest) < wordChars {
			return Value{}, fmt.Errorf("%w: %q is too short", ErrHashFormat, s)
		}
		w, err := strconv.ParseUint(rest[:wordChars], 16, 32)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q: %v", ErrHashFormat, rest[:wordChars], err)
		}
		v[i] = uint32(w)
		if i < Words-1 {
			rest = rest[wordChars+1:]
		}
	}
	return v, nil
}

// FormatName returns prefix followed by every word of hash
func FormatName(prefix string, hash Value) string {
	return prefix + "-" + hash.hex()
}

// alignmentOffset is the index of the ':' that starts the alignment part
func alignmentOffset(prefix string) int {
	return len(prefix) + 1 + TextLength
}

// HashFromName extracts the hash from a name produced by FormatName or
// SetHashInName.
func HashFromName(prefix, name string) (Value, error) {
	if !strings.HasPrefix(name, prefix+"-") {
		return Value{}, fmt.Errorf("%w: %q does not start with %s-", ErrNameFormat, name, prefix)
	}
	if len(name) < alignmentOffset(prefix) {
		return Value{}, fmt.Errorf("%w: %q is too short", ErrNameFormat, name)
	}
	return ParseHash(name[len(prefix)+1:])
}

// SetHashInName replaces the hash part of name, keeping any alignment part.
// A name without the prefix is replaced outright.
func SetHashInName(prefix, name string, hash Value) string {
	tail := ""
	if strings.HasPrefix(name, prefix+"-") {
		if i := strings.Index(name, alignmentSep); i >= 0 {
			tail = name[i:]
		}
	}
	return FormatName(prefix, hash) + tail
}

// SetAlignmentInName records aid after the hash part of name. An invalid
// aid removes any alignment part. The name must already carry a hash.
func SetAlignmentInName(prefix, name string, aid AlignmentID) (string, error) {
	if !strings.HasPrefix(name, prefix+"-") {
		return name, fmt.Errorf("%w: cannot save alignment in %q", ErrNameFormat, name)
	}
	offset := alignmentOffset(prefix)
	if len(name) < offset {
		return name, fmt.Errorf("%w: no hash saved in %q", ErrNameFormat, name)
	}

	sep := strings.Index(name, alignmentSep)
	if !aid.Valid() {
		if sep >= 0 {
			name = name[:sep]
		}
		return name, nil
	}

	part := alignmentSep + aid.hex()
	switch {
	case sep == offset:
		return name[:sep] + part, nil
	case sep < 0:
		return name + part, nil
	}
	return name, fmt.Errorf("%w: alignment separator at %d in %q", ErrNameFormat, sep, name)
}

// AlignmentFromName extracts the alignment written by SetAlignmentInName
func AlignmentFromName(prefix, name string) (AlignmentID, error) {
	if !strings.HasPrefix(name, prefix+"-") {
		return AlignmentID{}, fmt.Errorf("%w: %q does not start with %s-", ErrNameFormat, name, prefix)
	}
	offset := alignmentOffset(prefix)
	if strings.Index(name, alignmentSep) != offset {
		return AlignmentID{}, fmt.Errorf("%w: no alignment in %q", ErrNameFormat, name)
	}
	if len(name) < offset+1+TextLength {
		return AlignmentID{}, fmt.Errorf("%w: alignment in %q is too short", ErrNameFormat, name)
	}
	v, err := ParseHash(name[offset+1:])
	if err != nil {
		return AlignmentID{}, err
	}
	return AlignmentID{Value: v}, nil
}

// HashFromFileName reads the hash out of a snapshot file name such as
// geom-<hash>.geom
func HashFromFileName(name string) (Value, error) {
	i := strings.Index(name, FilePrefix)
	if i < 0 || !strings.HasSuffix(name, FileSuffix) {
		return Value{}, fmt.Errorf("%w: %q is not a snapshot file name", ErrNameFormat, name)
	}
	return ParseHash(name[i+len(FilePrefix):])
}
