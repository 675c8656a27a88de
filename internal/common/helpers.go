package common

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

const (
	// HardenedKeyStart is the index of the first hardened child (2^31).
	HardenedKeyStart = 0x80000000

	// RootPath is the path of the node a wallet was created from.
	RootPath = "m"
)

// ParseDerivationPath converts a path such as "m/44'/0'/0'/0/5" to child
// indices. Hardened segments are marked with ' or h/H.
// Example: ParseDerivationPath("m/0'/1") = [2147483648 1]
func ParseDerivationPath(path string) ([]uint32, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("empty path")
	}

	segments := strings.Split(path, "/")
	if segments[0] != "m" && segments[0] != "M" {
		return nil, fmt.Errorf("path must start with m")
	}

	indices := make([]uint32, 0, len(segments)-1)
	for _, seg := range segments[1:] {
		hardened := false
		if n := len(seg); n > 0 && (seg[n-1] == '\'' || seg[n-1] == 'h' || seg[n-1] == 'H') {
			hardened = true
			seg = seg[:n-1]
		}
		if seg == "" {
			return nil, fmt.Errorf("empty path segment in %q", path)
		}

		// Reject signs and whitespace that ParseUint would otherwise let through.
		for _, r := range seg {
			if r < '0' || r > '9' {
				return nil, fmt.Errorf("invalid path segment %q", seg)
			}
		}

		n, err := strconv.ParseUint(seg, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid path segment %q: %w", seg, err)
		}
		if n >= HardenedKeyStart {
			return nil, fmt.Errorf("path index %d out of range", n)
		}

		idx := uint32(n)
		if hardened {
			idx += HardenedKeyStart
		}
		indices = append(indices, idx)
	}

	return indices, nil
}

// FormatDerivationPath is the inverse of ParseDerivationPath. Hardened
// indices are written with an apostrophe.
func FormatDerivationPath(indices []uint32) string {
	var b strings.Builder
	b.WriteString(RootPath)
	for _, idx := range indices {
		b.WriteByte('/')
		if idx >= HardenedKeyStart {
			b.WriteString(strconv.FormatUint(uint64(idx-HardenedKeyStart), 10))
			b.WriteByte('\'')
			continue
		}
		b.WriteString(strconv.FormatUint(uint64(idx), 10))
	}
	return b.String()
}

// FormatFingerprint renders a key fingerprint as 8 lowercase hex digits.
func FormatFingerprint(fp uint32) string {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], fp)
	return fmt.Sprintf("%x", b[:])
}
