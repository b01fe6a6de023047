package source

import (
	"bytes"
	"path/filepath"
)

func hasBOM(content []byte) bool {
	return len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF
}

func hasCRLF(content []byte) bool {
	return bytes.Contains(content, []byte{'\r', '\n'})
}

func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, 64)
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i))
		}
	}
	return out
}

func toLineCol(lineIdx []uint32, off uint32) LineCol {
	// An empty index means the whole file is one line.
	if len(lineIdx) == 0 {
		return LineCol{Line: 1, Col: off + 1}
	}

	// Binary search: largest lineIdx[i] <= off.
	lo, hi := 0, len(lineIdx)-1
	for lo <= hi {
		mid := (lo + hi) >> 1
		if lineIdx[mid] <= off {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	line := hi // 0-based newline index before off

	if line < 0 {
		return LineCol{Line: 1, Col: off + 1}
	}

	start := lineIdx[line] + 1 // first byte after the newline
	return LineCol{Line: uint32(line + 2), Col: off - start + 1}
}

func normalizePath(p string) string {
	// Uniform shape for cross-platform diffs and map keys.
	return filepath.ToSlash(filepath.Clean(p))
}

// RelativePath returns path relative to base, or an error if not expressible.
func RelativePath(path, base string) (string, error) {
	return filepath.Rel(base, path)
}

// BaseName returns the last element of the path.
func BaseName(path string) string {
	return filepath.Base(path)
}
