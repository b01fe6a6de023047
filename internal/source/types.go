package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota
	// FileHasBOM indicates the file starts with a UTF-8 BOM. Content stays verbatim.
	FileHasBOM
	// FileHasCRLF indicates the file contains CRLF line endings. Content stays verbatim.
	FileHasCRLF
)

// File captures metadata and content for a single source file.
// Content is exactly what was read from disk; the rewrite pass depends on that.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
