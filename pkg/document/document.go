// Package document provides the mutable text buffer the apply engine
// works against. A Document is opened from disk, edited in memory at
// most once per fix, and committed back atomically with backup and
// concurrent-modification protection.
package document

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/refix/pkg/edit"
	"github.com/yaklabco/refix/pkg/fsutil"
	"github.com/yaklabco/refix/pkg/langdetect"
	"github.com/yaklabco/refix/pkg/match"
)

// Sentinel errors for categorization via errors.Is.
var (
	// ErrBinaryFile indicates the target file holds binary content.
	ErrBinaryFile = errors.New("binary file")

	// ErrLineOutOfRange indicates a line index outside the document.
	ErrLineOutOfRange = errors.New("line out of range")

	// ErrConcurrentModification indicates the file changed on disk
	// between open and commit.
	ErrConcurrentModification = errors.New("file modified concurrently")
)

// Document is an in-memory view of one file. It implements match.Source.
// A Document is not safe for concurrent use; fixes for the same file are
// applied strictly sequentially.
type Document struct {
	relPath  string
	absPath  string
	original string
	text     string
	lines    []string
	info     *fsutil.FileInfo
	language string
	modified bool
}

// Compile-time interface check.
var _ match.Source = (*Document)(nil)

// Open reads the file at relPath under workingDir into a Document.
// Binary files are refused.
func Open(ctx context.Context, workingDir, relPath string) (*Document, error) {
	absPath := relPath
	if !filepath.IsAbs(relPath) && workingDir != "" {
		absPath = filepath.Join(workingDir, relPath)
	}

	content, info, err := fsutil.ReadFile(ctx, absPath)
	if err != nil {
		return nil, err
	}
	if langdetect.IsBinary(content) {
		return nil, fmt.Errorf("%w: %s", ErrBinaryFile, relPath)
	}

	text := string(content)
	return &Document{
		relPath:  relPath,
		absPath:  absPath,
		original: text,
		text:     text,
		lines:    strings.Split(text, "\n"),
		info:     info,
		language: langdetect.Language(filepath.Base(relPath), content),
	}, nil
}

// Path returns the document-relative path the Document was opened with.
func (d *Document) Path() string { return d.relPath }

// Language returns the detected language of the file.
func (d *Document) Language() string { return d.language }

// Text implements match.Source.
func (d *Document) Text() string { return d.text }

// LineCount implements match.Source.
func (d *Document) LineCount() int { return len(d.lines) }

// Line implements match.Source. The internal line slice keeps the "\r"
// of CRLF terminators so offset math stays byte-accurate; it is stripped
// here so matching sees the same lines regardless of line-ending style.
func (d *Document) Line(i int) string { return strings.TrimSuffix(d.lines[i], "\r") }

// Modified reports whether any replacement has been applied in memory.
func (d *Document) Modified() bool { return d.modified }

// OriginalText returns the content as read from disk, for diffing.
func (d *Document) OriginalText() string { return d.original }

// offsetAt converts a 0-based line/column position to a byte offset.
func (d *Document) offsetAt(line, col int) int {
	offset := 0
	for i := 0; i < line; i++ {
		offset += len(d.lines[i]) + 1
	}
	return offset + col
}

// Replace substitutes the text covered by r with replacement. The range
// must lie within the document.
func (d *Document) Replace(r match.LineRange, replacement string) error {
	if r.StartLine < 0 || r.EndLine >= len(d.lines) || r.StartLine > r.EndLine {
		return fmt.Errorf("%w: lines %d-%d of %d", ErrLineOutOfRange, r.StartLine, r.EndLine, len(d.lines))
	}

	e := edit.TextEdit{
		StartOffset: d.offsetAt(r.StartLine, r.StartCol),
		EndOffset:   d.offsetAt(r.EndLine, r.EndCol),
		NewText:     replacement,
	}
	if err := e.Validate(len(d.text)); err != nil {
		return err
	}

	d.text = edit.Apply(d.text, e)
	d.lines = strings.Split(d.text, "\n")
	d.modified = true
	return nil
}

// ReplaceLines substitutes the whole 1-based inclusive line range
// [startLine, endLine] with replacement. Used by the line-range-only
// fallback when a fix carries no expected snippet.
func (d *Document) ReplaceLines(startLine, endLine int, replacement string) error {
	if startLine < 1 || endLine > len(d.lines) || startLine > endLine {
		return fmt.Errorf("%w: lines %d-%d of %d", ErrLineOutOfRange, startLine, endLine, len(d.lines))
	}
	// EndCol excludes a CRLF terminator's "\r" so the last replaced
	// line keeps its original line ending.
	return d.Replace(match.LineRange{
		StartLine: startLine - 1,
		StartCol:  0,
		EndLine:   endLine - 1,
		EndCol:    len(d.Line(endLine - 1)),
	}, replacement)
}

// CommitResult describes what a Commit did.
type CommitResult struct {
	// Written is true if the file was written to disk.
	Written bool

	// BackupCreated is true if a sidecar backup was created.
	BackupCreated bool
}

// Commit writes the in-memory content back to disk atomically. Before
// writing it re-checks the on-disk state captured at Open and refuses to
// overwrite a file that changed underneath the engine. Committing an
// unmodified document is a no-op.
func (d *Document) Commit(ctx context.Context, backup fsutil.BackupConfig) (CommitResult, error) {
	if !d.modified {
		return CommitResult{}, nil
	}

	externallyModified, err := fsutil.CheckModified(ctx, d.info)
	if err != nil {
		return CommitResult{}, fmt.Errorf("check for concurrent modification: %w", err)
	}
	if externallyModified {
		return CommitResult{}, fmt.Errorf("%w: %s", ErrConcurrentModification, d.relPath)
	}

	result := CommitResult{}
	created, err := fsutil.CreateBackup(ctx, d.absPath, backup)
	if err != nil {
		return result, fmt.Errorf("create backup: %w", err)
	}
	result.BackupCreated = created

	if err := fsutil.WriteAtomic(ctx, d.absPath, []byte(d.text), d.info.Mode); err != nil {
		return result, fmt.Errorf("write %s: %w", d.relPath, err)
	}
	result.Written = true
	d.modified = false
	return result, nil
}
