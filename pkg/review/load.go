package review

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ErrNoFixBlock indicates a Markdown review with no fenced fix block.
var ErrNoFixBlock = errors.New("no fenced json fix block found")

// fenceLanguages are the info strings accepted on a fenced block that
// carries the machine-readable fix list.
var fenceLanguages = map[string]bool{
	"json":  true,
	"refix": true,
}

// Load reads a review file from disk. Markdown documents have their
// embedded fenced fix block extracted; everything else is parsed as
// plain JSON.
func Load(path string) (*Review, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read review %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return ParseMarkdown(data)
	default:
		return Parse(data)
	}
}

// rawReview mirrors Review but defers fix decoding so per-fix key
// presence can be checked before the struct swallows missing fields.
type rawReview struct {
	Findings []Finding         `json:"findings"`
	Fixes    []json.RawMessage `json:"fixes"`
}

// Parse decodes and validates a JSON review. Unknown fields are
// rejected, and every fix must spell out expectedOriginalSnippet,
// explicitly null when it has no content anchor. Fixes without an id
// are assigned one.
func Parse(data []byte) (*Review, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var raw rawReview
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidReview, err)
	}

	review := &Review{
		Findings: raw.Findings,
		Fixes:    make([]Fix, 0, len(raw.Fixes)),
	}
	for i, msg := range raw.Fixes {
		fix, err := parseFix(msg)
		if err != nil {
			return nil, fmt.Errorf("%w: fix %d: %v", ErrInvalidReview, i, err)
		}
		if fix.ID == "" {
			fix.ID = uuid.NewString()
		}
		review.Fixes = append(review.Fixes, *fix)
	}

	if err := review.Validate(); err != nil {
		return nil, err
	}
	return review, nil
}

func parseFix(msg json.RawMessage) (*Fix, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(msg, &keys); err != nil {
		return nil, err
	}
	if _, ok := keys["expectedOriginalSnippet"]; !ok {
		return nil, errors.New("expectedOriginalSnippet must be present (use null for no anchor)")
	}

	dec := json.NewDecoder(bytes.NewReader(msg))
	dec.DisallowUnknownFields()

	var fix Fix
	if err := dec.Decode(&fix); err != nil {
		return nil, err
	}
	return &fix, nil
}

// ParseMarkdown extracts the first fenced json or refix block from a
// Markdown review document and parses it as a JSON review.
func ParseMarkdown(data []byte) (*Review, error) {
	doc := goldmark.New().Parser().Parse(text.NewReader(data))

	var block []byte
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || block != nil {
			return ast.WalkContinue, nil
		}
		fenced, ok := n.(*ast.FencedCodeBlock)
		if !ok || !fenceLanguages[string(fenced.Language(data))] {
			return ast.WalkContinue, nil
		}

		var buf bytes.Buffer
		lines := fenced.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			buf.Write(seg.Value(data))
		}
		block = buf.Bytes()
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk markdown: %w", err)
	}
	if block == nil {
		return nil, ErrNoFixBlock
	}
	return Parse(block)
}
