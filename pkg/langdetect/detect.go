// Package langdetect identifies the language of patched files and guards
// against patching binary content. Detection uses go-enry, which
// combines filename, extension, shebang, and content classification.
package langdetect

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// langText is the fallback for undetectable content.
const langText = "text"

// Language returns a lowercase language name for the given file, or
// "text" when detection fails. The filename usually decides; content is
// consulted for ambiguous extensions and extensionless files.
func Language(filename string, content []byte) string {
	lang := enry.GetLanguage(filename, content)
	if lang == "" || lang == enry.OtherLanguage {
		return langText
	}
	return strings.ToLower(lang)
}

// IsBinary reports whether content looks like binary data. Fixes target
// text documents only; a binary file is refused before any matching runs.
func IsBinary(content []byte) bool {
	return enry.IsBinary(content)
}
