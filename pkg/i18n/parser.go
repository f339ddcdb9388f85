package i18n

import (
	"context"
	"fmt"
	"path"
	"strings"
)

// Parser decodes a translation document. The top level of a document is
// keyed by language; each language holds a (possibly nested) key tree.
type Parser interface {
	Parse(ctx context.Context, content string) (map[string]map[string]any, error)
	// SupportsFileExtension reports whether files with ext ("json" or
	// ".json") can be parsed.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile picks a parser by file extension, or returns nil.
func NewParserForFile(filename string) Parser {
	switch normalizeExt(path.Ext(filename)) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	}
	return nil
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// byLanguage checks that every top-level entry of a decoded document is a
// key tree.
func byLanguage(doc map[string]any) (map[string]map[string]any, error) {
	if len(doc) == 0 {
		return nil, fmt.Errorf("%w: document has no languages", ErrInvalidTranslations)
	}
	out := make(map[string]map[string]any, len(doc))
	for lang, keys := range doc {
		tree, ok := keys.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q maps to %T, want a key tree", ErrInvalidTranslations, lang, keys)
		}
		out[lang] = tree
	}
	return out, nil
}
