package i18n

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"path"
)

// TranslationAdapter loads translations keyed by language.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves translations from memory.
type MapAdapter struct {
	Data map[string]map[string]any
}

// Load implements TranslationAdapter.
func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return map[string]map[string]any{}, nil
	}
	return a.Data, nil
}

// FileAdapter reads a single translation file.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter returns nil when parser is nil or path is empty.
func NewFileAdapter(parser Parser, path string) *FileAdapter {
	if parser == nil || path == "" {
		return nil
	}
	return &FileAdapter{parser: parser, path: path}
}

// Load implements TranslationAdapter.
func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	content, err := os.ReadFile(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return parseContent(ctx, a.parser, a.path, content)
}

// DirectoryAdapter reads every file in a directory the parser supports and
// merges them. Subdirectories are not visited.
type DirectoryAdapter struct {
	parser Parser
	path   string
	logger *slog.Logger
}

// NewDirectoryAdapter returns nil when parser is nil or path is empty.
func NewDirectoryAdapter(parser Parser, path string) *DirectoryAdapter {
	if parser == nil || path == "" {
		return nil
	}
	return &DirectoryAdapter{parser: parser, path: path, logger: discardLogger()}
}

// WithLogger sets the logger used to report files that were skipped.
func (a *DirectoryAdapter) WithLogger(logger *slog.Logger) *DirectoryAdapter {
	if a != nil && logger != nil {
		a.logger = logger
	}
	return a
}

// Load implements TranslationAdapter.
func (a *DirectoryAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	info, err := os.Stat(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToAccessDirectory, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrFailedToAccessDirectory, a.path)
	}

	fsys := os.DirFS(a.path)
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}
	return mergeFiles(ctx, fsys, ".", entries, a.parser, a.logger)
}

// EmbeddedFsAdapter reads translations from a directory of an fs.FS,
// usually an embed.FS.
type EmbeddedFsAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
	logger *slog.Logger
}

// NewEmbeddedFsAdapter returns nil when parser or fsys is nil, or dir is empty.
func NewEmbeddedFsAdapter(parser Parser, fsys fs.FS, dir string) *EmbeddedFsAdapter {
	if parser == nil || fsys == nil || dir == "" {
		return nil
	}
	return &EmbeddedFsAdapter{parser: parser, fsys: fsys, dir: dir, logger: discardLogger()}
}

// WithLogger sets the logger used to report files that were skipped.
func (a *EmbeddedFsAdapter) WithLogger(logger *slog.Logger) *EmbeddedFsAdapter {
	if a != nil && logger != nil {
		a.logger = logger
	}
	return a
}

// Load implements TranslationAdapter.
func (a *EmbeddedFsAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadEmbeddedDirectory, err)
	}
	return mergeFiles(ctx, a.fsys, a.dir, entries, a.parser, a.logger)
}

// mergeFiles parses the supported files among entries and merges them per
// language. Later files override keys of earlier ones. A broken file is
// logged and skipped; at least one file must load.
func mergeFiles(ctx context.Context, fsys fs.FS, dir string, entries []fs.DirEntry, parser Parser, logger *slog.Logger) (map[string]map[string]any, error) {
	merged := make(map[string]map[string]any)
	loaded := 0

	for _, entry := range entries {
		if entry.IsDir() || !parser.SupportsFileExtension(path.Ext(entry.Name())) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}

		name := path.Join(dir, entry.Name())
		content, err := fs.ReadFile(fsys, name)
		if err == nil {
			var langs map[string]map[string]any
			if langs, err = parseContent(ctx, parser, name, content); err == nil {
				for lang, keys := range langs {
					if merged[lang] == nil {
						merged[lang] = make(map[string]any, len(keys))
					}
					maps.Copy(merged[lang], keys)
				}
				loaded++
				continue
			}
		}
		logger.WarnContext(ctx, "skipping translation file", slog.String("file", name), slog.Any("error", err))
	}

	if loaded == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoTranslationFiles, dir)
	}
	return merged, nil
}

func parseContent(ctx context.Context, parser Parser, name string, content []byte) (map[string]map[string]any, error) {
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrFailedToParseFile, name)
	}
	langs, err := parser.Parse(ctx, string(content))
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, err)
	}
	return langs, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
