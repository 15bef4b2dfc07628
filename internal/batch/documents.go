package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/format-analyzer/internal/formats"
	"github.com/jonathan/format-analyzer/internal/types"
)

// DocumentExtensions lists the file types LoadDocuments picks up from a directory.
var DocumentExtensions = []string{".html", ".htm", ".txt", ".md"}

// ManifestExtensions mark a single source file as a document manifest.
var ManifestExtensions = []string{".json", ".yaml", ".yml"}

// manifest is the file form of a batch: the same shape as the batch request body.
type manifest struct {
	Documents []types.Document `json:"documents" yaml:"documents"`
}

// LoadDocuments reads documents from a directory, a glob pattern, a single
// file or a manifest. Each document's ID is its file name without extension.
// Files are returned sorted by path. A manifest is a JSON or YAML file with a
// documents list; its entries may carry an ID, a title and a current format.
func LoadDocuments(source string) ([]types.Document, error) {
	if info, err := os.Stat(source); err == nil && !info.IsDir() && hasExtension(source, ManifestExtensions) {
		return loadManifest(source)
	}

	paths, err := resolvePaths(source)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no documents found in %s", source)
	}

	docs := make([]types.Document, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read document %s: %w", path, err)
		}
		base := filepath.Base(path)
		docs = append(docs, types.Document{
			ID:      strings.TrimSuffix(base, filepath.Ext(base)),
			Content: string(data),
		})
	}
	return docs, nil
}

func resolvePaths(source string) ([]string, error) {
	info, err := os.Stat(source)
	if err == nil && !info.IsDir() {
		return []string{source}, nil
	}
	if err == nil {
		entries, err := os.ReadDir(source)
		if err != nil {
			return nil, fmt.Errorf("failed to read directory %s: %w", source, err)
		}
		var paths []string
		for _, e := range entries {
			if e.IsDir() || !hasDocumentExtension(e.Name()) {
				continue
			}
			paths = append(paths, filepath.Join(source, e.Name()))
		}
		sort.Strings(paths)
		return paths, nil
	}

	paths, globErr := filepath.Glob(source)
	if globErr != nil {
		return nil, fmt.Errorf("invalid document pattern %s: %w", source, globErr)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("failed to read documents: %w", err)
	}
	sort.Strings(paths)
	return paths, nil
}

func loadManifest(path string) ([]types.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	if len(m.Documents) == 0 {
		return nil, fmt.Errorf("no documents found in %s", path)
	}
	for i, doc := range m.Documents {
		if doc.Format != "" && !formats.IsValid(doc.Format) {
			return nil, fmt.Errorf("manifest %s: document %d: %w", path, i, &formats.UnknownFormatError{Slug: doc.Format})
		}
	}
	return m.Documents, nil
}

func hasDocumentExtension(name string) bool {
	return hasExtension(name, DocumentExtensions)
}

func hasExtension(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, want := range exts {
		if ext == want {
			return true
		}
	}
	return false
}
