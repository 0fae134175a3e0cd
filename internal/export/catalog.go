package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/pmezard/go-difflib/difflib"
	"gopkg.in/yaml.v3"

	"course-forge/internal/domain"
)

type Format string

const (
	FormatXML  Format = "xml"
	FormatCSV  Format = "csv"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

const brotliExt = ".br"

// FormatFor picks the catalog format from the file extension. A trailing
// ".br" marks the file as brotli compressed ("catalog.xml.br").
func FormatFor(path string) (Format, bool, error) {
	name := strings.ToLower(filepath.Base(path))
	compressed := false
	if strings.HasSuffix(name, brotliExt) {
		compressed = true
		name = strings.TrimSuffix(name, brotliExt)
	}

	switch filepath.Ext(name) {
	case ".xml":
		return FormatXML, compressed, nil
	case ".csv":
		return FormatCSV, compressed, nil
	case ".yaml", ".yml":
		return FormatYAML, compressed, nil
	case ".json":
		return FormatJSON, compressed, nil
	}
	return "", false, fmt.Errorf("export: unsupported catalog extension %q", filepath.Ext(name))
}

// Render encodes packages in the given format, uncompressed.
func Render(f Format, pkgs []domain.Package) ([]byte, error) {
	var buf bytes.Buffer
	switch f {
	case FormatXML:
		if err := WriteCatalogXML(&buf, pkgs); err != nil {
			return nil, err
		}
	case FormatCSV:
		if err := WriteCatalogCSV(&buf, pkgs); err != nil {
			return nil, fmt.Errorf("export: write csv: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(catalogDoc{Courses: pkgs}); err != nil {
			return nil, fmt.Errorf("export: marshal yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("export: marshal yaml: %w", err)
		}
	case FormatJSON:
		b, err := json.MarshalIndent(catalogDoc{Courses: pkgs}, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("export: marshal json: %w", err)
		}
		buf.Write(b)
		buf.WriteByte('\n')
	default:
		return nil, fmt.Errorf("export: unknown format %q", f)
	}
	return buf.Bytes(), nil
}

type catalogDoc struct {
	Courses []domain.Package `json:"courses" yaml:"courses"`
}

// WriteCatalogFile renders packages for outPath and writes them, compressing
// with brotli when the name ends in ".br". It returns the uncompressed
// rendering so callers can diff or log it.
func WriteCatalogFile(outPath string, pkgs []domain.Package) ([]byte, error) {
	f, compressed, err := FormatFor(outPath)
	if err != nil {
		return nil, err
	}
	rendered, err := Render(f, pkgs)
	if err != nil {
		return nil, err
	}

	data := rendered
	if compressed {
		if data, err = compress(rendered); err != nil {
			return nil, err
		}
	}

	if dir := filepath.Dir(outPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("export: ensure output dir: %w", err)
		}
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return nil, fmt.Errorf("export: write %s: %w", f, err)
	}
	return rendered, nil
}

// ReadCatalogFile returns the uncompressed contents of a catalog written by
// WriteCatalogFile.
func ReadCatalogFile(path string) ([]byte, error) {
	_, compressed, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !compressed {
		return data, nil
	}
	return decompress(data)
}

func compress(b []byte) ([]byte, error) {
	var buf bytes.Buffer
	bw := brotli.NewWriterLevel(&buf, brotli.BestCompression)
	if _, err := bw.Write(b); err != nil {
		return nil, fmt.Errorf("export: brotli write: %w", err)
	}
	if err := bw.Close(); err != nil {
		return nil, fmt.Errorf("export: brotli close: %w", err)
	}
	return buf.Bytes(), nil
}

func decompress(b []byte) ([]byte, error) {
	out, err := io.ReadAll(brotli.NewReader(bytes.NewReader(b)))
	if err != nil {
		return nil, fmt.Errorf("export: brotli read: %w", err)
	}
	return out, nil
}

// DiffCatalog returns a unified diff between the catalog currently at path
// and rendered. A missing file diffs against empty content; an empty string
// means no change.
func DiffCatalog(path string, rendered []byte) (string, error) {
	old, err := ReadCatalogFile(path)
	if err != nil && !os.IsNotExist(err) {
		return "", fmt.Errorf("export: read previous catalog: %w", err)
	}

	name := filepath.Base(path)
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(old)),
		B:        difflib.SplitLines(string(rendered)),
		FromFile: filepath.Join("previous", name),
		ToFile:   filepath.Join("generated", name),
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("export: diff %s: %w", name, err)
	}
	return text, nil
}

// buildCourseID derives a stable catalog id from the topic name.
// "GitHub Actions Mastery" -> "CRS+github-actions-mastery".
func buildCourseID(topic string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(topic)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		slug = "untitled"
	}
	return "CRS+" + slug
}
