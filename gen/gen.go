// Package gen generates query objects, input objects and enums from a GraphQL schema.
package gen

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"text/template"

	"github.com/nasdf/gqlselect/schema"

	"github.com/vektah/gqlparser/v2/ast"
	"go.uber.org/zap"
)

var (
	//go:embed gen.go.tmpl
	fileSource   string
	fileTemplate = template.Must(template.New("gen.go").Parse(fileSource))
)

// Generate returns the formatted Go source for the given schema.
func Generate(cfg Config, s *ast.Schema) ([]byte, error) {
	model, err := buildModel(cfg, s)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := fileTemplate.Execute(&out, model); err != nil {
		return nil, err
	}
	src, err := format.Source(out.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated source: %w", err)
	}
	return src, nil
}

// Run loads the configured schema files and writes the generated source to the configured output.
func Run(ctx context.Context, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	s, err := schema.LoadFiles(cfg.Schema...)
	if err != nil {
		return err
	}
	src, err := Generate(cfg, s)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Output), 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	if err := os.WriteFile(cfg.Output, src, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", cfg.Output, err)
	}
	zap.L().Info("generated query objects",
		zap.String("package", cfg.Package),
		zap.String("output", cfg.Output),
		zap.Int("bytes", len(src)))
	return nil
}
