// Package fs provides file-based output for content inventories.
package fs

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mrozanski/docinv"
)

// DefaultOutputPath returns the default CSV path for a landing page URL,
// e.g. output/openshift_ai_content_inventory.csv.
func DefaultOutputPath(landingURL string) string {
	return filepath.Join("output", docinv.ProductSlug(landingURL)+"_content_inventory.csv")
}

// Ensure Writer implements docinv.InventoryWriter at compile time.
var _ docinv.InventoryWriter = (*Writer)(nil)

// Writer writes content inventories as CSV files.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteInventory writes the fixed header plus rows to path, creating
// parent directories as needed.
func (w *Writer) WriteInventory(path string, rows [][]string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output directory %q: %w", dir, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(docinv.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write rows: %w", err)
	}

	return f.Close()
}
