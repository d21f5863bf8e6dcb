package mock

import "github.com/mrozanski/docinv"

var _ docinv.InventoryWriter = (*InventoryWriter)(nil)

// InventoryWriter is a mock implementation of docinv.InventoryWriter.
type InventoryWriter struct {
	WriteInventoryFn func(path string, rows [][]string) error
}

func (w *InventoryWriter) WriteInventory(path string, rows [][]string) error {
	return w.WriteInventoryFn(path, rows)
}
