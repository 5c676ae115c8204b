package handler

import (
	"log"
	"strings"
	"tracker/internal/service"
)

type Importer interface {
	ImportCSV(filePath string) (*service.ImportProgress, error)
}

type ImportHandler struct {
	importService Importer
	console       *Console
}

func NewImportHandler(importService Importer, console *Console) *ImportHandler {
	return &ImportHandler{importService: importService, console: console}
}

// ImportCSV asks for a CSV path and imports it.
func (h *ImportHandler) ImportCSV() error {
	h.console.Printf("Enter path of the CSV file to import: ")
	filePath, err := h.console.ReadLine()
	if err != nil {
		return err
	}
	filePath = strings.TrimSpace(filePath)
	if filePath == "" {
		h.console.Printf("No file given!\n")
		return nil
	}

	h.Import(filePath)
	return nil
}

// Import runs one import and prints its summary.
func (h *ImportHandler) Import(filePath string) {
	progress, err := h.importService.ImportCSV(filePath)
	if err != nil {
		log.Printf("Error importing file %s: %v", filePath, err)
		h.console.Printf("Error: Unable to import '%s'!\n", filePath)
		return
	}

	h.console.Printf("Imported %d of %d students from '%s'", progress.Processed, progress.TotalRecords, progress.FileName)
	if progress.Skipped > 0 {
		h.console.Printf(" (%d skipped, see log)", progress.Skipped)
	}
	h.console.Printf("!\n")
}
