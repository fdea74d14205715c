package unspread

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoPDF is returned by FindFirstPDF when the directory contains no
// PDF file.
var ErrNoPDF = errors.New("no PDF file found")

// FindFirstPDF returns the first file in dir whose name ends in .pdf
// (case-insensitive). The scan is non-recursive and entries are
// checked in lexicographic order.
func FindFirstPDF(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(entry.Name()), ".pdf") {
			return filepath.Join(dir, entry.Name()), nil
		}
	}

	return "", ErrNoPDF
}
