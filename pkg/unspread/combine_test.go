package unspread

import (
	"fmt"
	"math"
	"path/filepath"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// TestCombineOrdersByPageNumber tests that the combined document is
// ordered by extracted page number regardless of input order. Each
// input page has a distinct width so the output order is observable.
func TestCombineOrdersByPageNumber(t *testing.T) {
	dir := t.TempDir()

	widths := map[int]float64{1: 110, 2: 120, 3: 130}
	var shuffled []string
	for _, n := range []int{3, 1, 2} {
		path := filepath.Join(dir, fmt.Sprintf("scan_%d.pdf", n))
		writeSpreadPDF(t, path, widths[n], 100, 1)
		shuffled = append(shuffled, path)
	}

	combined := filepath.Join(dir, "combined.pdf")
	if err := Combine(shuffled, combined); err != nil {
		t.Fatalf("Combine failed: %v", err)
	}

	dims, err := api.PageDimsFile(combined)
	if err != nil {
		t.Fatalf("Reading combined dimensions: %v", err)
	}
	if len(dims) != 3 {
		t.Fatalf("Expected 3 pages, got %d", len(dims))
	}

	for i, wantWidth := range []float64{110, 120, 130} {
		if math.Abs(dims[i].Width-wantWidth) > 0.01 {
			t.Errorf("Page %d: expected width %f, got %f", i+1, wantWidth, dims[i].Width)
		}
	}
}

// TestCombineUnnumberedLast tests that files without a trailing page
// number are appended after every numbered file.
func TestCombineUnnumberedLast(t *testing.T) {
	dir := t.TempDir()

	numbered := filepath.Join(dir, "scan_1.pdf")
	writeSpreadPDF(t, numbered, 110, 100, 1)
	unnumbered := filepath.Join(dir, "cover.pdf")
	writeSpreadPDF(t, unnumbered, 120, 100, 1)

	combined := filepath.Join(dir, "all.pdf")
	if err := Combine([]string{unnumbered, numbered}, combined); err != nil {
		t.Fatalf("Combine failed: %v", err)
	}

	dims, err := api.PageDimsFile(combined)
	if err != nil {
		t.Fatalf("Reading combined dimensions: %v", err)
	}
	if len(dims) != 2 {
		t.Fatalf("Expected 2 pages, got %d", len(dims))
	}
	if math.Abs(dims[0].Width-110) > 0.01 {
		t.Errorf("Expected the numbered file first (width 110), got %f", dims[0].Width)
	}
}
