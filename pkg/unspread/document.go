package unspread

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// Document represents an opened source PDF
type Document struct {
	path string
	ctx  *model.Context
}

// Open opens and parses a PDF file
func Open(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return &Document{path: path, ctx: ctx}, nil
}

// NumPages returns the number of pages in the document
func (d *Document) NumPages() int {
	if d.ctx == nil {
		return 0
	}
	return d.ctx.PageCount
}

// Path returns the path the document was opened from
func (d *Document) Path() string {
	return d.path
}

// PageBox returns the media box of the given page (1-based).
// Falls back to the crop box when no media box is present.
func (d *Document) PageBox(pageNum int) (*types.Rectangle, error) {
	if pageNum < 1 || pageNum > d.NumPages() {
		return nil, fmt.Errorf("page %d out of range", pageNum)
	}

	_, _, inh, err := d.ctx.PageDict(pageNum, false)
	if err != nil {
		return nil, err
	}

	box := inh.MediaBox
	if box == nil {
		box = inh.CropBox
	}
	if box == nil {
		return nil, fmt.Errorf("page %d has no media box", pageNum)
	}
	return box, nil
}

// Close releases the document
func (d *Document) Close() error {
	d.ctx = nil
	return nil
}
