package unspread

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// HalfRects splits a page box into its left and right halves.
// The halves partition the box exactly: no overlap, equal heights,
// widths summing to the original width. Boxes whose origin is not
// (0,0) are split relative to their lower-left corner.
func HalfRects(box *types.Rectangle) (left, right *types.Rectangle) {
	mid := box.LL.X + box.Width()/2
	left = types.NewRectangle(box.LL.X, box.LL.Y, mid, box.UR.Y)
	right = types.NewRectangle(mid, box.LL.Y, box.UR.X, box.UR.Y)
	return left, right
}

// Split crops every page of the PDF at inputPath into left and right
// halves and writes each half as a single-page PDF into outputDir,
// named {baseName}_{N}.pdf with N counting up from 1 (left before
// right). When combine is true the halves are also merged, in page
// number order, into {baseName}_combined.pdf.
//
// The returned paths list all split files in generation order, with
// the combined file last when requested. Any failure aborts the whole
// operation.
func Split(inputPath, outputDir string, combine bool) ([]string, error) {
	if _, err := os.Stat(inputPath); err != nil {
		return nil, fmt.Errorf("input PDF file not found: %s: %w", inputPath, err)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	baseName := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))

	doc, err := Open(inputPath)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	var generated []string
	counter := 1

	for pageNum := 1; pageNum <= doc.NumPages(); pageNum++ {
		box, err := doc.PageBox(pageNum)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", pageNum, err)
		}

		leftRect, rightRect := HalfRects(box)

		leftPath := filepath.Join(outputDir, fmt.Sprintf("%s_%d.pdf", baseName, counter))
		rightPath := filepath.Join(outputDir, fmt.Sprintf("%s_%d.pdf", baseName, counter+1))

		if err := writeHalf(doc.ctx, pageNum, leftRect, leftPath); err != nil {
			return nil, fmt.Errorf("page %d left half: %w", pageNum, err)
		}
		if err := writeHalf(doc.ctx, pageNum, rightRect, rightPath); err != nil {
			return nil, fmt.Errorf("page %d right half: %w", pageNum, err)
		}

		generated = append(generated, leftPath, rightPath)
		counter += 2
	}

	if combine {
		combinedPath := filepath.Join(outputDir, baseName+"_combined.pdf")
		if err := Combine(generated, combinedPath); err != nil {
			return nil, err
		}
		generated = append(generated, combinedPath)
	}

	return generated, nil
}

// writeHalf extracts a single page from src, restricts it to clip and
// writes the result to outPath as a new single-page document sized to
// the clip, with the selected region moved to the page origin.
func writeHalf(src *model.Context, pageNum int, clip *types.Rectangle, outPath string) error {
	// Content is read from the source context: extraction rewrites the
	// stream's filter pipeline, which breaks decoding of plain streams.
	srcDict, _, _, err := src.PageDict(pageNum, false)
	if err != nil {
		return err
	}
	content, err := src.PageContent(srcDict, pageNum)
	if err != nil && !errors.Is(err, model.ErrNoContent) {
		return err
	}

	ctxPage, err := pdfcpu.ExtractPages(src, []int{pageNum}, false)
	if err != nil {
		return err
	}
	if err := ctxPage.EnsurePageCount(); err != nil {
		return err
	}

	pageDict, _, inh, err := ctxPage.PageDict(1, false)
	if err != nil {
		return err
	}
	if pageDict == nil {
		return fmt.Errorf("extracting page %d failed", pageNum)
	}

	w := clip.Width()
	h := clip.Height()
	newBox := types.RectForWidthAndHeight(0, 0, w, h)
	pageDict["MediaBox"] = newBox.Array()
	pageDict["CropBox"] = newBox.Array()

	// Rotation is baked into the content below, so drop the page attribute.
	pageDict.Delete("Rotate")

	var buf bytes.Buffer
	buf.WriteString("q ")
	if inh.Rotate != 0 {
		baseBox := inh.MediaBox
		if baseBox == nil {
			baseBox = clip
		}
		buf.Write(model.ContentBytesForPageRotation(inh.Rotate, baseBox.Width(), baseBox.Height()))
	}
	fmt.Fprintf(&buf, "1 0 0 1 %.5f %.5f cm ", -clip.LL.X, -clip.LL.Y)
	fmt.Fprintf(&buf, "%.5f %.5f %.5f %.5f re W n ", clip.LL.X, clip.LL.Y, w, h)
	buf.Write(content)
	buf.WriteString(" Q ")

	streamDict, err := ctxPage.NewStreamDictForBuf(buf.Bytes())
	if err != nil {
		return err
	}
	if err := streamDict.Encode(); err != nil {
		return err
	}

	indRef, err := ctxPage.IndRefForNewObject(*streamDict)
	if err != nil {
		return err
	}
	pageDict["Contents"] = *indRef

	return api.WriteContextFile(ctxPage, outPath)
}

// Combine merges the given PDF files, sorted ascending by the page
// number embedded in their filenames, into a single document at
// outPath. The sort is stable, and files without a trailing page
// number sort last.
func Combine(paths []string, outPath string) error {
	sorted := make([]string, len(paths))
	copy(sorted, paths)
	sort.SliceStable(sorted, func(i, j int) bool {
		return PageNumber(sorted[i]) < PageNumber(sorted[j])
	})

	conf := model.NewDefaultConfiguration()
	if err := api.MergeCreateFile(sorted, outPath, false, conf); err != nil {
		return fmt.Errorf("combining into %s: %w", outPath, err)
	}
	return nil
}
