// pdfunspread - split double-page spread PDFs into single pages
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hiraoku/go-unspread/pkg/unspread"
)

var (
	inputPDF     string
	outputDir    string
	combine      bool
	noCombine    bool
	printVersion bool
	printHelp    bool
)

func init() {
	flag.StringVar(&inputPDF, "i", "", "path to input PDF")
	flag.StringVar(&inputPDF, "input-pdf", "", "path to input PDF")
	flag.StringVar(&outputDir, "o", "", "output directory for split PDFs")
	flag.StringVar(&outputDir, "output-dir", "", "output directory for split PDFs")
	flag.BoolVar(&combine, "c", true, "combine output PDFs into a single file")
	flag.BoolVar(&combine, "combine", true, "combine output PDFs into a single file")
	flag.BoolVar(&noCombine, "no-combine", false, "do not combine output PDFs")
	flag.BoolVar(&printVersion, "v", false, "print version information")
	flag.BoolVar(&printHelp, "h", false, "print usage information")
	flag.BoolVar(&printHelp, "help", false, "print usage information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "pdfunspread version 0.1.0\n")
		fmt.Fprintf(os.Stderr, "Usage: pdfunspread [options]\n\n")
		fmt.Fprintf(os.Stderr, "Splits a PDF with double-spread pages into individual pages.\n")
		fmt.Fprintf(os.Stderr, "If no input PDF is given, the first PDF in the current directory is used.\n")
		fmt.Fprintf(os.Stderr, "If no output directory is given, an 'out/' directory is created.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fmt.Fprintf(os.Stderr, "  -i, -input-pdf <path>   : path to input PDF\n")
		fmt.Fprintf(os.Stderr, "  -o, -output-dir <path>  : output directory for split PDFs\n")
		fmt.Fprintf(os.Stderr, "  -c, -combine            : combine output PDFs into a single file (default true)\n")
		fmt.Fprintf(os.Stderr, "  -no-combine             : do not combine output PDFs\n")
		fmt.Fprintf(os.Stderr, "  -v                      : print version information\n")
		fmt.Fprintf(os.Stderr, "  -h, -help               : print usage information\n")
	}
}

func main() {
	flag.Parse()

	if printVersion {
		fmt.Println("pdfunspread version 0.1.0")
		os.Exit(0)
	}

	if printHelp {
		flag.Usage()
		os.Exit(0)
	}

	input := inputPDF
	if input == "" {
		found, err := unspread.FindFirstPDF(".")
		if err != nil {
			fmt.Fprintln(os.Stderr, "No PDF found in the current directory.")
			os.Exit(1)
		}
		input = found
	}

	outDir := outputDir
	if outDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		outDir = filepath.Join(cwd, "out")
	}

	files, err := unspread.Split(input, outDir, combine && !noCombine)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Generated PDF files:")
	for _, file := range files {
		fmt.Println(file)
	}
}
