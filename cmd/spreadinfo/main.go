// spreadinfo - report page dimensions and likely double-page spreads
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hiraoku/go-unspread/pkg/unspread"
)

var (
	printVersion = flag.Bool("v", false, "print version information")
	printHelp    = flag.Bool("h", false, "print usage information")
)

func usage() {
	fmt.Fprintf(os.Stderr, "spreadinfo version 0.1.0\n")
	fmt.Fprintf(os.Stderr, "Usage: spreadinfo [options] <PDF-file>\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *printVersion {
		fmt.Println("spreadinfo version 0.1.0")
		os.Exit(0)
	}

	if *printHelp {
		usage()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) < 1 {
		usage()
		os.Exit(1)
	}

	doc, err := unspread.Open(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer doc.Close()

	fmt.Printf("Pages: %d\n", doc.NumPages())

	spreads := 0
	for pageNum := 1; pageNum <= doc.NumPages(); pageNum++ {
		box, err := doc.PageBox(pageNum)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading page %d: %v\n", pageNum, err)
			os.Exit(1)
		}

		marker := ""
		if box.Width() > box.Height() {
			marker = " (likely spread)"
			spreads++
		}
		fmt.Printf("Page %d: %.2f x %.2f pts%s\n", pageNum, box.Width(), box.Height(), marker)
	}

	fmt.Printf("Likely spreads: %d of %d\n", spreads, doc.NumPages())
}
