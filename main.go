package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"pbcat/internal/clipboard"
	"pbcat/internal/extract"
)

// Version info (injected via ldflags)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type options struct {
	verbose bool
	quiet   bool
	preview bool
	files   []string
}

// confirmPreview is swapped out in tests.
var confirmPreview = runPreview

// readStdin reads standard input as UTF-8 text.
func readStdin(stdin io.Reader) (string, error) {
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", &extract.IOError{Path: "-", Err: err}
	}
	if !utf8.Valid(data) {
		return "", &extract.IOError{Path: "-", Err: extract.ErrInvalidUTF8}
	}
	return string(data), nil
}

func run(opts options, ex *extract.Extractor, clip clipboard.Clipboard, stdin io.Reader, stderr io.Writer) error {
	if len(opts.files) == 0 {
		return errors.New("no files specified")
	}

	var contents []string
	for _, path := range opts.files {
		var content string
		var err error

		if path == "-" {
			if opts.verbose {
				fmt.Fprintln(stderr, "Reading from stdin...")
			}
			content, err = readStdin(stdin)
		} else {
			if opts.verbose {
				fmt.Fprintf(stderr, "Reading file: %s\n", path)
			}
			content, err = ex.Extract(path)
		}
		if err != nil {
			return err
		}
		contents = append(contents, content)
	}

	combined := strings.Join(contents, "\n")

	if opts.preview {
		copied, err := confirmPreview(combined)
		if err != nil {
			return err
		}
		if !copied {
			return errors.New("copy canceled")
		}
	}

	if err := clip.SetText(combined); err != nil {
		return err
	}

	if !opts.quiet {
		if len(opts.files) == 1 {
			source := opts.files[0]
			if source == "-" {
				source = "stdin"
			}
			fmt.Fprintf(stderr, "Copied %d bytes from %s to clipboard\n", len(combined), source)
		} else {
			fmt.Fprintf(stderr, "Copied %d bytes from %d files to clipboard\n", len(combined), len(opts.files))
		}
	}

	return nil
}

func main() {
	verbose := flag.Bool("v", false, "Verbose output")
	verboseLong := flag.Bool("verbose", false, "Verbose output")
	quiet := flag.Bool("q", false, "Suppress all output except errors")
	quietLong := flag.Bool("quiet", false, "Suppress all output except errors")
	preview := flag.Bool("p", false, "Preview extracted text before copying")
	previewLong := flag.Bool("preview", false, "Preview extracted text before copying")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Pbcat - Copy file contents to the clipboard\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  pbcat [options] <file>...\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  pbcat notes.txt           Copy a text file\n")
		fmt.Fprintf(os.Stderr, "  pbcat report.pdf          Copy PDF text (OCR fallback for scans)\n")
		fmt.Fprintf(os.Stderr, "  pbcat receipt.png         Copy text recognized in an image\n")
		fmt.Fprintf(os.Stderr, "  pbcat a.txt b.txt         Copy several files joined by newlines\n")
		fmt.Fprintf(os.Stderr, "  cat notes.txt | pbcat -   Copy from stdin\n")
		fmt.Fprintf(os.Stderr, "  pbcat -p report.pdf       Preview before copying\n")
	}
	flag.Parse()

	if *showVersion {
		fmt.Printf("pbcat %s (commit: %s, built: %s)\n", version, commit, date)
		os.Exit(0)
	}

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: no files specified")
		fmt.Fprintln(os.Stderr, "Try: pbcat -h")
		os.Exit(1)
	}

	opts := options{
		verbose: *verbose || *verboseLong,
		quiet:   *quiet || *quietLong,
		preview: *preview || *previewLong,
		files:   flag.Args(),
	}

	ex := extract.New(extract.Config{})
	if err := run(opts, ex, clipboard.System{}, os.Stdin, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
