package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/user/imf_analyzer_go/internal/config"
	"github.com/user/imf_analyzer_go/internal/log"
)

const version = "1.0-" + runtime.GOOS + "/" + runtime.GOARCH

func main() {
	outFile := flag.String("o", "", "Output PNG path (default: input path with its extension replaced by .png)")
	pdfFile := flag.String("pdf", "", "Also write a PDF summary report to this path")
	cfgFile := flag.String("config", "", "Optional YAML options file for plot layout")
	debug := flag.Bool("debug", false, "Turn on debugging output")
	showVersion := flag.Bool("version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: %s [flags] <imf-file>\n\nOpen an SWMF-format IMF file and create a quick-look plot.\n\nFlags:\n",
			filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Printf("imf_analyzer %s\n", version)
		os.Exit(0)
	}
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	inFile := flag.Arg(0)

	// Set up logging
	if err := log.Init(*debug); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	opts, err := config.Load(*cfgFile)
	if err != nil {
		log.Errorf("Failed to load options: %v", err)
		os.Exit(1)
	}

	out := *outFile
	if out == "" {
		out = defaultOutputName(inFile)
	}

	app := NewApp(opts)
	if err := app.Run(inFile, out, *pdfFile); err != nil {
		log.Errorf("Application error: %v", err)
		os.Exit(1)
	}
}

// defaultOutputName replaces the input file's extension with .png. An input
// with no extension just gets .png appended.
func defaultOutputName(in string) string {
	return strings.TrimSuffix(in, filepath.Ext(in)) + ".png"
}
