package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"semio/pkg/batch"
	"semio/pkg/config"
	"semio/pkg/report"
)

const version = "0.1.0"

func main() {
	// Parse command line arguments
	configPath := flag.String("config", "semio.yaml", "Path to an optional YAML configuration file")
	grouped := flag.Bool("grouped", true, "Show the curated grouped parameter view")
	all := flag.Bool("all", false, "Show every header parameter instead of the grouped view")
	quiet := flag.Bool("quiet", false, "Suppress the console parameter listing")
	dump := flag.Bool("dump", false, "Write a structured parameter document per image")
	format := flag.String("format", "", "Dump format: json or yaml (default from config, json)")
	dumpDir := flag.String("dump-dir", "", "Directory for dump files (default: next to each image)")
	stats := flag.Bool("stats", false, "Print a pixel-size summary across all processed images")
	showVersion := flag.Bool("version", false, "Print the version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("semio %s\n", version)
		return
	}

	// Validate inputs
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: semio [flags] image.tif|directory ...")
		flag.Usage()
		os.Exit(1)
	}

	// Load configuration and let explicitly set flags override it
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	opts := batch.Options{
		Grouped: cfg.Output.Grouped,
		Quiet:   cfg.Output.Quiet,
		DumpDir: cfg.Output.DumpDir,
		Stats:   cfg.Batch.Stats,
		Dump:    *dump,
		Out:     os.Stdout,
	}
	if set["grouped"] {
		opts.Grouped = *grouped
	}
	if *all {
		opts.Grouped = false
	}
	if set["quiet"] {
		opts.Quiet = *quiet
	}
	if set["dump-dir"] {
		opts.DumpDir = *dumpDir
	}
	if set["stats"] {
		opts.Stats = *stats
	}

	formatName := cfg.Output.Format
	if set["format"] {
		formatName = *format
	}
	opts.Format, err = report.ParseFormat(formatName)
	if err != nil {
		log.Fatalf("Invalid dump format: %v", err)
	}

	// Process all inputs; individual image failures are reported per file
	// and do not abort the batch or change the exit code.
	results, err := batch.Run(flag.Args(), opts)
	if err != nil {
		log.Fatalf("Processing failed: %v", err)
	}

	if failed := batch.Failed(results); failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d images could not be parsed\n", failed, len(results))
	}
}
