package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"text/tabwriter"

	"rect-lives/internal/census"
	"rect-lives/internal/export"
	"rect-lives/pkg/lives"
)

func main() {
	steps := flag.Int("steps", 500, "maximum generations per pattern")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	torus := flag.Bool("torus", false, "wrap neighbors around the board edges")
	margin := flag.Int("margin", 0, "cells of padding around each pattern")
	width := flag.Int("w", 0, "board width override (0 keeps the pattern header)")
	height := flag.Int("h", 0, "board height override (0 keeps the pattern header)")
	rule := flag.String("rule", "", "rule override, e.g. B36/S23")
	strict := flag.Bool("strict", false, "report malformed pattern headers")
	svgDir := flag.String("svg", "", "directory for final-generation SVG snapshots")
	chartPath := flag.String("chart", "", "PNG file for the population chart")
	rleDir := flag.String("rle", "", "directory for final-generation RLE files")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] pattern.rle...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	jobs := make([]census.Job, 0, flag.NArg())
	for _, path := range flag.Args() {
		p, err := loadPattern(path, *strict)
		if err != nil {
			log.Fatal(err)
		}
		if *rule != "" {
			p.Rule = lives.ParseRule(*rule)
		}
		jobs = append(jobs, census.Job{
			Name:    patternName(path, p),
			Pattern: p,
			Steps:   *steps,
			Grid: lives.GridConfig{
				Width:  *width,
				Height: *height,
				Torus:  *torus,
				Margin: *margin,
			},
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := census.Run(ctx, jobs, *workers)
	if err != nil {
		log.Fatal(err)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "pattern\trule\tgenerations\tinitial\tfinal\tperiod\tsettled")
	for _, res := range results {
		period, settled := "-", "-"
		if res.Period > 0 {
			period = fmt.Sprint(res.Period)
			settled = fmt.Sprint(res.Settled)
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%s\t%s\n",
			res.Name, res.Rule, res.Generations(), res.Initial(), res.Last(), period, settled)
	}
	if err := tw.Flush(); err != nil {
		log.Fatal(err)
	}

	if *svgDir != "" {
		writeEach(*svgDir, ".svg", results, func(f *os.File, res census.Result) error {
			return export.WriteSVG(f, res.Grid, export.DefaultSVGStyle())
		})
	}
	if *rleDir != "" {
		writeEach(*rleDir, ".rle", results, func(f *os.File, res census.Result) error {
			_, err := f.WriteString(res.Final.EncodeRLE())
			return err
		})
	}
	if *chartPath != "" {
		series := make([]export.Series, len(results))
		for i, res := range results {
			series[i] = export.Series{Name: res.Name, Values: res.Population}
		}
		if err := writeFile(*chartPath, func(f *os.File) error {
			return export.PopulationChart(f, 1024, 480, series)
		}); err != nil {
			log.Printf("population chart: %v", err)
		}
	}
}

func loadPattern(path string, strict bool) (lives.Pattern, error) {
	if !strict {
		return lives.LoadRLEFile(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return lives.Pattern{}, err
	}
	p, err := lives.ParseRLEStrict(string(data))
	if err != nil {
		return p, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

func patternName(path string, p lives.Pattern) string {
	if p.Name != "" {
		return p.Name
	}
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

func writeEach(dir, ext string, results []census.Result, write func(*os.File, census.Result) error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatal(err)
	}
	for i, res := range results {
		name := fmt.Sprintf("%02d-%s%s", i, slug(res.Name), ext)
		if err := writeFile(filepath.Join(dir, name), func(f *os.File) error { return write(f, res) }); err != nil {
			log.Printf("%s: %v", name, err)
		}
	}
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func slug(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			return r
		case r >= 'A' && r <= 'Z':
			return r + 'a' - 'A'
		default:
			return '-'
		}
	}, name)
}
