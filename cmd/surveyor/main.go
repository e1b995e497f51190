// Command surveyor runs a survey job file and prints a field-book style
// summary.
//
//	surveyor -job traverse.yaml -csv legs.csv -pdf lot.pdf -kml lot.kml -epsg 32633
//
// "-" as an output path writes to standard output.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/surveyor/job"
)

var (
	jobFile  = flag.String("job", "", "job file (YAML or JSON)")
	csvOut   = flag.String("csv", "", "write the result table as CSV to this path")
	residOut = flag.String("residuals", "", "write adjustment residuals as CSV to this path")
	pdfOut   = flag.String("pdf", "", "write a PDF field report to this path")
	kmlOut   = flag.String("kml", "", "write the points as KML to this path")
	epsg     = flag.Int("epsg", 0, "EPSG code of the grid coordinates for KML (default: the job's)")
	quiet    = flag.Bool("q", false, "do not print the summary")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("surveyor: ")
	flag.Parse()
	if *jobFile == "" {
		flag.Usage()
		os.Exit(2)
	}

	j, err := job.Load(*jobFile)
	if err != nil {
		log.Fatalf("load: %v", err)
	}
	out, err := j.Run()
	if err != nil {
		if out != nil && !*quiet {
			printSummary(os.Stdout, out)
		}
		log.Fatalf("run: %v", err)
	}
	if !*quiet {
		printSummary(os.Stdout, out)
	}

	exports := []struct {
		path  string
		write func(io.Writer) error
	}{
		{*csvOut, out.WriteCSV},
		{*residOut, out.WriteResiduals},
		{*pdfOut, out.WritePDF},
		{*kmlOut, func(w io.Writer) error { return out.WriteKML(w, *epsg) }},
	}
	for _, e := range exports {
		if e.path == "" {
			continue
		}
		if err := export(e.path, e.write); err != nil {
			log.Fatalf("export %s: %v", e.path, err)
		}
	}
}

// export writes to path, or to standard output for "-".
func export(path string, write func(io.Writer) error) error {
	if path == "-" {
		return write(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}
	return nil
}
