package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"maintup/internal/client"
	"maintup/internal/export"

	_ "github.com/joho/godotenv/autoload"
)

// report builds the annual (default) or monthly financial report from the
// API — falling back to the local snapshot when offline — and writes the
// PDF export next to the current directory.
func main() {
	year := flag.Int("year", time.Now().Year(), "calendar year to report on")
	month := flag.Int("month", 0, "month 1-12 for a monthly report; 0 exports the annual report")
	out := flag.String("out", "", "output file (default report-<year>[-<month>].pdf)")
	flag.Parse()

	api := client.NewAPI(os.Getenv("API_URL"), os.Getenv("API_TOKEN"))
	store := client.NewStore(api, os.Getenv("SNAPSHOT_FILE"))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := store.Load(ctx); err != nil {
		log.Fatalf("load data: %v", err)
	}
	if !store.APIAvailable() {
		log.Printf("API unreachable, reporting on the local snapshot")
	}

	var (
		pdf  []byte
		err  error
		path = *out
	)
	if *month >= 1 && *month <= 12 {
		report := store.MonthlyReport(time.Month(*month), *year)
		pdf, err = export.MonthlyReportPDF(report)
		if path == "" {
			path = fmt.Sprintf("report-%d-%02d.pdf", *year, *month)
		}
	} else {
		report := store.AnnualReport(*year)
		pdf, err = export.AnnualReportPDF(report)
		if path == "" {
			path = fmt.Sprintf("report-%d.pdf", *year)
		}
	}
	if err != nil {
		log.Fatalf("render report: %v", err)
	}

	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		log.Fatalf("write %s: %v", path, err)
	}
	log.Printf("wrote %s", path)
}
