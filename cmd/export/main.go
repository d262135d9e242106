// phonemize-export - Dump the transcription database to JSON or CSV
// Usage: phonemize-export -d output/phonemes.db -f csv -o transcriptions.csv
package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/pflag"

	"phonemize/internal/config"
	"phonemize/internal/store"
)

type exportRecord struct {
	RunID     string `json:"run_id"`
	Line      int    `json:"line"`
	Voice     string `json:"voice"`
	Dialect   string `json:"dialect,omitempty"`
	Text      string `json:"text"`
	Phonemes  string `json:"phonemes,omitempty"`
	Error     string `json:"error,omitempty"`
	CreatedAt string `json:"created_at"`
}

func main() {
	database := pflag.StringP("database", "d", config.DefaultDatabase(), "SQLite database path")
	format := pflag.StringP("format", "f", "json", "Output format (json or csv)")
	output := pflag.StringP("output", "o", "", "Output file (default stdout)")
	runID := pflag.StringP("run", "r", "", "Only export this run")
	dialect := pflag.String("dialect", "", "Only export this dialect tag")
	listRuns := pflag.Bool("runs", false, "List run ids and exit")
	pflag.Parse()

	if *format != "json" && *format != "csv" {
		fmt.Fprintf(os.Stderr, "Unknown format %q (want json or csv)\n", *format)
		pflag.PrintDefaults()
		os.Exit(1)
	}

	db, err := store.Open(*database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if *listRuns {
		runs, err := db.Runs()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing runs: %v\n", err)
			os.Exit(1)
		}
		for _, r := range runs {
			fmt.Println(r)
		}
		return
	}

	records, err := db.List(store.Filter{RunID: *runID, Dialect: *dialect})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading transcriptions: %v\n", err)
		os.Exit(1)
	}

	var w io.Writer = os.Stdout
	if *output != "" {
		file, err := os.Create(*output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output: %v\n", err)
			os.Exit(1)
		}
		defer file.Close()
		w = file
	}

	if *format == "csv" {
		err = writeCSV(w, records)
	} else {
		err = writeJSON(w, records)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *format, err)
		os.Exit(1)
	}

	if *output != "" {
		fmt.Fprintf(os.Stderr, "%d transcriptions written to %s\n", len(records), *output)
	}
}

func toExport(r store.Record) exportRecord {
	return exportRecord{
		RunID:     r.RunID,
		Line:      r.Line,
		Voice:     r.Voice,
		Dialect:   r.Dialect,
		Text:      r.Text,
		Phonemes:  r.Phonemes,
		Error:     r.Error,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}

func writeJSON(w io.Writer, records []store.Record) error {
	out := make([]exportRecord, 0, len(records))
	for _, r := range records {
		out = append(out, toExport(r))
	}

	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return encoder.Encode(map[string]interface{}{
		"count":          len(out),
		"transcriptions": out,
	})
}

func writeCSV(w io.Writer, records []store.Record) error {
	cw := csv.NewWriter(w)
	cw.Write([]string{"run_id", "line", "voice", "dialect", "text", "phonemes", "error", "created_at"})

	for _, r := range records {
		e := toExport(r)
		cw.Write([]string{
			e.RunID, strconv.Itoa(e.Line), e.Voice, e.Dialect,
			e.Text, e.Phonemes, e.Error, e.CreatedAt,
		})
	}

	cw.Flush()
	return cw.Error()
}
