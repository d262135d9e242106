// phonemize-fuzzy - Find utterances that sound like a query using a BK-tree
// over phoneme strings.
// Usage: phonemize-fuzzy [options] <query>
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"phonemize/internal/builder"
	"phonemize/internal/config"
	"phonemize/internal/phonemizer"
	"phonemize/internal/schema"
	"phonemize/internal/similarity"

	"github.com/spf13/pflag"
)

type result struct {
	Phonemes string   `json:"phonemes"`
	Texts    []string `json:"texts"`
	Distance int      `json:"distance"`
}

func main() {
	docDir := pflag.StringP("dir", "d", config.DefaultOutputDir(), "Directory containing phoneme documents")
	voice := pflag.StringP("voice", "V", config.DefaultVoice(), "Voice used to phonemize the query")
	rawPhonemes := pflag.BoolP("phonemes", "p", false, "Treat the query as a phoneme string")
	maxDistance := pflag.IntP("distance", "n", 2, "Maximum edit distance")
	limit := pflag.IntP("limit", "l", 10, "Maximum results to show")
	jsonOutput := pflag.BoolP("json", "j", false, "Output as JSON")

	pflag.Parse()

	if pflag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: phonemize-fuzzy [options] <query>")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		pflag.PrintDefaults()
		os.Exit(1)
	}

	query := strings.Join(pflag.Args(), " ")
	engine := phonemizer.NewEngine()
	if err := engine.SetLanguage(phonemizer.Voice(*voice)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !*rawPhonemes {
		phonemes, err := engine.Phonemize(query)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		query = phonemes
	}

	// Only documents of the query's dialect are comparable.
	transcriptions := loadTranscriptions(*docDir, engine.Dialect().String())
	if len(transcriptions) == 0 {
		fmt.Fprintf(os.Stderr, "No %s transcriptions found in %s\n", engine.Dialect(), *docDir)
		os.Exit(1)
	}

	// Several utterances can share one phoneme string; the tree keys on
	// phonemes and keeps every text for the key.
	texts := make(map[string][]string)
	tree := similarity.NewBKTree[string]()
	for _, t := range transcriptions {
		if _, ok := texts[t.Phonemes]; !ok {
			tree.Insert(t.Phonemes, t.Phonemes)
		}
		texts[t.Phonemes] = append(texts[t.Phonemes], t.Text)
	}

	matches := tree.Search(query, *maxDistance)
	if *limit > 0 && len(matches) > *limit {
		matches = matches[:*limit]
	}

	results := make([]result, 0, len(matches))
	for _, m := range matches {
		results = append(results, result{Phonemes: m.Key, Texts: texts[m.Key], Distance: m.Distance})
	}

	if *jsonOutput {
		output := struct {
			Query   string   `json:"query"`
			MaxDist int      `json:"max_distance"`
			Count   int      `json:"count"`
			Results []result `json:"results"`
		}{
			Query:   query,
			MaxDist: *maxDistance,
			Count:   len(results),
			Results: results,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		enc.Encode(output)
		return
	}

	if len(results) == 0 {
		fmt.Printf("No matches found for /%s/ within distance %d\n", query, *maxDistance)
		return
	}

	fmt.Printf("Utterances sounding like /%s/ (max distance: %d):\n\n", query, *maxDistance)
	for _, r := range results {
		fmt.Printf("  /%s/ (distance: %d)\n", r.Phonemes, r.Distance)
		for _, text := range r.Texts {
			fmt.Printf("      %s\n", text)
		}
	}
	fmt.Printf("\n%d result(s) found\n", len(results))
}

// loadTranscriptions reads the successful transcriptions of one dialect
// from the documents under dir.
func loadTranscriptions(dir, dialect string) []*schema.Transcription {
	var out []*schema.Transcription

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Skip errors
		}
		if info.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil
		}
		if strings.TrimSuffix(info.Name(), ".json") == builder.FailuresName {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil
		}

		var doc struct {
			Dialect        string                  `json:"dialect"`
			Transcriptions []*schema.Transcription `json:"transcriptions"`
		}
		if err := json.Unmarshal(data, &doc); err != nil || doc.Dialect != dialect {
			return nil
		}

		for _, t := range doc.Transcriptions {
			if !t.Failed() && t.Phonemes != "" {
				out = append(out, t)
			}
		}
		return nil
	})

	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error walking directory: %v\n", err)
	}
	return out
}
