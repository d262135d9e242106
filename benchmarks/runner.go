// Benchmark runner for phonemize batch throughput.
// Run with: go run runner.go [options]
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

type Config struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Workers   int    `json:"workers"`
	Normalize bool   `json:"normalize"`
	Kana      bool   `json:"kana"`
}

type Group struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Input       string   `json:"input"`
	Configs     []Config `json:"configs"`
}

type ConfigFile struct {
	Groups []Group `json:"groups"`
}

type BenchmarkResult struct {
	ConfigID   string  `json:"config_id"`
	Group      string  `json:"group"`
	Input      string  `json:"input"`
	DurationMs int64   `json:"duration_ms"`
	Throughput float64 `json:"throughput"`
	Utterances int     `json:"utterances"`
	Failed     int     `json:"failed"`
	Files      int     `json:"files"`
	Workers    int     `json:"workers"`
}

func main() {
	configPath := pflag.StringP("config", "c", "configs.json", "Path to benchmark configs")
	outputDir := pflag.StringP("output", "o", "results", "Output directory for results")
	group := pflag.StringP("group", "g", "", "Run only this group (empty = all)")
	iterations := pflag.IntP("iterations", "n", 1, "Number of iterations per config")
	pflag.Parse()

	data, err := os.ReadFile(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading config: %v\n", err)
		os.Exit(1)
	}

	var cfg ConfigFile
	if err := json.Unmarshal(data, &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing config: %v\n", err)
		os.Exit(1)
	}

	binary := findBinary()
	if binary == "" {
		fmt.Fprintln(os.Stderr, "Error: phonemize binary not found. Build with 'mage build' first.")
		os.Exit(1)
	}

	os.MkdirAll(*outputDir, 0755)
	scratch, err := os.MkdirTemp("", "phonemize-bench-")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating scratch dir: %v\n", err)
		os.Exit(1)
	}
	defer os.RemoveAll(scratch)

	var results []BenchmarkResult
	total := countConfigs(cfg.Groups, *group)
	current := 0

	for _, g := range cfg.Groups {
		if *group != "" && g.Name != *group {
			continue
		}

		fmt.Printf("\n=== Group: %s (%s) ===\n", g.Name, g.Description)
		fmt.Printf("Input: %s\n", g.Input)

		for _, c := range g.Configs {
			current++
			fmt.Printf("\n[%d/%d] Running: %s\n", current, total, c.Name)

			var durations []int64
			var lastResult BenchmarkResult

			for i := 0; i < *iterations; i++ {
				if *iterations > 1 {
					fmt.Printf("  Iteration %d/%d...", i+1, *iterations)
				}

				result, err := runBenchmark(binary, scratch, g, c)
				if err != nil {
					fmt.Printf(" ERROR: %v\n", err)
					continue
				}

				durations = append(durations, result.DurationMs)
				lastResult = result

				if *iterations > 1 {
					fmt.Printf(" %dms\n", result.DurationMs)
				} else {
					fmt.Printf("  Duration: %dms, Utterances: %d, Failed: %d\n",
						result.DurationMs, result.Utterances, result.Failed)
				}
			}

			if len(durations) > 0 {
				if *iterations > 1 {
					var sum int64
					for _, d := range durations {
						sum += d
					}
					lastResult.DurationMs = sum / int64(len(durations))
					fmt.Printf("  Average: %dms\n", lastResult.DurationMs)
				}
				results = append(results, lastResult)
			}
		}
	}

	resultsFile := filepath.Join(*outputDir, fmt.Sprintf("benchmark_%s.json",
		time.Now().Format("2006-01-02_15-04-05")))

	output := map[string]interface{}{
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
		"iterations": *iterations,
		"results":    results,
	}

	data, _ = json.MarshalIndent(output, "", "  ")
	if err := os.WriteFile(resultsFile, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing results: %v\n", err)
	} else {
		fmt.Printf("\nResults written to: %s\n", resultsFile)
	}

	printSummary(results)
}

func findBinary() string {
	candidates := []string{
		"../bin/phonemize",
		"../bin/phonemize.exe",
		"phonemize",
		"phonemize.exe",
	}

	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}

	path, err := exec.LookPath("phonemize")
	if err == nil {
		return path
	}
	return ""
}

func countConfigs(groups []Group, filter string) int {
	count := 0
	for _, g := range groups {
		if filter != "" && g.Name != filter {
			continue
		}
		count += len(g.Configs)
	}
	return count
}

func runBenchmark(binary, scratch string, g Group, c Config) (BenchmarkResult, error) {
	args := []string{
		"batch", "--benchmark",
		"--input", g.Input,
		"--workers", fmt.Sprintf("%d", c.Workers),
		"--output-dir", filepath.Join(scratch, c.ID),
		"--metrics-dir", filepath.Join(scratch, "metrics"),
	}
	if c.Normalize {
		args = append(args, "--normalize")
	}
	if c.Kana {
		args = append(args, "--kana")
	}

	cmd := exec.Command(binary, args...)
	output, err := cmd.Output()
	if err != nil {
		return BenchmarkResult{}, fmt.Errorf("command failed: %w", err)
	}

	var result struct {
		RunID      string  `json:"run_id"`
		DurationMs int64   `json:"duration_ms"`
		Throughput float64 `json:"throughput"`
		Utterances int     `json:"utterances"`
		Failed     int     `json:"failed"`
		Files      int     `json:"files"`
		Workers    int     `json:"workers"`
	}

	if err := json.Unmarshal(output, &result); err != nil {
		return BenchmarkResult{}, fmt.Errorf("failed to parse output: %w (output: %s)", err, string(output))
	}

	return BenchmarkResult{
		ConfigID:   c.ID,
		Group:      g.Name,
		Input:      g.Input,
		DurationMs: result.DurationMs,
		Throughput: result.Throughput,
		Utterances: result.Utterances,
		Failed:     result.Failed,
		Files:      result.Files,
		Workers:    result.Workers,
	}, nil
}

func printSummary(results []BenchmarkResult) {
	if len(results) == 0 {
		return
	}

	fmt.Println("\n" + strings.Repeat("=", 70))
	fmt.Println("BENCHMARK SUMMARY")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("%-30s %10s %12s %8s\n", "Config", "Duration", "Utterances", "Speedup")
	fmt.Println(strings.Repeat("-", 70))

	groups := make(map[string][]BenchmarkResult)
	var names []string
	for _, r := range results {
		if _, ok := groups[r.Group]; !ok {
			names = append(names, r.Group)
		}
		groups[r.Group] = append(groups[r.Group], r)
	}
	sort.Strings(names)

	for _, groupName := range names {
		groupResults := groups[groupName]
		fmt.Printf("\n[%s]\n", groupName)

		// The single-worker run is the baseline.
		var baseline int64
		for _, r := range groupResults {
			if r.Workers == 1 {
				baseline = r.DurationMs
				break
			}
		}

		for _, r := range groupResults {
			speedup := "-"
			if baseline > 0 && r.DurationMs > 0 {
				speedup = fmt.Sprintf("%.2fx", float64(baseline)/float64(r.DurationMs))
			}

			name := r.ConfigID
			if len(name) > 30 {
				name = name[:27] + "..."
			}

			fmt.Printf("%-30s %8dms %12d %8s\n",
				name, r.DurationMs, r.Utterances, speedup)
		}
	}

	fmt.Println(strings.Repeat("=", 70))
}
