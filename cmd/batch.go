package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"phonemize/internal/batch"
	"phonemize/internal/builder"
	"phonemize/internal/config"
	"phonemize/internal/metrics"
	"phonemize/internal/phonemizer"
	"phonemize/internal/schema"
	"phonemize/internal/store"
	"phonemize/internal/ui"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Phonemize a file of utterances in parallel",
	Long: `batch reads one utterance per line, either "voice<TAB>text" or plain
text spoken by the default voice, and writes one JSON document per dialect.`,
	Args: cobra.NoArgs,
	RunE: runBatch,
}

func init() {
	f := batchCmd.Flags()
	f.StringP("input", "i", "", "Input file (one utterance per line)")
	f.StringP("output-dir", "o", "", "Output directory for documents")
	f.IntP("workers", "w", 0, "Number of parallel workers (0 = auto)")
	f.Bool("split-voice", false, "Write one document per voice inside each dialect")
	f.Bool("store", false, "Save transcriptions to the SQLite database")
	f.String("database", "", "SQLite database path")
	f.Bool("metrics", true, "Write run metrics")
	f.String("metrics-dir", "", "Metrics output directory")
	f.Bool("benchmark", false, "Run in benchmark mode (JSON output only)")
	batchCmd.MarkFlagRequired("input")

	viper.BindPFlag("output_dir", f.Lookup("output-dir"))
	viper.BindPFlag("workers", f.Lookup("workers"))
	viper.BindPFlag("database", f.Lookup("database"))
	viper.BindPFlag("metrics", f.Lookup("metrics"))
	viper.BindPFlag("metrics_dir", f.Lookup("metrics-dir"))
}

// benchmarkOutput is the single JSON line printed in benchmark mode.
type benchmarkOutput struct {
	RunID      string  `json:"run_id"`
	DurationMs int64   `json:"duration_ms"`
	Throughput float64 `json:"throughput"`
	Utterances int64   `json:"utterances"`
	Failed     int64   `json:"failed"`
	Files      int     `json:"files"`
	Workers    int     `json:"workers"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	splitVoice, _ := cmd.Flags().GetBool("split-voice")
	persist, _ := cmd.Flags().GetBool("store")
	benchmark, _ := cmd.Flags().GetBool("benchmark")

	voice := viper.GetString("voice")
	outputDir := viper.GetString("output_dir")

	term := ui.New(viper.GetBool("quiet") || benchmark, viper.GetBool("verbose"))
	log := term.Logger()
	if !benchmark {
		term.Banner()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	collector := metrics.NewCollector()

	// Phase 1: Read input
	collector.StartStage("read")
	utterances, err := batch.ReadFile(input, voice)
	collector.EndStage("read")
	if err != nil {
		return err
	}
	collector.SetStageCounter("read", "utterances", int64(len(utterances)))

	workers := config.Workers(viper.GetInt("workers"), len(utterances))

	runConfig := batch.Config{Workers: workers}
	dialectName := "per voice"
	if tag := viper.GetString("dialect"); tag != "" {
		d, err := phonemizer.ParseDialect(tag)
		if err != nil {
			return err
		}
		runConfig.Dialect = d
		dialectName = d.String()
	}
	if runConfig.Preprocess, err = preprocessor(); err != nil {
		return err
	}

	collector.SetConfig("input", input)
	collector.SetConfig("voice", voice)
	collector.SetConfig("dialect", dialectName)
	collector.SetConfig("workers", workers)
	collector.SetConfig("normalize_input", viper.GetBool("normalize_input"))
	collector.SetConfig("kana_reading", viper.GetBool("kana_reading"))

	if !benchmark {
		term.Config(voice, dialectName, workers, outputDir)
	}
	log.Debug("input read", log.Args("file", input, "utterances", len(utterances)))

	// Phase 2: Phonemize
	collector.StartStage("phonemize")
	if !benchmark {
		term.Phase(1, 2, "Phonemizing utterances")
	}

	progress := term.Progress("Phonemizing", len(utterances))
	var mu sync.Mutex
	results := batch.Run(ctx, utterances, runConfig, func(index int, t *schema.Transcription) {
		mu.Lock()
		defer mu.Unlock()
		progress.Increment()
		if t.Failed() {
			log.Debug("utterance failed", log.Args("line", t.Line, "voice", t.Voice, "error", t.Error))
		}
	})
	progress.Stop()

	stats := batch.Aggregate(results)
	collector.EndStage("phonemize")
	collector.SetStageCounter("phonemize", "succeeded", int64(stats.Succeeded))
	collector.SetStageCounter("phonemize", "failed", int64(stats.Failed))

	if !benchmark {
		for _, name := range sortedKeys(stats.ByDialect) {
			term.DialectStatus(name, "ok", fmt.Sprintf("%d utterances", stats.ByDialect[name]))
		}
		for _, msg := range sortedKeys(stats.ByError) {
			term.DialectStatus("error", "error", fmt.Sprintf("%d x %s", stats.ByError[msg], msg))
		}
	}
	if ctx.Err() != nil {
		term.Warning("Interrupted; unprocessed utterances are marked as failed")
	}

	// Phase 3: Write documents
	collector.StartStage("build")
	if !benchmark {
		term.Phase(2, 2, "Writing documents")
	}

	docBuilder := builder.NewDocumentBuilder(outputDir, collector.RunID())
	docBuilder.SplitByVoice = splitVoice
	docBuilder.Add(results)

	spinner := term.Spinner("Writing document files...")
	buildConfig := builder.DefaultParallelBuildConfig()
	buildConfig.Workers = workers
	buildStats := docBuilder.ParallelBuild(context.Background(), buildConfig)
	spinner.Stop()

	collector.EndStage("build")
	collector.SetStageCounter("build", "files", int64(len(buildStats.FilesWritten)))
	collector.SetStageCounter("build", "write_errors", int64(len(buildStats.WriteErrors)))
	for path, msg := range buildStats.WriteErrors {
		term.Error(fmt.Sprintf("Failed to write %s: %s", path, msg))
	}

	if !benchmark {
		term.CountTable("Voice", buildStats.ByVoice)
	}

	if persist {
		collector.StartStage("store")
		if err := saveResults(viper.GetString("database"), collector.RunID(), results); err != nil {
			term.Error(fmt.Sprintf("Failed to store transcriptions: %v", err))
		} else {
			log.Debug("transcriptions stored", log.Args("database", viper.GetString("database"), "rows", len(results)))
		}
		collector.EndStage("store")
	}

	runMetrics := collector.Finalize(int64(stats.Total), int64(stats.Failed), len(buildStats.FilesWritten))

	if viper.GetBool("metrics") || benchmark {
		writeMetrics(term, viper.GetString("metrics_dir"), runMetrics, benchmark)
	}

	if benchmark {
		line, _ := json.Marshal(benchmarkOutput{
			RunID:      runMetrics.RunID,
			DurationMs: runMetrics.Totals.DurationMs,
			Throughput: runMetrics.Totals.Throughput,
			Utterances: runMetrics.Totals.Utterances,
			Failed:     runMetrics.Totals.Failed,
			Files:      runMetrics.Totals.Files,
			Workers:    workers,
		})
		fmt.Fprintln(cmd.OutOrStdout(), string(line))
		return nil
	}

	duration := time.Duration(runMetrics.Totals.DurationMs) * time.Millisecond
	term.FinalReport(stats.Total, stats.Failed, len(buildStats.FilesWritten), duration)
	term.Done()
	return nil
}

func saveResults(path, runID string, results []*schema.Transcription) error {
	db, err := store.Open(path)
	if err != nil {
		return err
	}
	defer db.Close()
	return db.Save(runID, results)
}

func writeMetrics(term *ui.UI, dir string, run *metrics.RunMetrics, benchmark bool) {
	reporter, err := metrics.NewReporter(dir)
	if err != nil {
		term.Warning(fmt.Sprintf("Failed to write metrics: %v", err))
		return
	}

	previous, _ := reporter.LastRun()
	if err := reporter.Write(run); err != nil {
		term.Warning(fmt.Sprintf("Failed to write metrics: %v", err))
		return
	}
	term.Debug(fmt.Sprintf("Metrics written: %s", run.RunID))

	if previous != nil && !benchmark {
		term.Info(metrics.FormatComparison(metrics.CompareRuns(run, previous)))
	}
}
