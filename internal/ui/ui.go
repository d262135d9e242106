// Package ui provides terminal UI components using pterm.
package ui

import (
	"fmt"
	"sort"
	"time"

	"github.com/pterm/pterm"
)

// Theme colors for consistent styling
var (
	ColorPrimary   = pterm.FgCyan
	ColorSecondary = pterm.FgLightBlue
	ColorSuccess   = pterm.FgGreen
	ColorWarning   = pterm.FgYellow
	ColorError     = pterm.FgRed
	ColorMuted     = pterm.FgGray
)

// UI wraps pterm components for phonemize.
type UI struct {
	quiet   bool
	verbose bool
	logger  *pterm.Logger
}

// New creates a new UI instance.
func New(quiet, verbose bool) *UI {
	if quiet {
		pterm.DisableOutput()
	}

	level := pterm.LogLevelInfo
	if verbose {
		level = pterm.LogLevelDebug
	}
	logger := pterm.DefaultLogger.WithLevel(level)

	return &UI{quiet: quiet, verbose: verbose, logger: logger}
}

// Logger returns the structured logger. Debug records are only emitted in
// verbose mode.
func (u *UI) Logger() *pterm.Logger {
	return u.logger
}

// Banner prints the application banner.
func (u *UI) Banner() {
	pterm.DefaultBigText.WithLetters(
		pterm.NewLettersFromStringWithStyle("phone", pterm.NewStyle(ColorPrimary)),
		pterm.NewLettersFromStringWithStyle("mize", pterm.NewStyle(ColorSecondary)),
	).Render()

	pterm.DefaultCenter.Println(
		ColorMuted.Sprint("Rule-based grapheme-to-phoneme toolkit"),
	)
	fmt.Println()
}

// Config prints the configuration summary.
func (u *UI) Config(voice, dialect string, workers int, outputDir string) {
	pterm.DefaultSection.Println("Configuration")

	data := [][]string{
		{"Voice", voice},
		{"Dialect", dialect},
		{"Workers", fmt.Sprintf("%d", workers)},
		{"Output", outputDir},
	}

	pterm.DefaultTable.WithData(data).Render()
	fmt.Println()
}

// Phase prints a phase header.
func (u *UI) Phase(number int, total int, name string) {
	pterm.DefaultSection.WithLevel(2).Println(
		fmt.Sprintf("[%d/%d] %s", number, total, name),
	)
}

// Spinner creates a spinner for long operations.
func (u *UI) Spinner(message string) *pterm.SpinnerPrinter {
	spinner, _ := pterm.DefaultSpinner.
		WithRemoveWhenDone(true).
		Start(message)
	return spinner
}

// Progress creates a progress bar.
func (u *UI) Progress(title string, total int) *pterm.ProgressbarPrinter {
	pb, _ := pterm.DefaultProgressbar.
		WithTotal(total).
		WithTitle(title).
		WithShowElapsedTime(true).
		WithShowCount(true).
		Start()
	return pb
}

// DialectStatus prints status for a per-dialect operation.
func (u *UI) DialectStatus(dialect string, status string, details string) {
	prefix := ColorPrimary.Sprintf("[%s]", dialect)
	switch status {
	case "ok":
		pterm.Success.Println(prefix, details)
	case "skip":
		pterm.Warning.Println(prefix, details)
	case "error":
		pterm.Error.Println(prefix, details)
	case "info":
		pterm.Info.Println(prefix, details)
	default:
		fmt.Printf("%s %s\n", prefix, details)
	}
}

// Stats prints run statistics in a table, keys sorted.
func (u *UI) Stats(title string, stats map[string]interface{}) {
	pterm.DefaultSection.WithLevel(2).Println(title)

	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var data [][]string
	for _, k := range keys {
		data = append(data, []string{k, fmt.Sprintf("%v", stats[k])})
	}

	pterm.DefaultTable.WithData(data).Render()
	fmt.Println()
}

// CountTable prints a two-column table of counts, sorted by key.
func (u *UI) CountTable(header string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	data := pterm.TableData{{header, "Utterances"}}
	for _, k := range keys {
		data = append(data, []string{k, fmt.Sprintf("%d", counts[k])})
	}

	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	fmt.Println()
}

// VoiceTable prints voices with their dialects. Rows are printed in the
// order given.
func (u *UI) VoiceTable(rows [][2]string) {
	data := pterm.TableData{{"Voice", "Dialect"}}
	for _, r := range rows {
		data = append(data, []string{r[0], r[1]})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// FinalReport prints the final summary report.
func (u *UI) FinalReport(utterances, failed, filesWritten int, duration time.Duration) {
	pterm.DefaultSection.Println("Summary")

	rate := 0.0
	if duration > 0 {
		rate = float64(utterances) / duration.Seconds()
	}

	panel := pterm.DefaultBox.WithTitle("Results").Sprint(
		fmt.Sprintf(
			"  Utterances:     %s\n"+
				"  Failed:         %s\n"+
				"  Files Written:  %s\n"+
				"  Duration:       %s\n"+
				"  Throughput:     %s utterances/sec",
			pterm.FgGreen.Sprintf("%d", utterances),
			pterm.FgRed.Sprintf("%d", failed),
			ColorPrimary.Sprintf("%d", filesWritten),
			pterm.FgYellow.Sprint(duration.Round(time.Millisecond)),
			pterm.FgMagenta.Sprintf("%.0f", rate),
		),
	)
	fmt.Println(panel)
}

// Success prints a success message.
func (u *UI) Success(message string) {
	pterm.Success.Println(message)
}

// Error prints an error message.
func (u *UI) Error(message string) {
	pterm.Error.Println(message)
}

// Warning prints a warning message.
func (u *UI) Warning(message string) {
	pterm.Warning.Println(message)
}

// Info prints an info message.
func (u *UI) Info(message string) {
	pterm.Info.Println(message)
}

// Debug prints a debug message (only in verbose mode).
func (u *UI) Debug(message string) {
	if u.verbose {
		pterm.Debug.Println(message)
	}
}

// Done prints the completion message.
func (u *UI) Done() {
	fmt.Println()
	pterm.DefaultCenter.Println(
		ColorSuccess.Sprint("✓ Done!"),
	)
}
