// Package builder groups transcriptions into per-dialect JSON documents.
package builder

import (
	"path/filepath"
	"sort"
	"strings"

	"phonemize/internal/schema"
)

// FailuresName is the document that collects failed transcriptions.
const FailuresName = "failures"

// BuildStats holds statistics from a build operation.
type BuildStats struct {
	Total        int
	Failed       int
	ByDialect    map[string]int
	ByVoice      map[string]int
	FilesWritten []string
	WriteErrors  map[string]string // file path -> error
}

// NewBuildStats creates a new BuildStats.
func NewBuildStats() *BuildStats {
	return &BuildStats{
		ByDialect:   make(map[string]int),
		ByVoice:     make(map[string]int),
		WriteErrors: make(map[string]string),
	}
}

// DocumentBuilder builds one document per dialect, or per dialect and
// voice when SplitByVoice is set.
type DocumentBuilder struct {
	OutputDir    string
	RunID        string
	SplitByVoice bool
	docs         map[string]map[string][]*schema.Transcription // dialect -> voice -> transcriptions
	failures     []*schema.Transcription
}

// NewDocumentBuilder creates a new DocumentBuilder.
func NewDocumentBuilder(outputDir, runID string) *DocumentBuilder {
	return &DocumentBuilder{
		OutputDir: outputDir,
		RunID:     runID,
		docs:      make(map[string]map[string][]*schema.Transcription),
	}
}

// Add adds transcriptions from a batch run.
func (b *DocumentBuilder) Add(transcriptions []*schema.Transcription) {
	for _, t := range transcriptions {
		if t.Failed() {
			b.failures = append(b.failures, t)
			continue
		}
		if _, ok := b.docs[t.Dialect]; !ok {
			b.docs[t.Dialect] = make(map[string][]*schema.Transcription)
		}
		b.docs[t.Dialect][t.Voice] = append(b.docs[t.Dialect][t.Voice], t)
	}
}

// writeJob is one document and where it goes.
type writeJob struct {
	filePath string
	document *schema.Document
}

// plan assembles the documents to write and fills in stats.
func (b *DocumentBuilder) plan(stats *BuildStats) []writeJob {
	var jobs []writeJob

	dialects := make([]string, 0, len(b.docs))
	for d := range b.docs {
		dialects = append(dialects, d)
	}
	sort.Strings(dialects)

	for _, dialect := range dialects {
		byVoice := b.docs[dialect]

		voices := make([]string, 0, len(byVoice))
		for v := range byVoice {
			voices = append(voices, v)
		}
		sort.Strings(voices)

		var merged *schema.Document
		if !b.SplitByVoice {
			merged = b.newDocument(dialect, dialect)
		}

		for _, voice := range voices {
			doc := merged
			if b.SplitByVoice {
				doc = b.newDocument(dialect+"_"+voice, dialect)
			}
			for _, t := range byVoice[voice] {
				doc.Add(t)
				stats.Total++
				stats.ByDialect[dialect]++
				stats.ByVoice[voice]++
			}
			if b.SplitByVoice {
				jobs = append(jobs, writeJob{
					filePath: filepath.Join(b.OutputDir, dialect, fileName(voice)+".json"),
					document: doc,
				})
			}
		}

		if merged != nil {
			jobs = append(jobs, writeJob{
				filePath: filepath.Join(b.OutputDir, dialect+".json"),
				document: merged,
			})
		}
	}

	if len(b.failures) > 0 {
		doc := b.newDocument(FailuresName, "")
		for _, t := range b.failures {
			doc.Add(t)
			stats.Total++
			stats.Failed++
		}
		jobs = append(jobs, writeJob{
			filePath: filepath.Join(b.OutputDir, FailuresName+".json"),
			document: doc,
		})
	}

	return jobs
}

// fileName makes a voice tag safe to use as a single path element. Voice
// tags come from input files and are only checked against the voice table
// when no dialect override is set.
func fileName(voice string) string {
	name := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == filepath.Separator {
			return '_'
		}
		return r
	}, voice)
	if name == "" || name == "." || name == ".." {
		return "_"
	}
	return name
}

// record notes the outcome of writing path.
func (s *BuildStats) record(path string, err error) {
	if err != nil {
		s.WriteErrors[path] = err.Error()
		return
	}
	s.FilesWritten = append(s.FilesWritten, path)
}

func (b *DocumentBuilder) newDocument(name, dialect string) *schema.Document {
	doc := schema.NewDocument(name, dialect)
	doc.RunID = b.RunID
	return doc
}

// Build writes all documents sequentially.
func (b *DocumentBuilder) Build() *BuildStats {
	stats := NewBuildStats()
	for _, job := range b.plan(stats) {
		stats.record(job.filePath, job.document.Save(job.filePath))
	}
	return stats
}
