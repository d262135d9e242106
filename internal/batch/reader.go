// Package batch phonemizes many utterances in parallel.
package batch

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"phonemize/internal/schema"
)

// Read parses batch input. Each non-empty line is either "voice<TAB>text"
// or plain text spoken by defaultVoice. Lines starting with "#" are
// comments.
func Read(r io.Reader, defaultVoice string) ([]schema.Utterance, error) {
	var utterances []schema.Utterance
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		voice, text := defaultVoice, line
		if idx := strings.IndexByte(line, '\t'); idx != -1 {
			voice = strings.TrimSpace(line[:idx])
			text = line[idx+1:]
		}

		utterances = append(utterances, schema.Utterance{
			Line:  lineNum,
			Voice: voice,
			Text:  text,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}
	return utterances, nil
}

// ReadFile parses a batch input file.
func ReadFile(path, defaultVoice string) ([]schema.Utterance, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Read(file, defaultVoice)
}
