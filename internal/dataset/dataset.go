// Package dataset loads the flat-file inputs of the evaluation: the
// JSONL question/answer dataset and the JSON source registry that
// defines the allowed citation tokens. Flat files are the only
// persistence this system has.
package dataset

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/modelrisk/mrmeval/internal/domain"
)

// Dataset errors.
var (
	// ErrUnknownSplit indicates a split name outside {train, dev, test, ""}.
	ErrUnknownSplit = errors.New("unknown dataset split")

	// ErrEmptyDataset indicates the dataset file held no records.
	ErrEmptyDataset = errors.New("dataset contains no samples")
)

// Split partitions the dataset by its original ordering: 80% train,
// 10% dev, remainder test. The empty split selects everything.
type Split string

const (
	SplitAll   Split = ""
	SplitTrain Split = "train"
	SplitDev   Split = "dev"
	SplitTest  Split = "test"
)

// Train/dev proportions of the 80/10/10 split.
const (
	trainFraction = 0.8
	devFraction   = 0.1
)

// ParseSplit converts a configuration string into a Split.
func ParseSplit(s string) (Split, error) {
	switch Split(strings.ToLower(strings.TrimSpace(s))) {
	case SplitAll, SplitTrain, SplitDev, SplitTest:
		return Split(strings.ToLower(strings.TrimSpace(s))), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSplit, s)
	}
}

// Record is one dataset line as stored on disk. Prompt is the bare user
// question; the environment wraps it into the message sequence with the
// system prompt when assembling samples.
type Record struct {
	Prompt string            `json:"prompt"`
	Answer string            `json:"answer"`
	Info   domain.SampleInfo `json:"info"`
}

// Load reads all records from a JSONL file, applies the split slice, and
// caps the result at limit when limit > 0. Blank lines are skipped; a
// malformed line is a fatal load error since the dataset is a build
// input, not runtime traffic.
func Load(path string, split Split, limit int) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", path, err)
	}
	defer f.Close()

	records, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}

	records = slice(records, split)
	if limit > 0 && limit < len(records) {
		records = records[:limit]
	}
	return records, nil
}

// Read parses JSONL records from a reader.
func Read(r io.Reader) ([]Record, error) {
	var records []Record
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var rec Record
		if err := json.Unmarshal([]byte(text), &rec); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}
	return records, nil
}

// slice applies the 80/10/10 partition by original ordering.
func slice(records []Record, split Split) []Record {
	n := len(records)
	nTrain := int(float64(n) * trainFraction)
	nDev := int(float64(n) * devFraction)

	switch split {
	case SplitTrain:
		return records[:nTrain]
	case SplitDev:
		return records[nTrain : nTrain+nDev]
	case SplitTest:
		return records[nTrain+nDev:]
	default:
		return records
	}
}
