/*
Package csv reads datasets from delimited text files. It does not use
encoding/csv: the delimiter is detected from the content, quotes toggle
anywhere inside a field and every field is trimmed of surrounding whitespace.
*/
package csv

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pbanos/c45/dataset"
	"github.com/sirupsen/logrus"
)

const (
	// SampleSize is the maximum number of non-empty lines looked at when
	// detecting the delimiter of a file.
	SampleSize = 10

	// DefaultDelimiter is used when no candidate delimiter scores above 0.
	DefaultDelimiter = ','

	consistencyBonus = 100
	maxLineSize      = 16 * 1024 * 1024
	fieldCutset      = " \t\r\n"
)

// Delimiters holds the candidate delimiters in the order they are tried.
// On equal scores the earliest one is kept.
var Delimiters = []rune{';', ',', '\t', '|'}

/*
DelimiterName returns the name under which a delimiter is displayed in
reports, like "comma (,)" or "tab".
*/
func DelimiterName(d rune) string {
	switch d {
	case ',':
		return "comma (,)"
	case ';':
		return "semicolon (;)"
	case '\t':
		return "tab"
	case '|':
		return "pipe (|)"
	}
	return fmt.Sprintf("%q", d)
}

/*
DetectDelimiter takes the lines of a file and returns the candidate delimiter
that best explains them. Up to SampleSize lines are used, skipping empty ones.
For each candidate, only the lines with at least one occurrence outside double
quotes count, each contributing its number of fields (occurrences + 1). The
score of the candidate is that field count times 100 when all contributing
lines agree on it, and the field count of the first contributing line
otherwise. The highest strictly greater score wins, and DefaultDelimiter is
returned when every candidate scores 0.
*/
func DetectDelimiter(lines []string) rune {
	sample := make([]string, 0, SampleSize)
	for _, l := range lines {
		if len(sample) == SampleSize {
			break
		}
		if l == "" {
			continue
		}
		sample = append(sample, l)
	}
	best, bestScore := rune(DefaultDelimiter), 0
	for _, d := range Delimiters {
		score := delimiterScore(sample, d)
		if score > bestScore {
			best, bestScore = d, score
		}
	}
	return best
}

func delimiterScore(lines []string, d rune) int {
	var fieldCounts []int
	for _, l := range lines {
		if n := countUnquoted(l, d); n > 0 {
			fieldCounts = append(fieldCounts, n+1)
		}
	}
	if len(fieldCounts) == 0 {
		return 0
	}
	for _, c := range fieldCounts[1:] {
		if c != fieldCounts[0] {
			return fieldCounts[0]
		}
	}
	return fieldCounts[0] * consistencyBonus
}

func countUnquoted(line string, d rune) int {
	var count int
	quoted := false
	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
		case r == d && !quoted:
			count++
		}
	}
	return count
}

/*
ParseLine splits a line into fields using the given delimiter. A double quote
toggles quoted mode, and two consecutive double quotes inside quoted mode
stand for one literal double quote. The delimiter only separates fields
outside quoted mode. Quotes themselves are not part of the field. Each field
is trimmed of spaces, tabs, carriage returns and newlines, and the content
after the last delimiter is always a field, so "a,b," yields ["a" "b" ""].
*/
func ParseLine(line string, d rune) []string {
	var fields []string
	var field strings.Builder
	quoted := false
	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '"':
			if quoted && i+1 < len(runes) && runes[i+1] == '"' {
				field.WriteRune('"')
				i++
				continue
			}
			quoted = !quoted
		case r == d && !quoted:
			fields = append(fields, strings.Trim(field.String(), fieldCutset))
			field.Reset()
		default:
			field.WriteRune(r)
		}
	}
	return append(fields, strings.Trim(field.String(), fieldCutset))
}

/*
ReadLines takes an io.Reader and returns all the lines in it, without their
line terminators.
*/
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

/*
ParseDataset takes the lines of a file and a delimiter and returns the dataset
they hold. Blank lines (empty or whitespace only) are skipped. The first
remaining line is the header. Rows with a number of fields other than the
header one are padded with empty cells or truncated, with a warning on the
given logger (nil means the logrus standard logger).

ErrEmptyHeader is returned when there is no non-blank line, and ErrEmptyDataset
when there is a header but no data row.
*/
func ParseDataset(lines []string, d rune, log logrus.FieldLogger) (*dataset.Dataset, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	log = log.WithField("module", "dataset.csv")
	var header []string
	var rows [][]string
	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		fields := ParseLine(l, d)
		if header == nil {
			header = fields
			continue
		}
		if len(fields) != len(header) {
			log.WithFields(logrus.Fields{
				"line":   i + 1,
				"fields": len(fields),
				"header": len(header),
			}).Warn("row width does not match header, repairing it")
		}
		rows = append(rows, fields)
	}
	if header == nil {
		return nil, dataset.ErrEmptyHeader
	}
	if len(rows) == 0 {
		return nil, dataset.ErrEmptyDataset
	}
	return dataset.New(header, rows), nil
}

/*
ReadDataset takes an io.Reader and a logger, detects the delimiter of its
content and returns the dataset in it together with the detected delimiter.
Read failures are reported wrapping ErrFileUnreadable.
*/
func ReadDataset(r io.Reader, log logrus.FieldLogger) (*dataset.Dataset, rune, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", dataset.ErrFileUnreadable, err)
	}
	d := DetectDelimiter(lines)
	ds, err := ParseDataset(lines, d, log)
	if err != nil {
		return nil, d, err
	}
	return ds, d, nil
}

/*
ReadDatasetFromFilePath takes a filepath string and a logger, opens the file
to which the filepath points and uses ReadDataset to return the dataset in it
and its delimiter. If the filepath is "" the dataset is read from os.Stdin.
An error wrapping ErrFileUnreadable is returned if the file cannot be opened.
*/
func ReadDatasetFromFilePath(filepath string, log logrus.FieldLogger) (*dataset.Dataset, rune, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %v", dataset.ErrFileUnreadable, err)
		}
		defer f.Close()
	}
	ds, d, err := ReadDataset(f, log)
	if err != nil {
		name := filepath
		if name == "" {
			name = "STDIN"
		}
		err = fmt.Errorf("reading CSV dataset from %s: %w", name, err)
	}
	return ds, d, err
}
