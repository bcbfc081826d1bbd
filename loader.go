package returns

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// DataFileExt is the extension of record files, one file per ticker.
const DataFileExt = ".dat"

// DataFile returns the path of the record file of ticker in dir.
//
// File names are lower case: ticker "CSCO" is read from "csco.dat".
func DataFile(dir, ticker string) (string, error) {
	tic := strings.ToLower(strings.TrimSpace(ticker))
	if _, err := ParseTicker(tic); err != nil {
		return "", err
	}
	return filepath.Join(dir, tic+DataFileExt), nil
}

// ReadLines reads the lines of the record file of ticker, exactly as they are in the file.
func ReadLines(dir, ticker string) ([]string, error) {
	name, err := DataFile(dir, ticker)
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("could not read records of %q: %w", ticker, err)
	}
	return splitLines(string(content)), nil
}

// splitLines splits text on line breaks. A final line break does not start a new line.
func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// ReadAllLines concatenates the lines of several tickers, in the order given.
func ReadAllLines(dir string, tickers []string) ([]string, error) {
	var lines []string
	for _, tic := range tickers {
		l, err := ReadLines(dir, tic)
		if err != nil {
			return nil, err
		}
		lines = append(lines, l...)
	}
	return lines, nil
}

// ListTickers returns the tickers that have a record file in dir, sorted.
func ListTickers(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*"+DataFileExt))
	if err != nil {
		return nil, err
	}
	tickers := make([]string, 0, len(matches))
	for _, m := range matches {
		tickers = append(tickers, strings.TrimSuffix(filepath.Base(m), DataFileExt))
	}
	slices.Sort(tickers)
	return tickers, nil
}
