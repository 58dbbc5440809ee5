package tiers

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Write emits one "word,rank" line per entry with LF terminators and no
// header.
func Write(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	record := make([]string, 2)
	for _, e := range entries {
		record[0] = e.Word
		record[1] = strconv.Itoa(e.Rank)
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteFile(path string, entries []Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output %s: %w", path, err)
	}
	bw := bufio.NewWriter(f)
	if err := Write(bw, entries); err != nil {
		f.Close()
		return fmt.Errorf("writing output %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("writing output %s: %w", path, err)
	}
	return f.Close()
}

// Read parses a file produced by Write. Lines that do not have exactly two
// fields are skipped; a rank that is not a number is an error.
func Read(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true
	var entries []Entry
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) != 2 {
			continue
		}
		rank, err := strconv.Atoi(record[1])
		if err != nil {
			line, _ := cr.FieldPos(1)
			return nil, fmt.Errorf("line %d: bad tier %q: %w", line, record[1], err)
		}
		entries = append(entries, Entry{Word: record[0], Rank: rank})
	}
	return entries, nil
}

func ReadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}
