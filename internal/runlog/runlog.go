package runlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Entry is one row in the run log: a single scoring run over a workspace.
type Entry struct {
	Timestamp        time.Time
	RunID            string
	Command          string
	TransactionsFile string
	MCCFile          string
	Fingerprint      string
	Transactions     int
	Users            int
	Excluded         int
}

// Header is the CSV header for run-log.csv.
const Header = "timestamp,run_id,command,transactions_file,mcc_file,fingerprint,transactions,users,excluded"

const (
	numFields       = 9
	logDir          = "logs"
	logFile         = "logs/run-log.csv"
	colTimestamp    = 0
	colRunID        = 1
	colCommand      = 2
	colTransactions = 3
	colMCCFile      = 4
	colFingerprint  = 5
	colTxCount      = 6
	colUsers        = 7
	colExcluded     = 8
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colRunID] = e.RunID
	row[colCommand] = e.Command
	row[colTransactions] = e.TransactionsFile
	row[colMCCFile] = e.MCCFile
	row[colFingerprint] = e.Fingerprint
	row[colTxCount] = strconv.Itoa(e.Transactions)
	row[colUsers] = strconv.Itoa(e.Users)
	row[colExcluded] = strconv.Itoa(e.Excluded)
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	txCount, err := strconv.Atoi(record[colTxCount])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing transactions %q: %w", record[colTxCount], err)
	}
	users, err := strconv.Atoi(record[colUsers])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing users %q: %w", record[colUsers], err)
	}
	excluded, err := strconv.Atoi(record[colExcluded])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing excluded %q: %w", record[colExcluded], err)
	}

	return Entry{
		Timestamp:        ts,
		RunID:            record[colRunID],
		Command:          record[colCommand],
		TransactionsFile: record[colTransactions],
		MCCFile:          record[colMCCFile],
		Fingerprint:      record[colFingerprint],
		Transactions:     txCount,
		Users:            users,
		Excluded:         excluded,
	}, nil
}

// Append writes entries to <workspace>/logs/run-log.csv, creating the file
// and header if needed.
func Append(workspace string, entries []Entry) error {
	dir := filepath.Join(workspace, logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(workspace, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	return cw.Error()
}

// Read returns all entries from <workspace>/logs/run-log.csv.
// Returns an empty slice if the file does not exist.
func Read(workspace string) ([]Entry, error) {
	path := filepath.Join(workspace, logFile)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading run log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
