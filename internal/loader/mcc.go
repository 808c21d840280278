package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/greenscore-dev/greenscore/internal/model"
)

// MCCHeader is the canonical CSV header for the MCC reference table.
const MCCHeader = "mcc_code,status,name,description"

const (
	colMCCCode     = "mcc_code"
	colStatus      = "status"
	colName        = "name"
	colDescription = "description"
)

// Source exports disagree on MCC column names; the loader accepts the
// spellings seen in the wild and normalizes them to the canonical schema.
var mccColumns = map[string][]string{
	colMCCCode:     {"mcc_code", "mcc", "mcc_cd"},
	colStatus:      {"status", "green_status", "is_green", "color"},
	colName:        {"name", "mcc_name"},
	colDescription: {"description", "desc"},
}

var mccRequired = []string{colMCCCode}

// ReadMCCTable parses the MCC reference table from r. A missing status
// column means every entry defaults to not-green. Rows failing coercion
// are excluded and counted.
func ReadMCCTable(r io.Reader, file string) ([]model.MCCEntry, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, 0, &LoadError{File: file, Err: ErrEmptyTable}
	}
	if err != nil {
		return nil, 0, &LoadError{File: file, Err: fmt.Errorf("reading header: %w", err)}
	}

	cols, err := resolveColumns(header, mccColumns, mccRequired, file)
	if err != nil {
		return nil, 0, err
	}
	_, hasStatus := cols[colStatus]

	var entries []model.MCCEntry
	excluded := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			excluded++
			continue
		}
		if err != nil {
			return nil, 0, &LoadError{File: file, Err: err}
		}

		code, err := strconv.Atoi(cols.field(rec, colMCCCode))
		if err != nil {
			excluded++
			continue
		}

		status := model.StatusNotGreen
		if hasStatus {
			parsed, ok := model.ParseGreenStatus(cols.field(rec, colStatus))
			if !ok {
				excluded++
				continue
			}
			status = parsed
		}

		entries = append(entries, model.MCCEntry{
			Code:        code,
			Status:      status,
			Name:        cols.field(rec, colName),
			Description: cols.field(rec, colDescription),
		})
	}
	return entries, excluded, nil
}
