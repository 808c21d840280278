package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/greenscore-dev/greenscore/internal/model"
)

// TransactionsHeader is the canonical CSV header for transactions.csv.
const TransactionsHeader = "user_id,date,amount,merchant,category,mcc"

const (
	dateFormat = "2006-01-02"

	colUserID   = "user_id"
	colDate     = "date"
	colAmount   = "amount"
	colMerchant = "merchant"
	colCategory = "category"
	colMCC      = "mcc"
)

var transactionColumns = map[string][]string{
	colUserID:   {"user_id"},
	colDate:     {"date"},
	colAmount:   {"amount"},
	colMerchant: {"merchant"},
	colCategory: {"category"},
	colMCC:      {"mcc"},
}

var transactionRequired = []string{colUserID, colDate, colAmount, colMerchant, colCategory, colMCC}

// ReadTransactions parses the transactions table from r. Rows that fail
// type coercion are excluded and counted rather than failing the load;
// the count is the second return value. A file with no header fails.
func ReadTransactions(r io.Reader, file string) ([]model.Transaction, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, 0, &LoadError{File: file, Err: ErrEmptyTable}
	}
	if err != nil {
		return nil, 0, &LoadError{File: file, Err: fmt.Errorf("reading header: %w", err)}
	}

	cols, err := resolveColumns(header, transactionColumns, transactionRequired, file)
	if err != nil {
		return nil, 0, err
	}

	var txs []model.Transaction
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

		tx, err := unmarshalTransaction(rec, cols)
		if err != nil {
			excluded++
			continue
		}
		txs = append(txs, tx)
	}
	return txs, excluded, nil
}

func unmarshalTransaction(record []string, cols columnMap) (model.Transaction, error) {
	userID, err := strconv.Atoi(cols.field(record, colUserID))
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing user_id %q: %w", cols.field(record, colUserID), err)
	}

	date, err := time.Parse(dateFormat, cols.field(record, colDate))
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", cols.field(record, colDate), err)
	}

	amount, err := decimal.NewFromString(cols.field(record, colAmount))
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", cols.field(record, colAmount), err)
	}

	mcc, err := strconv.Atoi(cols.field(record, colMCC))
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing mcc %q: %w", cols.field(record, colMCC), err)
	}

	return model.Transaction{
		UserID:   userID,
		Date:     date,
		Amount:   amount.Abs(),
		Merchant: cols.field(record, colMerchant),
		Category: cols.field(record, colCategory),
		MCC:      mcc,
	}, nil
}
