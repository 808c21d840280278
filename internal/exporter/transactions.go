package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/greenscore-dev/greenscore/internal/model"
)

// TransactionsHeader is the CSV header for transactions.csv, the enriched
// transaction handoff file.
const TransactionsHeader = "user_id,date,amount,merchant,category,mcc,mcc_status,is_green,eco_points,repeat_purchase"

const (
	txFields      = 10
	tColUserID    = 0
	tColDate      = 1
	tColAmount    = 2
	tColMerchant  = 3
	tColCategory  = 4
	tColMCC       = 5
	tColMCCStatus = 6
	tColIsGreen   = 7
	tColEcoPoints = 8
	tColRepeat    = 9
)

// MarshalTransaction converts an enriched transaction to a CSV row.
func MarshalTransaction(e model.EnrichedTransaction) []string {
	row := make([]string, txFields)
	row[tColUserID] = strconv.Itoa(e.UserID)
	row[tColDate] = e.Date.Format(dateFormat)
	row[tColAmount] = e.Amount.StringFixed(2)
	row[tColMerchant] = e.Merchant
	row[tColCategory] = e.Category
	row[tColMCC] = strconv.Itoa(e.MCC)
	row[tColMCCStatus] = string(e.MCCStatus)
	row[tColIsGreen] = strconv.FormatBool(e.IsGreen)
	row[tColEcoPoints] = strconv.FormatInt(e.EcoPoints, 10)
	row[tColRepeat] = strconv.FormatBool(e.RepeatPurchase)
	return row
}

// WriteTransactions writes enriched transactions to a transactions.csv
// writer (including header). Rows keep the input order.
func WriteTransactions(w io.Writer, txns []model.EnrichedTransaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(TransactionsHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, e := range txns {
		if err := cw.Write(MarshalTransaction(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}
