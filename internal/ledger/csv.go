package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/workwealth/workwealth/internal/model"
)

// ExportHeader is the CSV header for transaction exports.
const ExportHeader = "id,description,amount,type,date,category"

const (
	exportNumFields = 6
	exportDateFmt   = "2006-01-02 15:04:05"
	colID           = 0
	colDescription  = 1
	colAmount       = 2
	colType         = 3
	colDate         = 4
	colCategory     = 5
)

// ExportCSV writes transactions as CSV, header first. encoding/csv quotes
// fields containing commas or quotes, so free-text descriptions survive
// round-tripping.
func ExportCSV(w io.Writer, txs []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(ExportHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, tx := range txs {
		if err := cw.Write(marshalTransaction(tx)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

func marshalTransaction(tx model.Transaction) []string {
	row := make([]string, exportNumFields)
	row[colID] = tx.ID
	row[colDescription] = tx.Description
	row[colAmount] = tx.Amount.StringFixed(2)
	row[colType] = string(tx.Type)
	row[colDate] = tx.Date.Format(exportDateFmt)
	row[colCategory] = string(tx.Category)
	return row
}
