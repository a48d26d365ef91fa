package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/elelcahyani/uangku/internal/transaction"
)

// Service writes transaction exports in the CSV layout the importer reads
// back, so an export can be re-imported elsewhere.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

var header = []string{"date", "amount", "type", "category", "description", "createdAt"}

// WriteCSV streams the transactions to w as CSV, newest first (the order
// of the collection).
func (s *Service) WriteCSV(w io.Writer, txs []transaction.Transaction) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, tx := range txs {
		row := []string{
			tx.Date,
			strconv.FormatFloat(tx.Amount, 'f', -1, 64),
			string(tx.Type),
			tx.Category,
			tx.Description,
			tx.CreatedAt.Format(time.RFC3339),
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing transaction %s: %w", tx.ID, err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}

	return nil
}
