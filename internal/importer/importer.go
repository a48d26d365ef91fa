// Package importer parses CSV transaction exports into add-transaction
// params. The expected columns are date, amount, type, category and
// description, matched by header name in any order. Files are decoded to
// UTF-8 first so exports from spreadsheet tools in legacy encodings still
// parse.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	enc "github.com/elelcahyani/uangku/internal/encoding"
	"github.com/elelcahyani/uangku/internal/transaction"
)

var requiredColumns = []string{"date", "amount", "type", "category", "description"}

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]transaction.AddParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	if len(rows) == 0 {
		return nil, nil
	}

	cols, err := mapHeader(rows[0])
	if err != nil {
		return nil, err
	}

	params := make([]transaction.AddParams, 0, len(rows)-1)

	for i, row := range rows[1:] {
		p, err := parseRow(cols, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}

		params = append(params, p)
	}

	return params, nil
}

// mapHeader maps the required column names to their index in the header
// row, case-insensitively.
func mapHeader(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))

	for i, cell := range header {
		cols[strings.ToLower(strings.TrimSpace(cell))] = i
	}

	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing column %q in header", name)
		}
	}

	return cols, nil
}

func parseRow(cols map[string]int, row []string) (transaction.AddParams, error) {
	field := func(name string) string {
		idx := cols[name]
		if idx >= len(row) {
			return ""
		}

		return strings.TrimSpace(row[idx])
	}

	date := field("date")
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return transaction.AddParams{}, fmt.Errorf("invalid date %q: %w", date, err)
	}

	amount, err := strconv.ParseFloat(field("amount"), 64)
	if err != nil {
		return transaction.AddParams{}, fmt.Errorf("invalid amount %q: %w", field("amount"), err)
	}

	typ := transaction.Type(strings.ToLower(field("type")))
	if typ != transaction.TypeIncome && typ != transaction.TypeExpense {
		return transaction.AddParams{}, fmt.Errorf("invalid type %q", field("type"))
	}

	return transaction.AddParams{
		Amount:      amount,
		Description: field("description"),
		Category:    field("category"),
		Type:        typ,
		Date:        date,
	}, nil
}
