package importer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elelcahyani/uangku/internal/importer"
	"github.com/elelcahyani/uangku/internal/transaction"
)

func TestParse(t *testing.T) {
	input := strings.Join([]string{
		"date,amount,type,category,description",
		"2024-03-15,50000,expense,Food,Morning coffee",
		"2024-03-20,1500000,income,Salary,March paycheck",
	}, "\n")

	params, err := importer.NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, params, 2)

	assert.Equal(t, transaction.AddParams{
		Amount:      50000,
		Description: "Morning coffee",
		Category:    "Food",
		Type:        transaction.TypeExpense,
		Date:        "2024-03-15",
	}, params[0])

	assert.Equal(t, transaction.TypeIncome, params[1].Type)
	assert.Equal(t, float64(1500000), params[1].Amount)
}

func TestParse_HeaderOrderIndependent(t *testing.T) {
	input := strings.Join([]string{
		"Description,Category,Type,Amount,Date",
		"Bus ticket,Transport,expense,4500,2024-03-01",
	}, "\n")

	params, err := importer.NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, params, 1)
	assert.Equal(t, "Bus ticket", params[0].Description)
	assert.Equal(t, "2024-03-01", params[0].Date)
}

func TestParse_Errors(t *testing.T) {
	type testCase struct {
		name    string
		input   string
		wantErr string
	}

	tests := []testCase{
		{
			name:    "MissingColumn",
			input:   "date,amount,type\n2024-03-01,10,expense",
			wantErr: "missing column",
		},
		{
			name:    "BadDate",
			input:   "date,amount,type,category,description\n15/03/2024,10,expense,Food,x",
			wantErr: "invalid date",
		},
		{
			name:    "BadAmount",
			input:   "date,amount,type,category,description\n2024-03-01,abc,expense,Food,x",
			wantErr: "invalid amount",
		},
		{
			name:    "BadType",
			input:   "date,amount,type,category,description\n2024-03-01,10,transfer,Food,x",
			wantErr: "invalid type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := importer.NewParser().Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	params, err := importer.NewParser().Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, params)
}
