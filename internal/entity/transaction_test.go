package entity

import (
	"StudentPlanner/internal/api/finance"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTransactionType(t *testing.T) {
	parsed, err := ParseTransactionType("income")
	require.NoError(t, err)
	assert.Equal(t, TransactionTypeIncome, parsed)

	parsed, err = ParseTransactionType(" KELUAR ")
	require.NoError(t, err)
	assert.Equal(t, TransactionTypeExpense, parsed)

	_, err = ParseTransactionType("transfer")
	assert.ErrorIs(t, err, finance.ErrInvalidTransactionType)
}

func TestCashTransactionValidate(t *testing.T) {
	valid := CashTransaction{Date: "2026-03-01", Desc: "Uang saku", Amount: 500000, Type: TransactionTypeIncome}
	assert.NoError(t, valid.Validate())

	missingDate := valid
	missingDate.Date = " "
	assert.ErrorIs(t, missingDate.Validate(), finance.ErrTransactionDateRequired)

	missingDesc := valid
	missingDesc.Desc = ""
	assert.ErrorIs(t, missingDesc.Validate(), finance.ErrTransactionDescRequired)

	zeroAmount := valid
	zeroAmount.Amount = 0
	assert.ErrorIs(t, zeroAmount.Validate(), finance.ErrInvalidAmount)

	negativeAmount := valid
	negativeAmount.Amount = -5000
	assert.ErrorIs(t, negativeAmount.Validate(), finance.ErrInvalidAmount)

	badType := valid
	badType.Type = "transfer"
	assert.ErrorIs(t, badType.Validate(), finance.ErrInvalidTransactionType)
}
