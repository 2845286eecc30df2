package journals_test

import (
	"testing"

	"github.com/contazen/erp-ledger/internal/core/domain"
	"github.com/contazen/erp-ledger/internal/core/journals"
	"github.com/contazen/erp-ledger/internal/utils/accounting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalesInvoiceLines(t *testing.T) {
	t.Run("standard invoice with VAT", func(t *testing.T) {
		lines := journals.SalesInvoiceLines(domain.SalesInvoiceInput{
			InvoiceNumber: "INV-2025-001",
			Amount:        dec("119"),
			NetAmount:     dec("100"),
			VATAmount:     dec("19"),
			Description:   "Services rendered",
		})

		require.NoError(t, accounting.ValidateBalancedLines(lines))
		got := lineAmounts(lines)
		require.Len(t, got, 3)
		assert.True(t, dec("119").Equal(got["4111"]))
		assert.True(t, dec("-19").Equal(got["4427"]))
		assert.True(t, dec("-100").Equal(got["707"]))
	})

	t.Run("VAT-exempt invoice books the gross as revenue", func(t *testing.T) {
		lines := journals.SalesInvoiceLines(domain.SalesInvoiceInput{
			InvoiceNumber: "INV-2025-002",
			Amount:        dec("100"),
			NetAmount:     dec("100"),
			Description:   "Exempt delivery",
		})

		require.NoError(t, accounting.ValidateBalancedLines(lines))
		got := lineAmounts(lines)
		require.Len(t, got, 2)
		assert.True(t, dec("100").Equal(got["4111"]))
		assert.True(t, dec("-100").Equal(got["707"]))
	})
}

func TestCreditNoteLines_MirrorsInvoice(t *testing.T) {
	in := domain.SalesInvoiceInput{
		InvoiceNumber: "CN-2025-001",
		Amount:        dec("59.50"),
		NetAmount:     dec("50"),
		VATAmount:     dec("9.50"),
		Description:   "Partial return",
	}

	invoice := journals.SalesInvoiceLines(in)
	creditNote := journals.CreditNoteLines(in)

	require.NoError(t, accounting.ValidateBalancedLines(creditNote))
	require.Len(t, creditNote, len(invoice))
	for i := range invoice {
		assert.Equal(t, invoice[i].AccountCode, creditNote[i].AccountCode)
		assert.True(t, invoice[i].Debit.Equal(creditNote[i].Credit), "line %d debit/credit must swap", i)
		assert.True(t, invoice[i].Credit.Equal(creditNote[i].Debit), "line %d credit/debit must swap", i)
	}
}
