package journals_test

import (
	"testing"

	"github.com/contazen/erp-ledger/internal/core/domain"
	"github.com/contazen/erp-ledger/internal/core/journals"
	"github.com/contazen/erp-ledger/internal/utils/accounting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchaseInvoiceLines(t *testing.T) {
	tests := []struct {
		name string
		in   domain.PurchaseInvoiceInput
		want map[string]string
	}{
		{
			name: "goods invoice with deductible VAT",
			in: domain.PurchaseInvoiceInput{
				Amount:        dec("119"),
				NetAmount:     dec("100"),
				VATAmount:     dec("19"),
				VATDeductible: true,
				ExpenseType:   domain.ExpenseGoods,
				Description:   "Stock purchase",
			},
			want: map[string]string{"401": "-119", "4426": "19", "371": "100"},
		},
		{
			name: "cash-VAT invoice defers the VAT",
			in: domain.PurchaseInvoiceInput{
				Amount:        dec("119"),
				NetAmount:     dec("100"),
				VATAmount:     dec("19"),
				VATDeductible: true,
				CashVAT:       true,
				ExpenseType:   domain.ExpenseServices,
				Description:   "Consulting invoice",
			},
			want: map[string]string{"401": "-119", "4428": "19", "628": "100"},
		},
		{
			name: "non-deductible VAT stays in the cost",
			in: domain.PurchaseInvoiceInput{
				Amount:        dec("119"),
				NetAmount:     dec("100"),
				VATAmount:     dec("19"),
				VATDeductible: false,
				ExpenseType:   domain.ExpenseFuel,
				Description:   "Fuel receipt",
			},
			want: map[string]string{"401": "-119", "3022": "119"},
		},
		{
			name: "utilities invoice",
			in: domain.PurchaseInvoiceInput{
				Amount:        dec("595"),
				NetAmount:     dec("500"),
				VATAmount:     dec("95"),
				VATDeductible: true,
				ExpenseType:   domain.ExpenseUtilities,
				Description:   "Electricity",
			},
			want: map[string]string{"401": "-595", "4426": "95", "605": "500"},
		},
		{
			name: "unknown expense type falls back to third-party services",
			in: domain.PurchaseInvoiceInput{
				Amount:        dec("50"),
				NetAmount:     dec("50"),
				VATDeductible: false,
				ExpenseType:   domain.PurchaseExpenseType("SOMETHING_ELSE"),
				Description:   "Misc invoice",
			},
			want: map[string]string{"401": "-50", "628": "50"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := journals.PurchaseInvoiceLines(tt.in)

			require.NoError(t, accounting.ValidateBalancedLines(lines))

			got := lineAmounts(lines)
			require.Len(t, got, len(tt.want))
			for account, amount := range tt.want {
				assert.True(t, dec(amount).Equal(got[account]),
					"account %s: want %s, got %s", account, amount, got[account])
			}
		})
	}
}

func TestCashVATTransferLines(t *testing.T) {
	t.Run("full payment moves the full VAT", func(t *testing.T) {
		lines := journals.CashVATTransferLines(domain.PurchasePaymentInput{
			InvoiceNumber: "F-100",
			InvoiceAmount: dec("119"),
			InvoiceVAT:    dec("19"),
			PaymentAmount: dec("119"),
		})

		require.NoError(t, accounting.ValidateBalancedLines(lines))
		got := lineAmounts(lines)
		assert.True(t, dec("19").Equal(got["4426"]))
		assert.True(t, dec("-19").Equal(got["4428"]))
	})

	t.Run("half payment moves half the VAT", func(t *testing.T) {
		lines := journals.CashVATTransferLines(domain.PurchasePaymentInput{
			InvoiceNumber: "F-101",
			InvoiceAmount: dec("119"),
			InvoiceVAT:    dec("19"),
			PaymentAmount: dec("59.50"),
		})

		got := lineAmounts(lines)
		assert.True(t, dec("9.5").Equal(got["4426"]), "got %s", got["4426"])
		assert.True(t, dec("-9.5").Equal(got["4428"]))
	})

	t.Run("pro-rata share rounds to two decimals", func(t *testing.T) {
		lines := journals.CashVATTransferLines(domain.PurchasePaymentInput{
			InvoiceNumber: "F-102",
			InvoiceAmount: dec("300"),
			InvoiceVAT:    dec("57"),
			PaymentAmount: dec("100"),
		})

		// 57 * 100 / 300 = 19 exactly; 57 * 100.50 / 300 would not be.
		got := lineAmounts(lines)
		assert.True(t, dec("19").Equal(got["4426"]))

		lines = journals.CashVATTransferLines(domain.PurchasePaymentInput{
			InvoiceNumber: "F-103",
			InvoiceAmount: dec("300"),
			InvoiceVAT:    dec("57"),
			PaymentAmount: dec("100.50"),
		})
		got = lineAmounts(lines)
		assert.True(t, dec("19.10").Equal(got["4426"]), "got %s", got["4426"])
	})
}
