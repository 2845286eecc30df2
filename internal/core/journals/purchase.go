package journals

import (
	"github.com/contazen/erp-ledger/internal/core/domain"
)

// PurchaseInvoiceLines books a received supplier invoice: supplier payable
// for the gross, deductible (or deferred, under cash-VAT) VAT, and the
// expense account selected by the invoice's expense type for the net.
func PurchaseInvoiceLines(in domain.PurchaseInvoiceInput) []domain.NewLine {
	gross := in.Amount.Abs()
	lines := []domain.NewLine{
		credit(AccountSuppliers, gross, in.Description),
	}

	net := in.NetAmount
	if in.VATAmount.Sign() > 0 && in.VATDeductible {
		vatAccount := AccountVATDeductible
		if in.CashVAT {
			vatAccount = AccountVATDeferred
		}
		lines = append(lines, debit(vatAccount, in.VATAmount, in.Description+" (VAT)"))
	} else {
		// Non-deductible VAT stays in the cost of the purchase.
		net = gross
	}

	return append(lines, debit(ExpenseAccountFor(in.ExpenseType), net, in.Description))
}

// CashVATTransferLines moves the pro-rata share of deferred VAT to
// deductible when a cash-VAT invoice is (partially) paid:
// invoiceVAT * paymentAmount / invoiceAmount.
func CashVATTransferLines(in domain.PurchasePaymentInput) []domain.NewLine {
	share := in.InvoiceVAT.Mul(in.PaymentAmount).Div(in.InvoiceAmount).Round(2)
	return []domain.NewLine{
		debit(AccountVATDeductible, share, in.PaymentDescription()),
		credit(AccountVATDeferred, share, in.PaymentDescription()),
	}
}
