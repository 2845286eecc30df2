package journals

import (
	"github.com/contazen/erp-ledger/internal/core/domain"
)

// SalesInvoiceLines books an issued customer invoice: customer receivable
// for the gross, collected VAT, and revenue for the net.
func SalesInvoiceLines(in domain.SalesInvoiceInput) []domain.NewLine {
	gross := in.Amount.Abs()
	lines := []domain.NewLine{
		debit(AccountCustomers, gross, in.Description),
	}
	net := in.NetAmount
	if in.VATAmount.Sign() > 0 {
		lines = append(lines, credit(AccountVATCollected, in.VATAmount, in.Description+" (VAT)"))
	} else {
		net = gross
	}
	return append(lines, credit(AccountRevenue, net, in.Description))
}

// CreditNoteLines is the exact mirror of the sales invoice for the returned
// portion: every debit and credit swapped.
func CreditNoteLines(in domain.SalesInvoiceInput) []domain.NewLine {
	invoice := SalesInvoiceLines(in)
	mirrored := make([]domain.NewLine, len(invoice))
	for i, l := range invoice {
		mirrored[i] = domain.NewLine{
			AccountCode: l.AccountCode,
			Debit:       l.Credit,
			Credit:      l.Debit,
			Description: l.Description,
		}
	}
	return mirrored
}
