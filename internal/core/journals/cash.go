package journals

import (
	"github.com/contazen/erp-ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

type cashRuleKey struct {
	Type    domain.CashTransactionType
	Purpose domain.CashTransactionPurpose
}

type cashRule func(in domain.CashTransactionInput) []domain.NewLine

var cashRules = map[cashRuleKey]cashRule{
	{domain.CashReceipt, domain.CashPurposeCustomerPayment}: func(in domain.CashTransactionInput) []domain.NewLine {
		amt := in.Amount.Abs()
		return []domain.NewLine{
			debit(in.RegisterCode, amt, in.Description),
			credit(AccountCustomers, amt, in.Description),
		}
	},
	{domain.CashReceipt, domain.CashPurposeDirectSale}: func(in domain.CashTransactionInput) []domain.NewLine {
		if in.IsFiscal {
			return fiscalSaleLines(in)
		}
		amt := in.Amount.Abs()
		return []domain.NewLine{
			debit(in.RegisterCode, amt, in.Description),
			credit(AccountRevenue, amt, in.Description),
		}
	},
	{domain.CashReceipt, domain.CashPurposeBankWithdrawal}: func(in domain.CashTransactionInput) []domain.NewLine {
		amt := in.Amount.Abs()
		return []domain.NewLine{
			debit(in.RegisterCode, amt, in.Description),
			credit(AccountTransit, amt, in.Description),
		}
	},
	{domain.CashReceipt, domain.CashPurposeAdvance}: func(in domain.CashTransactionInput) []domain.NewLine {
		amt := in.Amount.Abs()
		return []domain.NewLine{
			debit(in.RegisterCode, amt, in.Description),
			credit(AccountAdvances, amt, in.Description),
		}
	},
	{domain.CashPayment, domain.CashPurposeSupplierPayment}: func(in domain.CashTransactionInput) []domain.NewLine {
		amt := in.Amount.Abs()
		return []domain.NewLine{
			debit(AccountSuppliers, amt, in.Description),
			credit(in.RegisterCode, amt, in.Description),
		}
	},
	{domain.CashPayment, domain.CashPurposeSalary}: func(in domain.CashTransactionInput) []domain.NewLine {
		amt := in.Amount.Abs()
		return []domain.NewLine{
			debit(AccountSalaries, amt, in.Description),
			credit(in.RegisterCode, amt, in.Description),
		}
	},
	{domain.CashPayment, domain.CashPurposeAdvance}: func(in domain.CashTransactionInput) []domain.NewLine {
		amt := in.Amount.Abs()
		return []domain.NewLine{
			debit(AccountAdvances, amt, in.Description),
			credit(in.RegisterCode, amt, in.Description),
		}
	},
	{domain.CashPayment, domain.CashPurposeBankDeposit}: func(in domain.CashTransactionInput) []domain.NewLine {
		amt := in.Amount.Abs()
		return []domain.NewLine{
			debit(AccountTransit, amt, in.Description),
			credit(in.RegisterCode, amt, in.Description),
		}
	},
}

// fiscalSaleLines books a direct sale marked fiscal with its VAT breakdown:
// cash in for the gross, revenue for the net, collected VAT for the rest.
// Net and VAT come from the receipt items when present, otherwise from the
// supplied VAT amount against the gross.
func fiscalSaleLines(in domain.CashTransactionInput) []domain.NewLine {
	gross := in.Amount.Abs()

	var net, vat decimal.Decimal
	if len(in.Items) > 0 {
		for _, item := range in.Items {
			net = net.Add(item.NetAmount)
			vat = vat.Add(item.VATAmount)
		}
	} else {
		vat = in.VATAmount
		net = gross.Sub(vat)
	}

	lines := []domain.NewLine{
		debit(in.RegisterCode, gross, in.Description),
		credit(AccountRevenue, net, in.Description),
	}
	if vat.Sign() > 0 {
		lines = append(lines, credit(AccountVATCollected, vat, in.Description+" (VAT)"))
	}
	return lines
}

// CashLines maps a cash register event to its ledger lines.
//
// Count adjustments branch on the sign of the amount: an overage books cash
// against overage income, a shortage books shortage expense against cash.
// Any unmapped (type, purpose) pair falls back to the suspense account.
func CashLines(in domain.CashTransactionInput) []domain.NewLine {
	if in.TransactionType == domain.CashAdjustment {
		return cashAdjustmentLines(in)
	}

	rule, ok := cashRules[cashRuleKey{in.TransactionType, in.Purpose}]
	if !ok {
		amount := in.Amount
		if in.TransactionType == domain.CashPayment && amount.Sign() > 0 {
			amount = amount.Neg()
		}
		return suspenseLines(in.RegisterCode, amount, in.Description)
	}
	lines := rule(in)
	return appendFeeLine(lines, in.RegisterCode, in.Fees, in.Description)
}

func cashAdjustmentLines(in domain.CashTransactionInput) []domain.NewLine {
	amt := in.Amount.Abs()
	if in.Amount.Sign() >= 0 {
		return []domain.NewLine{
			debit(in.RegisterCode, amt, in.Description),
			credit(AccountCashOverage, amt, in.Description),
		}
	}
	return []domain.NewLine{
		debit(AccountCashShortage, amt, in.Description),
		credit(in.RegisterCode, amt, in.Description),
	}
}
