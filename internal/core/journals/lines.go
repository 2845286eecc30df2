package journals

import (
	"github.com/contazen/erp-ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

func debit(account string, amount decimal.Decimal, description string) domain.NewLine {
	return domain.NewLine{AccountCode: account, Debit: amount, Credit: decimal.Zero, Description: description}
}

func credit(account string, amount decimal.Decimal, description string) domain.NewLine {
	return domain.NewLine{AccountCode: account, Debit: decimal.Zero, Credit: amount, Description: description}
}

// suspenseLines routes an amount we cannot classify into the suspense
// account, in the direction implied by its sign, so the entry still balances
// and the balance can be reconciled later.
func suspenseLines(carrierAccount string, amount decimal.Decimal, description string) []domain.NewLine {
	if description == "" {
		description = "Unclassified transaction"
	}
	abs := amount.Abs()
	if amount.Sign() >= 0 {
		return []domain.NewLine{
			debit(carrierAccount, abs, description),
			credit(AccountSuspense, abs, description),
		}
	}
	return []domain.NewLine{
		debit(AccountSuspense, abs, description),
		credit(carrierAccount, abs, description),
	}
}

// appendFeeLine adds a separate fee-expense line and rebalances the carrier
// line of the entry. An incoming movement has its carrier debit reduced by
// the fee (net amount received); an outgoing movement has its carrier credit
// increased (fee leaves the account together with the payment).
func appendFeeLine(lines []domain.NewLine, carrierAccount string, fees decimal.Decimal, description string) []domain.NewLine {
	if fees.Sign() <= 0 {
		return lines
	}
	for i := range lines {
		if lines[i].AccountCode != carrierAccount {
			continue
		}
		if lines[i].Debit.Sign() > 0 {
			lines[i].Debit = lines[i].Debit.Sub(fees)
		} else {
			lines[i].Credit = lines[i].Credit.Add(fees)
		}
		break
	}
	return append(lines, debit(AccountBankFees, fees, description+" (fee)"))
}

// CarrierDelta computes the signed movement a line set applies to the
// carrier account: debits increase the balance, credits decrease it.
func CarrierDelta(lines []domain.NewLine, carrierAccount string) decimal.Decimal {
	delta := decimal.Zero
	for _, l := range lines {
		if l.AccountCode == carrierAccount {
			delta = delta.Add(l.Debit).Sub(l.Credit)
		}
	}
	return delta
}
