package accounting

import (
	"fmt"

	"github.com/contazen/erp-ledger/internal/apperrors"
	"github.com/contazen/erp-ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceTolerance is the maximum accepted difference between the debit and
// credit totals of an entry, in currency units.
var BalanceTolerance = decimal.RequireFromString("0.01")

// SumDebitsCredits returns the debit and credit totals of a line set.
func SumDebitsCredits(lines []domain.NewLine) (decimal.Decimal, decimal.Decimal) {
	debits := decimal.Zero
	credits := decimal.Zero
	for _, l := range lines {
		debits = debits.Add(l.Debit)
		credits = credits.Add(l.Credit)
	}
	return debits, credits
}

// ValidateBalancedLines checks the double-entry invariant: the debit total
// must equal the credit total within BalanceTolerance. Negative amounts on
// either side are rejected outright.
func ValidateBalancedLines(lines []domain.NewLine) error {
	if len(lines) == 0 {
		return fmt.Errorf("%w: entry has no lines", apperrors.ErrValidation)
	}
	for i, l := range lines {
		if l.AccountCode == "" {
			return fmt.Errorf("%w: line %d has no account code", apperrors.ErrValidation, i)
		}
		if l.Debit.IsNegative() || l.Credit.IsNegative() {
			return fmt.Errorf("%w: line %d (%s) has a negative amount", apperrors.ErrValidation, i, l.AccountCode)
		}
	}
	debits, credits := SumDebitsCredits(lines)
	if debits.Sub(credits).Abs().GreaterThan(BalanceTolerance) {
		return fmt.Errorf("%w: debits %s, credits %s", apperrors.ErrUnbalanced, debits.String(), credits.String())
	}
	return nil
}

// ReversalLines builds the mirror of a persisted line set: debit and credit
// swapped on every line, descriptions prefixed so the reversal reads as such.
func ReversalLines(lines []domain.LedgerLine) []domain.NewLine {
	reversed := make([]domain.NewLine, len(lines))
	for i, l := range lines {
		reversed[i] = domain.NewLine{
			AccountCode: l.AccountCode,
			Debit:       l.Credit,
			Credit:      l.Debit,
			Description: "Reversal: " + l.Description,
		}
	}
	return reversed
}

// EntryAmount computes the economic value of a balanced line set, which is
// the debit total (equal to the credit total within tolerance).
func EntryAmount(lines []domain.NewLine) decimal.Decimal {
	debits, _ := SumDebitsCredits(lines)
	return debits
}
