package journals

import (
	"github.com/contazen/erp-ledger/internal/core/domain"
)

// bankRule produces the primary lines for one bank transaction type. The
// input amount may be signed (interest, foreign exchange); every rule must
// return a balanced set.
type bankRule func(in domain.BankTransactionInput) []domain.NewLine

var bankRules = map[domain.BankTransactionType]bankRule{
	domain.BankIncomingPayment: func(in domain.BankTransactionInput) []domain.NewLine {
		amt := in.Amount.Abs()
		return []domain.NewLine{
			debit(in.BankAccountCode, amt, in.Description),
			credit(AccountCustomers, amt, in.Description),
		}
	},
	domain.BankOutgoingPayment: func(in domain.BankTransactionInput) []domain.NewLine {
		amt := in.Amount.Abs()
		return []domain.NewLine{
			debit(AccountSuppliers, amt, in.Description),
			credit(in.BankAccountCode, amt, in.Description),
		}
	},
	domain.BankFee: func(in domain.BankTransactionInput) []domain.NewLine {
		amt := in.Amount.Abs()
		return []domain.NewLine{
			debit(AccountBankFees, amt, in.Description),
			credit(in.BankAccountCode, amt, in.Description),
		}
	},
	domain.BankInterest: func(in domain.BankTransactionInput) []domain.NewLine {
		amt := in.Amount.Abs()
		if in.Amount.Sign() >= 0 {
			return []domain.NewLine{
				debit(in.BankAccountCode, amt, in.Description),
				credit(AccountInterestIncome, amt, in.Description),
			}
		}
		return []domain.NewLine{
			debit(AccountInterestExpense, amt, in.Description),
			credit(in.BankAccountCode, amt, in.Description),
		}
	},
	domain.BankLoanDisbursement: func(in domain.BankTransactionInput) []domain.NewLine {
		amt := in.Amount.Abs()
		return []domain.NewLine{
			debit(in.BankAccountCode, amt, in.Description),
			credit(AccountLoans, amt, in.Description),
		}
	},
	domain.BankLoanRepayment: func(in domain.BankTransactionInput) []domain.NewLine {
		amt := in.Amount.Abs()
		principal := amt.Sub(in.Fees)
		lines := []domain.NewLine{debit(AccountLoans, principal, in.Description)}
		if in.Fees.Sign() > 0 {
			lines = append(lines, debit(AccountInterestExpense, in.Fees, in.Description+" (interest)"))
		}
		return append(lines, credit(in.BankAccountCode, amt, in.Description))
	},
	domain.BankForeignExchange: func(in domain.BankTransactionInput) []domain.NewLine {
		amt := in.Amount.Abs()
		if in.Amount.Sign() >= 0 {
			return []domain.NewLine{
				debit(in.BankAccountCode, amt, in.Description),
				credit(AccountFXGain, amt, in.Description),
			}
		}
		return []domain.NewLine{
			debit(AccountFXLoss, amt, in.Description),
			credit(in.BankAccountCode, amt, in.Description),
		}
	},
	domain.BankTransfer: func(in domain.BankTransactionInput) []domain.NewLine {
		amt := in.Amount.Abs()
		if in.Amount.Sign() >= 0 {
			return []domain.NewLine{
				debit(in.BankAccountCode, amt, in.Description),
				credit(AccountTransit, amt, in.Description),
			}
		}
		return []domain.NewLine{
			debit(AccountTransit, amt, in.Description),
			credit(in.BankAccountCode, amt, in.Description),
		}
	},
}

// feeConsumingBankTypes already account for fees inside their own rule, so
// the generic fee line must not be appended for them.
var feeConsumingBankTypes = map[domain.BankTransactionType]bool{
	domain.BankFee:           true,
	domain.BankLoanRepayment: true,
}

// BankLines maps a bank transaction to its ledger lines. Unknown types fall
// back to the suspense account in the sign-correct direction.
func BankLines(in domain.BankTransactionInput) []domain.NewLine {
	rule, ok := bankRules[in.TransactionType]
	if !ok {
		return suspenseLines(in.BankAccountCode, in.Amount, in.Description)
	}
	lines := rule(in)
	if !feeConsumingBankTypes[in.TransactionType] {
		lines = appendFeeLine(lines, in.BankAccountCode, in.Fees, in.Description)
	}
	return lines
}
