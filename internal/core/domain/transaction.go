package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankTransactionType enumerates the supported bank journal events.
type BankTransactionType string

const (
	BankIncomingPayment  BankTransactionType = "INCOMING_PAYMENT"
	BankOutgoingPayment  BankTransactionType = "OUTGOING_PAYMENT"
	BankFee              BankTransactionType = "FEE"
	BankInterest         BankTransactionType = "INTEREST"
	BankLoanDisbursement BankTransactionType = "LOAN_DISBURSEMENT"
	BankLoanRepayment    BankTransactionType = "LOAN_REPAYMENT"
	BankForeignExchange  BankTransactionType = "FOREIGN_EXCHANGE"
	BankTransfer         BankTransactionType = "TRANSFER"
	BankOther            BankTransactionType = "OTHER"
)

// CashTransactionType is the direction of a cash register movement.
type CashTransactionType string

const (
	CashReceipt    CashTransactionType = "RECEIPT"
	CashPayment    CashTransactionType = "PAYMENT"
	CashAdjustment CashTransactionType = "ADJUSTMENT"
)

// CashTransactionPurpose refines a cash receipt or payment.
type CashTransactionPurpose string

const (
	CashPurposeCustomerPayment CashTransactionPurpose = "CUSTOMER_PAYMENT"
	CashPurposeSupplierPayment CashTransactionPurpose = "SUPPLIER_PAYMENT"
	CashPurposeSalary          CashTransactionPurpose = "SALARY"
	CashPurposeAdvance         CashTransactionPurpose = "ADVANCE"
	CashPurposeBankWithdrawal  CashTransactionPurpose = "BANK_WITHDRAWAL"
	CashPurposeBankDeposit     CashTransactionPurpose = "BANK_DEPOSIT"
	CashPurposeDirectSale      CashTransactionPurpose = "DIRECT_SALE"
	CashPurposeOther           CashTransactionPurpose = "OTHER"
)

// BankTransaction is the persisted record of one bank account movement,
// carrying the running balance around the moment of recording.
type BankTransaction struct {
	TransactionID   string              `json:"transactionID"`
	BankAccountID   string              `json:"bankAccountID"`
	CompanyID       string              `json:"companyID"`
	TransactionType BankTransactionType `json:"transactionType"`
	Amount          decimal.Decimal     `json:"amount"` // Signed movement on the carrier
	Fees            decimal.Decimal     `json:"fees"`
	CurrencyCode    string              `json:"currencyCode"`
	Description     string              `json:"description"`
	CorrelationRef  string              `json:"correlationRef,omitempty"` // Links the two legs of a transfer
	BalanceBefore   decimal.Decimal     `json:"balanceBefore"`
	BalanceAfter    decimal.Decimal     `json:"balanceAfter"`
	LedgerEntryID   string              `json:"ledgerEntryID"`
	TransactionDate time.Time           `json:"transactionDate"`
	AuditFields
}

// CashTransaction is the persisted record of one cash register movement.
type CashTransaction struct {
	TransactionID   string                 `json:"transactionID"`
	CashRegisterID  string                 `json:"cashRegisterID"`
	CompanyID       string                 `json:"companyID"`
	TransactionType CashTransactionType    `json:"transactionType"`
	Purpose         CashTransactionPurpose `json:"purpose"`
	Amount          decimal.Decimal        `json:"amount"` // Signed movement on the carrier
	CurrencyCode    string                 `json:"currencyCode"`
	Description     string                 `json:"description"`
	ReceiptNumber   string                 `json:"receiptNumber,omitempty"`
	CorrelationRef  string                 `json:"correlationRef,omitempty"`
	BalanceBefore   decimal.Decimal        `json:"balanceBefore"`
	BalanceAfter    decimal.Decimal        `json:"balanceAfter"`
	LedgerEntryID   string                 `json:"ledgerEntryID"`
	TransactionDate time.Time              `json:"transactionDate"`
	AuditFields
}

// CarrierPosting attaches a carrier movement to a ledger entry so the
// repository can persist both, and the atomic balance increment, in one
// database transaction. Exactly one of Bank and Cash is set.
//
// ExpectedBalanceBefore, when set, is the carrier balance the movement was
// computed against. The repository compares it with the locked row's balance
// and aborts the transaction on a mismatch, so a movement based on a stale
// read (a cash count raced by another posting) never commits.
type CarrierPosting struct {
	Bank                  *BankTransaction
	Cash                  *CashTransaction
	ExpectedBalanceBefore *decimal.Decimal
}

// CarrierID returns the identity of the carrier being posted to.
func (p *CarrierPosting) CarrierID() string {
	if p.Bank != nil {
		return p.Bank.BankAccountID
	}
	if p.Cash != nil {
		return p.Cash.CashRegisterID
	}
	return ""
}

// BalanceBefore returns the carrier balance the movement was applied on,
// filled in by the repository during the posting transaction.
func (p *CarrierPosting) BalanceBefore() decimal.Decimal {
	if p.Bank != nil {
		return p.Bank.BalanceBefore
	}
	if p.Cash != nil {
		return p.Cash.BalanceBefore
	}
	return decimal.Zero
}

// Delta returns the signed movement to apply to the carrier balance.
func (p *CarrierPosting) Delta() decimal.Decimal {
	if p.Bank != nil {
		return p.Bank.Amount
	}
	if p.Cash != nil {
		return p.Cash.Amount
	}
	return decimal.Zero
}
