package dto

import (
	"time"

	"github.com/contazen/erp-ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLedgerLineRequest is one candidate line of a manual ledger entry.
type CreateLedgerLineRequest struct {
	AccountCode string          `json:"accountCode" binding:"required"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description"`
}

// CreateLedgerEntryRequest creates a manual (GENERAL/ADJUSTMENT) entry.
type CreateLedgerEntryRequest struct {
	EntryType       domain.EntryType          `json:"entryType" binding:"required"`
	Amount          decimal.Decimal           `json:"amount"`
	Description     string                    `json:"description" binding:"required"`
	Lines           []CreateLedgerLineRequest `json:"lines" binding:"required,min=2,dive"`
	EntryDate       *time.Time                `json:"entryDate,omitempty"`
	DocumentDate    *time.Time                `json:"documentDate,omitempty"`
	ReferenceNumber string                    `json:"referenceNumber,omitempty"`
	FranchiseID     *string                   `json:"franchiseID,omitempty"`
}

// ToNewEntry converts the request into the domain creation input.
func (r CreateLedgerEntryRequest) ToNewEntry(companyID, actorID string) domain.NewEntry {
	lines := make([]domain.NewLine, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = domain.NewLine{
			AccountCode: l.AccountCode,
			Debit:       l.Debit,
			Credit:      l.Credit,
			Description: l.Description,
		}
	}
	return domain.NewEntry{
		CompanyID:       companyID,
		FranchiseID:     r.FranchiseID,
		EntryType:       r.EntryType,
		Amount:          r.Amount,
		Description:     r.Description,
		Lines:           lines,
		EntryDate:       r.EntryDate,
		DocumentDate:    r.DocumentDate,
		ReferenceNumber: r.ReferenceNumber,
		ActorID:         actorID,
	}
}

// RecordTransactionRequest creates the minimal two-line balanced entry.
type RecordTransactionRequest struct {
	DebitAccount    string          `json:"debitAccount" binding:"required"`
	CreditAccount   string          `json:"creditAccount" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	Description     string          `json:"description" binding:"required"`
	EntryDate       *time.Time      `json:"entryDate,omitempty"`
	ReferenceNumber string          `json:"referenceNumber,omitempty"`
}

// ReverseLedgerEntryRequest reverses a posted entry.
type ReverseLedgerEntryRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ListLedgerEntriesParams holds filters for listing entries.
type ListLedgerEntriesParams struct {
	EntryType *domain.EntryType `form:"entryType"`
	Limit     int               `form:"limit"`
	NextToken *string           `form:"nextToken"`
}

// LedgerLineResponse is the API shape of a persisted line.
type LedgerLineResponse struct {
	LineID      string          `json:"lineID"`
	AccountCode string          `json:"accountCode"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description"`
}

// LedgerEntryResponse is the API shape of a persisted entry.
type LedgerEntryResponse struct {
	EntryID         string               `json:"entryID"`
	CompanyID       string               `json:"companyID"`
	FranchiseID     *string              `json:"franchiseID,omitempty"`
	EntryType       domain.EntryType     `json:"entryType"`
	ReferenceNumber string               `json:"referenceNumber"`
	JournalNumber   string               `json:"journalNumber"`
	EntryDate       time.Time            `json:"entryDate"`
	DocumentDate    time.Time            `json:"documentDate"`
	Amount          decimal.Decimal      `json:"amount"`
	Description     string               `json:"description"`
	ReversedEntryID *string              `json:"reversedEntryID,omitempty"`
	Lines           []LedgerLineResponse `json:"lines,omitempty"`
	CreatedAt       time.Time            `json:"createdAt"`
	CreatedBy       string               `json:"createdBy"`
}

// ListLedgerEntriesResponse is a page of entries plus the continuation token.
type ListLedgerEntriesResponse struct {
	Entries   []LedgerEntryResponse `json:"entries"`
	NextToken *string               `json:"nextToken,omitempty"`
}

// ToLedgerLineResponse converts a domain line to its API shape.
func ToLedgerLineResponse(l domain.LedgerLine) LedgerLineResponse {
	return LedgerLineResponse{
		LineID:      l.LineID,
		AccountCode: l.AccountCode,
		Debit:       l.Debit,
		Credit:      l.Credit,
		Description: l.Description,
	}
}

// ToLedgerEntryResponse converts a domain entry to its API shape.
func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	resp := LedgerEntryResponse{
		EntryID:         e.EntryID,
		CompanyID:       e.CompanyID,
		FranchiseID:     e.FranchiseID,
		EntryType:       e.EntryType,
		ReferenceNumber: e.ReferenceNumber,
		JournalNumber:   e.JournalNumber,
		EntryDate:       e.EntryDate,
		DocumentDate:    e.DocumentDate,
		Amount:          e.Amount,
		Description:     e.Description,
		ReversedEntryID: e.ReversedEntryID,
		CreatedAt:       e.CreatedAt,
		CreatedBy:       e.CreatedBy,
	}
	if len(e.Lines) > 0 {
		resp.Lines = make([]LedgerLineResponse, len(e.Lines))
		for i, l := range e.Lines {
			resp.Lines[i] = ToLedgerLineResponse(l)
		}
	}
	return resp
}
