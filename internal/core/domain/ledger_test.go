package domain_test

import (
	"testing"
	"time"

	"github.com/contazen/erp-ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestSeriesForType(t *testing.T) {
	tests := []struct {
		entryType domain.EntryType
		want      string
	}{
		{domain.EntrySales, "VAN"},
		{domain.EntryPurchase, "CUM"},
		{domain.EntryBank, "BNC"},
		{domain.EntryCash, "CAS"},
		{domain.EntryGeneral, "GEN"},
		{domain.EntryAdjustment, "ADJ"},
		{domain.EntryReversal, "STO"},
		{domain.EntryType("SOMETHING"), "GEN"}, // unknown falls back to general
	}

	for _, tt := range tests {
		t.Run(string(tt.entryType), func(t *testing.T) {
			assert.Equal(t, tt.want, domain.SeriesForType(tt.entryType))
		})
	}
}

func TestFormatJournalNumber(t *testing.T) {
	assert.Equal(t, "VAN/2025/000042", domain.FormatJournalNumber("VAN", 2025, 42))
	assert.Equal(t, "GEN/2025/000001", domain.FormatJournalNumber("GEN", 2025, 1))
	assert.Equal(t, "BNC/2026/1234567", domain.FormatJournalNumber("BNC", 2026, 1234567))
}

func TestValidEntryType(t *testing.T) {
	assert.True(t, domain.ValidEntryType(domain.EntrySales))
	assert.True(t, domain.ValidEntryType(domain.EntryReversal))
	assert.False(t, domain.ValidEntryType(domain.EntryType("")))
	assert.False(t, domain.ValidEntryType(domain.EntryType("PAYROLL")))
}

func TestAccountingPeriod_Contains(t *testing.T) {
	period := domain.AccountingPeriod{
		StartDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, period.Contains(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)), "start date is inclusive")
	assert.True(t, period.Contains(time.Date(2025, 3, 31, 23, 0, 0, 0, time.UTC)), "end date is inclusive")
	assert.True(t, period.Contains(time.Date(2025, 3, 15, 12, 30, 0, 0, time.UTC)))
	assert.False(t, period.Contains(time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)))
	assert.False(t, period.Contains(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)))
}
