package accounting

import (
	"testing"

	"github.com/contazen/erp-ledger/internal/apperrors"
	"github.com/contazen/erp-ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAccountNumber(t *testing.T) {
	tests := []struct {
		code string
		want domain.AccountParts
	}{
		{"5121", domain.AccountParts{Class: 5, Group: 51, Synthetic: "5121", Analytic: ""}},
		{"401", domain.AccountParts{Class: 4, Group: 40, Synthetic: "401", Analytic: ""}},
		{"4427", domain.AccountParts{Class: 4, Group: 44, Synthetic: "4427", Analytic: ""}},
		{"5121.RON", domain.AccountParts{Class: 5, Group: 51, Synthetic: "5121", Analytic: "RON"}},
		{"4111.CLIENT01", domain.AccountParts{Class: 4, Group: 41, Synthetic: "4111", Analytic: "CLIENT01"}},
		{"7", domain.AccountParts{Class: 7, Group: 70, Synthetic: "7", Analytic: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := ParseAccountNumber(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAccountNumber_Invalid(t *testing.T) {
	invalid := []string{"", "ABC", "12x4", ".RON", "0121"}
	for _, code := range invalid {
		t.Run("rejects "+code, func(t *testing.T) {
			_, err := ParseAccountNumber(code)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}
