package accounting

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/contazen/erp-ledger/internal/apperrors"
	"github.com/contazen/erp-ledger/internal/core/domain"
)

// ParseAccountNumber classifies a chart-of-accounts code into its class,
// group, synthetic and analytic segments. The analytic suffix, when present,
// follows a "." separator ("5121.RON" -> synthetic 5121, analytic RON).
//
// Class is the first digit; group is the first two digits, or class*10 for
// single-digit codes.
func ParseAccountNumber(code string) (domain.AccountParts, error) {
	synthetic := code
	analytic := ""
	if idx := strings.Index(code, "."); idx >= 0 {
		synthetic = code[:idx]
		analytic = code[idx+1:]
	}

	if synthetic == "" {
		return domain.AccountParts{}, fmt.Errorf("%w: empty account code", apperrors.ErrValidation)
	}
	if _, err := strconv.Atoi(synthetic); err != nil {
		return domain.AccountParts{}, fmt.Errorf("%w: account code %q is not numeric", apperrors.ErrValidation, code)
	}

	class := int(synthetic[0] - '0')
	if class < 1 || class > 9 {
		return domain.AccountParts{}, fmt.Errorf("%w: account code %q has no valid class digit", apperrors.ErrValidation, code)
	}

	group := class * 10
	if len(synthetic) > 1 {
		g, err := strconv.Atoi(synthetic[:2])
		if err != nil {
			return domain.AccountParts{}, fmt.Errorf("%w: account code %q has no valid group", apperrors.ErrValidation, code)
		}
		group = g
	}

	return domain.AccountParts{
		Class:     class,
		Group:     group,
		Synthetic: synthetic,
		Analytic:  analytic,
	}, nil
}
