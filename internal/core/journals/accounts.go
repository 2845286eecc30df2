// Package journals holds the pure business-rule tables that translate typed
// domain events into candidate ledger lines. Mappers never persist anything;
// the ledger service owns validation, numbering and persistence.
package journals

import "github.com/contazen/erp-ledger/internal/core/domain"

// Romanian chart-of-accounts codes used by the rule tables.
const (
	AccountBank            = "5121" // Conturi la bănci în lei
	AccountCash            = "5311" // Casa în lei
	AccountCustomers       = "4111" // Clienți
	AccountSuppliers       = "401"  // Furnizori
	AccountVATDeductible   = "4426" // TVA deductibilă
	AccountVATCollected    = "4427" // TVA colectată
	AccountVATDeferred     = "4428" // TVA neexigibilă
	AccountRevenue         = "707"  // Venituri din vânzarea mărfurilor
	AccountBankFees        = "627"  // Cheltuieli cu serviciile bancare
	AccountInterestIncome  = "766"  // Venituri din dobânzi
	AccountInterestExpense = "666"  // Cheltuieli privind dobânzile
	AccountLoans           = "162"  // Credite bancare pe termen lung
	AccountFXGain          = "765"  // Venituri din diferențe de curs valutar
	AccountFXLoss          = "665"  // Cheltuieli din diferențe de curs valutar
	AccountCashOverage     = "7588" // Alte venituri din exploatare
	AccountCashShortage    = "6588" // Alte cheltuieli de exploatare
	AccountSalaries        = "421"  // Personal - salarii datorate
	AccountAdvances        = "542"  // Avansuri de trezorerie
	AccountTransit         = "581"  // Viramente interne
	AccountSuspense        = "473"  // Decontări din operații în curs de clarificare
)

// expenseAccounts selects the debit account for a purchase invoice. Unknown
// expense types fall back to third-party services.
var expenseAccounts = map[domain.PurchaseExpenseType]string{
	domain.ExpenseGoods:      "371",  // Mărfuri
	domain.ExpenseMaterials:  "301",  // Materii prime
	domain.ExpenseServices:   "628",  // Alte cheltuieli cu serviciile executate de terți
	domain.ExpenseUtilities:  "605",  // Cheltuieli privind energia și apa
	domain.ExpenseRent:       "612",  // Cheltuieli cu redevențele și chiriile
	domain.ExpenseFuel:       "3022", // Combustibili
	domain.ExpenseFixedAsset: "214",  // Mobilier, aparatură birotică
	domain.ExpenseSupplies:   "604",  // Cheltuieli privind materialele nestocate
}

// ExpenseAccountFor resolves the expense/inventory/asset account for a
// purchase expense type.
func ExpenseAccountFor(t domain.PurchaseExpenseType) string {
	if acc, ok := expenseAccounts[t]; ok {
		return acc
	}
	return expenseAccounts[domain.ExpenseServices]
}
