package ref

import (
	"fmt"
	"math/rand/v2"

	"github.com/workwealth/workwealth/internal/model"
)

// Prefix returns the reference prefix for a transaction category.
func Prefix(c model.Category) string {
	switch c {
	case model.CategoryDeposit:
		return "DEP"
	case model.CategoryWithdrawal:
		return "WTH"
	case model.CategoryTransfer:
		return "TRF"
	case model.CategoryBills:
		return "BIL"
	case model.CategoryLoan:
		return "LNS"
	case model.CategorySavings:
		return "SAV"
	default:
		return "TXN"
	}
}

// New returns a display-grade reference like "DEP48213975". References are
// not guaranteed globally unique; the transaction ID is the real key.
func New(c model.Category) string {
	return fmt.Sprintf("%s%08d", Prefix(c), rand.IntN(100_000_000))
}
