package trainer

import "github.com/nspcc-dev/neo-go/pkg/interop"

// Validation is a prediction submitted by the trader.
type Validation struct {
	Value  int
	Trader interop.Hash160
	User   interop.Hash160
}

// hasValidation checks whether the trader or the user has already submitted
// a validation.
func hasValidation(vs []Validation, trader, user interop.Hash160) bool {
	for i := range vs {
		if vs[i].Trader.Equals(trader) || vs[i].User.Equals(user) {
			return true
		}
	}
	return false
}

// indexOfValidation returns the position of the trader's validation or -1.
func indexOfValidation(vs []Validation, trader interop.Hash160) int {
	for i := range vs {
		if vs[i].Trader.Equals(trader) {
			return i
		}
	}
	return -1
}

// removeValidation returns validations without the one at index. Following
// validations are shifted down by one.
func removeValidation(vs []Validation, index int) []Validation {
	res := []Validation{}
	for i := range vs {
		if i != index {
			res = append(res, vs[i])
		}
	}
	return res
}
