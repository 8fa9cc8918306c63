// Package entity defines the core business entities for the domain layer.
package entity

import "strings"

// AccountName identifies one of the tracked money accounts.
type AccountName string

const (
	AccountCash   AccountName = "Cash"
	AccountBank   AccountName = "Bank"
	AccountWallet AccountName = "Wallet"
)

// Accounts returns the registry of tracked accounts. The order is the
// display order and carries no other meaning.
func Accounts() []AccountName {
	return []AccountName{AccountCash, AccountBank, AccountWallet}
}

// NormalizeAccount converts an account name in any casing to its canonical
// title-cased form. It returns false when the name does not match a registry
// entry; callers must not credit or debit anything for an unknown account.
func NormalizeAccount(name string) (AccountName, bool) {
	if name == "" {
		return "", false
	}
	canonical := AccountName(strings.ToUpper(name[:1]) + strings.ToLower(name[1:]))
	for _, account := range Accounts() {
		if account == canonical {
			return account, true
		}
	}
	return "", false
}

// IsValidAccount reports whether the name matches a registry entry,
// case-insensitively.
func IsValidAccount(name string) bool {
	_, ok := NormalizeAccount(name)
	return ok
}
