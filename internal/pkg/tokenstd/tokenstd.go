// Package tokenstd declares the fungible-token capability the registry may
// someday bind credit balances to. No operation in the core exercises it;
// only the interface shape is part of the contract.
package tokenstd

import "context"

// Token is the abstract token-standard capability set.
type Token interface {
	Transfer(ctx context.Context, from, to string, amount uint64) error
	BalanceOf(ctx context.Context, account string) (uint64, error)
	TotalSupply(ctx context.Context) (uint64, error)
	Name(ctx context.Context) (string, error)
	Symbol(ctx context.Context) (string, error)
	Decimals(ctx context.Context) (uint8, error)
	TokenURI(ctx context.Context) (string, error)
}
