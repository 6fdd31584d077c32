package payments

import (
	"context"
	"errors"

	"offsetledger-backend/internal/domain"

	"gorm.io/gorm"
)

// Gateway moves a fungible unit of value between accounts. Transfer runs
// inside the caller's transaction so a failed purchase leaves no trace in
// either ledger. A real external settlement rail can replace this.
type Gateway interface {
	Transfer(tx *gorm.DB, from, to string, amount uint64) error
}

// Service is the in-repo Gateway over the Accounts table.
type Service struct {
	DB *gorm.DB
}

// Transfer debits from and credits to (created if absent) by amount.
// Returns domain.ErrInsufficientFunds when the payer cannot cover it.
func (s *Service) Transfer(tx *gorm.DB, from, to string, amount uint64) error {
	var payer domain.Account
	if err := tx.Where("account_id = ?", from).First(&payer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrInsufficientFunds
		}
		return err
	}
	if payer.Balance < amount {
		return domain.ErrInsufficientFunds
	}
	payer.Balance -= amount
	if err := tx.Save(&payer).Error; err != nil {
		return err
	}

	var payee domain.Account
	err := tx.Where("account_id = ?", to).First(&payee).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		payee = domain.Account{AccountID: to, Balance: amount}
		return tx.Create(&payee).Error
	} else if err != nil {
		return err
	}
	payee.Balance += amount
	return tx.Save(&payee).Error
}

// Deposit credits an account (created if absent). Funding entry point for
// buyers; in production this would be fed by the settlement rail.
func (s *Service) Deposit(ctx context.Context, account string, amount uint64) (uint64, error) {
	if amount == 0 {
		return 0, domain.ErrInvalidQuantity
	}
	var balance uint64
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var acct domain.Account
		err := tx.Where("account_id = ?", account).First(&acct).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			acct = domain.Account{AccountID: account, Balance: amount}
			if err := tx.Create(&acct).Error; err != nil {
				return err
			}
			balance = acct.Balance
			return nil
		} else if err != nil {
			return err
		}
		acct.Balance += amount
		if err := tx.Save(&acct).Error; err != nil {
			return err
		}
		balance = acct.Balance
		return nil
	})
	return balance, err
}

// Balance returns the account's value balance, zero if the account is unknown.
func (s *Service) Balance(ctx context.Context, account string) (uint64, error) {
	var acct domain.Account
	err := s.DB.WithContext(ctx).Where("account_id = ?", account).First(&acct).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	} else if err != nil {
		return 0, err
	}
	return acct.Balance, nil
}
