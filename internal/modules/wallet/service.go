package wallet

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInsufficientFunds = errors.New("insufficient balance")
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) GetOrCreateWallet(ctx context.Context, jovemID int64) (*Wallet, error) {
	wallet, err := s.getWalletByJovemID(ctx, jovemID)
	if err == nil {
		return wallet, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	wallet = &Wallet{JovemID: jovemID, Balance: 0}
	if err := s.db.WithContext(ctx).Create(wallet).Error; err != nil {
		if isUniqueConstraintError(err) {
			return s.getWalletByJovemID(ctx, jovemID)
		}
		return nil, err
	}
	return wallet, nil
}

// Credit implements the lifecycle's WalletCreditor: the payout requested
// when a booking completes. Idempotency per booking is the caller's
// concern; the journal row carries the booking id for audit.
func (s *Service) Credit(ctx context.Context, jovemID int64, amount float64, bookingID int64) error {
	cents := Centavos(amount)
	if cents <= 0 {
		return ErrInvalidAmount
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var wallet Wallet
		if err := getOrCreateWalletForUpdate(tx, jovemID, &wallet); err != nil {
			return err
		}

		wallet.Balance += cents
		if err := tx.Model(&Wallet{}).Where("id = ?", wallet.ID).Update("balance", wallet.Balance).Error; err != nil {
			return err
		}

		txn := Transaction{WalletID: wallet.ID, BookingID: &bookingID, Amount: cents, Type: TransactionTypeCredit}
		return tx.Create(&txn).Error
	})
}

func (s *Service) Withdraw(ctx context.Context, jovemID int64, cents int64) (*Wallet, *Transaction, error) {
	if cents <= 0 {
		return nil, nil, ErrInvalidAmount
	}

	var wallet Wallet
	var txn Transaction

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := getOrCreateWalletForUpdate(tx, jovemID, &wallet); err != nil {
			return err
		}

		if wallet.Balance < cents {
			return ErrInsufficientFunds
		}

		wallet.Balance -= cents
		if err := tx.Model(&Wallet{}).Where("id = ?", wallet.ID).Update("balance", wallet.Balance).Error; err != nil {
			return err
		}

		txn = Transaction{WalletID: wallet.ID, Amount: cents, Type: TransactionTypeDebit}
		return tx.Create(&txn).Error
	})
	if err != nil {
		return nil, nil, err
	}

	return &wallet, &txn, nil
}

func (s *Service) ListTransactions(ctx context.Context, jovemID int64) ([]Transaction, error) {
	wallet, err := s.GetOrCreateWallet(ctx, jovemID)
	if err != nil {
		return nil, err
	}

	var txns []Transaction
	if err := s.db.WithContext(ctx).Where("wallet_id = ?", wallet.ID).Order("created_at desc").Find(&txns).Error; err != nil {
		return nil, err
	}

	return txns, nil
}

func (s *Service) getWalletByJovemID(ctx context.Context, jovemID int64) (*Wallet, error) {
	var wallet Wallet
	if err := s.db.WithContext(ctx).Where("jovem_id = ?", jovemID).First(&wallet).Error; err != nil {
		return nil, err
	}
	return &wallet, nil
}

func getOrCreateWalletForUpdate(tx *gorm.DB, jovemID int64, wallet *Wallet) error {
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("jovem_id = ?", jovemID).First(wallet).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		*wallet = Wallet{JovemID: jovemID, Balance: 0}
		if err := tx.Create(wallet).Error; err != nil {
			if isUniqueConstraintError(err) {
				return tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("jovem_id = ?", jovemID).First(wallet).Error
			}
			return err
		}
	}
	return nil
}

func isUniqueConstraintError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique constraint") || strings.Contains(msg, "unique failed")
}
