package wallet

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

func setupTestService(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:wallet_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(
		sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: dsn}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(&Wallet{}, &Transaction{}); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}
	return NewService(db)
}

func TestGetOrCreateWalletCreatesOnFirstRequest(t *testing.T) {
	svc := setupTestService(t)

	wallet, err := svc.GetOrCreateWallet(context.Background(), 1001)
	if err != nil {
		t.Fatalf("GetOrCreateWallet returned error: %v", err)
	}
	if wallet.Balance != 0 {
		t.Fatalf("expected zero initial balance, got %d", wallet.Balance)
	}

	again, err := svc.GetOrCreateWallet(context.Background(), 1001)
	if err != nil {
		t.Fatalf("GetOrCreateWallet second call returned error: %v", err)
	}
	if wallet.ID != again.ID {
		t.Fatalf("expected same wallet id, got %s and %s", wallet.ID, again.ID)
	}
}

func TestCreditRecordsBookingPayout(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	if err := svc.Credit(ctx, 11, 80.00, 42); err != nil {
		t.Fatalf("Credit returned error: %v", err)
	}
	if err := svc.Credit(ctx, 11, 60.50, 43); err != nil {
		t.Fatalf("second Credit returned error: %v", err)
	}

	wallet, err := svc.GetOrCreateWallet(ctx, 11)
	if err != nil {
		t.Fatalf("GetOrCreateWallet returned error: %v", err)
	}
	if wallet.Balance != 14050 {
		t.Fatalf("expected balance 14050 centavos, got %d", wallet.Balance)
	}

	txns, err := svc.ListTransactions(ctx, 11)
	if err != nil {
		t.Fatalf("ListTransactions returned error: %v", err)
	}
	if len(txns) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txns))
	}
	for _, txn := range txns {
		if txn.Type != TransactionTypeCredit {
			t.Fatalf("expected CREDIT transaction, got %s", txn.Type)
		}
		if txn.BookingID == nil {
			t.Fatalf("expected booking id on payout transaction")
		}
	}
}

func TestCreditRejectsZeroAmount(t *testing.T) {
	svc := setupTestService(t)

	if err := svc.Credit(context.Background(), 11, 0, 42); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestWithdrawFlow(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	if err := svc.Credit(ctx, 12, 100, 50); err != nil {
		t.Fatalf("Credit returned error: %v", err)
	}

	wallet, txn, err := svc.Withdraw(ctx, 12, 4000)
	if err != nil {
		t.Fatalf("Withdraw returned error: %v", err)
	}
	if wallet.Balance != 6000 {
		t.Fatalf("expected balance 6000, got %d", wallet.Balance)
	}
	if txn.Type != TransactionTypeDebit {
		t.Fatalf("expected DEBIT transaction, got %s", txn.Type)
	}

	if _, _, err := svc.Withdraw(ctx, 12, 7000); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
}

func TestCentavos(t *testing.T) {
	cases := map[float64]int64{
		80:    8000,
		60.50: 6050,
		0.01:  1,
		99.99: 9999,
		-5:    0,
	}
	for amount, want := range cases {
		if got := Centavos(amount); got != want {
			t.Fatalf("Centavos(%v) = %d, want %d", amount, got, want)
		}
	}
}
