package services

import (
	"context"
	"os"
	"testing"
	"time"

	"bitbucket.org/Amartha/go-payment-instruction/internal/config"
	"bitbucket.org/Amartha/go-payment-instruction/internal/models"

	xlog "bitbucket.org/Amartha/go-x/log"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

// testNow is the frozen clock for every scheduling decision in this file.
var testNow = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

func newTestServices(t *testing.T) *Services {
	t.Helper()
	return New(config.Config{}, nil, func() time.Time { return testNow })
}

func usdAccounts() []models.AccountSnapshot {
	return []models.AccountSnapshot{
		{ID: "N90394", Balance: models.NewBalanceFromInt(1000), Currency: "USD"},
		{ID: "N9122", Balance: models.NewBalanceFromInt(500), Currency: "USD"},
	}
}

func Test_Process_debitImmediateSuccess(t *testing.T) {
	srv := newTestServices(t)

	res, code := srv.Instruction.Process(context.Background(), models.ProcessPaymentInstructionRequest{
		Instruction: "DEBIT 500 USD FROM ACCOUNT N90394 FOR CREDIT TO ACCOUNT N9122",
		Accounts:    usdAccounts(),
	})

	require.Equal(t, 200, code)
	assert.Equal(t, "AP00", res.StatusCode)
	assert.Equal(t, models.ResultStatusSuccessful, res.Status)
	assert.Equal(t, "Transaction executed successfully", res.StatusReason)

	require.NotNil(t, res.Type)
	assert.Equal(t, "DEBIT", *res.Type)
	require.NotNil(t, res.Amount)
	assert.Equal(t, int64(500), *res.Amount)
	require.NotNil(t, res.Currency)
	assert.Equal(t, "USD", *res.Currency)
	require.NotNil(t, res.DebitAccount)
	assert.Equal(t, "N90394", *res.DebitAccount)
	require.NotNil(t, res.CreditAccount)
	assert.Equal(t, "N9122", *res.CreditAccount)
	assert.Nil(t, res.ExecuteBy)

	require.Len(t, res.Accounts, 2)
	assert.Equal(t, "N90394", res.Accounts[0].ID)
	assert.Equal(t, "1000", res.Accounts[0].BalanceBefore.String())
	assert.Equal(t, "500", res.Accounts[0].Balance.String())
	assert.Equal(t, "N9122", res.Accounts[1].ID)
	assert.Equal(t, "500", res.Accounts[1].BalanceBefore.String())
	assert.Equal(t, "1000", res.Accounts[1].Balance.String())
}

func Test_Process_creditLedImmediateSuccess(t *testing.T) {
	srv := newTestServices(t)

	res, code := srv.Instruction.Process(context.Background(), models.ProcessPaymentInstructionRequest{
		Instruction: "CREDIT 200 USD TO ACCOUNT N9122 FOR DEBIT FROM ACCOUNT N90394",
		Accounts:    usdAccounts(),
	})

	require.Equal(t, 200, code)
	assert.Equal(t, "AP00", res.StatusCode)
	require.NotNil(t, res.Type)
	assert.Equal(t, "CREDIT", *res.Type)
	require.NotNil(t, res.DebitAccount)
	assert.Equal(t, "N90394", *res.DebitAccount)
	require.NotNil(t, res.CreditAccount)
	assert.Equal(t, "N9122", *res.CreditAccount)

	// input order is preserved: the debit account was listed first
	require.Len(t, res.Accounts, 2)
	assert.Equal(t, "N90394", res.Accounts[0].ID)
	assert.Equal(t, "800", res.Accounts[0].Balance.String())
	assert.Equal(t, "N9122", res.Accounts[1].ID)
	assert.Equal(t, "700", res.Accounts[1].Balance.String())
}

func Test_Process_futureScheduledPending(t *testing.T) {
	srv := newTestServices(t)

	res, code := srv.Instruction.Process(context.Background(), models.ProcessPaymentInstructionRequest{
		Instruction: "CREDIT 300 NGN TO ACCOUNT b FOR DEBIT FROM ACCOUNT a ON 2099-12-31",
		Accounts: []models.AccountSnapshot{
			{ID: "a", Balance: models.NewBalanceFromInt(1000), Currency: "NGN"},
			{ID: "b", Balance: models.NewBalanceFromInt(500), Currency: "NGN"},
		},
	})

	require.Equal(t, 200, code)
	assert.Equal(t, "AP02", res.StatusCode)
	assert.Equal(t, models.ResultStatusPending, res.Status)
	assert.Equal(t, "Transaction scheduled for future execution", res.StatusReason)
	require.NotNil(t, res.ExecuteBy)
	assert.Equal(t, "2099-12-31", *res.ExecuteBy)

	require.Len(t, res.Accounts, 2)
	for _, acc := range res.Accounts {
		assert.Equal(t, acc.BalanceBefore.String(), acc.Balance.String())
	}
}

// Scheduled funds are not checked: a future instruction may exceed the debit
// balance and still be accepted as pending.
func Test_Process_futureScheduledSkipsFundsCheck(t *testing.T) {
	srv := newTestServices(t)

	res, code := srv.Instruction.Process(context.Background(), models.ProcessPaymentInstructionRequest{
		Instruction: "DEBIT 9999 USD FROM ACCOUNT N90394 FOR CREDIT TO ACCOUNT N9122 ON 2026-09-01",
		Accounts:    usdAccounts(),
	})

	require.Equal(t, 200, code)
	assert.Equal(t, "AP02", res.StatusCode)
}

// A schedule date of today or earlier executes immediately; there is no
// distinct past-date rejection.
func Test_Process_scheduleDateBoundary(t *testing.T) {
	tests := []struct {
		name           string
		date           string
		wantStatusCode string
	}{
		{name: "tomorrow is pending", date: "2026-09-01", wantStatusCode: "AP02"},
		{name: "today executes immediately", date: "2026-08-31", wantStatusCode: "AP00"},
		{name: "yesterday executes immediately", date: "2026-08-30", wantStatusCode: "AP00"},
		{name: "distant past executes immediately", date: "1999-01-01", wantStatusCode: "AP00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServices(t)

			res, code := srv.Instruction.Process(context.Background(), models.ProcessPaymentInstructionRequest{
				Instruction: "DEBIT 100 USD FROM ACCOUNT N90394 FOR CREDIT TO ACCOUNT N9122 ON " + tt.date,
				Accounts:    usdAccounts(),
			})

			require.Equal(t, 200, code)
			assert.Equal(t, tt.wantStatusCode, res.StatusCode)
			require.NotNil(t, res.ExecuteBy)
			assert.Equal(t, tt.date, *res.ExecuteBy)
		})
	}
}

func Test_Process_insufficientFunds(t *testing.T) {
	srv := newTestServices(t)

	res, code := srv.Instruction.Process(context.Background(), models.ProcessPaymentInstructionRequest{
		Instruction: "DEBIT 1500 USD FROM ACCOUNT N90394 FOR CREDIT TO ACCOUNT N9122",
		Accounts:    usdAccounts(),
	})

	require.Equal(t, 400, code)
	assert.Equal(t, "AC01", res.StatusCode)
	assert.Equal(t, models.ResultStatusFailed, res.Status)
	assert.Equal(t, "Insufficient funds in debit account: has 1000 USD, needs 1500 USD", res.StatusReason)
	assert.Empty(t, res.Accounts)
	require.NotNil(t, res.Amount)
	assert.Equal(t, int64(1500), *res.Amount)
}

func Test_Process_exactBalanceIsSufficient(t *testing.T) {
	srv := newTestServices(t)

	res, code := srv.Instruction.Process(context.Background(), models.ProcessPaymentInstructionRequest{
		Instruction: "DEBIT 1000 USD FROM ACCOUNT N90394 FOR CREDIT TO ACCOUNT N9122",
		Accounts:    usdAccounts(),
	})

	require.Equal(t, 200, code)
	assert.Equal(t, "AP00", res.StatusCode)
	assert.Equal(t, "0", res.Accounts[0].Balance.String())
}

func Test_Process_nonNumericBalanceIsFundsFailure(t *testing.T) {
	srv := newTestServices(t)

	res, code := srv.Instruction.Process(context.Background(), models.ProcessPaymentInstructionRequest{
		Instruction: "DEBIT 100 USD FROM ACCOUNT broken FOR CREDIT TO ACCOUNT N9122",
		Accounts: []models.AccountSnapshot{
			{ID: "broken", Balance: models.Balance{}, Currency: "USD"},
			{ID: "N9122", Balance: models.NewBalanceFromInt(500), Currency: "USD"},
		},
	})

	require.Equal(t, 400, code)
	assert.Equal(t, "AC01", res.StatusCode)
	assert.Equal(t, "Insufficient funds in debit account", res.StatusReason)
}

func Test_Process_rejections(t *testing.T) {
	type args struct {
		instruction string
		accounts    []models.AccountSnapshot
	}
	tests := []struct {
		name           string
		args           args
		wantStatusCode string
	}{
		{
			name:           "empty instruction",
			args:           args{instruction: "", accounts: usdAccounts()},
			wantStatusCode: "SY03",
		},
		{
			name:           "whitespace only instruction",
			args:           args{instruction: " \t \n ", accounts: usdAccounts()},
			wantStatusCode: "SY03",
		},
		{
			name:           "unknown leading keyword",
			args:           args{instruction: "SEND 100 USD TO ACCOUNT b", accounts: usdAccounts()},
			wantStatusCode: "SY03",
		},
		{
			name:           "amount zero",
			args:           args{instruction: "DEBIT 0 USD FROM ACCOUNT N90394 FOR CREDIT TO ACCOUNT N9122", accounts: usdAccounts()},
			wantStatusCode: "AM01",
		},
		{
			name:           "amount with decimal point",
			args:           args{instruction: "DEBIT 100.50 USD FROM ACCOUNT N90394 FOR CREDIT TO ACCOUNT N9122", accounts: usdAccounts()},
			wantStatusCode: "AM01",
		},
		{
			name:           "amount negative",
			args:           args{instruction: "DEBIT -100 USD FROM ACCOUNT N90394 FOR CREDIT TO ACCOUNT N9122", accounts: usdAccounts()},
			wantStatusCode: "AM01",
		},
		{
			name:           "unsupported currency",
			args:           args{instruction: "DEBIT 100 EUR FROM ACCOUNT N90394 FOR CREDIT TO ACCOUNT N9122", accounts: usdAccounts()},
			wantStatusCode: "CU02",
		},
		{
			name:           "invalid account id characters",
			args:           args{instruction: "DEBIT 100 USD FROM ACCOUNT acc#1 FOR CREDIT TO ACCOUNT N9122", accounts: usdAccounts()},
			wantStatusCode: "AC04",
		},
		{
			name:           "same debit and credit account",
			args:           args{instruction: "DEBIT 100 USD FROM ACCOUNT N90394 FOR CREDIT TO ACCOUNT N90394", accounts: usdAccounts()},
			wantStatusCode: "AC02",
		},
		{
			name:           "account not found",
			args:           args{instruction: "DEBIT 100 USD FROM ACCOUNT missing FOR CREDIT TO ACCOUNT N9122", accounts: usdAccounts()},
			wantStatusCode: "AC03",
		},
		{
			name: "accounts disagree on currency",
			args: args{
				instruction: "DEBIT 50 USD FROM ACCOUNT a FOR CREDIT TO ACCOUNT b",
				accounts: []models.AccountSnapshot{
					{ID: "a", Balance: models.NewBalanceFromInt(100), Currency: "USD"},
					{ID: "b", Balance: models.NewBalanceFromInt(500), Currency: "GBP"},
				},
			},
			wantStatusCode: "CU01",
		},
		{
			name: "instruction currency disagrees with accounts",
			args: args{
				instruction: "DEBIT 50 GBP FROM ACCOUNT a FOR CREDIT TO ACCOUNT b",
				accounts: []models.AccountSnapshot{
					{ID: "a", Balance: models.NewBalanceFromInt(100), Currency: "USD"},
					{ID: "b", Balance: models.NewBalanceFromInt(500), Currency: "USD"},
				},
			},
			wantStatusCode: "CU01",
		},
		{
			name:           "slash separated date",
			args:           args{instruction: "DEBIT 100 USD FROM ACCOUNT N90394 FOR CREDIT TO ACCOUNT N9122 ON 2024/01/15", accounts: usdAccounts()},
			wantStatusCode: "DT01",
		},
		{
			name:           "impossible calendar date",
			args:           args{instruction: "DEBIT 100 USD FROM ACCOUNT N90394 FOR CREDIT TO ACCOUNT N9122 ON 2024-02-30", accounts: usdAccounts()},
			wantStatusCode: "DT01",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServices(t)

			res, code := srv.Instruction.Process(context.Background(), models.ProcessPaymentInstructionRequest{
				Instruction: tt.args.instruction,
				Accounts:    tt.args.accounts,
			})

			require.Equal(t, 400, code)
			assert.Equal(t, tt.wantStatusCode, res.StatusCode)
			assert.Equal(t, models.ResultStatusFailed, res.Status)
			assert.Empty(t, res.Accounts)
		})
	}
}

// The first violated check wins: an unsupported currency masks a later
// account-id violation, and an invalid amount masks the currency.
func Test_Process_validationOrder(t *testing.T) {
	srv := newTestServices(t)

	res, _ := srv.Instruction.Process(context.Background(), models.ProcessPaymentInstructionRequest{
		Instruction: "DEBIT 100 EUR FROM ACCOUNT acc#1 FOR CREDIT TO ACCOUNT acc#1",
		Accounts:    usdAccounts(),
	})
	assert.Equal(t, "CU02", res.StatusCode)

	res, _ = srv.Instruction.Process(context.Background(), models.ProcessPaymentInstructionRequest{
		Instruction: "DEBIT 1.5 EUR FROM ACCOUNT acc#1 FOR CREDIT TO ACCOUNT acc#1",
		Accounts:    usdAccounts(),
	})
	assert.Equal(t, "AM01", res.StatusCode)
}

// Account id comparison is case-sensitive: ids differing only in case are
// distinct accounts, so the same-account check passes and resolution decides.
func Test_Process_accountComparisonCaseSensitive(t *testing.T) {
	srv := newTestServices(t)

	res, code := srv.Instruction.Process(context.Background(), models.ProcessPaymentInstructionRequest{
		Instruction: "DEBIT 100 USD FROM ACCOUNT acc FOR CREDIT TO ACCOUNT ACC",
		Accounts: []models.AccountSnapshot{
			{ID: "acc", Balance: models.NewBalanceFromInt(1000), Currency: "USD"},
		},
	})

	require.Equal(t, 400, code)
	assert.Equal(t, "AC03", res.StatusCode)
}

func Test_Process_duplicateSnapshotIDsLastWins(t *testing.T) {
	srv := newTestServices(t)

	res, code := srv.Instruction.Process(context.Background(), models.ProcessPaymentInstructionRequest{
		Instruction: "DEBIT 100 USD FROM ACCOUNT a FOR CREDIT TO ACCOUNT b",
		Accounts: []models.AccountSnapshot{
			{ID: "a", Balance: models.NewBalanceFromInt(10), Currency: "USD"},
			{ID: "a", Balance: models.NewBalanceFromInt(1000), Currency: "USD"},
			{ID: "b", Balance: models.NewBalanceFromInt(500), Currency: "USD"},
		},
	})

	require.Equal(t, 200, code)
	assert.Equal(t, "AP00", res.StatusCode)

	// both duplicate entries are reported, valued from the winning entry
	require.Len(t, res.Accounts, 3)
	assert.Equal(t, "1000", res.Accounts[0].BalanceBefore.String())
	assert.Equal(t, "900", res.Accounts[0].Balance.String())
	assert.Equal(t, "1000", res.Accounts[1].BalanceBefore.String())
	assert.Equal(t, "900", res.Accounts[1].Balance.String())
}

func Test_Process_uninvolvedAccountsExcluded(t *testing.T) {
	srv := newTestServices(t)

	res, _ := srv.Instruction.Process(context.Background(), models.ProcessPaymentInstructionRequest{
		Instruction: "DEBIT 100 USD FROM ACCOUNT b FOR CREDIT TO ACCOUNT c",
		Accounts: []models.AccountSnapshot{
			{ID: "a", Balance: models.NewBalanceFromInt(10), Currency: "USD"},
			{ID: "b", Balance: models.NewBalanceFromInt(1000), Currency: "USD"},
			{ID: "c", Balance: models.NewBalanceFromInt(500), Currency: "USD"},
			{ID: "d", Balance: models.NewBalanceFromInt(50), Currency: "USD"},
		},
	})

	require.Len(t, res.Accounts, 2)
	assert.Equal(t, "b", res.Accounts[0].ID)
	assert.Equal(t, "c", res.Accounts[1].ID)
}

func Test_Process_keywordCaseInsensitive(t *testing.T) {
	srv := newTestServices(t)

	res, code := srv.Instruction.Process(context.Background(), models.ProcessPaymentInstructionRequest{
		Instruction: "debit 100 gbp from account a for credit to account b",
		Accounts: []models.AccountSnapshot{
			{ID: "a", Balance: models.NewBalanceFromInt(500), Currency: "gbp"},
			{ID: "b", Balance: models.NewBalanceFromInt(200), Currency: "GBP"},
		},
	})

	require.Equal(t, 200, code)
	assert.Equal(t, "AP00", res.StatusCode)
	require.NotNil(t, res.Currency)
	assert.Equal(t, "GBP", *res.Currency)
	assert.Equal(t, "GBP", res.Accounts[0].Currency)
}

func Test_Process_fractionalBalanceProjection(t *testing.T) {
	srv := newTestServices(t)

	res, code := srv.Instruction.Process(context.Background(), models.ProcessPaymentInstructionRequest{
		Instruction: "DEBIT 100 USD FROM ACCOUNT a FOR CREDIT TO ACCOUNT b",
		Accounts: []models.AccountSnapshot{
			{ID: "a", Balance: models.NewBalance(decimal.RequireFromString("250.75")), Currency: "USD"},
			{ID: "b", Balance: models.NewBalance(decimal.RequireFromString("0.25")), Currency: "USD"},
		},
	})

	require.Equal(t, 200, code)
	assert.Equal(t, "150.75", res.Accounts[0].Balance.String())
	assert.Equal(t, "100.25", res.Accounts[1].Balance.String())
}
