package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"bitbucket.org/Amartha/go-payment-instruction/internal/common/dateutil"
	"bitbucket.org/Amartha/go-payment-instruction/internal/models"

	xlog "bitbucket.org/Amartha/go-x/log"

	"github.com/shopspring/decimal"
)

type InstructionService interface {
	// Process runs an instruction against the supplied account snapshot and
	// returns the outcome record plus the HTTP status to serve it with. Every
	// outcome, including rejections, is a complete well-formed record; the
	// error return path is never used for validation failures.
	Process(ctx context.Context, req models.ProcessPaymentInstructionRequest) (*models.PaymentInstructionResult, int)
}

type instruction service

var _ InstructionService = (*instruction)(nil)

func (is *instruction) Process(ctx context.Context, req models.ProcessPaymentInstructionRequest) (*models.PaymentInstructionResult, int) {
	start := time.Now()

	res := is.process(req)

	statusCode := http.StatusOK
	if res.Status == models.ResultStatusFailed {
		statusCode = http.StatusBadRequest
	}

	if is.srv.metrics != nil {
		typeLabel := ""
		if res.Type != nil {
			typeLabel = *res.Type
		}
		is.srv.metrics.GetInstructionPrometheus().RecordProcessed(res.StatusCode, typeLabel, time.Since(start))
	}

	xlog.Info(ctx, fmt.Sprintf("processed payment instruction: %s", res.StatusCode),
		xlog.String("status", res.Status),
		xlog.String("status_code", res.StatusCode))

	return res, statusCode
}

// validatedTransfer is the fully checked form of an instruction, ready for
// balance projection.
type validatedTransfer struct {
	kind          models.InstructionKind
	amount        int64
	currency      string
	debitAccount  models.AccountSnapshot
	creditAccount models.AccountSnapshot
	executeBy     string
	isFuture      bool
}

func (is *instruction) process(req models.ProcessPaymentInstructionRequest) *models.PaymentInstructionResult {
	raw := strings.TrimSpace(req.Instruction)
	if raw == "" {
		return newUnparseableResult()
	}

	tokens := tokenize(raw)
	if len(tokens) == 0 {
		return newUnparseableResult()
	}

	parsed, rejected := matchInstruction(tokens)
	if rejected != nil {
		return rejected
	}

	echo := echoFromParsed(parsed)

	amount, ok := parsePositiveIntegerAmount(parsed.AmountText)
	if !ok {
		return newFailedResult(models.StatusKeyInvalidAmount, echo)
	}
	if !models.IsSupportedCurrency(parsed.Currency) {
		return newFailedResult(models.StatusKeyUnsupportedCurrency, echo)
	}
	if !isValidAccountID(parsed.DebitAccountID) || !isValidAccountID(parsed.CreditAccountID) {
		return newFailedResult(models.StatusKeyInvalidAccountId, echo)
	}
	if parsed.DebitAccountID == parsed.CreditAccountID {
		return newFailedResult(models.StatusKeySameAccount, echo)
	}

	debitAccount, creditAccount, found := resolveAccounts(req.Accounts, parsed.DebitAccountID, parsed.CreditAccountID)
	if !found {
		return newFailedResult(models.StatusKeyAccountNotFound, echo)
	}

	debitCurrency := strings.ToUpper(debitAccount.Currency)
	creditCurrency := strings.ToUpper(creditAccount.Currency)
	if debitCurrency != creditCurrency {
		return newFailedResult(models.StatusKeyCurrencyMismatch, echo)
	}
	if debitCurrency != parsed.Currency {
		return newFailedResult(models.StatusKeyCurrencyMismatch, echo)
	}

	transfer := validatedTransfer{
		kind:          parsed.Kind,
		amount:        amount,
		currency:      parsed.Currency,
		debitAccount:  debitAccount,
		creditAccount: creditAccount,
		executeBy:     parsed.ScheduleDateText,
	}

	if parsed.ScheduleDateText != "" {
		scheduled, ok := dateutil.ParseISODate(parsed.ScheduleDateText)
		if !ok {
			return newFailedResult(models.StatusKeyInvalidDate, echo)
		}
		// Dates today or in the past execute immediately; only a strictly
		// later UTC calendar day defers execution.
		transfer.isFuture = dateutil.CompareToUTCDay(scheduled, is.srv.now()) > 0
	}

	if !transfer.isFuture {
		if rejected := checkSufficientFunds(transfer, echo); rejected != nil {
			return rejected
		}
	}

	return buildSuccessResult(transfer, req.Accounts)
}

// resolveAccounts builds an id lookup over the snapshot. Duplicate ids are
// allowed in the input; later entries overwrite earlier ones.
func resolveAccounts(accounts []models.AccountSnapshot, debitID, creditID string) (debit, credit models.AccountSnapshot, found bool) {
	index := make(map[string]models.AccountSnapshot, len(accounts))
	for _, a := range accounts {
		if a.ID != "" {
			index[a.ID] = a
		}
	}

	debit, okDebit := index[debitID]
	credit, okCredit := index[creditID]
	return debit, credit, okDebit && okCredit
}

// checkSufficientFunds applies only to immediate execution. A non-numeric
// debit balance counts as a funds failure; a numeric one must cover the
// amount exactly or better.
func checkSufficientFunds(transfer validatedTransfer, echo resultEcho) *models.PaymentInstructionResult {
	balance := transfer.debitAccount.Balance
	if !balance.Valid {
		return newFailedResult(models.StatusKeyInsufficientFunds, echo)
	}
	if balance.Decimal.LessThan(decimal.NewFromInt(transfer.amount)) {
		st := models.GetStatus(models.StatusKeyInsufficientFunds)
		reason := fmt.Sprintf("%s: has %s %s, needs %d %s",
			st.Reason, balance.Decimal.String(), transfer.currency, transfer.amount, transfer.currency)
		return newFailedResultWithReason(models.StatusKeyInsufficientFunds, reason, echo)
	}
	return nil
}

// buildSuccessResult projects post-transaction balances for immediate
// execution and reports untouched balances for scheduled execution. Involved
// accounts are reported in their original input order; duplicate snapshot
// entries for an involved id are all reported, valued from the resolved
// entry.
func buildSuccessResult(transfer validatedTransfer, accounts []models.AccountSnapshot) *models.PaymentInstructionResult {
	amount := decimal.NewFromInt(transfer.amount)

	involved := make([]models.ResultAccount, 0, 2)
	for _, a := range accounts {
		if a.ID == "" || (a.ID != transfer.debitAccount.ID && a.ID != transfer.creditAccount.ID) {
			continue
		}
		entry := models.ResultAccount{
			ID:            a.ID,
			Balance:       a.Balance,
			BalanceBefore: a.Balance,
			Currency:      strings.ToUpper(a.Currency),
		}
		if !transfer.isFuture {
			if a.ID == transfer.debitAccount.ID {
				entry.BalanceBefore = transfer.debitAccount.Balance
				entry.Balance = subtractBalance(transfer.debitAccount.Balance, amount)
			}
			if a.ID == transfer.creditAccount.ID {
				entry.BalanceBefore = transfer.creditAccount.Balance
				entry.Balance = addBalance(transfer.creditAccount.Balance, amount)
			}
		}
		involved = append(involved, entry)
	}

	statusKey := models.StatusKeyExecuted
	status := models.ResultStatusSuccessful
	if transfer.isFuture {
		statusKey = models.StatusKeyScheduled
		status = models.ResultStatusPending
	}
	st := models.GetStatus(statusKey)

	kind := string(transfer.kind)
	var executeBy *string
	if transfer.executeBy != "" {
		executeBy = &transfer.executeBy
	}

	return &models.PaymentInstructionResult{
		Type:          &kind,
		Amount:        &transfer.amount,
		Currency:      &transfer.currency,
		DebitAccount:  &transfer.debitAccount.ID,
		CreditAccount: &transfer.creditAccount.ID,
		ExecuteBy:     executeBy,
		Status:        status,
		StatusReason:  st.Reason,
		StatusCode:    st.Code,
		Accounts:      involved,
	}
}

func subtractBalance(b models.Balance, amount decimal.Decimal) models.Balance {
	if !b.Valid {
		return models.Balance{}
	}
	return models.NewBalance(b.Decimal.Sub(amount))
}

func addBalance(b models.Balance, amount decimal.Decimal) models.Balance {
	if !b.Valid {
		return models.Balance{}
	}
	return models.NewBalance(b.Decimal.Add(amount))
}
