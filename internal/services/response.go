package services

import (
	"bitbucket.org/Amartha/go-payment-instruction/internal/models"
)

// resultEcho accumulates the fields extracted from an instruction so far.
// Rejections echo exactly these fields; anything not yet extracted stays
// null in the response.
type resultEcho struct {
	kind          *string
	amountText    string
	currency      *string
	debitAccount  *string
	creditAccount *string
	executeBy     *string
}

func (e *resultEcho) setKind(kind models.InstructionKind) {
	s := string(kind)
	e.kind = &s
}

func (e *resultEcho) setAmountText(text string) {
	e.amountText = text
}

func (e *resultEcho) setCurrency(currency string) {
	e.currency = &currency
}

func (e *resultEcho) setDebitAccount(id string) {
	e.debitAccount = &id
}

func (e *resultEcho) setCreditAccount(id string) {
	e.creditAccount = &id
}

func (e *resultEcho) setExecuteBy(date string) {
	e.executeBy = &date
}

// amount echoes the numeric amount only once the token is a valid positive
// integer; the response field is numeric so an unvalidated token stays null.
func (e *resultEcho) amount() *int64 {
	n, ok := parsePositiveIntegerAmount(e.amountText)
	if !ok {
		return nil
	}
	return &n
}

func echoFromParsed(p models.ParsedInstruction) resultEcho {
	e := resultEcho{}
	e.setKind(p.Kind)
	e.setAmountText(p.AmountText)
	e.setCurrency(p.Currency)
	e.setDebitAccount(p.DebitAccountID)
	e.setCreditAccount(p.CreditAccountID)
	if p.ScheduleDateText != "" {
		e.setExecuteBy(p.ScheduleDateText)
	}
	return e
}

// newUnparseableResult is the fully unparseable rejection: nothing is echoed.
func newUnparseableResult() *models.PaymentInstructionResult {
	return newFailedResult(models.StatusKeyUnparseable, resultEcho{})
}

func newFailedResult(statusKey string, echo resultEcho) *models.PaymentInstructionResult {
	st := models.GetStatus(statusKey)
	return newFailedResultWithReason(statusKey, st.Reason, echo)
}

func newFailedResultWithReason(statusKey, reason string, echo resultEcho) *models.PaymentInstructionResult {
	st := models.GetStatus(statusKey)
	return &models.PaymentInstructionResult{
		Type:          echo.kind,
		Amount:        echo.amount(),
		Currency:      echo.currency,
		DebitAccount:  echo.debitAccount,
		CreditAccount: echo.creditAccount,
		ExecuteBy:     echo.executeBy,
		Status:        models.ResultStatusFailed,
		StatusReason:  reason,
		StatusCode:    st.Code,
		Accounts:      []models.ResultAccount{},
	}
}
