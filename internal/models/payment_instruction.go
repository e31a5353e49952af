package models

type (
	ProcessPaymentInstructionRequest struct {
		Instruction string            `json:"instruction"`
		Accounts    []AccountSnapshot `json:"accounts"`
	}

	// PaymentInstructionResult is the full outcome record. The field set is
	// fixed for every outcome; fields that were never extracted are null.
	PaymentInstructionResult struct {
		Type          *string         `json:"type"`
		Amount        *int64          `json:"amount"`
		Currency      *string         `json:"currency"`
		DebitAccount  *string         `json:"debit_account"`
		CreditAccount *string         `json:"credit_account"`
		ExecuteBy     *string         `json:"execute_by"`
		Status        string          `json:"status"`
		StatusReason  string          `json:"status_reason"`
		StatusCode    string          `json:"status_code"`
		Accounts      []ResultAccount `json:"accounts"`
	}

	// ResultAccount reports one involved account. On immediate execution
	// Balance carries the projected post-transaction balance; on scheduled
	// execution it equals BalanceBefore.
	ResultAccount struct {
		ID            string  `json:"id"`
		Balance       Balance `json:"balance"`
		BalanceBefore Balance `json:"balance_before"`
		Currency      string  `json:"currency"`
	}
)

const (
	ResultStatusSuccessful = "successful"
	ResultStatusPending    = "pending"
	ResultStatusFailed     = "failed"
)
