package models

import "strings"

type InstructionKind string

const (
	InstructionKindDebit  InstructionKind = "DEBIT"
	InstructionKindCredit InstructionKind = "CREDIT"
)

// Grammar keywords. Matching is case-insensitive; tokens are upper-cased
// before comparison.
const (
	KeywordDebit   = "DEBIT"
	KeywordCredit  = "CREDIT"
	KeywordFrom    = "FROM"
	KeywordTo      = "TO"
	KeywordAccount = "ACCOUNT"
	KeywordFor     = "FOR"
	KeywordOn      = "ON"
)

// ParsedInstruction holds the raw slots extracted by the grammar matcher.
// Nothing here is trusted until the field validators have run; AmountText in
// particular is still free text.
type ParsedInstruction struct {
	Kind             InstructionKind
	AmountText       string
	Currency         string
	DebitAccountID   string
	CreditAccountID  string
	ScheduleDateText string
}

var supportedCurrencies = map[string]struct{}{
	"NGN": {},
	"USD": {},
	"GBP": {},
	"GHS": {},
}

func IsSupportedCurrency(code string) bool {
	_, ok := supportedCurrencies[strings.ToUpper(code)]
	return ok
}
