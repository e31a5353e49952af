package services

import (
	"strings"

	"bitbucket.org/Amartha/go-payment-instruction/internal/models"
)

// The two grammars are mirrors of each other:
//
//	DEBIT  <amount> <currency> FROM ACCOUNT <debit_id>  FOR CREDIT TO   ACCOUNT <credit_id> [ON <date>]
//	CREDIT <amount> <currency> TO   ACCOUNT <credit_id> FOR DEBIT  FROM ACCOUNT <debit_id>  [ON <date>]
//
// Positions 0, 3, 4 and 6-9 are keyword slots; positions 1, 2, 5, 10 and 12
// are opaque value slots validated later. Both shapes run through the same
// matcher parametrized by which side the first account is.
const (
	baseTokenCount = 11
	dateTokenCount = 13
)

// matchInstruction recognizes one of the two instruction shapes. On failure it
// returns a complete failed result echoing every field extracted before the
// failing slot; token-count and unknown-keyword failures are treated as fully
// unparseable and echo nothing.
func matchInstruction(tokens []string) (models.ParsedInstruction, *models.PaymentInstructionResult) {
	upper := make([]string, len(tokens))
	for i, t := range tokens {
		upper[i] = strings.ToUpper(t)
	}

	var (
		kind          models.InstructionKind
		pairKeywords  [2]string
		blockKeywords [4]string
		firstIsDebit  bool
		parsed        models.ParsedInstruction
	)

	switch upper[0] {
	case models.KeywordDebit:
		kind = models.InstructionKindDebit
		pairKeywords = [2]string{models.KeywordFrom, models.KeywordAccount}
		blockKeywords = [4]string{models.KeywordFor, models.KeywordCredit, models.KeywordTo, models.KeywordAccount}
		firstIsDebit = true
	case models.KeywordCredit:
		kind = models.InstructionKindCredit
		pairKeywords = [2]string{models.KeywordTo, models.KeywordAccount}
		blockKeywords = [4]string{models.KeywordFor, models.KeywordDebit, models.KeywordFrom, models.KeywordAccount}
	default:
		return parsed, newUnparseableResult()
	}

	if len(tokens) < baseTokenCount {
		return parsed, newUnparseableResult()
	}

	b := resultEcho{}
	b.setKind(kind)
	b.setAmountText(tokens[1])
	b.setCurrency(upper[2])

	if upper[3] != pairKeywords[0] || upper[4] != pairKeywords[1] {
		return parsed, newFailedResult(models.StatusKeyMissingKeyword, b)
	}
	firstID := tokens[5]
	if firstIsDebit {
		b.setDebitAccount(firstID)
	} else {
		b.setCreditAccount(firstID)
	}

	if upper[6] != blockKeywords[0] || upper[7] != blockKeywords[1] ||
		upper[8] != blockKeywords[2] || upper[9] != blockKeywords[3] {
		return parsed, newFailedResult(models.StatusKeyInvalidKeywordOrder, b)
	}
	secondID := tokens[10]
	if firstIsDebit {
		b.setCreditAccount(secondID)
	} else {
		b.setDebitAccount(secondID)
	}

	var dateText string
	if len(tokens) > baseTokenCount {
		if upper[baseTokenCount] != models.KeywordOn {
			return parsed, newUnparseableResult()
		}
		if len(tokens) < dateTokenCount {
			return parsed, newFailedResult(models.StatusKeyInvalidDate, b)
		}
		// tokens past the date slot are ignored
		dateText = tokens[dateTokenCount-1]
	}

	parsed = models.ParsedInstruction{
		Kind:             kind,
		AmountText:       tokens[1],
		Currency:         upper[2],
		ScheduleDateText: dateText,
	}
	if firstIsDebit {
		parsed.DebitAccountID = firstID
		parsed.CreditAccountID = secondID
	} else {
		parsed.CreditAccountID = firstID
		parsed.DebitAccountID = secondID
	}
	return parsed, nil
}
