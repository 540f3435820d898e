package ast

// Transaction represents a financial transaction affecting two or more
// accounts. The header carries the date, a flag, and up to two quoted
// strings: with two strings the first is the payee and the second the
// narration, with one string it is the narration only.
//
// Example:
//
//	2014-05-05 * "Cafe Mogador" "Lamb tagine with wine"
//	  Liabilities:CreditCard:CapitalOne  -37.45 USD
//	  Expenses:Restaurant                 37.45 USD
type Transaction struct {
	Date      *Date
	Flag      Flag
	Payee     string
	Narration string
	Postings  []*Posting
}

var _ Entry = &Transaction{}

func (t *Transaction) date() *Date       { return t.Date }
func (t *Transaction) Directive() string { return "transaction" }

// Posting represents a single leg of a transaction: an account and the
// amount posted to it, with optional price and cost clauses. Price and
// cost are nil when the posting has no such clause.
//
// Example:
//
//	Assets:Depot  2 VACHF @ 105 CHF {100 CHF}
type Posting struct {
	Account string
	Amount  Amount
	Price   *Price
	Cost    *Cost
}
