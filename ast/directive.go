package ast

// Commodity declares a commodity or currency that can be used in the ledger.
// This directive is optional but helps document which currencies and
// commodities are expected in your accounts.
//
// Example:
//
//	2014-01-01 commodity USD
type Commodity struct {
	Date     *Date
	Currency string
}

var _ Entry = &Commodity{}

func (c *Commodity) date() *Date       { return c.Date }
func (c *Commodity) Directive() string { return "commodity" }

// Open declares the opening of an account at a specific date, marking the
// beginning of its lifetime in the ledger. You can optionally constrain
// which currencies the account may hold; a nil ConstraintCurrencies means
// the account accepts any currency.
//
// Example:
//
//	2014-05-01 open Assets:US:BofA:Checking USD
//	2014-05-01 open Assets:Investments:Brokerage USD EUR
type Open struct {
	Date                 *Date
	Account              string
	ConstraintCurrencies []string
}

var _ Entry = &Open{}

func (o *Open) date() *Date       { return o.Date }
func (o *Open) Directive() string { return "open" }

// Close declares the closing of an account at a specific date, marking the
// end of its lifetime in the ledger.
//
// Example:
//
//	2016-02-01 close Assets:US:BofA:Checking
type Close struct {
	Date    *Date
	Account string
}

var _ Entry = &Close{}

func (c *Close) date() *Date       { return c.Date }
func (c *Close) Directive() string { return "close" }

// Balance asserts that an account holds a specific amount at the beginning
// of its date.
//
// Example:
//
//	2014-12-26 balance Liabilities:US:CreditCard -3492.02 USD
type Balance struct {
	Date    *Date
	Account string
	Amount  Amount
}

var _ Entry = &Balance{}

func (b *Balance) date() *Date       { return b.Date }
func (b *Balance) Directive() string { return "balance" }

// Price records the market rate of one commodity in another on a given date.
//
// Example:
//
//	2014-07-09 price HOOL 579.18 USD
type PriceEntry struct {
	Date     *Date
	Currency string
	Amount   Amount
}

var _ Entry = &PriceEntry{}

func (p *PriceEntry) date() *Date       { return p.Date }
func (p *PriceEntry) Directive() string { return "price" }
