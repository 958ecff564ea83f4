package domain

import "github.com/shopspring/decimal"

// PaymentMethodID identifies a configured payment method. The ids mirror the
// console's fixed method catalog.
type PaymentMethodID int

const (
	PaymentMethodCash     PaymentMethodID = 6
	PaymentMethodTransfer PaymentMethodID = 7
	PaymentMethodCard     PaymentMethodID = 8
	PaymentMethodWallet   PaymentMethodID = 9
)

// IsCash reports whether the method is the cash method. Cash payments never
// carry a proof attachment; the other methods may.
func (m PaymentMethodID) IsCash() bool {
	return m == PaymentMethodCash
}

// Payment is one payment entry recorded against a sale during composition and
// emitted with the finalize request.
type Payment struct {
	PaymentMethodID  PaymentMethodID `json:"paymentMethodID"`
	AmountPaid       decimal.Decimal `json:"amountPaid"`
	PaymentReference string          `json:"paymentReference,omitempty"`
	ProofKey         string          `json:"proofKey,omitempty"`
	ProofPath        string          `json:"-"`
}
