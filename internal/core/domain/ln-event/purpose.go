package lnevent

import "github.com/lightningnetwork/lnd/lntypes"

const (
	PurposeBolt11Invoice = "bolt11_invoice"
	PurposeBolt12Offer   = "bolt12_offer"
	PurposeBolt12Refund  = "bolt12_refund"
	PurposeSpontaneous   = "spontaneous"
)

// PaymentPurpose tells why a payment is claimable. Invoice, offer and refund
// payments may not know the preimage yet, spontaneous payments always do.
type PaymentPurpose interface {
	Kind() string
	Preimage() (lntypes.Preimage, bool)
	Secret() ([32]byte, bool)
}

type Bolt11InvoicePayment struct {
	PaymentPreimage *lntypes.Preimage
	PaymentSecret   [32]byte
}

type Bolt12OfferPayment struct {
	PaymentPreimage *lntypes.Preimage
	PaymentSecret   [32]byte
}

type Bolt12RefundPayment struct {
	PaymentPreimage *lntypes.Preimage
	PaymentSecret   [32]byte
}

type SpontaneousPayment struct {
	PaymentPreimage lntypes.Preimage
}

func (p Bolt11InvoicePayment) Kind() string { return PurposeBolt11Invoice }
func (p Bolt12OfferPayment) Kind() string   { return PurposeBolt12Offer }
func (p Bolt12RefundPayment) Kind() string  { return PurposeBolt12Refund }
func (p SpontaneousPayment) Kind() string   { return PurposeSpontaneous }

func (p Bolt11InvoicePayment) Preimage() (lntypes.Preimage, bool) {
	return optionalPreimage(p.PaymentPreimage)
}
func (p Bolt12OfferPayment) Preimage() (lntypes.Preimage, bool) {
	return optionalPreimage(p.PaymentPreimage)
}
func (p Bolt12RefundPayment) Preimage() (lntypes.Preimage, bool) {
	return optionalPreimage(p.PaymentPreimage)
}
func (p SpontaneousPayment) Preimage() (lntypes.Preimage, bool) {
	return p.PaymentPreimage, true
}

func (p Bolt11InvoicePayment) Secret() ([32]byte, bool) { return p.PaymentSecret, true }
func (p Bolt12OfferPayment) Secret() ([32]byte, bool)   { return p.PaymentSecret, true }
func (p Bolt12RefundPayment) Secret() ([32]byte, bool)  { return p.PaymentSecret, true }
func (p SpontaneousPayment) Secret() ([32]byte, bool)   { return [32]byte{}, false }

func optionalPreimage(preimage *lntypes.Preimage) (lntypes.Preimage, bool) {
	if preimage == nil {
		return lntypes.Preimage{}, false
	}
	return *preimage, true
}
