package domain

// Variant is one of the four transaction categories. It governs which
// fields are collected and the path through the conversation.
type Variant string

const (
	// VariantReceipt records incoming gold (دریافت).
	VariantReceipt Variant = "receipt"
	// VariantPayment records outgoing gold (پرداخت).
	VariantPayment Variant = "payment"
	// VariantDeal records a buy or sell trade (معامله).
	VariantDeal Variant = "deal"
	// VariantTransfer records a remittance between two counterparties (حواله).
	VariantTransfer Variant = "transfer"
)

// Variants lists all variants in menu order.
var Variants = []Variant{VariantReceipt, VariantPayment, VariantDeal, VariantTransfer}

var variantLabels = map[Variant]string{
	VariantReceipt:  "دریافت",
	VariantPayment:  "پرداخت",
	VariantDeal:     "معامله",
	VariantTransfer: "حواله",
}

// Label returns the user-facing name of the variant. The label is also the
// value written into the sheet's type column, so it is part of the store
// contract.
func (v Variant) Label() string {
	return variantLabels[v]
}

// Valid reports whether v is one of the known variants.
func (v Variant) Valid() bool {
	_, ok := variantLabels[v]
	return ok
}

// VariantFromKey resolves a callback payload back to a variant.
func VariantFromKey(key string) (Variant, bool) {
	v := Variant(key)
	return v, v.Valid()
}
