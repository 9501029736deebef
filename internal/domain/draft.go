package domain

import (
	"fmt"

	"cloud.google.com/go/civil"
)

// FieldKey is the internal name of one draft field. The keys double as the
// stable identifiers carried in edit callbacks.
type FieldKey string

const (
	FieldReceiptNum      FieldKey = "receipt_num"
	FieldPackNum         FieldKey = "pack_num"
	FieldIDNum           FieldKey = "id_num"
	FieldPurity          FieldKey = "purity"
	FieldWeight          FieldKey = "weight"
	FieldPartnerName     FieldKey = "partner_name"
	FieldDealDirection   FieldKey = "deal_direction"
	FieldDealType        FieldKey = "deal_type"
	FieldAmount          FieldKey = "amount"
	FieldRate            FieldKey = "rate"
	FieldGiverPartner    FieldKey = "giver_partner_name"
	FieldReceiverPartner FieldKey = "receiver_partner_name"
	FieldDescription     FieldKey = "description"
)

// pathFields is the ordered capture sequence per variant. Description is
// always requested last.
var pathFields = map[Variant][]FieldKey{
	VariantReceipt: {
		FieldReceiptNum, FieldPackNum, FieldIDNum, FieldPurity,
		FieldWeight, FieldPartnerName, FieldDescription,
	},
	VariantPayment: {
		FieldReceiptNum, FieldPurity, FieldWeight,
		FieldPartnerName, FieldDescription,
	},
	VariantDeal: {
		FieldReceiptNum, FieldDealDirection, FieldDealType, FieldAmount,
		FieldRate, FieldPartnerName, FieldDescription,
	},
	VariantTransfer: {
		FieldDealType, FieldAmount, FieldGiverPartner,
		FieldReceiverPartner, FieldDescription,
	},
}

// PathFields returns the ordered field sequence the variant collects.
func PathFields(v Variant) []FieldKey {
	fields := pathFields[v]
	out := make([]FieldKey, len(fields))
	copy(out, fields)
	return out
}

// Reachable reports whether the key may be written on a draft of the given
// variant. Receipt number is always reachable because the edit menu offers
// it for every variant.
func Reachable(v Variant, key FieldKey) bool {
	if key == FieldReceiptNum {
		return true
	}
	for _, f := range pathFields[v] {
		if f == key {
			return true
		}
	}
	return false
}

// Draft is the record under construction for one session. The date is set
// at creation and never changes; fields accumulate as the conversation
// advances.
type Draft struct {
	Variant Variant
	Date    civil.Date

	fields map[FieldKey]string
}

// NewDraft creates an empty draft for the variant, dated on the given day.
func NewDraft(v Variant, date civil.Date) *Draft {
	return &Draft{
		Variant: v,
		Date:    date,
		fields:  make(map[FieldKey]string),
	}
}

// Set writes a field value. It rejects keys not reachable from the
// variant's path.
func (d *Draft) Set(key FieldKey, value string) error {
	if !Reachable(d.Variant, key) {
		return fmt.Errorf("field %q is not reachable for variant %q", key, d.Variant)
	}
	d.fields[key] = value
	return nil
}

// Get returns the value for key and whether it has been set.
func (d *Draft) Get(key FieldKey) (string, bool) {
	v, ok := d.fields[key]
	return v, ok
}

// Has reports whether key has been set.
func (d *Draft) Has(key FieldKey) bool {
	_, ok := d.fields[key]
	return ok
}

// Value returns the value for key, or the empty string when unset.
func (d *Draft) Value(key FieldKey) string {
	return d.fields[key]
}

// Fields returns a copy of all set fields.
func (d *Draft) Fields() map[FieldKey]string {
	out := make(map[FieldKey]string, len(d.fields))
	for k, v := range d.fields {
		out[k] = v
	}
	return out
}
