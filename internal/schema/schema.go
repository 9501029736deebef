// Package schema holds the static description of the transaction record:
// the ordered sheet columns, display labels, and per-variant field sets.
// The Persian headers are a contract with the spreadsheet and must not be
// reordered.
package schema

import "github.com/itsmoein/ledgerbot/internal/domain"

// Column headers shared with the transactions worksheet, in write order.
const (
	HeaderType       = "نوع تراکنش"
	HeaderDate       = "تاریخ"
	HeaderRecordedAt = "زمان ثبت"
)

// Headers is the full 16-column header row.
var Headers = []string{
	HeaderType, HeaderDate,
	"شماره سند", "شماره پاکت", "اسم ریگیری",
	"عیار", "وزن", "طرف حساب", "جهت معامله", "نوع معامله",
	"مقدار", "نرخ", "طرف پرداخت کننده", "طرف دریافت کننده",
	"توضیحات", HeaderRecordedAt,
}

// RowFields maps the 13 field-backed columns (positions 2..14 of the row)
// to their draft keys, in column order.
var RowFields = []domain.FieldKey{
	domain.FieldReceiptNum,
	domain.FieldPackNum,
	domain.FieldIDNum,
	domain.FieldPurity,
	domain.FieldWeight,
	domain.FieldPartnerName,
	domain.FieldDealDirection,
	domain.FieldDealType,
	domain.FieldAmount,
	domain.FieldRate,
	domain.FieldGiverPartner,
	domain.FieldReceiverPartner,
	domain.FieldDescription,
}

var fieldLabels = map[domain.FieldKey]string{
	domain.FieldReceiptNum:      "شماره سند",
	domain.FieldPackNum:         "شماره پاکت",
	domain.FieldIDNum:           "اسم ریگیری",
	domain.FieldPurity:          "عیار",
	domain.FieldWeight:          "وزن",
	domain.FieldPartnerName:     "طرف حساب",
	domain.FieldDealDirection:   "جهت معامله",
	domain.FieldDealType:        "نوع معامله",
	domain.FieldAmount:          "مقدار",
	domain.FieldRate:            "نرخ",
	domain.FieldGiverPartner:    "طرف پرداخت کننده",
	domain.FieldReceiverPartner: "طرف دریافت کننده",
	domain.FieldDescription:     "توضیحات",
}

// Label returns the display name for a field key.
func Label(key domain.FieldKey) string {
	return fieldLabels[key]
}

// numericFields are normalized at entry and coerced to numbers at commit.
var numericFields = map[domain.FieldKey]bool{
	domain.FieldReceiptNum: true,
	domain.FieldPackNum:    true,
	domain.FieldPurity:     true,
	domain.FieldWeight:     true,
	domain.FieldAmount:     true,
	domain.FieldRate:       true,
}

// Numeric reports whether the field holds a numeric value.
func Numeric(key domain.FieldKey) bool {
	return numericFields[key]
}

// editableExtras lists the per-variant fields offered in the edit menu on
// top of the base set (receipt number and description).
var editableExtras = map[domain.Variant][]domain.FieldKey{
	domain.VariantReceipt: {
		domain.FieldPackNum, domain.FieldIDNum, domain.FieldPurity,
		domain.FieldWeight, domain.FieldPartnerName,
	},
	domain.VariantPayment: {
		domain.FieldPurity, domain.FieldWeight, domain.FieldPartnerName,
	},
	domain.VariantDeal: {
		domain.FieldDealDirection, domain.FieldDealType, domain.FieldAmount,
		domain.FieldRate, domain.FieldPartnerName,
	},
	domain.VariantTransfer: {
		domain.FieldDealType, domain.FieldAmount,
		domain.FieldGiverPartner, domain.FieldReceiverPartner,
	},
}

// EditableFields returns the fields the edit menu offers for a variant.
// Receipt number and description are always present.
func EditableFields(v domain.Variant) []domain.FieldKey {
	fields := []domain.FieldKey{domain.FieldReceiptNum, domain.FieldDescription}
	fields = append(fields, editableExtras[v]...)
	return fields
}

// DealDirections are the closed choices for the deal_direction field.
var DealDirections = []string{"Buy", "Sell"}

// DealTypes are the closed choices for the deal_type field.
var DealTypes = []string{"Gold gr", "Gold Milion", "AED", "USD"}
