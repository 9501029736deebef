package domain

import (
	"testing"

	"cloud.google.com/go/civil"
)

func testDate() civil.Date {
	return civil.Date{Year: 2025, Month: 3, Day: 14}
}

func TestPathFields(t *testing.T) {
	tests := []struct {
		variant Variant
		want    []FieldKey
	}{
		{
			variant: VariantReceipt,
			want: []FieldKey{
				FieldReceiptNum, FieldPackNum, FieldIDNum, FieldPurity,
				FieldWeight, FieldPartnerName, FieldDescription,
			},
		},
		{
			variant: VariantPayment,
			want: []FieldKey{
				FieldReceiptNum, FieldPurity, FieldWeight,
				FieldPartnerName, FieldDescription,
			},
		},
		{
			variant: VariantDeal,
			want: []FieldKey{
				FieldReceiptNum, FieldDealDirection, FieldDealType,
				FieldAmount, FieldRate, FieldPartnerName, FieldDescription,
			},
		},
		{
			variant: VariantTransfer,
			want: []FieldKey{
				FieldDealType, FieldAmount, FieldGiverPartner,
				FieldReceiverPartner, FieldDescription,
			},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.variant), func(t *testing.T) {
			got := PathFields(tt.variant)
			if len(got) != len(tt.want) {
				t.Fatalf("PathFields(%s) has %d fields, want %d", tt.variant, len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("PathFields(%s)[%d] = %s, want %s", tt.variant, i, got[i], tt.want[i])
				}
			}
			if got[len(got)-1] != FieldDescription {
				t.Errorf("PathFields(%s) must end with description", tt.variant)
			}
		})
	}
}

func TestDraft_SetRejectsUnreachableField(t *testing.T) {
	d := NewDraft(VariantPayment, testDate())

	if err := d.Set(FieldPackNum, "12"); err == nil {
		t.Error("expected error setting pack_num on a payment draft")
	}
	if d.Has(FieldPackNum) {
		t.Error("rejected write must not mutate the draft")
	}

	if err := d.Set(FieldPurity, "750"); err != nil {
		t.Errorf("unexpected error setting reachable field: %v", err)
	}
}

func TestDraft_ReceiptNumAlwaysReachable(t *testing.T) {
	// The edit menu offers the receipt number for every variant, including
	// Transfer whose capture path never asks for it.
	d := NewDraft(VariantTransfer, testDate())
	if err := d.Set(FieldReceiptNum, "99"); err != nil {
		t.Errorf("receipt_num should be settable on a transfer draft: %v", err)
	}
}

func TestDraft_GetAndFields(t *testing.T) {
	d := NewDraft(VariantReceipt, testDate())
	if err := d.Set(FieldWeight, "10.5"); err != nil {
		t.Fatal(err)
	}

	v, ok := d.Get(FieldWeight)
	if !ok || v != "10.5" {
		t.Errorf("Get(weight) = %q, %v; want \"10.5\", true", v, ok)
	}
	if _, ok := d.Get(FieldPurity); ok {
		t.Error("Get on unset field must report absence")
	}
	if d.Value(FieldPurity) != "" {
		t.Error("Value on unset field must be empty")
	}

	fields := d.Fields()
	fields[FieldWeight] = "mutated"
	if d.Value(FieldWeight) != "10.5" {
		t.Error("Fields must return a copy")
	}
}

func TestVariantLabels(t *testing.T) {
	tests := []struct {
		variant Variant
		label   string
	}{
		{VariantReceipt, "دریافت"},
		{VariantPayment, "پرداخت"},
		{VariantDeal, "معامله"},
		{VariantTransfer, "حواله"},
	}
	for _, tt := range tests {
		if got := tt.variant.Label(); got != tt.label {
			t.Errorf("%s.Label() = %q, want %q", tt.variant, got, tt.label)
		}
	}

	if _, ok := VariantFromKey("deal"); !ok {
		t.Error("VariantFromKey should resolve known keys")
	}
	if _, ok := VariantFromKey("loan"); ok {
		t.Error("VariantFromKey should reject unknown keys")
	}
}
