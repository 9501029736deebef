package flow

import (
	"fmt"

	"github.com/itsmoein/ledgerbot/internal/domain"
	"github.com/itsmoein/ledgerbot/internal/schema"
)

// User-facing message texts. Persian, matching the spreadsheet locale.
const (
	msgWelcome = "👋 به سیستم ثبت تراکنش خوش آمدید!\n\n" +
		"من به شما کمک می‌کنم انواع مختلف تراکنش را در Google Sheets ثبت کنید.\n" +
		"برای ثبت تراکنش جدید روی دکمه تراکنش جدید کلیک کنید."
	msgPickOption     = "لطفاً از دکمه‌های موجود استفاده کنید."
	msgPickVariant    = "لطفاً نوع تراکنش را انتخاب کنید:"
	msgCancelled      = "عملیات لغو شد. می‌توانید تراکنش جدید ثبت کنید."
	msgWentHome       = "به صفحه اصلی بازگشتید. می‌توانید تراکنش جدید ثبت کنید."
	msgTxCancelled    = "تراکنش لغو شد."
	msgBackToMenu     = "می‌توانید تراکنش جدید ثبت کنید یا به صفحه اصلی برگردید."
	msgCommitOK       = "✅ تراکنش با موفقیت در Google Sheets ذخیره شد!"
	msgAskReceiptNum  = "شماره سند را وارد کنید:"
	msgAskPackNum     = "شماره پاکت را وارد کنید:"
	msgAskIDNum       = "اسم ریگیری را وارد کنید:"
	msgAskPurity      = "عیار را وارد کنید:"
	msgAskWeight      = "وزن را وارد کنید:"
	msgAskRate        = "نرخ را وارد کنید:"
	msgAskDirection   = "لطفا جهت معامله مشخص کنید؟"
	msgAskDealType    = "نوع معامله را انتخاب کنید:"
	msgAskBillType    = "نوع حواله را انتخاب کنید:"
	msgAskDescription = "توضیحات را وارد کنید (اختیاری):"
	msgAskEditField   = "فیلدی که می‌خواهید ویرایش کنید را انتخاب کنید:"

	labelConfirm  = "تایید"
	labelEdit     = "ویرایش"
	labelCancel   = "انصراف"
	labelBack     = "بازگشت به تأیید"
	labelAddNew   = "➕ افزودن نام جدید"
)

func msgCommitFailed(err error) string {
	return fmt.Sprintf("❌ خطا در ذخیره تراکنش: %v", err)
}

func msgLastReceiptHint(hint string) string {
	return fmt.Sprintf("آخرین شماره سند ثبت شده: %s\n%s", hint, msgAskReceiptNum)
}

func msgAskAmount(unit string) string {
	return fmt.Sprintf("مقدار را %s وارد کنید:", unit)
}

func msgPartnerAdded(name string) string {
	return fmt.Sprintf("نام '%s' به لیست مشتریان اضافه شد.", name)
}

func msgAskNewPartner(title string) string {
	return fmt.Sprintf("لطفا %s جدید را وارد کنید:", title)
}

func msgAskEditValue(field domain.FieldKey) string {
	return fmt.Sprintf("لطفا مقدار جدید برای %s را وارد کنید:", schema.Label(field))
}

func msgPickEditValue(field domain.FieldKey) string {
	return fmt.Sprintf("لطفا مقدار جدید برای %s را انتخاب کنید:", schema.Label(field))
}

// partnerTitle is the question asked for each partner-valued field.
func partnerTitle(field domain.FieldKey) string {
	switch field {
	case domain.FieldGiverPartner:
		return "از چه کسی دریافت می کنید؟"
	case domain.FieldReceiverPartner:
		return "به چه کسی پرداخت می کنید؟"
	default:
		return schema.Label(domain.FieldPartnerName)
	}
}

// variantChoices is the 2x2 transaction type keyboard.
func variantChoices() [][]Choice {
	return [][]Choice{
		{
			{Label: domain.VariantReceipt.Label(), Data: cbVariant + string(domain.VariantReceipt)},
			{Label: domain.VariantPayment.Label(), Data: cbVariant + string(domain.VariantPayment)},
		},
		{
			{Label: domain.VariantDeal.Label(), Data: cbVariant + string(domain.VariantDeal)},
			{Label: domain.VariantTransfer.Label(), Data: cbVariant + string(domain.VariantTransfer)},
		},
	}
}

func directionChoices(prefix string) [][]Choice {
	rows := make([][]Choice, 0, len(schema.DealDirections))
	for _, d := range schema.DealDirections {
		rows = append(rows, []Choice{{Label: d, Data: prefix + d}})
	}
	return rows
}

func dealTypeChoices(prefix string) [][]Choice {
	var rows [][]Choice
	var row []Choice
	for _, dt := range schema.DealTypes {
		row = append(row, Choice{Label: dt, Data: prefix + dt})
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return rows
}

// partnerChoices lays out directory names in rows of two, with the
// add-new option last.
func partnerChoices(names []string, prefix string) [][]Choice {
	var rows [][]Choice
	var row []Choice
	for _, name := range names {
		row = append(row, Choice{Label: name, Data: prefix + name})
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	rows = append(rows, []Choice{{Label: labelAddNew, Data: prefix + addNewSentinel}})
	return rows
}

func confirmChoices() [][]Choice {
	return [][]Choice{
		{
			{Label: labelConfirm, Data: cbConfirm},
			{Label: labelEdit, Data: cbEdit},
		},
		{{Label: labelCancel, Data: cbCancel}},
	}
}

// editFieldChoices lays out the editable fields in rows of two, with the
// back-to-confirmation option last.
func editFieldChoices(v domain.Variant) [][]Choice {
	fields := schema.EditableFields(v)
	var rows [][]Choice
	var row []Choice
	for _, f := range fields {
		row = append(row, Choice{Label: schema.Label(f), Data: cbEditField + string(f)})
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	rows = append(rows, []Choice{{Label: labelBack, Data: cbBackToConfirm}})
	return rows
}
