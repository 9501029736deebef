// Package summary projects a draft into the confirmation preview shown to
// the user before commit.
package summary

import (
	"strings"

	"github.com/itsmoein/ledgerbot/internal/domain"
	"github.com/itsmoein/ledgerbot/internal/schema"
)

// Render builds the fixed-order, label-prefixed preview of a draft. A
// field line appears only when the field has been captured; description is
// always rendered, empty or not.
func Render(d *domain.Draft) string {
	var b strings.Builder
	b.WriteString("خلاصه تراکنش:\n\n")
	b.WriteString("نوع: " + d.Variant.Label() + "\n")
	b.WriteString("تاریخ: " + d.Date.String() + "\n")

	for _, key := range schema.RowFields {
		if key == domain.FieldDescription {
			continue
		}
		if v, ok := d.Get(key); ok {
			b.WriteString(schema.Label(key) + ": " + v + "\n")
		}
	}

	b.WriteString(schema.Label(domain.FieldDescription) + ": " + d.Value(domain.FieldDescription) + "\n")
	return b.String()
}
