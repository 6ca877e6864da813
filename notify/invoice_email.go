package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/PerryB-GIT/sweetmeadow-bakery/models"
)

var invoiceTmpl = template.Must(template.New("invoice").Funcs(template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("$%.2f", v) },
	"date": func(t any) string {
		switch v := t.(type) {
		case time.Time:
			return v.Format("1/2/2006")
		case *time.Time:
			if v == nil {
				return ""
			}
			return v.Format("1/2/2006")
		}
		return ""
	},
}).Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Invoice #{{.Invoice.InvoiceNumber}}</title>
</head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; color: #333;">
  <div style="text-align: center; margin-bottom: 30px;">
    <h1 style="color: #8B4513; font-family: Georgia, serif; margin: 0;">Sweet Meadow Bakery</h1>
    <p style="color: #666; margin: 5px 0;">Beverly, MA</p>
  </div>

  <div style="background: #f9f9f9; padding: 20px; border-radius: 8px; margin-bottom: 20px;">
    <h2 style="margin: 0 0 10px 0;">Invoice #{{.Invoice.InvoiceNumber}}</h2>
    <p style="margin: 0; color: #666;">Date: {{date .Invoice.CreatedAt}}</p>
    {{if .Invoice.DueDate}}<p style="margin: 0; color: #666;">Due: {{date .Invoice.DueDate}}</p>{{end}}
  </div>

  <div style="margin-bottom: 20px;">
    <p style="margin: 0;"><strong>Bill To:</strong></p>
    <p style="margin: 5px 0;">{{.RecipientName}}</p>
    <p style="margin: 0; color: #666;">{{.RecipientEmail}}</p>
    {{if .Invoice.GuestAddress}}<p style="margin: 0; color: #666;">{{.Invoice.GuestAddress}}</p>{{end}}
  </div>

  <table style="width: 100%; border-collapse: collapse; margin-bottom: 20px;">
    <thead>
      <tr style="background: #8B4513; color: white;">
        <th style="padding: 12px; text-align: left;">Description</th>
        <th style="padding: 12px; text-align: center;">Qty</th>
        <th style="padding: 12px; text-align: right;">Price</th>
        <th style="padding: 12px; text-align: right;">Total</th>
      </tr>
    </thead>
    <tbody>
      {{range .Invoice.Items}}
      <tr>
        <td style="padding: 12px; border-bottom: 1px solid #eee;">{{.Description}}</td>
        <td style="padding: 12px; border-bottom: 1px solid #eee; text-align: center;">{{.Quantity}}</td>
        <td style="padding: 12px; border-bottom: 1px solid #eee; text-align: right;">{{money .UnitPrice}}</td>
        <td style="padding: 12px; border-bottom: 1px solid #eee; text-align: right;">{{money .Total}}</td>
      </tr>
      {{end}}
    </tbody>
  </table>

  <div style="text-align: right; margin-bottom: 20px;">
    <p style="margin: 5px 0;"><strong>Subtotal:</strong> {{money .Invoice.Subtotal}}</p>
    <p style="margin: 5px 0;"><strong>Tax (6.25%):</strong> {{money .Invoice.Tax}}</p>
    <p style="margin: 10px 0; font-size: 18px;"><strong>Total:</strong> <span style="color: #8B4513;">{{money .Invoice.Total}}</span></p>
  </div>

  {{if .Invoice.Notes}}<div style="background: #f9f9f9; padding: 15px; border-radius: 8px; margin-bottom: 15px;"><strong>Notes:</strong><br>{{.Invoice.Notes}}</div>{{end}}
  {{if .Invoice.Terms}}<div style="color: #666; font-size: 12px; border-top: 1px solid #eee; padding-top: 15px;"><strong>Terms:</strong><br>{{.Invoice.Terms}}</div>{{end}}

  <div style="text-align: center; margin-top: 30px; padding-top: 20px; border-top: 1px solid #eee;">
    <p style="color: #666; margin: 0;">Thank you for your business!</p>
    <p style="color: #8B4513; margin: 5px 0;">Sweet Meadow Bakery</p>
  </div>
</body>
</html>`))

type invoiceEmailData struct {
	Invoice        *models.Invoice
	RecipientName  string
	RecipientEmail string
}

// RenderInvoiceEmail produces the HTML body sent with an invoice.
func RenderInvoiceEmail(inv *models.Invoice, recipientName, recipientEmail string) (string, error) {
	var buf bytes.Buffer
	err := invoiceTmpl.Execute(&buf, invoiceEmailData{
		Invoice:        inv,
		RecipientName:  recipientName,
		RecipientEmail: recipientEmail,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
