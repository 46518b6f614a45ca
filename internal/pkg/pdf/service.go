// internal/pkg/pdf/service.go
package pdf

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/your-org/shopmart/internal/config"
	"github.com/your-org/shopmart/internal/domain/order"
)

// Service handles PDF generation
type Service struct {
	config *config.Config
	tmpl   *template.Template
	now    func() time.Time
}

// NewService creates a new PDF service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
		tmpl: template.Must(template.New("receipt").Funcs(template.FuncMap{
			"mask": MaskCardNumber,
		}).Parse(receiptTemplate)),
		now: time.Now,
	}
}

// ReceiptData represents the data passed to the receipt template
type ReceiptData struct {
	ReceiptNumber string       `json:"receipt_number"`
	PrintedAt     string       `json:"printed_at"`
	Order         *order.Order `json:"order"`
	Store         StoreInfo    `json:"store"`
}

// StoreInfo represents the storefront printed in the receipt header
type StoreInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Website string `json:"website"`
}

// GenerateReceipt renders a printable PDF receipt for an order
func (s *Service) GenerateReceipt(o *order.Order) (*bytes.Buffer, error) {
	htmlContent, err := s.RenderReceiptHTML(o)
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.PageSize.Set(wkhtmltopdf.PageSizeA4)
	pdfg.Grayscale.Set(false)

	page := wkhtmltopdf.NewPageReader(strings.NewReader(htmlContent))
	page.FooterRight.Set("[page]")
	page.FooterFontSize.Set(9)
	page.Zoom.Set(0.95)

	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

// RenderReceiptHTML renders the receipt page that GenerateReceipt prints
func (s *Service) RenderReceiptHTML(o *order.Order) (string, error) {
	data := ReceiptData{
		ReceiptNumber: "RCP-" + strings.TrimPrefix(o.ID, "ORD-"),
		PrintedAt:     s.now().Format("January 2, 2006"),
		Order:         o,
		Store: StoreInfo{
			Name:    s.config.Store.Name,
			Email:   s.config.Store.SupportEmail,
			Website: s.config.Store.Website,
		},
	}

	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// MaskCardNumber keeps only the last four digits of a card number
func MaskCardNumber(card string) string {
	digits := make([]rune, 0, len(card))
	for _, r := range card {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) < 4 {
		return "****"
	}
	return "**** **** **** " + string(digits[len(digits)-4:])
}

const receiptTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Receipt {{.ReceiptNumber}}</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            margin: 0;
            padding: 20px;
            color: #333;
        }
        .header {
            display: flex;
            justify-content: space-between;
            margin-bottom: 30px;
            border-bottom: 2px solid #eee;
            padding-bottom: 20px;
        }
        .receipt-title {
            font-size: 28px;
            font-weight: bold;
            color: #2563eb;
            margin-bottom: 10px;
        }
        .section-title {
            font-size: 16px;
            font-weight: bold;
            margin-bottom: 10px;
            color: #374151;
        }
        .items-table {
            width: 100%;
            border-collapse: collapse;
            margin-bottom: 30px;
        }
        .items-table th,
        .items-table td {
            border: 1px solid #ddd;
            padding: 12px 8px;
            text-align: left;
        }
        .items-table th {
            background-color: #f8f9fa;
        }
        .items-table .num {
            text-align: right;
            width: 80px;
        }
        .totals {
            float: right;
            width: 300px;
        }
        .totals td {
            padding: 8px;
            border-bottom: 1px solid #eee;
            text-align: right;
        }
        .total-row {
            font-size: 18px;
            font-weight: bold;
        }
        .footer {
            clear: both;
            margin-top: 50px;
            padding-top: 20px;
            border-top: 1px solid #eee;
            text-align: center;
            color: #666;
            font-size: 12px;
        }
    </style>
</head>
<body>
    <div class="header">
        <div>
            <h1>{{.Store.Name}}</h1>
            <p>{{.Store.Website}}</p>
        </div>
        <div>
            <div class="receipt-title">RECEIPT</div>
            <p><strong>Receipt #:</strong> {{.ReceiptNumber}}</p>
            <p><strong>Order #:</strong> {{.Order.ID}}</p>
            <p><strong>Tracking #:</strong> {{.Order.TrackingID}}</p>
            <p><strong>Placed:</strong> {{.Order.PlacedAt.Format "January 2, 2006"}}</p>
            <p><strong>Status:</strong> {{.Order.Status}}</p>
        </div>
    </div>

    <div>
        <div class="section-title">Ship To:</div>
        <p><strong>{{.Order.Customer.Name}}</strong></p>
        <p>{{.Order.Customer.Address}}</p>
        <p>{{.Order.Customer.City}} {{.Order.Customer.ZipCode}}</p>
        <p>Email: {{.Order.Customer.Email}}</p>
        <p>Paid with card {{mask .Order.Customer.CardNumber}}</p>
    </div>

    <table class="items-table">
        <thead>
            <tr>
                <th>Item</th>
                <th class="num">Qty</th>
                <th class="num">Price</th>
                <th class="num">Total</th>
            </tr>
        </thead>
        <tbody>
            {{range .Order.Items}}
            <tr>
                <td><strong>{{.Product.Title}}</strong>{{if .Product.Brand}}<br><small>{{.Product.Brand}}</small>{{end}}</td>
                <td class="num">{{.Quantity}}</td>
                <td class="num">${{.Product.Price.StringFixed 2}}</td>
                <td class="num">${{.Subtotal.StringFixed 2}}</td>
            </tr>
            {{end}}
        </tbody>
    </table>

    <div class="totals">
        <table>
            <tr><td>Subtotal:</td><td>${{.Order.Pricing.Subtotal.StringFixed 2}}</td></tr>
            <tr><td>Shipping:</td><td>{{if .Order.Pricing.ShippingCost.IsZero}}FREE{{else}}${{.Order.Pricing.ShippingCost.StringFixed 2}}{{end}}</td></tr>
            <tr><td>Tax (10%):</td><td>${{.Order.Pricing.TaxAmount.StringFixed 2}}</td></tr>
            <tr class="total-row"><td>Total:</td><td>${{.Order.Pricing.TotalAmount.StringFixed 2}}</td></tr>
        </table>
    </div>

    <div class="footer">
        <p>Thank you for shopping with {{.Store.Name}}!</p>
        <p>Questions about this order? Contact us at {{.Store.Email}}. Printed {{.PrintedAt}}.</p>
    </div>
</body>
</html>
`
