// internal/pkg/pdf/service.go
package pdf

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/your-org/pos-terminal/internal/config"
	"github.com/your-org/pos-terminal/internal/domain/receipt"
)

// Service renders receipts as printable PDFs
type Service struct {
	config *config.Config
	tmpl   *template.Template
}

// NewService creates a new PDF service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
		tmpl:   template.Must(template.New("receipt").Parse(receiptTemplate)),
	}
}

// GenerateReceipt renders r through wkhtmltopdf. The binary must be on PATH or
// named by WKHTMLTOPDF_PATH.
func (s *Service) GenerateReceipt(r *receipt.Receipt) (*bytes.Buffer, error) {
	htmlContent, err := s.RenderHTML(r)
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	// 80mm roll
	pdfg.Dpi.Set(203)
	pdfg.PageWidth.Set(80)
	pdfg.PageHeight.Set(uint(60 + 8*len(r.Lines)))
	pdfg.MarginLeft.Set(2)
	pdfg.MarginRight.Set(2)
	pdfg.Grayscale.Set(true)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader([]byte(htmlContent)))
	page.Encoding.Set("utf-8")
	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

// RenderHTML fills the receipt template
func (s *Service) RenderHTML(r *receipt.Receipt) (string, error) {
	data := ReceiptData{
		Number:   r.ID.String(),
		Date:     r.CreatedAt.Format(receipt.TimestampLayout),
		Currency: r.CurrencyCode(),
		Total:    r.Total.StringFixed(2),
		Company: CompanyInfo{
			Name:    s.config.POS.CompanyName,
			Address: s.config.POS.CompanyAddress,
			Phone:   s.config.POS.CompanyPhone,
		},
	}
	for _, l := range r.Lines {
		data.Lines = append(data.Lines, LineData{
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice.StringFixed(2),
			LineTotal: l.LineTotal.StringFixed(2),
		})
	}

	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// ReceiptData represents the data passed to the receipt template
type ReceiptData struct {
	Number   string      `json:"number"`
	Date     string      `json:"date"`
	Currency string      `json:"currency"`
	Total    string      `json:"total"`
	Lines    []LineData  `json:"lines"`
	Company  CompanyInfo `json:"company"`
}

// LineData is one printed receipt line
type LineData struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`
}

// CompanyInfo represents company information
type CompanyInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

const receiptTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Receipt {{.Number}}</title>
    <style>
        body { font-family: "DejaVu Sans Mono", monospace; font-size: 11px; margin: 0; }
        .header { text-align: center; border-bottom: 1px dashed #000; padding-bottom: 6px; }
        .company-name { font-size: 14px; font-weight: bold; }
        table { width: 100%; border-collapse: collapse; margin-top: 6px; }
        td { padding: 2px 0; vertical-align: top; }
        .num { text-align: right; white-space: nowrap; }
        .total { border-top: 1px dashed #000; font-weight: bold; font-size: 13px; }
        .footer { text-align: center; margin-top: 8px; font-size: 9px; }
    </style>
</head>
<body>
    <div class="header">
        <div class="company-name">{{.Company.Name}}</div>
        {{if .Company.Address}}<div>{{.Company.Address}}</div>{{end}}
        {{if .Company.Phone}}<div>{{.Company.Phone}}</div>{{end}}
        <div>{{.Date}}</div>
    </div>
    <table>
        {{range .Lines}}
        <tr>
            <td>{{.Name}}<br>{{.Quantity}} x {{.UnitPrice}}</td>
            <td class="num">{{.LineTotal}}</td>
        </tr>
        {{end}}
        <tr class="total">
            <td>Total, {{.Currency}}</td>
            <td class="num">{{.Total}}</td>
        </tr>
    </table>
    <div class="footer">Receipt {{.Number}}</div>
</body>
</html>
`
