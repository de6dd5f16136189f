package pdf_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/pos-terminal/internal/config"
	"github.com/your-org/pos-terminal/internal/domain/receipt"
	"github.com/your-org/pos-terminal/internal/pkg/pdf"
	"golang.org/x/text/currency"
)

func TestRenderHTML(t *testing.T) {
	cfg := &config.Config{POS: config.POSConfig{
		CompanyName:  "Corner <Shop>",
		CompanyPhone: "+380 44 000 00 00",
	}}

	r := receipt.New(uuid.MustParse("6f1c2a8e-0d3b-4b8f-9a51-0f4c7c7e2d11"),
		time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC), currency.MustParseISO("UAH"))
	r.AddLine("Bread", 3, decimal.NewFromInt(20))
	r.AddLine("Apples (kg)", 2, decimal.RequireFromString("25.5"))

	html, err := pdf.NewService(cfg).RenderHTML(r)
	require.NoError(t, err)

	assert.Contains(t, html, "Corner &lt;Shop&gt;")
	assert.Contains(t, html, "+380 44 000 00 00")
	assert.Contains(t, html, "2026-03-14 09:26:53")
	assert.Contains(t, html, "3 x 20.00")
	assert.Contains(t, html, "2 x 25.50")
	assert.Contains(t, html, "<td class=\"num\">111.00</td>")
	assert.Contains(t, html, "Total, UAH")
	assert.Contains(t, html, "Receipt 6f1c2a8e-0d3b-4b8f-9a51-0f4c7c7e2d11")
	assert.False(t, strings.Contains(html, "<div></div>"), "empty address must not render")
}
