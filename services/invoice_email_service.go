package services

import (
	"encoding/base64"
	"errors"
	"fmt"
	"html"
	"log"
	"os"
	"strings"
	"time"

	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

// ErrMailerNotConfigured is returned when RESEND_API_KEY is unset.
var ErrMailerNotConfigured = errors.New("email delivery is not configured")

const defaultResendURL = "https://api.resend.com"

// ResendClient sends transactional email through the Resend HTTP API
type ResendClient struct {
	http *resty.Client
	from string
}

// NewResendClient builds a client from RESEND_API_KEY, RESEND_FROM_EMAIL and
// RESEND_API_URL (tests point the last one at a local server).
func NewResendClient() (*ResendClient, error) {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		return nil, ErrMailerNotConfigured
	}

	from := os.Getenv("RESEND_FROM_EMAIL")
	if from == "" {
		from = "noreply@storefront.local"
	}

	baseURL := os.Getenv("RESEND_API_URL")
	if baseURL == "" {
		baseURL = defaultResendURL
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(apiKey).
		SetTimeout(30 * time.Second).
		SetHeader("Content-Type", "application/json")

	return &ResendClient{http: client, from: from}, nil
}

type resendAttachment struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

type resendEmail struct {
	From        string             `json:"from"`
	To          string             `json:"to"`
	Subject     string             `json:"subject"`
	HTML        string             `json:"html"`
	Attachments []resendAttachment `json:"attachments,omitempty"`
}

// SendOrderInvoiceEmail mails an HTML summary of order with the PDF attached.
func (r *ResendClient) SendOrderInvoiceEmail(order *models.Order, customer InvoiceCustomer, pdfContent []byte) error {
	if customer.Email == "" {
		return errors.New("customer has no email address")
	}

	payload := resendEmail{
		From:    r.from,
		To:      customer.Email,
		Subject: fmt.Sprintf("Your invoice for order %s", order.ID),
		HTML:    buildInvoiceEmailHTML(order, customer),
		Attachments: []resendAttachment{{
			Filename: fmt.Sprintf("invoice-%s.pdf", order.ID),
			Content:  base64.StdEncoding.EncodeToString(pdfContent),
		}},
	}

	resp, err := r.http.R().SetBody(payload).Post("/emails")
	if err != nil {
		log.Printf("[resend] failed to send request: %v", err)
		return fmt.Errorf("send invoice email: %w", err)
	}
	if resp.IsError() {
		log.Printf("[resend] api returned status %d: %s", resp.StatusCode(), resp.String())
		return fmt.Errorf("resend api error: status %d", resp.StatusCode())
	}

	log.Printf("[resend] order invoice email sent to %s for order %s", customer.Email, order.ID)
	return nil
}

func buildInvoiceEmailHTML(order *models.Order, customer InvoiceCustomer) string {
	var rows strings.Builder
	for _, item := range order.Items {
		title := item.ProductID.String()
		if item.Product != nil {
			title = item.Product.Title
		}
		lineTotal := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		rows.WriteString(fmt.Sprintf(`
      <tr>
        <td style="padding: 8px 0; font-size: 14px; color: #262622;">%s</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; color: #262622;">%d</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; color: #262622;">$%s</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; font-weight: 600; color: #262622;">$%s</td>
      </tr>`, html.EscapeString(title), item.Quantity, item.UnitPrice.StringFixed(2), lineTotal.StringFixed(2)))
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<body style="margin: 0; padding: 16px; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif; background-color: #fafaf7;">
  <table width="100%%" cellpadding="0" cellspacing="0" border="0" style="max-width: 640px; margin: auto; background: #ffffff; padding: 24px;">
    <tr><td><h1 style="margin: 0; font-size: 28px; color: #262622;">INVOICE</h1></td></tr>
    <tr><td style="padding: 16px 0; font-size: 14px; color: #79776d;">
      Hi %s, thanks for your order <strong style="color: #262622;">%s</strong> placed %s.
      Payment status: %s. Your PDF invoice is attached.
    </td></tr>
    <tr><td>
      <table width="100%%" cellpadding="0" cellspacing="0" border="0">%s
      </table>
    </td></tr>
    <tr><td style="padding-top: 16px; text-align: right; font-size: 16px; font-weight: bold; color: #262622;">Total $%s</td></tr>
  </table>
</body>
</html>`,
		html.EscapeString(customer.Name),
		order.ID,
		order.PlacedAt.Format("Jan 02, 2006"),
		paymentStatusLabel(order.PaymentStatus),
		rows.String(),
		order.Total().StringFixed(2),
	)
}
