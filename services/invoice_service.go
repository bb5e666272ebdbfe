package services

import (
	"bytes"
	"fmt"

	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
	"github.com/shopspring/decimal"
)

var (
	invoiceDark  = color.Color{Red: 38, Green: 38, Blue: 34}
	invoiceMuted = color.Color{Red: 121, Green: 119, Blue: 109}
)

// InvoiceCustomer is the billing block printed on an invoice
type InvoiceCustomer struct {
	Name  string
	Email string
	Phone string
}

// GenerateOrderInvoicePDF renders an order as an A4 invoice.
// The order must have Items.Product preloaded.
func GenerateOrderInvoicePDF(order *models.Order, customer InvoiceCustomer) (*bytes.Buffer, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("INVOICE", props.Text{Size: 24, Style: consts.Bold, Color: invoiceDark})
		})
	})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text("BILL TO", props.Text{Size: 8, Style: consts.Bold, Color: invoiceDark})
		})
		m.Col(6, func() {
			m.Text("INVOICE DETAILS", props.Text{Size: 8, Style: consts.Bold, Color: invoiceDark, Align: consts.Right})
		})
	})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(customer.Name, props.Text{Size: 10, Style: consts.Bold, Color: invoiceDark})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Order %s", order.ID), props.Text{Size: 9, Color: invoiceDark, Align: consts.Right})
		})
	})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(customer.Email, props.Text{Size: 9, Color: invoiceMuted})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Placed: %s", order.PlacedAt.Format("Jan 02, 2006")), props.Text{Size: 9, Color: invoiceMuted, Align: consts.Right})
		})
	})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(customer.Phone, props.Text{Size: 9, Color: invoiceMuted})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Payment: %s", paymentStatusLabel(order.PaymentStatus)), props.Text{Size: 9, Color: invoiceMuted, Align: consts.Right})
		})
	})

	m.Row(8, func() {})

	header := props.Text{Size: 8, Style: consts.Bold, Color: invoiceDark, Align: consts.Right}
	m.Row(6, func() {
		m.Col(6, func() {
			m.Text("Product", props.Text{Size: 8, Style: consts.Bold, Color: invoiceDark})
		})
		m.Col(2, func() { m.Text("Qty", header) })
		m.Col(2, func() { m.Text("Unit price", header) })
		m.Col(2, func() { m.Text("Total", header) })
	})

	cell := props.Text{Size: 9, Color: invoiceDark, Align: consts.Right}
	for _, item := range order.Items {
		title := item.ProductID.String()
		if item.Product != nil {
			title = item.Product.Title
		}
		lineTotal := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))

		m.Row(6, func() {
			m.Col(6, func() {
				m.Text(title, props.Text{Size: 9, Color: invoiceDark})
			})
			m.Col(2, func() { m.Text(fmt.Sprintf("%d", item.Quantity), cell) })
			m.Col(2, func() { m.Text("$"+item.UnitPrice.StringFixed(2), cell) })
			m.Col(2, func() { m.Text("$"+lineTotal.StringFixed(2), cell) })
		})
	}

	m.Row(8, func() {})

	m.Row(8, func() {
		m.Col(8, func() {})
		m.Col(2, func() {
			m.Text("Total", props.Text{Size: 12, Style: consts.Bold, Color: invoiceDark, Align: consts.Right})
		})
		m.Col(2, func() {
			m.Text("$"+order.Total().StringFixed(2), props.Text{Size: 12, Style: consts.Bold, Color: invoiceDark, Align: consts.Right})
		})
	})

	m.Row(12, func() {})

	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("Thank you for your business!", props.Text{Size: 8, Style: consts.Bold, Color: invoiceDark})
		})
	})

	buf, err := m.Output()
	if err != nil {
		return nil, fmt.Errorf("render invoice: %w", err)
	}
	return &buf, nil
}

func paymentStatusLabel(status string) string {
	switch status {
	case models.PaymentStatusComplete:
		return "Complete"
	case models.PaymentStatusFailed:
		return "Failed"
	default:
		return "Pending"
	}
}
