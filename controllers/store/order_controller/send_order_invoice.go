package order_controller

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/Modeva-Ecommerce/storefront-api/config"
	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/Modeva-Ecommerce/storefront-api/services"
	"github.com/gin-gonic/gin"
)

// SendOrderInvoice godoc
// @Summary Email order invoice to the customer
// @Description Renders the invoice PDF and sends it to the customer's account email via Resend
// @Tags Store - Orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid order ID"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Failure 502 {object} models.ApiResponse "Email provider error"
// @Failure 503 {object} models.ApiResponse "Email not configured"
// @Router /api/v1/store/orders/{id}/invoice/send [post]
func SendOrderInvoice(c *gin.Context) {
	ctx, cancel := config.WithCustomTimeout(45 * time.Second)
	defer cancel()

	// Step 1: Mailer must be configured
	mailer, err := services.NewResendClient()
	if err != nil {
		if errors.Is(err, services.ErrMailerNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Email delivery is not configured"))
			return
		}
		log.Printf("[order.send-invoice] mailer setup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	// Step 2: Order and billing details
	order, ok := loadVisibleOrder(ctx, c)
	if !ok {
		return
	}
	billTo, ok := loadBillTo(ctx, c, order)
	if !ok {
		return
	}
	if billTo.Email == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Customer has no email address"))
		return
	}

	// Step 3: Render and send
	pdfBuffer, err := services.GenerateOrderInvoicePDF(order, billTo)
	if err != nil {
		log.Printf("[order.send-invoice] failed to generate PDF for order %s: %v", order.ID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	if err := mailer.SendOrderInvoiceEmail(order, billTo, pdfBuffer.Bytes()); err != nil {
		log.Printf("[order.send-invoice] failed to send invoice for order %s: %v", order.ID, err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to send invoice email"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Invoice sent successfully", gin.H{
		"order_id": order.ID,
		"sent_to":  billTo.Email,
	}))
}
