package order_controller

import (
	"fmt"
	"log"
	"net/http"

	"github.com/Modeva-Ecommerce/storefront-api/config"
	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/Modeva-Ecommerce/storefront-api/services"
	"github.com/gin-gonic/gin"
)

// DownloadOrderInvoice godoc
// @Summary Download order invoice PDF
// @Description Generate and download an invoice PDF for the order
// @Tags Store - Orders
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 "PDF file"
// @Failure 400 {object} models.ApiResponse "Invalid order ID"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /api/v1/store/orders/{id}/invoice [get]
func DownloadOrderInvoice(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 1: Order within the caller's scope
	order, ok := loadVisibleOrder(ctx, c)
	if !ok {
		return
	}

	// Step 2: Billing details
	billTo, ok := loadBillTo(ctx, c, order)
	if !ok {
		return
	}

	// Step 3: Render
	pdfBuffer, err := services.GenerateOrderInvoicePDF(order, billTo)
	if err != nil {
		log.Printf("[order.invoice] failed to generate PDF for order %s: %v", order.ID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	filename := fmt.Sprintf("invoice-%s.pdf", order.ID)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())

	log.Printf("[order.invoice] invoice PDF downloaded for order %s", order.ID)
}
