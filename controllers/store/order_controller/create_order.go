package order_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Modeva-Ecommerce/storefront-api/config"
	"github.com/Modeva-Ecommerce/storefront-api/middleware"
	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/Modeva-Ecommerce/storefront-api/services"
	"github.com/Modeva-Ecommerce/storefront-api/utils"
	"github.com/gin-gonic/gin"
)

// CreateOrder godoc
// @Summary Check out a cart
// @Description Turns the cart into an order for the caller and deletes the cart
// @Tags Store - Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param order body models.CreateOrderRequest true "Cart to check out"
// @Success 201 {object} models.ApiResponse{data=models.OrderResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Router /api/v1/store/orders [post]
func CreateOrder(c *gin.Context) {
	// Step 1: Parse JSON request
	var req models.CreateOrderRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 2: Checkout in one transaction
	order, err := services.CreateOrderFromCart(ctx, userID, req.CartID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCartNotFound):
			c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, map[string]string{
				"cart_id": "No cart with the given ID was found.",
			}))
		case errors.Is(err, services.ErrCartEmpty):
			c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, map[string]string{
				"cart_id": "The cart is empty.",
			}))
		default:
			log.Printf("[order.create] checkout failed for cart %s: %v", req.CartID, err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create order"))
		}
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Order created successfully", order.ToResponse()))
}
