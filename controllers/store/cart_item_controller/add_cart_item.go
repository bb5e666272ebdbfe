package cart_item_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Modeva-Ecommerce/storefront-api/config"
	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/Modeva-Ecommerce/storefront-api/services"
	"github.com/Modeva-Ecommerce/storefront-api/utils"
	"github.com/gin-gonic/gin"
)

// AddCartItem godoc
// @Summary Add a product to a cart
// @Description Adding a product already in the cart increases its quantity
// @Tags Store - Cart Items
// @Accept json
// @Produce json
// @Param id path string true "Cart ID"
// @Param item body models.AddCartItemRequest true "Product and quantity"
// @Success 201 {object} models.ApiResponse{data=models.AddCartItemResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/store/carts/{id}/items [post]
func AddCartItem(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 1: Resolve cart from the path
	cartID, ok := resolveCart(ctx, c)
	if !ok {
		return
	}

	// Step 2: Parse JSON request
	var req models.AddCartItemRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	// Step 3: Add or increment
	item, err := services.AddCartItem(ctx, cartID, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, map[string]string{
				"product_id": "No product with the given ID was found.",
			}))
		case errors.Is(err, services.ErrCartNotFound):
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Cart not found"))
		default:
			log.Printf("[cart-item.add] failed for cart %s: %v", cartID, err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to add item to cart"))
		}
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Item added to cart", models.AddCartItemResponse{
		ID:        item.ID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
	}))
}
