package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Modeva-Ecommerce/storefront-api/config"
	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCartNotFound     = errors.New("no cart with the given ID was found")
	ErrCartEmpty        = errors.New("the cart is empty")
	ErrProductNotFound  = errors.New("no product with the given ID was found")
	ErrCartItemNotFound = errors.New("cart item not found")
)

// AddCartItem puts a product in the cart. If the cart already holds the
// product its quantity is increased instead of creating a second line.
func AddCartItem(ctx context.Context, cartID uuid.UUID, req models.AddCartItemRequest) (*models.CartItem, error) {
	var item models.CartItem

	err := config.StoreGorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Select("id").First(&cart, "id = ?", cartID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCartNotFound
			}
			return err
		}

		var product models.Product
		if err := tx.Select("id").First(&product, "id = ?", req.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		err := tx.Where("cart_id = ? AND product_id = ?", cartID, req.ProductID).First(&item).Error
		switch {
		case err == nil:
			item.Quantity += req.Quantity
			return tx.Model(&item).Update("quantity", item.Quantity).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			item = models.CartItem{
				CartID:    cartID,
				ProductID: req.ProductID,
				Quantity:  req.Quantity,
			}
			return tx.Create(&item).Error
		default:
			return err
		}
	})
	if err != nil {
		return nil, fmt.Errorf("add cart item: %w", err)
	}

	return &item, nil
}

// DeleteCart removes the cart together with its items.
func DeleteCart(ctx context.Context, cartID uuid.UUID) error {
	return config.StoreGorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error; err != nil {
			return fmt.Errorf("delete cart items: %w", err)
		}
		result := tx.Where("id = ?", cartID).Delete(&models.Cart{})
		if result.Error != nil {
			return fmt.Errorf("delete cart: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrCartNotFound
		}
		return nil
	})
}
