package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Modeva-Ecommerce/storefront-api/config"
	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrOrderNotFound = errors.New("order not found")

// GetOrCreateCustomer returns the customer profile for userID, creating a
// bronze profile when the user has none.
func GetOrCreateCustomer(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	if err := tx.WithContext(ctx).
		Where(models.Customer{UserID: userID}).
		FirstOrCreate(&customer).Error; err != nil {
		return nil, fmt.Errorf("get or create customer: %w", err)
	}
	return &customer, nil
}

// CreateOrderFromCart converts a cart into an order in a single transaction.
// Each order line freezes the product's current unit price; the cart is
// removed once the order is written.
func CreateOrderFromCart(ctx context.Context, userID, cartID uuid.UUID) (*models.Order, error) {
	var order models.Order

	err := config.StoreGorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Preload("Items.Product").First(&cart, "id = ?", cartID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCartNotFound
			}
			return err
		}
		if len(cart.Items) == 0 {
			return ErrCartEmpty
		}

		customer, err := GetOrCreateCustomer(ctx, tx, userID)
		if err != nil {
			return err
		}

		order = models.Order{
			CustomerID:    customer.ID,
			PaymentStatus: models.PaymentStatusPending,
		}
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		items := make([]models.OrderItem, 0, len(cart.Items))
		for _, cartItem := range cart.Items {
			if cartItem.Product == nil {
				return ErrProductNotFound
			}
			items = append(items, models.OrderItem{
				OrderID:   order.ID,
				ProductID: cartItem.ProductID,
				Quantity:  cartItem.Quantity,
				UnitPrice: cartItem.Product.UnitPrice,
			})
		}
		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("create order items: %w", err)
		}

		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return fmt.Errorf("delete cart items: %w", err)
		}
		if err := tx.Delete(&cart).Error; err != nil {
			return fmt.Errorf("delete cart: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create order from cart: %w", err)
	}

	if err := config.StoreGorm.WithContext(ctx).
		Preload("Items.Product").
		First(&order, "id = ?", order.ID).Error; err != nil {
		return nil, fmt.Errorf("reload order: %w", err)
	}

	log.Printf("[order.create] order %s placed from cart %s (%d items)", order.ID, cartID, len(order.Items))
	return &order, nil
}

// DeleteOrder removes an order and its lines.
func DeleteOrder(ctx context.Context, orderID uuid.UUID) error {
	return config.StoreGorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
			return fmt.Errorf("delete order items: %w", err)
		}
		result := tx.Where("id = ?", orderID).Delete(&models.Order{})
		if result.Error != nil {
			return fmt.Errorf("delete order: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrOrderNotFound
		}
		return nil
	})
}
