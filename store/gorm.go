package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/AldeNeto/baby/models"
)

// Gorm is the Postgres-backed implementation of the cart and order stores.
type Gorm struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

func (s *Gorm) FetchLines(ctx context.Context, userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := s.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("added_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Gorm) FetchLine(ctx context.Context, userID string, productID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Gorm) InsertLine(ctx context.Context, item *models.CartItem) error {
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Gorm) UpdateLineQuantity(ctx context.Context, userID string, productID uint, quantity int) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Update("quantity", quantity)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *Gorm) DeleteLine(ctx context.Context, userID string, productID uint) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.CartItem{}).Error
}

func (s *Gorm) DeleteLines(ctx context.Context, userID string) error {
	return s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.CartItem{}).Error
}

func (s *Gorm) InsertOrder(ctx context.Context, order *models.Order) error {
	return s.db.WithContext(ctx).Create(order).Error
}

func (s *Gorm) InsertOrderItems(ctx context.Context, items []models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Create(&items).Error
}

func (s *Gorm) DeleteOrder(ctx context.Context, orderID uint) error {
	// Items go with it via the FK cascade; delete them explicitly as well
	// in case the schema was migrated without the constraint.
	if err := s.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Delete(&models.OrderItem{}).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&models.Order{}, orderID).Error
}
