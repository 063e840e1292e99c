package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/castleclothing/storefront/internal/models"
)

func (r *GormRepo) ListProducts(ctx context.Context) ([]models.Product, error) {
	items := make([]models.Product, 0)
	if err := r.DB.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormRepo) CreateProduct(ctx context.Context, prod *models.Product) error {
	return r.DB.WithContext(ctx).Create(prod).Error
}

// UpdateProduct rewrites every mutable column of the row, zero values included.
func (r *GormRepo) UpdateProduct(ctx context.Context, prod *models.Product) error {
	res := r.DB.WithContext(ctx).Model(&models.Product{}).
		Where("id = ?", prod.ID).
		Updates(map[string]any{
			"nombre":      prod.Name,
			"descripcion": prod.Description,
			"precio":      prod.Price,
			"imagen_url":  prod.ImageURL,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) DeleteProduct(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
