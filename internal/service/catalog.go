package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/castleclothing/storefront/internal/events"
	"github.com/castleclothing/storefront/internal/imagehost"
	"github.com/castleclothing/storefront/internal/models"
	"github.com/castleclothing/storefront/internal/repo"
	"github.com/castleclothing/storefront/internal/transport"
	"github.com/castleclothing/storefront/pkg/logging"
)

type Image struct {
	Filename string
	Body     io.Reader
}

type CatalogService struct {
	Repo   *repo.GormRepo
	Images imagehost.Uploader
	Events events.Publisher
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.Repo.ListProducts(ctx)
}

func parsePrice(raw string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, fmt.Errorf("%w: precio %q is not a number", ErrValidation, raw)
	}
	return price, nil
}

// CreateProduct uploads the image first and then inserts the row. If the
// insert fails the uploaded image stays on the host.
func (s *CatalogService) CreateProduct(ctx context.Context, req transport.ProductForm, img *Image) (*models.Product, error) {
	if img == nil {
		return nil, ErrMissingImage
	}
	price, err := parsePrice(req.Price)
	if err != nil {
		return nil, err
	}

	url, err := s.Images.Upload(ctx, img.Filename, img.Body)
	if err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}

	prod := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		ImageURL:    url,
	}
	if err := s.Repo.CreateProduct(ctx, prod); err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}

	s.publish(ctx, events.ProductEvent{Type: events.ProductCreated, ProductID: prod.ID, Name: prod.Name, ImageURL: prod.ImageURL})
	return prod, nil
}

// UpdateProduct rewrites every column with the supplied values. Without a new
// image the stored URL is kept.
func (s *CatalogService) UpdateProduct(ctx context.Context, id uint, req transport.ProductForm, img *Image) (*models.Product, error) {
	current, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("get product: %w", err)
	}

	price, err := parsePrice(req.Price)
	if err != nil {
		return nil, err
	}

	url := current.ImageURL
	if img != nil {
		url, err = s.Images.Upload(ctx, img.Filename, img.Body)
		if err != nil {
			return nil, fmt.Errorf("upload image: %w", err)
		}
	}

	prod := &models.Product{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		ImageURL:    url,
	}
	if err := s.Repo.UpdateProduct(ctx, prod); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("update product: %w", err)
	}

	s.publish(ctx, events.ProductEvent{Type: events.ProductUpdated, ProductID: prod.ID, Name: prod.Name, ImageURL: prod.ImageURL})
	return prod, nil
}

// DeleteProduct removes the row only; the hosted image is left in place.
func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: product %d", ErrNotFound, id)
		}
		return fmt.Errorf("delete product: %w", err)
	}

	s.publish(ctx, events.ProductEvent{Type: events.ProductDeleted, ProductID: id})
	return nil
}

func (s *CatalogService) publish(ctx context.Context, ev events.ProductEvent) {
	if s.Events == nil {
		return
	}
	if err := s.Events.Publish(ctx, ev.Key(), ev); err != nil {
		logging.FromContext(ctx).Warn("publish_event_failed", "type", ev.Type, "product_id", ev.ProductID, "error", err)
	}
}
