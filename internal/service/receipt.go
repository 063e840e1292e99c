package service

import (
	"context"
	"fmt"

	"github.com/castleclothing/storefront/internal/mailer"
	"github.com/castleclothing/storefront/internal/transport"
)

type ReceiptService struct {
	Mailer mailer.Mailer
}

func BuildReceipt(req transport.ReceiptRequest) mailer.Receipt {
	total := float64(req.Quantity) * float64(req.Product.Price)
	return mailer.Receipt{
		CustomerName:       req.Name,
		ProductName:        req.Product.Name,
		ProductDescription: req.Product.Description,
		ProductPrice:       req.Product.Price.String(),
		Quantity:           req.Quantity.String(),
		Address:            req.Address,
		Phone:              req.Phone,
		Alias:              req.Alias,
		Total:              transport.Money(total),
	}
}

// Send e-mails the purchase details to the buyer. The message is the only
// record of the order. Whether the address is deliverable is for the relay
// to decide.
func (s *ReceiptService) Send(ctx context.Context, req transport.ReceiptRequest) error {
	if s.Mailer == nil {
		return fmt.Errorf("%w: no mail relay configured", ErrMail)
	}
	if req.Email == "" {
		return fmt.Errorf("%w: no recipient", ErrMail)
	}

	html, err := mailer.RenderReceipt(BuildReceipt(req))
	if err != nil {
		return fmt.Errorf("render receipt: %w", err)
	}

	err = s.Mailer.Send(ctx, mailer.Message{
		ToName:  req.Name,
		To:      req.Email,
		Subject: mailer.ReceiptSubject,
		HTML:    html,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMail, err)
	}
	return nil
}
