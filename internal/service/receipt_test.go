package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castleclothing/storefront/internal/mailer"
	"github.com/castleclothing/storefront/internal/transport"
)

func receiptRequest() transport.ReceiptRequest {
	return transport.ReceiptRequest{
		Email:    "ana@example.com",
		Product:  transport.ReceiptProduct{Name: "Tee", Description: "Basic", Price: 19.99},
		Quantity: 2,
		Alias:    "castle.mp",
		Address:  "Calle 1",
		Phone:    "555-1234",
		Name:     "Ana",
	}
}

func TestBuildReceipt_Total(t *testing.T) {
	r := BuildReceipt(receiptRequest())
	assert.Equal(t, "39.98", r.Total)
	assert.Equal(t, "19.99", r.ProductPrice)
	assert.Equal(t, "2", r.Quantity)
	assert.Equal(t, "Ana", r.CustomerName)
}

func TestReceiptService_Send(t *testing.T) {
	m := &fakeMailer{}
	svc := &ReceiptService{Mailer: m}

	require.NoError(t, svc.Send(context.Background(), receiptRequest()))
	require.Len(t, m.sent, 1)

	msg := m.sent[0]
	assert.Equal(t, "ana@example.com", msg.To)
	assert.Equal(t, "Ana", msg.ToName)
	assert.Equal(t, mailer.ReceiptSubject, msg.Subject)
	assert.Contains(t, msg.HTML, "<strong>39.98</strong>")
	assert.Contains(t, msg.HTML, "castle.mp")
}

func TestReceiptService_Send_MailError(t *testing.T) {
	svc := &ReceiptService{Mailer: &fakeMailer{err: errRelayDown}}

	err := svc.Send(context.Background(), receiptRequest())
	assert.ErrorIs(t, err, ErrMail)
	assert.Contains(t, err.Error(), "relay down")
}

func TestReceiptService_Send_MissingEmail(t *testing.T) {
	m := &fakeMailer{}
	svc := &ReceiptService{Mailer: m}

	req := receiptRequest()
	req.Email = ""
	assert.ErrorIs(t, svc.Send(context.Background(), req), ErrMail)
	assert.Empty(t, m.sent)
}

func TestReceiptService_Send_NoMailer(t *testing.T) {
	svc := &ReceiptService{}

	var err error
	require.NotPanics(t, func() { err = svc.Send(context.Background(), receiptRequest()) })
	assert.ErrorIs(t, err, ErrMail)
}
