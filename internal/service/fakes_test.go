package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/castleclothing/storefront/internal/mailer"
)

type fakeUploader struct {
	mu    sync.Mutex
	calls []string
	err   error
}

func (f *fakeUploader) Upload(_ context.Context, filename string, r io.Reader) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	if _, err := io.ReadAll(r); err != nil {
		return "", err
	}
	f.calls = append(f.calls, filename)
	return fmt.Sprintf("https://res.cloudinary.test/%d/%s", len(f.calls), filename), nil
}

type fakeMailer struct {
	sent []mailer.Message
	err  error
}

func (f *fakeMailer) Send(_ context.Context, msg mailer.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

type published struct {
	key   string
	event any
}

type fakePublisher struct {
	events []published
	err    error
}

func (f *fakePublisher) Publish(_ context.Context, key string, event any) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, published{key: key, event: event})
	return nil
}

func (f *fakePublisher) Close() error { return nil }

var errRelayDown = errors.New("relay down")
