package mailer

import (
	"context"
	"fmt"
)

type Message struct {
	ToName  string
	To      string
	Subject string
	HTML    string
}

// Mailer hands a message to the mail relay and returns once the relay has
// accepted or rejected it.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

func addressField(address string, name string) string {
	if name == "" {
		return address
	}
	return fmt.Sprintf("%s <%s>", name, address)
}
