package mailer

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const sendgridHost = "https://api.sendgrid.com"

type SendGrid struct {
	apiKey   string
	host     string
	fromName string
	from     string
}

func NewSendGrid(apiKey, fromName, from string) *SendGrid {
	return &SendGrid{apiKey: apiKey, host: sendgridHost, fromName: fromName, from: from}
}

func (o *SendGrid) WithHost(host string) *SendGrid {
	o.host = host
	return o
}

func (o *SendGrid) Send(ctx context.Context, msg Message) error {
	m := mail.NewV3Mail()
	m.SetFrom(mail.NewEmail(o.fromName, o.from))
	m.AddContent(mail.NewContent("text/html", msg.HTML))

	personalization := mail.NewPersonalization()
	personalization.AddTos(mail.NewEmail(msg.ToName, msg.To))
	personalization.Subject = msg.Subject
	m.AddPersonalizations(personalization)

	request := sendgrid.GetRequest(o.apiKey, "/v3/mail/send", o.host)
	request.Method = http.MethodPost
	request.Body = mail.GetRequestBody(m)

	resp, err := sendgrid.MakeRequestWithContext(ctx, request)
	if err != nil {
		return err
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("sendgrid: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
