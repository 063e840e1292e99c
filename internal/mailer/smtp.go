package mailer

import (
	"context"
	"crypto/tls"
	"strings"
	"time"

	mail "github.com/xhit/go-simple-mail/v2"
)

type SMTPConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	Auth       string
	Encryption string
	NoTLSCheck bool
	FromName   string
	From       string
}

type SMTP struct {
	cfg        SMTPConfig
	authType   mail.AuthType
	encryption mail.Encryption
}

func authType(authType string) mail.AuthType {
	switch strings.ToUpper(authType) {
	case "NONE":
		return mail.AuthNone
	case "LOGIN":
		return mail.AuthLogin
	default:
		return mail.AuthPlain
	}
}

func encryptionType(encryptionType string) mail.Encryption {
	switch strings.ToUpper(encryptionType) {
	case "NONE":
		return mail.EncryptionNone
	case "SSL":
		return mail.EncryptionSSL
	case "SSLTLS":
		return mail.EncryptionSSLTLS
	case "TLS":
		return mail.EncryptionTLS
	default:
		return mail.EncryptionSTARTTLS
	}
}

func NewSMTP(cfg SMTPConfig) *SMTP {
	return &SMTP{
		cfg:        cfg,
		authType:   authType(cfg.Auth),
		encryption: encryptionType(cfg.Encryption),
	}
}

func (o *SMTP) server() *mail.SMTPServer {
	server := mail.NewSMTPClient()
	server.Host = o.cfg.Host
	server.Port = o.cfg.Port
	server.Authentication = o.authType
	server.Username = o.cfg.Username
	server.Password = o.cfg.Password
	server.Encryption = o.encryption
	server.KeepAlive = false
	server.ConnectTimeout = 10 * time.Second
	server.SendTimeout = 10 * time.Second

	if o.cfg.NoTLSCheck {
		server.TLSConfig = &tls.Config{InsecureSkipVerify: true}
	}
	return server
}

func (o *SMTP) message(msg Message) *mail.Email {
	email := mail.NewMSG()
	email.SetFrom(addressField(o.cfg.From, o.cfg.FromName)).
		AddTo(addressField(msg.To, msg.ToName)).
		SetSubject(msg.Subject).
		SetBody(mail.TextHTML, msg.HTML)
	return email
}

func (o *SMTP) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	email := o.message(msg)
	if email.Error != nil {
		return email.Error
	}

	smtpClient, err := o.server().Connect()
	if err != nil {
		return err
	}
	defer smtpClient.Close()

	return email.Send(smtpClient)
}
