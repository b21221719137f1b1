package signup

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPNotifier delivers activation emails over an SMTP transport.
type SMTPNotifier struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPNotifier(cfg SMTPConfig) *SMTPNotifier {
	return &SMTPNotifier{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (n *SMTPNotifier) SendActivationEmail(email, token string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Account activation")
	m.SetBody("text/html", fmt.Sprintf("token is %s", token))

	return n.dialer.DialAndSend(m)
}
