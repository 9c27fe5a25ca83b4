// Package service contains supporting services that don't belong to
// the request path directly
package service

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
	"gopkg.in/gomail.v2"
)

var ErrMailNotConfigured = errors.New("mail transport not configured")

// Mailer delivers templated account mail over SMTP. Callers treat
// every send as best effort: a failed delivery is logged and the
// triggering operation carries on.
type Mailer struct {
	host     string
	port     int
	from     string
	password string
}

func NewMailer() *Mailer {
	return &Mailer{
		host:     viper.GetString("mail.host"),
		port:     viper.GetInt("mail.port"),
		from:     viper.GetString("mail.sender"),
		password: viper.GetString("mail.password"),
	}
}

func (m *Mailer) SendVerificationMail(to, firstName, link string) error {
	body := fmt.Sprintf(`<h2>Verify Your Email</h2>
<p>Hello %s,</p>
<p>Please click the link below to verify your email address:</p>
<p><a href="%s">Verify Email</a></p>
<p>If you didn't create an account, you can safely ignore this email.</p>`, firstName, link)

	return m.send(to, "Verify your email to start practicing", body)
}

func (m *Mailer) SendResetMail(to, firstName, link string) error {
	body := fmt.Sprintf(`<h2>Reset Your Password</h2>
<p>Hello %s,</p>
<p>Please click the link below to reset your password:</p>
<p><a href="%s">Reset Password</a></p>
<p>This link expires in 1 hour. If you didn't request this, you can safely ignore this email.</p>`, firstName, link)

	return m.send(to, "Reset your password", body)
}

func (m *Mailer) send(to, subject, body string) error {
	if m.host == "" || m.from == "" {
		return ErrMailNotConfigured
	}

	if to == m.from {
		return errors.New("invalid recipient address")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	d := gomail.NewDialer(m.host, m.port, m.from, m.password)

	return d.DialAndSend(msg)
}
