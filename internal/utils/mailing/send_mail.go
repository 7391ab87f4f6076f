package mailing

import (
	"strconv"

	"gopkg.in/gomail.v2"

	"github.com/saulluiz/api-recipe-generator/internal/utils"
)

type (
	// Mailer is injected into services so mail delivery can be faked in tests.
	Mailer interface {
		Send(toEmail string, subject string, body string) error
	}

	smtpMailer struct{}
)

func NewMailer() Mailer {
	return &smtpMailer{}
}

func (m *smtpMailer) Send(toEmail string, subject string, body string) error {
	mailer := gomail.NewMessage()
	mailer.SetHeader("From", utils.GetConfig("SMTP_AUTH_EMAIL"))
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)

	port, err := strconv.Atoi(utils.GetConfig("SMTP_PORT"))
	if err != nil {
		return err
	}

	dialer := gomail.NewDialer(
		utils.GetConfig("SMTP_HOST"),
		port,
		utils.GetConfig("SMTP_AUTH_EMAIL"),
		utils.GetConfig("SMTP_AUTH_PASSWORD"),
	)

	return dialer.DialAndSend(mailer)
}
