package utils

import "gopkg.in/gomail.v2"

type Mailer struct {
	Host     string
	Port     int
	From     string
	Username string
	Password string
}

func (m *Mailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	d := gomail.NewDialer(m.Host, m.Port, m.Username, m.Password)

	return d.DialAndSend(msg)
}
