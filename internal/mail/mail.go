// Package mail sends login-link emails. Delivery is fire-and-forget: a
// failed send is logged, never surfaced to the requesting user.
package mail

import (
	"fmt"
	"log/slog"
	"net/smtp"
)

// Mailer sends mail through a plain SMTP relay. With an empty Host the
// mailer logs the message instead of sending it, so development setups work
// without a mail server.
type Mailer struct {
	Host string
	Port int
	From string
}

// SendLoginLink emails a one-time login URL. It returns immediately; the
// actual delivery happens in the background.
func (m *Mailer) SendLoginLink(to, url string) {
	if m.Host == "" {
		slog.Info("smtp not configured, logging login link instead", "to", to, "url", url)
		return
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: Your skrinja login link\r\n\r\n"+
		"Follow this link to sign in. It can be used once and expires shortly:\r\n\r\n%s\r\n",
		m.From, to, url)

	go func() {
		addr := fmt.Sprintf("%s:%d", m.Host, m.Port)
		if err := smtp.SendMail(addr, nil, m.From, []string{to}, []byte(msg)); err != nil {
			slog.Error("sending login link failed", "to", to, "error", err)
			return
		}
		slog.Info("login link sent", "to", to)
	}()
}
