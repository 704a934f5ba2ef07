// file: internals/mailer/mailer.go
package mailer

import "log"

// Mailer is the out-of-band dispatch side channel. Delivery is best-effort:
// callers log failures but never fail the request over them.
type Mailer interface {
	SendWelcome(email string) error
	SendPasswordReset(email, token string) error
}

// LogMailer stands in for a real delivery provider; it records what would
// have been sent. Swap in an SMTP/API implementation at wiring time.
type LogMailer struct{}

func (LogMailer) SendWelcome(email string) error {
	log.Printf("[MAIL] welcome -> %s", email)
	return nil
}

func (LogMailer) SendPasswordReset(email, token string) error {
	log.Printf("[MAIL] password reset -> %s", email)
	return nil
}
