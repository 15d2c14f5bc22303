// Package mailer is the outbound notification boundary. Handlers and
// services depend on the Mailer interface; the default implementation
// logs the message instead of delivering it, which keeps local
// development and tests free of SMTP credentials.
package mailer

import "log"

type Message struct {
	To      string
	Subject string
	Body    string
}

type Mailer interface {
	Send(m Message) error
}

// LogMailer writes each message to the process log. Swap in a real
// sender (SES, Brevo, SMTP) behind the same interface for production.
type LogMailer struct{}

func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

func (LogMailer) Send(m Message) error {
	log.Println("====================================================")
	log.Printf("--- OUTBOUND EMAIL ---")
	log.Printf("To: %s", m.To)
	log.Printf("Subject: %s", m.Subject)
	log.Println("--- Body ---")
	log.Println(m.Body)
	log.Println("====================================================")
	return nil
}
