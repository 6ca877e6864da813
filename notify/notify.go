// Package notify delivers outbound customer email. Delivery is pluggable;
// the default implementation only logs the message, matching the current
// production behavior where no mail provider is wired up yet.
package notify

import "log"

type Notifier interface {
	Send(to, subject, htmlBody string) error
}

type LogNotifier struct{}

func NewLogNotifier() *LogNotifier { return &LogNotifier{} }

func (n *LogNotifier) Send(to, subject, htmlBody string) error {
	log.Printf("📧 outbound email\nTo: %s\nSubject: %s\nBody (%d bytes)", to, subject, len(htmlBody))
	return nil
}
