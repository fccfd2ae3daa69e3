package email

// Email is an outbound message.
type Email struct {
	From    string
	To      []string
	Subject string
	Body    string
}

// Provider sends email. The contact-query flow is fire-and-forget: a
// failed send is logged, never surfaced to the submitter.
type Provider interface {
	Send(email *Email) error
}
