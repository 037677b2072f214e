package email

// Provider sends outbound mail. The SMTP implementation is the only
// one in production; tests plug in a fake.
type Provider interface {
	// Send delivers a prepared message.
	Send(email *Email) error

	// SendWithTemplate renders the named template into the HTML body
	// and delivers the message.
	SendWithTemplate(templateName string, data TemplateData, email *Email) error

	// Validate checks the provider configuration.
	Validate() error

	// Close releases provider resources.
	Close() error
}

// TemplateRenderer renders named templates to HTML.
type TemplateRenderer interface {
	Render(templateName string, data TemplateData) (string, error)
	AddTemplate(name string, template string) error
}
