package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

// Template names used by the services.
const (
	TemplateVerification         = "verification"
	TemplateApplicationConfirmed = "application_confirmed"
	TemplateApplicationReceived  = "application_received"
)

// TemplateManager keeps parsed html templates keyed by name.
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

// NewTemplateManager returns a manager preloaded with the built-in
// transactional templates.
func NewTemplateManager() *TemplateManager {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}
	for name, body := range builtinTemplates {
		// Built-ins are compile-time constants, a parse failure is a
		// programming error.
		if err := tm.AddTemplate(name, body); err != nil {
			panic(fmt.Sprintf("invalid builtin email template %s: %v", name, err))
		}
	}
	return tm
}

func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", templateName, err)
	}
	return buf.String(), nil
}

func (tm *TemplateManager) AddTemplate(name string, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()
	return nil
}

var builtinTemplates = map[string]string{
	TemplateVerification: `<html>
<body>
<h2>Welcome to CareerConnect, {{.FirstName}}!</h2>
<p>Please confirm your email address to activate your account:</p>
<p><a href="{{.VerificationLink}}">Verify my email</a></p>
<p>If you did not create this account, you can ignore this message.</p>
</body>
</html>`,

	TemplateApplicationConfirmed: `<html>
<body>
<h2>Application received</h2>
<p>Hi {{.FirstName}},</p>
<p>Your application for <strong>{{.JobTitle}}</strong> at {{.CompanyName}} has been submitted.</p>
<p>The employer will review it and you will see any status change in your dashboard.</p>
</body>
</html>`,

	TemplateApplicationReceived: `<html>
<body>
<h2>New application for {{.JobTitle}}</h2>
<p>Hi {{.FirstName}},</p>
<p><strong>{{.ApplicantName}}</strong> has applied for your listing <strong>{{.JobTitle}}</strong>.</p>
<p>Open your dashboard to review the application.</p>
</body>
</html>`,
}
