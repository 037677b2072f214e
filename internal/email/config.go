package email

import (
	"time"

	"github.com/Abdullah149081/career-connect-backend/internal/config"
)

// SMTPConfig holds the SMTP server settings.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	UseTLS    bool
	Timeout   time.Duration
}

func DefaultConfig() *SMTPConfig {
	return &SMTPConfig{
		Host:    "localhost",
		Port:    587,
		UseTLS:  true,
		Timeout: 30 * time.Second,
	}
}

// FromAppConfig maps the application config onto an SMTPConfig.
func FromAppConfig(cfg *config.Config) *SMTPConfig {
	smtpCfg := DefaultConfig()
	if cfg.Email.SMTPHost != "" {
		smtpCfg.Host = cfg.Email.SMTPHost
	}
	if cfg.Email.SMTPPort != 0 {
		smtpCfg.Port = cfg.Email.SMTPPort
	}
	smtpCfg.Username = cfg.Email.SMTPUsername
	smtpCfg.Password = cfg.Email.SMTPPassword
	smtpCfg.FromEmail = cfg.Email.FromEmail
	smtpCfg.FromName = cfg.Email.FromName
	smtpCfg.UseTLS = cfg.Email.UseTLS
	return smtpCfg
}
