package mail_fx

import (
	"log"
	"os"
	"strconv"

	"go.uber.org/fx"

	"babylog/internal/services"
)

var Module = fx.Provide(provideMailService)

// provideMailService builds the SMTP mailer from the environment. When
// SMTP_HOST is unset the app runs with a logging no-op mailer so invites
// and password resets degrade gracefully in development.
func provideMailService() services.IMailService {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		log.Println("SMTP_HOST not set, outgoing mail is disabled")
		return services.NewNoopMailService()
	}

	port := 587
	if raw := os.Getenv("SMTP_PORT"); raw != "" {
		if p, err := strconv.Atoi(raw); err == nil {
			port = p
		}
	}

	cfg := services.SMTPConfig{
		Host:       host,
		Port:       port,
		Username:   os.Getenv("SMTP_USERNAME"),
		Password:   os.Getenv("SMTP_PASSWORD"),
		From:       os.Getenv("SMTP_FROM"),
		FromName:   "Babylog",
		UseSSL:     port == 465,
		RequireTLS: port != 465,

		AppName:    "Babylog",
		AppBaseURL: os.Getenv("APP_BASE_URL"),
	}
	if cfg.From == "" {
		cfg.From = cfg.Username
	}

	mailService, err := services.NewSMTPMailService(cfg)
	if err != nil {
		log.Printf("Failed to initialize SMTP mail service: %v", err)
		return services.NewNoopMailService()
	}

	return mailService
}
