// Package notify implements the Anti-Corruption Layer translators for the
// notification service's email resource.
package notify

import "github.com/jsamuelsen11/boxoffice-orchestrator/internal/ports"

// EmailRequestDTO matches the notification service SendEmail schema.
type EmailRequestDTO struct {
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

// EmailResponseDTO matches the notification service Accepted schema.
type EmailResponseDTO struct {
	MessageID string `json:"messageId"`
}

// ToEmailRequest converts a domain email to the service schema.
func ToEmailRequest(msg ports.EmailMessage) EmailRequestDTO {
	return EmailRequestDTO{To: []string{msg.To}, Subject: msg.Subject, Text: msg.Body}
}
