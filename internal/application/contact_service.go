package application

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Sender is the narrow mail-transport capability the contact form needs.
type Sender interface {
	Send(ctx context.Context, to, subject, text string) (string, error)
}

// DispatchResult keeps the transport outcome distinguishable even
// though the HTTP boundary collapses it to success/fail.
type DispatchResult struct {
	OK        bool
	MessageID string
	Reason    string
}

const contactSubject = "New Message from Contact Form"

// ContactService composes contact-form submissions into a plain-text
// mail to a fixed recipient and dispatches synchronously.
type ContactService struct {
	Mail      Sender
	Recipient string
	Enabled   bool
	Logger    *logrus.Logger
}

func NewContactService(mail Sender, recipient string, enabled bool, logger *logrus.Logger) *ContactService {
	return &ContactService{Mail: mail, Recipient: recipient, Enabled: enabled, Logger: logger}
}

func (s *ContactService) Dispatch(ctx context.Context, name, email, message string) DispatchResult {
	if !s.Enabled {
		if s.Logger != nil {
			s.Logger.WithField("from", email).Info("mail sending disabled, contact message dropped")
		}
		return DispatchResult{OK: true, Reason: "sending disabled"}
	}
	content := fmt.Sprintf("name: %s \n email: %s \n message: %s", name, email, message)
	id, err := s.Mail.Send(ctx, s.Recipient, contactSubject, content)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Warn("contact mail dispatch failed")
		}
		return DispatchResult{OK: false, Reason: err.Error()}
	}
	return DispatchResult{OK: true, MessageID: id}
}
