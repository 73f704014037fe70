package email

import (
	"context"
	"errors"
)

// Sender define la interfaz para envio de correos de invitacion.
type Sender interface {
	SendInvitation(ctx context.Context, toEmail, inviterEmail string) error
}

type disabledSender struct {
	reason string
}

func NewDisabledSender(reason string) Sender {
	return &disabledSender{reason: reason}
}

func (s *disabledSender) SendInvitation(_ context.Context, _ string, _ string) error {
	if s.reason == "" {
		return errors.New("email sender disabled")
	}
	return errors.New(s.reason)
}
