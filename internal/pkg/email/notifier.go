package email

import "github.com/rs/zerolog"

// Notifier accepts one-way notification messages. Implementations must
// never block the caller on delivery.
type Notifier interface {
	Dispatch(toEmail, subject, body string)
}

// AsyncNotifier hands each message to a goroutine for best-effort
// delivery. Failures are logged and never propagated; there is no
// retry.
type AsyncNotifier struct {
	sender Sender
	logger zerolog.Logger
}

// NewAsyncNotifier creates an AsyncNotifier around a Sender
func NewAsyncNotifier(sender Sender, logger zerolog.Logger) *AsyncNotifier {
	return &AsyncNotifier{
		sender: sender,
		logger: logger,
	}
}

// Dispatch queues a message for delivery and returns immediately.
func (n *AsyncNotifier) Dispatch(toEmail, subject, body string) {
	go func() {
		if err := n.sender.Send(toEmail, subject, body); err != nil {
			n.logger.Error().Err(err).Str("toEmail", toEmail).Str("subject", subject).Msg("Notification delivery failed")
			return
		}
		n.logger.Info().Str("toEmail", toEmail).Str("subject", subject).Msg("Notification sent")
	}()
}
