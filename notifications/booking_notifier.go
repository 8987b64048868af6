package notifications

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"home-maintenance-server/metrics"
	"home-maintenance-server/models"
)

// TextSender delivers a plain text message to a phone number
type TextSender interface {
	SendText(ctx context.Context, to, body string) (string, error)
}

// BookingNotifier tells customers their booking was received
type BookingNotifier struct {
	sender TextSender
}

// NewBookingNotifier returns a notifier. A nil sender turns notifications
// into log lines, which is what happens when WhatsApp is not configured.
func NewBookingNotifier(sender TextSender) *BookingNotifier {
	return &BookingNotifier{sender: sender}
}

// BookingConfirmation renders the confirmation text for a request
func BookingConfirmation(req *models.ServiceRequest) string {
	return fmt.Sprintf(
		"Hello %s, your %s request has been booked for %s. We'll contact you soon!",
		req.CustomerName,
		req.Service,
		req.ScheduledDate.Format("1/2/2006, 3:04:05 PM"),
	)
}

// BookingCreated sends the confirmation. Failures are logged and swallowed.
func (n *BookingNotifier) BookingCreated(ctx context.Context, req *models.ServiceRequest) {
	if n.sender == nil {
		log.Debug().Str("request_id", req.ID).Msg("WhatsApp not configured, skipping confirmation")
		metrics.NotificationsTotal.WithLabelValues("skipped").Inc()
		return
	}

	messageID, err := n.sender.SendText(ctx, req.CustomerPhone, BookingConfirmation(req))
	if err != nil {
		log.Error().Err(err).
			Str("request_id", req.ID).
			Str("phone", req.CustomerPhone).
			Msg("❌ Error sending WhatsApp message")
		metrics.NotificationsTotal.WithLabelValues("failed").Inc()
		return
	}

	log.Info().
		Str("request_id", req.ID).
		Str("message_id", messageID).
		Msg("✅ WhatsApp message sent")
	metrics.NotificationsTotal.WithLabelValues("sent").Inc()
}
