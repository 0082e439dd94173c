package handler

import (
	"context"
	"encoding/json"

	"pharmaguard/functions/internal/domain"
	"pharmaguard/functions/internal/mailer"
	"pharmaguard/functions/internal/metrics"
)

type alertRequest struct {
	TruckID *string `json:"truckId"`
	Subject *string `json:"subject"`
	Message *string `json:"message"`
}

// EmailSender returns the email-sender function: decode an alert payload,
// submit it through the mailer, answer with the delivery confirmation.
func EmailSender(m *mailer.Mailer) Func {
	return func(ctx context.Context, req []byte) []byte {
		var in alertRequest
		if err := json.Unmarshal(req, &in); err != nil {
			return errorJSON(err)
		}

		payload := &domain.AlertPayload{
			TruckID: domain.DefaultTruckID,
			Subject: domain.DefaultAlertSubject,
			Message: domain.DefaultAlertMessage,
		}
		if in.TruckID != nil {
			payload.TruckID = *in.TruckID
		}
		if in.Subject != nil {
			payload.Subject = *in.Subject
		}
		if in.Message != nil {
			payload.Message = *in.Message
		}

		confirmation, err := m.SendAlert(payload)
		if err != nil {
			metrics.EmailFailures.Add(1)
			return errorJSON(err)
		}
		metrics.EmailsSent.Add(1)

		out, err := json.Marshal(confirmation)
		if err != nil {
			return errorJSON(err)
		}
		return out
	}
}
