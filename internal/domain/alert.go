package domain

// Defaults applied when an alert field is absent from the request.
const (
	DefaultTruckID      = "Unknown"
	DefaultAlertSubject = "PharmaGuard Alert"
	DefaultAlertMessage = "No details provided."
)

type AlertPayload struct {
	TruckID string
	Subject string
	Message string
}

type DeliveryConfirmation struct {
	Status string `json:"status"`
	To     string `json:"to"`
}
