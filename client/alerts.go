package client

import (
	"time"

	"github.com/google/uuid"
)

// DefaultAlertTimeout is how long an alert stays visible before it is
// removed.
const DefaultAlertTimeout = 5 * time.Second

// SetAlert dispatches a transient alert that removes itself after timeout.
// A zero timeout uses DefaultAlertTimeout.
func (a *Actions) SetAlert(message, alertType string, timeout time.Duration) string {
	if timeout <= 0 {
		timeout = DefaultAlertTimeout
	}
	alert := Alert{
		ID:        uuid.New().String(),
		Message:   message,
		AlertType: alertType,
	}
	a.store.Dispatch(Action{Type: SetAlert, Payload: alert})

	time.AfterFunc(timeout, func() {
		a.store.Dispatch(Action{Type: RemoveAlert, Payload: alert.ID})
	})
	return alert.ID
}
