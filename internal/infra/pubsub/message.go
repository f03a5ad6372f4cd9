package pubsub

import (
	"encoding/json"

	"smartlunch/internal/domain/service"

	"github.com/pkg/errors"
)

const eventTypeReauthRequired = "reauth_required"

// reauthMessage is a ReauthEvent ready for either transport.
type reauthMessage struct {
	id         string
	data       []byte
	attributes map[string]string
}

func encodeReauthEvent(event *service.ReauthEvent) (*reauthMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrapf(err, "encode reauth event for %s", event.Account)
	}

	return &reauthMessage{
		id:         event.EventID,
		data:       data,
		attributes: eventAttributes(event),
	}, nil
}

// eventAttributes lets subscribers filter on account and level without
// decoding the payload.
func eventAttributes(event *service.ReauthEvent) map[string]string {
	attributes := map[string]string{
		"event_type": eventTypeReauthRequired,
		"event_id":   event.EventID,
		"account":    event.Account,
	}
	if event.Level != "" {
		attributes["level"] = event.Level
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
