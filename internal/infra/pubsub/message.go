package pubsub

import (
	"encoding/json"

	"locator/internal/domain/constants"
	"locator/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// outgoingMessage is an encoded event plus the attributes subscribers filter on.
type outgoingMessage struct {
	id         string
	eventType  string
	data       []byte
	attributes map[string]string
}

func newSearchMessage(event *service.SearchEvent) (*outgoingMessage, error) {
	msg, err := newMessage(constants.EventTypeSearch, event.RequestID, event)
	if err != nil {
		return nil, err
	}
	msg.attributes["search_kind"] = event.Kind

	return msg, nil
}

func newAppointmentMessage(event *service.AppointmentEvent) (*outgoingMessage, error) {
	msg, err := newMessage(constants.EventTypeAppointment, event.RequestID, event)
	if err != nil {
		return nil, err
	}
	msg.attributes["appointment_id"] = event.AppointmentID
	msg.attributes["provider_id"] = event.ProviderID
	msg.attributes["status"] = event.Status

	return msg, nil
}

func newMessage(eventType, requestID string, event any) (*outgoingMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		constants.EventAttributeType: eventType,
	}
	if requestID != "" {
		attributes["request_id"] = requestID
	}

	return &outgoingMessage{
		id:         uuid.NewString(),
		eventType:  eventType,
		data:       data,
		attributes: attributes,
	}, nil
}
