package playfab

import (
	"time"

	"github.com/google/uuid"
)

// EventContents is a single PlayStream or telemetry event.
type EventContents struct {
	CustomTags map[string]string `json:"CustomTags,omitempty"`
	// Entity defaults to the calling entity.
	Entity *EntityKey `json:"Entity,omitempty"`
	// EventNamespace must start with "custom." for title events.
	EventNamespace string `json:"EventNamespace" validate:"required"`
	Name           string `json:"Name" validate:"required"`
	// OriginalId lets the service drop duplicates of the same event.
	OriginalId        string     `json:"OriginalId,omitempty"`
	OriginalTimestamp *time.Time `json:"OriginalTimestamp,omitempty"`
	// Payload and PayloadJSON are mutually exclusive.
	Payload     any    `json:"Payload,omitempty"`
	PayloadJSON string `json:"PayloadJSON,omitempty" validate:"excluded_with=Payload"`
}

// NewEvent builds an event with a fresh OriginalId and the current time as OriginalTimestamp.
func NewEvent(namespace, name string, payload any) EventContents {
	now := time.Now().UTC()
	return EventContents{
		EventNamespace:    namespace,
		Name:              name,
		OriginalId:        uuid.New().String(),
		OriginalTimestamp: &now,
		Payload:           payload,
	}
}

type WriteEventsRequest struct {
	RequestBase
	Events []EventContents `json:"Events" validate:"required,min=1,max=200,dive"`
}

type WriteEventsResponse struct {
	// AssignedEventIds are in the same order as the written events.
	AssignedEventIds []string `json:"AssignedEventIds,omitempty"`
}

type TelemetryKeyDetails struct {
	CreateTime     time.Time `json:"CreateTime"`
	IsActive       bool      `json:"IsActive"`
	KeyValue       string    `json:"KeyValue,omitempty"`
	LastUpdateTime time.Time `json:"LastUpdateTime"`
	Name           string    `json:"Name,omitempty"`
}

type CreateTelemetryKeyRequest struct {
	RequestBase
	Entity  *EntityKey `json:"Entity,omitempty"`
	KeyName string     `json:"KeyName" validate:"required"`
}

type CreateTelemetryKeyResponse struct {
	NewKeyDetails *TelemetryKeyDetails `json:"NewKeyDetails,omitempty"`
}

type DeleteTelemetryKeyRequest struct {
	RequestBase
	Entity  *EntityKey `json:"Entity,omitempty"`
	KeyName string     `json:"KeyName" validate:"required"`
}

type DeleteTelemetryKeyResponse struct {
	WasKeyDeleted bool `json:"WasKeyDeleted"`
}

type ListTelemetryKeysRequest struct {
	RequestBase
	Entity *EntityKey `json:"Entity,omitempty"`
}

type ListTelemetryKeysResponse struct {
	KeyDetails []TelemetryKeyDetails `json:"KeyDetails,omitempty"`
}
