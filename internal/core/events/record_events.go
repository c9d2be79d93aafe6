package events

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

const (
	ResourceOrgUnit  = "orgunit"
	ResourceWorker   = "worker"
	ResourcePosition = "position"
	ResourceBand     = "band"
)

// RecordChanged is emitted after a write to one HR record has been persisted.
type RecordChanged struct {
	BaseEvent
	Resource string `json:"resource"`
	Action   Action `json:"action"`
	RecordID int64  `json:"record_id"`
	Actor    string `json:"actor"`
}

// EventType names are "<resource>.<action>", e.g. "worker.deleted".
func RecordEventType(resource string, action Action) string {
	return fmt.Sprintf("%s.%s", resource, action)
}

func NewRecordChanged(resource string, action Action, recordID int64, actor string) *RecordChanged {
	return &RecordChanged{
		BaseEvent: BaseEvent{
			ID:        uuid.NewString(),
			Type:      RecordEventType(resource, action),
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"resource":  resource,
				"action":    string(action),
				"record_id": recordID,
				"actor":     actor,
			},
		},
		Resource: resource,
		Action:   action,
		RecordID: recordID,
		Actor:    actor,
	}
}
