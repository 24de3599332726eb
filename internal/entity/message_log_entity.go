package entity

import (
	"time"

	"github.com/google/uuid"
)

// MessageLog keeps every inbound webhook message together with its raw
// payload, mostly for debugging delivery issues from the dashboard.
type MessageLog struct {
	Id         uuid.UUID
	From       string
	Text       string
	RawPayload []byte
	ReceivedAt time.Time
}
