package notify

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Type is the delivery scope of a notification.
type Type int

const (
	Broadcast Type = 1
	Subset    Type = 3
	Targeted  Type = 4
)

func (t Type) String() string {
	switch t {
	case Broadcast:
		return "broadcast"
	case Subset:
		return "subset"
	case Targeted:
		return "targeted"
	default:
		return "type(" + strconv.Itoa(int(t)) + ")"
	}
}

// BroadcastRecipient addresses every subscriber of the channel.
const BroadcastRecipient = "*"

// Request is what a channel task asks the dispatcher to deliver.
type Request struct {
	// Recipients is ignored for Broadcast. Entries are raw addresses or CAIP-10 ids.
	Recipients []string `validate:"required_unless=Type 1,dive,required"`

	Title          string `validate:"required"`
	Message        string `validate:"required"`
	PayloadTitle   string `validate:"required"`
	PayloadMessage string `validate:"required"`
	Type           Type   `validate:"oneof=1 3 4"`

	CTA    string `validate:"omitempty,url"`
	Image  string `validate:"omitempty,url"`
	Expiry *time.Time

	// Simulate builds and signs the payload without transmitting it.
	Simulate bool

	// Retry overrides the dispatcher's retry-queue default when set.
	Retry *bool

	// Timestamp replaces the clock in the trailing body marker when set.
	Timestamp *time.Time
}

const (
	timestampMarkerPrefix = "[timestamp: "
	timestampMarkerSuffix = "]"
)

// AppendTimestamp adds the trailing "[timestamp: <unix seconds>]" marker to body.
func AppendTimestamp(body string, at time.Time) string {
	return fmt.Sprintf("%s%s%d%s", body, timestampMarkerPrefix, at.Unix(), timestampMarkerSuffix)
}

// StripTimestamp removes the trailing marker added by AppendTimestamp and
// returns the original body and the unix time it carried. ok is false when body
// does not end with a marker.
func StripTimestamp(body string) (original string, unix int64, ok bool) {
	if !strings.HasSuffix(body, timestampMarkerSuffix) {
		return body, 0, false
	}

	i := strings.LastIndex(body, timestampMarkerPrefix)
	if i < 0 {
		return body, 0, false
	}

	digits := body[i+len(timestampMarkerPrefix) : len(body)-len(timestampMarkerSuffix)]
	unix, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return body, 0, false
	}

	return body[:i], unix, true
}
