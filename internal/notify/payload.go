package notify

import (
	"encoding/hex"
	"encoding/json"
)

// identityTypeDirect tells the notification API that the payload is carried inline.
const identityTypeDirect = 2

// Content is a title/body pair.
type Content struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Data is the rich part of a notification shown inside the app.
type Data struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	CTA   string `json:"cta"`
	Image string `json:"img"`
}

// Payload is the fully built, signed outbound notification. It is what the
// Sender transmits and what the retry queue persists.
type Payload struct {
	Sender       string   `json:"sender"`
	Channel      string   `json:"channel"`
	Type         Type     `json:"type"`
	IdentityType int      `json:"identityType"`
	Notification Content  `json:"notification"`
	Data         Data     `json:"payload"`
	Recipients   []string `json:"recipients"`
	Env          string   `json:"env"`
	Expiry       *int64   `json:"expiry,omitempty"`
	Simulate     bool     `json:"simulate,omitempty"`
	Signature    string   `json:"signature"`
}

// signingBytes is the canonical encoding covered by the signature: the payload
// with an empty signature field.
func (p Payload) signingBytes() ([]byte, error) {
	p.Signature = ""
	return json.Marshal(p)
}

func encodeSignature(sig []byte) string {
	return "0x" + hex.EncodeToString(sig)
}
