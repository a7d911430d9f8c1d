package ws

import (
	"bytes"
	"encoding/json"
	"log"

	xerrors "linkora-server/pkg/utils/errors"
)

// Inbound event types (client -> server).
const (
	EvtRegister     = "register"
	EvtVerifyEmail  = "verify_email"
	EvtLogin        = "login"
	EvtCreatePost   = "create_post"
	EvtLikePost     = "like_post"
	EvtAddComment   = "add_comment"
	EvtUploadAvatar = "upload_avatar"
)

// Outbound event types (server -> client). Unicast unless the router
// broadcasts them.
const (
	EvtRegisterError       = "register_error"
	EvtVerificationSent    = "verification_sent"
	EvtVerificationError   = "verification_error"
	EvtVerificationSuccess = "verification_success"
	EvtNewUserRegistered   = "new_user_registered"
	EvtLoginSuccess        = "login_success"
	EvtLoginError          = "login_error"
	EvtUserOnline          = "user_online"
	EvtNewPost             = "new_post"
	EvtPostUpdated         = "post_updated"
	EvtUserUpdated         = "user_updated"
	EvtEventError          = "event_error"
)

// Message is the wire envelope for both directions.
type Message struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Encode marshals a payload into a wire message of the given type.
func Encode(typ string, payload interface{}) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Message{Type: typ, Data: data})
}

// mustEncode is Encode for payloads that cannot fail to marshal
// (strings and domain structs). Returns nil on the impossible path so
// delivery helpers can drop it.
func mustEncode(typ string, payload interface{}) []byte {
	b, err := Encode(typ, payload)
	if err != nil {
		log.Printf("ws: encode %s: %v", typ, err)
		return nil
	}
	return b
}

// decodeStrict unmarshals an event payload, rejecting unknown fields.
// Every inbound event has an explicit schema; anything else is a
// malformed event, not a crash.
func decodeStrict(data json.RawMessage, v interface{}) error {
	if len(data) == 0 {
		return xerrors.ErrMalformedEvent
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return xerrors.ErrMalformedEvent
	}
	return nil
}
