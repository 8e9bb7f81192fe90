package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// fallbackMessage is used when a failed response names neither detail nor message.
const fallbackMessage = "Request failed"

// ErrUnsupportedMethod is returned before any I/O when RequestOptions.Method is not one of
// GET, POST, PUT or DELETE.
var ErrUnsupportedMethod = errors.New("unsupported request method")

// Kind classifies a Request Client failure.
type Kind int

const (
	// KindTransport means the request never completed (connectivity, timeout, bad URL).
	KindTransport Kind = iota + 1
	// KindDecode means the response body was not valid JSON for the expected type.
	KindDecode
	// KindLogical means the server answered with a non-2xx status.
	KindLogical
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindDecode:
		return "decode"
	case KindLogical:
		return "logical"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Error is returned by Fetch for every failed exchange. Message is always human readable;
// for transport and decode failures it is the underlying error text unchanged.
type Error struct {
	Kind       Kind
	StatusCode int // 0 for transport failures
	Message    string
	Err        error
}

func (e *Error) Error() string { return e.Message }

// Unwrap exposes the transport or decode cause.
func (e *Error) Unwrap() error { return e.Err }

// IsKind reports whether err is a Request Client failure of kind k.
func IsKind(err error, k Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == k
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

func transportError(err error) *Error {
	return &Error{Kind: KindTransport, Message: err.Error(), Err: err}
}

func decodeError(status int, err error) *Error {
	return &Error{Kind: KindDecode, StatusCode: status, Message: err.Error(), Err: err}
}

func logicalError(status int, raw []byte) *Error {
	var body errorBody
	// Valid JSON that is not an object (array, string) carries no usable fields.
	_ = json.Unmarshal(raw, &body)
	return &Error{Kind: KindLogical, StatusCode: status, Message: body.text()}
}

// errorBody is the optional-field shape of a failed response.
type errorBody struct {
	Detail  json.RawMessage `json:"detail"`
	Message json.RawMessage `json:"message"`
}

func (b errorBody) text() string {
	if s := detailText(b.Detail); s != "" {
		return s
	}
	if s := stringValue(b.Message); s != "" {
		return s
	}
	return fallbackMessage
}

// detailText accepts a plain string or a validation error list ([{"msg": "..."}]).
func detailText(raw json.RawMessage) string {
	if s := stringValue(raw); s != "" {
		return s
	}
	var items []struct {
		Msg string `json:"msg"`
	}
	if len(raw) == 0 || json.Unmarshal(raw, &items) != nil {
		return ""
	}
	msgs := make([]string, 0, len(items))
	for _, it := range items {
		if m := strings.TrimSpace(it.Msg); m != "" {
			msgs = append(msgs, m)
		}
	}
	return strings.Join(msgs, "; ")
}

func stringValue(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}
