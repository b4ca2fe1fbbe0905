package gateway

import (
	"encoding/json"
	"errors"
)

// ServiceUnavailableMsg is the normalized error every transport-level failure
// is reported as. Callers cannot distinguish a refused connection from a 502;
// both are just unavailable upstreams.
const ServiceUnavailableMsg = "Service unavailable. Please try again later."

// Envelope is the uniform response wrapper every backend service replies with.
// Transport failures are folded into the same shape, so callers only ever
// branch on Success.
type Envelope struct {
	Success  bool                     `json:"success"`
	Data     json.RawMessage          `json:"data,omitempty"`
	Error    string                   `json:"error,omitempty"`
	Message  string                   `json:"message,omitempty"`
	Count    int                      `json:"count,omitempty"`
	Status   string                   `json:"status,omitempty"`
	Services map[string]ServiceHealth `json:"services,omitempty"`
}

// ServiceHealth is one entry of the gateway /health fan-out.
type ServiceHealth struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Healthy reports whether the service answered the gateway's probe.
func (s ServiceHealth) Healthy() bool {
	return s.Status == "healthy"
}

// Failure builds a failed envelope carrying the given error message.
func Failure(msg string) Envelope {
	return Envelope{Success: false, Error: msg}
}

// Unavailable is the envelope used for any transport or HTTP-status failure.
func Unavailable() Envelope {
	return Failure(ServiceUnavailableMsg)
}

// Decode unmarshals the envelope's data payload into dest.
func (e Envelope) Decode(dest any) error {
	if !e.Success {
		return errors.New("cannot decode data from failed envelope")
	}
	if len(e.Data) == 0 {
		return errors.New("envelope has no data payload")
	}
	return json.Unmarshal(e.Data, dest)
}
