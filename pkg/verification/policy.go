package verification

// Handler interprets a response body. It returns either a result or a
// classified error.
type Handler func(body []byte) (*Result, *Error)

// Policy decides what a response status means.
type Policy struct {
	Code      Code
	Retryable bool
	// Handle, when set, takes over classification for the status.
	Handle Handler
}

// PolicyTable maps HTTP status codes to policies. Statuses missing from the
// table fall back to Default.
type PolicyTable struct {
	Statuses map[int]Policy
	Default  Policy
}

// Lookup returns the policy for status.
func (t PolicyTable) Lookup(status int) Policy {
	if p, ok := t.Statuses[status]; ok {
		return p
	}
	if t.Default.Code == "" && t.Default.Handle == nil {
		return Policy{Code: CodeUnexpectedStatus}
	}

	return t.Default
}

func (p Policy) apply(body []byte, status, attempt int) (*Result, *Error) {
	if p.Handle != nil {
		res, verr := p.Handle(body)
		if verr != nil {
			if verr.StatusCode == 0 {
				verr.StatusCode = status
			}
			verr.Attempt = attempt
		}

		return res, verr
	}

	return nil, &Error{Code: p.Code, StatusCode: status, Attempt: attempt, Retryable: p.Retryable}
}
