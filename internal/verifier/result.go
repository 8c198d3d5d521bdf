package verifier

import (
	"encoding/json"
	"errors"
	"idverify/pkg/matcher"
	"idverify/pkg/verification"
)

// CodeInternal is recorded for failures that did not come from a provider.
const CodeInternal = "INTERNAL_ERROR"

// Outcome is the result of a single verification call. Match is set when
// submitted data was compared; Mismatch is set when that comparison failed.
type Outcome struct {
	Result   *verification.Result
	Match    *matcher.Result
	Mismatch *verification.Error
}

// Matched reports whether the provider accepted the identity and no submitted
// field contradicted its record.
func (o *Outcome) Matched() bool { return o != nil && o.Result != nil && o.Mismatch == nil }

// successRecord is the verification result stored with VERIFIED entries.
type successRecord struct {
	Provider     string                    `json:"provider"`
	Data         any                       `json:"data"`
	ResponseInfo verification.ResponseInfo `json:"responseInfo"`
	Attempts     int                       `json:"attempts"`
	Match        *matcher.Result           `json:"match,omitempty"`
}

// failureRecord is the verification result stored with FAILED entries.
type failureRecord struct {
	ErrorCode        string          `json:"errorCode"`
	UserMessage      string          `json:"userMessage"`
	TechnicalDetails string          `json:"technicalDetails"`
	FailedFields     []string        `json:"failedFields,omitempty"`
	Match            *matcher.Result `json:"match,omitempty"`
}

func newSuccessRecord(o *Outcome) successRecord {
	rec := successRecord{
		Provider:     o.Result.Provider,
		ResponseInfo: o.Result.ResponseInfo,
		Attempts:     o.Result.Attempts,
		Match:        o.Match,
	}
	switch {
	case o.Result.Person != nil:
		rec.Data = o.Result.Person
	case o.Result.Company != nil:
		rec.Data = o.Result.Company
	}

	return rec
}

func newFailureRecord(err error, match *matcher.Result) failureRecord {
	var verr *verification.Error
	if !errors.As(err, &verr) {
		return failureRecord{
			ErrorCode:        CodeInternal,
			UserMessage:      verification.GenericMessage,
			TechnicalDetails: err.Error(),
			Match:            match,
		}
	}

	msg := verr.Message
	if msg == "" {
		msg = verification.GenericMessage
	}

	return failureRecord{
		ErrorCode:        string(verr.Code),
		UserMessage:      msg,
		TechnicalDetails: verr.Technical(),
		FailedFields:     verr.FailedFields,
		Match:            match,
	}
}

func (r failureRecord) marshal() json.RawMessage {
	b, _ := json.Marshal(r) //nolint: errchkjson

	return b
}

func (r successRecord) marshal() json.RawMessage {
	b, _ := json.Marshal(r) //nolint: errchkjson

	return b
}
