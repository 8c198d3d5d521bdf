package verification

import "idverify/pkg/domain"

// ResponseInfo is the provider envelope metadata of a successful call.
type ResponseInfo struct {
	Code      string `json:"responseCode,omitempty"`
	Message   string `json:"message,omitempty"`
	Parameter string `json:"parameter,omitempty"`
	Source    string `json:"source,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// Result is a successful verification. Exactly one of Person and Company is set.
type Result struct {
	Provider     string              `json:"provider"`
	Person       *domain.PersonData  `json:"person,omitempty"`
	Company      *domain.CompanyData `json:"company,omitempty"`
	ResponseInfo ResponseInfo        `json:"responseInfo"`
	Attempts     int                 `json:"attempts"`
}
