// Package datapro verifies National Identification Numbers against the
// Datapro NIN API.
package datapro

import (
	"context"
	"fmt"
	"idverify/pkg/domain"
	"idverify/pkg/jsonsafe"
	"idverify/pkg/verification"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/go-faster/errors"
)

// Name is the provider name used in logs, metrics and errors.
const Name = "datapro"

// DefaultBaseURL is used when no base URL is configured.
const DefaultBaseURL = "https://api.datapronigeria.com"

// Non-standard statuses used by Datapro.
const (
	StatusInvalidServiceID = 87
	StatusNetworkError     = 88
)

const successCode = "00"

var ninPattern = regexp.MustCompile(`^\d{11}$`)

// Messages are the user-facing messages per error code.
var Messages = verification.Messages{ //nolint: gochecknoglobals
	verification.CodeInvalidInput:       "NIN is required. Please provide a valid NIN.",
	verification.CodeInvalidFormat:      "Invalid NIN format. Please check and try again.",
	verification.CodeNotConfigured:      "Verification service is not configured. Please contact support.",
	verification.CodeBadRequest:         "Invalid NIN format. Please check and try again.",
	verification.CodeUnauthorized:       "Verification service unavailable. Please contact support.",
	verification.CodeInvalidServiceID:   "Verification service unavailable. Please contact support.",
	verification.CodeNetworkError:       "Network error. Please try again later.",
	verification.CodeUnexpectedStatus:   "Unexpected error from verification service. Please contact support.",
	verification.CodeParseError:         "Invalid response from verification service. Please contact support.",
	verification.CodeEmptyResponse:      "Invalid response from verification service. Please contact support.",
	verification.CodeInvalidResponse:    "Invalid response from verification service. Please contact support.",
	verification.CodeNINNotFound:        "NIN not found in NIMC database. Please verify your NIN and try again.",
	verification.CodeMaxRetriesExceeded: "Network error. Please try again later.",
	verification.CodeRateLimitExceeded:  "Too many verification requests. Please try again later.",
	verification.CodeFieldMismatch:      "The information provided does not match our records. Please contact your broker.",
}

// Config holds the Datapro credentials.
type Config struct {
	BaseURL   string
	ServiceID string
}

type provider struct {
	baseURL   string
	serviceID string
}

// New returns a NIN verification client backed by Datapro.
func New(cfg Config, httpClient *http.Client, limiter verification.Limiter, opts verification.Options,
	options ...verification.Option,
) *verification.Client {
	return verification.New(NewProvider(cfg), httpClient, limiter, opts, options...)
}

// NewProvider returns the Datapro provider description used by the retry engine.
func NewProvider(cfg Config) verification.Provider {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}

	return &provider{baseURL: base, serviceID: strings.TrimSpace(cfg.ServiceID)}
}

func (p *provider) Name() string                    { return Name }
func (p *provider) Messages() verification.Messages { return Messages }
func (p *provider) Configured() bool                { return p.serviceID != "" }

func (p *provider) Validate(nin string) (string, *verification.Error) {
	nin = strings.TrimSpace(nin)
	if nin == "" {
		return "", &verification.Error{Code: verification.CodeInvalidInput, RawMessage: "NIN is required"}
	}
	if !ninPattern.MatchString(nin) {
		return "", &verification.Error{
			Code:       verification.CodeInvalidFormat,
			RawMessage: "Invalid NIN format. NIN must be 11 digits.",
		}
	}

	return nin, nil
}

func (p *provider) NewRequest(ctx context.Context, nin string) (*http.Request, error) {
	u := fmt.Sprintf("%s/verifynin/?regNo=%s", p.baseURL, url.QueryEscape(nin))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, errors.Wrap(err, "could not create request")
	}
	req.Header.Set("SERVICEID", p.serviceID)
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}

func (p *provider) Policies() verification.PolicyTable {
	return verification.PolicyTable{
		Statuses: map[int]verification.Policy{
			http.StatusOK:           {Handle: handleOK},
			http.StatusBadRequest:   {Code: verification.CodeBadRequest},
			http.StatusUnauthorized: {Code: verification.CodeUnauthorized},
			StatusInvalidServiceID:  {Code: verification.CodeInvalidServiceID},
			StatusNetworkError:      {Code: verification.CodeNetworkError, Retryable: true},
		},
		Default: verification.Policy{Code: verification.CodeUnexpectedStatus},
	}
}

type responseInfo struct {
	ResponseCode string `json:"ResponseCode"`
	Parameter    string `json:"Parameter"`
	Source       string `json:"Source"`
	Message      string `json:"Message"`
	Timestamp    string `json:"Timestamp"`
}

type responseData struct {
	FirstName   string `json:"FirstName"`
	MiddleName  string `json:"MiddleName"`
	LastName    string `json:"LastName"`
	Gender      string `json:"Gender"`
	DateOfBirth string `json:"DateOfBirth"`
	PhoneNumber string `json:"PhoneNumber"`
	BirthDate   string `json:"birthdate"`
	BirthLGA    string `json:"birthlga"`
	BirthState  string `json:"birthstate"`
	TrackingID  string `json:"trackingId"`
}

type envelope struct {
	ResponseInfo *responseInfo `json:"ResponseInfo"`
	ResponseData *responseData `json:"ResponseData"`
}

func handleOK(body []byte) (*verification.Result, *verification.Error) {
	var env envelope
	if err := jsonsafe.Decode(body, &env, map[string]any{"source": Name}); err != nil {
		return nil, verification.ParseFailure(err)
	}
	if env.ResponseInfo == nil || env.ResponseData == nil {
		return nil, &verification.Error{
			Code:       verification.CodeInvalidResponse,
			RawMessage: "Invalid response structure from verification service",
		}
	}

	info, data := env.ResponseInfo, env.ResponseData
	if info.ResponseCode != successCode {
		msg := info.Message
		if msg == "" {
			msg = "NIN not found in NIMC database"
		}

		return nil, &verification.Error{
			Code:         verification.CodeNINNotFound,
			ProviderCode: info.ResponseCode,
			RawMessage:   msg,
		}
	}

	dob := data.DateOfBirth
	if dob == "" {
		dob = data.BirthDate
	}

	return &verification.Result{
		Person: &domain.PersonData{
			FirstName:   data.FirstName,
			MiddleName:  data.MiddleName,
			LastName:    data.LastName,
			Gender:      data.Gender,
			DateOfBirth: dob,
			PhoneNumber: data.PhoneNumber,
			BirthDate:   data.BirthDate,
			BirthLGA:    data.BirthLGA,
			BirthState:  data.BirthState,
			TrackingID:  data.TrackingID,
		},
		ResponseInfo: verification.ResponseInfo{
			Code:      info.ResponseCode,
			Message:   info.Message,
			Parameter: info.Parameter,
			Source:    info.Source,
			Timestamp: info.Timestamp,
		},
	}, nil
}
