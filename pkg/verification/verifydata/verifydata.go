// Package verifydata verifies corporate registration (RC) numbers against the
// VerifyData CAC API.
package verifydata

import (
	"bytes"
	"context"
	"encoding/json"
	"idverify/pkg/domain"
	"idverify/pkg/jsonsafe"
	"idverify/pkg/matcher"
	"idverify/pkg/verification"
	"net/http"
	"strings"

	"github.com/go-faster/errors"
)

// Name is the provider name used in logs, metrics and errors.
const Name = "verifydata"

// DefaultBaseURL is used when no base URL is configured.
const DefaultBaseURL = "https://vd.villextra.com"

const initiatePath = "/api/ValidateRcNumber/Initiate"

// Sub-codes carried in the body of a 400 response.
var subCodes = map[string]verification.Code{ //nolint: gochecknoglobals
	"FF": verification.CodeInvalidSecretKey,
	"IB": verification.CodeInsufficientBalance,
	"BR": verification.CodeContactAdmin,
	"EE": verification.CodeNoActiveService,
}

// Messages are the user-facing messages per error code.
var Messages = verification.Messages{ //nolint: gochecknoglobals
	verification.CodeInvalidInput:        "RC number is required. Please provide a valid RC number.",
	verification.CodeInvalidFormat:       "Invalid RC number format. Please check and try again.",
	verification.CodeNotConfigured:       "Verification service is not configured. Please contact support.",
	verification.CodeInvalidSecretKey:    "Verification service unavailable. Please contact support.",
	verification.CodeInsufficientBalance: "Verification service unavailable. Please contact support.",
	verification.CodeContactAdmin:        "Verification service unavailable. Please contact support.",
	verification.CodeNoActiveService:     "Verification service unavailable. Please contact support.",
	verification.CodeBadRequest:          "Invalid RC number format. Please check and try again.",
	verification.CodeServerError:         "Network error. Please try again later.",
	verification.CodeNetworkError:        "Network error. Please try again later.",
	verification.CodeUnexpectedStatus:    "Unexpected error from verification service. Please contact support.",
	verification.CodeParseError:          "Invalid response from verification service. Please contact support.",
	verification.CodeEmptyResponse:       "Invalid response from verification service. Please contact support.",
	verification.CodeInvalidResponse:     "Invalid response from verification service. Please contact support.",
	verification.CodeCACNotFound:         "RC number not found in CAC database. Please verify your RC number and try again.",
	verification.CodeMaxRetriesExceeded:  "Network error. Please try again later.",
	verification.CodeFieldMismatch:       "The company information provided does not match CAC records. Please contact your broker.",
	verification.CodeRateLimitExceeded:   "Too many verification requests. Please try again later.",
}

// Config holds the VerifyData credentials.
type Config struct {
	BaseURL   string
	SecretKey string
}

type provider struct {
	baseURL   string
	secretKey string
}

// New returns a CAC verification client backed by VerifyData.
func New(cfg Config, httpClient *http.Client, limiter verification.Limiter, opts verification.Options,
	options ...verification.Option,
) *verification.Client {
	return verification.New(NewProvider(cfg), httpClient, limiter, opts, options...)
}

// NewProvider returns the VerifyData provider description used by the retry engine.
func NewProvider(cfg Config) verification.Provider {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}

	return &provider{baseURL: base, secretKey: strings.TrimSpace(cfg.SecretKey)}
}

func (p *provider) Name() string                    { return Name }
func (p *provider) Messages() verification.Messages { return Messages }
func (p *provider) Configured() bool                { return p.secretKey != "" }

// Validate accepts RC numbers with or without a two letter prefix.
func (p *provider) Validate(rc string) (string, *verification.Error) {
	rc = strings.TrimSpace(rc)
	if rc == "" {
		return "", &verification.Error{Code: verification.CodeInvalidInput, RawMessage: "RC number is required"}
	}
	if matcher.NormalizeIdentityNumber(rc) == "" {
		return "", &verification.Error{Code: verification.CodeInvalidFormat, RawMessage: "RC number has no digits"}
	}

	return rc, nil
}

type initiateReq struct {
	RCNumber  string `json:"rcNumber"`
	SecretKey string `json:"secretKey"`
}

func (p *provider) NewRequest(ctx context.Context, rc string) (*http.Request, error) {
	body, err := json.Marshal(initiateReq{RCNumber: rc, SecretKey: p.secretKey})
	if err != nil {
		return nil, errors.Wrap(err, "could not marshal request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+initiatePath, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "could not create request")
	}
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}

func (p *provider) Policies() verification.PolicyTable {
	return verification.PolicyTable{
		Statuses: map[int]verification.Policy{
			http.StatusOK:                  {Handle: handleOK},
			http.StatusBadRequest:          {Handle: handleBadRequest},
			http.StatusInternalServerError: {Code: verification.CodeServerError, Retryable: true},
		},
		Default: verification.Policy{Code: verification.CodeUnexpectedStatus},
	}
}

type companyData struct {
	Name               string `json:"name"`
	RegistrationNumber string `json:"registrationNumber"`
	CompanyStatus      string `json:"companyStatus"`
	RegistrationDate   string `json:"registrationDate"`
	TypeOfEntity       string `json:"typeOfEntity"`
}

type envelope struct {
	Success    bool         `json:"success"`
	StatusCode string       `json:"statusCode"`
	Message    string       `json:"message"`
	Data       *companyData `json:"data"`
}

func handleOK(body []byte) (*verification.Result, *verification.Error) {
	var env envelope
	if err := jsonsafe.Decode(body, &env, map[string]any{"source": Name}); err != nil {
		return nil, verification.ParseFailure(err)
	}
	if !env.Success || env.Data == nil {
		msg := env.Message
		if msg == "" {
			msg = "RC number not found in CAC database"
		}

		return nil, &verification.Error{
			Code:         verification.CodeCACNotFound,
			ProviderCode: env.StatusCode,
			RawMessage:   msg,
		}
	}

	d := env.Data

	return &verification.Result{
		Company: &domain.CompanyData{
			Name:               d.Name,
			RegistrationNumber: d.RegistrationNumber,
			CompanyStatus:      d.CompanyStatus,
			RegistrationDate:   d.RegistrationDate,
			TypeOfEntity:       d.TypeOfEntity,
		},
		ResponseInfo: verification.ResponseInfo{Code: env.StatusCode, Message: env.Message},
	}, nil
}

func handleBadRequest(body []byte) (*verification.Result, *verification.Error) {
	var env struct {
		StatusCode string `json:"statusCode"`
		Message    string `json:"message"`
	}
	if err := jsonsafe.Decode(body, &env, map[string]any{"source": Name}); err != nil {
		verr := verification.ParseFailure(err)
		verr.Code = verification.CodeBadRequest

		return nil, verr
	}

	code, ok := subCodes[env.StatusCode]
	if !ok {
		code = verification.CodeBadRequest
	}

	return nil, &verification.Error{Code: code, ProviderCode: env.StatusCode, RawMessage: env.Message}
}
