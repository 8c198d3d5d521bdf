package verification_test

import (
	"context"
	"errors"
	"idverify/pkg/domain"
	"idverify/pkg/logger"
	"idverify/pkg/serrors"
	"idverify/pkg/verification"
	mockverification "idverify/pkg/verification/mock"
	"io"
	"net/http"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	os.Exit(m.Run())
}

type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func respond(status int, body string) (*http.Response, error) {
	return &http.Response{StatusCode: status, Body: io.NopCloser(strings.NewReader(body)), Header: http.Header{}}, nil
}

type fakeProvider struct {
	configured bool
}

func (p fakeProvider) Name() string { return "fake" }

func (p fakeProvider) Messages() verification.Messages {
	return verification.Messages{
		verification.CodeInvalidInput:  "ID is required.",
		verification.CodeNetworkError:  "Network error. Please try again later.",
		verification.CodeBadRequest:    "Invalid ID.",
		verification.CodeFieldMismatch: "Data does not match.",
	}
}

func (p fakeProvider) Configured() bool { return p.configured }

func (p fakeProvider) Validate(id string) (string, *verification.Error) {
	if strings.TrimSpace(id) == "" {
		return "", &verification.Error{Code: verification.CodeInvalidInput}
	}

	return strings.TrimSpace(id), nil
}

func (p fakeProvider) NewRequest(ctx context.Context, id string) (*http.Request, error) {
	return http.NewRequestWithContext(ctx, http.MethodGet, "https://provider.test/verify?id="+id, nil)
}

func (p fakeProvider) Policies() verification.PolicyTable {
	return verification.PolicyTable{
		Statuses: map[int]verification.Policy{
			http.StatusOK: {Handle: func(body []byte) (*verification.Result, *verification.Error) {
				if string(body) == "missing" {
					return nil, &verification.Error{Code: verification.CodeNINNotFound, RawMessage: "no record"}
				}

				return &verification.Result{Person: &domain.PersonData{FirstName: string(body)}}, nil
			}},
			http.StatusBadRequest:         {Code: verification.CodeBadRequest},
			http.StatusServiceUnavailable: {Code: verification.CodeNetworkError, Retryable: true},
		},
	}
}

type sleepRecorder struct {
	delays []time.Duration
	err    error
}

func (s *sleepRecorder) sleep(_ context.Context, d time.Duration) error {
	s.delays = append(s.delays, d)

	return s.err
}

func newClient(t *testing.T, rt rtFunc, limiter verification.Limiter, sleeps *sleepRecorder) *verification.Client {
	t.Helper()

	return verification.New(fakeProvider{configured: true}, &http.Client{Transport: rt}, limiter,
		verification.DefaultOptions(), verification.WithSleep(sleeps.sleep))
}

func noCall(t *testing.T) rtFunc {
	return func(*http.Request) (*http.Response, error) {
		t.Fatal("no HTTP call expected")

		return nil, nil
	}
}

func requireCode(t *testing.T, err error, code verification.Code) *verification.Error {
	t.Helper()
	var verr *verification.Error
	require.True(t, errors.As(err, &verr), "expected *verification.Error, got %v", err)
	require.Equal(t, code, verr.Code)

	return verr
}

func TestVerify_invalidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := newClient(t, noCall(t), mockverification.NewMockLimiter(ctrl), &sleepRecorder{})

	res, err := c.Verify(context.Background(), "   ")
	require.Nil(t, res)
	verr := requireCode(t, err, verification.CodeInvalidInput)
	require.Equal(t, "ID is required.", verr.Message)
	require.Equal(t, "fake", verr.Provider)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestVerify_notConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := verification.New(fakeProvider{}, &http.Client{Transport: noCall(t)}, mockverification.NewMockLimiter(ctrl),
		verification.DefaultOptions())

	_, err := c.Verify(context.Background(), "12345678901")
	verr := requireCode(t, err, verification.CodeNotConfigured)
	require.Equal(t, verification.GenericMessage, verr.Message)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestVerify_rateLimited(t *testing.T) {
	ctrl := gomock.NewController(t)
	limiter := mockverification.NewMockLimiter(ctrl)
	limiter.EXPECT().Acquire(gomock.Any()).Return(serrors.With(serrors.ErrRateLimited, "queue full"))

	c := newClient(t, noCall(t), limiter, &sleepRecorder{})
	_, err := c.Verify(context.Background(), "12345678901")
	verr := requireCode(t, err, verification.CodeRateLimitExceeded)
	require.Equal(t, "queue full", verr.RawMessage)
	require.ErrorIs(t, err, serrors.ErrRateLimited)
}

func TestVerify_success(t *testing.T) {
	ctrl := gomock.NewController(t)
	limiter := mockverification.NewMockLimiter(ctrl)
	limiter.EXPECT().Acquire(gomock.Any()).Return(nil).Times(1)

	c := newClient(t, func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "12345678901", r.URL.Query().Get("id"))
		_, hasDeadline := r.Context().Deadline()
		require.True(t, hasDeadline, "each attempt must carry a timeout")

		return respond(http.StatusOK, "JOHN")
	}, limiter, &sleepRecorder{})

	res, err := c.Verify(context.Background(), " 12345678901 ")
	require.NoError(t, err)
	require.Equal(t, "fake", res.Provider)
	require.Equal(t, 1, res.Attempts)
	require.Equal(t, "JOHN", res.Person.FirstName)
}

func TestVerify_transientRetriesWithBackoff(t *testing.T) {
	ctrl := gomock.NewController(t)
	limiter := mockverification.NewMockLimiter(ctrl)
	limiter.EXPECT().Acquire(gomock.Any()).Return(nil).Times(1)

	var calls atomic.Int32
	sleeps := &sleepRecorder{}
	c := newClient(t, func(*http.Request) (*http.Response, error) {
		calls.Add(1)

		return respond(http.StatusServiceUnavailable, "")
	}, limiter, sleeps)

	_, err := c.Verify(context.Background(), "12345678901")
	verr := requireCode(t, err, verification.CodeNetworkError)
	require.EqualValues(t, verification.DefaultMaxRetries, calls.Load())
	require.Equal(t, []time.Duration{time.Second, 2 * time.Second}, sleeps.delays)
	require.Equal(t, 3, verr.Attempt)
	require.True(t, verr.Retryable)
	require.Equal(t, http.StatusServiceUnavailable, verr.StatusCode)
}

func TestVerify_terminalStatusSingleAttempt(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		code   verification.Code
	}{
		{name: "bad request", status: http.StatusBadRequest, code: verification.CodeBadRequest},
		{name: "not found in body", status: http.StatusOK, body: "missing", code: verification.CodeNINNotFound},
		{name: "unexpected status", status: http.StatusTeapot, code: verification.CodeUnexpectedStatus},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var calls atomic.Int32
			sleeps := &sleepRecorder{}
			c := newClient(t, func(*http.Request) (*http.Response, error) {
				calls.Add(1)

				return respond(tc.status, tc.body)
			}, nil, sleeps)

			_, err := c.Verify(context.Background(), "12345678901")
			verr := requireCode(t, err, tc.code)
			require.EqualValues(t, 1, calls.Load())
			require.Empty(t, sleeps.delays)
			require.Equal(t, tc.status, verr.StatusCode)
			require.False(t, verr.Retryable)
		})
	}
}

func TestVerify_networkErrorThenSuccess(t *testing.T) {
	var calls atomic.Int32
	sleeps := &sleepRecorder{}
	c := newClient(t, func(*http.Request) (*http.Response, error) {
		if calls.Add(1) == 1 {
			return nil, errors.New("connection reset by peer")
		}

		return respond(http.StatusOK, "JANE")
	}, nil, sleeps)

	res, err := c.Verify(context.Background(), "12345678901")
	require.NoError(t, err)
	require.Equal(t, 2, res.Attempts)
	require.Equal(t, []time.Duration{time.Second}, sleeps.delays)
}

func TestVerify_timeoutIsRetryable(t *testing.T) {
	c := newClient(t, func(*http.Request) (*http.Response, error) {
		return nil, context.DeadlineExceeded
	}, nil, &sleepRecorder{})

	_, err := c.Verify(context.Background(), "12345678901")
	verr := requireCode(t, err, verification.CodeNetworkError)
	require.True(t, verr.IsTimeout)
	require.ErrorIs(t, err, serrors.ErrTimeout)
	require.Equal(t, "Network error. Please try again later.", verr.Message)
}

func TestVerify_cancelDuringBackoff(t *testing.T) {
	var calls atomic.Int32
	sleeps := &sleepRecorder{err: context.Canceled}
	c := newClient(t, func(*http.Request) (*http.Response, error) {
		calls.Add(1)

		return respond(http.StatusServiceUnavailable, "")
	}, nil, sleeps)

	_, err := c.Verify(context.Background(), "12345678901")
	requireCode(t, err, verification.CodeNetworkError)
	require.EqualValues(t, 1, calls.Load())
}

func TestFieldMismatch(t *testing.T) {
	c := newClient(t, noCall(t), nil, &sleepRecorder{})
	verr := c.FieldMismatch([]string{"First Name", "Gender"})
	require.Equal(t, verification.CodeFieldMismatch, verr.Code)
	require.Equal(t, "Data does not match.", verr.Message)
	require.Equal(t, "Error Code: FIELD_MISMATCH | Failed Fields: First Name, Gender", verr.Technical())
	require.ErrorIs(t, verr, serrors.ErrUnprocessable)
}

func TestErrorTechnical(t *testing.T) {
	e := &verification.Error{
		Code:         verification.CodeInvalidSecretKey,
		StatusCode:   400,
		ProviderCode: "FF",
		RawMessage:   "invalid key",
		Attempt:      1,
	}
	require.Equal(t,
		"Error Code: INVALID_SECRET_KEY | Status Code: 400 | Response Status Code: FF | Message: invalid key | Attempt: 1",
		e.Technical())
	require.Equal(t, "Error Code: MAX_RETRIES_EXCEEDED", (&verification.Error{Code: verification.CodeMaxRetriesExceeded}).Technical())
}

func TestBackoff(t *testing.T) {
	require.Equal(t, time.Second, verification.Backoff(time.Second, 1))
	require.Equal(t, 2*time.Second, verification.Backoff(time.Second, 2))
	require.Equal(t, 4*time.Second, verification.Backoff(time.Second, 3))
}

func TestSleep(t *testing.T) {
	require.NoError(t, verification.Sleep(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, verification.Sleep(ctx, time.Hour), context.Canceled)
}

func TestMessagesFallback(t *testing.T) {
	m := verification.Messages{verification.CodeBadRequest: "bad"}
	require.Equal(t, "bad", m.For(verification.CodeBadRequest))
	require.Equal(t, verification.GenericMessage, m.For("SOMETHING_ELSE"))
}
