package main

import (
	"bytes"
	"context"
	"idverify/pkg/domain"
	"idverify/pkg/logger"
	"idverify/pkg/verification"
	mockverification "idverify/pkg/verification/mock"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	os.Exit(m.Run())
}

func TestReadIdentities(t *testing.T) {
	ids, err := readIdentities(strings.NewReader("12345678901\n\n# comment\n  10987654321  \n"))
	require.NoError(t, err)
	require.Equal(t, []string{"12345678901", "10987654321"}, ids)
}

func TestVerifyAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	v := mockverification.NewMockVerifier(ctrl)

	v.EXPECT().Verify(gomock.Any(), "12345678901").Return(&verification.Result{
		Provider: "datapro",
		Person:   &domain.PersonData{FirstName: "ADA", LastName: "OBI"},
		Attempts: 1,
	}, nil)
	v.EXPECT().Verify(gomock.Any(), "10987654321").Return(nil, &verification.Error{
		Code:    verification.CodeNINNotFound,
		Message: "NIN not found",
	})

	lines, err := verifyAll(context.Background(), v, []string{"12345678901", "10987654321"}, 2)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	require.NotNil(t, lines[0].result)
	require.Error(t, lines[1].err)

	var out bytes.Buffer
	failed := printLines(&out, lines)
	require.Equal(t, 1, failed)
	require.Contains(t, out.String(), "VERIFIED")
	require.Contains(t, out.String(), "ADA OBI (1 attempts)")
	require.Contains(t, out.String(), "NIN_NOT_FOUND")
	require.NotContains(t, out.String(), "12345678901")
}

func TestVerifyAll_Cancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	v := mockverification.NewMockVerifier(ctrl)
	ctx, cancel := context.WithCancel(context.Background())

	v.EXPECT().Verify(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, string) (*verification.Result, error) {
			cancel()

			return nil, context.Canceled
		}).MinTimes(1)

	_, err := verifyAll(ctx, v, []string{"1", "2", "3"}, 1)
	require.ErrorIs(t, err, context.Canceled)
}
