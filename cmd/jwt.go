package main

import (
	"context"
	"fmt"
	"idverify/internal/config"
	"idverify/pkg/domain"
	"idverify/pkg/logger"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// JWTCommand prints an RS256 bearer token for the API. The subject must be
// the user ID recorded as the submitter of new entries.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generates a bearer token for the given user ID",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			subject, _ := cmd.Flags().GetString("subject")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			if _, err := domain.ParseUserID(subject); err != nil {
				logger.Fatal(ctx, "subject must be a user UUID", zap.String("subject", subject))
			}

			key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(cfg.JWT.PrivateKey))
			if err != nil {
				logger.Fatal(ctx, "could not parse RSA private key", zap.Error(err))
			}

			now := time.Now()
			token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
				Subject:   subject,
				ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
				IssuedAt:  jwt.NewNumericDate(now),
				NotBefore: jwt.NewNumericDate(now),
			})
			signed, err := token.SignedString(key)
			if err != nil {
				logger.Fatal(ctx, "could not sign JWT", zap.Error(err))
			}

			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().String("subject", "", "user ID the token is issued for")
	cmd.Flags().Duration("ttl", 24*time.Hour, "token lifetime (e.g. 30s, 15m, 1h)")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
