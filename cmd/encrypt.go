package main

import (
	"context"
	"fmt"
	"idverify/internal/config"
	"idverify/pkg/encryption"
	"idverify/pkg/logger"

	"github.com/go-faster/jx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func encryptCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encrypt [value]",
		Short: "Encrypts an identity number with the configured key, or generates a new key",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			if gen, _ := cmd.Flags().GetBool("generate-key"); gen {
				key, err := encryption.GenerateKey()
				if err != nil {
					logger.Fatal(ctx, "could not generate key", zap.Error(err))
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), key)

				return
			}
			if len(args) == 0 {
				logger.Fatal(ctx, "a value to encrypt is required")
			}

			ev, err := getCipher(ctx, cfg).Encrypt(args[0])
			if err != nil {
				logger.Fatal(ctx, "could not encrypt value", zap.Error(err))
			}

			e := jx.GetEncoder()
			defer jx.PutEncoder(e)
			e.ObjStart()
			e.FieldStart("encrypted")
			e.Str(ev.Encrypted)
			e.FieldStart("iv")
			e.Str(ev.IV)
			e.ObjEnd()
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), e.String())
		},
	}

	cmd.Flags().Bool("generate-key", false, "print a new random 32 byte hex key and exit")

	return cmd
}
