package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Alturino/storefront/internal/config"
	"github.com/Alturino/storefront/internal/constants"
	"github.com/Alturino/storefront/internal/token"
)

func newTokenCommand() *cobra.Command {
	var subject string
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an admin token for the catalog reload endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := cmd.Context()
			cfg := config.InitConfig(c, constants.AppCatalogService)

			signed, err := token.NewToken(c, cfg.Application.SecretKey, subject, time.Now())
			if err != nil {
				return fmt.Errorf("failed minting token with error=%w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), signed)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "operator the token is issued to")
	cmd.MarkFlagRequired("subject")
	return cmd
}
