package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/siamsupply/shop-api/internal/auth"
	"github.com/siamsupply/shop-api/internal/config"
	"github.com/spf13/cobra"
)

var (
	tokenRole    string
	tokenSubject string
	tokenName    string
	tokenTTL     time.Duration
)

// issueTokenCmd signs a token with the configured secret
var issueTokenCmd = &cobra.Command{
	Use:   "issue-token",
	Short: "Sign a JWT for local testing",
	Long: `Signs an HS256 token with JWT_SECRET. Customer tokens need the customer
ID as subject; admin tokens accept any subject.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := issueToken(&cfg.Auth, auth.Role(tokenRole), tokenSubject, tokenName, tokenTTL)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	issueTokenCmd.Flags().StringVar(&tokenRole, "role", string(auth.RoleAdmin), "Token role: admin or customer")
	issueTokenCmd.Flags().StringVar(&tokenSubject, "subject", "", "Token subject (customer ID for customer tokens)")
	issueTokenCmd.Flags().StringVar(&tokenName, "name", "", "Display name")
	issueTokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 8*time.Hour, "Token lifetime")
}

func issueToken(cfg *config.AuthConfig, role auth.Role, subject, name string, ttl time.Duration) (string, error) {
	if cfg.JWTSecret == "" {
		return "", fmt.Errorf("JWT_SECRET is not configured")
	}
	if ttl <= 0 {
		return "", fmt.Errorf("ttl must be positive")
	}

	switch role {
	case auth.RoleAdmin:
		if subject == "" {
			subject = "shopctl"
		}
	case auth.RoleCustomer:
		if _, err := uuid.Parse(subject); err != nil {
			return "", fmt.Errorf("customer tokens need a customer ID as --subject")
		}
	default:
		return "", fmt.Errorf("unknown role %q", role)
	}

	return auth.IssueToken(cfg, subject, name, role, ttl)
}
