package main

import (
	"fmt"
	stdLog "log"
	"os"
	"time"

	"github.com/Astemirdum/library-management/library/app"
	"github.com/Astemirdum/library-management/library/config"
	"github.com/Astemirdum/library-management/pkg/auth"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "library",
		Short: "Library management service",
		PersistentPreRun: func(*cobra.Command, []string) {
			if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
				stdLog.Fatal("load envs from .env ", err)
			}
		},
		SilenceUsage: true,
	}
	root.AddCommand(newServeCmd(), newAuditCmd(), newTokenCmd())
	return root
}

func loadConfig() *config.Config {
	return config.NewConfig(
		config.WithLogLevel(zapcore.InfoLevel),
		config.WithWriteTimeout(time.Minute),
	)
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), loadConfig())
		},
	}
}

func newAuditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "Log loan events published to KAFKA_LOAN_TOPIC",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Audit(cmd.Context(), loadConfig())
		},
	}
}

// newTokenCmd signs a token without a password, for operators and scripts.
func newTokenCmd() *cobra.Command {
	var (
		subject string
		role    string
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token signed with JWT_SECRET",
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := auth.Role(role)
			if !r.Valid() {
				return fmt.Errorf("unknown role %q", role)
			}
			token, expiresAt, err := auth.NewTokenManager(loadConfig().Auth).Issue(subject, r)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			fmt.Fprintln(cmd.ErrOrStderr(), "expires at", expiresAt.Format(time.RFC3339))
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "admin", "username or student id")
	cmd.Flags().StringVar(&role, "role", string(auth.RoleAdmin), "admin, staff or student")
	return cmd
}
