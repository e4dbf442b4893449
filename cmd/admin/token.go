package main

import (
	"fmt"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"curriculo-api/internal/core/auth"
)

func newTokenCmd(e *env) *cobra.Command {
	var (
		subject string
		role    string
		ttl     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for the write endpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !slices.Contains(auth.WriterRoles, role) {
				return fmt.Errorf("role must be editor or admin, got %q", role)
			}
			j := &auth.JWTer{Secret: []byte(e.cfg.JWT.Secret), Issuer: e.cfg.JWT.Issuer, TTL: e.cfg.JWT.TTL()}
			if ttl > 0 {
				j.TTL = ttl
			}
			tok, err := j.Issue(subject, role)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "token subject (operator name)")
	cmd.Flags().StringVar(&role, "role", auth.RoleEditor, "editor or admin")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "override jwt.accessTokenTTLMin")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}
