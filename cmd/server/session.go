package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/talent-api/internal/errors"
	"github.com/KirkDiggler/talent-api/internal/repositories/session"
)

var (
	sessionToken string
	sessionUser  session.User
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage the saved session used for the rarity service",
	Long: `The saved session supplies the bearer token sent to the remote rarity
service. Sessions are kept in Redis, so redis.enabled must be set.`,
}

var sessionSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save a session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withSessionStore(cmd.Context(), func(ctx context.Context, store session.Store) error {
			sess := &session.Session{Token: sessionToken, User: sessionUser}
			if err := store.Save(ctx, sess); err != nil {
				return fmt.Errorf("failed to save session: %w", err)
			}
			fmt.Printf("Saved session for %s at %s\n", displayUser(sess.User), sess.SavedAt.Format(time.RFC3339))
			return nil
		})
	},
}

var sessionShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the saved session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withSessionStore(cmd.Context(), func(ctx context.Context, store session.Store) error {
			sess, err := store.Load(ctx)
			if errors.IsNotFound(err) {
				fmt.Println("No saved session")
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to load session: %w", err)
			}

			fmt.Printf("User:     %s\n", displayUser(sess.User))
			if len(sess.User.Roles) > 0 {
				fmt.Printf("Roles:    %s\n", strings.Join(sess.User.Roles, ", "))
			}
			fmt.Printf("Token:    %s\n", maskToken(sess.Token))
			fmt.Printf("Saved at: %s\n", sess.SavedAt.Format(time.RFC3339))
			return nil
		})
	},
}

var sessionClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the saved session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withSessionStore(cmd.Context(), func(ctx context.Context, store session.Store) error {
			if err := store.Clear(ctx); err != nil {
				return fmt.Errorf("failed to clear session: %w", err)
			}
			fmt.Println("Session cleared")
			return nil
		})
	},
}

func init() {
	sessionSaveCmd.Flags().StringVar(&sessionToken, "token", "", "bearer token")
	sessionSaveCmd.Flags().StringVar(&sessionUser.ID, "user-id", "", "user ID")
	sessionSaveCmd.Flags().StringVar(&sessionUser.Name, "user-name", "", "user display name")
	sessionSaveCmd.Flags().StringVar(&sessionUser.Email, "email", "", "user email")
	sessionSaveCmd.Flags().StringSliceVar(&sessionUser.Roles, "role", nil, "user role, repeatable")
	_ = sessionSaveCmd.MarkFlagRequired("token")

	sessionCmd.AddCommand(sessionSaveCmd, sessionShowCmd, sessionClearCmd)
}

func withSessionStore(ctx context.Context, fn func(context.Context, session.Store) error) error {
	if !cfg.Redis.Enabled {
		return errors.FailedPrecondition("session commands need redis.enabled")
	}

	_, store, client, err := newStores(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open session store: %w", err)
	}
	defer func() { _ = client.Close() }()

	return fn(ctx, store)
}

func displayUser(u session.User) string {
	switch {
	case u.Name != "" && u.Email != "":
		return fmt.Sprintf("%s <%s>", u.Name, u.Email)
	case u.Name != "":
		return u.Name
	case u.Email != "":
		return u.Email
	case u.ID != "":
		return u.ID
	default:
		return "anonymous"
	}
}

// maskToken keeps the last four characters
func maskToken(token string) string {
	if len(token) <= 4 {
		return strings.Repeat("*", len(token))
	}
	return strings.Repeat("*", len(token)-4) + token[len(token)-4:]
}
