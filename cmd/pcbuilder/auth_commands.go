package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pcbuilder/internal/models"
	"pcbuilder/pkg/client"
)

func newAuthCommands(ctx *commandContext) []*cobra.Command {
	return []*cobra.Command{
		newRegisterCommand(ctx),
		newLoginCommand(ctx),
		newLogoutCommand(ctx),
		newWhoamiCommand(ctx),
	}
}

func newRegisterCommand(ctx *commandContext) *cobra.Command {
	var name, email, password string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := passwordFromFlagOrPrompt(cmd, password)
			if err != nil {
				return err
			}
			return ctx.withClient(func(api *client.Client) error {
				user, err := api.Register(cmd.Context(), name, email, pw)
				if err != nil {
					return err
				}
				return printProfile(cmd, ctx, "Registered and logged in", user)
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Display name (3-50 characters)")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newLoginCommand(ctx *commandContext) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := passwordFromFlagOrPrompt(cmd, password)
			if err != nil {
				return err
			}
			return ctx.withClient(func(api *client.Client) error {
				user, err := api.Login(cmd.Context(), email, pw)
				if err != nil {
					return err
				}
				return printProfile(cmd, ctx, "Logged in", user)
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newLogoutCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(api *client.Client) error {
				if err := api.Logout(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
				return nil
			})
		},
	}
}

func newWhoamiCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(api *client.Client) error {
				s := api.Session()
				if s == nil {
					return client.ErrNotLoggedIn
				}
				return printProfile(cmd, ctx, "", &s.User)
			})
		},
	}
}

func newProfileCommand(ctx *commandContext) *cobra.Command {
	profile := &cobra.Command{
		Use:   "profile",
		Short: "Manage your account",
	}

	var name string
	update := &cobra.Command{
		Use:   "update",
		Short: "Change your display name",
		RunE: func(cmd *cobra.Command, args []string) error {
			var namePtr *string
			if cmd.Flags().Changed("name") {
				namePtr = &name
			}
			return ctx.withClient(func(api *client.Client) error {
				user, err := api.UpdateProfile(cmd.Context(), namePtr)
				if err != nil {
					return err
				}
				return printProfile(cmd, ctx, "Profile updated", user)
			})
		},
	}
	update.Flags().StringVar(&name, "name", "", "New display name")

	var confirm bool
	remove := &cobra.Command{
		Use:   "delete",
		Short: "Delete your account and all saved builds",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm {
				return errors.New("refusing to delete the account without --yes")
			}
			return ctx.withClient(func(api *client.Client) error {
				if err := api.DeleteAccount(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Account deleted")
				return nil
			})
		},
	}
	remove.Flags().BoolVar(&confirm, "yes", false, "Confirm the deletion")

	profile.AddCommand(update, remove)
	return profile
}

func printProfile(cmd *cobra.Command, ctx *commandContext, headline string, user *models.UserProfile) error {
	if ctx.jsonOutput() {
		return writeJSON(cmd, user)
	}
	out := cmd.OutOrStdout()
	if headline != "" {
		fmt.Fprintln(out, paint(shouldColorize(out), ansiGreen, headline))
	}
	role := "user"
	if user.IsAdmin {
		role = "admin"
	}
	fmt.Fprintln(out, renderTable(
		textCols("ID", "Name", "Email", "Role"),
		[][]string{{user.ID, user.Name, user.Email, role}},
	))
	return nil
}

func passwordFromFlagOrPrompt(cmd *cobra.Command, flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read password: %w", err)
	}
	pw := strings.TrimRight(line, "\r\n")
	if pw == "" {
		return "", errors.New("password is required")
	}
	return pw, nil
}
