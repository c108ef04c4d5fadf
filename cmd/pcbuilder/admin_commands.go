package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pcbuilder/pkg/client"
)

func newAdminCommand(ctx *commandContext) *cobra.Command {
	admin := &cobra.Command{
		Use:   "admin",
		Short: "Administration (admin accounts only)",
	}

	users := &cobra.Command{
		Use:   "users",
		Short: "List every user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(api *client.Client) error {
				items, err := api.AdminUsers(cmd.Context())
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, items)
				}
				rows := make([][]string, 0, len(items))
				for _, u := range items {
					rows = append(rows, []string{u.ID, u.Name, u.Email, yesNo(u.IsAdmin), u.CreatedAt.Local().Format("2006-01-02")})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(textCols("ID", "Name", "Email", "Admin", "Joined"), rows))
				return nil
			})
		},
	}

	builds := &cobra.Command{
		Use:   "builds",
		Short: "List every build with its owner",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(api *client.Client) error {
				items, err := api.AdminBuilds(cmd.Context())
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, items)
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderBuildList(items, true))
				return nil
			})
		},
	}

	deleteUser := &cobra.Command{
		Use:   "delete-user <id>",
		Short: "Delete a user and all of their builds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(api *client.Client) error {
				if err := api.AdminDeleteUser(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "User and associated builds deleted")
				return nil
			})
		},
	}

	deleteBuild := &cobra.Command{
		Use:   "delete-build <id>",
		Short: "Delete any build",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(api *client.Client) error {
				if err := api.AdminDeleteBuild(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Build deleted")
				return nil
			})
		},
	}

	admin.AddCommand(users, builds, deleteUser, deleteBuild)
	return admin
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
