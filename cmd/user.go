package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dtroode/mycard-server/internal/model"
)

func newUserCmd() *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}
	userCmd.AddCommand(newUserCreateCmd())
	return userCmd
}

func newUserCreateCmd() *cobra.Command {
	var params model.RegisterParams

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user and its profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			user, err := a.auth.Register(cmd.Context(), params)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created user %s (%s)\n", user.ID, user.Email)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&params.Email, "email", "", "account email")
	flags.StringVar(&params.Password, "password", "", "account password, at least 8 characters")
	flags.StringVar(&params.Name, "name", "", "profile name")
	flags.StringVar(&params.Phone, "phone", "", "profile phone")
	flags.StringVar(&params.CodePhone, "code-phone", "", "profile phone country code")
	flags.StringVar(&params.Company, "company", "", "profile company")
	flags.StringVar(&params.Position, "position", "", "profile position")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
