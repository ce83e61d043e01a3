package main

import (
	"fmt"

	"github.com/spf13/cobra"

	directorysvcs "github.com/ghuser/orderdesk/services/directory/application/services"
)

func userCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage directory users",
	}

	var in directorysvcs.CreateUserInput
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a user, typically the first Admin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, closeDB, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer closeDB()

			in.ConfirmPassword = in.Password
			u, err := directorysvcs.New(a).User.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created user %s (%s, %s)\n", u.ID, u.Email, u.RoleLabel())
			return nil
		},
	}
	create.Flags().StringVar(&in.Email, "email", "", "Email address (login)")
	create.Flags().StringVar(&in.FullName, "name", "", "Full name")
	create.Flags().StringVar(&in.Password, "password", "", "Password, 8-40 characters")
	create.Flags().StringVar(&in.Role, "role", "", "Admin, Accountant or Cashier (optional)")
	for _, f := range []string{"email", "name", "password"} {
		_ = create.MarkFlagRequired(f)
	}

	cmd.AddCommand(create)
	return cmd
}
