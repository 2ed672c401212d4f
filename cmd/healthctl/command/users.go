package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LuizaMunis/HealthCare-sub000/users"
)

var userEmail string

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage registered users",
}

var usersShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a registered user by email",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(showUser) },
}

func showUser(service users.Service) error {
	user, err := service.GetByEmail(context.TODO(), userEmail)
	if err != nil {
		return err
	}

	fmt.Printf("%d %s <%s> registered at %s\n", user.Id, user.FullName, user.Email, user.CreatedAt.Format("2006-01-02"))
	return nil
}

func init() {
	usersShowCmd.Flags().StringVar(&userEmail, "email", "", "Email of the user")
	_ = usersShowCmd.MarkFlagRequired("email")

	usersCmd.AddCommand(usersShowCmd)
	rootCmd.AddCommand(usersCmd)
}
