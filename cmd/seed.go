/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/devfolio/apiserver/config"
	"github.com/devfolio/apiserver/internal/db"
	"github.com/devfolio/apiserver/internal/store"
	"github.com/devfolio/apiserver/types"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var (
	seedEmail    string
	seedPassword string
)

// seedCmd creates the administrator account. Admins are never created
// through the API.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create an administrator account",
	Long: `Creates an administrator account with a bcrypt-hashed password. Usage:

	portfolio seed --email admin@example.com --password secret
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		email := strings.TrimSpace(seedEmail)
		if email == "" {
			email = strings.TrimSpace(os.Getenv("ADMIN_EMAIL"))
		}
		password := seedPassword
		if password == "" {
			password = os.Getenv("ADMIN_PASSWORD")
		}
		if email == "" || password == "" {
			return errors.New("both --email and --password (or ADMIN_EMAIL/ADMIN_PASSWORD) are required")
		}

		cfg := config.LoadConfig()
		dbConn, err := db.Open(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer dbConn.Close()

		adminRepo := store.NewAdminRepository(dbConn)
		if _, err := adminRepo.GetByEmail(cmd.Context(), email); err == nil {
			return fmt.Errorf("administrator %s already exists", email)
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		admin, err := adminRepo.Create(cmd.Context(), types.Admin{
			Email:        email,
			PasswordHash: string(hashed),
		})
		if err != nil {
			return err
		}

		fmt.Printf("created administrator %s (id %d)\n", admin.Email, admin.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().StringVar(&seedEmail, "email", "", "administrator email")
	seedCmd.Flags().StringVar(&seedPassword, "password", "", "administrator password")
}
