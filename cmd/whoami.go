package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Resolve and print the authenticated user id",
	Args:  cobra.NoArgs,
	RunE:  runWhoami,
}

func runWhoami(cmd *cobra.Command, args []string) error {
	client, err := newAPIClient()
	if err != nil {
		return err
	}

	id, err := client.ResolveUserID(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("User ID: %d\n", id)
	return nil
}
