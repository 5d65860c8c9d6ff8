package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List supported job roles and their required skills",
	RunE: func(cmd *cobra.Command, _ []string) error {
		config, err := getConfig(viper.GetViper())
		if err != nil {
			return err
		}

		cat, err := loadCatalog(config)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}

		out := cmd.OutOrStdout()
		for _, name := range cat.Roles() {
			role, _ := cat.Role(name)
			fmt.Fprintf(out, "%s: %s\n", role.Name, strings.Join(role.Skills, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rolesCmd)
}
