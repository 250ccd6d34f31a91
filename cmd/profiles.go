package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathcoach/internal/store"
	"github.com/abhisek/mathcoach/internal/tasks"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the demo coach and students",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, cfg, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		svc := tasks.FromStore(st, newLogger(cfg, nil, nil))
		seeded, err := svc.Seed(cmd.Context())
		if err != nil {
			return fmt.Errorf("seed profiles: %w", err)
		}
		printProfiles(seeded)
		return nil
	},
}

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, cfg, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		svc := tasks.FromStore(st, newLogger(cfg, nil, nil))
		list, err := svc.Profiles(cmd.Context())
		if err != nil {
			return fmt.Errorf("list profiles: %w", err)
		}
		if len(list) == 0 {
			fmt.Println("No profiles yet. Run `mathcoach seed` to create demo profiles.")
			return nil
		}
		printProfiles(list)
		return nil
	},
}

func printProfiles(list []store.Profile) {
	fmt.Printf("%-36s  %-16s  %-8s  %s\n", "ID", "Name", "Role", "Coach")
	fmt.Println(strings.Repeat("─", 100))
	for _, p := range list {
		fmt.Printf("%-36s  %-16s  %-8s  %s\n", p.ID, truncate(p.Name, 16), p.Role, p.CoachID)
	}
}
