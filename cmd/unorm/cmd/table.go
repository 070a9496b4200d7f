package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lbryio/unorm/internal/log"
	"github.com/lbryio/unorm/ucd"
	"github.com/lbryio/unorm/ucd/ucdrepo"
)

func init() {
	rootCmd.AddCommand(tableCmd)

	tableCmd.AddCommand(tableBuildCmd)
	tableCmd.AddCommand(tableListCmd)
	tableCmd.AddCommand(tableShowCmd)
}

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Property table related commands",
}

var tableBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the property table from x/text and store it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {

		repo, err := ucdrepo.NewPebble(cfg.TableRepoPath())
		if err != nil {
			return fmt.Errorf("open table repo: %w", err)
		}
		defer repo.Close()

		t := ucd.FromXText()
		err = repo.Put(t)
		if err != nil {
			return fmt.Errorf("store table: %w", err)
		}
		log.UnrmLog.Infof("Stored property table %s in %s", t.Version(), cfg.TableRepoPath())

		size, err := repo.Size(t.Version())
		if err != nil {
			return fmt.Errorf("stat table: %w", err)
		}
		showTable(t, size)

		return nil
	},
}

var tableListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the stored property tables",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {

		repo, err := ucdrepo.NewPebble(cfg.TableRepoPath())
		if err != nil {
			return fmt.Errorf("open table repo: %w", err)
		}
		defer repo.Close()

		versions, err := repo.Versions()
		if err != nil {
			return fmt.Errorf("list tables: %w", err)
		}

		for _, version := range versions {
			t, err := repo.Get(version)
			if err != nil {
				return fmt.Errorf("load table %s: %w", version, err)
			}
			size, err := repo.Size(version)
			if err != nil {
				return fmt.Errorf("stat table %s: %w", version, err)
			}
			showTable(t, size)
		}

		return nil
	},
}

var tableShowCmd = &cobra.Command{
	Use:   "show <version> <U+XXXX> [<U+XXXX> ...]",
	Short: "Show the properties of code points in a stored table",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {

		repo, err := ucdrepo.NewPebble(cfg.TableRepoPath())
		if err != nil {
			return fmt.Errorf("open table repo: %w", err)
		}
		defer repo.Close()

		var t *ucd.Table
		if args[0] == "current" {
			t, err = ucd.Stored(repo)
		} else {
			t, err = repo.Get(args[0])
		}
		if err != nil {
			return fmt.Errorf("load table %s: %w", args[0], err)
		}

		for _, arg := range args[1:] {
			r, err := ucd.ParseCodepoint(arg)
			if err != nil {
				return fmt.Errorf("invalid args: %w", err)
			}
			showCodepoint(t, r)
		}

		return nil
	},
}
