package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newAddCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "add <code> <fact>...",
		Short: "Add fun facts to a state",
		Long: `Add appends one or more fun facts to a state. Facts the state
already has are skipped.`,
		Example: `  statesctl add GA "Home of Coca-Cola" "Peach capital"`,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := opts.client.AddFunFacts(cmd.Context(), args[0], args[1:]...)
			if err != nil {
				return err
			}

			if opts.json {
				return printJSON(cmd, record)
			}

			printFacts(cmd, record.Funfacts)
			return nil
		},
	}
}

func newUpdateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "update <code> <index> <fact>",
		Short:   "Replace a fun fact by its 1-based index",
		Example: `  statesctl update GA 2 "Home of Coca-Cola"`,
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[1])
			if err != nil {
				return err
			}

			record, err := opts.client.UpdateFunFact(cmd.Context(), args[0], index, args[2])
			if err != nil {
				return err
			}

			if opts.json {
				return printJSON(cmd, record)
			}

			printFacts(cmd, record.Funfacts)
			return nil
		},
	}
}

func newDeleteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <code> <index>",
		Short:   "Remove a fun fact by its 1-based index",
		Example: "  statesctl delete GA 1",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[1])
			if err != nil {
				return err
			}

			record, err := opts.client.DeleteFunFact(cmd.Context(), args[0], index)
			if err != nil {
				return err
			}

			if opts.json {
				return printJSON(cmd, record)
			}

			printFacts(cmd, record.Funfacts)
			return nil
		},
	}
}

func parseIndex(raw string) (int, error) {
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q: must be a whole number", raw)
	}
	return index, nil
}
