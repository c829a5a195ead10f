package main

import (
	"fmt"
	"strings"

	"github.com/ethanbaker/states-api/pkg/sdk"
	"github.com/spf13/cobra"
)

// attributes lists the single-field lookups supported by 'attr'
var attributes = []string{"capital", "nickname", "population", "admission"}

func newListCmd(opts *options) *cobra.Command {
	var contig string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all states",
		Long: `List prints every state in the catalog.

Use --contig true for the contiguous 48 or --contig false for Alaska and Hawaii.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter *bool
			switch contig {
			case "":
			case "true", "false":
				value := contig == "true"
				filter = &value
			default:
				return fmt.Errorf("invalid --contig value %q (expected true or false)", contig)
			}

			states, err := opts.client.ListStates(cmd.Context(), filter)
			if err != nil {
				return err
			}

			if opts.json {
				return printJSON(cmd, states)
			}

			for _, s := range states {
				line := fmt.Sprintf("%s  %s", s.Code, s.Name)
				if n := len(s.Funfacts); n > 0 {
					line += fmt.Sprintf(" (%d fun facts)", n)
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&contig, "contig", "", "filter by contiguity (true or false)")
	return cmd
}

func newGetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "get <code>",
		Short:   "Show a state and its fun facts",
		Example: "  statesctl get GA",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := opts.client.GetState(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if opts.json {
				return printJSON(cmd, state)
			}

			printState(cmd, state)
			return nil
		},
	}
}

func newFunFactCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "funfact <code>",
		Short: "Print a random fun fact for a state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fact, err := opts.client.GetRandomFunFact(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if opts.json {
				return printJSON(cmd, sdk.FunFactResponse{Funfact: fact})
			}

			fmt.Fprintln(cmd.OutOrStdout(), fact)
			return nil
		},
	}
}

func newAttrCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:       "attr <code> <" + strings.Join(attributes, "|") + ">",
		Short:     "Print a single attribute of a state",
		Example:   "  statesctl attr GA population",
		Args:      cobra.ExactArgs(2),
		ValidArgs: attributes,
		RunE: func(cmd *cobra.Command, args []string) error {
			code, attr := args[0], strings.ToLower(args[1])
			ctx := cmd.Context()

			var (
				out   any
				value string
				err   error
			)

			switch attr {
			case "capital":
				var resp *sdk.CapitalResponse
				if resp, err = opts.client.GetCapital(ctx, code); err == nil {
					out, value = resp, resp.Capital
				}
			case "nickname":
				var resp *sdk.NicknameResponse
				if resp, err = opts.client.GetNickname(ctx, code); err == nil {
					out, value = resp, resp.Nickname
				}
			case "population":
				var resp *sdk.PopulationResponse
				if resp, err = opts.client.GetPopulation(ctx, code); err == nil {
					out, value = resp, resp.Population
				}
			case "admission":
				var resp *sdk.AdmissionResponse
				if resp, err = opts.client.GetAdmission(ctx, code); err == nil {
					out, value = resp, resp.Admitted
				}
			default:
				return fmt.Errorf("unknown attribute %q (valid: %s)", args[1], strings.Join(attributes, ", "))
			}

			if err != nil {
				return err
			}

			if opts.json {
				return printJSON(cmd, out)
			}

			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}
