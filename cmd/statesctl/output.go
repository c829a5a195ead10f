package main

import (
	"encoding/json"
	"fmt"

	"github.com/ethanbaker/states-api/pkg/sdk"
	"github.com/spf13/cobra"
)

func printJSON(cmd *cobra.Command, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(output))
	return nil
}

func printState(cmd *cobra.Command, state *sdk.State) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)\n", state.Name, state.Code)
	fmt.Fprintf(out, "Nickname:   %s\n", state.Nickname)
	fmt.Fprintf(out, "Capital:    %s\n", state.CapitalCity)
	fmt.Fprintf(out, "Population: %d\n", state.Population)
	fmt.Fprintf(out, "Admitted:   %s (#%d)\n", state.AdmissionDate, state.AdmissionNumber)

	if len(state.Funfacts) == 0 {
		return
	}

	fmt.Fprintln(out, "Fun facts:")
	printFacts(cmd, state.Funfacts)
}

// printFacts lists facts with the 1-based index used by update and delete
func printFacts(cmd *cobra.Command, facts []string) {
	if len(facts) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No fun facts")
		return
	}

	for i, fact := range facts {
		fmt.Fprintf(cmd.OutOrStdout(), "  %d. %s\n", i+1, fact)
	}
}
