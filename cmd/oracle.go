package cmd

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/socralabs/socra/ent"
	"github.com/socralabs/socra/internal/oracle"
	"github.com/socralabs/socra/internal/store"
	"github.com/spf13/cobra"
)

var oracleCmd = &cobra.Command{
	Use:   "oracle",
	Short: "Inspect oracle request/response events",
}

var oracleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent oracle events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryOracleEvents(context.Background(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if purpose != "" {
			events = slices.DeleteFunc(events, func(e *ent.OracleRequestEvent) bool {
				return e.Purpose != purpose
			})
		}
		if len(events) == 0 {
			fmt.Println("No oracle events found.")
			return nil
		}

		w := newTable()
		fmt.Fprintln(w, "ID\tWHEN\tPURPOSE\tMODEL\tIN\tOUT\tMS\tOK")
		for _, e := range events {
			ok := "yes"
			if !e.Success {
				ok = "FAIL"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
				e.ID,
				e.Timestamp.Local().Format("2006-01-02 15:04"),
				e.Purpose,
				clamp(e.Model, 32),
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				ok,
			)
		}
		return w.Flush()
	},
}

var oracleViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "View full request/response for an oracle event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("not a numeric event id: %q", args[0])
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		e, err := s.EventRepo().GetOracleEvent(context.Background(), id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("event %d not found", id)
		}

		w := newTable()
		fmt.Fprintf(w, "ID\t%d\n", e.ID)
		fmt.Fprintf(w, "When\t%s\n", e.Timestamp.Local().Format("2006-01-02 15:04:05"))
		fmt.Fprintf(w, "Provider\t%s\n", e.Provider)
		fmt.Fprintf(w, "Model\t%s\n", e.Model)
		fmt.Fprintf(w, "Purpose\t%s\n", e.Purpose)
		fmt.Fprintf(w, "Tokens\t%d in / %d out\n", e.InputTokens, e.OutputTokens)
		fmt.Fprintf(w, "Latency\t%dms\n", e.LatencyMs)
		fmt.Fprintf(w, "Success\t%v\n", e.Success)
		if e.ErrorMessage != "" {
			fmt.Fprintf(w, "Error\t%s\n", e.ErrorMessage)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		printPayload("REQUEST", e.RequestBody)
		printPayload("RESPONSE", e.ResponseBody)
		return nil
	},
}

var oracleStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated oracle token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		byPurpose, err := s.EventRepo().OracleUsageByPurpose(ctx)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		if len(byPurpose) == 0 {
			fmt.Println("No oracle usage recorded yet.")
			return nil
		}
		if err := printPurposeUsage(byPurpose); err != nil {
			return err
		}

		byModel, err := s.EventRepo().OracleUsageByModel(ctx)
		if err != nil {
			return fmt.Errorf("query model usage: %w", err)
		}
		if len(byModel) == 0 {
			return nil
		}
		fmt.Println()
		return printModelCosts(byModel)
	},
}

func printPurposeUsage(usage []store.PurposeUsage) error {
	fmt.Println("Usage by Purpose")
	w := newTable()
	fmt.Fprintln(w, "PURPOSE\tCALLS\tINPUT\tOUTPUT\tTOTAL\tAVG MS")

	var calls, in, out int
	for _, u := range usage {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\n",
			u.Purpose, u.Calls, u.InputTokens, u.OutputTokens,
			u.InputTokens+u.OutputTokens, u.AvgLatencyMs)
		calls += u.Calls
		in += u.InputTokens
		out += u.OutputTokens
	}
	fmt.Fprintf(w, "total\t%d\t%d\t%d\t%d\t\n", calls, in, out, in+out)
	return w.Flush()
}

func printModelCosts(usage []store.ModelUsage) error {
	fmt.Println("Estimated Cost (USD)")
	w := newTable()
	fmt.Fprintln(w, "MODEL\tCALLS\tINPUT\tOUTPUT\tCOST")

	var total float64
	var unpriced []string
	for _, u := range usage {
		cost := oracle.LookupCost(u.Model)
		if cost == nil {
			unpriced = append(unpriced, u.Model)
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\t?\n",
				clamp(u.Model, 32), u.Calls, u.InputTokens, u.OutputTokens)
			continue
		}
		c := cost.Cost(u.InputTokens, u.OutputTokens)
		total += c
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\n",
			clamp(u.Model, 32), u.Calls, u.InputTokens, u.OutputTokens, money(c))
	}

	label := "total"
	if len(unpriced) > 0 {
		label = "total (partial)"
	}
	fmt.Fprintf(w, "%s\t\t\t\t%s\n", label, money(total))
	if err := w.Flush(); err != nil {
		return err
	}

	if len(unpriced) > 0 {
		fmt.Printf("\nPricing unavailable for: %s\n", strings.Join(unpriced, ", "))
	}
	return nil
}

// printPayload prints a captured request or response body under a
// rule, or a placeholder when logging was off.
func printPayload(title, body string) {
	fmt.Println()
	fmt.Println(title)
	fmt.Println(strings.Repeat("─", 60))
	if body == "" {
		body = "(not captured)"
	}
	fmt.Println(body)
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

func clamp(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func money(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	oracleListCmd.Flags().IntP("limit", "n", 20, "Max events to list")
	oracleListCmd.Flags().StringP("purpose", "p", "", "Only show events with this purpose (ask, judge, compact)")

	oracleCmd.AddCommand(oracleListCmd)
	oracleCmd.AddCommand(oracleViewCmd)
	oracleCmd.AddCommand(oracleStatsCmd)
}
