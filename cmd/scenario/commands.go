package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/vitos/crypto_scenario/internal/domain"
	"github.com/vitos/crypto_scenario/internal/scenario"
	"github.com/vitos/crypto_scenario/internal/usecase"
	"go.uber.org/zap"
)

func newResolveCmd() *cobra.Command {
	var (
		input  domain.IndicatorState
		lang   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a scenario from indicator selections",
		Example: `  scenario resolve --price-action uptrend --cvd increasing --oi increasing
  scenario resolve --price-action range --cvd flat --oi flat --volume low --lang he`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := usecase.NewAnalysisService(usecase.DefaultResolver(), nil, nil, usecase.AnalysisConfig{}, zap.L())
			result, err := svc.Analyze(context.Background(), input, domain.Locale(lang))
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			printScenario(cmd.OutOrStdout(), result.Scenario, result.VolumeInsight)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar((*string)(&input.PriceAction), "price-action", "", "uptrend | downtrend | range | breakout")
	f.StringVar((*string)(&input.CVD), "cvd", "", "increasing | decreasing | flat | divergence")
	f.StringVar((*string)(&input.OpenInterest), "oi", "", "increasing | decreasing | flat")
	f.StringVar((*string)(&input.FundingRate), "funding", "", "positive | neutral | negative (recorded, not used for the lookup)")
	f.StringVar((*string)(&input.Volume), "volume", "", "high | normal | low")
	f.StringVar(&lang, "lang", "en", "en | he")
	f.BoolVar(&asJSON, "json", false, "print JSON")
	cmd.MarkFlagRequired("price-action")
	cmd.MarkFlagRequired("cvd")
	cmd.MarkFlagRequired("oi")

	return cmd
}

func newListCmd() *cobra.Command {
	var (
		lang   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			locale := domain.Locale(lang)
			if !locale.Valid() {
				return fmt.Errorf("%w: %q", usecase.ErrUnsupportedLocale, lang)
			}
			scenarios := usecase.DefaultResolver().Scenarios(locale)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), scenarios)
			}
			for _, s := range scenarios {
				fmt.Fprintf(cmd.OutOrStdout(), "%2d  %-26s  %-8s  %s\n", s.Number, s.Key, s.Type, s.Name)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&lang, "lang", "en", "en | he")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the scenario table for completeness",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := scenario.Validate(); err != nil {
				return fmt.Errorf("scenario table invalid:\n%w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OK: %d scenarios x %d locales\n",
				len(scenario.Entries()), len(domain.AllLocales()))
			return nil
		},
	}
}

func printScenario(w io.Writer, s domain.Scenario, insight string) {
	fmt.Fprintf(w, "#%d %s [%s]\n\n", s.Number, s.Name, s.Type)
	fmt.Fprintf(w, "Market:      %s\n", s.MarketInterpretation)
	fmt.Fprintf(w, "Smart money: %s\n", s.SmartMoney)
	fmt.Fprintf(w, "Retail:      %s\n", s.Retail)
	fmt.Fprintf(w, "Action:      %s\n", s.Recommendation)
	if insight != "" {
		fmt.Fprintf(w, "Volume:      %s\n", insight)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
