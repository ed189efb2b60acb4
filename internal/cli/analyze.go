package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/juggajay/siteproof-v2-sub000/internal/analysis"
	"github.com/juggajay/siteproof-v2-sub000/internal/rpc"
)

// NewAnalyzeCmd groups the structured analysis subcommands.
func NewAnalyzeCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run a structured analysis against the daemon",
	}
	cmd.AddCommand(newComplianceCmd(opts))
	cmd.AddCommand(newWeatherCmd(opts))
	cmd.AddCommand(newScheduleCmd(opts))
	return cmd
}

func newComplianceCmd(opts *Options) *cobra.Command {
	var in analysis.InspectionInput

	cmd := &cobra.Command{
		Use:   "compliance",
		Short: "Check an inspection for compaction compliance",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			var resp rpc.ComplianceResponse
			url := daemonURL(cfg.Server.Addr) + "/v1/analysis/compliance"
			if err := postJSON(cmd.Context(), url, in, &resp); err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}

	cmd.Flags().StringVar(&in.WorkType, "work-type", "", "Work type (earthworks, concrete, ...)")
	cmd.Flags().StringVar(&in.Material, "material", "", "Material (clay, sand, silt)")
	cmd.Flags().StringVar(&in.ProjectID, "project", "", "Project identifier")
	cmd.Flags().StringVar(&in.LotID, "lot", "", "Lot identifier")
	cmd.Flags().Float64Var(&in.DryDensity, "dry-density", 0, "Achieved dry density (kN/m3)")
	cmd.Flags().Float64Var(&in.MaxDryDensity, "max-dry-density", 0, "Maximum dry density (kN/m3)")
	cmd.Flags().Float64Var(&in.RequiredPercentage, "required", 0, "Required compaction percentage")
	cmd.Flags().IntVar(&in.SupervisionLevel, "supervision-level", 0, "AS 3798 supervision level (1-3)")
	cmd.Flags().Float64Var(&in.RainfallMM, "rainfall", 0, "Recent rainfall (mm)")
	cmd.Flags().IntVar(&in.DaysSinceRain, "days-since-rain", 0, "Days since last rain")
	cmd.Flags().StringVar(&in.Notes, "notes", "", "Free-form inspection notes")
	_ = cmd.MarkFlagRequired("work-type")
	return cmd
}

func newWeatherCmd(opts *Options) *cobra.Command {
	var in analysis.WeatherInput

	cmd := &cobra.Command{
		Use:   "weather",
		Short: "Assess weather risk for planned work",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			var resp rpc.WeatherResponse
			url := daemonURL(cfg.Server.Addr) + "/v1/analysis/weather"
			if err := postJSON(cmd.Context(), url, in, &resp); err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}

	cmd.Flags().StringVar(&in.WorkType, "work-type", "", "Work type (earthworks, concrete, ...)")
	cmd.Flags().StringVar(&in.Material, "material", "", "Material (clay, sand, silt)")
	cmd.Flags().Float64Var(&in.RainfallMM, "rainfall", 0, "Recent rainfall (mm)")
	cmd.Flags().IntVar(&in.DaysSinceRain, "days-since-rain", 0, "Days since last rain")
	cmd.Flags().Float64Var(&in.TemperatureC, "temperature", 0, "Forecast temperature (C)")
	cmd.Flags().Float64Var(&in.WindKmh, "wind", 0, "Forecast wind speed (km/h)")
	cmd.Flags().StringVar(&in.ForecastNotes, "forecast", "", "Free-form forecast notes")
	_ = cmd.MarkFlagRequired("work-type")
	return cmd
}

func newScheduleCmd(opts *Options) *cobra.Command {
	var in analysis.ScheduleInput

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Predict a council approval timeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			var resp rpc.ScheduleResponse
			url := daemonURL(cfg.Server.Addr) + "/v1/analysis/schedule"
			if err := postJSON(cmd.Context(), url, in, &resp); err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}

	cmd.Flags().StringVar(&in.Council, "council", "", "Council name (e.g. \"Georges River\")")
	cmd.Flags().StringVar(&in.ProjectType, "project-type", "", "Development type")
	cmd.Flags().IntVar(&in.TargetStartDays, "target-start", 0, "Target start in days from lodgement")
	cmd.Flags().StringVar(&in.Notes, "notes", "", "Free-form notes")
	_ = cmd.MarkFlagRequired("council")
	return cmd
}

func postJSON(ctx context.Context, url string, body, out interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var envelope rpc.ErrorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&envelope); decodeErr == nil && envelope.Error != "" {
			return fmt.Errorf("daemon returned status %d: %s", resp.StatusCode, envelope.Error)
		}
		return fmt.Errorf("daemon returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
