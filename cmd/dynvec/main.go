package main

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"

	"github.com/san-kum/dynvec/internal/config"
	"github.com/san-kum/dynvec/internal/dynarray"
	"github.com/san-kum/dynvec/internal/scenario"
	"github.com/san-kum/dynvec/internal/tui"
	"github.com/san-kum/dynvec/internal/viz"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	preset  string
	caption string

	runElement    string
	renderElement string
	initPreset    string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// newRootCmd registers the dynvec commands. Flag defaults are reapplied on
// every call.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "dynvec",
		Short:         "dynamic array playground",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	runCmd := &cobra.Command{
		Use:   "run [scenario.yaml]",
		Short: "run a scenario file or preset",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScenario,
	}
	runCmd.Flags().StringVar(&preset, "preset", "", "run a built-in scenario")
	runCmd.Flags().StringVar(&runElement, "element", "", "element type (int|float), overrides the scenario")

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a preset scenario to a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE:  initScenario,
	}
	initCmd.Flags().StringVar(&initPreset, "preset", "subtract", "preset to write")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
			}
			return nil
		},
	}

	opsCmd := &cobra.Command{
		Use:   "ops",
		Short: "list scenario operations",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range scenario.Ops() {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
			}
			return nil
		},
	}

	renderCmd := &cobra.Command{
		Use:   "render [values...]",
		Short: "print the rendering of a literal array",
		RunE:  renderValues,
	}
	renderCmd.Flags().StringVar(&renderElement, "element", config.ElementInt, "element type (int|float)")

	plotCmd := &cobra.Command{
		Use:   "plot [values...]",
		Short: "plot a literal array",
		Args:  cobra.MinimumNArgs(1),
		RunE:  plotValues,
	}
	plotCmd.Flags().StringVar(&caption, "caption", "values", "plot caption")

	walkCmd := &cobra.Command{
		Use:   "walk [values...]",
		Short: "step a cursor through a literal array",
		RunE: func(cmd *cobra.Command, args []string) error {
			arr, err := parseArray[float64](args, parseFloat)
			if err != nil {
				return err
			}
			return tui.Run(arr)
		},
	}

	rootCmd.AddCommand(runCmd, initCmd, presetsCmd, opsCmd, renderCmd, plotCmd, walkCmd)
	return rootCmd
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func runScenario(cmd *cobra.Command, args []string) error {
	var cfg *config.Config
	switch {
	case len(args) == 1:
		loaded, err := config.Load(args[0])
		if err != nil {
			return fmt.Errorf("failed to load scenario: %w", err)
		}
		cfg = loaded
	case preset != "":
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	default:
		return fmt.Errorf("need a scenario file or --preset (available: %v)", config.ListPresets())
	}

	if cmd.Flags().Changed("element") {
		cfg.Element = runElement
	}

	res, err := scenario.New(cfg, newLogger()).Run(context.Background())
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), viz.RenderResult(res))
	return nil
}

func initScenario(cmd *cobra.Command, args []string) error {
	cfg := config.GetPreset(initPreset)
	if cfg == nil {
		return fmt.Errorf("unknown preset: %s (available: %v)", initPreset, config.ListPresets())
	}
	if err := config.Save(args[0], cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s scenario to %s\n", initPreset, args[0])
	return nil
}

func renderValues(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	switch renderElement {
	case config.ElementFloat:
		arr, err := parseArray[float64](args, parseFloat)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, viz.RenderArray(arr))
	case config.ElementInt:
		arr, err := parseArray[int64](args, parseInt)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, viz.RenderArray(arr))
	default:
		return fmt.Errorf("unknown element type: %s", renderElement)
	}
	return nil
}

func plotValues(cmd *cobra.Command, args []string) error {
	arr, err := parseArray[float64](args, parseFloat)
	if err != nil {
		return err
	}
	for i, v := range arr.All() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("cannot plot value %d: %v is not finite", i, v)
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), viz.Plot(arr, caption))
	fmt.Fprintln(cmd.OutOrStdout(), viz.RenderArray(arr))
	return nil
}

func parseFloat(s string) (float64, error) { return strconv.ParseFloat(s, 64) }

func parseInt(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) }

func parseArray[T any](args []string, parse func(string) (T, error)) (*dynarray.Array[T], error) {
	arr, err := dynarray.New[T](len(args))
	if err != nil {
		return nil, err
	}
	for i, s := range args {
		v, err := parse(s)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", s, err)
		}
		if err := arr.Set(i, v); err != nil {
			return nil, err
		}
	}
	return arr, nil
}
