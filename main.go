package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"burner/calculator"
	"burner/model"
	"burner/server"
)

const (
	defaultFuel      = "CH4=100"
	defaultExcessAir = 20.0
	defaultFuelFlow  = 100.0
	defaultFuelTemp  = 25.0
	defaultAirTemp   = 25.0
	defaultStackTemp = 150.0
	defaultPressure  = 1.013
)

var (
	configPath string
	serveAddr  string

	fuelSpec  string
	excessAir float64
	fuelFlow  float64
	fuelTemp  float64
	airTemp   float64
	stackTemp float64
	pressure  float64

	sweepFrom float64
	sweepTo   float64
	sweepStep float64
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "burner",
		Short:         "Combustion, thermodynamics and heat transfer analysis",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "conf/config.ini", "path to config file")
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newEvalCmd())
	rootCmd.AddCommand(newSweepCmd())
	return rootCmd
}

func loadConfig() calculator.Config {
	cfg, err := calculator.LoadConfig(configPath)
	if err != nil {
		log.WithError(err).Warn("using default configuration")
	}
	return cfg
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the REST and websocket API",
		Args:  cobra.NoArgs,
		RunE:  runServeCmd,
	}
	cmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
	return cmd
}

func runServeCmd(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	addr := cfg.Addr
	if serveAddr != "" {
		addr = serveAddr
	}
	s := server.New(addr, calculator.New(cfg))
	return s.Serve()
}

func addConditionFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&fuelSpec, "fuel", defaultFuel, "fuel composition, e.g. CH4=90,C2H6=6,C3H8=4")
	cmd.Flags().Float64Var(&excessAir, "excess-air", defaultExcessAir, "excess air percent")
	cmd.Flags().Float64Var(&fuelFlow, "fuel-flow", defaultFuelFlow, "fuel flow, kg/h")
	cmd.Flags().Float64Var(&fuelTemp, "fuel-temp", defaultFuelTemp, "fuel temperature, C")
	cmd.Flags().Float64Var(&airTemp, "air-temp", defaultAirTemp, "air temperature, C")
	cmd.Flags().Float64Var(&stackTemp, "stack-temp", defaultStackTemp, "stack temperature, C")
	cmd.Flags().Float64Var(&pressure, "pressure", defaultPressure, "pressure, bar")
}

func conditionsFromFlags() model.OperatingConditions {
	return model.OperatingConditions{
		ExcessAirPercent:  excessAir,
		FuelFlowKgPerHour: fuelFlow,
		FuelTempC:         fuelTemp,
		AirTempC:          airTemp,
		StackTempC:        stackTemp,
		PressureBar:       pressure,
	}
}

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Run one evaluation and print the report as JSON",
		Args:  cobra.NoArgs,
		RunE:  runEvalCmd,
	}
	addConditionFlags(cmd)
	return cmd
}

func runEvalCmd(cmd *cobra.Command, _ []string) error {
	comp, err := parseFuel(fuelSpec)
	if err != nil {
		return err
	}
	cond := conditionsFromFlags()
	if err := cond.Validate(); err != nil {
		return err
	}
	report, err := calculator.New(loadConfig()).Evaluate(comp, cond)
	if err != nil {
		return err
	}
	return printJSON(cmd, report)
}

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Sweep excess air and print the results as JSON",
		Args:  cobra.NoArgs,
		RunE:  runSweepCmd,
	}
	addConditionFlags(cmd)
	cmd.Flags().Float64Var(&sweepFrom, "from", 0, "excess air start, percent")
	cmd.Flags().Float64Var(&sweepTo, "to", 50, "excess air end, percent")
	cmd.Flags().Float64Var(&sweepStep, "step", 5, "excess air step, percent")
	return cmd
}

func runSweepCmd(cmd *cobra.Command, _ []string) error {
	comp, err := parseFuel(fuelSpec)
	if err != nil {
		return err
	}
	cond := conditionsFromFlags()
	if err := cond.Validate(); err != nil {
		return err
	}
	result, err := calculator.New(loadConfig()).Sweep(comp, cond, sweepFrom, sweepTo, sweepStep)
	if err != nil {
		return err
	}
	return printJSON(cmd, result)
}

// parseFuel turns "CH4=90,C2H6=6,C3H8=4" into a FuelComposition.
func parseFuel(spec string) (model.FuelComposition, error) {
	comp := model.FuelComposition{}
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("bad fuel component %q, expected SYMBOL=PERCENT", part)
		}
		pct, err := strconv.ParseFloat(strings.TrimSpace(kv[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("bad fuel percentage %q: %w", kv[1], err)
		}
		comp[strings.TrimSpace(kv[0])] = pct
	}
	if len(comp) == 0 {
		return nil, model.ErrEmptyComposition
	}
	return comp, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), string(data)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
