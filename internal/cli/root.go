// internal/cli/root.go
package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/rollup-cost-profiler/internal/logger"
	"github.com/rovshanmuradov/rollup-cost-profiler/internal/render"
	"github.com/rovshanmuradov/rollup-cost-profiler/internal/rollup"
)

// NewRootCommand builds the rollup-cost command.
//
// The flag surface is the whole configuration story: no config files and no
// environment variables are consulted, so flag values are bound into a
// private viper instance purely for typed access and defaults.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rollup-cost [tx-count]",
		Short: "Offline rollup gas and fee estimator",
		Long: "Offline rollup gas and fee estimator for Web3 projects inspired by\n" +
			"Aztec, Zama, and soundness-focused designs.",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}

	flags := cmd.Flags()
	flags.String("profile", string(rollup.ProfileAztec),
		fmt.Sprintf("cost profile to use (%s)", keysHelp()))
	flags.Uint64("batch-size", rollup.DefaultBatchSize,
		"number of transactions per batch (overrides the profile)")
	flags.Float64("gas-price-gwei", rollup.DefaultGasPriceGwei,
		"gas price in gwei (overrides the profile)")
	flags.Uint64("proof-gas", 0,
		"proof gas per batch (required with --profile custom, ignored otherwise)")
	flags.Uint64("calldata-gas-per-tx", 0,
		"calldata gas per transaction (required with --profile custom, ignored otherwise)")
	flags.Uint64("overhead-gas-per-batch", 0,
		"overhead gas per batch (required with --profile custom, ignored otherwise)")
	flags.Bool("json", false, "print machine-readable JSON instead of a human summary")
	flags.Bool("list-profiles", false, "list known profiles and exit")
	flags.Bool("compare", false, "estimate across all built-in profiles")
	flags.Bool("debug", false, "enable debug logging on stderr")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}

	log := logger.WithComponent(logger.New(v.GetBool("debug")), "cli")
	defer func() { _ = log.Sync() }()

	txCount, err := parseTxCount(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if v.GetBool("list-profiles") {
		log.Debug("Listing profile catalog")
		return render.WriteProfileList(out, rollup.ListProfiles())
	}

	ov, err := collectOverrides(flags, v)
	if err != nil {
		return err
	}

	if v.GetBool("compare") {
		return runCompare(cmd, v, txCount, ov, logger.WithOperation(log, "compare"))
	}

	// every estimate run carries one correlation id across its debug trail
	log = logger.WithOperation(log, "estimate")

	key := rollup.ProfileKey(v.GetString("profile"))
	profile, err := rollup.Resolve(key, ov)
	if err != nil {
		return err
	}
	log.Debug("Profile resolved",
		zap.String("profile", string(profile.Key)),
		zap.Uint64("batch_size", profile.BatchSize),
		zap.Float64("gas_price_gwei", profile.GasPriceGwei),
	)

	res, err := rollup.Estimate(txCount, profile)
	if err != nil {
		return err
	}
	log.Debug("Estimate computed",
		zap.Uint64("batches", res.Batches),
		zap.Uint64("total_gas", res.TotalGas),
		zap.Float64("total_fee_eth", res.TotalFeeEth),
	)

	if v.GetBool("json") {
		return render.WriteJSON(out, res)
	}
	return render.WriteReport(out, res)
}

func runCompare(cmd *cobra.Command, v *viper.Viper, txCount int64, ov rollup.Overrides, log *zap.Logger) error {
	catalog := rollup.ListProfiles()
	results := make([]rollup.Result, 0, len(catalog))
	for _, prof := range catalog {
		resolved, err := rollup.Resolve(prof.Key, ov)
		if err != nil {
			return err
		}
		res, err := rollup.Estimate(txCount, resolved)
		if err != nil {
			return err
		}
		results = append(results, res)
	}
	log.Debug("Comparison computed", zap.Int("profiles", len(results)))

	if v.GetBool("json") {
		return render.WriteJSONList(cmd.OutOrStdout(), results)
	}
	return render.WriteComparison(cmd.OutOrStdout(), txCount, results)
}

// parseTxCount validates the positional argument. It runs even when
// --list-profiles skips the estimate, so a malformed count always fails.
func parseTxCount(arg string) (int64, error) {
	n, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid tx-count %q: expected a positive integer", arg)
	}
	if n < 1 {
		return 0, fmt.Errorf("tx-count: %w (got %d)", rollup.ErrInvalidTxCount, n)
	}
	return n, nil
}

// collectOverrides turns explicitly set flags into resolver overrides.
// pflag's Changed keeps explicit zeros distinguishable from defaults, which
// the custom profile's required-field check depends on.
func collectOverrides(flags *pflag.FlagSet, v *viper.Viper) (rollup.Overrides, error) {
	var ov rollup.Overrides

	if flags.Changed("batch-size") {
		val := v.GetUint64("batch-size")
		ov.BatchSize = &val
	}
	if flags.Changed("gas-price-gwei") {
		val := v.GetFloat64("gas-price-gwei")
		if val < 0 {
			return rollup.Overrides{}, fmt.Errorf("gas-price-gwei must be non-negative, got %v", val)
		}
		ov.GasPriceGwei = &val
	}
	if flags.Changed("proof-gas") {
		val := v.GetUint64("proof-gas")
		ov.ProofGasPerBatch = &val
	}
	if flags.Changed("calldata-gas-per-tx") {
		val := v.GetUint64("calldata-gas-per-tx")
		ov.CalldataGasPerTx = &val
	}
	if flags.Changed("overhead-gas-per-batch") {
		val := v.GetUint64("overhead-gas-per-batch")
		ov.OverheadGasPerBatch = &val
	}

	return ov, nil
}

func keysHelp() string {
	keys := rollup.ValidKeys()
	out := ""
	for i, k := range keys {
		if i > 0 {
			out += "|"
		}
		out += string(k)
	}
	return out
}
