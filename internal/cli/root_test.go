package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rovshanmuradov/rollup-cost-profiler/internal/rollup"
)

// execute runs the command with the given args and captures stdout/stderr
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestListProfiles(t *testing.T) {
	out, _, err := execute(t, "1", "--list-profiles")
	require.NoError(t, err)

	for _, key := range []string{"aztec", "zama", "soundness"} {
		assert.Contains(t, out, key)
	}
	// no estimate is performed
	assert.NotContains(t, out, "Cost estimate")
}

func TestListProfilesStillValidatesTxCount(t *testing.T) {
	_, _, err := execute(t, "0", "--list-profiles")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tx-count")

	_, _, err = execute(t, "many", "--list-profiles")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tx-count")
}

func TestJSONPayload(t *testing.T) {
	out, _, err := execute(t, "1000", "--json")
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &payload))

	expectedFields := []string{
		"profile", "profileName", "description",
		"txCount", "batchSize", "batches", "gasPriceGwei",
		"proofGasPerBatch", "calldataGasPerTx", "overheadGasPerBatch",
		"totalProofGas", "totalOverheadGas", "totalCalldataGas", "totalGas",
		"perTxGas", "totalFeeEth", "perTxFeeEth",
	}
	for _, field := range expectedFields {
		assert.Containsf(t, payload, field, "missing JSON field %q", field)
	}
	assert.Len(t, payload, len(expectedFields))

	// aztec defaults: 4 batches of 256, 900k proof + 60k overhead each,
	// 320 calldata per tx
	assert.Equal(t, "aztec", payload["profile"])
	assert.Equal(t, float64(4), payload["batches"])
	assert.Equal(t, float64(4*900_000+4*60_000+1000*320), payload["totalGas"])
}

func TestJSONDeterministic(t *testing.T) {
	first, _, err := execute(t, "777", "--profile", "zama", "--json")
	require.NoError(t, err)
	second, _, err := execute(t, "777", "--profile", "zama", "--json")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestHumanReport(t *testing.T) {
	out, _, err := execute(t, "1000",
		"--batch-size", "128", "--gas-price-gwei", "20")
	require.NoError(t, err)

	assert.Contains(t, out, "Rollup cost estimate")
	assert.Contains(t, out, "Aztec-style zk rollup")
	assert.Contains(t, out, "Gas breakdown")
	assert.Contains(t, out, "Cost estimate")
	// 8 batches * (900k proof + 60k overhead) + 1000 * 320 calldata
	assert.Contains(t, out, "8000000")
	assert.Contains(t, out, "0.160000 ETH")
}

func TestInvalidTxCount(t *testing.T) {
	for _, arg := range []string{"0", "-5", "12.5", "lots"} {
		_, _, err := execute(t, arg)
		require.Errorf(t, err, "tx-count %q accepted", arg)
		assert.Contains(t, err.Error(), "tx-count")
	}
}

func TestUnknownProfile(t *testing.T) {
	_, _, err := execute(t, "10", "--profile", "starknet")
	require.Error(t, err)
	assert.ErrorIs(t, err, rollup.ErrUnknownProfile)
	assert.Contains(t, err.Error(), "starknet")
}

func TestCustomProfileMissingProofGas(t *testing.T) {
	_, _, err := execute(t, "10",
		"--profile", "custom",
		"--batch-size", "4",
		"--gas-price-gwei", "1",
		"--calldata-gas-per-tx", "5",
		"--overhead-gas-per-batch", "7",
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, rollup.ErrMissingCustomField)
	assert.Contains(t, err.Error(), "proof-gas")
}

func TestCustomProfileWithZeros(t *testing.T) {
	out, _, err := execute(t, "10",
		"--profile", "custom",
		"--batch-size", "2",
		"--gas-price-gwei", "0",
		"--proof-gas", "0",
		"--calldata-gas-per-tx", "0",
		"--overhead-gas-per-batch", "0",
		"--json",
	)
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Equal(t, float64(0), payload["totalGas"])
	assert.Equal(t, float64(5), payload["batches"])
}

// Custom-only flags are accepted and ignored for built-in profiles.
func TestCustomFlagsIgnoredForBuiltins(t *testing.T) {
	out, _, err := execute(t, "256", "--proof-gas", "1", "--json")
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Equal(t, float64(900_000), payload["proofGasPerBatch"])
}

func TestMalformedFlagValue(t *testing.T) {
	_, _, err := execute(t, "10", "--batch-size", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "batch-size")
}

func TestExplicitZeroBatchSizeRejected(t *testing.T) {
	_, _, err := execute(t, "10", "--batch-size", "0")
	require.Error(t, err)
	assert.ErrorIs(t, err, rollup.ErrInvalidBatchSize)
}

func TestNegativeGasPriceRejected(t *testing.T) {
	_, _, err := execute(t, "10", "--gas-price-gwei=-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gas-price-gwei")
}

// The debug trail (component + operation correlation id) must not disturb
// stdout: the payload stays valid JSON with logging enabled.
func TestDebugLoggingKeepsStdoutClean(t *testing.T) {
	out, _, err := execute(t, "1000", "--json", "--debug")
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Equal(t, "aztec", payload["profile"])
}

func TestCompare(t *testing.T) {
	out, _, err := execute(t, "500", "--compare")
	require.NoError(t, err)

	for _, key := range []string{"aztec", "zama", "soundness"} {
		assert.Contains(t, out, key)
	}
	assert.Contains(t, out, "500 transactions")
}

func TestCompareJSON(t *testing.T) {
	out, _, err := execute(t, "500", "--compare", "--json")
	require.NoError(t, err)

	var payloads []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &payloads))
	require.Len(t, payloads, 3)
	assert.Equal(t, "aztec", payloads[0]["profile"])
}
