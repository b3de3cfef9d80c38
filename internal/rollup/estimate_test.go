package rollup

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func u64(v uint64) *uint64   { return &v }
func f64(v float64) *float64 { return &v }

// The worked scenario: 1000 tx, batch size 128, proof 900k, calldata 400,
// overhead 50k, 20 gwei.
func TestEstimateWorkedScenario(t *testing.T) {
	profile, err := Resolve(ProfileCustom, Overrides{
		BatchSize:           u64(128),
		GasPriceGwei:        f64(20),
		ProofGasPerBatch:    u64(900_000),
		CalldataGasPerTx:    u64(400),
		OverheadGasPerBatch: u64(50_000),
	})
	require.NoError(t, err)

	res, err := Estimate(1000, profile)
	require.NoError(t, err)

	assert.Equal(t, uint64(8), res.Batches)
	assert.Equal(t, uint64(7_200_000), res.TotalProofGas)
	assert.Equal(t, uint64(400_000), res.TotalOverheadGas)
	assert.Equal(t, uint64(400_000), res.TotalCalldataGas)
	assert.Equal(t, uint64(8_000_000), res.TotalGas)
	assert.InDelta(t, 8000.0, res.PerTxGas, 1e-9)
	assert.InDelta(t, 0.16, res.TotalFeeEth, 1e-12)
	assert.InDelta(t, 0.00016, res.PerTxFeeEth, 1e-15)
}

func TestEstimateSingleTransaction(t *testing.T) {
	for _, prof := range ListProfiles() {
		res, err := Estimate(1, prof)
		require.NoError(t, err, "profile %s", prof.Key)
		assert.Equal(t, uint64(1), res.Batches, "profile %s", prof.Key)
	}
}

func TestEstimateCeilBatches(t *testing.T) {
	tests := []struct {
		txCount   int64
		batchSize uint64
		want      uint64
	}{
		{1, 1, 1},
		{1, 256, 1},
		{255, 256, 1},
		{256, 256, 1},
		{257, 256, 2},
		{1000, 128, 8},
		{1024, 128, 8},
		{1025, 128, 9},
		{5, 1, 5},
	}

	for _, tt := range tests {
		prof := profiles[ProfileAztec]
		prof.BatchSize = tt.batchSize

		res, err := Estimate(tt.txCount, prof)
		require.NoError(t, err)
		assert.Equalf(t, tt.want, res.Batches, "ceil(%d/%d)", tt.txCount, tt.batchSize)
	}
}

// Total gas is exactly additive and the per-tx figures are exact divisions,
// for a spread of inputs across all built-in profiles.
func TestEstimateIdentities(t *testing.T) {
	txCounts := []int64{1, 7, 100, 999, 4096, 1_000_000}

	for _, prof := range ListProfiles() {
		for _, n := range txCounts {
			res, err := Estimate(n, prof)
			require.NoError(t, err)

			assert.Equal(t, res.TotalProofGas+res.TotalOverheadGas+res.TotalCalldataGas, res.TotalGas)
			assert.Equal(t, float64(res.TotalGas)/float64(n), res.PerTxGas)
			assert.Equal(t, res.TotalFeeEth/float64(n), res.PerTxFeeEth)
		}
	}
}

func TestEstimateMonotonicTxCount(t *testing.T) {
	prof := profiles[ProfileZama]

	var prev uint64
	for n := int64(1); n <= 2000; n += 37 {
		res, err := Estimate(n, prof)
		require.NoError(t, err)
		assert.GreaterOrEqualf(t, res.TotalGas, prev, "total gas dropped at txCount=%d", n)
		prev = res.TotalGas
	}
}

func TestEstimateMonotonicBatchSize(t *testing.T) {
	prev := uint64(1 << 62)
	for bs := uint64(1); bs <= 512; bs *= 2 {
		prof := profiles[ProfileSoundness]
		prof.BatchSize = bs

		res, err := Estimate(1000, prof)
		require.NoError(t, err)
		assert.LessOrEqualf(t, res.Batches, prev, "batches grew at batchSize=%d", bs)
		prev = res.Batches
	}
}

func TestEstimateDeterministic(t *testing.T) {
	prof := profiles[ProfileAztec]

	first, err := Estimate(12345, prof)
	require.NoError(t, err)
	second, err := Estimate(12345, prof)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEstimateInvalidTxCount(t *testing.T) {
	for _, n := range []int64{0, -1, -1000} {
		_, err := Estimate(n, profiles[ProfileAztec])
		assert.ErrorIsf(t, err, ErrInvalidTxCount, "txCount=%d", n)
	}
}

// Extreme custom parameters must fail loudly instead of wrapping uint64.
func TestEstimateGasOverflow(t *testing.T) {
	tests := []struct {
		name string
		prof Profile
	}{
		{
			name: "proof gas product wraps",
			prof: Profile{
				Key:              ProfileCustom,
				BatchSize:        1,
				ProofGasPerBatch: math.MaxUint64,
			},
		},
		{
			name: "calldata gas product wraps",
			prof: Profile{
				Key:              ProfileCustom,
				BatchSize:        256,
				CalldataGasPerTx: math.MaxUint64,
			},
		},
		{
			name: "gas sum wraps",
			prof: Profile{
				Key:                 ProfileCustom,
				BatchSize:           256,
				ProofGasPerBatch:    math.MaxUint64,
				OverheadGasPerBatch: 1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Estimate(2, tt.prof)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrGasOverflow)
		})
	}
}

// A batch size near the uint64 ceiling still yields exactly one batch.
func TestEstimateHugeBatchSize(t *testing.T) {
	prof := profiles[ProfileAztec]
	prof.BatchSize = math.MaxUint64

	res, err := Estimate(1000, prof)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), res.Batches)
}

func TestEstimateInvalidBatchSize(t *testing.T) {
	prof := profiles[ProfileAztec]
	prof.BatchSize = 0

	_, err := Estimate(10, prof)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidBatchSize))
}
