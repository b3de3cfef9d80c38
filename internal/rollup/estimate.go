// internal/rollup/estimate.go
package rollup

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTxCount   = errors.New("tx count must be a positive integer")
	ErrInvalidBatchSize = errors.New("batch size must be a positive integer")
	ErrGasOverflow      = errors.New("gas total overflows uint64")
)

// gweiToEth converts gas * gwei into ETH.
const gweiToEth = 1e-9

// Result is the full estimate breakdown. Field names mirror the JSON payload
// emitted by --json; gas quantities are exact integers, fee figures keep full
// float64 precision and are only rounded at display time.
type Result struct {
	Profile     ProfileKey `json:"profile"`
	ProfileName string     `json:"profileName"`
	Description string     `json:"description"`

	TxCount      int64   `json:"txCount"`
	BatchSize    uint64  `json:"batchSize"`
	Batches      uint64  `json:"batches"`
	GasPriceGwei float64 `json:"gasPriceGwei"`

	ProofGasPerBatch    uint64 `json:"proofGasPerBatch"`
	CalldataGasPerTx    uint64 `json:"calldataGasPerTx"`
	OverheadGasPerBatch uint64 `json:"overheadGasPerBatch"`

	TotalProofGas    uint64 `json:"totalProofGas"`
	TotalOverheadGas uint64 `json:"totalOverheadGas"`
	TotalCalldataGas uint64 `json:"totalCalldataGas"`
	TotalGas         uint64 `json:"totalGas"`

	PerTxGas    float64 `json:"perTxGas"`
	TotalFeeEth float64 `json:"totalFeeEth"`
	PerTxFeeEth float64 `json:"perTxFeeEth"`
}

// Estimate projects the gas and fee cost of batching txCount transactions
// under the given profile:
//
//	batches          = ceil(txCount / batchSize)
//	totalProofGas    = batches * proofGasPerBatch
//	totalOverheadGas = batches * overheadGasPerBatch
//	totalCalldataGas = txCount * calldataGasPerTx
//	totalFeeEth      = totalGas * gasPriceGwei * 1e-9
//
// Pure and deterministic: identical inputs produce bit-identical results.
func Estimate(txCount int64, p Profile) (Result, error) {
	if txCount < 1 {
		return Result{}, fmt.Errorf("%w, got %d", ErrInvalidTxCount, txCount)
	}
	if p.BatchSize < 1 {
		return Result{}, fmt.Errorf("%w, got %d", ErrInvalidBatchSize, p.BatchSize)
	}

	n := uint64(txCount)
	batches := n / p.BatchSize
	if n%p.BatchSize != 0 {
		batches++
	}

	totalProofGas, ok := mulGas(batches, p.ProofGasPerBatch)
	if !ok {
		return Result{}, fmt.Errorf("%w (proof gas)", ErrGasOverflow)
	}
	totalOverheadGas, ok := mulGas(batches, p.OverheadGasPerBatch)
	if !ok {
		return Result{}, fmt.Errorf("%w (overhead gas)", ErrGasOverflow)
	}
	totalCalldataGas, ok := mulGas(n, p.CalldataGasPerTx)
	if !ok {
		return Result{}, fmt.Errorf("%w (calldata gas)", ErrGasOverflow)
	}

	totalGas := totalProofGas + totalOverheadGas
	if totalGas < totalProofGas {
		return Result{}, fmt.Errorf("%w (gas sum)", ErrGasOverflow)
	}
	totalGas += totalCalldataGas
	if totalGas < totalCalldataGas {
		return Result{}, fmt.Errorf("%w (gas sum)", ErrGasOverflow)
	}

	totalFeeEth := float64(totalGas) * p.GasPriceGwei * gweiToEth

	return Result{
		Profile:     p.Key,
		ProfileName: p.Name,
		Description: p.Description,

		TxCount:      txCount,
		BatchSize:    p.BatchSize,
		Batches:      batches,
		GasPriceGwei: p.GasPriceGwei,

		ProofGasPerBatch:    p.ProofGasPerBatch,
		CalldataGasPerTx:    p.CalldataGasPerTx,
		OverheadGasPerBatch: p.OverheadGasPerBatch,

		TotalProofGas:    totalProofGas,
		TotalOverheadGas: totalOverheadGas,
		TotalCalldataGas: totalCalldataGas,
		TotalGas:         totalGas,

		PerTxGas:    float64(totalGas) / float64(n),
		TotalFeeEth: totalFeeEth,
		PerTxFeeEth: totalFeeEth / float64(n),
	}, nil
}

// mulGas multiplies two gas quantities, reporting failure instead of
// silently wrapping on extreme custom parameters.
func mulGas(a, b uint64) (uint64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	prod := a * b
	if prod/a != b {
		return 0, false
	}
	return prod, true
}
