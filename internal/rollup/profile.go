// internal/rollup/profile.go
package rollup

import (
	"errors"
	"fmt"
	"strings"
)

// ProfileKey identifies a rollup cost profile
type ProfileKey string

const (
	// ProfileAztec models a privacy-preserving zk rollup
	ProfileAztec ProfileKey = "aztec"
	// ProfileZama models an FHE + rollup hybrid
	ProfileZama ProfileKey = "zama"
	// ProfileSoundness models a soundness-first research rollup
	ProfileSoundness ProfileKey = "soundness"
	// ProfileCustom is built entirely from caller-supplied parameters
	ProfileCustom ProfileKey = "custom"
)

var (
	ErrUnknownProfile     = errors.New("unknown profile")
	ErrMissingCustomField = errors.New("missing custom profile parameters")
)

// Profile is an immutable set of cost parameters for one rollup design.
type Profile struct {
	Key         ProfileKey
	Name        string
	Description string

	// BatchSize is the number of transactions grouped per batch, >= 1.
	BatchSize uint64
	// ProofGasPerBatch is the fixed proof verification cost per batch.
	ProofGasPerBatch uint64
	// CalldataGasPerTx is the data cost charged per transaction.
	CalldataGasPerTx uint64
	// OverheadGasPerBatch is the per-batch bookkeeping cost.
	OverheadGasPerBatch uint64
	// GasPriceGwei prices one unit of gas, may be fractional.
	GasPriceGwei float64
}

const (
	// DefaultBatchSize matches the historical CLI default of 256 tx per batch.
	DefaultBatchSize uint64 = 256
	// DefaultGasPriceGwei matches the historical CLI default of 20 gwei.
	DefaultGasPriceGwei float64 = 20.0
)

// profileOrder fixes the presentation order of the built-in catalog.
var profileOrder = []ProfileKey{ProfileAztec, ProfileZama, ProfileSoundness}

// profiles is the built-in catalog. Constructed once, read-only afterwards.
var profiles = map[ProfileKey]Profile{
	ProfileAztec: {
		Key:  ProfileAztec,
		Name: "Aztec-style zk rollup",
		Description: "Privacy-preserving zk rollup with relatively expensive proofs " +
			"but efficient calldata packing.",
		BatchSize:           DefaultBatchSize,
		ProofGasPerBatch:    900_000,
		CalldataGasPerTx:    320,
		OverheadGasPerBatch: 60_000,
		GasPriceGwei:        DefaultGasPriceGwei,
	},
	ProfileZama: {
		Key:  ProfileZama,
		Name: "Zama-style FHE + rollup hybrid",
		Description: "Conceptual profile for a system combining fully homomorphic " +
			"encryption with rollup-style batching. Proofs are cheaper but " +
			"ciphertexts are larger.",
		BatchSize:           DefaultBatchSize,
		ProofGasPerBatch:    500_000,
		CalldataGasPerTx:    700,
		OverheadGasPerBatch: 70_000,
		GasPriceGwei:        DefaultGasPriceGwei,
	},
	ProfileSoundness: {
		Key:  ProfileSoundness,
		Name: "Soundness-first research rollup",
		Description: "Profile that prioritizes simple, auditable circuits and extra " +
			"safety margins over raw gas efficiency.",
		BatchSize:           DefaultBatchSize,
		ProofGasPerBatch:    650_000,
		CalldataGasPerTx:    420,
		OverheadGasPerBatch: 90_000,
		GasPriceGwei:        DefaultGasPriceGwei,
	},
}

// Overrides carries caller-supplied parameter values. A nil field means the
// caller did not provide that value; explicit zeros therefore stay
// distinguishable from absence, which the custom profile depends on.
type Overrides struct {
	BatchSize           *uint64
	GasPriceGwei        *float64
	ProofGasPerBatch    *uint64
	CalldataGasPerTx    *uint64
	OverheadGasPerBatch *uint64
}

// customFieldOrder fixes the reporting order for missing custom parameters.
var customFieldOrder = []string{
	"batch-size",
	"gas-price-gwei",
	"proof-gas",
	"calldata-gas-per-tx",
	"overhead-gas-per-batch",
}

// ValidKeys returns the accepted profile keys, built-ins first.
func ValidKeys() []ProfileKey {
	keys := make([]ProfileKey, 0, len(profileOrder)+1)
	keys = append(keys, profileOrder...)
	return append(keys, ProfileCustom)
}

// ListProfiles returns the built-in catalog in presentation order. It never
// includes the custom profile and performs no estimation.
func ListProfiles() []Profile {
	out := make([]Profile, 0, len(profileOrder))
	for _, key := range profileOrder {
		out = append(out, profiles[key])
	}
	return out
}

// Resolve maps a profile key and caller overrides to a concrete Profile.
//
// Built-in keys return the catalog constant with batch-size and gas-price
// overrides applied; the gas-parameter overrides are ignored for built-ins.
// The custom key requires every parameter explicitly, including zeros.
func Resolve(key ProfileKey, ov Overrides) (Profile, error) {
	if key == ProfileCustom {
		return resolveCustom(ov)
	}

	p, ok := profiles[key]
	if !ok {
		return Profile{}, fmt.Errorf("%w %q (valid: %s)", ErrUnknownProfile, key, joinKeys(ValidKeys()))
	}

	if ov.BatchSize != nil {
		p.BatchSize = *ov.BatchSize
	}
	if ov.GasPriceGwei != nil {
		p.GasPriceGwei = *ov.GasPriceGwei
	}
	return p, nil
}

func resolveCustom(ov Overrides) (Profile, error) {
	present := map[string]bool{
		"batch-size":             ov.BatchSize != nil,
		"gas-price-gwei":         ov.GasPriceGwei != nil,
		"proof-gas":              ov.ProofGasPerBatch != nil,
		"calldata-gas-per-tx":    ov.CalldataGasPerTx != nil,
		"overhead-gas-per-batch": ov.OverheadGasPerBatch != nil,
	}

	var missing []string
	for _, field := range customFieldOrder {
		if !present[field] {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return Profile{}, fmt.Errorf("%w: %s", ErrMissingCustomField, strings.Join(missing, ", "))
	}

	return Profile{
		Key:                 ProfileCustom,
		Name:                "Custom rollup profile",
		Description:         "User-defined gas parameters for a hypothetical rollup.",
		BatchSize:           *ov.BatchSize,
		GasPriceGwei:        *ov.GasPriceGwei,
		ProofGasPerBatch:    *ov.ProofGasPerBatch,
		CalldataGasPerTx:    *ov.CalldataGasPerTx,
		OverheadGasPerBatch: *ov.OverheadGasPerBatch,
	}, nil
}

func joinKeys(keys []ProfileKey) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = string(k)
	}
	return strings.Join(parts, ", ")
}
