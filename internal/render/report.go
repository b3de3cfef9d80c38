// internal/render/report.go
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rovshanmuradov/rollup-cost-profiler/internal/rollup"
)

// Display precision, kept out of the computation path: fees are rounded here
// and nowhere else.
const (
	totalFeeFormat = "%.6f"
	perTxFeeFormat = "%.8f"
	perTxGasFormat = "%.2f"
)

// WriteJSON emits the estimate as an indented JSON payload.
func WriteJSON(w io.Writer, res rollup.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("failed to encode estimate: %w", err)
	}
	return nil
}

// WriteJSONList emits one payload per compared profile as a JSON array.
func WriteJSONList(w io.Writer, results []rollup.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("failed to encode comparison: %w", err)
	}
	return nil
}

// WriteReport emits the human-readable multi-section estimate report.
func WriteReport(w io.Writer, res rollup.Result) error {
	var err error
	p := func(format string, args ...interface{}) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, format+"\n", args...)
	}

	p("%s", TitleStyle.Render("🔍 Rollup cost estimate"))
	p("%s %s", LabelStyle.Render("Profile      :"),
		ValueStyle.Render(fmt.Sprintf("%s (%s)", res.ProfileName, res.Profile)))
	p("%s %s", LabelStyle.Render("Description  :"), MutedStyle.Render(res.Description))
	p("")
	p("%s %s", LabelStyle.Render("Transactions :"), ValueStyle.Render(fmt.Sprintf("%d", res.TxCount)))
	p("%s %s", LabelStyle.Render("Batch size   :"), ValueStyle.Render(fmt.Sprintf("%d", res.BatchSize)))
	p("%s %s", LabelStyle.Render("Batches      :"), ValueStyle.Render(fmt.Sprintf("%d", res.Batches)))
	p("%s %s", LabelStyle.Render("Gas price    :"), ValueStyle.Render(fmt.Sprintf("%.2f gwei", res.GasPriceGwei)))
	p("")
	p("%s", SectionStyle.Render("Gas breakdown (units of gas):"))
	p("  %s %s", LabelStyle.Render("Proof gas per batch      :"), ValueStyle.Render(fmt.Sprintf("%d", res.ProofGasPerBatch)))
	p("  %s %s", LabelStyle.Render("Overhead gas per batch   :"), ValueStyle.Render(fmt.Sprintf("%d", res.OverheadGasPerBatch)))
	p("  %s %s", LabelStyle.Render("Calldata gas per tx      :"), ValueStyle.Render(fmt.Sprintf("%d", res.CalldataGasPerTx)))
	p("")
	p("  %s %s", LabelStyle.Render("Total proof gas          :"), ValueStyle.Render(fmt.Sprintf("%d", res.TotalProofGas)))
	p("  %s %s", LabelStyle.Render("Total overhead gas       :"), ValueStyle.Render(fmt.Sprintf("%d", res.TotalOverheadGas)))
	p("  %s %s", LabelStyle.Render("Total calldata gas       :"), ValueStyle.Render(fmt.Sprintf("%d", res.TotalCalldataGas)))
	p("  %s %s", LabelStyle.Render("Total gas                :"), TotalStyle.Render(fmt.Sprintf("%d", res.TotalGas)))
	p("")
	p("%s", SectionStyle.Render("Cost estimate:"))
	p("  %s %s", LabelStyle.Render("Total fee   :"), TotalStyle.Render(fmt.Sprintf(totalFeeFormat+" ETH", res.TotalFeeEth)))
	p("  %s %s", LabelStyle.Render("Per tx fee  :"), ValueStyle.Render(fmt.Sprintf(perTxFeeFormat+" ETH", res.PerTxFeeEth)))
	p("  %s %s", LabelStyle.Render("Per tx gas  :"), ValueStyle.Render(fmt.Sprintf(perTxGasFormat+" gas", res.PerTxGas)))

	return err
}

// WriteProfileList emits the built-in profile catalog.
func WriteProfileList(w io.Writer, catalog []rollup.Profile) error {
	var err error
	p := func(format string, args ...interface{}) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, format+"\n", args...)
	}

	p("%s", TitleStyle.Render("Available profiles:"))
	for _, prof := range catalog {
		p("- %s: %s", ValueStyle.Render(string(prof.Key)), prof.Name)
		p("  %s", MutedStyle.Render(prof.Description))
	}
	p("")
	p("%s", MutedStyle.Render("Use --profile with one of the keys above, or 'custom' to provide your own parameters."))

	return err
}
