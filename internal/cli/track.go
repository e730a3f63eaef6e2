package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/aalvaropc/customs/internal/domain"
)

const separator = "--------"

func isKnownFormat(format string) bool {
	switch format {
	case "pretty", "", "json":
		return true
	default:
		return false
	}
}

func printResult(w io.Writer, res domain.TrackResult, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		// Events are emitted oldest first, matching the pretty output.
		payload := map[string]any{
			"lookup_id": res.LookupID,
			"query":     res.Query,
			"cargo":     res.Detail.Master,
			"events":    res.Detail.Chronological(),
		}
		return enc.Encode(payload)
	case "pretty", "":
		printDetail(w, res.Detail)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printDetail(w io.Writer, d domain.CargoDetail) {
	m := d.Master

	fmt.Fprintf(w, "M B/L - H B/L: %s - %s\n", m.MasterBL, m.HouseBL)
	fmt.Fprintf(w, "Cargo management number: %s\n", m.CargoManagementNo)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Cargo Liner: %s %s\n", m.CarrierName, m.CarrierCode)
	fmt.Fprintf(w, "Cargo unload date: %s\n", m.UnloadDate)
	fmt.Fprintf(w, "Cargo from: %s to %s\n", m.LoadPort, m.UnloadPort)
	fmt.Fprintf(w, "Cargo goes through %s\n", m.CustomsOffice)
	fmt.Fprintf(w, "Cargo name: %s\n", m.Description)
	fmt.Fprintf(w, "Cargo type: %s (%s)\n", m.TypeCode, m.TypeName)
	fmt.Fprintf(w, "Cargo count: %s %s\n", m.PieceCount, m.PackageUnit)
	fmt.Fprintf(w, "Cargo weight: %s %s\n", m.Weight, m.WeightUnit)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Current status: %s (%s)\n", m.StatusEn, m.Status)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Details")
	fmt.Fprintln(w, separator)

	for i, ev := range d.Chronological() {
		fmt.Fprintf(w, "Index: %d\n", i+1)
		fmt.Fprintf(w, "Date: %s\n", ev.ProcessedAt)
		fmt.Fprintf(w, "Progress: %s\n", ev.Progress)
		if ev.HasLocation() {
			fmt.Fprintf(w, "Current location: %s / %s\n", ev.Address, ev.Phone)
		}
		fmt.Fprintln(w, separator)
	}
}
