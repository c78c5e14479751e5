package benchmark

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fxamacker/cbor/v2"

	"github.com/timed-go/timed/pkg/stats"
)

// Format identifies a report encoding.
type Format string

// Report formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatCBOR Format = "cbor"
	FormatCSV  Format = "csv"
	FormatPDF  Format = "pdf"
)

// Formats lists the supported report formats.
var Formats = []Format{FormatText, FormatJSON, FormatCBOR, FormatCSV, FormatPDF}

// ParseFormat returns the format named s.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == strings.ToLower(s) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %s (supported: text, json, cbor, csv, pdf)", ErrUnknownFormat, s)
}

// reportEncMode is the CBOR encoder mode for reports.
// Configured for deterministic encoding and nanosecond-precision timestamps.
var reportEncMode cbor.EncMode

func init() {
	var err error
	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
	}
	reportEncMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create report CBOR encoder mode: %v", err))
	}
}

// Encode writes the result to w in the given format.
func Encode(w io.Writer, r *Result, format Format) error {
	switch format {
	case FormatText:
		return WriteText(w, r)
	case FormatCSV:
		return writeCSV(w, r)
	case FormatJSON, FormatCBOR, FormatPDF:
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}

	report, err := r.Report()
	if err != nil {
		return err
	}
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case FormatCBOR:
		return reportEncMode.NewEncoder(w).Encode(report)
	default:
		return writePDF(w, report)
	}
}

// WriteText writes the fixed-layout text report.
func WriteText(w io.Writer, r *Result) error {
	report, err := r.Report()
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Benchmark: '%s'\n", report.Title)
	if report.Info != "" {
		fmt.Fprintf(&b, "Info: %s\n", report.Info)
	}
	fmt.Fprintf(&b, " Iterations: %d\n", report.Iterations)
	writeBlock(&b, "WallTime", report.Wall)
	writeBlock(&b, "CPUTime", report.CPU)

	_, err = io.WriteString(w, b.String())
	return err
}

func writeBlock(b *strings.Builder, name string, s stats.Summary) {
	fmt.Fprintf(b, " %s [ns]:\n", name)
	fmt.Fprintf(b, "  min:       %d\n", s.Min.Nanoseconds())
	fmt.Fprintf(b, "  max:       %d\n", s.Max.Nanoseconds())
	fmt.Fprintf(b, "  mean:      %d\n", s.Mean.Nanoseconds())
	fmt.Fprintf(b, "  SD:        %d\n", s.StdDev.Nanoseconds())
	fmt.Fprintf(b, "  median:    %d\n", s.Median.Nanoseconds())
	fmt.Fprintf(b, "  %%err:      %s\n", formatMAPE(s.MAPE))
}

// formatMAPE prints six significant digits, or n/a when undefined.
func formatMAPE(m *float64) string {
	if m == nil {
		return "n/a"
	}
	return strconv.FormatFloat(*m, 'g', 6, 64)
}

// writeCSV writes one row per iteration with raw and adjusted samples.
func writeCSV(w io.Writer, r *Result) error {
	cw := csv.NewWriter(w)

	header := []string{"run_id", "iteration", "wall_ns", "cpu_ns", "wall_adjusted_ns", "cpu_adjusted_ns"}
	if err := cw.Write(header); err != nil {
		return err
	}

	adjWall, adjCPU := r.AdjustedWallTimes(), r.AdjustedCPUTimes()
	for i := range r.WallTimes {
		var cpu, cpuAdj uint64
		if i < len(r.CPUTimes) {
			cpu, cpuAdj = r.CPUTimes[i].Nanoseconds(), adjCPU[i].Nanoseconds()
		}
		row := []string{
			r.RunID,
			strconv.Itoa(i + 1),
			strconv.FormatUint(r.WallTimes[i].Nanoseconds(), 10),
			strconv.FormatUint(cpu, 10),
			strconv.FormatUint(adjWall[i].Nanoseconds(), 10),
			strconv.FormatUint(cpuAdj, 10),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
