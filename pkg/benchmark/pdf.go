package benchmark

import (
	"fmt"
	"io"
	"strconv"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"github.com/timed-go/timed/pkg/stats"
)

// writePDF renders the report as a one-page PDF with a table of aggregates.
func writePDF(w io.Writer, report Report) error {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 10, 20)

	m.Row(10, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("Benchmark: '%s'", report.Title), props.Text{
				Top:   3,
				Style: consts.Bold,
				Align: consts.Center,
				Size:  16,
			})
		})
	})
	if report.Info != "" {
		m.Row(8, func() {
			m.Col(12, func() {
				m.Text(report.Info, props.Text{
					Top:   2,
					Style: consts.Italic,
					Align: consts.Center,
					Size:  11,
				})
			})
		})
	}
	m.Row(10, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("Iterations: %d   Run: %s   Started: %s",
				report.Iterations, report.RunID, report.Started.Format("2006-01-02 15:04:05")), props.Text{
				Top:   3,
				Style: consts.Normal,
				Align: consts.Center,
				Size:  9,
			})
		})
	})

	headers := []string{"", "WallTime [ns]", "CPUTime [ns]"}
	rows := [][]string{
		pdfRow("min", report.Wall, report.CPU, func(s stats.Summary) string { return ns(s.Min.Nanoseconds()) }),
		pdfRow("max", report.Wall, report.CPU, func(s stats.Summary) string { return ns(s.Max.Nanoseconds()) }),
		pdfRow("mean", report.Wall, report.CPU, func(s stats.Summary) string { return ns(s.Mean.Nanoseconds()) }),
		pdfRow("SD", report.Wall, report.CPU, func(s stats.Summary) string { return ns(s.StdDev.Nanoseconds()) }),
		pdfRow("median", report.Wall, report.CPU, func(s stats.Summary) string { return ns(s.Median.Nanoseconds()) }),
		pdfRow("p90", report.Wall, report.CPU, func(s stats.Summary) string { return ns(s.P90.Nanoseconds()) }),
		pdfRow("p99", report.Wall, report.CPU, func(s stats.Summary) string { return ns(s.P99.Nanoseconds()) }),
		pdfRow("%err", report.Wall, report.CPU, func(s stats.Summary) string { return formatMAPE(s.MAPE) }),
		{"baseline", ns(report.WallBaseline.Nanoseconds()), ns(report.CPUBaseline.Nanoseconds())},
	}

	m.TableList(headers, rows, props.TableList{
		HeaderProp: props.TableListContent{
			Size:      10,
			GridSizes: []uint{4, 4, 4},
		},
		ContentProp: props.TableListContent{
			Size:      10,
			GridSizes: []uint{4, 4, 4},
		},
		Align:                consts.Center,
		AlternatedBackground: &color.Color{Red: 240, Green: 240, Blue: 240},
		HeaderContentSpace:   1,
		Line:                 false,
	})

	buf, err := m.Output()
	if err != nil {
		return fmt.Errorf("failed to render pdf: %w", err)
	}
	_, err = w.Write(buf.Bytes())
	return err
}

func pdfRow(label string, wall, cpu stats.Summary, value func(stats.Summary) string) []string {
	return []string{label, value(wall), value(cpu)}
}

func ns(n uint64) string {
	return strconv.FormatUint(n, 10)
}
