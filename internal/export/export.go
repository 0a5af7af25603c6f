// Package export snapshots a report into a bitmap and wraps it into a
// single-page PDF sized exactly to the image. The PDF is a screenshot
// container: no text layer, no pagination, deterministic for identical
// report data.
package export

import (
	"bytes"
	"fmt"
	"image/png"

	"maintup/internal/domain/entities"

	"github.com/go-pdf/fpdf"
	"github.com/wcharczuk/go-chart/v2"
)

const (
	chartWidth  = 1280
	chartHeight = 720
)

// AnnualReportPDF renders the year's monthly breakdown and hands back the
// PDF bytes.
func AnnualReportPDF(report entities.AnnualReport) ([]byte, error) {
	img, err := renderAnnualPNG(report)
	if err != nil {
		return nil, err
	}
	return wrapPDF(img)
}

// MonthlyReportPDF renders a single month's rollup bars.
func MonthlyReportPDF(report entities.MonthlyReport) ([]byte, error) {
	img, err := renderMonthlyPNG(report)
	if err != nil {
		return nil, err
	}
	return wrapPDF(img)
}

func renderAnnualPNG(report entities.AnnualReport) ([]byte, error) {
	xs := make([]float64, 0, len(report.MonthlyBreakdown))
	ticks := make([]chart.Tick, 0, len(report.MonthlyBreakdown))
	revenue := make([]float64, 0, len(report.MonthlyBreakdown))
	costs := make([]float64, 0, len(report.MonthlyBreakdown))
	profit := make([]float64, 0, len(report.MonthlyBreakdown))
	for i, m := range report.MonthlyBreakdown {
		x := float64(i)
		xs = append(xs, x)
		ticks = append(ticks, chart.Tick{Value: x, Label: m.Month})
		revenue = append(revenue, m.Revenue)
		costs = append(costs, m.Costs)
		profit = append(profit, m.Profit)
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("Rapport annuel %d — CA %.2f, coûts %.2f, résultat %.2f", report.Year, report.TotalRevenue, report.TotalCosts, report.TotalProfit),
		Width:  chartWidth,
		Height: chartHeight,
		XAxis:  chart.XAxis{Ticks: ticks},
		Series: []chart.Series{
			chart.ContinuousSeries{Name: "Chiffre d'affaires (HT)", XValues: xs, YValues: revenue},
			chart.ContinuousSeries{Name: "Coûts", XValues: xs, YValues: costs},
			chart.ContinuousSeries{Name: "Résultat", XValues: xs, YValues: profit},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render annual chart: %w", err)
	}
	return buf.Bytes(), nil
}

func renderMonthlyPNG(report entities.MonthlyReport) ([]byte, error) {
	graph := chart.BarChart{
		Title:  fmt.Sprintf("Rapport mensuel %s — marge %.1f%%", report.Month, report.Margin),
		Width:  chartWidth,
		Height: chartHeight,
		Bars: []chart.Value{
			{Value: report.Revenue, Label: "CA (HT)"},
			{Value: report.Costs, Label: "Coûts"},
			{Value: report.Profit, Label: "Résultat"},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render monthly chart: %w", err)
	}
	return buf.Bytes(), nil
}

// wrapPDF puts the bitmap on a single page sized to the image, pixel units.
func wrapPDF(img []byte) ([]byte, error) {
	cfg, err := png.DecodeConfig(bytes.NewReader(img))
	if err != nil {
		return nil, fmt.Errorf("decode chart png: %w", err)
	}
	w := float64(cfg.Width)
	h := float64(cfg.Height)

	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: w, Ht: h},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("report", opts, bytes.NewReader(img))
	pdf.ImageOptions("report", 0, 0, w, h, false, opts, 0, "")

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return out.Bytes(), nil
}
