package export

import "fmt"

// SolutionChart renders the comparison figure: the smooth exact curve with
// the Euler samples overlaid as marked points.
func SolutionChart(curveT, curveY, eulerT, eulerY []float64, h float64) string {
	series := []Series{
		{Label: "exact", X: curveT, Y: curveY, Color: "#4488ff"},
		{Label: fmt.Sprintf("euler h=%g", h), X: eulerT, Y: eulerY, Color: "#ff4444", Dotted: true, Marks: true},
	}
	return LineChart("analytical vs forward euler", series, 800, 400)
}

// ErrorChart renders the absolute and relative error curves over the Euler
// grid.
func ErrorChart(times, absErr, relErr []float64) string {
	series := []Series{
		{Label: "abs error", X: times, Y: absErr, Color: "#ff4444", Marks: true},
		{Label: "rel error %", X: times, Y: relErr, Color: "#44cc44", Marks: true},
	}
	return LineChart("euler error vs time", series, 800, 400)
}
