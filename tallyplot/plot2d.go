package tallyplot

import (
	"fmt"
	"image/color"
	"log"
	"math"

	tally "github.com/nucleogo/gotally"
	"github.com/nucleogo/gotally/grid"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
)

//Plot2D plots a heat map of the tally over the ax1, ax2 mesh axes. If cell
//is negative the remaining axis is averaged, with the errors combined as
//uncorrelated errors of a mean; otherwise it is fixed at that cell index.
//levels, if not nil, adds level curves at the given tally values. If
//withGeom is true and the tally carries a geometry graph, the borders of
//every geometry region are drawn over the map. Values are scaled by the
//source intensity of the tally, and by Style.Fact if given; the color map
//is logarithmic unless Style.Scale says otherwise. Plot2D returns the
//figure along with the plotted values and errors. If the plotted values sum
//exactly to zero no figure is produced: the returned plot is nil, without
//error.
func Plot2D(T *tally.Tally, ax1, ax2, cell int, levels []float64, withGeom bool, style ...*Style) (*plot.Plot, *grid.Plane, *grid.Plane, error) {
	if T == nil {
		return nil, nil, nil, fmt.Errorf("gotally/tallyplot.Plot2D: given nil tally")
	}
	if ax1 < 0 || ax1 > 2 || ax2 < 0 || ax2 > 2 || ax1 == ax2 {
		return nil, nil, nil, fmt.Errorf("gotally/tallyplot.Plot2D: axes %d, %d do not name two mesh axes", ax1, ax2)
	}
	st := oneStyle(style)
	red := 3 - ax1 - ax2
	var scores, errs *grid.Plane
	if cell < 0 {
		scores = T.Values().Mean2D(ax1, ax2)
		errs = T.Errors().RSS2D(ax1, ax2)
	} else {
		scores = T.Values().PlaneAt(ax1, ax2, cell)
		errs = T.Errors().PlaneAt(ax1, ax2, cell)
	}
	scores.Scale(T.J())
	errs.Scale(T.J())
	if scores.Sum() == 0 {
		log.Printf("Null tally in plot region.")
		return nil, scores, errs, nil
	}
	scores.Scale(st.Fact)
	errs.Scale(st.Fact)
	shown := scores
	if st.Scale == "log" {
		shown = logData(scores)
	}
	g := planeGrid{p: shown, xs: T.Mesh().Centers(ax1), ys: T.Mesh().Centers(ax2)}
	p := plot.New()
	p.Title.Text = "Tally\n" + reducedLabel(T, red, cell)
	p.X.Label.Text = fmt.Sprintf("%s [%s]", tally.VarNames[ax1], tally.Units[ax1])
	p.Y.Label.Text = fmt.Sprintf("%s [%s]", tally.VarNames[ax2], tally.Units[ax2])
	p.Add(plotter.NewHeatMap(g, palette.Heat(255, 1)))
	if levels != nil {
		shownLevels := levels
		if st.Scale == "log" {
			shownLevels = logLevels(levels)
		}
		c := plotter.NewContour(g, shownLevels, soloPalette{color.Gray{Y: 64}})
		c.LineStyles[0].Width /= 2
		p.Add(c)
	}
	if withGeom && T.GeomPlot() != nil {
		x0, x1 := T.Mesh().Bounds(ax1)
		y0, y1 := T.Mesh().Bounds(ax2)
		for _, val := range grayLevels(T.GeomPlot()) {
			m := maskGrid{img: T.GeomPlot(), val: val, x0: x0, x1: x1, y0: y0, y1: y1}
			c := plotter.NewContour(m, []float64{0.5}, soloPalette{color.Black})
			c.LineStyles[0].Width /= 4
			p.Add(c)
		}
	}
	return p, scores, errs, nil
}

//reducedLabel describes the range the non-plotted axis covers: its full
//bounds when averaged, or the bounds of the fixed cell.
func reducedLabel(T *tally.Tally, axis, cell int) string {
	g := T.Mesh().Grid(axis)
	lo, hi := g[0], g[len(g)-1]
	if cell >= 0 {
		lo, hi = g[cell], g[cell+1]
	}
	return fmt.Sprintf("%g <= %s <= %g", lo, tally.VarNames[axis], hi)
}

//logLevels moves explicit level-curve values onto the log10 data scale,
//dropping the ones a log map can't show.
func logLevels(levels []float64) []float64 {
	var r []float64
	for _, v := range levels {
		if v > 0 {
			r = append(r, math.Log10(v))
		}
	}
	return r
}
