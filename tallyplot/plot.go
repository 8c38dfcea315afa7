/*
 * plot.go, part of gotally.
 *
 * Copyright 2021 The gotally developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package tallyplot draws 1D profiles and 2D maps of mesh tallies, using the
//gonum plot library. Plots are returned in memory together with the plotted
//values and errors; saving them is up to the caller.
package tallyplot

import (
	"fmt"
	"log"

	tally "github.com/nucleogo/gotally"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Style carries the optional display settings of a plot. The zero value of
//each field selects the default.
type Style struct {
	XScale string //"linear" (default) or "log"
	YScale string //1D vertical scale, "log" by default
	Scale  string //2D color scale, "log" by default
	Fact   float64
	Label  string
}

func oneStyle(style []*Style) *Style {
	s := new(Style)
	if len(style) > 0 && style[0] != nil {
		*s = *style[0]
	}
	if s.YScale == "" {
		s.YScale = "log"
	}
	if s.Scale == "" {
		s.Scale = "log"
	}
	if s.Fact == 0 {
		s.Fact = 1
	}
	return s
}

//Plot1D plots tally values with their error bars against one mesh axis. If
//cells is nil the other two axes are averaged, with the errors combined as
//uncorrelated errors of a mean; otherwise cells gives the fixed cell index
//for each of the other axes, in increasing axis order. Values are scaled by
//the source intensity of the tally, and by Style.Fact if given. Plot1D
//returns the figure along with the plotted values and errors. If the
//plotted values sum exactly to zero no figure is produced: the returned
//plot is nil, without error.
func Plot1D(T *tally.Tally, axis int, cells []int, style ...*Style) (*plot.Plot, []float64, []float64, error) {
	if T == nil {
		return nil, nil, nil, fmt.Errorf("gotally/tallyplot.Plot1D: given nil tally")
	}
	if axis < 0 || axis > 2 {
		return nil, nil, nil, fmt.Errorf("gotally/tallyplot.Plot1D: axis %d out of range", axis)
	}
	st := oneStyle(style)
	var scores, errs []float64
	if cells == nil {
		scores = T.Values().Mean1D(axis)
		errs = T.Errors().RSS1D(axis)
	} else {
		if len(cells) != 2 {
			return nil, nil, nil, fmt.Errorf("gotally/tallyplot.Plot1D: need one fixed cell per remaining axis, got %d", len(cells))
		}
		fixed := [2]int{cells[0], cells[1]}
		scores = T.Values().Line(axis, fixed)
		errs = T.Errors().Line(axis, fixed)
	}
	floats.Scale(T.J(), scores)
	floats.Scale(T.J(), errs)
	if floats.Sum(scores) == 0 {
		log.Printf("Null tally in plot region.")
		return nil, scores, errs, nil
	}
	floats.Scale(st.Fact, scores)
	floats.Scale(st.Fact, errs)
	centers := T.Mesh().Centers(axis)
	data := errPoints{
		XYs:     make(plotter.XYs, len(scores)),
		YErrors: make(plotter.YErrors, len(scores)),
	}
	for i, v := range scores {
		data.XYs[i].X = centers[i]
		data.XYs[i].Y = v
		data.YErrors[i].Low = errs[i]
		data.YErrors[i].High = errs[i]
	}
	p := plot.New()
	p.X.Label.Text = fmt.Sprintf("%s [%s]", tally.VarNames[axis], tally.Units[axis])
	p.Y.Label.Text = "Tally"
	p.Add(plotter.NewGrid())
	line, points, err := plotter.NewLinePoints(data.XYs)
	if err != nil {
		return nil, scores, errs, err
	}
	bars, err := plotter.NewYErrorBars(data)
	if err != nil {
		return nil, scores, errs, err
	}
	p.Add(line, points, bars)
	lbl := st.Label
	if lbl == "" {
		lbl = rangeLabel(T, axis, cells)
	}
	p.Legend.Add(lbl, line)
	setScale(&p.X, st.XScale, centers)
	setScale(&p.Y, st.YScale, scores)
	return p, scores, errs, nil
}

//rangeLabel describes the region the non-plotted axes cover: their full
//bounds when averaged, or the bounds of the fixed cells.
func rangeLabel(T *tally.Tally, axis int, cells []int) string {
	lbl := ""
	n := 0
	for v := 0; v < 3; v++ {
		if v == axis {
			continue
		}
		g := T.Mesh().Grid(v)
		lo, hi := g[0], g[len(g)-1]
		if cells != nil {
			lo, hi = g[cells[n]], g[cells[n]+1]
		}
		if n > 0 {
			lbl += "  "
		}
		lbl += fmt.Sprintf("%g <= %s <= %g", lo, tally.VarNames[v], hi)
		n++
	}
	return lbl
}

//Save writes a plot as a PNG file of the given name.
func Save(p *plot.Plot, name string) error {
	if p == nil {
		return fmt.Errorf("gotally/tallyplot.Save: given nil plot")
	}
	return p.Save(15*vg.Centimeter, 12*vg.Centimeter, name)
}
