package tallyplot

//Some internal convenience types and functions.

import (
	"image"
	"image/color"
	"math"

	"github.com/nucleogo/gotally/grid"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

//errPoints combines points and their error bars, as the gonum plotter
//error-bar constructors want them.
type errPoints struct {
	plotter.XYs
	plotter.YErrors
}

//planeGrid adapts a grid.Plane to the plotter.GridXYZ interface, with the
//cell centers of the plotted mesh axes as coordinates.
type planeGrid struct {
	p      *grid.Plane
	xs, ys []float64
}

func (g planeGrid) Dims() (int, int)   { return g.p.Dims() }
func (g planeGrid) Z(c, r int) float64 { return g.p.At(c, r) }
func (g planeGrid) X(c int) float64    { return g.xs[c] }
func (g planeGrid) Y(r int) float64    { return g.ys[r] }

//maskGrid adapts the membership mask of one gray level of a geometry image
//to plotter.GridXYZ, stretched over the plotted region. Contouring it at
//0.5 draws the borders of that region of the geometry.
type maskGrid struct {
	img            *image.Gray
	val            uint8
	x0, x1, y0, y1 float64
}

func (g maskGrid) Dims() (int, int) {
	b := g.img.Bounds()
	return b.Dx(), b.Dy()
}

func (g maskGrid) Z(c, r int) float64 {
	b := g.img.Bounds()
	if g.img.GrayAt(b.Min.X+c, b.Min.Y+r).Y == g.val {
		return 1
	}
	return 0
}

func (g maskGrid) X(c int) float64 {
	w, _ := g.Dims()
	return g.x0 + (float64(c)+0.5)*(g.x1-g.x0)/float64(w)
}

//Image rows run downward, mesh coordinates upward.
func (g maskGrid) Y(r int) float64 {
	_, h := g.Dims()
	return g.y1 - (float64(r)+0.5)*(g.y1-g.y0)/float64(h)
}

//grayLevels returns the distinct pixel values present in the image.
func grayLevels(img *image.Gray) []uint8 {
	var seen [256]bool
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			seen[img.GrayAt(x, y).Y] = true
		}
	}
	var levels []uint8
	for v, ok := range seen {
		if ok {
			levels = append(levels, uint8(v))
		}
	}
	return levels
}

//soloPalette is a one-color palette, for contour lines.
type soloPalette struct {
	c color.Color
}

func (s soloPalette) Colors() []color.Color { return []color.Color{s.c} }

//setScale puts the named scale on the given plot axis. A log scale is only
//applied if every plotted value is positive, since it can't represent the
//rest; otherwise the axis stays linear.
func setScale(ax *plot.Axis, scale string, data []float64) {
	if scale != "log" {
		return
	}
	for _, v := range data {
		if !(v > 0) {
			return
		}
	}
	ax.Scale = plot.LogScale{}
	ax.Tick.Marker = plot.LogTicks{Prec: -1}
}

//logData returns a copy of the plane with log10 applied, for log color
//maps. Cells without a positive value get the decade below the smallest
//positive one, so they end at the bottom of the map. If there is no
//positive value the plane is returned untransformed.
func logData(P *grid.Plane) *grid.Plane {
	minpos := math.Inf(1)
	for _, v := range P.Data() {
		if v > 0 && v < minpos {
			minpos = v
		}
	}
	if math.IsInf(minpos, 1) {
		return P
	}
	floor := math.Log10(minpos) - 1
	nx, ny := P.Dims()
	d := make([]float64, len(P.Data()))
	for i, v := range P.Data() {
		if v > 0 {
			d[i] = math.Log10(v)
		} else {
			d[i] = floor
		}
	}
	return grid.NewPlane(nx, ny, d)
}
