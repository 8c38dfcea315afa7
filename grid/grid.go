//Package grid provides the rectilinear 3D binning meshes used by
//extended-mesh tallies, together with shaped numeric fields defined over
//them. A Mesh only describes geometry; the scored values live in a Field.
package grid

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"math"
)

//PanicMsg is a message used for panics on programmer errors (wrong shapes,
//out-of-range indexes). Even though it satisfies the error interface, it is
//not meant to be returned.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrBadCellCount   = PanicMsg("gotally/grid: Cell counts must be positive")
	ErrAxisOutOfRange = PanicMsg("gotally/grid: Axis index out of range")
	ErrCellOutOfRange = PanicMsg("gotally/grid: Cell index out of range")
	ErrShape          = PanicMsg("gotally/grid: Dimension mismatch")
)

//A Mesh is a rectilinear, axis-aligned 3D grid of N1xN2xN3 cells. Each axis
//carries N+1 evenly spaced boundary coordinates between its minimum and
//maximum bounds.
type Mesh struct {
	grids [3][]float64
	ns    [3]int
	vcell float64
}

//NewMesh builds a mesh from per-axis minimum bounds, maximum bounds and cell
//counts. It panics if any cell count is not positive.
func NewMesh(mins, maxs [3]float64, ns [3]int) *Mesh {
	M := new(Mesh)
	vcell := 1.0
	for i := 0; i < 3; i++ {
		if ns[i] <= 0 {
			panic(ErrBadCellCount)
		}
		M.ns[i] = ns[i]
		M.grids[i] = floats.Span(make([]float64, ns[i]+1), mins[i], maxs[i])
		vcell *= M.grids[i][1] - M.grids[i][0]
	}
	M.vcell = math.Abs(vcell)
	return M
}

//Dims returns the number of cells along each axis.
func (M *Mesh) Dims() (int, int, int) {
	return M.ns[0], M.ns[1], M.ns[2]
}

//Cells returns the total number of cells in the mesh.
func (M *Mesh) Cells() int {
	return M.ns[0] * M.ns[1] * M.ns[2]
}

//CellVol returns the volume of one cell.
func (M *Mesh) CellVol() float64 {
	return M.vcell
}

//Grid returns a view of the N+1 boundary coordinates of the given axis.
func (M *Mesh) Grid(axis int) []float64 {
	M.checkAxis(axis)
	return M.grids[axis]
}

//Bounds returns the lower and upper bound of the given axis.
func (M *Mesh) Bounds(axis int) (float64, float64) {
	M.checkAxis(axis)
	g := M.grids[axis]
	return g[0], g[len(g)-1]
}

//Centers returns the midpoints of the adjacent boundary pairs of the given
//axis, i.e. the cell-center coordinates along that axis.
func (M *Mesh) Centers(axis int) []float64 {
	M.checkAxis(axis)
	g := M.grids[axis]
	c := make([]float64, len(g)-1)
	for i := range c {
		c[i] = (g[i] + g[i+1]) / 2
	}
	return c
}

func (M *Mesh) checkAxis(axis int) {
	if axis < 0 || axis > 2 {
		panic(ErrAxisOutOfRange)
	}
}

//A Frame is an affine local coordinate system associated with a tally
//region: an origin point plus three direction vectors. It is read separately
//from the mesh extents and need not be aligned with them.
type Frame struct {
	origin [3]float64
	axes   *mat.Dense //one direction vector per row
}

//NewFrame returns a frame with the given origin and direction vectors.
func NewFrame(origin, dx1, dx2, dx3 [3]float64) *Frame {
	F := new(Frame)
	F.origin = origin
	F.axes = mat.NewDense(3, 3, []float64{
		dx1[0], dx1[1], dx1[2],
		dx2[0], dx2[1], dx2[2],
		dx3[0], dx3[1], dx3[2],
	})
	return F
}

//Origin returns the origin point of the frame.
func (F *Frame) Origin() [3]float64 {
	return F.origin
}

//Axis returns the i-th direction vector of the frame.
func (F *Frame) Axis(i int) [3]float64 {
	if i < 0 || i > 2 {
		panic(ErrAxisOutOfRange)
	}
	return [3]float64{F.axes.At(i, 0), F.axes.At(i, 1), F.axes.At(i, 2)}
}

//Axes returns the direction vectors as a 3x3 matrix, one vector per row.
//The returned matrix is a copy, so the frame stays immutable.
func (F *Frame) Axes() *mat.Dense {
	return mat.DenseCopyOf(F.axes)
}
