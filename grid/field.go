package grid

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

//A Field is a 3D array of float64 defined over the cells of a mesh. Data is
//stored row-major, with the last axis varying fastest, matching the order in
//which tally result rows are written.
type Field struct {
	ns [3]int
	d  []float64
}

//NewField reshapes the given flat data into a field with the given per-axis
//cell counts. The data slice is kept, not copied, and its length must equal
//the product of the counts.
func NewField(ns [3]int, data []float64) *Field {
	for _, n := range ns {
		if n <= 0 {
			panic(ErrBadCellCount)
		}
	}
	if len(data) != ns[0]*ns[1]*ns[2] {
		panic(ErrShape)
	}
	return &Field{ns: ns, d: data}
}

//Zeros returns a zero-filled field with the given per-axis cell counts.
func Zeros(ns [3]int) *Field {
	return NewField(ns, make([]float64, ns[0]*ns[1]*ns[2]))
}

//Dims returns the number of cells along each axis.
func (F *Field) Dims() (int, int, int) {
	return F.ns[0], F.ns[1], F.ns[2]
}

//returns the index in the flat slice for the given cell,
//checking ranges. Kept in one place so the layout can't get
//out of sync between methods.
func (F *Field) index(i, j, k int) int {
	if i < 0 || i >= F.ns[0] || j < 0 || j >= F.ns[1] || k < 0 || k >= F.ns[2] {
		panic(ErrCellOutOfRange)
	}
	return (i*F.ns[1]+j)*F.ns[2] + k
}

//At returns the value of the i,j,k cell.
func (F *Field) At(i, j, k int) float64 {
	return F.d[F.index(i, j, k)]
}

//Set sets the value of the i,j,k cell.
func (F *Field) Set(i, j, k int, v float64) {
	F.d[F.index(i, j, k)] = v
}

//Data returns a view of the flat data slice.
func (F *Field) Data() []float64 {
	return F.d
}

//Sum returns the sum of all cells.
func (F *Field) Sum() float64 {
	return floats.Sum(F.d)
}

//Scale multiplies every cell by a.
func (F *Field) Scale(a float64) {
	floats.Scale(a, F.d)
}

//Copy returns a deep copy of the field.
func (F *Field) Copy() *Field {
	d := make([]float64, len(F.d))
	copy(d, F.d)
	return &Field{ns: F.ns, d: d}
}

//otherAxes returns the two axes other than axis, in increasing order.
func otherAxes(axis int) (int, int) {
	switch axis {
	case 0:
		return 1, 2
	case 1:
		return 0, 2
	case 2:
		return 0, 1
	}
	panic(ErrAxisOutOfRange)
}

//Mean1D reduces the field to a 1D profile along the given axis by averaging
//over the other two axes.
func (F *Field) Mean1D(axis int) []float64 {
	a, b := otherAxes(axis)
	n := float64(F.ns[a] * F.ns[b])
	r := F.sum1D(axis, func(v float64) float64 { return v })
	floats.Scale(1/n, r)
	return r
}

//RSS1D reduces the field to a 1D profile along the given axis by combining
//the other two axes as uncorrelated errors of a mean: the root of the sum of
//squares, divided by the number of combined cells.
func (F *Field) RSS1D(axis int) []float64 {
	a, b := otherAxes(axis)
	n := float64(F.ns[a] * F.ns[b])
	r := F.sum1D(axis, func(v float64) float64 { return v * v })
	for i, v := range r {
		r[i] = math.Sqrt(v) / n
	}
	return r
}

func (F *Field) sum1D(axis int, f func(float64) float64) []float64 {
	r := make([]float64, F.ns[axis])
	var idx [3]int
	for i := 0; i < F.ns[0]; i++ {
		for j := 0; j < F.ns[1]; j++ {
			for k := 0; k < F.ns[2]; k++ {
				idx = [3]int{i, j, k}
				r[idx[axis]] += f(F.At(i, j, k))
			}
		}
	}
	return r
}

//Line returns the values along the given axis with the other two axes fixed
//at the given cells, in increasing axis order.
func (F *Field) Line(axis int, cells [2]int) []float64 {
	a, b := otherAxes(axis)
	r := make([]float64, F.ns[axis])
	var idx [3]int
	idx[a] = cells[0]
	idx[b] = cells[1]
	for i := range r {
		idx[axis] = i
		r[i] = F.At(idx[0], idx[1], idx[2])
	}
	return r
}

//A Plane is a 2D array of float64, a projection or slice of a Field. Data is
//row-major with the second axis varying fastest.
type Plane struct {
	nx, ny int
	d      []float64
}

//NewPlane reshapes the given flat data into an nx by ny plane. The data
//slice is kept, not copied.
func NewPlane(nx, ny int, data []float64) *Plane {
	if nx <= 0 || ny <= 0 {
		panic(ErrBadCellCount)
	}
	if len(data) != nx*ny {
		panic(ErrShape)
	}
	return &Plane{nx: nx, ny: ny, d: data}
}

//Dims returns the plane dimensions.
func (P *Plane) Dims() (int, int) {
	return P.nx, P.ny
}

//At returns the value at ix, iy.
func (P *Plane) At(ix, iy int) float64 {
	if ix < 0 || ix >= P.nx || iy < 0 || iy >= P.ny {
		panic(ErrCellOutOfRange)
	}
	return P.d[ix*P.ny+iy]
}

//Data returns a view of the flat data slice.
func (P *Plane) Data() []float64 {
	return P.d
}

//Sum returns the sum of all cells.
func (P *Plane) Sum() float64 {
	return floats.Sum(P.d)
}

//Scale multiplies every cell by a.
func (P *Plane) Scale(a float64) {
	floats.Scale(a, P.d)
}

//Mean2D reduces the field to a plane over the ax1, ax2 axes (in that order)
//by averaging over the remaining axis.
func (F *Field) Mean2D(ax1, ax2 int) *Plane {
	red := reducedAxis(ax1, ax2)
	P := F.sum2D(ax1, ax2, func(v float64) float64 { return v })
	P.Scale(1 / float64(F.ns[red]))
	return P
}

//RSS2D reduces the field to a plane over the ax1, ax2 axes (in that order)
//by combining the remaining axis as uncorrelated errors of a mean.
func (F *Field) RSS2D(ax1, ax2 int) *Plane {
	red := reducedAxis(ax1, ax2)
	P := F.sum2D(ax1, ax2, func(v float64) float64 { return v * v })
	n := float64(F.ns[red])
	for i, v := range P.d {
		P.d[i] = math.Sqrt(v) / n
	}
	return P
}

//PlaneAt returns the plane over the ax1, ax2 axes (in that order) with the
//remaining axis fixed at the given cell.
func (F *Field) PlaneAt(ax1, ax2, cell int) *Plane {
	red := reducedAxis(ax1, ax2)
	if cell < 0 || cell >= F.ns[red] {
		panic(ErrCellOutOfRange)
	}
	P := NewPlane(F.ns[ax1], F.ns[ax2], make([]float64, F.ns[ax1]*F.ns[ax2]))
	var idx [3]int
	idx[red] = cell
	for a := 0; a < F.ns[ax1]; a++ {
		for b := 0; b < F.ns[ax2]; b++ {
			idx[ax1] = a
			idx[ax2] = b
			P.d[a*P.ny+b] = F.At(idx[0], idx[1], idx[2])
		}
	}
	return P
}

func (F *Field) sum2D(ax1, ax2 int, f func(float64) float64) *Plane {
	P := NewPlane(F.ns[ax1], F.ns[ax2], make([]float64, F.ns[ax1]*F.ns[ax2]))
	var idx [3]int
	for i := 0; i < F.ns[0]; i++ {
		for j := 0; j < F.ns[1]; j++ {
			for k := 0; k < F.ns[2]; k++ {
				idx = [3]int{i, j, k}
				P.d[idx[ax1]*P.ny+idx[ax2]] += f(F.At(i, j, k))
			}
		}
	}
	return P
}

//reducedAxis returns the axis not among ax1, ax2. It panics if ax1 and ax2
//do not name two different axes.
func reducedAxis(ax1, ax2 int) int {
	if ax1 < 0 || ax1 > 2 || ax2 < 0 || ax2 > 2 || ax1 == ax2 {
		panic(ErrAxisOutOfRange)
	}
	return 3 - ax1 - ax2
}
