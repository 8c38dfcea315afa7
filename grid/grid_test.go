package grid

import (
	"fmt"
	"math"
	"testing"
)

func TestMeshVolume(Te *testing.T) {
	fmt.Println("Mesh cell volume test!")
	M := NewMesh([3]float64{-10, -15, -20}, [3]float64{10, 15, 20}, [3]int{2, 3, 4})
	if M.CellVol() != 1000 {
		Te.Errorf("cell volume %v, expected 1000", M.CellVol())
	}
	if M.Cells() != 24 {
		Te.Errorf("cell count %d, expected 24", M.Cells())
	}
	//The volume is a triple product, so permuting the axes of the same
	//physical mesh can't change it.
	P := NewMesh([3]float64{-20, -10, -15}, [3]float64{20, 10, 15}, [3]int{4, 2, 3})
	if P.CellVol() != M.CellVol() {
		Te.Errorf("volume changed under axis permutation: %v vs %v", P.CellVol(), M.CellVol())
	}
	//Decreasing bounds give negative widths, the volume stays positive.
	N := NewMesh([3]float64{10, -15, -20}, [3]float64{-10, 15, 20}, [3]int{2, 3, 4})
	if N.CellVol() != 1000 {
		Te.Errorf("cell volume %v with a decreasing axis, expected 1000", N.CellVol())
	}
}

func TestMeshCenters(Te *testing.T) {
	M := NewMesh([3]float64{0, 0, 0}, [3]float64{4, 2, 2}, [3]int{2, 1, 1})
	c := M.Centers(0)
	if len(c) != 2 || c[0] != 1 || c[1] != 3 {
		Te.Errorf("wrong centers %v", c)
	}
	g := M.Grid(0)
	if len(g) != 3 || g[0] != 0 || g[1] != 2 || g[2] != 4 {
		Te.Errorf("wrong grid %v", g)
	}
	lo, hi := M.Bounds(0)
	if lo != 0 || hi != 4 {
		Te.Errorf("wrong bounds %v %v", lo, hi)
	}
}

func TestFieldIndexing(Te *testing.T) {
	F := Zeros([3]int{2, 3, 4})
	F.Set(1, 2, 3, 42)
	if F.At(1, 2, 3) != 42 {
		Te.Error("Set/At mismatch")
	}
	//last axis varies fastest
	if F.Data()[1*12+2*4+3] != 42 {
		Te.Error("unexpected flat layout")
	}
	if F.Sum() != 42 {
		Te.Errorf("sum %v, expected 42", F.Sum())
	}
}

func TestFieldMean(Te *testing.T) {
	F := NewField([3]int{2, 2, 1}, []float64{1, 2, 3, 4})
	m := F.Mean1D(0)
	if len(m) != 2 || m[0] != 1.5 || m[1] != 3.5 {
		Te.Errorf("wrong 1D mean %v", m)
	}
	P := F.Mean2D(0, 1)
	if nx, ny := P.Dims(); nx != 2 || ny != 2 {
		Te.Error("wrong 2D mean shape")
	}
	if P.At(0, 1) != 2 || P.At(1, 0) != 3 {
		Te.Errorf("wrong 2D mean %v", P.Data())
	}
	l := F.Line(0, [2]int{1, 0})
	if len(l) != 2 || l[0] != 2 || l[1] != 4 {
		Te.Errorf("wrong line %v", l)
	}
}

//Averaging N cells with independent errors must propagate them as
//sqrt(sum(e^2))/N.
func TestFieldRSS(Te *testing.T) {
	fmt.Println("Error propagation test!")
	F := NewField([3]int{2, 1, 1}, []float64{3, 4})
	r := F.RSS2D(1, 2)
	want := math.Sqrt(9+16) / 2
	if got := r.At(0, 0); math.Abs(got-want) > 1e-12 {
		Te.Errorf("RSS2D got %v, expected %v", got, want)
	}
	r1 := F.RSS1D(1)
	if math.Abs(r1[0]-want) > 1e-12 {
		Te.Errorf("RSS1D got %v, expected %v", r1[0], want)
	}
	//Reducing over an axis of length 1 must leave errors untouched.
	same := F.RSS1D(0)
	if same[0] != 3 || same[1] != 4 {
		Te.Errorf("RSS1D over trivial axes changed the errors: %v", same)
	}
}

func TestFieldPlaneAt(Te *testing.T) {
	F := NewField([3]int{2, 2, 2}, []float64{1, 2, 3, 4, 5, 6, 7, 8})
	P := F.PlaneAt(0, 1, 1) //z fixed at cell 1
	if P.At(0, 0) != 2 || P.At(1, 1) != 8 {
		Te.Errorf("wrong plane %v", P.Data())
	}
	//axis order follows the arguments
	Q := F.PlaneAt(1, 0, 1)
	if Q.At(0, 1) != P.At(1, 0) {
		Te.Error("plane axis order does not follow the arguments")
	}
}
