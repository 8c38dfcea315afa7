package tally

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadTally(Te *testing.T) {
	fmt.Println("Tally reading test!")
	T, err := ReadTally("test/tally.out", "gamma_source", 1.0, "test/spectrum.csv", "")
	if err != nil {
		Te.Fatal(err)
	}
	if !T.Complete() {
		Te.Error("tally read should be complete")
	}
	n1, n2, n3 := T.Mesh().Dims()
	if n1 != 2 || n2 != 3 || n3 != 4 {
		Te.Fatalf("wrong mesh shape %d %d %d", n1, n2, n3)
	}
	if T.Mesh().CellVol() != 1000 {
		Te.Errorf("wrong cell volume %v", T.Mesh().CellVol())
	}
	//densities times the cell volume must give back the raw scores
	raw := 0.0
	for i := 1; i <= 24; i++ {
		raw += float64(i)
	}
	got := T.Values().Sum() * T.Mesh().CellVol()
	if math.Abs(got-raw) > 1e-9*raw {
		Te.Errorf("density round trip: %v, expected %v", got, raw)
	}
	//rows are reshaped with the last mesh axis varying fastest
	if v := T.Values().At(0, 0, 1); math.Abs(v-2.0/1000) > 1e-15 {
		Te.Errorf("wrong cell value %v", v)
	}
	if e := T.Errors().At(0, 0, 1); math.Abs(e-0.02/1000) > 1e-15 {
		Te.Errorf("wrong cell error %v", e)
	}
	if o := T.Frame().Origin(); o != [3]float64{0, 0, 0} {
		Te.Errorf("wrong frame origin %v", o)
	}
	if ax := T.Frame().Axis(2); ax != [3]float64{0, 0, 1} {
		Te.Errorf("wrong frame axis %v", ax)
	}
	if T.Spectrum().Len() != 2 {
		Te.Errorf("spectrum not read along the tally")
	}
	if T.J() != 1.0 {
		Te.Errorf("wrong source intensity %v", T.J())
	}
}

func TestReadTallyNotFound(Te *testing.T) {
	_, err := ReadTally("test/tally.out", "no_such_tally", 1.0, "", "")
	if err == nil {
		Te.Fatal("expected an error for a missing tally")
	}
	if perr, ok := err.(ParseError); !ok || perr.Message() != TallyNotFound {
		Te.Errorf("wrong error: %v", err)
	}
}

//gamma_source is a standalone token of its definition line, so asking for a
//prefix of it must not match.
func TestReadTallyPrefixName(Te *testing.T) {
	_, err := ReadTally("test/tally.out", "gamma", 1.0, "", "")
	if err == nil {
		Te.Fatal("expected an error for a prefix of a tally name")
	}
	if perr, ok := err.(ParseError); !ok || perr.Message() != TallyNotFound {
		Te.Errorf("wrong error: %v", err)
	}
}

func TestReadTallyNoExtendedMesh(Te *testing.T) {
	_, err := ReadTally("test/tally.out", "dose_map", 1.0, "", "")
	if err == nil {
		Te.Fatal("expected an error for a tally without EXTENDED_MESH")
	}
	if perr, ok := err.(ParseError); !ok || perr.Message() != NoExtendedMesh {
		Te.Errorf("wrong error: %v", err)
	}
}

func TestReadTallyNoScoreBlock(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "empty.out")
	if err := os.WriteFile(name, []byte("nothing of interest here\n"), 0644); err != nil {
		Te.Fatal(err)
	}
	_, err := ReadTally(name, "gamma_source", 1.0, "", "")
	if perr, ok := err.(ParseError); !ok || perr.Message() != NoScoreBlock {
		Te.Errorf("wrong error: %v", err)
	}
}

func TestReadTallyIncomplete(Te *testing.T) {
	fmt.Println("Incomplete tally test!")
	data, err := os.ReadFile("test/tally.out")
	if err != nil {
		Te.Fatal(err)
	}
	//cut the result table short by three rows
	txt := string(data)
	idx := strings.Index(txt, "         22")
	if idx < 0 {
		Te.Fatal("fixture changed, can't truncate it")
	}
	name := filepath.Join(Te.TempDir(), "short.out")
	if err := os.WriteFile(name, []byte(txt[:idx]+"\n"), 0644); err != nil {
		Te.Fatal(err)
	}
	T, err := ReadTally(name, "gamma_source", 1.0, "", "")
	if err != nil {
		Te.Fatal(err)
	}
	if T.Complete() {
		Te.Error("a short read should not be complete")
	}
	//missing cells hold NaN, read cells keep their values
	if !math.IsNaN(T.Values().At(1, 2, 3)) {
		Te.Error("missing cells should hold NaN")
	}
	if v := T.Values().At(0, 0, 0); math.Abs(v-1.0/1000) > 1e-15 {
		Te.Errorf("read cells changed: %v", v)
	}
}

func TestReadTallyGeomPlot(Te *testing.T) {
	//the GRAPH images are bigger than the fixed crop window
	img := image.NewRGBA(image.Rect(0, 0, 600, 600))
	name := filepath.Join(Te.TempDir(), "geom.png")
	file, err := os.Create(name)
	if err != nil {
		Te.Fatal(err)
	}
	if err := png.Encode(file, img); err != nil {
		Te.Fatal(err)
	}
	file.Close()
	T, err := ReadTally("test/tally.out", "gamma_source", 1.0, "", name)
	if err != nil {
		Te.Fatal(err)
	}
	g := T.GeomPlot()
	if g == nil {
		Te.Fatal("geometry plot not loaded")
	}
	b := g.Bounds()
	if b.Dx() != geomCropX1-geomCropX0 || b.Dy() != geomCropY1-geomCropY0 {
		Te.Errorf("wrong crop %v", b)
	}
}
