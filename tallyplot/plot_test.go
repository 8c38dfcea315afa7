/*
 * plot_test.go
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

package tallyplot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tally "github.com/nucleogo/gotally"
)

func readTestTally(Te *testing.T) *tally.Tally {
	T, err := tally.ReadTally("../test/tally.out", "gamma_source", 1.0, "", "")
	if err != nil {
		Te.Fatal(err)
	}
	return T
}

func TestPlot1D(Te *testing.T) {
	fmt.Println("1D plot test!")
	T := readTestTally(Te)
	p, scores, errs, err := Plot1D(T, 0, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if p == nil {
		Te.Fatal("no figure produced")
	}
	if len(scores) != 2 || len(errs) != 2 {
		Te.Fatalf("%d plotted values, expected 2", len(scores))
	}
	//the averages over the 12 cells at each x must keep their order
	if scores[0] >= scores[1] {
		Te.Errorf("wrong averages %v", scores)
	}
	if err := Save(p, filepath.Join(Te.TempDir(), "profile.png")); err != nil {
		Te.Error(err)
	}
}

func TestPlot1DFixedCells(Te *testing.T) {
	T := readTestTally(Te)
	//fix y and z, so the plotted values are single cells scaled by 1/vcell
	p, scores, _, err := Plot1D(T, 0, []int{0, 1}, &Style{YScale: "linear", Fact: 1000})
	if err != nil {
		Te.Fatal(err)
	}
	if p == nil {
		Te.Fatal("no figure produced")
	}
	if scores[0] != 2 || scores[1] != 14 {
		Te.Errorf("wrong line values %v", scores)
	}
	if _, _, _, err := Plot1D(T, 0, []int{0}); err == nil {
		Te.Error("one fixed cell for two axes should fail")
	}
	if _, _, _, err := Plot1D(T, 5, nil); err == nil {
		Te.Error("axis 5 should fail")
	}
}

//An all-zero region gives back the values but no figure, and no error.
func TestPlot1DNull(Te *testing.T) {
	T := nullTally(Te)
	p, scores, _, err := Plot1D(T, 2, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if p != nil {
		Te.Error("a null region should not produce a figure")
	}
	if len(scores) != 4 {
		Te.Errorf("%d values returned, expected 4", len(scores))
	}
}

func TestPlot2D(Te *testing.T) {
	fmt.Println("2D plot test!")
	T := readTestTally(Te)
	p, scores, errs, err := Plot2D(T, 0, 1, -1, []float64{2e-3, 1e-2}, false)
	if err != nil {
		Te.Fatal(err)
	}
	if p == nil {
		Te.Fatal("no figure produced")
	}
	if nx, ny := scores.Dims(); nx != 2 || ny != 3 {
		Te.Fatalf("wrong map shape %d %d", nx, ny)
	}
	if nx, ny := errs.Dims(); nx != 2 || ny != 3 {
		Te.Fatalf("wrong error map shape %d %d", nx, ny)
	}
	if err := Save(p, filepath.Join(Te.TempDir(), "map.png")); err != nil {
		Te.Error(err)
	}
	//a fixed cell on the reduced axis, linear colors
	p, _, _, err = Plot2D(T, 1, 2, 0, nil, false, &Style{Scale: "linear"})
	if err != nil {
		Te.Fatal(err)
	}
	if p == nil {
		Te.Fatal("no figure produced for a fixed cell")
	}
	if _, _, _, err := Plot2D(T, 1, 1, -1, nil, false); err == nil {
		Te.Error("repeated axes should fail")
	}
}

//nullTally builds a tally whose scores are all zero.
func nullTally(Te *testing.T) *tally.Tally {
	data, err := os.ReadFile("../test/tally.out")
	if err != nil {
		Te.Fatal(err)
	}
	lines := strings.Split(string(data), "\n")
	for i, l := range lines {
		f := strings.Fields(l)
		if len(f) == 3 && strings.Contains(f[2], "e-0") {
			lines[i] = fmt.Sprintf("         %s      0.000000e+00    0.000000e+00", f[0])
		}
	}
	name := filepath.Join(Te.TempDir(), "null.out")
	if err := os.WriteFile(name, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		Te.Fatal(err)
	}
	T, err := tally.ReadTally(name, "gamma_source", 1.0, "", "")
	if err != nil {
		Te.Fatal(err)
	}
	return T
}
