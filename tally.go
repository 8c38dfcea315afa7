/*
 * tally.go, part of gotally.
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

package tally

import (
	"bufio"
	"image"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nucleogo/gotally/grid"
)

//Axis names and units of the extended-mesh variables, in mesh order.
var (
	VarNames = [3]string{"x", "y", "z"}
	Units    = [3]string{"cm", "cm", "cm"}
)

//A Tally is a volumetric, mesh-binned accumulation of a scored quantity and
//its statistical uncertainty, read from a TRIPOLI-4 output file. Values and
//errors are stored per unit of cell volume. A Tally owns its mesh and its
//fields and is immutable after reading.
type Tally struct {
	name       string
	outputfile string
	folder     string
	mesh       *grid.Mesh
	frame      *grid.Frame
	vals       *grid.Field
	errs       *grid.Field
	j          float64 //source intensity of the simulation, in 1/s
	spectrum   *DecaySpectrum
	geom       *image.Gray
	complete   bool
}

//Name returns the name of the tally in the output file.
func (T *Tally) Name() string { return T.name }

//Mesh returns the extended mesh the tally was scored on.
func (T *Tally) Mesh() *grid.Mesh { return T.mesh }

//Frame returns the local coordinate frame of the tally region.
func (T *Tally) Frame() *grid.Frame { return T.frame }

//Values returns a view of the scored densities (score per cell volume).
func (T *Tally) Values() *grid.Field { return T.vals }

//Errors returns a view of the absolute error densities.
func (T *Tally) Errors() *grid.Field { return T.errs }

//J returns the intensity of the simulated source, in 1/s.
func (T *Tally) J() float64 { return T.j }

//Spectrum returns the decay spectrum associated to the tally. It is empty
//if no spectrum file was given.
func (T *Tally) Spectrum() *DecaySpectrum { return T.spectrum }

//GeomPlot returns the grayscale geometry graph for contour overlays, or nil
//if no geometry file was given.
func (T *Tally) GeomPlot() *image.Gray { return T.geom }

//Complete returns false if the number of result rows found in the output
//file did not match the number of mesh cells. An incomplete tally is still
//usable; missing cells hold NaN.
func (T *Tally) Complete() bool { return T.complete }

//Folder returns the directory of the output file the tally was read from.
func (T *Tally) Folder() string { return T.folder }

//ReadTally reads the named tally from a TRIPOLI-4 output file. The tally
//must be scored on a mesh of type EXTENDED_MESH with FRAME CARTESIAN.
//J is the intensity of the simulated source in 1/s, used to scale plotted
//values. spectrum optionally names a decay-spectrum CSV file, needed only
//to convert an activation tally to a particle list; geomplot optionally
//names a geometry graph image for plot overlays. Either may be empty.
func ReadTally(outputfile, name string, J float64, spectrum, geomplot string) (*Tally, error) {
	T := new(Tally)
	T.name = name
	T.outputfile = outputfile
	T.folder = filepath.Dir(outputfile)
	T.j = J
	var err error
	T.spectrum, err = ReadSpectrum(spectrum)
	if err != nil {
		return nil, errDecorate(err, "ReadTally")
	}
	if geomplot != "" {
		T.geom, err = readGeomPlot(geomplot)
		if err != nil {
			return nil, errDecorate(err, "ReadTally")
		}
	}
	file, err := os.Open(outputfile)
	if err != nil {
		return nil, ParseError{UnableToOpen, outputfile, []string{"ReadTally"}, true}
	}
	defer file.Close()
	s := bufio.NewScanner(file)
	//Search the SCORE block.
	if _, ok := scanTo(s, "SCORE"); !ok {
		return nil, ParseError{NoScoreBlock, outputfile, []string{"ReadTally"}, true}
	}
	//Search the tally definition. The name must appear as a standalone
	//token, END_SCORE means the block ended without it.
	if _, ok := scanToWord(s, name, "END_SCORE"); !ok {
		return nil, ParseError{TallyNotFound, outputfile, []string{"ReadTally: " + name}, true}
	}
	//Search the mesh. Another NAME means this tally uses some other mesh
	//type.
	line, ok := scanTo(s, "EXTENDED_MESH", "NAME", "END_SCORE")
	if !ok {
		return nil, ParseError{NoExtendedMesh, outputfile, []string{"ReadTally: " + name}, true}
	}
	//Mesh parameters: a header token, 3 minimum bounds, 3 maximum bounds
	//and 3 cell counts, spread over whatever lines, up to FRAME.
	buf, line, ok := accumulateAfter(s, line, "EXTENDED_MESH", "FRAME")
	if !ok || len(buf) != 10 {
		return nil, ParseError{BadMeshFormat, outputfile, []string{"ReadTally: " + name}, true}
	}
	var mins, maxs [3]float64
	var ns [3]int
	for i := 0; i < 3; i++ {
		var err1, err2, err3 error
		mins[i], err1 = strconv.ParseFloat(buf[1+i], 64)
		maxs[i], err2 = strconv.ParseFloat(buf[4+i], 64)
		ns[i], err3 = strconv.Atoi(buf[7+i])
		if err1 != nil || err2 != nil || err3 != nil || ns[i] <= 0 {
			return nil, ParseError{BadMeshFormat, outputfile, []string{"ReadTally: " + name}, true}
		}
	}
	T.mesh = grid.NewMesh(mins, maxs, ns)
	//Only cartesian frames are supported.
	if !strings.Contains(line, "FRAME CARTESIAN") {
		return nil, ParseError{NoCartesianFrame, outputfile, []string{"ReadTally: " + name}, true}
	}
	//Frame parameters: origin plus 3 direction vectors, up to the next
	//definition, the end of the block, or a comment.
	buf, _, ok = accumulateAfter(s, line, "CARTESIAN", "NAME", "END_SCORE", "//", "/*")
	if !ok || len(buf) != 12 {
		return nil, ParseError{BadFrameFormat, outputfile, []string{"ReadTally: " + name}, true}
	}
	var fr [4][3]float64 //origin, dx1, dx2, dx3
	for i, tok := range buf {
		fr[i/3][i%3], err = strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, ParseError{BadFrameFormat, outputfile, []string{"ReadTally: " + name}, true}
		}
	}
	T.frame = grid.NewFrame(fr[0], fr[1], fr[2], fr[3])
	//Search the tally results.
	if _, ok = scanTo(s, "SCORE NAME : "+name); !ok {
		return nil, ParseError{ResultsNotFound, outputfile, []string{"ReadTally: " + name}, true}
	}
	//Skip the results sub-header.
	scanTo(s, "Energy range")
	//Read result rows until the first blank one.
	var vals, errs []float64
	for s.Scan() {
		toks := strings.Fields(s.Text())
		if len(toks) < 3 {
			break
		}
		v, err1 := strconv.ParseFloat(toks[1], 64)
		e, err2 := strconv.ParseFloat(toks[2], 64)
		if err1 != nil || err2 != nil {
			break
		}
		vals = append(vals, v)
		errs = append(errs, e)
	}
	cells := T.mesh.Cells()
	T.complete = len(vals) == cells
	if T.complete {
		log.Printf("Tally %s successfully read.", name)
	} else {
		log.Printf("Tally %s reading incomplete: %d result rows for %d cells.", name, len(vals), cells)
		if len(vals) > cells {
			vals = vals[:cells]
			errs = errs[:cells]
		}
		for len(vals) < cells {
			vals = append(vals, math.NaN())
			errs = append(errs, math.NaN())
		}
	}
	//Scores become densities.
	T.vals = grid.NewField(ns, vals)
	T.vals.Scale(1 / T.mesh.CellVol())
	T.errs = grid.NewField(ns, errs)
	T.errs.Scale(1 / T.mesh.CellVol())
	return T, nil
}
