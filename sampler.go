/*
 * sampler.go, part of gotally.
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
	"log"
	"math"
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

//SaveTracks converts an activation tally to a particle list: for each cell
//with a positive score, one gamma per decay energy line is generated at the
//cell center, with an isotropic random direction. Each gamma weight is the
//product of the cell score and the line intensity, both normalized to mean
//1 (or close), which keeps the mean track weight near 1 while preserving
//relative intensities. Batches are handed to w as they are generated, one
//batch per spectrum line. SaveTracks returns the name of the persisted
//list, as reported by the writer. A seed can be given for reproducible
//sampling.
func (T *Tally) SaveTracks(w TrackWriter, seed ...uint64) (string, error) {
	if T.spectrum.Empty() {
		return "", ParseError{NoDecaySpectrum, T.outputfile, []string{"SaveTracks"}, true}
	}
	sd := uint64(time.Now().UnixNano())
	if len(seed) > 0 {
		sd = seed[0]
	}
	src := rand.NewPCG(sd, sd^0x9e3779b97f4a7c15)
	rng := rand.New(src)
	//Cell centers and weights of the positive cells, in flat field order.
	cx := T.mesh.Centers(0)
	cy := T.mesh.Centers(1)
	cz := T.mesh.Centers(2)
	n1, n2, n3 := T.vals.Dims()
	var poss [][3]float64
	var ws []float64
	for i := 0; i < n1; i++ {
		for j := 0; j < n2; j++ {
			for k := 0; k < n3; k++ {
				v := T.vals.At(i, j, k)
				if !(v > 0) { //NaNs of an incomplete read carry no tracks either
					continue
				}
				poss = append(poss, [3]float64{cx[i], cy[j], cz[k]})
				ws = append(ws, v)
			}
		}
	}
	if len(poss) == 0 {
		log.Printf("Tally %s: no cells with positive score, empty particle list.", T.name)
		return w.Finalize()
	}
	floats.Scale(1/stat.Mean(ws, nil), ws)
	//Positions are shuffled on their own, so that no other per-track
	//attribute correlates with them.
	rng.Shuffle(len(poss), func(i, j int) {
		poss[i], poss[j] = poss[j], poss[i]
	})
	es := T.spectrum.Energies()
	ews := T.spectrum.Intensities()
	floats.Scale(1/stat.Mean(ews, nil), ews)
	mu := distuv.Uniform{Min: -1, Max: 1, Src: src}
	phi := distuv.Uniform{Min: -math.Pi, Max: math.Pi, Src: src}
	tracks := make([]Track, len(poss))
	for i := range es {
		for p := range poss {
			c := (i + p) % len(es) //the energy list cycles over the positions
			m := mu.Rand()
			f := phi.Rand()
			sin := math.Sqrt(1 - m*m)
			tracks[p] = Track{
				E:   es[c],
				Pos: poss[p],
				Dir: [3]float64{sin * math.Cos(f), sin * math.Sin(f), m},
				W:   ws[p] * ews[c],
			}
		}
		if err := w.WNext(tracks); err != nil {
			return "", errDecorate(err, "SaveTracks")
		}
	}
	name, err := w.Finalize()
	if err != nil {
		return "", errDecorate(err, "SaveTracks")
	}
	log.Printf("Particle list successfully saved in %s.", name)
	return name, nil
}
