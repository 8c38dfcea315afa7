/*
 * spectrum.go, part of gotally.
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
	"os"
	"strconv"
	"strings"
)

//A DecaySpectrum is an ordered set of (energy, intensity) pairs describing
//the gamma emission lines of a radioactive source. Energies are in MeV.
//It is immutable once loaded, and may be empty.
type DecaySpectrum struct {
	es []float64
	ws []float64
}

//Len returns the number of emission lines in the spectrum.
func (D *DecaySpectrum) Len() int {
	return len(D.es)
}

//Empty returns true if the spectrum has no emission lines.
func (D *DecaySpectrum) Empty() bool {
	return len(D.es) == 0
}

//Energies returns a copy of the line energies, in MeV.
func (D *DecaySpectrum) Energies() []float64 {
	r := make([]float64, len(D.es))
	copy(r, D.es)
	return r
}

//Intensities returns a copy of the line intensities.
func (D *DecaySpectrum) Intensities() []float64 {
	r := make([]float64, len(D.ws))
	copy(r, D.ws)
	return r
}

//ReadSpectrum reads a decay spectrum from a CSV file, with energies in keV
//in the first column (stored in MeV) and intensities in the third. Lines
//that don't parse, such as headers and footers, are skipped without
//complaint. An empty name returns a valid, empty spectrum, enough for the
//flows that never convert a tally to a particle list.
func ReadSpectrum(name string) (*DecaySpectrum, error) {
	D := new(DecaySpectrum)
	if name == "" {
		return D, nil
	}
	file, err := os.Open(name)
	if err != nil {
		return nil, ParseError{UnableToOpen, name, []string{"ReadSpectrum"}, true}
	}
	defer file.Close()
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Split(scanner.Text(), ",")
		if len(fields) < 3 {
			continue
		}
		e, err1 := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
		w, err2 := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		D.es = append(D.es, e/1000) //keV to MeV
		D.ws = append(D.ws, w)
	}
	if len(D.es) == 0 {
		return nil, ParseError{EmptySpectrum, name, []string{"ReadSpectrum"}, true}
	}
	//The per-line parsing above keeps both slices in step, but the
	//downstream sampler depends on equal lengths, so this stays checked.
	if len(D.es) != len(D.ws) {
		return nil, ParseError{BadSpectrumFormat, name, []string{"ReadSpectrum"}, true}
	}
	return D, nil
}
