/*
 * interfaces.go, part of gotally.
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

//A Track is a single sampled particle seed: its energy (MeV), starting
//position (cm), unit flight direction, and a statistical weight.
type Track struct {
	E   float64
	Pos [3]float64
	Dir [3]float64
	W   float64
}

//TrackWriter is the interface for particle-list writers. Implementations
//are expected to write whatever header their format needs when they are
//created, so a writer handed to the sampler is ready to receive batches.
type TrackWriter interface {

	//WNext appends one batch of tracks to the list.
	WNext(tracks []Track) error

	//Finalize closes the list and returns the name or handle of the
	//persisted artifact, after any format conversion the implementation
	//performs. The writer can not be used after this call.
	Finalize() (string, error)
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	error

	//Decorate adds information when the error is passed up. Each call
	//returns the resulting decoration slice. An empty string just returns
	//the current value without adding to it.
	Decorate(string) []string
}

//FileError is the interface for errors tied to a particular input or
//output file.
type FileError interface {
	Error
	Critical() bool
	FileName() string
}
