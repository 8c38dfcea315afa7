/*
 * doc.go, part of gotally.
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

/*Package tally reads 3D mesh tallies from TRIPOLI-4 output files. It
supports tallies scored on an EXTENDED_MESH with a CARTESIAN frame.

The package has two main uses:

    Reading activation tallies and converting them to weighted gamma
    particle lists, sampled with a decay spectrum of the activated
    nuclide. Decay spectrum files can be downloaded from
    https://www-nds.iaea.org/relnsd/vcharthtml/VChartHTML.html
    (select a nuclide and, in the Decay Radiation tab, download the
    Gamma table as CSV).

    Reading dose maps, to be displayed with the tallyplot subpackage as
    1D profiles or 2D maps, optionally with the geometry contours of a
    graph produced by the TRIPOLI-4 GRAPH command.

Scored values and their statistical errors are stored per unit volume, on
the grid/Field type, and are never modified after reading. Particle lists
are handed to any writer implementing the TrackWriter interface; the ssv
subpackage provides one writing compressed column text.*/
package tally
