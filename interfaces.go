/*
 * interfaces.go, part of golobster.
 *
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 *
 */

package lobster

// Populations is implemented by the objects that hold energy-resolved
// population curves, such as Cohpcar.
type Populations interface {

	//Energies returns the energy grid shared by all the curves.
	Energies() []float64

	//Spins returns the spin channels present, SpinUp first.
	Spins() []Spin

	//Curve returns the population (integrated=false) or the integrated
	//population (integrated=true) for the given bond label and spin.
	Curve(label string, spin Spin, integrated bool) ([]float64, error)

	//Efermi returns the Fermi energy, in the units of the grid.
	Efermi() float64

	//AreCoops returns true for overlap populations (COOP), false for
	//Hamilton populations (COHP).
	AreCoops() bool
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Each call also returns the "decoration" slice of strings resulting from the current call. If passed an empty string, it should just return the current value, not add the empty string to the slice.
	//The decorate slice should contain a list of functions in the calling stack, plus, for each function any relevant information, or nothing. If information is to be added to an element of the slice, it should be in this format: "FunctionName: Extra info"
}

// FileError is an Error associated with a given file and format.
type FileError interface {
	Error
	FileName() string
	Format() string
}
