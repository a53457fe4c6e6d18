/*
 * cohpcar.go, part of golobster.
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

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// AverageLabel is the label of the average COHP, present in every COHPCAR file.
const AverageLabel = "average"

// Default file names.
const (
	COHPCARName = "COHPCAR.lobster"
	COOPCARName = "COOPCAR.lobster"
)

// CohpBond contains the curves for one bond of a COHPCAR file, or for the
// average of all of them.
type CohpBond struct {
	Label string
	COHP  map[Spin][]float64 //COHP (or COOP) for each spin, one value per energy.
	ICOHP map[Spin][]float64 //Integrated COHP (or COOP), one value per energy.
	//Bond length, in Angstrom. Zero for the average, which doesn't have one.
	Length float64
	//zero-based indexes of the two sites forming the bond. {-1,-1} for the average.
	Sites     [2]int
	IsAverage bool
}

// HasLength returns true if the record corresponds to an actual bond,
// and therefore has a length and sites.
func (B *CohpBond) HasLength() bool {
	return !B.IsAverage
}

func (B *CohpBond) clone() *CohpBond {
	r := &CohpBond{Label: B.Label, Length: B.Length, Sites: B.Sites, IsAverage: B.IsAverage}
	r.COHP = make(map[Spin][]float64, len(B.COHP))
	r.ICOHP = make(map[Spin][]float64, len(B.ICOHP))
	for k, v := range B.COHP {
		r.COHP[k] = copyFloats(v)
	}
	for k, v := range B.ICOHP {
		r.ICOHP[k] = copyFloats(v)
	}
	return r
}

// Cohpcar contains the data of a COHPCAR.lobster or COOPCAR.lobster file.
// It can't be modified after being created. All the methods returning slices or
// maps return copies.
type Cohpcar struct {
	areCoops  bool
	polarized bool
	efermi    float64
	energies  []float64
	labels    []string //file order, no average.
	bonds     map[string]*CohpBond
}

// NewCohpcar reads a COHPCAR file, or a COOPCAR file if areCoops is true.
// If a filename is not given, COHPCAR.lobster or COOPCAR.lobster (depending on
// areCoops) in the current directory will be read. The file can be compressed.
func NewCohpcar(areCoops bool, filename ...string) (*Cohpcar, error) {
	name := COHPCARName
	if areCoops {
		name = COOPCARName
	}
	if len(filename) > 0 && filename[0] != "" {
		name = filename[0]
	}
	text, err := ReadText(name)
	if err != nil {
		return nil, err
	}
	C, err := ParseCohpcar(text, areCoops)
	if err != nil {
		return nil, errDecorate(err, "NewCohpcar", name)
	}
	return C, nil
}

// ReadCohpcar decodes the COHPCAR data read from r. Nothing is decompressed.
func ReadCohpcar(r io.Reader, areCoops bool) (*Cohpcar, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ReadCohpcar: %w", err)
	}
	C, err := ParseCohpcar(string(b), areCoops)
	if err != nil {
		return nil, errDecorate(err, "ReadCohpcar", "")
	}
	return C, nil
}

// ColumnOffsets returns the zero-based columns of a COHPCAR data row (where the
// column 0 is the energy) that contain the COHP and the integrated COHP of the
// bond with index bond, for the spin channel with index spin (0 for up, 1 for down),
// in a file with numBonds bonds. bond = -1 corresponds to the average.
//
// Each spin channel takes 2*(numBonds+1) columns, the average goes first in each.
func ColumnOffsets(bond, spin, numBonds int) (cohp, icohp int) {
	cohp = 2*(bond+1+spin*(numBonds+1)) + 1
	return cohp, cohp + 1
}

// ParseCohpcar decodes the full text of a COHPCAR/COOPCAR file. areCoops
// doesn't affect the parsing.
func ParseCohpcar(text string, areCoops bool) (*Cohpcar, error) {
	lines := trimTrailingBlank(splitLines(text))
	if len(lines) < 3 {
		return nil, formatErr(0, "%s: %d lines, at least 3 needed for the header", NotEnoughLines, len(lines))
	}
	//The parameters line is the second in the file. It
	//contains all the parameters needed to map the file:
	//number of bonds + 1 (the average), spin (2 for polarized), number of energies,
	//energy range, Fermi energy.
	params := strings.Fields(lines[1])
	if len(params) < 3 {
		return nil, formatErr(2, "%s: %d fields, at least 3 needed", BadParameters, len(params))
	}
	nbonds, err := strconv.Atoi(params[0])
	if err != nil {
		return nil, formatErr(2, "%s: bond number %q", BadParameters, params[0])
	}
	nbonds-- //the average is counted
	if nbonds < 0 {
		return nil, formatErr(2, "%s: negative bond number %d", BadParameters, nbonds)
	}
	//checked before any arithmetic with nbonds, so huge values can't overflow.
	if nbonds > len(lines)-3 {
		return nil, formatErr(0, "%s: %d bonds declared, but %d lines", NotEnoughLines, nbonds, len(lines))
	}
	spinflag, err := strconv.Atoi(params[1])
	if err != nil {
		return nil, formatErr(2, "%s: spin %q", BadParameters, params[1])
	}
	efermi, err := strconv.ParseFloat(params[len(params)-1], 64)
	if err != nil {
		return nil, formatErr(2, "%s: Fermi energy %q", BadParameters, params[len(params)-1])
	}
	spins := spinsFor(spinflag == 2)
	C := &Cohpcar{areCoops: areCoops, polarized: spinflag == 2, efermi: efermi}

	//The header has the title, the parameters, the average label and one line per bond.
	//The data start after it.
	first := 3 + nbonds
	if len(lines) <= first {
		return nil, formatErr(0, "%s: %d bonds declared, but %d lines", NotEnoughLines, nbonds, len(lines))
	}
	cols, err := readColumns(lines[first:], first, 1+2*(nbonds+1)*len(spins))
	if err != nil {
		return nil, err
	}
	C.energies = cols[0]

	C.bonds = make(map[string]*CohpBond, nbonds+1)
	C.labels = make([]string, 0, nbonds)
	average := &CohpBond{Label: AverageLabel, Sites: [2]int{-1, -1}, IsAverage: true}
	average.COHP, average.ICOHP = spinColumns(cols, -1, nbonds, spins)
	C.bonds[AverageLabel] = average
	for i := 0; i < nbonds; i++ {
		label, length, sites, err := ParseBondHeader(lines[3+i])
		if err != nil {
			err.(*FormatError).line = 4 + i
			return nil, err
		}
		if _, ok := C.bonds[label]; ok {
			return nil, formatErr(4+i, "%s: %s", DuplicatedLabel, label)
		}
		b := &CohpBond{Label: label, Length: length, Sites: sites}
		b.COHP, b.ICOHP = spinColumns(cols, i, nbonds, spins)
		C.bonds[label] = b
		C.labels = append(C.labels, label)
	}
	return C, nil
}

// spinColumns collects, for each spin, the COHP and ICOHP columns for the bond.
func spinColumns(cols [][]float64, bond, nbonds int, spins []Spin) (map[Spin][]float64, map[Spin][]float64) {
	cohp := make(map[Spin][]float64, len(spins))
	icohp := make(map[Spin][]float64, len(spins))
	for s, spin := range spins {
		c, ic := ColumnOffsets(bond, s, nbonds)
		cohp[spin] = cols[c]
		icohp[spin] = cols[ic]
	}
	return cohp, icohp
}

// readColumns parses rows of whitespace-separated numbers and returns the
// first ncols columns. Extra columns are ignored. offset is the number of
// lines before rows in the file, used only for error reporting.
func readColumns(rows []string, offset, ncols int) ([][]float64, error) {
	if len(rows) == 0 {
		return nil, formatErr(0, "%s: no data rows", NoData)
	}
	cols := make([][]float64, ncols)
	for i := range cols {
		cols[i] = make([]float64, len(rows))
	}
	for r, l := range rows {
		fields := strings.Fields(l)
		if len(fields) < ncols {
			return nil, formatErr(offset+r+1, "%s: expected %d, found %d", NotEnoughCols, ncols, len(fields))
		}
		for c := 0; c < ncols; c++ {
			v, err := strconv.ParseFloat(fields[c], 64)
			if err != nil {
				return nil, formatErr(offset+r+1, "%s: %q in column %d", BadNumber, fields[c], c+1)
			}
			cols[c][r] = v
		}
	}
	return cols, nil
}

// AreCoops returns true if the file contains COOPs instead of COHPs.
func (C *Cohpcar) AreCoops() bool { return C.areCoops }

// SpinPolarized returns true if the calculation was spin-polarized.
func (C *Cohpcar) SpinPolarized() bool { return C.polarized }

// Efermi returns the Fermi energy in eV. LOBSTER shifts the energies so that
// it is (normally) zero.
func (C *Cohpcar) Efermi() float64 { return C.efermi }

// Energies returns the energy grid, in eV.
func (C *Cohpcar) Energies() []float64 { return copyFloats(C.energies) }

// Spins returns the spin channels in the file.
func (C *Cohpcar) Spins() []Spin { return spinsFor(C.polarized) }

// NumBonds returns the number of bonds in the file, not counting the average.
func (C *Cohpcar) NumBonds() int { return len(C.labels) }

// Labels returns the bond labels, in the order they appear in the file.
// The average is not included.
func (C *Cohpcar) Labels() []string { return copyStrings(C.labels) }

// Bond returns the record for the bond label (which can be AverageLabel) and true,
// or nil and false if there is no such bond.
func (C *Cohpcar) Bond(label string) (*CohpBond, bool) {
	b, ok := C.bonds[label]
	if !ok {
		return nil, false
	}
	return b.clone(), true
}

// Bonds returns all the records, including the average, in a map with the labels as keys.
func (C *Cohpcar) Bonds() map[string]*CohpBond {
	r := make(map[string]*CohpBond, len(C.bonds))
	for k, v := range C.bonds {
		r[k] = v.clone()
	}
	return r
}

// Curve returns the COHP, or, if integrated is true, the ICOHP, curve for
// the bond label and the spin.
func (C *Cohpcar) Curve(label string, spin Spin, integrated bool) ([]float64, error) {
	c, err := C.curve(label, spin, integrated)
	if err != nil {
		return nil, err
	}
	return copyFloats(c), nil
}

// curve is like Curve, but doesn't copy the data.
func (C *Cohpcar) curve(label string, spin Spin, integrated bool) ([]float64, error) {
	b, ok := C.bonds[label]
	if !ok {
		return nil, fmt.Errorf("Cohpcar: no bond %s", label)
	}
	m := b.COHP
	if integrated {
		m = b.ICOHP
	}
	c, ok := m[spin]
	if !ok {
		return nil, fmt.Errorf("Cohpcar: no spin %s for bond %s", spin, label)
	}
	return c, nil
}
