/*
 * icohplist.go, part of golobster.
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
	"log"
	"strconv"
	"strings"
)

// Default file names.
const (
	ICOHPLISTName = "ICOHPLIST.lobster"
	ICOOPLISTName = "ICOOPLIST.lobster"
)

// IcohpBond is one entry of an ICOHPLIST file.
type IcohpBond struct {
	Label    string
	Length   float64
	NumBonds int //number of equivalent bonds represented by this entry.
	ICOHP    map[Spin]float64
}

func (B *IcohpBond) clone() *IcohpBond {
	r := &IcohpBond{Label: B.Label, Length: B.Length, NumBonds: B.NumBonds}
	r.ICOHP = make(map[Spin]float64, len(B.ICOHP))
	for k, v := range B.ICOHP {
		r.ICOHP[k] = v
	}
	return r
}

// Icohplist contains the data in an ICOHPLIST.lobster or ICOOPLIST.lobster file.
// It can't be modified after being created.
type Icohplist struct {
	areCoops  bool
	polarized bool
	labels    []string
	bonds     map[string]*IcohpBond
}

// NewIcohplist reads an ICOHPLIST file, or an ICOOPLIST file if areCoops is true.
// If a filename is not given, ICOHPLIST.lobster or ICOOPLIST.lobster in the current
// directory will be read. The file can be compressed.
func NewIcohplist(areCoops bool, filename ...string) (*Icohplist, error) {
	name := ICOHPLISTName
	if areCoops {
		name = ICOOPLISTName
	}
	if len(filename) > 0 && filename[0] != "" {
		name = filename[0]
	}
	text, err := ReadText(name)
	if err != nil {
		return nil, err
	}
	I, err := ParseIcohplist(text, areCoops)
	if err != nil {
		return nil, errDecorate(err, "NewIcohplist", name)
	}
	return I, nil
}

// ReadIcohplist decodes the ICOHPLIST data read from r. Nothing is decompressed.
func ReadIcohplist(r io.Reader, areCoops bool) (*Icohplist, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ReadIcohplist: %w", err)
	}
	I, err := ParseIcohplist(string(b), areCoops)
	if err != nil {
		return nil, errDecorate(err, "ReadIcohplist", "")
	}
	return I, nil
}

// hasSecondHeader returns true if the line in the middle of data is a header line,
// which happens when the file contains a second block with the spin-down values.
func hasSecondHeader(data []string) bool {
	if len(data) == 0 {
		return false
	}
	return strings.Contains(data[len(data)/2], "distance")
}

// ParseIcohplist decodes the full text of an ICOHPLIST/ICOOPLIST file. areCoops
// doesn't affect the parsing.
func ParseIcohplist(text string, areCoops bool) (*Icohplist, error) {
	//LOBSTER list files end with a blank line, and we don't need the header.
	all := trimTrailingBlank(splitLines(text))
	if len(all) == 0 {
		return nil, formatErr(0, "%s: empty file", NotEnoughLines)
	}
	data := all[1:]
	if len(data) == 0 {
		return nil, formatErr(0, "%s: only a header", NoData)
	}
	I := &Icohplist{areCoops: areCoops, polarized: hasSecondHeader(data)}
	nbonds := len(data)
	if I.polarized {
		nbonds = len(data) / 2
		if len(data) < 2*nbonds+1 {
			return nil, formatErr(0, "%s: %d lines for %d spin-up bonds, the spin-down block is incomplete", NotEnoughLines, len(data), nbonds)
		}
	}
	I.labels = make([]string, 0, nbonds)
	I.bonds = make(map[string]*IcohpBond, nbonds)
	for i := 0; i < nbonds; i++ {
		b, err := icohpLine(data[i], i+2)
		if err != nil {
			return nil, err
		}
		if I.polarized {
			//the spin-down block has its own header.
			down, err := icohpLine(data[i+nbonds+1], i+nbonds+3)
			if err != nil {
				return nil, err
			}
			b.ICOHP[SpinDown] = down.ICOHP[SpinUp]
		}
		if isInString(I.labels, b.Label) {
			log.Printf("golobster: label %s appears more than once in the ICOHPLIST file, only the last one will be kept", b.Label)
		} else {
			I.labels = append(I.labels, b.Label)
		}
		I.bonds[b.Label] = b
	}
	return I, nil
}

// icohpLine parses a line of an ICOHPLIST file:
// index, atom 1, atom 2, distance, ICOHP, number of bonds.
// The ICOHP is stored as spin up. lineno is only used for error reporting.
func icohpLine(line string, lineno int) (*IcohpBond, error) {
	fields := strings.Fields(line)
	if len(fields) < 6 {
		return nil, formatErr(lineno, "%s: expected 6, found %d", NotEnoughCols, len(fields))
	}
	length, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return nil, formatErr(lineno, "%s: distance %q", BadNumber, fields[3])
	}
	icohp, err := strconv.ParseFloat(fields[4], 64)
	if err != nil {
		return nil, formatErr(lineno, "%s: ICOHP %q", BadNumber, fields[4])
	}
	num, err := strconv.Atoi(fields[5])
	if err != nil {
		return nil, formatErr(lineno, "%s: number of bonds %q", BadNumber, fields[5])
	}
	return &IcohpBond{
		Label:    fmt.Sprintf("%s-%s", fields[1], fields[2]),
		Length:   length,
		NumBonds: num,
		ICOHP:    map[Spin]float64{SpinUp: icohp},
	}, nil
}

// AreCoops returns true if the file contains ICOOPs instead of ICOHPs.
func (I *Icohplist) AreCoops() bool { return I.areCoops }

// SpinPolarized returns true if the calculation was spin-polarized.
func (I *Icohplist) SpinPolarized() bool { return I.polarized }

// Spins returns the spin channels in the file.
func (I *Icohplist) Spins() []Spin { return spinsFor(I.polarized) }

// Len returns the number of (distinct) bonds.
func (I *Icohplist) Len() int { return len(I.labels) }

// Labels returns the bond labels in the order they first appear in the file.
func (I *Icohplist) Labels() []string { return copyStrings(I.labels) }

// Bond returns the entry for label and true, or nil and false if there is none.
func (I *Icohplist) Bond(label string) (*IcohpBond, bool) {
	b, ok := I.bonds[label]
	if !ok {
		return nil, false
	}
	return b.clone(), true
}

// Bonds returns all the entries in a map with the labels as keys.
func (I *Icohplist) Bonds() map[string]*IcohpBond {
	r := make(map[string]*IcohpBond, len(I.bonds))
	for k, v := range I.bonds {
		r[k] = v.clone()
	}
	return r
}

// Value returns the integrated population for the bond label and the spin.
func (I *Icohplist) Value(label string, spin Spin) (float64, error) {
	b, ok := I.bonds[label]
	if !ok {
		return 0, fmt.Errorf("Icohplist: no bond %s", label)
	}
	v, ok := b.ICOHP[spin]
	if !ok {
		return 0, fmt.Errorf("Icohplist: no spin %s for bond %s", spin, label)
	}
	return v, nil
}
