/*
 * bondheader.go, part of golobster.
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
	"regexp"
	"strconv"
	"strings"
)

// a site in a bond header: element symbol followed by its 1-based index, i.e. "Fe9".
var siteRe = regexp.MustCompile(`^([A-Za-z]+)(\d+)$`)

// ParseBondHeader extracts the bond label, the bond length and the zero-based indexes
// of the two sites from a bond line of the header of a COHPCAR file,
// such as:
//
//	No.4:Fe1->Fe9(2.4524893531900283)
//
// which gives "Fe1-Fe9", 2.4524893531900283 and [0 8]. Note that the label keeps the
// 1-based indexes used by LOBSTER, while the returned sites are zero-based.
func ParseBondHeader(line string) (label string, length float64, sites [2]int, err error) {
	sites = [2]int{-1, -1}
	l := strings.TrimSpace(line)
	p := strings.LastIndex(l, "(")
	if p < 0 || !strings.HasSuffix(l, ")") {
		return "", 0, sites, formatErr(0, "%s: no (length) in %q", BadBondHeader, line)
	}
	length, err = strconv.ParseFloat(strings.TrimSpace(l[p+1:len(l)-1]), 64)
	if err != nil {
		return "", 0, sites, formatErr(0, "%s: bad length in %q", BadBondHeader, line)
	}
	//Replacing "->" with ":" we can get the sites with a single split.
	//the first field is the "No.n" tag.
	fields := strings.Split(strings.Replace(l[:p], "->", ":", -1), ":")
	if len(fields) != 3 {
		return "", 0, sites, formatErr(0, "%s: expected 2 sites in %q", BadBondHeader, line)
	}
	var species [2]string
	for i, v := range fields[1:] {
		m := siteRe.FindStringSubmatch(strings.TrimSpace(v))
		if m == nil {
			return "", 0, [2]int{-1, -1}, formatErr(0, "%s: bad site %q in %q", BadBondHeader, v, line)
		}
		index, err := strconv.Atoi(m[2])
		if err != nil || index < 1 {
			return "", 0, [2]int{-1, -1}, formatErr(0, "%s: bad site index %q in %q", BadBondHeader, m[2], line)
		}
		species[i] = m[1]
		sites[i] = index - 1
	}
	label = fmt.Sprintf("%s%d-%s%d", species[0], sites[0]+1, species[1], sites[1]+1)
	return label, length, sites, nil
}
