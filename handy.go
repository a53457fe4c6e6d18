/*
 * handy.go, part of golobster.
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

import "strings"

// splitLines splits text in lines, removing Windows line endings.
func splitLines(text string) []string {
	return strings.Split(strings.Replace(text, "\r\n", "\n", -1), "\n")
}

// trimTrailingBlank returns lines without the blank lines at its end.
func trimTrailingBlank(lines []string) []string {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func copyFloats(s []float64) []float64 {
	if s == nil {
		return nil
	}
	r := make([]float64, len(s))
	copy(r, s)
	return r
}

func copyStrings(s []string) []string {
	r := make([]string, len(s))
	copy(r, s)
	return r
}

//isIn returns true if test is in container, false otherwise.
func isInString(container []string, test string) bool {
	if container == nil {
		return false
	}
	for _, i := range container {
		if test == i {
			return true
		}
	}
	return false
}
