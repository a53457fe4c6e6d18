/*
 * doc.go, part of golobster.
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
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*Package lobster reads the bonding analysis files written by the LOBSTER program
(www.cohp.de), so COHP/COOP curves and their integrals can be used from Go programs.



	**golobster Capabilities**


    Reads COHPCAR.lobster and COOPCAR.lobster files: the energy grid, the Fermi energy,
	and, for each bond (plus the "average" entry), the COHP (or COOP) and the integrated
	COHP curves for each spin channel, the bond length and the (zero-based) indexes of
	the two sites forming the bond.

    Reads ICOHPLIST.lobster and ICOOPLIST.lobster files: for each bond, the length,
	the number of equivalent bonds and the integrated population at the Fermi level,
	for each spin channel.

    Both kinds of files can be read compressed (gzip, zstd, bzip2, brotli, lz4, snappy, zlib),
	the format is guessed from the file extension.

    Simple analyses on the decoded data: summed curves, interpolated ICOHP at any
	energy, trapezoidal integration, ranking of bonds by ICOHP.

    Sub-packages plot the curves (cohpplot, which uses gonum/plot), export them to Parquet
	(export), and read the files from S3 or through a cache (source).


Spin-polarized files are detected automatically. The curves for each spin are
stored in maps with Spin keys, SpinUp being the only key for non spin-polarized
calculations.

Decoded objects are never modified after construction, so they can be shared
between goroutines without locking.*/
package lobster
