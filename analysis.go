package lobster

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/gonum/stat"
)

// Summed returns the sum of the COHP curves and of the ICOHP curves of the bonds
// in labels, for the given spin. Repeated labels are added as many times as they appear.
func (C *Cohpcar) Summed(labels []string, spin Spin) (cohp, icohp []float64, err error) {
	if len(labels) == 0 {
		return nil, nil, fmt.Errorf("Summed: no labels given")
	}
	cohp = make([]float64, len(C.energies))
	icohp = make([]float64, len(C.energies))
	for _, l := range labels {
		c, err := C.curve(l, spin, false)
		if err != nil {
			return nil, nil, fmt.Errorf("Summed: %w", err)
		}
		ic, err := C.curve(l, spin, true)
		if err != nil {
			return nil, nil, fmt.Errorf("Summed: %w", err)
		}
		floats.Add(cohp, c)
		floats.Add(icohp, ic)
	}
	return cohp, icohp, nil
}

// strictlyIncreasing returns true if each element of s is larger than the previous one.
func strictlyIncreasing(s []float64) bool {
	for i := 1; i < len(s); i++ {
		if !(s[i] > s[i-1]) {
			return false
		}
	}
	return true
}

// ICOHPAt returns the integrated COHP of the bond label for spin at the energy e,
// by linear interpolation on the energy grid. Outside the grid, the first or last
// value is returned. Normally, you want e=C.Efermi().
func (C *Cohpcar) ICOHPAt(label string, spin Spin, e float64) (float64, error) {
	ic, err := C.curve(label, spin, true)
	if err != nil {
		return 0, fmt.Errorf("ICOHPAt: %w", err)
	}
	if len(C.energies) < 2 || !strictlyIncreasing(C.energies) {
		return 0, fmt.Errorf("ICOHPAt: the energy grid needs at least 2 strictly increasing values")
	}
	pl := new(interp.PiecewiseLinear)
	if err := pl.Fit(C.energies, ic); err != nil {
		return 0, fmt.Errorf("ICOHPAt: %w", err)
	}
	return pl.Predict(e), nil
}

// Integrate integrates the COHP curve of the bond label for spin from the first
// energy in the grid up to emax, with the trapezoidal rule. The result can be compared
// with the ICOHP at emax, to check the consistency of a file.
func (C *Cohpcar) Integrate(label string, spin Spin, emax float64) (float64, error) {
	c, err := C.curve(label, spin, false)
	if err != nil {
		return 0, fmt.Errorf("Integrate: %w", err)
	}
	e := C.energies
	if len(e) < 2 || !strictlyIncreasing(e) {
		return 0, fmt.Errorf("Integrate: the energy grid needs at least 2 strictly increasing values")
	}
	if emax <= e[0] {
		return 0, nil
	}
	//the points up to emax, plus emax itself, with the interpolated COHP.
	n := 0
	for n < len(e) && e[n] < emax {
		n++
	}
	x := make([]float64, n, n+1)
	f := make([]float64, n, n+1)
	copy(x, e[:n])
	copy(f, c[:n])
	if n < len(e) {
		pl := new(interp.PiecewiseLinear)
		if err := pl.Fit(e, c); err != nil {
			return 0, fmt.Errorf("Integrate: %w", err)
		}
		x = append(x, emax)
		f = append(f, pl.Predict(emax))
	}
	if len(x) < 2 {
		return 0, nil
	}
	return integrate.Trapezoidal(x, f), nil
}

// Total returns the sum of the integrated populations of all the bonds for spin,
// each weighted by its number of equivalent bonds.
func (I *Icohplist) Total(spin Spin) float64 {
	v, w := I.values(spin)
	return floats.Dot(v, w)
}

// values returns the integrated population for spin of each bond, in file order,
// and the number of equivalent bonds for each, as float64s.
func (I *Icohplist) values(spin Spin) ([]float64, []float64) {
	v := make([]float64, 0, len(I.labels))
	w := make([]float64, 0, len(I.labels))
	for _, l := range I.labels {
		b := I.bonds[l]
		val, ok := b.ICOHP[spin]
		if !ok {
			continue
		}
		v = append(v, val)
		w = append(w, float64(b.NumBonds))
	}
	return v, w
}

// Ranked returns the bond labels sorted by increasing integrated population for spin.
// For ICOHPs, this means the most bonding first. Bonds with the same value keep the
// file order.
func (I *Icohplist) Ranked(spin Spin) []string {
	v, _ := I.values(spin)
	if len(v) != len(I.labels) {
		return nil
	}
	inds := make([]int, len(v))
	floats.ArgsortStable(v, inds)
	ret := make([]string, len(inds))
	for i, j := range inds {
		ret[i] = I.labels[j]
	}
	return ret
}

// Stats returns the mean and the standard deviation of the integrated populations
// for spin, each weighted by its number of equivalent bonds. The standard deviation
// is NaN if there are less than 2 equivalent bonds in total.
func (I *Icohplist) Stats(spin Spin) (mean, std float64) {
	v, w := I.values(spin)
	if len(v) == 0 {
		return math.NaN(), math.NaN()
	}
	return stat.MeanStdDev(v, w)
}
