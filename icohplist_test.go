package lobster

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIcohplistTwoBonds(Te *testing.T) {
	text := "x y z length icohp n\n1 Na1 Cl2 2.82 -0.5 6\n2 Na1 Na3 3.99 -0.01 12\n\n"
	I, err := ParseIcohplist(text, false)
	require.NoError(Te, err)
	assert.False(Te, I.SpinPolarized())
	assert.Equal(Te, 2, I.Len())
	assert.Equal(Te, []string{"Na1-Cl2", "Na1-Na3"}, I.Labels())
	for l, b := range I.Bonds() {
		assert.Len(Te, b.ICOHP, 1, l)
		_, ok := b.ICOHP[SpinUp]
		assert.True(Te, ok, l)
	}
	b, ok := I.Bond("Na1-Na3")
	require.True(Te, ok)
	assert.Equal(Te, 3.99, b.Length)
	assert.Equal(Te, 12, b.NumBonds)
	assert.Equal(Te, -0.01, b.ICOHP[SpinUp])
	_, err = I.Value("Na1-Cl2", SpinDown)
	assert.Error(Te, err)
	_, err = I.Value("Cl2-Na1", SpinUp)
	assert.Error(Te, err)
}

func TestIcohplistFile(Te *testing.T) {
	for _, name := range []string{"test/ICOHPLIST.lobster", "test/gz/ICOHPLIST.lobster.gz"} {
		I, err := NewIcohplist(false, name)
		require.NoError(Te, err, name)
		assert.False(Te, I.AreCoops())
		assert.False(Te, I.SpinPolarized())
		assert.Equal(Te, []Spin{SpinUp}, I.Spins())
		assert.Equal(Te, []string{"Fe1-Fe2", "Fe1-Fe9", "Fe2-Fe5"}, I.Labels())
		v, err := I.Value("Fe1-Fe9", SpinUp)
		require.NoError(Te, err)
		assert.Equal(Te, -0.98765, v)
		b, _ := I.Bond("Fe1-Fe2")
		assert.Equal(Te, 8, b.NumBonds)
		assert.Equal(Te, 2.48184, b.Length)
	}
}

func TestIcohplistSpinPolarized(Te *testing.T) {
	I, err := NewIcohplist(false, "test/ICOHPLIST.spin.lobster")
	require.NoError(Te, err)
	assert.True(Te, I.SpinPolarized())
	assert.Equal(Te, []Spin{SpinUp, SpinDown}, I.Spins())
	assert.Equal(Te, 3, I.Len())
	up := []float64{-1.1, -0.9, -0.3}
	down := []float64{-1.0, -0.8, -0.2}
	for i, l := range I.Labels() {
		b, ok := I.Bond(l)
		require.True(Te, ok)
		assert.Len(Te, b.ICOHP, 2)
		assert.Equal(Te, up[i], b.ICOHP[SpinUp], l)
		assert.Equal(Te, down[i], b.ICOHP[SpinDown], l)
	}
}

func TestHasSecondHeader(Te *testing.T) {
	assert.False(Te, hasSecondHeader(nil))
	assert.False(Te, hasSecondHeader([]string{"1 A1 B2 1 -1 1"}))
	assert.True(Te, hasSecondHeader([]string{"1 A1 B2 1 -1 1", "COHP# atomMU atomNU distance", "1 A1 B2 1 -2 1"}))
	//the second header has to be in the middle.
	assert.False(Te, hasSecondHeader([]string{"1 A1 B2 1 -1 1", "2 A1 B3 1 -1 1", "3 A1 B4 1 -1 1", "COHP# atomMU atomNU distance"}))
}

func TestIcohplistDuplicated(Te *testing.T) {
	text := "header\n1 Fe1 Fe2 2.4 -1.0 2\n2 Fe1 Fe2 2.5 -2.0 4\n3 Fe1 Fe3 2.6 -0.5 1\n\n"
	I, err := ParseIcohplist(text, false)
	require.NoError(Te, err)
	assert.Equal(Te, []string{"Fe1-Fe2", "Fe1-Fe3"}, I.Labels())
	b, _ := I.Bond("Fe1-Fe2")
	assert.Equal(Te, -2.0, b.ICOHP[SpinUp])
	assert.Equal(Te, 2.5, b.Length)
	assert.Equal(Te, 4, b.NumBonds)
}

func TestIcohplistNoFinalNewline(Te *testing.T) {
	I, err := ReadIcohplist(strings.NewReader("header\n1 Fe1 Fe2 2.4 -1.0 2"), true)
	require.NoError(Te, err)
	assert.True(Te, I.AreCoops())
	assert.Equal(Te, 1, I.Len())
}

func TestIcohplistImmutable(Te *testing.T) {
	I, err := NewIcohplist(false, "test/ICOHPLIST.lobster")
	require.NoError(Te, err)
	b, _ := I.Bond("Fe1-Fe2")
	b.ICOHP[SpinUp] = 100
	I.Labels()[0] = "nope"
	v, _ := I.Value("Fe1-Fe2", SpinUp)
	assert.Equal(Te, -1.12345, v)
	assert.Equal(Te, "Fe1-Fe2", I.Labels()[0])
}

func TestIcohplistErrors(Te *testing.T) {
	cases := []struct {
		name string
		text string
		msg  string
		line int
	}{
		{"empty", "", NotEnoughLines, 0},
		{"only header", "header\n\n", NoData, 0},
		{"short line", "header\n1 Fe1 Fe2 2.4 -1.0\n\n", NotEnoughCols, 2},
		{"bad length", "header\n1 Fe1 Fe2 2.4 -1.0 2\n2 Fe1 Fe3 x -1.0 2\n\n", BadNumber, 3},
		{"bad ICOHP", "header\n1 Fe1 Fe2 2.4 y 2\n\n", BadNumber, 2},
		{"bad multiplicity", "header\n1 Fe1 Fe2 2.4 -1.0 2.5\n\n", BadNumber, 2},
		{"bad spin down", "header\n1 Fe1 Fe2 2.4 -1.0 2\nCOHP# distance for spin 2\n1 Fe1 Fe2 2.4 z 2\n\n", BadNumber, 4},
		{"incomplete spin down", "header\n1 Fe1 Fe2 2.4 -1.0 2\n2 Fe1 Fe3 2.4 -1.0 2\nCOHP# distance for spin 2\n1 Fe1 Fe2 2.4 -1.0 2\n\n", NotEnoughLines, 0},
	}
	for _, c := range cases {
		I, err := ParseIcohplist(c.text, false)
		assert.Nil(Te, I, c.name)
		var ferr *FormatError
		if !assert.True(Te, errors.As(err, &ferr), "%s: %v", c.name, err) {
			continue
		}
		assert.Contains(Te, ferr.Message(), c.msg, c.name)
		assert.Equal(Te, c.line, ferr.Line(), c.name)
	}
}

func TestNewIcohplistFileName(Te *testing.T) {
	_, err := NewIcohplist(true, "test/COHPCAR.lobster")
	var ferr *FormatError
	require.True(Te, errors.As(err, &ferr))
	assert.Equal(Te, "test/COHPCAR.lobster", ferr.FileName())
	assert.Equal(Te, []string{"NewIcohplist"}, ferr.Decorate(""))
	var lerr FileError
	assert.True(Te, errors.As(err, &lerr))
}

func TestPopulations(Te *testing.T) {
	var p Populations
	C, err := NewCohpcar(true, "test/COHPCAR.lobster")
	require.NoError(Te, err)
	p = C
	assert.Len(Te, p.Energies(), 5)
	assert.Equal(Te, []Spin{SpinUp}, p.Spins())
	assert.Equal(Te, 0.0, p.Efermi())
	assert.True(Te, p.AreCoops())
	I, err := NewIcohplist(false, "test/ICOHPLIST.lobster")
	require.NoError(Te, err)
	for _, l := range I.Labels() {
		if _, ok := C.Bond(l); !ok {
			continue
		}
		c, err := p.Curve(l, SpinUp, true)
		require.NoError(Te, err)
		assert.Len(Te, c, 5)
	}
}
