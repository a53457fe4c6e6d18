package lobster

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBondHeader(Te *testing.T) {
	cases := []struct {
		line   string
		label  string
		length float64
		sites  [2]int
	}{
		{"No.4:Fe1->Fe9(2.4524893531900283)", "Fe1-Fe9", 2.4524893531900283, [2]int{0, 8}},
		{"No.1:Na1->Cl2(2.8200)", "Na1-Cl2", 2.82, [2]int{0, 1}},
		{"  No.12:Sr10->O113(1.97)\r", "Sr10-O113", 1.97, [2]int{9, 112}},
		{"No.2:Fe9->Fe1(2.45)", "Fe9-Fe1", 2.45, [2]int{8, 0}},
	}
	for _, c := range cases {
		label, length, sites, err := ParseBondHeader(c.line)
		require.NoError(Te, err, c.line)
		assert.Equal(Te, c.label, label)
		assert.Equal(Te, c.length, length)
		assert.Equal(Te, c.sites, sites)
		assert.GreaterOrEqual(Te, sites[0], 0)
		assert.GreaterOrEqual(Te, sites[1], 0)
	}
}

func TestParseBondHeaderErrors(Te *testing.T) {
	bad := []string{
		"",
		"Average",
		"No.1:Fe1->Fe2",           //no length
		"No.1:Fe1->Fe2(2.48",      //unclosed
		"No.1:Fe1->Fe2(long)",     //bad length
		"No.1:Fe1-Fe2(2.48)",      //one site
		"Fe1->Fe2(2.48)",          //no tag
		"No.1:Fe1->Fe2->Fe3(2.4)", //three sites
		"No.1:Fe->Fe2(2.48)",      //no index
		"No.1:1->Fe2(2.48)",       //no species
		"No.1:Fe0->Fe2(2.48)",     //indexes are 1-based
		"No.1:Fe1->Fe2x(2.48)",
	}
	for _, l := range bad {
		label, _, sites, err := ParseBondHeader(l)
		var ferr *FormatError
		if !assert.True(Te, errors.As(err, &ferr), "%q should fail", l) {
			continue
		}
		assert.Contains(Te, ferr.Message(), BadBondHeader)
		assert.Equal(Te, "", label)
		assert.Equal(Te, [2]int{-1, -1}, sites)
	}
}
