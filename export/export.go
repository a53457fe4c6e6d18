// Package export writes the data decoded by golobster to Parquet files, one row
// per bond and spin (ICOHPLIST) or per bond, spin and energy (COHPCAR), so results
// for many structures can be collected and analyzed with columnar tools.
package export

import (
	"fmt"
	"io"
	"os"
	"strings"

	parquet "github.com/parquet-go/parquet-go"
	lobster "github.com/rmera/golobster"
)

// IcohpRow is one integrated population.
type IcohpRow struct {
	Structure string  `parquet:"structure"`
	Label     string  `parquet:"label"`
	Spin      string  `parquet:"spin"`
	Length    float64 `parquet:"length"`
	NumBonds  int64   `parquet:"num_bonds"`
	ICOHP     float64 `parquet:"icohp"`
	Coop      bool    `parquet:"coop"`
}

// CohpRow is one point of a COHP curve.
type CohpRow struct {
	Structure string  `parquet:"structure"`
	Label     string  `parquet:"label"`
	Spin      string  `parquet:"spin"`
	Energy    float64 `parquet:"energy"`
	COHP      float64 `parquet:"cohp"`
	ICOHP     float64 `parquet:"icohp"`
	Coop      bool    `parquet:"coop"`
}

// IcohpRows returns one row per bond and spin in I, in file order, tagged with the
// structure name.
func IcohpRows(structure string, I *lobster.Icohplist) []IcohpRow {
	rows := make([]IcohpRow, 0, I.Len()*len(I.Spins()))
	for _, l := range I.Labels() {
		b, _ := I.Bond(l)
		for _, s := range I.Spins() {
			rows = append(rows, IcohpRow{
				Structure: structure,
				Label:     l,
				Spin:      s.String(),
				Length:    b.Length,
				NumBonds:  int64(b.NumBonds),
				ICOHP:     b.ICOHP[s],
				Coop:      I.AreCoops(),
			})
		}
	}
	return rows
}

// CohpRows returns one row per bond, spin and energy in C. The average goes first,
// then the bonds in file order.
func CohpRows(structure string, C *lobster.Cohpcar) []CohpRow {
	energies := C.Energies()
	labels := append([]string{lobster.AverageLabel}, C.Labels()...)
	rows := make([]CohpRow, 0, len(labels)*len(C.Spins())*len(energies))
	for _, l := range labels {
		b, _ := C.Bond(l)
		for _, s := range C.Spins() {
			for i, e := range energies {
				rows = append(rows, CohpRow{
					Structure: structure,
					Label:     l,
					Spin:      s.String(),
					Energy:    e,
					COHP:      b.COHP[s][i],
					ICOHP:     b.ICOHP[s][i],
					Coop:      C.AreCoops(),
				})
			}
		}
	}
	return rows
}

// Compression returns the parquet compression option for name, which
// can be "snappy" (the default, also used for unknown names), "zstd", "gzip" or "none".
func Compression(name string) parquet.WriterOption {
	switch strings.ToLower(name) {
	case "zstd":
		return parquet.Compression(&parquet.Zstd)
	case "gzip", "gz":
		return parquet.Compression(&parquet.Gzip)
	case "none", "uncompressed":
		return parquet.Compression(&parquet.Uncompressed)
	default:
		return parquet.Compression(&parquet.Snappy)
	}
}

// Write writes rows to w in Parquet format, with the given compression (see Compression).
func Write[T IcohpRow | CohpRow](w io.Writer, rows []T, compression string) error {
	pw := parquet.NewGenericWriter[T](w, Compression(compression))
	if _, err := pw.Write(rows); err != nil {
		return fmt.Errorf("export.Write: %w", err)
	}
	if err := pw.Close(); err != nil {
		return fmt.Errorf("export.Write: %w", err)
	}
	return nil
}

// WriteFile writes rows to a new Parquet file called name.
func WriteFile[T IcohpRow | CohpRow](name string, rows []T, compression string) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("export.WriteFile: %w", err)
	}
	if err := Write(f, rows, compression); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadFile reads back the rows of a Parquet file written with WriteFile.
func ReadFile[T IcohpRow | CohpRow](name string) ([]T, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("export.ReadFile: %w", err)
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("export.ReadFile: %w", err)
	}
	rows, err := parquet.Read[T](f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("export.ReadFile: %w", err)
	}
	return rows, nil
}
