package tally

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestReadSpectrum(Te *testing.T) {
	fmt.Println("Decay spectrum test!")
	D, err := ReadSpectrum("test/spectrum.csv")
	if err != nil {
		Te.Fatal(err)
	}
	//header and footer lines are junk and must be skipped
	if D.Len() != 2 {
		Te.Fatalf("%d lines read, expected 2", D.Len())
	}
	es := D.Energies()
	ws := D.Intensities()
	if len(es) != len(ws) {
		Te.Error("energies and intensities differ in length")
	}
	//energies come in keV and are stored in MeV
	if math.Abs(es[0]-0.661657) > 1e-12 || math.Abs(es[1]-0.03206) > 1e-12 {
		Te.Errorf("wrong energies %v", es)
	}
	if ws[0] != 85.10 || ws[1] != 3.64 {
		Te.Errorf("wrong intensities %v", ws)
	}
}

func TestReadSpectrumEmptyPath(Te *testing.T) {
	D, err := ReadSpectrum("")
	if err != nil {
		Te.Fatal(err)
	}
	if !D.Empty() || D.Len() != 0 {
		Te.Error("empty path should give an empty spectrum")
	}
}

func TestReadSpectrumNoRows(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "junk.csv")
	if err := os.WriteFile(name, []byte("no,numbers,here\nstill,nothing,at all\n"), 0644); err != nil {
		Te.Fatal(err)
	}
	_, err := ReadSpectrum(name)
	if err == nil {
		Te.Fatal("expected an error for a spectrum with no usable rows")
	}
	if perr, ok := err.(ParseError); !ok || perr.Message() != EmptySpectrum {
		Te.Errorf("wrong error: %v", err)
	}
}

func TestReadSpectrumMissingFile(Te *testing.T) {
	_, err := ReadSpectrum("test/no_such_file.csv")
	if err == nil {
		Te.Fatal("expected an error for a missing file")
	}
	if perr, ok := err.(ParseError); !ok || perr.Message() != UnableToOpen {
		Te.Errorf("wrong error: %v", err)
	}
}
