package sspp

import (
	"testing"
)

func TestPaths(t *testing.T) {
	if InputFile("mba/mba_sample", "eph") != "mba/mba_sample_eph.csv" {
		t.Error("problem with input path", InputFile("mba/mba_sample", "eph"))
	}
	if SubsetFile("mba/mba_sample", 100, "orbit") != "mba/mba_sample_100_orbit.csv" {
		t.Error("problem with subset path", SubsetFile("mba/mba_sample", 100, "orbit"))
	}
}

func TestHeader(t *testing.T) {
	header := Header("testdata/header.csv")
	expected := []string{"id", "t", "x", "y", "z"}
	if len(header) != len(expected) {
		t.Fatal("problem with header length", header)
	}
	for i := range header {
		if header[i] != expected[i] {
			t.Error("problem with header column", i, header[i])
		}
	}
}
