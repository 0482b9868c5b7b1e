package features

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestSetAccessors(t *testing.T) {
	var s Set
	s.add(NamePeakFreq, 100)
	s.add(NameDecayRate, 0.5)
	s.add(NameEnergy, 2)

	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}
	if v, ok := s.Get(NameDecayRate); !ok || v != 0.5 {
		t.Fatalf("Get(decay_rate) = %v, %v", v, ok)
	}
	if _, ok := s.Get(NameZCR); ok {
		t.Fatal("Get(zcr) found a missing feature")
	}
	if got := s.Vector(); !reflect.DeepEqual(got, Vector{100, 0.5, 2}) {
		t.Fatalf("Vector = %v", got)
	}
	if got := s.Map(); len(got) != 3 || got[NameEnergy] != 2 {
		t.Fatalf("Map = %v", got)
	}

	feats := s.Features()
	feats[0].Value = -1
	if v, _ := s.Get(NamePeakFreq); v != 100 {
		t.Fatal("Features returned an aliased slice")
	}
}

func TestSetMarshalJSONKeepsOrder(t *testing.T) {
	var s Set
	s.add(NameEnergy, 1.5)
	s.add(NamePeakFreq, 10)
	s.add(TopPeakName(1), 0)

	got, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	want := `{"energy":1.5,"peak_freq":10,"peak_freq_1":0}`
	if string(got) != want {
		t.Fatalf("json = %s, want %s", got, want)
	}
}
