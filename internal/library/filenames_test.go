package library

import "testing"

func TestReserveRejectsDuplicates(t *testing.T) {
	f := NewFilenames()
	if err := f.Reserve("slendro.scl"); err != nil {
		t.Fatalf("first reserve: %v", err)
	}
	if err := f.Reserve("slendro.scl"); err == nil {
		t.Fatal("duplicate reserve accepted")
	}
	if f.Len() != 1 {
		t.Fatalf("Len = %d, want 1", f.Len())
	}
}

func TestReserveNumberedAppendsSuffix(t *testing.T) {
	f := NewFilenames()
	names := []string{
		f.ReserveNumbered("Thailand_Ranat.scl"),
		f.ReserveNumbered("Thailand_Ranat.scl"),
		f.ReserveNumbered("Thailand_Ranat.scl"),
	}
	want := []string{"Thailand_Ranat.scl", "Thailand_Ranat_2.scl", "Thailand_Ranat_3.scl"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("name %d = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestReserveCompositeQualifies(t *testing.T) {
	f := NewFilenames()
	first, err := f.ReserveComposite("meantone.scl", "tuning_12345_1")
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	if first != "meantone.scl" {
		t.Fatalf("first = %q", first)
	}

	second, err := f.ReserveComposite("meantone.scl", "tuning_67890_2")
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if second != "meantone_tuning_67890_2.scl" {
		t.Fatalf("second = %q", second)
	}

	if _, err := f.ReserveComposite("meantone.scl", "tuning_67890_2"); err == nil {
		t.Fatal("fully qualified collision accepted")
	}
}
