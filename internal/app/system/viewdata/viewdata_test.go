package viewdata

import (
	"net/http/httptest"
	"testing"
)

func TestNew(t *testing.T) {
	r := httptest.NewRequest("GET", "/statcards", nil)
	vm := New(r)

	if vm.SiteName == "" {
		t.Error("SiteName should be set")
	}
	if vm.CurrentPath != "/statcards" {
		t.Errorf("CurrentPath = %q, want /statcards", vm.CurrentPath)
	}
}

func TestNewBaseVM(t *testing.T) {
	r := httptest.NewRequest("GET", "/statcards", nil)
	vm := NewBaseVM(r, "Card builder", "/dashboard")

	if vm.Title != "Card builder" {
		t.Errorf("Title = %q, want Card builder", vm.Title)
	}
	if vm.BackURL != "/dashboard" {
		t.Errorf("BackURL = %q, want /dashboard", vm.BackURL)
	}
}

func TestInit(t *testing.T) {
	t.Cleanup(func() { Init(DefaultSiteName) })

	Init("Ops Board")
	if SiteName() != "Ops Board" {
		t.Errorf("SiteName() = %q, want Ops Board", SiteName())
	}

	Init("")
	if SiteName() != "Ops Board" {
		t.Errorf("empty Init should keep the name, got %q", SiteName())
	}
}
