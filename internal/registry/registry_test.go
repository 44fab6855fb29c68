package registry

import (
	"testing"

	"github.com/vovakirdan/tui-ballpark/internal/core"
)

type stubStrategy struct{ id string }

func (s stubStrategy) ID() string                  { return s.id }
func (s stubStrategy) Title() string               { return "Stub " + s.id }
func (s stubStrategy) Reset(core.RuntimeConfig)    {}
func (s stubStrategy) Decide(int, int) core.Action { return core.ActionWatch }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-a", func() Strategy { return stubStrategy{id: "stub-a"} })

	if !Exists("stub-a") {
		t.Fatal("Exists(stub-a) = false after Register")
	}
	s, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if s.ID() != "stub-a" {
		t.Errorf("ID() = %q", s.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "stub-a" {
			found = info.Title == "Stub stub-a"
		}
	}
	if !found {
		t.Errorf("List() = %v, expected stub-a with its title", List())
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-strategy"); err == nil {
		t.Error("Create() of an unknown id should fail")
	}
	if Exists("no-such-strategy") {
		t.Error("Exists() of an unknown id should be false")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Strategy { return stubStrategy{id: "stub-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub-dup", func() Strategy { return stubStrategy{id: "stub-dup"} })
}
