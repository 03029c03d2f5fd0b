package registry

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/t2048/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string { return g.id }
func (g stubGame) Title() string { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig) {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen) {}
func (g stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", func() Game { return stubGame{id: "stub_b"} })
	Register("stub_a", func() Game { return stubGame{id: "stub_a"} })

	g, err := Create("stub_b")
	if err != nil || g.ID() != "stub_b" {
		t.Fatalf("Create(stub_b) = %v, %v", g, err)
	}

	if _, err := Create("stub_missing"); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create(unknown) error = %v", err)
	}

	var ids []string
	for _, info := range List() {
		if strings.HasPrefix(info.ID, "stub_") {
			ids = append(ids, info.ID)
			if info.Title != "Stub "+info.ID {
				t.Errorf("title for %s = %q", info.ID, info.Title)
			}
		}
	}
	if len(ids) != 2 || ids[0] != "stub_a" || ids[1] != "stub_b" {
		t.Errorf("List() stub ids = %v, want sorted [stub_a stub_b]", ids)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub_dup", func() Game { return stubGame{id: "stub_dup"} })
}
