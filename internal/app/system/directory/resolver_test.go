package directory_test

import (
	"testing"

	"github.com/ceitm/platform/internal/app/system/directory"
	"github.com/ceitm/platform/internal/domain/models"
)

func academico() models.Coordination {
	c, ok := models.CoordinationByID("ACADEMICO")
	if !ok {
		panic("ACADEMICO missing from coordination table")
	}
	return c
}

func TestResolveFirstEligibleWins(t *testing.T) {
	roster := []models.CouncilMember{
		{FullName: "A", Role: models.RoleCoordinador, AreaLabel: "Académico"},
		{FullName: "B", Role: models.RoleVocal, AreaLabel: "Académico"},
	}

	rep, ok := directory.Resolve(academico(), roster)
	if !ok {
		t.Fatal("expected a representative")
	}
	if rep.FullName != "A" {
		t.Errorf("got %q, want first eligible member A", rep.FullName)
	}
}

func TestResolveSkipsIneligibleRoles(t *testing.T) {
	roster := []models.CouncilMember{
		{FullName: "C", Role: models.RoleConcejal, AreaLabel: "Académico"},
		{FullName: "D", Role: models.RoleVocal, AreaLabel: "Académico"},
	}

	rep, ok := directory.Resolve(academico(), roster)
	if !ok {
		t.Fatal("expected a representative")
	}
	if rep.FullName != "D" {
		t.Errorf("got %q, want D (concejal is not eligible)", rep.FullName)
	}
}

func TestResolveVacant(t *testing.T) {
	roster := []models.CouncilMember{
		{FullName: "E", Role: models.RoleCoordinador, AreaLabel: "Vinculación"},
	}

	if _, ok := directory.Resolve(academico(), roster); ok {
		t.Error("no member of the area: expected vacant")
	}

	// Empty roster is also vacant, not an error.
	if _, ok := directory.Resolve(academico(), nil); ok {
		t.Error("empty roster: expected vacant")
	}
}

func TestResolveLabelMatchIsExact(t *testing.T) {
	// Label join is case-sensitive with no normalization.
	roster := []models.CouncilMember{
		{FullName: "F", Role: models.RoleCoordinador, AreaLabel: "académico"},
		{FullName: "G", Role: models.RoleCoordinador, AreaLabel: "Academico"},
	}
	if _, ok := directory.Resolve(academico(), roster); ok {
		t.Error("near-miss labels must not match")
	}
}

func TestResolvePrefersAreaID(t *testing.T) {
	roster := []models.CouncilMember{
		// AreaID set: label is ignored even when it would match elsewhere.
		{FullName: "H", Role: models.RoleCoordinador, AreaID: "BECAS", AreaLabel: "Académico"},
		{FullName: "I", Role: models.RoleCoordinador, AreaID: "ACADEMICO"},
	}

	rep, ok := directory.Resolve(academico(), roster)
	if !ok {
		t.Fatal("expected a representative")
	}
	if rep.FullName != "I" {
		t.Errorf("got %q, want I (ID join takes precedence over label)", rep.FullName)
	}
}

func TestMembersGroupsByArea(t *testing.T) {
	roster := []models.CouncilMember{
		{FullName: "J", Role: models.RoleConcejal, AreaID: "ACADEMICO"},
		{FullName: "K", Role: models.RoleVocal, AreaID: "BECAS"},
		{FullName: "L", Role: models.RoleCoordinador, AreaLabel: "Académico"},
	}

	got := directory.Members(academico(), roster)
	if len(got) != 2 || got[0].FullName != "J" || got[1].FullName != "L" {
		t.Errorf("Members: got %v", got)
	}
}
