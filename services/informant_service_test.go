package services

import (
	"errors"
	"testing"

	"backend/models"
)

func TestInformantCreate_NumericSanitization(t *testing.T) {
	db := newTestDB(t)
	svc := NewInformantService(db)

	inf, err := svc.Create(InformantInput{
		CodeSv:   "INF-001",
		FullName: "สมชาย",
		Age:      "",
		Income:   "",
		Gender:   "",
		Latitude: "13.7563",
		Altitude: "",
	}, "U1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if inf.Age != nil {
		t.Fatalf("empty age must persist as NULL, got %v", *inf.Age)
	}
	if inf.Income != nil {
		t.Fatalf("empty income must persist as NULL, got %v", *inf.Income)
	}
	if inf.Gender != nil {
		t.Fatalf("empty gender must persist as NULL, got %q", *inf.Gender)
	}
	if inf.Latitude == nil || *inf.Latitude != 13.7563 {
		t.Fatalf("latitude not parsed: %v", inf.Latitude)
	}
	if inf.Altitude != 0 {
		t.Fatalf("absent altitude should default to 0, got %v", inf.Altitude)
	}
	if inf.ResidencyYears != 0 || inf.ResidencyMonths != 0 {
		t.Fatal("residency components should default to 0")
	}
	if inf.RefSvCode != "U1" {
		t.Fatalf("creator not stamped, got %q", inf.RefSvCode)
	}

	withAge, err := svc.Create(InformantInput{CodeSv: "INF-002", FullName: "x", Age: "34"}, "U1")
	if err != nil {
		t.Fatalf("create with age: %v", err)
	}
	if withAge.Age == nil || *withAge.Age != 34 {
		t.Fatalf(`age "34" must persist as 34, got %v`, withAge.Age)
	}

	if _, err := svc.Create(InformantInput{CodeSv: "INF-003", FullName: "x", Age: "abc"}, "U1"); !errors.Is(err, ErrValidation) {
		t.Fatalf("malformed age should be a validation error, got %v", err)
	}
	if _, err := svc.Create(InformantInput{CodeSv: "INF-004"}, "U1"); !errors.Is(err, ErrValidation) {
		t.Fatalf("missing full_name should be a validation error, got %v", err)
	}
}

func TestInformantCreate_DuplicateCode(t *testing.T) {
	db := newTestDB(t)
	svc := NewInformantService(db)

	first, err := svc.Create(InformantInput{CodeSv: "INF-001", FullName: "x"}, "U1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(InformantInput{CodeSv: "INF-001", FullName: "y"}, "U2"); !errors.Is(err, ErrValidation) {
		t.Fatalf("duplicate code_sv should fail validation, got %v", err)
	}

	// deleted informants keep their code reserved; the retry still reads as
	// a validation problem, not a server fault
	if err := svc.Delete(first.ID, RoleAdmin, "A1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Create(InformantInput{CodeSv: "INF-001", FullName: "y"}, "U2"); !errors.Is(err, ErrValidation) {
		t.Fatalf("reused code of a deleted informant should fail validation, got %v", err)
	}
}

func TestInformantUpdate_RoleGateAndAudit(t *testing.T) {
	db := newTestDB(t)
	svc := NewInformantService(db)

	inf := seedInformant(t, db, "INF-001", "before", "U1")

	name := "after"
	if _, err := svc.Update(inf.ID, InformantPatch{FullName: &name}, RoleUser, "U1"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("enumerator update should be forbidden, got %v", err)
	}

	age := ""
	updated, err := svc.Update(inf.ID, InformantPatch{FullName: &name, Age: &age}, RoleDirector, "D1")
	if err != nil {
		t.Fatalf("director update: %v", err)
	}
	if updated.FullName != "after" {
		t.Fatalf("name not updated: %q", updated.FullName)
	}
	if updated.Age != nil {
		t.Fatal("patched empty age must persist as NULL")
	}
	if updated.EditedBy == nil || *updated.EditedBy != "D1" {
		t.Fatal("editor identity not stamped")
	}
	if updated.EditedAt == nil {
		t.Fatal("edit timestamp not stamped")
	}
}

func TestInformantDelete_ReferentialProtection(t *testing.T) {
	db := newTestDB(t)
	svc := NewInformantService(db)

	referenced := seedInformant(t, db, "INF-001", "referenced", "U1")
	free := seedInformant(t, db, "INF-002", "free", "U1")
	seedMenu(t, db, "menu", referenced.ID, "U1")

	if err := svc.Delete(referenced.ID, RoleAdmin, "A1"); !errors.Is(err, ErrInformantReferenced) {
		t.Fatalf("expected referential rejection, got %v", err)
	}
	if _, err := svc.Get(referenced.ID); err != nil {
		t.Fatalf("rejected delete must leave the informant intact: %v", err)
	}
	var menus int64
	db.Model(&models.Menu{}).Count(&menus)
	if menus != 1 {
		t.Fatalf("rejected delete must leave the menu intact, %d menus left", menus)
	}

	if err := svc.Delete(free.ID, RoleAdmin, "A1"); err != nil {
		t.Fatalf("unreferenced delete should succeed: %v", err)
	}
	if _, err := svc.Get(free.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("informant should be gone, got %v", err)
	}

	if err := svc.Delete(referenced.ID, RoleUser, "U1"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("enumerator delete should be forbidden, got %v", err)
	}
}

func TestInformantSearch_RoleVisibility(t *testing.T) {
	db := newTestDB(t)
	svc := NewInformantService(db)

	seedInformant(t, db, "INF-001", "mine", "U1")
	seedInformant(t, db, "INF-002", "theirs", "U2")

	out, err := svc.Search("", 1, 20, RoleUser, "U1", false)
	if err != nil {
		t.Fatalf("search as user: %v", err)
	}
	if out.Total != 1 {
		t.Fatalf("enumerator should only see own informants, got %d", out.Total)
	}

	out, err = svc.Search("", 1, 20, RoleAdmin, "A1", false)
	if err != nil {
		t.Fatalf("search as admin: %v", err)
	}
	if out.Total != 2 {
		t.Fatalf("admin should see all informants, got %d", out.Total)
	}

	out, err = svc.Search("", 1, 20, RoleAdmin, "U1", true)
	if err != nil {
		t.Fatalf("search mine as admin: %v", err)
	}
	if out.Total != 1 {
		t.Fatalf("mine flag should narrow to own records, got %d", out.Total)
	}

	out, err = svc.Search("inf-002", 1, 20, RoleAdmin, "A1", false)
	if err != nil {
		t.Fatalf("code search: %v", err)
	}
	if out.Total != 1 {
		t.Fatalf("case-insensitive code search should match once, got %d", out.Total)
	}
}

func TestInformantSearch_Pagination(t *testing.T) {
	db := newTestDB(t)
	svc := NewInformantService(db)

	for i := 0; i < 25; i++ {
		seedInformant(t, db, fmtCode(i), "person", "U1")
	}

	out, err := svc.Search("", 2, 20, RoleAdmin, "A1", false)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if out.Total != 25 || out.Page != 2 || out.TotalPages != 2 {
		t.Fatalf("unexpected envelope: total=%d page=%d totalPages=%d", out.Total, out.Page, out.TotalPages)
	}
	if rows := out.Data.([]models.Informant); len(rows) != 5 {
		t.Fatalf("page 2 should hold the 5 leftover rows, got %d", len(rows))
	}
}

func fmtCode(i int) string {
	return "INF-" + string(rune('A'+i/10)) + string(rune('0'+i%10))
}
