package services

import (
	"testing"

	"backend/models"
)

func TestStatsSummary(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(db)

	north := "north"
	south := "south"
	a := seedInformant(t, db, "INF-001", "a", "U1")
	db.Model(a).Update("canal_zone", &north)
	b := seedInformant(t, db, "INF-002", "b", "U2")
	db.Model(b).Update("canal_zone", &south)

	m1 := seedMenu(t, db, "m1", a.ID, "U1") // savory
	db.Model(m1).Update("selection_status", "108,93")
	seedMenu(t, db, "m2", a.ID, "U1") // savory
	sweet := &models.Menu{Name: "m3", Category: models.CategorySweet, RefInformantID: b.ID, RefSvCode: "U2", SelectionStatus: "108"}
	db.Create(sweet)

	out, err := svc.Summary()
	if err != nil {
		t.Fatalf("summary: %v", err)
	}

	if out.Informants != 2 || out.Menus != 3 {
		t.Fatalf("totals wrong: %+v", out)
	}
	if out.ByCanalZone["north"] != 2 || out.ByCanalZone["south"] != 1 {
		t.Fatalf("zone counts wrong: %v", out.ByCanalZone)
	}
	if out.ByCategory[models.CategorySavory] != 2 || out.ByCategory[models.CategorySweet] != 1 {
		t.Fatalf("category counts wrong: %v", out.ByCategory)
	}
	if out.ByStatusTag["108"] != 2 || out.ByStatusTag["93"] != 1 || out.ByStatusTag["36"] != 0 {
		t.Fatalf("status counts wrong: %v", out.ByStatusTag)
	}
}
