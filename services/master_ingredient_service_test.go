package services

import (
	"fmt"
	"sync"
	"testing"

	"backend/models"
)

func TestFindOrCreate_Idempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewMasterIngredientService(db)

	first, err := svc.FindOrCreate("มะนาว")
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	if first.Verified {
		t.Fatal("new entry should start unverified")
	}

	second, err := svc.FindOrCreate("มะนาว")
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected same id, got %d and %d", first.ID, second.ID)
	}

	var count int64
	db.Model(&models.MasterIngredient{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 row, got %d", count)
	}
}

func TestFindOrCreate_CaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	svc := NewMasterIngredientService(db)

	a, err := svc.FindOrCreate("Palm Sugar")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	b, err := svc.FindOrCreate("  palm sugar ")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if a.ID != b.ID {
		t.Fatalf("case-insensitive lookup returned different rows: %d vs %d", a.ID, b.ID)
	}
	if b.Name != "Palm Sugar" {
		t.Fatalf("expected original casing preserved, got %q", b.Name)
	}
}

func TestFindOrCreate_Concurrent(t *testing.T) {
	db := newTestDB(t)
	svc := NewMasterIngredientService(db)

	const callers = 8
	ids := make([]uint, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			entry, err := svc.FindOrCreate("ผัด")
			if err != nil {
				errs[i] = err
				return
			}
			ids[i] = entry.ID
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("caller %d: %v", i, err)
		}
	}
	for i := 1; i < callers; i++ {
		if ids[i] != ids[0] {
			t.Fatalf("caller %d got id %d, caller 0 got %d", i, ids[i], ids[0])
		}
	}

	var count int64
	db.Model(&models.MasterIngredient{}).Where("name = ?", "ผัด").Count(&count)
	if count != 1 {
		t.Fatalf("expected exactly one row, got %d", count)
	}
}

func TestFindOrCreate_EmptyName(t *testing.T) {
	db := newTestDB(t)
	svc := NewMasterIngredientService(db)

	if _, err := svc.FindOrCreate("   "); err == nil {
		t.Fatal("expected validation error for blank name")
	}
}

func TestMasterSearch_Limit(t *testing.T) {
	db := newTestDB(t)
	svc := NewMasterIngredientService(db)

	for i := 0; i < 20; i++ {
		if _, err := svc.FindOrCreate(fmt.Sprintf("chili %02d", i)); err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}

	refs, err := svc.Search("CHILI")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(refs) != 15 {
		t.Fatalf("expected 15 matches, got %d", len(refs))
	}

	empty, err := svc.Search("   ")
	if err != nil {
		t.Fatalf("blank search: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("blank search should return nothing, got %d", len(empty))
	}
}
