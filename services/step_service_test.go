package services

import (
	"errors"
	"testing"

	"backend/models"
)

func TestReplaceSteps_OrderingRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := NewStepService(db)

	inf := seedInformant(t, db, "INF-001", "informant", "U1")
	menu := seedMenu(t, db, "menu", inf.ID, "U1")

	// submitted out of order
	_, err := svc.ReplaceAll(menu.ID, []StepInput{
		{Type: models.StepTypeCook, Order: 3, Instruction: "serve"},
		{Type: models.StepTypePrep, Order: 1, Instruction: "wash"},
		{Type: models.StepTypeCook, Order: 2, Instruction: "boil"},
	})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}

	steps, err := svc.ListByMenu(menu.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(steps))
	}
	wantInstructions := []string{"wash", "boil", "serve"}
	for i, s := range steps {
		if s.StepOrder != i+1 {
			t.Fatalf("step %d has order %d, want %d", i, s.StepOrder, i+1)
		}
		if s.Instruction != wantInstructions[i] {
			t.Fatalf("step %d is %q, want %q", i, s.Instruction, wantInstructions[i])
		}
	}
}

func TestReplaceSteps_RenormalizesSparseOrders(t *testing.T) {
	db := newTestDB(t)
	svc := NewStepService(db)

	inf := seedInformant(t, db, "INF-001", "informant", "U1")
	menu := seedMenu(t, db, "menu", inf.ID, "U1")

	// client deleted the middle step and submitted the leftover gaps
	rows, err := svc.ReplaceAll(menu.ID, []StepInput{
		{Type: models.StepTypePrep, Order: 2, Instruction: "chop"},
		{Type: models.StepTypeCook, Order: 5, Instruction: "fry"},
	})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if rows[0].StepOrder != 1 || rows[1].StepOrder != 2 {
		t.Fatalf("orders not re-normalized: got %d, %d", rows[0].StepOrder, rows[1].StepOrder)
	}
}

func TestReplaceSteps_Validation(t *testing.T) {
	db := newTestDB(t)
	svc := NewStepService(db)

	inf := seedInformant(t, db, "INF-001", "informant", "U1")
	menu := seedMenu(t, db, "menu", inf.ID, "U1")

	if _, err := svc.ReplaceAll(menu.ID, []StepInput{
		{Type: "bake", Order: 1, Instruction: "x"},
	}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for unknown type, got %v", err)
	}

	if _, err := svc.ReplaceAll(menu.ID, []StepInput{
		{Type: models.StepTypePrep, Order: 1, Instruction: "  "},
	}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for blank instruction, got %v", err)
	}

	if _, err := svc.ReplaceAll(404, nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestReplacePhotos_ReplaceAndSkip(t *testing.T) {
	db := newTestDB(t)
	svc := NewPhotoService(db)

	inf := seedInformant(t, db, "INF-001", "informant", "U1")
	menu := seedMenu(t, db, "menu", inf.ID, "U1")

	if _, err := svc.ReplaceAll(menu.ID, []PhotoInput{
		{URL: "menus/a.jpg", Caption: "plated"},
		{URL: "menus/b.jpg"},
	}); err != nil {
		t.Fatalf("replace: %v", err)
	}

	rows, err := svc.ReplaceAll(menu.ID, []PhotoInput{{URL: "menus/c.jpg"}})
	if err != nil {
		t.Fatalf("second replace: %v", err)
	}
	if len(rows) != 1 || rows[0].URL != "menus/c.jpg" {
		t.Fatalf("unexpected rows after replace: %+v", rows)
	}

	stored, _ := svc.ListByMenu(menu.ID)
	if len(stored) != 1 {
		t.Fatalf("expected 1 stored photo, got %d", len(stored))
	}

	if _, err := svc.ReplaceAll(menu.ID, []PhotoInput{{URL: " "}}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for blank url, got %v", err)
	}
}
