package usecase

import (
	"testing"

	"nagrik_seva/internal/domain/entities"
)

func TestResolveOfficialFee(t *testing.T) {
	target := entities.CatalogTarget{
		CategoryField: "category",
		GenderField:   "gender",
		FeeRules: []entities.FeeRule{
			{Category: "General", Gender: "Male", Amount: 500},
			{Category: "General", Gender: entities.GenderAny, Amount: 0},
			{Category: "SC", Gender: entities.GenderAny, Amount: 0},
			{Category: entities.CategoryAny, Gender: "Female", Amount: 250},
			{Category: entities.CategoryAny, Gender: entities.GenderAny, Amount: 300},
		},
	}

	t.Run("exact category and gender match", func(t *testing.T) {
		fee := ResolveOfficialFee(target, map[string]string{"category": "General", "gender": "Male"})
		if fee != 500 {
			t.Fatalf("expected 500, got %d", fee)
		}
	})

	t.Run("category with Any gender beats Any category with exact gender", func(t *testing.T) {
		fee := ResolveOfficialFee(target, map[string]string{"category": "General", "gender": "Female"})
		if fee != 0 {
			t.Fatalf("expected 0, got %d", fee)
		}
	})

	t.Run("falls through to Any category exact gender", func(t *testing.T) {
		fee := ResolveOfficialFee(target, map[string]string{"category": "OBC", "gender": "Female"})
		if fee != 250 {
			t.Fatalf("expected 250, got %d", fee)
		}
	})

	t.Run("falls through to Any Any", func(t *testing.T) {
		fee := ResolveOfficialFee(target, map[string]string{"category": "OBC", "gender": "Male"})
		if fee != 300 {
			t.Fatalf("expected 300, got %d", fee)
		}
	})

	t.Run("no category answer resolves to zero", func(t *testing.T) {
		fee := ResolveOfficialFee(target, map[string]string{"gender": "Male"})
		if fee != 0 {
			t.Fatalf("expected 0, got %d", fee)
		}
	})

	t.Run("no matching rule resolves to zero", func(t *testing.T) {
		narrow := entities.CatalogTarget{
			CategoryField: "category",
			GenderField:   "gender",
			FeeRules:      []entities.FeeRule{{Category: "SC", Gender: "Male", Amount: 100}},
		}
		fee := ResolveOfficialFee(narrow, map[string]string{"category": "General", "gender": "Male"})
		if fee != 0 {
			t.Fatalf("expected 0, got %d", fee)
		}
	})

	t.Run("answers are trimmed", func(t *testing.T) {
		fee := ResolveOfficialFee(target, map[string]string{"category": " General ", "gender": " Male "})
		if fee != 500 {
			t.Fatalf("expected 500, got %d", fee)
		}
	})
}

func TestResolveOfficialFee_LegacyLabelFallback(t *testing.T) {
	target := entities.CatalogTarget{
		FeeRules: []entities.FeeRule{
			{Category: "General", Gender: "Male", Amount: 500},
			{Category: entities.CategoryAny, Gender: entities.GenderAny, Amount: 50},
		},
	}

	t.Run("binds answers by label substring", func(t *testing.T) {
		answers := map[string]string{
			"Applicant Category": "General",
			"Gender of holder":   "Male",
			"Full Name":          "A Kumar",
		}
		fee := ResolveOfficialFee(target, answers)
		if fee != 500 {
			t.Fatalf("expected 500, got %d", fee)
		}
	})

	t.Run("skips empty labelled values", func(t *testing.T) {
		answers := map[string]string{
			"Applicant Category": "",
			"Gender":             "Male",
		}
		fee := ResolveOfficialFee(target, answers)
		if fee != 0 {
			t.Fatalf("expected 0, got %d", fee)
		}
	})
}
