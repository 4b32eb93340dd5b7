package usecase

import (
	"sort"
	"strings"

	"nagrik_seva/internal/domain/entities"
)

// ResolveOfficialFee computes the official government fee owed for a set of
// submitted answers against the target's fee rule matrix.
//
// Rule lookup is strict precedence, first match wins:
//  1. category == X AND gender == Y
//  2. category == X AND gender == Any
//  3. category == Any AND gender == Y
//  4. category == Any AND gender == Any
//
// No category answer, or no matching rule, resolves to 0. The result is
// computed once at submission and frozen into the request's payment
// snapshot.
func ResolveOfficialFee(target entities.CatalogTarget, answers map[string]string) int64 {
	category := answerValue(answers, target.CategoryField, "category")
	if category == "" {
		return 0
	}
	gender := answerValue(answers, target.GenderField, "gender")

	predicates := []func(r entities.FeeRule) bool{
		func(r entities.FeeRule) bool { return r.Category == category && r.Gender == gender },
		func(r entities.FeeRule) bool { return r.Category == category && r.Gender == entities.GenderAny },
		func(r entities.FeeRule) bool { return r.Category == entities.CategoryAny && r.Gender == gender },
		func(r entities.FeeRule) bool {
			return r.Category == entities.CategoryAny && r.Gender == entities.GenderAny
		},
	}
	for _, match := range predicates {
		for _, rule := range target.FeeRules {
			if match(rule) {
				return rule.Amount
			}
		}
	}
	return 0
}

// answerValue reads the canonical field when the target designates one.
// The substring fallback exists only for legacy targets authored before
// canonical fields; it scans keys in sorted order so the binding stays
// deterministic when several labels contain the needle.
func answerValue(answers map[string]string, canonicalField, needle string) string {
	if canonicalField != "" {
		return strings.TrimSpace(answers[canonicalField])
	}

	keys := make([]string, 0, len(answers))
	for k := range answers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if strings.Contains(strings.ToLower(k), needle) {
			if v := strings.TrimSpace(answers[k]); v != "" {
				return v
			}
		}
	}
	return ""
}
