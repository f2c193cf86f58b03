// Package fallback holds the deterministic generators that stand in for
// the generative provider whenever no credential is configured or a call
// fails. Every generator is total for well-formed input and produces the
// same output shape as the provider path.
package fallback

import (
	"regexp"
	"strings"

	"brief-engine/models"
)

var toneSplit = regexp.MustCompile(`[,;]+`)

// extractAdjectives pulls up to three tone adjectives from the free-text
// tone field.
func extractAdjectives(tone string) []string {
	if strings.TrimSpace(tone) == "" {
		return []string{"authentic", "bold"}
	}
	var adjectives []string
	for _, w := range toneSplit.Split(strings.ToLower(tone), -1) {
		if w = strings.TrimSpace(w); w != "" {
			adjectives = append(adjectives, w)
		}
	}
	if len(adjectives) == 0 {
		return []string{"authentic", "bold"}
	}
	if len(adjectives) > 3 {
		adjectives = adjectives[:3]
	}
	return adjectives
}

// missionVerbs are matched against the mission text in order; first hit
// wins, "connect" is the default.
var missionVerbs = []string{
	"connect", "create", "inspire", "empower", "build",
	"transform", "celebrate", "unite", "elevate", "champion",
}

func extractVerb(mission string) string {
	lower := strings.ToLower(mission)
	for _, verb := range missionVerbs {
		if strings.Contains(lower, verb) {
			return verb
		}
	}
	return "connect"
}

func isOutdoorBrand(mission string, fileKeywords []string) bool {
	lower := strings.ToLower(mission)
	if strings.Contains(lower, "sport") || strings.Contains(lower, "outdoor") || strings.Contains(lower, "active") {
		return true
	}
	for _, k := range fileKeywords {
		lk := strings.ToLower(k)
		if strings.Contains(lk, "outdoor") || strings.Contains(lk, "sport") {
			return true
		}
	}
	return false
}

func firstSentence(s string) string {
	return strings.SplitN(s, ".", 2)[0]
}

// inspiration tokens shorter than this, or matching generic event words,
// are skipped
var inspirationStopwords = map[string]bool{"event": true, "campaign": true}

// BrandSummary synthesizes a brand summary from the raw answers without
// any provider call. Keywords are capped at 5 with insertion order
// preserved and duplicates collapsed; tone is capped at 3 adjectives.
func BrandSummary(answers models.BrandAnswers, fileKeywords []string) models.BrandSummary {
	adjectives := extractAdjectives(answers.Tone)
	verb := extractVerb(answers.Mission)
	mission := answers.Mission

	var brandEssence string
	switch {
	case isOutdoorBrand(mission, fileKeywords) && len(adjectives) >= 2:
		brandEssence = "An " + adjectives[0] + ", " + adjectives[1] + " brand that aims to " + verb +
			" communities through outdoor experiences and active culture."
	case mission != "" && len(adjectives) >= 2:
		brandEssence = "A " + adjectives[0] + ", " + adjectives[1] + " brand that seeks to " + verb +
			" with audiences. " + firstSentence(mission) + "."
	case mission != "":
		brandEssence = firstSentence(mission) + ". " + strings.ToUpper(verb[:1]) + verb[1:] + "ing through " +
			adjectives[0] + " storytelling and cultural resonance."
	default:
		second := "boldness"
		if len(adjectives) >= 2 {
			second = adjectives[1]
		}
		brandEssence = "A brand that values " + adjectives[0] + " and speaks with " + second + "."
	}

	// Keyword set: adjectives, up to 2 community tokens, up to 2 file
	// keywords, one inspiration token; capped at 5, first-seen order.
	seen := make(map[string]bool)
	var keywords []string
	add := func(k string) {
		if k != "" && !seen[k] {
			seen[k] = true
			keywords = append(keywords, k)
		}
	}
	for _, adj := range adjectives {
		add(adj)
	}
	communityTokens := splitList(strings.ToLower(answers.Communities))
	for i, c := range communityTokens {
		if i >= 2 {
			break
		}
		add(c)
	}
	for i, k := range fileKeywords {
		if i >= 2 {
			break
		}
		add(k)
	}
	if answers.Inspiration != "" {
		for _, w := range strings.Fields(strings.ToLower(answers.Inspiration)) {
			if len(w) > 4 && !inspirationStopwords[w] {
				add(w)
				break
			}
		}
	}
	if len(keywords) > 5 {
		keywords = keywords[:5]
	}

	audience := answers.Communities
	if audience == "" {
		audience = "Culturally engaged communities"
	}

	var brandName, brandWebsite *string
	if answers.BrandName != "" {
		brandName = &answers.BrandName
	}
	if answers.BrandWebsite != "" {
		brandWebsite = &answers.BrandWebsite
	}
	if fileKeywords == nil {
		fileKeywords = []string{}
	}

	return models.BrandSummary{
		BrandName:    brandName,
		BrandWebsite: brandWebsite,
		BrandEssence: brandEssence,
		Keywords:     keywords,
		Audience:     audience,
		Tone:         adjectives,
		Communities:  splitList(answers.Communities),
		FileKeywords: fileKeywords,
	}
}

// splitList splits a comma/semicolon-delimited field into trimmed,
// non-empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range toneSplit.Split(s, -1) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
