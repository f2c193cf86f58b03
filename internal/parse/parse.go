// Package parse extracts structured output from generative-text responses.
// Providers return anything from clean JSON to markdown-fenced blocks to
// plain prose, so parsing degrades through strategies instead of failing:
// direct JSON, fenced code block, first balanced object span, then
// heuristic section extraction. Results carry a confidence tag so callers
// and tests can tell degraded output from confident output.
package parse

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"brief-engine/models"
)

// Confidence tags how a value was recovered from the raw response.
type Confidence int

const (
	// Structured: one of the JSON strategies parsed the response.
	Structured Confidence = iota
	// Heuristic: sections were regex-extracted from prose.
	Heuristic
	// Placeholder: nothing was recoverable; deterministic stand-in values.
	Placeholder
)

func (c Confidence) String() string {
	switch c {
	case Structured:
		return "structured"
	case Heuristic:
		return "heuristic"
	default:
		return "placeholder"
	}
}

// ReportResult is a parsed campaign report plus how it was obtained.
type ReportResult struct {
	Report     models.CampaignReport
	Confidence Confidence
	Warnings   []string
}

var fencedBlock = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// jsonCandidates returns the spans worth attempting a JSON parse on, in
// strategy order.
func jsonCandidates(raw string) []string {
	candidates := []string{strings.TrimSpace(raw)}
	if m := fencedBlock.FindStringSubmatch(raw); m != nil {
		candidates = append(candidates, strings.TrimSpace(m[1]))
	}
	if span, ok := balancedSpan(raw); ok {
		candidates = append(candidates, span)
	}
	return candidates
}

// balancedSpan finds the first balanced {...} span, tracking string
// literals so braces inside values don't end the scan early.
func balancedSpan(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		ch := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

// BrandSummary parses a brand-synthesis response. It returns an error
// when no strategy yields a summary with a brand essence; the caller
// falls back to deterministic synthesis.
func BrandSummary(raw string) (models.BrandSummary, error) {
	for _, candidate := range jsonCandidates(raw) {
		if candidate == "" || candidate[0] != '{' {
			continue
		}
		var summary models.BrandSummary
		if err := json.Unmarshal([]byte(candidate), &summary); err != nil {
			continue
		}
		if summary.BrandEssence == "" {
			continue
		}
		return summary, nil
	}
	return models.BrandSummary{}, errors.New("no parseable brand summary in response")
}

// Report parses a report-generation response. It is total: every input,
// including empty or pure prose, yields a structurally complete report.
func Report(raw string) ReportResult {
	for _, candidate := range jsonCandidates(raw) {
		if candidate == "" || candidate[0] != '{' {
			continue
		}
		var report models.CampaignReport
		if err := json.Unmarshal([]byte(candidate), &report); err != nil {
			continue
		}
		if report.CampaignIdea.Title == "" && report.CulturalInsight.Description == "" {
			continue
		}
		return ReportResult{Report: report, Confidence: Structured}
	}

	if strings.TrimSpace(raw) == "" {
		return ReportResult{Report: placeholderReport(), Confidence: Placeholder,
			Warnings: []string{"empty provider response"}}
	}
	return heuristicReport(raw)
}

// heuristicReport assembles a best-effort report from prose headings.
// Fields with no recoverable text get fixed stand-ins; metrics are always
// synthetic here.
func heuristicReport(text string) ReportResult {
	warnings := []string{"response was not valid JSON; sections extracted heuristically"}

	insight, ok := extractSection(text, "Cultural Insight")
	if !ok {
		warnings = append(warnings, "cultural insight section not found")
	}
	idea, ok := extractSection(text, "Campaign Idea")
	if !ok {
		warnings = append(warnings, "campaign idea section not found")
	}
	collabText, ok := extractSection(text, "Potential Collaborations")
	if !ok {
		warnings = append(warnings, "collaborations section not found")
	}
	stepsText, _ := extractSection(text, "Next Steps")

	var nextSteps []string
	for _, line := range strings.Split(stepsText, "\n") {
		if s := strings.TrimSpace(line); s != "" && s != missingSection {
			nextSteps = append(nextSteps, s)
		}
	}
	if len(nextSteps) == 0 {
		nextSteps = []string{"Review the campaign outline and identify candidate communities"}
	}

	return ReportResult{
		Report: models.CampaignReport{
			CulturalInsight: models.CulturalInsight{
				Description: insight,
				Metrics:     syntheticMetrics(),
			},
			CampaignIdea: models.CampaignIdea{
				Title:       "Custom Campaign",
				Description: idea,
			},
			PotentialCollaborations: []models.CommunityCollaboration{
				{
					CommunityID:   "five-points-project",
					CommunityName: "Five Points Project",
					Collaborations: []models.Collaboration{
						{
							EngagementType:       "Event",
							Budget:               2000,
							NonMonetaryOfferings: []string{"Products", "Swag"},
							Description:          collabText,
						},
					},
				},
			},
			NextSteps: nextSteps,
		},
		Confidence: Heuristic,
		Warnings:   warnings,
	}
}

func placeholderReport() models.CampaignReport {
	return models.CampaignReport{
		CulturalInsight: models.CulturalInsight{
			Description: missingSection,
			Metrics:     syntheticMetrics(),
		},
		CampaignIdea: models.CampaignIdea{
			Title:       "Custom Campaign",
			Description: missingSection,
		},
		PotentialCollaborations: []models.CommunityCollaboration{
			{
				CommunityID:   "five-points-project",
				CommunityName: "Five Points Project",
				Collaborations: []models.Collaboration{
					{
						EngagementType:       "Event",
						Budget:               2000,
						NonMonetaryOfferings: []string{"Products", "Swag"},
						Description:          missingSection,
					},
				},
			},
		},
		NextSteps: []string{"Review the campaign outline and identify candidate communities"},
	}
}

func syntheticMetrics() []models.CulturalMetric {
	return []models.CulturalMetric{
		{
			Trend:   "Urban Exploration",
			Metric:  "+42% YoY",
			Summary: "Growing interest in city-based adventure content blending style and fitness.",
		},
		{
			Trend:   "Community-Led Experiences",
			Metric:  "+68%",
			Summary: "Consumers prefer authentic events organized by peers over traditional PR activations.",
		},
	}
}

const missingSection = "Content not available"

// extractSection matches text following a heading up to the next blank
// line. The second return reports whether the heading was found.
func extractSection(text, heading string) (string, bool) {
	re := regexp.MustCompile(`(?is)` + regexp.QuoteMeta(heading) + `:?\s*(.*?)(?:\n\n|$)`)
	m := re.FindStringSubmatch(text)
	if m == nil {
		return missingSection, false
	}
	section := strings.TrimSpace(m[1])
	if section == "" {
		return missingSection, false
	}
	return section, true
}
