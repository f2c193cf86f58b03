package prompt

import (
	"strings"
	"testing"

	"brief-engine/models"
)

func TestBrandSynthesisDeclaresSchema(t *testing.T) {
	p := BrandSynthesis(models.BrandAnswers{
		BrandName: "Trailhead",
		Mission:   "Connect city dwellers with the outdoors.",
		Tone:      "bold, playful",
	}, []string{"outdoor / sport"})

	for _, key := range []string{"brandEssence", "keywords", "audience", `"tone"`, "communities", "fileKeywords"} {
		if !strings.Contains(p, key) {
			t.Errorf("brand prompt missing required output key %s", key)
		}
	}
	if !strings.Contains(p, "Trailhead") {
		t.Error("brand prompt does not interpolate brand name")
	}
	if !strings.Contains(p, `["outdoor / sport"]`) {
		t.Error("brand prompt does not echo fileKeywords verbatim")
	}
	if !strings.Contains(p, "Not provided") {
		t.Error("missing fields should render as Not provided")
	}
}

func TestReportSystemEmbedsDirectory(t *testing.T) {
	p := ReportSystem()
	for _, key := range []string{"culturalInsight", "campaignIdea", "potentialCollaborations", "nextSteps", "communityId"} {
		if !strings.Contains(p, key) {
			t.Errorf("report prompt missing required output key %s", key)
		}
	}
	for _, id := range []string{"five-points-project", "chess-and-culture-club"} {
		if !strings.Contains(p, id) {
			t.Errorf("report prompt missing directory id %s", id)
		}
	}
	// Sprintf formatting must not mangle literal percent signs
	if strings.Contains(p, "%!") {
		t.Error("report prompt contains a formatting artifact")
	}
	if !strings.Contains(p, "+42% YoY") {
		t.Error("report prompt lost its example metric text")
	}
}

func TestReportUserOmitsEmptyFiles(t *testing.T) {
	p := ReportUser(models.GenerateReportRequest{
		BrandEssence: "x",
		Keywords:     []string{"chess", "intellectual"},
		Audience:     "y",
	})
	if strings.Contains(p, "Uploaded Files") {
		t.Error("file section rendered without file names")
	}
	if !strings.Contains(p, "chess, intellectual") {
		t.Error("keywords not joined into user prompt")
	}
}

func TestEmailPromptsAreDeterministic(t *testing.T) {
	req := models.GenerateEmailRequest{
		BrandName:            "Trailhead",
		BrandTone:            "bold",
		CampaignTitle:        "Summit & Streets",
		CommunityName:        "Urban Hikers Collective",
		EngagementType:       "Guided Hiking Series",
		Budget:               2500,
		NonMonetaryOfferings: []string{"Hiking gear", "Swag"},
	}
	a, b := EmailUser(req), EmailUser(req)
	if a != b {
		t.Fatal("email user prompt is not deterministic")
	}
	if !strings.Contains(a, "£2,500") {
		t.Errorf("budget not formatted with separator: %q", a)
	}
	if !strings.Contains(EmailSystem(), "no subject line") {
		t.Error("email system prompt must declare the plain-text contract")
	}
}

func TestEmailUserDefaultsBrandName(t *testing.T) {
	p := EmailUser(models.GenerateEmailRequest{})
	if !strings.Contains(p, "Our brand") {
		t.Error("empty brand name should fall back to Our brand")
	}
}
