// Package prompt builds the instruction and user-content strings sent to
// the generative provider. Builders are pure string construction; the
// response parser depends on the schemas they declare, so required output
// keys must never be dropped from the instruction text.
package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"brief-engine/internal/directory"
	"brief-engine/models"
	"brief-engine/utils"
)

func orNotProvided(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Not provided"
	}
	return s
}

// BrandSynthesis builds the single-prompt brand synthesis request in the
// voice of a senior brand strategist.
func BrandSynthesis(answers models.BrandAnswers, fileKeywords []string) string {
	fileThemes := "Not provided"
	if len(fileKeywords) > 0 {
		fileThemes = strings.Join(fileKeywords, ", ")
	}
	echoed, _ := json.Marshal(fileKeywords)
	if fileKeywords == nil {
		echoed = []byte("[]")
	}

	return fmt.Sprintf(`You are a senior brand strategist at a world-class PR and creative agency. Your expertise lies in synthesizing complex brand narratives into compelling, strategic brand essences that resonate with cultural movements and diverse audiences.

You have been provided with the following brand discovery inputs from a client:

**Brand Name:** %s
**Website:** %s
**Mission Statement:** %s
**Tone & Voice Descriptors:** %s
**Target Communities/Subcultures:** %s
**Inspirational Reference (Event/Campaign):** %s
**Budget Range:** %s
**Visual/Cultural Themes from Brand Materials:** %s

---

**Your Task:**

Synthesize this information into a strategic brand summary. Your output must be sophisticated, culturally astute, and demonstrate deep understanding of contemporary brand positioning. Think like you're preparing materials for a C-suite presentation or a high-stakes pitch.

Generate a JSON object with the following structure:

{
  "brandEssence": "A 1-2 sentence poetic yet strategic statement that captures the soul of the brand. This should feel like it could open a keynote or brand manifesto. Be bold, aspirational, and culturally resonant. Avoid clichés. Reference the mission and tone naturally.",
  "keywords": ["keyword1", "keyword2", "keyword3", "keyword4", "keyword5"],
  "audience": "A concise, insightful description of the target audience that goes beyond demographics to capture psychographics and cultural identity.",
  "tone": ["adjective1", "adjective2", "adjective3"],
  "communities": ["community1", "community2", "community3"],
  "fileKeywords": %s
}

**Guidelines for brandEssence:**
- Write as if you're crafting the opening line of a TED talk or brand film
- Be concrete yet evocative
- Reference the mission statement naturally, but elevate it
- Infuse the tone descriptors seamlessly
- Make it memorable and quotable
- 2-3 sentences maximum
- Avoid "You are" or "We are" openings—be more creative

**Guidelines for keywords:**
- Extract 5 highly visual, culturally relevant keywords for image curation
- These will be used to search for brand imagery (moodboard)
- Blend tone words, community references, and visual themes
- Think like a creative director curating a moodboard

**Guidelines for audience:**
- Go beyond listing communities—describe their mindset, values, and cultural position
- Be specific yet inclusive
- Capture the "why" they would connect with this brand

**Guidelines for tone:**
- Extract 3 core adjectives from the provided tone
- If tone is vague, infer from mission and communities

**Guidelines for communities:**
- Parse the communities field into 2-4 distinct community names
- Be specific (e.g., "skaters", "indie music lovers", "chess enthusiasts")

Return ONLY the JSON object, no additional commentary.`,
		orNotProvided(answers.BrandName),
		orNotProvided(answers.BrandWebsite),
		orNotProvided(answers.Mission),
		orNotProvided(answers.Tone),
		orNotProvided(answers.Communities),
		orNotProvided(answers.Inspiration),
		orNotProvided(answers.Budget),
		fileThemes,
		string(echoed),
	)
}

// ReportSystem builds the campaign-report instruction, embedding the full
// community directory so generated communityId values come from it.
func ReportSystem() string {
	return fmt.Sprintf(`You are a creative strategist at an AI PR agency helping brands design community-led campaigns. Given the brand info, write a concise strategy report with sections:

- Cultural Insight: Provide a 2-3 paragraph description of the relevant market trend as a cultural trend analyst, then generate 3-4 supporting metrics. Each metric should have:
  * trend: name of the micro-trend (e.g., "Urban Exploration", "Community-Led Experiences")
  * metric: the statistic (e.g., "+42%% YoY", "1.3M mentions", "68%% growth")
  * summary: 1-2 sentence explanation of what this means

- Campaign Idea: A few sentences on the campaign strategy. Inspire in the voice of a PR agency.

- Potential Collaborations: A list of collaborations it can organize with communities from the network below with details on the engagement that best fits the campaign idea and strategy

- Next Steps: Action items, something that grounds this idea and makes it seem more feasible.

Make it punchy, poetic, and brand-world ready. Output JSON with keys: culturalInsight (object with description string and metrics array), campaignIdea (object with title and description), potentialCollaborations (array<CommunityCollaboration>), nextSteps (array).

The schema for each CommunityCollaboration is:
{
  "communityId": "string",  // Must match one of the available community IDs
  "collaborations": [
    {
      "engagementType": "string",       // e.g., Event, Workshop, Concert, Social Media Campaign
      "budget": number,                 // Amount in £
      "nonMonetaryOfferings": ["string"], // Free products, swag, venue, tickets
      "description": "string"           // Details of the engagement in line with the strategy
    }
  ]
}

Available communities you can reference:
%s

IMPORTANT: Choose 1-2 communities that best fit the brand and campaign strategy. Use their actual IDs from the list above.`, directory.PromptJSON())
}

// ReportUser builds the user content for report generation.
func ReportUser(req models.GenerateReportRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Brand Essence: %s\n\n", req.BrandEssence)
	fmt.Fprintf(&b, "Keywords: %s\n\n", strings.Join(req.Keywords, ", "))
	fmt.Fprintf(&b, "Target Audience: %s\n\n", req.Audience)
	if len(req.OptionalFileNames) > 0 {
		fmt.Fprintf(&b, "Uploaded Files: %s\n\n", strings.Join(req.OptionalFileNames, ", "))
	}
	b.WriteString("Generate a creative campaign strategy report for this brand.")
	return b.String()
}

// EmailSystem declares the plain-text outreach email contract: body only,
// 300-400 words, no subject line, no JSON.
func EmailSystem() string {
	return `You are a professional brand partnership manager writing personalized outreach emails to community organizers.

Write a warm, authentic email that:
1. Introduces the brand and their values
2. Expresses genuine interest in the community and their work
3. Proposes the collaboration in an exciting but respectful way
4. Clearly outlines what the brand is offering (budget + non-monetary offerings)
5. Invites a conversation to explore the partnership

Tone guidelines:
- Match the brand's tone (provided in the request)
- Be genuine and human, not corporate or salesy
- Show you've done your research on the community
- Express excitement without being pushy
- Keep it concise (300-400 words max)

Return ONLY the email body text (no subject line, no JSON wrapper).`
}

// EmailUser builds the user content for outreach email generation.
func EmailUser(req models.GenerateEmailRequest) string {
	brandName := req.BrandName
	if brandName == "" {
		brandName = "Our brand"
	}
	return fmt.Sprintf(`Write an outreach email for the following partnership:

BRAND:
Name: %s
Tone: %s

CAMPAIGN:
Title: %s
Description: %s

COMMUNITY:
Name: %s
Description: %s

COLLABORATION:
Type: %s
Budget: £%s
Additional Offerings: %s
Details: %s

Write the email body (no subject line).`,
		brandName,
		req.BrandTone,
		req.CampaignTitle,
		req.CampaignDescription,
		req.CommunityName,
		req.CommunityDescription,
		req.EngagementType,
		utils.FormatAmount(req.Budget),
		strings.Join(req.NonMonetaryOfferings, ", "),
		req.CollaborationDescription,
	)
}
