package models

// BrandAnswers holds the guided-question form input for one session.
type BrandAnswers struct {
	BrandName    string   `json:"brandName"`
	BrandWebsite string   `json:"brandWebsite"`
	Mission      string   `json:"mission"`
	Tone         string   `json:"tone"`
	Communities  string   `json:"communities"`
	Inspiration  string   `json:"inspiration"`
	Budget       string   `json:"budget"`
	FileNames    []string `json:"fileNames,omitempty"`
}

// BrandSummary is the synthesized brand essence plus the keyword and
// audience material downstream calls reuse. Keywords carry at most 5
// entries and Tone at most 3.
type BrandSummary struct {
	BrandName    *string  `json:"brandName"`
	BrandWebsite *string  `json:"brandWebsite"`
	BrandEssence string   `json:"brandEssence"`
	Keywords     []string `json:"keywords"`
	Audience     string   `json:"audience"`
	Tone         []string `json:"tone"`
	Communities  []string `json:"communities"`
	FileKeywords []string `json:"fileKeywords"`
}

// Collaboration is a proposed engagement between a brand and a community.
type Collaboration struct {
	EngagementType       string   `json:"engagementType"`
	Budget               float64  `json:"budget"`
	NonMonetaryOfferings []string `json:"nonMonetaryOfferings"`
	Description          string   `json:"description"`
}

// CommunityCollaboration groups collaborations under a community from the
// static directory. CommunityName is denormalized and filled in by
// enrichment after generation.
type CommunityCollaboration struct {
	CommunityID    string          `json:"communityId"`
	CommunityName  string          `json:"communityName,omitempty"`
	Collaborations []Collaboration `json:"collaborations"`
}

type CulturalMetric struct {
	Trend   string `json:"trend"`
	Metric  string `json:"metric"`
	Summary string `json:"summary"`
}

type CulturalInsight struct {
	Description string           `json:"description"`
	Metrics     []CulturalMetric `json:"metrics"`
}

type CampaignIdea struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CampaignReport is the full strategy report returned by report generation.
type CampaignReport struct {
	CulturalInsight         CulturalInsight          `json:"culturalInsight"`
	CampaignIdea            CampaignIdea             `json:"campaignIdea"`
	PotentialCollaborations []CommunityCollaboration `json:"potentialCollaborations"`
	NextSteps               []string                 `json:"nextSteps"`
}

// MoodboardImage is one photo result from image search, with attribution.
type MoodboardImage struct {
	ID              string   `json:"id"`
	URL             string   `json:"url"`
	URLLarge        string   `json:"urlLarge"`
	Alt             string   `json:"alt"`
	Tags            []string `json:"tags"`
	Photographer    string   `json:"photographer"`
	PhotographerURL string   `json:"photographerUrl,omitempty"`
}
