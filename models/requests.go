package models

// SynthesizeBrandRequest is the body of POST /api/synthesize-brand.
type SynthesizeBrandRequest struct {
	Answers      *BrandAnswers `json:"answers"`
	FileKeywords []string      `json:"fileKeywords"`
}

// GenerateReportRequest is the body of POST /api/generate-report.
type GenerateReportRequest struct {
	BrandEssence      string   `json:"brandEssence"`
	Keywords          []string `json:"keywords"`
	Audience          string   `json:"audience"`
	OptionalFileNames []string `json:"optionalFileNames"`
}

// GenerateEmailRequest is the body of POST /api/generate-email.
type GenerateEmailRequest struct {
	BrandName                string   `json:"brandName"`
	BrandTone                string   `json:"brandTone"`
	CampaignTitle            string   `json:"campaignTitle"`
	CampaignDescription      string   `json:"campaignDescription"`
	CommunityName            string   `json:"communityName"`
	CommunityDescription     string   `json:"communityDescription"`
	EngagementType           string   `json:"engagementType"`
	Budget                   float64  `json:"budget"`
	NonMonetaryOfferings     []string `json:"nonMonetaryOfferings"`
	CollaborationDescription string   `json:"collaborationDescription"`
}

// GenerateEmailResponse wraps a generated outreach email body.
type GenerateEmailResponse struct {
	Email string `json:"email"`
}
