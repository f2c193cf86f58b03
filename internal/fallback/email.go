package fallback

import (
	"fmt"
	"strings"

	"brief-engine/models"
	"brief-engine/utils"
)

// Email interpolates the collaboration details into a fixed outreach
// template: greeting, context paragraph, offer summary, sign-off. The
// output is byte-identical for identical input.
func Email(req models.GenerateEmailRequest) string {
	brandName := req.BrandName
	signoff := req.BrandName
	if brandName == "" {
		brandName = "our brand"
		signoff = "The Brand Team"
	}

	communityIntro := strings.SplitN(req.CommunityDescription, ".", 2)[0]

	return fmt.Sprintf(`Hi there,

I hope this message finds you well! I'm reaching out from %s because we've been following %s's incredible work in building authentic community connections.

We're currently developing "%s" - a campaign that aligns beautifully with %s's mission. %s, and we believe there's a natural synergy between what you're building and what we stand for.

We'd love to explore a partnership around %s that would bring real value to your community. Here's what we're thinking:

Budget: £%s
Additional offerings: %s

%s

We're genuinely excited about the possibility of working together and would love to set up a call to discuss how we can make this collaboration meaningful for %s and your community members.

Would you be open to a quick chat next week?

Looking forward to hearing from you!

Best,
%s`,
		brandName,
		req.CommunityName,
		req.CampaignTitle,
		req.CommunityName,
		communityIntro,
		strings.ToLower(req.EngagementType),
		utils.FormatAmount(req.Budget),
		strings.Join(req.NonMonetaryOfferings, ", "),
		req.CollaborationDescription,
		req.CommunityName,
		signoff,
	)
}
