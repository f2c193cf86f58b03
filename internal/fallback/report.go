package fallback

import (
	"fmt"
	"strings"

	"brief-engine/models"
)

// reportRule pairs a keyword predicate with a template. Rules are
// evaluated in order, first match wins, genericReport is the default.
type reportRule struct {
	name  string
	match func(keywords []string) bool
	build func(audience string) models.CampaignReport
}

func keywordsContainAny(substrings ...string) func([]string) bool {
	return func(keywords []string) bool {
		for _, k := range keywords {
			lk := strings.ToLower(k)
			for _, sub := range substrings {
				if strings.Contains(lk, sub) {
					return true
				}
			}
		}
		return false
	}
}

var reportRules = []reportRule{
	{name: "intellectual", match: keywordsContainAny("chess", "intellectual"), build: intellectualReport},
	{name: "outdoor", match: keywordsContainAny("outdoor", "sport"), build: outdoorReport},
}

// Report builds a deterministic campaign report. All community ids used
// by the templates exist in the static directory.
func Report(brandEssence string, keywords []string, audience string) models.CampaignReport {
	_ = brandEssence
	for _, rule := range reportRules {
		if rule.match(keywords) {
			return rule.build(audience)
		}
	}
	return genericReport(audience)
}

func intellectualReport(string) models.CampaignReport {
	return models.CampaignReport{
		CulturalInsight: models.CulturalInsight{
			Description: "Cities are seeing a revival of analog communal activities, with chess clubs experiencing remarkable growth. This trend reflects a desire for intentional, screen-free social connection among urban millennials and Gen Z. Chess nights in cafes and bars have become cultural touchstones, merging intellectual pursuit with social atmosphere. The movement represents a broader shift toward mindful leisure and authentic face-to-face interaction in an increasingly digital world.",
			Metrics: []models.CulturalMetric{
				{Trend: "Analog Social Revival", Metric: "+67% growth", Summary: "Chess club attendance has surged over the past two years as young professionals seek screen-free social experiences."},
				{Trend: "Intellectual Leisure", Metric: "2.4M TikTok views", Summary: "Chess content on social media has exploded, with #ChessClub trending among Gen Z creators."},
				{Trend: "Cafe Culture 2.0", Metric: "+34% venues", Summary: "Urban cafes and bars hosting chess nights have increased significantly, creating new third spaces."},
				{Trend: "Mindful Competition", Metric: "78% preference", Summary: "Young consumers prefer strategic games over passive entertainment for social gatherings."},
			},
		},
		CampaignIdea: models.CampaignIdea{
			Title:       "Checkmate & Chucks",
			Description: "Host chess nights in sneaker shops that blend chess culture with experimental beats. Each event features limited-edition boards, guest DJs, and your brand's latest drops. Create a tournament series that moves through different London boroughs, building a community of strategic thinkers and style enthusiasts.",
		},
		PotentialCollaborations: []models.CommunityCollaboration{
			{
				CommunityID:   "chess-and-culture-club",
				CommunityName: "Chess & Culture Club",
				Collaborations: []models.Collaboration{
					{
						EngagementType:       "Chess Tournament Night",
						Budget:               1500,
						NonMonetaryOfferings: []string{"Limited edition sneakers for winners", "Branded chess sets", "Exclusive early access to new products"},
						Description:          "Monthly chess tournament nights in your flagship stores, creating a recurring cultural moment that positions your brand at the intersection of intellectual and street culture.",
					},
					{
						EngagementType:       "Workshop Series",
						Budget:               800,
						NonMonetaryOfferings: []string{"Product samples", "Swag bags", "Photography"},
						Description:          "Chess strategy workshops taught by club members, followed by styling sessions showing how to blend intellectual and streetwear aesthetics.",
					},
				},
			},
			{
				CommunityID:   "five-points-project",
				CommunityName: "Five Points Project",
				Collaborations: []models.Collaboration{
					{
						EngagementType:       "Cultural Event",
						Budget:               2000,
						NonMonetaryOfferings: []string{"Venue sponsorship", "Branded merchandise", "Social media coverage"},
						Description:          "Sponsor a 'Checkmate Sessions' night featuring live music and simultaneous chess games, merging the chess club's intellectual vibe with Five Points' music community.",
					},
				},
			},
		},
		NextSteps: []string{
			"Pitch 5 London venues (chess-friendly cafes and sneaker boutiques) for monthly Tuesday nights",
			"Allocate £4k sponsorship budget for Q1 pilot in East London",
			"Commission custom chess set design featuring your brand aesthetic",
			"Create Instagram content series: \"Moves & Moods\" profiling chess club members",
			"Partner with Chess & Culture Club for 6-month exclusive collaboration",
		},
	}
}

func outdoorReport(string) models.CampaignReport {
	return models.CampaignReport{
		CulturalInsight: models.CulturalInsight{
			Description: "The \"urban hiking\" movement has exploded as young city dwellers seek nature experiences without leaving metropolitan areas. This trend merges wellness, photography, and community building into a cohesive lifestyle movement. Unlike traditional outdoor recreation, urban hiking emphasizes accessibility, spontaneity, and social documentation. The movement represents a fundamental shift in how urbanites interact with their environment, transforming overlooked green spaces into destinations.",
			Metrics: []models.CulturalMetric{
				{Trend: "Metropolitan Nature Seekers", Metric: "54% of millennials", Summary: "Over half of young Londoners actively seek nature experiences within city limits weekly."},
				{Trend: "Social Outdoor Content", Metric: "+200% YoY", Summary: "Instagram hashtag #UrbanHiking has doubled year-over-year, driven by creator content."},
				{Trend: "Accessible Adventure", Metric: "3.2M searches", Summary: "Monthly searches for \"hiking near me\" and \"urban trails\" have tripled since 2022."},
				{Trend: "Community Wellness", Metric: "+89% group hikes", Summary: "Organized group hiking events in cities have nearly doubled as people seek social fitness."},
			},
		},
		CampaignIdea: models.CampaignIdea{
			Title:       "Summit & Streets",
			Description: "Launch guided urban hiking experiences that end at popup installations featuring your products. Each hike culminates in a creative workshop (photography, journaling, or outdoor cooking) led by community members. Document the journeys through a collaborative zine made by participants.",
		},
		PotentialCollaborations: []models.CommunityCollaboration{
			{
				CommunityID:   "urban-hikers-collective",
				CommunityName: "Urban Hikers Collective",
				Collaborations: []models.Collaboration{
					{
						EngagementType:       "Guided Hiking Series",
						Budget:               2500,
						NonMonetaryOfferings: []string{"Hiking gear for guides", "Product testing opportunities", "Brand ambassador program"},
						Description:          "Monthly \"Summit & Streets\" guided hikes through hidden London trails, ending at brand popup installations. Each participant receives a limited-edition tote and trail guide.",
					},
					{
						EngagementType:       "Photography Workshop",
						Budget:               1200,
						NonMonetaryOfferings: []string{"Camera equipment sponsorship", "Prints for participants", "Swag"},
						Description:          "Post-hike photography workshops teaching urban landscape techniques, with winners featured in your seasonal campaign.",
					},
				},
			},
			{
				CommunityID:   "five-points-project",
				CommunityName: "Five Points Project",
				Collaborations: []models.Collaboration{
					{
						EngagementType:       "Outdoor Concert",
						Budget:               3000,
						NonMonetaryOfferings: []string{"Venue setup", "Branded stage", "Social promotion"},
						Description:          "Co-host \"Peaks & Beats\" - a sunset outdoor concert at the end of a group hike, blending nature, music, and community.",
					},
				},
			},
		},
		NextSteps: []string{
			"Partner with Urban Hikers Collective for 8-week pilot series starting March",
			"Allocate £7k budget for first quarter activation",
			"Design collaborative zine format with contributions from participants",
			"Create TikTok series: \"Hidden Peaks\" featuring surprise locations",
			"Develop sustainable merchandise line exclusive to hike participants",
		},
	}
}

func genericReport(audience string) models.CampaignReport {
	return models.CampaignReport{
		CulturalInsight: models.CulturalInsight{
			Description: fmt.Sprintf("%s represents a growing demographic seeking authentic brand experiences that align with their values. The cultural landscape is shifting toward intimate, experience-driven connections rather than traditional advertising. This audience values peer-organized events, grassroots storytelling, and brands that demonstrate genuine community engagement. They're moving away from influencer marketing toward real stories from real people in their communities.", audience),
			Metrics: []models.CulturalMetric{
				{Trend: "Authenticity Premium", Metric: "73% preference", Summary: "Consumers now prefer brands that demonstrate genuine community engagement over traditional advertising."},
				{Trend: "Experience Economy", Metric: "+45% spending", Summary: "Young consumers allocate more budget to experiences and events than material goods."},
				{Trend: "Peer-Led Activation", Metric: "2.8x engagement", Summary: "Community-organized events drive nearly 3x higher engagement than brand-led activations."},
				{Trend: "Grassroots Content", Metric: "1.3M shares", Summary: "User-generated content from micro-communities outperforms professional branded content."},
			},
		},
		CampaignIdea: models.CampaignIdea{
			Title:       "Cultural Connections",
			Description: "Design a series of intimate community events that showcase your brand values through authentic collaboration. Partner with grassroots organizations to create memorable experiences that resonate with your target audience.",
		},
		PotentialCollaborations: []models.CommunityCollaboration{
			{
				CommunityID:   "five-points-project",
				CommunityName: "Five Points Project",
				Collaborations: []models.Collaboration{
					{
						EngagementType:       "Live Music Event",
						Budget:               2000,
						NonMonetaryOfferings: []string{"Exclusive tickets", "Discounted merch", "Unique art pieces"},
						Description:          "Host a branded live music night featuring up-and-coming artists to promote your brand during a strategic cultural moment.",
					},
					{
						EngagementType:       "Workshop",
						Budget:               500,
						NonMonetaryOfferings: []string{"Free products", "Swag packs"},
						Description:          "Organize a creative workshop with community members to engage attendees with your products and encourage social sharing.",
					},
				},
			},
		},
		NextSteps: []string{
			"Identify 3-5 key venues aligned with your brand aesthetic",
			"Allocate £3k sponsorship budget for pilot events",
			"Develop social media content strategy highlighting community partnerships",
			"Create exclusive product line for event participants",
		},
	}
}
