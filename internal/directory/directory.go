// Package directory holds the static community reference data bundled with
// the build. It backs report-prompt construction, post-generation
// enrichment and the community listing endpoints.
package directory

import (
	_ "embed"
	"encoding/json"
	"regexp"
	"sort"
	"strings"

	"brief-engine/models"
)

//go:embed communities.json
var communitiesJSON []byte

// ReachMetrics summarizes a community's audience footprint.
type ReachMetrics struct {
	InstagramFollowers    int `json:"instagramFollowers"`
	AverageAttendance     int `json:"averageAttendance"`
	PartnerBrands         int `json:"partnerBrands"`
	ActiveWhatsappMembers int `json:"activeWhatsappMembers"`
}

// Community is one entry of the bundled directory. Read-only at runtime.
type Community struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Image       string       `json:"image"`
	Instagram   string       `json:"instagram"`
	Description string       `json:"description"`
	EventTypes  []string     `json:"eventTypes"`
	Reach       ReachMetrics `json:"reach"`
	Vibe        string       `json:"vibe,omitempty"`
	Tags        []string     `json:"tags,omitempty"`
}

var (
	communities []Community
	byID        map[string]Community
)

func init() {
	var doc struct {
		Communities []Community `json:"communities"`
	}
	if err := json.Unmarshal(communitiesJSON, &doc); err != nil {
		// Bundled asset, a parse failure is a build defect
		panic("directory: invalid communities.json: " + err.Error())
	}
	communities = doc.Communities
	byID = make(map[string]Community, len(communities))
	for _, c := range communities {
		byID[c.ID] = c
	}
}

// All returns the full directory in bundled order.
func All() []Community {
	out := make([]Community, len(communities))
	copy(out, communities)
	return out
}

// Lookup finds a community by id.
func Lookup(id string) (Community, bool) {
	c, ok := byID[id]
	return c, ok
}

// PromptJSON serializes the directory for embedding into the
// report-generation prompt.
func PromptJSON() string {
	b, err := json.MarshalIndent(communities, "", "  ")
	if err != nil {
		return "[]"
	}
	return string(b)
}

// Enrich sets each collaboration's communityName from the directory.
// Known ids always win over provider-supplied names; unknown ids keep the
// provider name or fall back to the raw id, never an empty label.
func Enrich(collabs []models.CommunityCollaboration) []models.CommunityCollaboration {
	out := make([]models.CommunityCollaboration, len(collabs))
	for i, collab := range collabs {
		if c, ok := byID[collab.CommunityID]; ok {
			collab.CommunityName = c.Name
		} else if collab.CommunityName == "" {
			collab.CommunityName = collab.CommunityID
		}
		out[i] = collab
	}
	return out
}

var vibeSplit = regexp.MustCompile(`[,\s]+`)

// Match scores communities against free-text vibe keywords and returns the
// top five. Scoring is deterministic: tag overlap counts double, a vibe
// substring match counts once, ties keep directory order.
func Match(vibes string) []Community {
	keywords := make([]string, 0)
	for _, w := range vibeSplit.Split(strings.ToLower(vibes), -1) {
		if len(w) > 2 {
			keywords = append(keywords, w)
		}
	}
	if len(keywords) == 0 {
		return All()
	}

	type scored struct {
		community Community
		score     int
		order     int
	}
	ranked := make([]scored, 0, len(communities))
	for i, community := range communities {
		score := 0
		for _, tag := range community.Tags {
			for _, keyword := range keywords {
				if strings.Contains(tag, keyword) || strings.Contains(keyword, tag) {
					score += 2
					break
				}
			}
		}
		for _, keyword := range keywords {
			if strings.Contains(community.Vibe, keyword) {
				score++
				break
			}
		}
		ranked = append(ranked, scored{community: community, score: score, order: i})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].order < ranked[j].order
	})

	n := 5
	if len(ranked) < n {
		n = len(ranked)
	}
	out := make([]Community, 0, n)
	for _, s := range ranked[:n] {
		out = append(out, s.community)
	}
	return out
}
