package moodboard

import (
	"strconv"

	"brief-engine/models"
)

// mockPool is served without an API key. Curated Unsplash CDN links that
// need no credential.
var mockPool = []models.MoodboardImage{
	{
		ID:           "mock-1",
		URL:          "https://images.unsplash.com/photo-1492144534655-ae79c964c9d7",
		URLLarge:     "https://images.unsplash.com/photo-1492144534655-ae79c964c9d7?w=1920",
		Alt:          "Urban street culture",
		Tags:         []string{"urban", "street", "culture"},
		Photographer: "Unsplash",
	},
	{
		ID:           "mock-2",
		URL:          "https://images.unsplash.com/photo-1511379938547-c1f69419868d",
		URLLarge:     "https://images.unsplash.com/photo-1511379938547-c1f69419868d?w=1920",
		Alt:          "Music and audio equipment",
		Tags:         []string{"music", "audio", "creative"},
		Photographer: "Unsplash",
	},
	{
		ID:           "mock-3",
		URL:          "https://images.unsplash.com/photo-1506905925346-21bda4d32df4",
		URLLarge:     "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=1920",
		Alt:          "Mountain landscape adventure",
		Tags:         []string{"nature", "outdoor", "adventure"},
		Photographer: "Unsplash",
	},
	{
		ID:           "mock-4",
		URL:          "https://images.unsplash.com/photo-1551410224-699683e15636",
		URLLarge:     "https://images.unsplash.com/photo-1551410224-699683e15636?w=1920",
		Alt:          "Chess strategy game",
		Tags:         []string{"chess", "strategy", "intellectual"},
		Photographer: "Unsplash",
	},
	{
		ID:           "mock-5",
		URL:          "https://images.unsplash.com/photo-1558618666-fcd25c85cd64",
		URLLarge:     "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=1920",
		Alt:          "Skateboarding urban sport",
		Tags:         []string{"skateboard", "sport", "urban"},
		Photographer: "Unsplash",
	},
	{
		ID:           "mock-6",
		URL:          "https://images.unsplash.com/photo-1506794778202-cad84cf45f1d",
		URLLarge:     "https://images.unsplash.com/photo-1506794778202-cad84cf45f1d?w=1920",
		Alt:          "Creative portrait",
		Tags:         []string{"portrait", "creative", "people"},
		Photographer: "Unsplash",
	},
	{
		ID:           "mock-7",
		URL:          "https://images.unsplash.com/photo-1501696461415-6bd6660c6742",
		URLLarge:     "https://images.unsplash.com/photo-1501696461415-6bd6660c6742?w=1920",
		Alt:          "Hiking and outdoor activity",
		Tags:         []string{"hiking", "outdoor", "nature"},
		Photographer: "Unsplash",
	},
	{
		ID:           "mock-8",
		URL:          "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f",
		URLLarge:     "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=1920",
		Alt:          "Live music performance",
		Tags:         []string{"music", "live", "performance"},
		Photographer: "Unsplash",
	},
}

// mockImages rotates the pool by a value derived from the keywords and
// seed so different requests see different orderings but identical
// requests always get identical lists.
func mockImages(keywords []string, seed string) []models.MoodboardImage {
	seedNum, _ := strconv.Atoi(seed)
	joined := 0
	for _, k := range keywords {
		joined += len(k)
	}
	offset := (joined + seedNum) % len(mockPool)

	out := make([]models.MoodboardImage, 0, len(mockPool))
	for i := range mockPool {
		out = append(out, mockPool[(offset+i)%len(mockPool)])
	}
	return out
}
