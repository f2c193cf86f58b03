// Package moodboard fetches mood imagery for brand keywords from the
// Unsplash search API, with a deterministic mock pool when no access key
// is configured and a short-lived cache keyed by (keywords, seed).
package moodboard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"brief-engine/internal/logger"
	"brief-engine/internal/store"
	"brief-engine/models"
)

const (
	maxImages    = 8
	minImages    = 6
	apiBaseURL   = "https://api.unsplash.com"
	paddingQuery = "creative abstract"
)

type Service struct {
	accessKey  string
	baseURL    string
	httpClient *http.Client
	cache      store.Cache
	cacheTTL   time.Duration
}

func NewService(accessKey string, cache store.Cache, cacheTTL time.Duration) *Service {
	return &Service{
		accessKey:  accessKey,
		baseURL:    apiBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cache:      cache,
		cacheTTL:   cacheTTL,
	}
}

// Search returns up to 8 images for the keywords. Results are cached for
// the configured TTL; within that window a repeat call returns the cached
// list without touching the provider.
func (s *Service) Search(ctx context.Context, keywords []string, seed string) ([]models.MoodboardImage, error) {
	cacheKey := "moodboard:" + strings.Join(keywords, ",") + "-" + seed

	if cached, ok := s.cache.Get(ctx, cacheKey); ok {
		var images []models.MoodboardImage
		if err := json.Unmarshal(cached, &images); err == nil {
			return images, nil
		}
	}

	var images []models.MoodboardImage
	if s.accessKey == "" {
		logger.Warn("no UNSPLASH_ACCESS_KEY configured, serving mock images")
		images = mockImages(keywords, seed)
	} else {
		images = s.fetch(ctx, keywords, seed)
	}

	if data, err := json.Marshal(images); err == nil {
		s.cache.Set(ctx, cacheKey, data, s.cacheTTL)
	}
	return images, nil
}

// fetch searches the first three keywords, deduplicates by photo id, and
// pads with a generic query when the result set is thin. Individual
// keyword failures are logged and skipped.
func (s *Service) fetch(ctx context.Context, keywords []string, seed string) []models.MoodboardImage {
	images := make([]models.MoodboardImage, 0, maxImages)
	seen := make(map[string]bool)

	seedNum, _ := strconv.Atoi(seed)
	page := seedNum%3 + 1

	searchKeywords := keywords
	if len(searchKeywords) > 3 {
		searchKeywords = searchKeywords[:3]
	}

	for _, keyword := range searchKeywords {
		results, err := s.searchPhotos(ctx, keyword, 3, page)
		if err != nil {
			logger.Error("unsplash search failed", "keyword", keyword, "error", err)
			continue
		}
		images = appendPhotos(images, results, seen, keyword)
		if len(images) >= maxImages {
			return images[:maxImages]
		}
	}

	if len(images) < minImages {
		results, err := s.searchPhotos(ctx, paddingQuery, maxImages-len(images), 1)
		if err != nil {
			logger.Error("unsplash padding search failed", "error", err)
			return images
		}
		images = appendPhotos(images, results, seen, "creative")
	}
	if len(images) > maxImages {
		images = images[:maxImages]
	}
	return images
}

type unsplashPhoto struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	AltDesc     string `json:"alt_description"`
	URLs        struct {
		Regular string `json:"regular"`
		Full    string `json:"full"`
	} `json:"urls"`
	Tags []struct {
		Title string `json:"title"`
	} `json:"tags"`
	User struct {
		Name  string `json:"name"`
		Links struct {
			HTML string `json:"html"`
		} `json:"links"`
	} `json:"user"`
}

type unsplashSearchResponse struct {
	Results []unsplashPhoto `json:"results"`
}

func (s *Service) searchPhotos(ctx context.Context, query string, perPage, page int) ([]unsplashPhoto, error) {
	endpoint := fmt.Sprintf("%s/search/photos?query=%s&per_page=%d&page=%d&orientation=landscape",
		s.baseURL, url.QueryEscape(query), perPage, page)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Client-ID "+s.accessKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unsplash responded %s", resp.Status)
	}

	var parsed unsplashSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode unsplash response: %v", err)
	}
	return parsed.Results, nil
}

func appendPhotos(images []models.MoodboardImage, photos []unsplashPhoto, seen map[string]bool, keyword string) []models.MoodboardImage {
	for _, photo := range photos {
		if seen[photo.ID] {
			continue
		}
		seen[photo.ID] = true

		alt := photo.AltDesc
		if alt == "" {
			alt = photo.Description
		}
		if alt == "" {
			alt = keyword
		}

		tags := make([]string, 0, 3)
		for _, t := range photo.Tags {
			if len(tags) == 3 {
				break
			}
			tags = append(tags, t.Title)
		}
		if len(tags) == 0 {
			tags = []string{keyword}
		}

		images = append(images, models.MoodboardImage{
			ID:              photo.ID,
			URL:             photo.URLs.Regular,
			URLLarge:        photo.URLs.Full,
			Alt:             alt,
			Tags:            tags,
			Photographer:    photo.User.Name,
			PhotographerURL: photo.User.Links.HTML,
		})
		if len(images) >= maxImages {
			break
		}
	}
	return images
}
