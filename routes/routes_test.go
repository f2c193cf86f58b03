package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"brief-engine/internal/config"
	"brief-engine/internal/moodboard"
	"brief-engine/internal/store"
	"brief-engine/middleware"
	"brief-engine/models"

	"github.com/gin-gonic/gin"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:               "8080",
		GinMode:            "test",
		CORSOrigins:        []string{"http://localhost:3000"},
		MoodboardCacheTTL:  5 * time.Minute,
		RateLimitWindow:    time.Minute,
		BrandRateLimit:     20,
		ReportRateLimit:    5,
		EmailRateLimit:     5,
		MoodboardRateLimit: 10,
	}
}

// newTestRouter wires every route with in-process stores and no provider
// credentials, so all responses come from the deterministic paths.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	counter := store.NewMemoryCounter()
	cache := store.NewMemoryCache()

	router := gin.New()
	router.Use(middleware.RequestIDMiddleware())

	SetupBrandRoutes(router, cfg, nil, counter)
	SetupReportRoutes(router, cfg, nil, counter)
	SetupEmailRoutes(router, cfg, nil, counter)
	SetupMoodboardRoutes(router, cfg, moodboard.NewService("", cache, cfg.MoodboardCacheTTL), counter)
	SetupCommunityRoutes(router)
	return router
}

func postJSON(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	buf, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "192.0.2.10:54321"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = "192.0.2.10:54321"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSynthesizeBrandFallback(t *testing.T) {
	router := newTestRouter()

	w := postJSON(router, "/api/synthesize-brand", models.SynthesizeBrandRequest{
		Answers: &models.BrandAnswers{
			BrandName:   "Acme Chess Co",
			Mission:     "We want to connect chess lovers with great gear",
			Tone:        "bold; playful; raw; extra",
			Communities: "chess clubs and quiet cafes",
			Inspiration: "grandmaster streams",
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var summary models.BrandSummary
	if err := json.Unmarshal(w.Body.Bytes(), &summary); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if summary.BrandEssence == "" {
		t.Fatalf("empty brandEssence")
	}
	if len(summary.Tone) != 3 {
		t.Fatalf("tone = %v, want exactly 3 entries", summary.Tone)
	}
	if summary.Tone[0] != "bold" || summary.Tone[1] != "playful" || summary.Tone[2] != "raw" {
		t.Fatalf("tone = %v, want first three adjectives in order", summary.Tone)
	}
	if len(summary.Keywords) == 0 || len(summary.Keywords) > 5 {
		t.Fatalf("keywords = %v, want 1..5 entries", summary.Keywords)
	}
	if summary.BrandName == nil || *summary.BrandName != "Acme Chess Co" {
		t.Fatalf("brandName not carried through: %v", summary.BrandName)
	}
}

func TestSynthesizeBrandMissingAnswers(t *testing.T) {
	router := newTestRouter()

	for _, body := range []string{`{}`, `not json`} {
		req := httptest.NewRequest(http.MethodPost, "/api/synthesize-brand", bytes.NewReader([]byte(body)))
		req.Header.Set("Content-Type", "application/json")
		req.RemoteAddr = "192.0.2.11:1000"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %q: status = %d, want 400", body, w.Code)
		}
	}
}

func TestSynthesizeBrandDerivesFileKeywords(t *testing.T) {
	router := newTestRouter()

	w := postJSON(router, "/api/synthesize-brand", models.SynthesizeBrandRequest{
		Answers: &models.BrandAnswers{
			Mission:   "outfitting city hikers",
			FileNames: []string{"salomon-lookbook.pdf"},
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var summary models.BrandSummary
	if err := json.Unmarshal(w.Body.Bytes(), &summary); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	found := false
	for _, k := range summary.FileKeywords {
		if k == "outdoor / sport" {
			found = true
		}
	}
	if !found {
		t.Fatalf("fileKeywords = %v, want derived outdoor / sport", summary.FileKeywords)
	}
}

func TestGenerateReportIntellectual(t *testing.T) {
	router := newTestRouter()

	w := postJSON(router, "/api/generate-report", models.GenerateReportRequest{
		BrandEssence: "A quiet brand for deep thinkers",
		Keywords:     []string{"chess", "intellectual"},
		Audience:     "strategy nerds aged 20-35",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var report models.CampaignReport
	if err := json.Unmarshal(w.Body.Bytes(), &report); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if report.CampaignIdea.Title != "Checkmate & Chucks" {
		t.Fatalf("campaignIdea.title = %q", report.CampaignIdea.Title)
	}
	if len(report.PotentialCollaborations) == 0 {
		t.Fatalf("no collaborations")
	}
	for _, pc := range report.PotentialCollaborations {
		if pc.CommunityName == "" {
			t.Fatalf("collaboration %q not enriched with community name", pc.CommunityID)
		}
		if len(pc.Collaborations) == 0 {
			t.Fatalf("collaboration %q has no engagement entries", pc.CommunityID)
		}
	}
	if n := len(report.CulturalInsight.Metrics); n < 3 {
		t.Fatalf("got %d metrics, want at least 3", n)
	}
}

func TestGenerateReportMissingFields(t *testing.T) {
	router := newTestRouter()

	w := postJSON(router, "/api/generate-report", models.GenerateReportRequest{
		Keywords: []string{"chess"},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var resp struct {
		Message string `json:"message"`
		Details struct {
			Missing []string `json:"missing"`
		} `json:"details"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := map[string]bool{"brandEssence": true, "audience": true}
	if len(resp.Details.Missing) != 2 {
		t.Fatalf("missing = %v", resp.Details.Missing)
	}
	for _, f := range resp.Details.Missing {
		if !want[f] {
			t.Fatalf("unexpected missing field %q", f)
		}
	}
}

func TestGenerateEmailFallback(t *testing.T) {
	router := newTestRouter()

	req := models.GenerateEmailRequest{
		BrandName:            "Summit Gear",
		CommunityName:        "Urban Hikers Collective",
		CommunityDescription: "A group exploring the city on foot. Weekly walks and gear swaps.",
		EngagementType:       "Sponsored Hike",
		Budget:               2500,
		NonMonetaryOfferings: []string{"free gear", "event space"},
	}

	w := postJSON(router, "/api/generate-email", req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp models.GenerateEmailResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Email == "" {
		t.Fatalf("empty email")
	}

	// Same input twice gives the same email
	w2 := postJSON(router, "/api/generate-email", req)
	var resp2 models.GenerateEmailResponse
	if err := json.Unmarshal(w2.Body.Bytes(), &resp2); err != nil {
		t.Fatalf("unmarshal second: %v", err)
	}
	if resp.Email != resp2.Email {
		t.Fatalf("email not deterministic")
	}
}

func TestGenerateEmailRateLimit(t *testing.T) {
	router := newTestRouter()
	body := models.GenerateEmailRequest{BrandName: "Acme"}

	for i := 0; i < 5; i++ {
		if w := postJSON(router, "/api/generate-email", body); w.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d", i+1, w.Code)
		}
	}

	w := postJSON(router, "/api/generate-email", body)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("6th request: status = %d, want 429", w.Code)
	}
	if w.Header().Get("X-RateLimit-Limit") != "5" {
		t.Fatalf("X-RateLimit-Limit = %q", w.Header().Get("X-RateLimit-Limit"))
	}
	if w.Header().Get("X-RateLimit-Remaining") != "0" {
		t.Fatalf("X-RateLimit-Remaining = %q", w.Header().Get("X-RateLimit-Remaining"))
	}
}

func TestRateLimitIsPerClient(t *testing.T) {
	router := newTestRouter()
	buf, _ := json.Marshal(models.GenerateEmailRequest{BrandName: "Acme"})

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/generate-email", bytes.NewReader(buf))
		req.Header.Set("Content-Type", "application/json")
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	for i := 0; i < 6; i++ {
		send("192.0.2.20:1000")
	}
	if code := send("192.0.2.21:1000"); code != http.StatusOK {
		t.Fatalf("other client: status = %d, want 200", code)
	}
}

func TestMoodboardMockAndCache(t *testing.T) {
	router := newTestRouter()

	w := get(router, "/api/moodboard?keywords=chess,%20intellectual&seed=2")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var images []models.MoodboardImage
	if err := json.Unmarshal(w.Body.Bytes(), &images); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(images) < 6 {
		t.Fatalf("got %d images, want at least 6", len(images))
	}

	w2 := get(router, "/api/moodboard?keywords=chess,%20intellectual&seed=2")
	if w2.Body.String() != w.Body.String() {
		t.Fatalf("repeated request differs from cached response")
	}
}

func TestMoodboardMissingKeywords(t *testing.T) {
	router := newTestRouter()
	if w := get(router, "/api/moodboard"); w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestCommunitiesList(t *testing.T) {
	router := newTestRouter()

	w := get(router, "/api/communities")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Communities []map[string]any `json:"communities"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Communities) < 3 {
		t.Fatalf("got %d communities", len(resp.Communities))
	}

	w = get(router, "/api/communities?vibes=chess%20intellectual")
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal filtered: %v", err)
	}
	if len(resp.Communities) == 0 || len(resp.Communities) > 5 {
		t.Fatalf("filtered got %d communities, want 1..5", len(resp.Communities))
	}
}
