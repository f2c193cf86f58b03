package utils

import (
	"net/http"
	"testing"
)

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{"forwarded first hop", map[string]string{"X-Forwarded-For": "203.0.113.5, 10.0.0.1"}, "10.0.0.2:80", "203.0.113.5"},
		{"real ip", map[string]string{"X-Real-IP": "203.0.113.6"}, "10.0.0.2:80", "203.0.113.6"},
		{"cloudflare", map[string]string{"CF-Connecting-IP": "203.0.113.7"}, "10.0.0.2:80", "203.0.113.7"},
		{"remote addr fallback", nil, "192.0.2.1:54321", "192.0.2.1"},
		{"invalid forwarded falls through", map[string]string{"X-Forwarded-For": "not-an-ip"}, "192.0.2.1:54321", "192.0.2.1"},
		{"empty remote addr", nil, "", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, "http://example.com/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if got := GetClientIP(req); got != tt.want {
				t.Fatalf("GetClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMapFilenamesToKeywords(t *testing.T) {
	got := MapFilenamesToKeywords([]string{
		"Salomon-Lookbook.pdf",
		"chess_openings.png",
		"notes.txt",
		"SNEAKER-drop.jpg",
	})
	want := []string{"outdoor / sport", "intellectual / quiet-night", "outdoor / sport"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("keyword %d = %q, want %q", i, got[i], want[i])
		}
	}

	if got := MapFilenamesToKeywords(nil); len(got) != 0 {
		t.Fatalf("nil input: got %v", got)
	}
}

func TestFormatAmount(t *testing.T) {
	cases := map[float64]string{
		0:       "0",
		950:     "950",
		2500:    "2,500",
		1234567: "1,234,567",
		2500.75: "2,500",
		-10:     "0",
	}
	for in, want := range cases {
		if got := FormatAmount(in); got != want {
			t.Fatalf("FormatAmount(%v) = %q, want %q", in, got, want)
		}
	}
}
