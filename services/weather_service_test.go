package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const openMeteoFixture = `{
	"daily": {
		"weather_code": [61],
		"temperature_2m_max": [78.6],
		"temperature_2m_min": [60.2],
		"precipitation_probability_max": [85]
	}
}`

func TestForecast(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if got := r.URL.Query().Get("start_date"); got != "2024-06-01" {
			t.Errorf("start_date = %q, want 2024-06-01", got)
		}
		w.Write([]byte(openMeteoFixture))
	}))
	defer server.Close()

	svc := NewWeatherService()
	svc.baseURL = server.URL

	forecast := svc.Forecast(context.Background(), "2024-06-01")
	if forecast == nil {
		t.Fatal("Forecast returned nil for a healthy response")
	}
	if forecast.Description != "Rainy" || forecast.Emoji != "🌧️" {
		t.Errorf("forecast = %q %q, want Rainy 🌧️", forecast.Description, forecast.Emoji)
	}
	if forecast.TempMax != 79 || forecast.TempMin != 60 {
		t.Errorf("temps = %d/%d, want 79/60", forecast.TempMax, forecast.TempMin)
	}
	if forecast.RainChance != 85 {
		t.Errorf("rain chance = %d, want 85", forecast.RainChance)
	}

	// Same date again comes from the cache.
	if svc.Forecast(context.Background(), "2024-06-01") == nil {
		t.Fatal("cached Forecast returned nil")
	}
	if hits != 1 {
		t.Errorf("upstream hit %d times, want 1", hits)
	}
}

func TestForecast_FailureReturnsNil(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := NewWeatherService()
	svc.baseURL = server.URL

	if forecast := svc.Forecast(context.Background(), "2024-06-01"); forecast != nil {
		t.Fatalf("Forecast = %+v, want nil on upstream failure", forecast)
	}
}

func TestDescribeWeatherCode(t *testing.T) {
	tests := []struct {
		code int
		desc string
	}{
		{0, "Clear"},
		{2, "Partly Cloudy"},
		{45, "Cloudy"},
		{63, "Rainy"},
		{71, "Snow"},
		{95, "Stormy"},
	}
	for _, tt := range tests {
		if _, desc := describeWeatherCode(tt.code); desc != tt.desc {
			t.Errorf("describeWeatherCode(%d) = %q, want %q", tt.code, desc, tt.desc)
		}
	}
}
