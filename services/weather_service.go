package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"sync"
	"time"
)

// Court coordinates for the academy's single location.
const (
	courtLatitude  = 40.23
	courtLongitude = -74.99
	weatherBaseURL = "https://api.open-meteo.com/v1/forecast"
)

const weatherCacheTTL = 30 * time.Minute

type Weather struct {
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
	TempMax     int    `json:"tempMax"`
	TempMin     int    `json:"tempMin"`
	RainChance  int    `json:"rainChance"`
}

type openMeteoResponse struct {
	Daily struct {
		WeatherCode                 []int     `json:"weather_code"`
		TemperatureMax              []float64 `json:"temperature_2m_max"`
		TemperatureMin              []float64 `json:"temperature_2m_min"`
		PrecipitationProbabilityMax []int     `json:"precipitation_probability_max"`
	} `json:"daily"`
}

type cachedForecast struct {
	weather   *Weather
	fetchedAt time.Time
}

// WeatherService looks up the open-meteo daily forecast for the courts.
// Failure never reaches the caller as an error: the widget simply shows no
// weather line.
type WeatherService struct {
	client  *http.Client
	baseURL string

	mu    sync.RWMutex
	cache map[string]cachedForecast
}

func NewWeatherService() *WeatherService {
	return &WeatherService{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: weatherBaseURL,
		cache:   make(map[string]cachedForecast),
	}
}

// Forecast returns the forecast for an ISO date, or nil when the lookup fails.
func (w *WeatherService) Forecast(ctx context.Context, date string) *Weather {
	w.mu.RLock()
	if cached, ok := w.cache[date]; ok && time.Since(cached.fetchedAt) < weatherCacheTTL {
		w.mu.RUnlock()
		return cached.weather
	}
	w.mu.RUnlock()

	url := fmt.Sprintf(
		"%s?latitude=%.2f&longitude=%.2f&daily=temperature_2m_max,temperature_2m_min,precipitation_probability_max,weather_code&temperature_unit=fahrenheit&timezone=America/New_York&start_date=%s&end_date=%s",
		w.baseURL, courtLatitude, courtLongitude, date, date,
	)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		log.Printf("Weather fetch error: %v", err)
		return nil
	}
	resp, err := w.client.Do(req)
	if err != nil {
		log.Printf("Weather fetch error: %v", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Weather fetch error: open-meteo returned status %d", resp.StatusCode)
		return nil
	}

	var data openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		log.Printf("Weather fetch error: %v", err)
		return nil
	}
	if len(data.Daily.WeatherCode) == 0 || len(data.Daily.TemperatureMax) == 0 ||
		len(data.Daily.TemperatureMin) == 0 || len(data.Daily.PrecipitationProbabilityMax) == 0 {
		log.Printf("Weather fetch error: empty daily forecast for %s", date)
		return nil
	}

	emoji, description := describeWeatherCode(data.Daily.WeatherCode[0])
	forecast := &Weather{
		Emoji:       emoji,
		Description: description,
		TempMax:     int(math.Round(data.Daily.TemperatureMax[0])),
		TempMin:     int(math.Round(data.Daily.TemperatureMin[0])),
		RainChance:  data.Daily.PrecipitationProbabilityMax[0],
	}

	w.mu.Lock()
	w.cache[date] = cachedForecast{weather: forecast, fetchedAt: time.Now()}
	w.mu.Unlock()

	return forecast
}

// WMO weather interpretation codes, bucketed the way the widget displays them.
func describeWeatherCode(code int) (string, string) {
	switch {
	case code == 0:
		return "☀️", "Clear"
	case code <= 3:
		return "⛅", "Partly Cloudy"
	case code <= 49:
		return "☁️", "Cloudy"
	case code <= 69:
		return "🌧️", "Rainy"
	case code <= 79:
		return "❄️", "Snow"
	default:
		return "⛈️", "Stormy"
	}
}
