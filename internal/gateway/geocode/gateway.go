package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"helpflow/internal/entities"
	retrierconfig "helpflow/pkg/retrier"
	"helpflow/pkg/retrier/backoff_adapter"
)

const (
	earthRadiusKm  = 6371
	requestTimeout = 5 * time.Second
	userAgent      = "helpflow/1.0"
)

type geoPoint struct {
	Lat float64
	Lon float64
}

type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Gateway клиент nominatim-совместимого геокодера. Расстояние между
// точками считается по большому кругу, маршрутизация не используется.
type Gateway struct {
	baseURL string
	client  httpDoer
	retrier retrier
}

func New(baseURL string, client httpDoer) *Gateway {
	if client == nil {
		client = &http.Client{Timeout: requestTimeout}
	}

	retryConfig := retrierconfig.Config{
		InitialInterval: 200 * time.Millisecond,
		MaxInterval:     2 * time.Second,
		MaxElapsedTime:  10 * time.Second,
		Randomization:   0.2,
		Multiplier:      2,
		ShouldRetry:     isRetryable,
	}

	return &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
	}
}

// RouteDistanceKm геокодирует обе точки и возвращает расстояние
// между ними в километрах.
func (g *Gateway) RouteDistanceKm(ctx context.Context, pickup, dropoff entities.Location) (float64, error) {
	from, err := g.geocode(ctx, pickup)
	if err != nil {
		return 0, fmt.Errorf("geocode pickup: %w", err)
	}

	to, err := g.geocode(ctx, dropoff)
	if err != nil {
		return 0, fmt.Errorf("geocode dropoff: %w", err)
	}

	return haversineKm(from, to), nil
}

func (g *Gateway) geocode(ctx context.Context, loc entities.Location) (geoPoint, error) {
	var point geoPoint

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		p, err := g.search(ctx, loc)
		if err != nil {
			return err
		}
		point = p
		return nil
	})
	if err != nil {
		return geoPoint{}, err
	}

	return point, nil
}

func (g *Gateway) search(ctx context.Context, loc entities.Location) (geoPoint, error) {
	query := locationQuery(loc)

	endpoint := fmt.Sprintf("%s/search?format=json&limit=1&q=%s", g.baseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return geoPoint{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return geoPoint{}, fmt.Errorf("%w: %s", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
		return geoPoint{}, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return geoPoint{}, fmt.Errorf("geocoder status %d", resp.StatusCode)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return geoPoint{}, fmt.Errorf("decode response: %w", err)
	}

	if len(results) == 0 {
		return geoPoint{}, fmt.Errorf("%w: %q", ErrAddressNotFound, query)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return geoPoint{}, fmt.Errorf("parse lat: %w", err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return geoPoint{}, fmt.Errorf("parse lon: %w", err)
	}

	return geoPoint{Lat: lat, Lon: lon}, nil
}

func locationQuery(loc entities.Location) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{loc.Address, loc.Postcode, loc.City} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func isRetryable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

func haversineKm(a, b geoPoint) float64 {
	dLat := toRad(b.Lat - a.Lat)
	dLon := toRad(b.Lon - a.Lon)

	s1 := math.Sin(dLat/2) * math.Sin(dLat/2)
	s2 := math.Cos(toRad(a.Lat)) * math.Cos(toRad(b.Lat)) * math.Sin(dLon/2) * math.Sin(dLon/2)

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(s1+s2))
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
