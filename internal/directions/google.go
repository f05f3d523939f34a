package directions

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/shenikar/safeguard_backend/internal/models"
	"github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"
)

// ErrNoRoute - сервис навигации не вернул ни одного маршрута
var ErrNoRoute = errors.New("directions: no route found")

type directionsClient interface {
	Directions(ctx context.Context, r *maps.DirectionsRequest) ([]maps.Route, []maps.GeocodedWaypoint, error)
}

// GooglePlanner строит пешеходные маршруты через Google Directions API
type GooglePlanner struct {
	client directionsClient
	logger *logrus.Logger
}

func NewGooglePlanner(apiKey string, logger *logrus.Logger) (*GooglePlanner, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("error creating Google Maps client: %w", err)
	}
	return &GooglePlanner{client: client, logger: logger}, nil
}

// Plan запрашивает пешеходный маршрут от start до end
func (p *GooglePlanner) Plan(ctx context.Context, start, end models.Location) (*models.PlannedPath, error) {
	routes, _, err := p.client.Directions(ctx, &maps.DirectionsRequest{
		Origin:      latLng(start),
		Destination: latLng(end),
		Mode:        maps.TravelModeWalking,
	})
	if err != nil {
		return nil, fmt.Errorf("error requesting directions from google: %w", err)
	}
	if len(routes) == 0 {
		return nil, ErrNoRoute
	}

	path := pathFromRoute(routes[0])
	p.logger.WithFields(logrus.Fields{
		"points":   len(path.Points),
		"distance": path.Distance,
	}).Debug("Directions received")
	return path, nil
}

func latLng(l models.Location) string {
	return fmt.Sprintf("%f,%f", l.Lat, l.Lng)
}

// pathFromRoute берет начало первого отрезка и концы всех шагов
func pathFromRoute(route maps.Route) *models.PlannedPath {
	path := &models.PlannedPath{Points: make([]models.Location, 0)}

	var meters int
	var duration time.Duration
	for i, leg := range route.Legs {
		if i == 0 {
			path.Points = append(path.Points, toLocation(leg.StartLocation))
		}
		for _, step := range leg.Steps {
			path.Points = append(path.Points, toLocation(step.EndLocation))
		}
		meters += leg.Distance.Meters
		duration += leg.Duration
	}

	path.Distance = fmt.Sprintf("%.1f km", float64(meters)/1000)
	path.Duration = fmt.Sprintf("%d minutes", int(math.Round(duration.Minutes())))
	return path
}

func toLocation(l maps.LatLng) models.Location {
	return models.Location{Lat: l.Lat, Lng: l.Lng}
}
