package directions

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shenikar/safeguard_backend/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"
)

type fakeDirections struct {
	req    *maps.DirectionsRequest
	routes []maps.Route
	err    error
}

func (f *fakeDirections) Directions(_ context.Context, r *maps.DirectionsRequest) ([]maps.Route, []maps.GeocodedWaypoint, error) {
	f.req = r
	return f.routes, nil, f.err
}

func newTestPlanner(client directionsClient) *GooglePlanner {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return &GooglePlanner{client: client, logger: logger}
}

func testRoute() maps.Route {
	leg := &maps.Leg{
		StartLocation: maps.LatLng{Lat: 28.6139, Lng: 77.2090},
		Steps: []*maps.Step{
			{EndLocation: maps.LatLng{Lat: 28.6200, Lng: 77.2250}},
			{EndLocation: maps.LatLng{Lat: 28.6270, Lng: 77.2410}},
		},
	}
	leg.Distance.Meters = 2345
	leg.Duration = 8*time.Minute + 20*time.Second
	return maps.Route{Legs: []*maps.Leg{leg}}
}

func TestPathFromRoute(t *testing.T) {
	path := pathFromRoute(testRoute())

	assert.Equal(t, []models.Location{
		{Lat: 28.6139, Lng: 77.2090},
		{Lat: 28.6200, Lng: 77.2250},
		{Lat: 28.6270, Lng: 77.2410},
	}, path.Points)
	assert.Equal(t, "2.3 km", path.Distance)
	assert.Equal(t, "8 minutes", path.Duration)
}

func TestPathFromRoute_Empty(t *testing.T) {
	path := pathFromRoute(maps.Route{})

	assert.Empty(t, path.Points)
	assert.Equal(t, "0.0 km", path.Distance)
}

func TestPlan_BuildsWalkingRequest(t *testing.T) {
	client := &fakeDirections{routes: []maps.Route{testRoute()}}
	planner := newTestPlanner(client)

	path, err := planner.Plan(context.Background(),
		models.Location{Lat: 28.6139, Lng: 77.2090},
		models.Location{Lat: 28.6270, Lng: 77.2410})

	require.NoError(t, err)
	assert.Len(t, path.Points, 3)
	assert.Equal(t, maps.TravelModeWalking, client.req.Mode)
	assert.Equal(t, "28.613900,77.209000", client.req.Origin)
	assert.Equal(t, "28.627000,77.241000", client.req.Destination)
}

func TestPlan_Errors(t *testing.T) {
	apiErr := errors.New("REQUEST_DENIED")

	_, err := newTestPlanner(&fakeDirections{err: apiErr}).Plan(context.Background(), models.Location{}, models.Location{})
	assert.ErrorIs(t, err, apiErr)

	_, err = newTestPlanner(&fakeDirections{}).Plan(context.Background(), models.Location{}, models.Location{})
	assert.ErrorIs(t, err, ErrNoRoute)
}
