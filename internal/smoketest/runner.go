package smoketest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fatih/color"
)

// Result - итог одной проверки
type Result struct {
	Name    string
	Passed  bool
	Details string
}

// Summary - итог прогона всех проверок
type Summary struct {
	Total   int
	Passed  int
	Results []Result
}

// Failed возвращает проваленные проверки
func (s Summary) Failed() []Result {
	var failed []Result
	for _, r := range s.Results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}

// Runner последовательно проверяет публичные эндпоинты запущенного сервера
type Runner struct {
	apiURL string
	apiKey string
	client *http.Client
	out    io.Writer

	routeID string
}

// NewRunner создает раннер для сервера по адресу baseURL
func NewRunner(baseURL, apiKey string, timeout time.Duration, out io.Writer) *Runner {
	return &Runner{
		apiURL: strings.TrimRight(baseURL, "/") + "/api",
		apiKey: apiKey,
		client: &http.Client{Timeout: timeout},
		out:    out,
	}
}

type check struct {
	name string
	run  func(ctx context.Context) (string, error)
}

// Run выполняет все проверки и печатает результаты
func (r *Runner) Run(ctx context.Context) Summary {
	checks := []check{
		{"Risk Analysis API", r.checkRiskAnalysis},
		{"Voice Analysis API", r.checkVoiceAnalysis},
		{"Gesture Detection API", r.checkGestureDetection},
		{"Shake Detection API", r.checkShakeDetection},
		{"Route Tracking API", r.checkRouteTracking},
		{"Location Update API", r.checkLocationUpdate},
		{"Emergency SOS API", r.checkEmergencySOS},
		{"Safety Chat API", r.checkSafetyChat},
		{"Get Emergency Contacts API", r.checkListContacts},
		{"Add Emergency Contact API", r.checkAddContact},
		{"Safety Route API", r.checkSafetyRoute},
	}

	fmt.Fprintln(r.out, "Starting SafeGuard API checks...")
	fmt.Fprintf(r.out, "Testing backend at: %s\n", r.apiURL)
	fmt.Fprintln(r.out, strings.Repeat("=", 60))

	var summary Summary
	for _, c := range checks {
		details, err := c.run(ctx)
		res := Result{Name: c.name, Passed: err == nil, Details: details}
		if err != nil {
			res.Details = err.Error()
		}
		r.report(res)
		summary.Total++
		if res.Passed {
			summary.Passed++
		}
		summary.Results = append(summary.Results, res)
	}

	fmt.Fprintln(r.out, strings.Repeat("=", 60))
	fmt.Fprintf(r.out, "Test Results: %d/%d tests passed\n", summary.Passed, summary.Total)
	if failed := summary.Failed(); len(failed) > 0 {
		fmt.Fprintf(r.out, "%s\n", color.New(color.FgYellow).Sprintf("%d tests failed.", len(failed)))
		for _, f := range failed {
			fmt.Fprintf(r.out, "  %s: %s\n", f.Name, f.Details)
		}
	} else {
		fmt.Fprintln(r.out, color.New(color.FgGreen).Sprint("All tests passed! Backend is working correctly."))
	}
	return summary
}

func (r *Runner) report(res Result) {
	if res.Passed {
		fmt.Fprintf(r.out, "%s %s - %s\n", color.New(color.FgGreen).Sprint("✓"), res.Name, color.New(color.FgGreen).Sprint("PASSED"))
		return
	}
	fmt.Fprintf(r.out, "%s %s - %s: %s\n", color.New(color.FgRed).Sprint("✗"), res.Name, color.New(color.FgRed).Sprint("FAILED"), res.Details)
}

func (r *Runner) checkRiskAnalysis(ctx context.Context) (string, error) {
	query := url.Values{"lat": {"28.6139"}, "lng": {"77.2090"}, "radius": {"1000"}}
	data, err := r.getJSON(ctx, "/risk-analysis?"+query.Encode())
	if err != nil {
		return "", err
	}
	if err := requireFields(data, "location", "risk_score", "risk_level", "incident_count", "recent_incidents", "recommendations"); err != nil {
		return "", err
	}
	return fmt.Sprintf("Risk level: %v, Incidents: %v", data["risk_level"], data["incident_count"]), nil
}

func (r *Runner) checkVoiceAnalysis(ctx context.Context) (string, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("audio", "test_voice.wav")
	if err != nil {
		return "", err
	}
	if _, err := part.Write([]byte("mock_audio_data_for_testing")); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	data, err := r.doJSON(ctx, http.MethodPost, "/voice-analysis", w.FormDataContentType(), &body)
	if err != nil {
		return "", err
	}
	if err := requireFields(data, "analysis", "trigger_sos", "message"); err != nil {
		return "", err
	}
	analysis, ok := data["analysis"].(map[string]any)
	if !ok {
		return "", errors.New("missing analysis fields")
	}
	if err := requireFields(analysis, "emotion", "confidence"); err != nil {
		return "", errors.New("missing analysis fields")
	}
	return fmt.Sprintf("Emotion: %v, SOS: %v", analysis["emotion"], data["trigger_sos"]), nil
}

func (r *Runner) checkGestureDetection(ctx context.Context) (string, error) {
	data, err := r.postJSON(ctx, "/gesture-detection", map[string]any{
		"type":      "peace_sign",
		"timestamp": time.Now().Format(time.RFC3339),
	})
	if err != nil {
		return "", err
	}
	if err := requireFields(data, "gesture_detected", "confidence", "sos_triggered", "message"); err != nil {
		return "", err
	}
	return fmt.Sprintf("Gesture: %v, SOS: %v", data["gesture_detected"], data["sos_triggered"]), nil
}

func (r *Runner) checkShakeDetection(ctx context.Context) (string, error) {
	data, err := r.postJSON(ctx, "/shake-detection", map[string]any{
		"pattern":   []float64{0.8, 0.9, 0.85},
		"intensity": 0.8,
	})
	if err != nil {
		return "", err
	}
	if err := requireFields(data, "pattern_recognized", "shake_intensity", "sos_triggered", "message"); err != nil {
		return "", err
	}
	return fmt.Sprintf("Pattern: %v, SOS: %v", data["pattern_recognized"], data["sos_triggered"]), nil
}

func (r *Runner) checkRouteTracking(ctx context.Context) (string, error) {
	r.routeID = ""
	start := point(28.6139, 77.2090)
	data, err := r.postJSON(ctx, "/route-tracking", map[string]any{
		"start_location":   start,
		"destination":      point(28.6270, 77.2410),
		"planned_route":    []map[string]float64{start, point(28.6200, 77.2250), point(28.6270, 77.2410)},
		"current_location": start,
	})
	if err != nil {
		return "", err
	}
	if err := requireFields(data, "route_id", "status", "message"); err != nil {
		return "", err
	}
	id, _ := data["route_id"].(string)
	if id == "" {
		return "", errors.New("empty route_id")
	}
	r.routeID = id
	return "Route ID: " + shortID(id) + "...", nil
}

func (r *Runner) checkLocationUpdate(ctx context.Context) (string, error) {
	if r.routeID == "" {
		return "", errors.New("no route_id from previous test")
	}
	data, err := r.postJSON(ctx, "/location-update", map[string]any{
		"route_id":         r.routeID,
		"current_location": point(28.6150, 77.2100),
	})
	if err != nil {
		return "", err
	}
	if err := requireFields(data, "route_id", "current_location", "deviation_detected", "message"); err != nil {
		return "", err
	}
	return fmt.Sprintf("Deviation: %v", data["deviation_detected"]), nil
}

func (r *Runner) checkEmergencySOS(ctx context.Context) (string, error) {
	data, err := r.postJSON(ctx, "/emergency-sos", map[string]any{
		"user_location": point(28.6139, 77.2090),
		"alert_type":    "manual",
		"confidence":    0.9,
	})
	if err != nil {
		return "", err
	}
	if err := requireFields(data, "alert_id", "status", "message", "timestamp"); err != nil {
		return "", err
	}
	id, _ := data["alert_id"].(string)
	return "Alert ID: " + shortID(id) + "...", nil
}

func (r *Runner) checkSafetyChat(ctx context.Context) (string, error) {
	query := url.Values{"message": {"Is this road safe?"}}
	data, err := r.doJSON(ctx, http.MethodPost, "/safety-chat?"+query.Encode(), "", nil)
	if err != nil {
		return "", err
	}
	if err := requireFields(data, "response", "suggestions"); err != nil {
		return "", err
	}
	text, _ := data["response"].(string)
	return fmt.Sprintf("Response length: %d chars", len(text)), nil
}

func (r *Runner) checkListContacts(ctx context.Context) (string, error) {
	body, err := r.do(ctx, http.MethodGet, "/emergency-contacts", "", nil)
	if err != nil {
		return "", err
	}
	var contacts []map[string]any
	if err := json.Unmarshal(body, &contacts); err != nil {
		return "", errors.New("response is not a list")
	}
	return fmt.Sprintf("Found %d contacts", len(contacts)), nil
}

func (r *Runner) checkAddContact(ctx context.Context) (string, error) {
	data, err := r.postJSON(ctx, "/emergency-contacts", map[string]any{
		"name":     "Test Contact",
		"phone":    "+1234567890",
		"relation": "friend",
		"priority": 1,
	})
	if err != nil {
		return "", err
	}
	if err := requireFields(data, "message", "contact_id"); err != nil {
		return "", err
	}
	id, _ := data["contact_id"].(string)
	return "Contact ID: " + shortID(id) + "...", nil
}

func (r *Runner) checkSafetyRoute(ctx context.Context) (string, error) {
	query := url.Values{
		"start_lat": {"28.6139"},
		"start_lng": {"77.2090"},
		"end_lat":   {"28.6270"},
		"end_lng":   {"77.2410"},
	}
	data, err := r.getJSON(ctx, "/safety-route?"+query.Encode())
	if err != nil {
		return "", err
	}
	if err := requireFields(data, "route", "total_distance", "estimated_time", "safety_score", "alerts"); err != nil {
		return "", err
	}
	return fmt.Sprintf("Distance: %v, Safety: %v", data["total_distance"], data["safety_score"]), nil
}

func (r *Runner) getJSON(ctx context.Context, path string) (map[string]any, error) {
	return r.doJSON(ctx, http.MethodGet, path, "", nil)
}

func (r *Runner) postJSON(ctx context.Context, path string, payload any) (map[string]any, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return r.doJSON(ctx, http.MethodPost, path, "application/json", bytes.NewReader(raw))
}

func (r *Runner) doJSON(ctx context.Context, method, path, contentType string, body io.Reader) (map[string]any, error) {
	raw, err := r.do(ctx, method, path, contentType, body)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("invalid JSON response: %w", err)
	}
	return data, nil
}

// do отправляет запрос и возвращает тело ответа, если статус 200
func (r *Runner) do(ctx context.Context, method, path, contentType string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, r.apiURL+path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if r.apiKey != "" {
		req.Header.Set("X-API-Key", r.apiKey)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return raw, nil
}

func requireFields(data map[string]any, fields ...string) error {
	var missing []string
	for _, f := range fields {
		if _, ok := data[f]; !ok {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

func point(lat, lng float64) map[string]float64 {
	return map[string]float64{"lat": lat, "lng": lng}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
