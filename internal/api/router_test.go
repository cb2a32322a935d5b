package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"investr/internal/api/handlers"
	"investr/internal/dto"
	"investr/internal/repository"
	"investr/internal/service"
	"investr/internal/session"
	"investr/pkg/auth"
	"investr/pkg/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	testProfitResult = `{"future_value":705000,"total_rent_income":180000,"total_mortgage_paid":160000,"net_profit":95000,"annual_cashflow":2000,"roi":76}`
	testScoring      = `{"recommendation":"Buy","confidence":87.5,"roi":9,"growth_rate":3,"estimated_rent":950}`
)

type testEnv struct {
	app        *fiber.App
	jwtManager *auth.JWTManager
	simulate   http.HandlerFunc
	score      http.HandlerFunc
}

// newTestEnv builds the full router against a fake upstream. The upstream
// handlers can be swapped per test through the returned env.
func newTestEnv(t *testing.T, cfg *config.Config, withJWT bool) *testEnv {
	t.Helper()
	logger := zap.NewNop()
	env := &testEnv{
		simulate: func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte(testProfitResult)) },
		score:    func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte(testScoring)) },
	}

	upstreamSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/simulate":
			env.simulate(w, r)
		case "/api/recommend":
			env.score(w, r)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(upstreamSrv.Close)

	table, err := repository.NewFileRateSource("").LoadRates(context.Background())
	if err != nil {
		t.Fatalf("load rates: %v", err)
	}

	upstream := service.NewUpstreamClient(&config.UpstreamConfig{
		ScoringURL:    upstreamSrv.URL + "/api/recommend",
		SimulationURL: upstreamSrv.URL + "/api/simulate",
		Timeout:       5 * time.Second,
	}, logger)
	rates := service.NewRateService(table, logger)
	sims := service.NewSimulationService(rates, upstream, logger)
	recs := service.NewRecommendationService(upstream, repository.NewMemoryCache(), time.Hour, logger)

	store := session.NewStore(30 * time.Minute)
	t.Cleanup(store.Stop)

	if withJWT {
		env.jwtManager = auth.NewJWTManager("test-secret")
	}

	env.app = SetupRouter(
		handlers.NewCalculatorHandler(rates, sims, recs, logger),
		handlers.NewSessionHandler(store, sims, recs, logger),
		env.jwtManager,
		cfg,
		logger,
	)
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}, out interface{}) int {
	t.Helper()
	return e.doWithToken(t, method, path, "", body, out)
}

func (e *testEnv) doWithToken(t *testing.T, method, path, token string, body interface{}, out interface{}) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = strings.NewReader(b)
		default:
			raw, err := json.Marshal(b)
			if err != nil {
				t.Fatalf("encode body: %v", err)
			}
			reader = bytes.NewReader(raw)
		}
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("%s %s: decode response: %v", method, path, err)
		}
	}
	return resp.StatusCode
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t, &config.Config{}, false)

	var body map[string]string
	if code := env.do(t, http.MethodGet, "/health", nil, &body); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if body["status"] != "ok" {
		t.Errorf("unexpected body %v", body)
	}
}

func TestRates(t *testing.T) {
	env := newTestEnv(t, &config.Config{}, false)

	var table dto.RateTableResponse
	if code := env.do(t, http.MethodGet, "/api/v1/rates", nil, &table); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if table.FallbackRate != 5.5 || len(table.Bands) != 5 || table.Bands[0].Band != "95" {
		t.Errorf("unexpected table %+v", table)
	}

	var resolved dto.ResolveRateResponse
	code := env.do(t, http.MethodPost, "/api/v1/rates/resolve", dto.ResolveRateRequest{
		Price:              500000,
		DownPaymentPercent: 25,
		MortgageTerm:       5,
		MarketOutlook:      "baseline",
	}, &resolved)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if !resolved.Determined || resolved.Quote.Rate != 4.29 || resolved.Quote.Band != "75" || resolved.Quote.Deposit != 125000 {
		t.Errorf("unexpected quote %+v", resolved.Quote)
	}

	resolved = dto.ResolveRateResponse{}
	env.do(t, http.MethodPost, "/api/v1/rates/resolve", dto.ResolveRateRequest{Price: 0, MortgageTerm: 5}, &resolved)
	if resolved.Determined || resolved.Quote != nil {
		t.Errorf("expected undetermined rate, got %+v", resolved)
	}
}

func TestProjections(t *testing.T) {
	env := newTestEnv(t, &config.Config{}, false)

	var chart dto.ChartSeries
	code := env.do(t, http.MethodPost, "/api/v1/projections", map[string]interface{}{
		"start_value": 100000,
		"growth_rate": 10,
		"years":       2,
	}, &chart)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if len(chart.Projected) != 3 || chart.Projected[2] != 121000 {
		t.Errorf("unexpected projection %v", chart.Projected)
	}
	if len(chart.Benchmark) != 3 || chart.BenchmarkGrowth != 3.5 {
		t.Errorf("unexpected benchmark %v at %v", chart.Benchmark, chart.BenchmarkGrowth)
	}

	var errBody map[string]string
	code = env.do(t, http.MethodPost, "/api/v1/projections", map[string]interface{}{"start_value": -1, "years": 2}, &errBody)
	if code != http.StatusBadRequest || errBody["error"] == "" {
		t.Errorf("expected 400 with message, got %d %v", code, errBody)
	}

	errBody = nil
	code = env.do(t, http.MethodPost, "/api/v1/projections", map[string]interface{}{
		"start_value": 100000,
		"growth_rate": 1e10,
		"years":       100,
	}, &errBody)
	if code != http.StatusUnprocessableEntity || errBody["error"] == "" {
		t.Errorf("expected 422 for an overflowing projection, got %d %v", code, errBody)
	}
}

func TestExplanations(t *testing.T) {
	env := newTestEnv(t, &config.Config{}, false)

	var resp dto.ExplanationResponse
	code := env.do(t, http.MethodPost, "/api/v1/explanations", map[string]interface{}{
		"recommendation": "Avoid",
		"roi":            10,
		"growth_rate":    3,
	}, &resp)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if resp.ChartMode != "roi" || resp.BenchmarkROI != 7.5 || resp.GrowthThreshold != 4.5 {
		t.Errorf("expected defaults merged, got %+v", resp)
	}
	if !strings.HasPrefix(resp.Explanation, "Although ROI is strong at 10%") {
		t.Errorf("unexpected explanation %q", resp.Explanation)
	}

	code = env.do(t, http.MethodPost, "/api/v1/explanations", map[string]interface{}{"chart_mode": "pie"}, nil)
	if code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown chart mode, got %d", code)
	}
}

func TestSimulations(t *testing.T) {
	env := newTestEnv(t, &config.Config{}, false)

	var sent map[string]interface{}
	env.simulate = func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&sent)
		_, _ = w.Write([]byte(testProfitResult))
	}

	form := map[string]interface{}{
		"property_price":       500000,
		"down_payment_percent": "25",
		"rental_income":        1500,
		"appreciation":         "average",
		"years":                10,
		"mortgage_term":        5,
		"market_outlook":       "baseline",
	}

	var resp dto.SimulationResponse
	if code := env.do(t, http.MethodPost, "/api/v1/simulations", form, &resp); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if sent["mortgage_rate"] != 4.29 || sent["down_payment"] != float64(125000) || sent["appreciation_rate"] != 3.5 {
		t.Errorf("unexpected upstream body %v", sent)
	}
	if resp.Shape != "profit" || *resp.Result.ROI != 76 {
		t.Errorf("unexpected result %+v", resp)
	}
	if len(resp.Chart.Labels) != 11 || resp.Chart.Labels[10] != "Year 10" {
		t.Errorf("unexpected chart labels %v", resp.Chart.Labels)
	}

	form["appreciation"] = "custom"
	var errBody map[string]string
	if code := env.do(t, http.MethodPost, "/api/v1/simulations", form, &errBody); code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", code)
	}
	if errBody["error"] != service.ErrCustomRateRequired.Error() {
		t.Errorf("unexpected error %q", errBody["error"])
	}
}

func TestSimulations_UpstreamError(t *testing.T) {
	env := newTestEnv(t, &config.Config{}, false)
	env.simulate = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Years must be at most 50"}`))
	}

	form := map[string]interface{}{
		"property_price":       500000,
		"down_payment_percent": 25,
		"rental_income":        1500,
		"years":                10,
		"mortgage_term":        5,
	}

	var errBody map[string]string
	if code := env.do(t, http.MethodPost, "/api/v1/simulations", form, &errBody); code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", code)
	}
	if errBody["error"] != "Years must be at most 50" {
		t.Errorf("unexpected error %q", errBody["error"])
	}
}

func TestRecommendations(t *testing.T) {
	env := newTestEnv(t, &config.Config{}, false)

	listing := dto.RecommendationRequest{Title: "2 bed flat", Price: 200000, Bedrooms: 2, Bathrooms: 1}

	var resp dto.RecommendationResponse
	if code := env.do(t, http.MethodPost, "/api/v1/recommendations", listing, &resp); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if resp.Label != "Buy (87.5% confidence)" || resp.ChartMode != "roi" {
		t.Errorf("unexpected response %+v", resp)
	}
	if len(resp.ROIChart.Values) != 2 || resp.ROIChart.Values[1] != 7.5 {
		t.Errorf("unexpected roi chart %+v", resp.ROIChart)
	}
	if resp.Cached {
		t.Errorf("expected live answer")
	}

	resp = dto.RecommendationResponse{}
	env.do(t, http.MethodPost, "/api/v1/recommendations", listing, &resp)
	if !resp.Cached {
		t.Errorf("expected cached answer on repeat")
	}

	if code := env.do(t, http.MethodPost, "/api/v1/recommendations", dto.RecommendationRequest{Price: 0}, nil); code != http.StatusBadRequest {
		t.Errorf("expected 400 for zero price, got %d", code)
	}
}

func TestSessionFlow(t *testing.T) {
	env := newTestEnv(t, &config.Config{}, false)

	var created dto.SessionResponse
	if code := env.do(t, http.MethodPost, "/api/v1/sessions", nil, &created); code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", code)
	}
	if created.Rate != nil || created.CanSubmit {
		t.Errorf("expected new session without a rate, got %+v", created)
	}
	base := "/api/v1/sessions/" + created.ID

	edits := []dto.FormEditRequest{
		{Field: "property_price", Value: "500000"},
		{Field: "down_payment_percent", Value: "25"},
		{Field: "rental_income", Value: "1500"},
		{Field: "years", Value: "10"},
	}
	for _, edit := range edits {
		var resp dto.FormEditResponse
		if code := env.do(t, http.MethodPatch, base+"/form", edit, &resp); code != http.StatusOK {
			t.Fatalf("edit %s: expected 200, got %d", edit.Field, code)
		}
		if !resp.Applied {
			t.Errorf("edit %s: expected applied", edit.Field)
		}
	}

	var ignored dto.FormEditResponse
	env.do(t, http.MethodPatch, base+"/form", `{"field":"rental_income","value":-50}`, &ignored)
	if ignored.Applied || ignored.Session.Form.RentalIncome != "1500" {
		t.Errorf("expected negative rent ignored, got %+v", ignored)
	}

	var current dto.SessionResponse
	env.do(t, http.MethodGet, base, nil, &current)
	if current.Rate == nil || current.Rate.Rate != 4.29 || !current.CanSubmit {
		t.Errorf("expected rate 4.29 and submittable form, got %+v", current)
	}

	var submitted dto.SubmissionResponse
	if code := env.do(t, http.MethodPost, base+"/simulation", nil, &submitted); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if !submitted.Committed || submitted.Generation != 1 || submitted.Simulation == nil {
		t.Errorf("unexpected submission %+v", submitted)
	}

	listing := dto.RecommendationRequest{Title: "2 bed flat", Price: 200000}
	submitted = dto.SubmissionResponse{}
	if code := env.do(t, http.MethodPost, base+"/recommendation", listing, &submitted); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if !submitted.Committed || submitted.Recommendation == nil {
		t.Errorf("unexpected submission %+v", submitted)
	}

	current = dto.SessionResponse{}
	env.do(t, http.MethodGet, base, nil, &current)
	if current.Simulation == nil || current.Recommendation == nil {
		t.Errorf("expected both answers kept, got %+v", current)
	}

	if code := env.do(t, http.MethodDelete, base, nil, nil); code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", code)
	}
	if code := env.do(t, http.MethodGet, base, nil, nil); code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", code)
	}
}

func TestSessionSimulation_FailureRecorded(t *testing.T) {
	env := newTestEnv(t, &config.Config{}, false)
	env.simulate = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}

	var created dto.SessionResponse
	env.do(t, http.MethodPost, "/api/v1/sessions", nil, &created)
	base := "/api/v1/sessions/" + created.ID

	var submitted dto.SubmissionResponse
	if code := env.do(t, http.MethodPost, base+"/simulation", nil, &submitted); code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for an empty form, got %d", code)
	}
	if !submitted.Committed || submitted.Error == "" {
		t.Errorf("expected committed validation error, got %+v", submitted)
	}

	for _, edit := range []dto.FormEditRequest{
		{Field: "property_price", Value: "500000"},
		{Field: "down_payment_percent", Value: "25"},
		{Field: "rental_income", Value: "0"},
		{Field: "years", Value: "5"},
	} {
		env.do(t, http.MethodPatch, base+"/form", edit, nil)
	}

	submitted = dto.SubmissionResponse{}
	if code := env.do(t, http.MethodPost, base+"/simulation", nil, &submitted); code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", code)
	}
	if submitted.Error != "Simulation failed" || submitted.Generation != 2 {
		t.Errorf("unexpected submission %+v", submitted)
	}

	var current dto.SessionResponse
	env.do(t, http.MethodGet, base, nil, &current)
	if current.SimulationError != "Simulation failed" || current.Simulation != nil {
		t.Errorf("expected failure recorded, got %+v", current)
	}
}

func TestSessionErrors(t *testing.T) {
	env := newTestEnv(t, &config.Config{}, false)

	if code := env.do(t, http.MethodGet, "/api/v1/sessions/not-a-uuid", nil, nil); code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", code)
	}
	if code := env.do(t, http.MethodGet, "/api/v1/sessions/7f0c3c4e-1b8e-4a39-9a8e-2f4d7b1f6a10", nil, nil); code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", code)
	}

	var created dto.SessionResponse
	env.do(t, http.MethodPost, "/api/v1/sessions", nil, &created)
	base := "/api/v1/sessions/" + created.ID

	if code := env.do(t, http.MethodPatch, base+"/form", dto.FormEditRequest{Field: "colour", Value: "red"}, nil); code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown field, got %d", code)
	}
	if code := env.do(t, http.MethodPatch, base+"/form", `{"value":"1"}`, nil); code != http.StatusBadRequest {
		t.Errorf("expected 400 without a field, got %d", code)
	}
}

func TestAuth(t *testing.T) {
	env := newTestEnv(t, &config.Config{}, true)

	if code := env.do(t, http.MethodGet, "/api/v1/rates", nil, nil); code != http.StatusUnauthorized {
		t.Errorf("expected 401 without a token, got %d", code)
	}
	if code := env.doWithToken(t, http.MethodGet, "/api/v1/rates", "garbage", nil, nil); code != http.StatusUnauthorized {
		t.Errorf("expected 401 for a bad token, got %d", code)
	}

	token, err := env.jwtManager.GenerateToken("user-1", "user@example.com", time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	if code := env.doWithToken(t, http.MethodGet, "/api/v1/rates", token, nil, nil); code != http.StatusOK {
		t.Errorf("expected 200 with a token, got %d", code)
	}
	if code := env.do(t, http.MethodGet, "/health", nil, nil); code != http.StatusOK {
		t.Errorf("expected health to stay open, got %d", code)
	}
}

func TestRateLimit(t *testing.T) {
	cfg := &config.Config{RateLimit: config.RateLimitConfig{Max: 2, Window: time.Minute}}
	env := newTestEnv(t, cfg, false)

	for i := 0; i < 2; i++ {
		if code := env.do(t, http.MethodGet, "/api/v1/rates", nil, nil); code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, code)
		}
	}
	if code := env.do(t, http.MethodGet, "/api/v1/rates", nil, nil); code != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", code)
	}
}
