package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/conspirant/kcet-planner-go/internal/catalog"
	"github.com/conspirant/kcet-planner-go/internal/cutoff"
	apperrors "github.com/conspirant/kcet-planner-go/internal/errors"
	"github.com/conspirant/kcet-planner-go/internal/logger"
	"github.com/conspirant/kcet-planner-go/internal/metrics"
	"github.com/conspirant/kcet-planner-go/internal/payment"
	"github.com/conspirant/kcet-planner-go/internal/storage"
)

type fakeOrderService struct {
	order   *payment.Order
	err     error
	sigErr  error
	amounts []int64
}

func (f *fakeOrderService) CreateOrder(amountPaise int64, _ string) (*payment.Order, error) {
	if amountPaise <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrInvalidInput)
	}
	f.amounts = append(f.amounts, amountPaise)
	return f.order, f.err
}

func (f *fakeOrderService) VerifyCheckoutSignature(orderID, paymentID, signature string) error {
	return f.sigErr
}

type testEnv struct {
	router *gin.Engine
	db     *storage.DB
	orders *fakeOrderService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := storage.NewTestDB()
	if err != nil {
		t.Fatalf("NewTestDB: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	dataset := cutoff.NewDataset([]cutoff.Record{
		{Year: "2024", Round: "1", Institute: "UVCE", InstituteCode: "E001", Course: "CS", Category: "GM", CutoffRank: 2000},
		{Year: "2024", Round: "1", Institute: "UVCE", InstituteCode: "E001", Course: "EC", Category: "GM", CutoffRank: 3500},
		{Year: "2024", Round: "1", Institute: "BMSCE", InstituteCode: "E005", Course: "CS", Category: "GM", CutoffRank: 1500},
	}, cutoff.Metadata{})

	orders := &fakeOrderService{
		order: &payment.Order{ID: "order_test", Amount: 500, Currency: "INR", Status: "created"},
	}

	registry := prometheus.NewRegistry()
	srv := New(
		Config{PDFPricePaise: 500, AnalyticsPricePaise: 500},
		catalog.New(),
		dataset,
		cutoff.NewAnalyzer(dataset, cutoff.NewChanceEvaluator(1)),
		db,
		orders,
		nil,
		metrics.New(registry),
		logger.NewWithWriter("error", io.Discard),
	)

	router := gin.New()
	srv.Routes(router, registry)

	return &testEnv{router: router, db: db, orders: orders}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func TestHealthAndReady(t *testing.T) {
	env := newTestEnv(t)

	if w := env.do(t, http.MethodGet, "/healthz", nil); w.Code != http.StatusOK {
		t.Errorf("healthz = %d, want 200", w.Code)
	}

	w := env.do(t, http.MethodGet, "/ready", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("ready = %d, want 200: %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	if body["status"] != "ready" {
		t.Errorf("status = %v", body["status"])
	}
}

func TestAddAndListOptions(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/profiles/p1/options",
		map[string]string{"collegeCode": "E001", "branchCode": "CS"})
	if w.Code != http.StatusCreated {
		t.Fatalf("add = %d: %s", w.Code, w.Body.String())
	}
	entry := decode(t, w)
	if entry["collegeCourse"] != "E001CS" || entry["priority"] != float64(1) {
		t.Errorf("entry = %v", entry)
	}

	w = env.do(t, http.MethodGet, "/api/v1/profiles/p1/options", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list = %d", w.Code)
	}
	if body := decode(t, w); body["count"] != float64(1) {
		t.Errorf("count = %v, want 1", body["count"])
	}

	// Profiles are isolated.
	w = env.do(t, http.MethodGet, "/api/v1/profiles/p2/options", nil)
	if body := decode(t, w); body["count"] != float64(0) {
		t.Errorf("p2 count = %v, want 0", body["count"])
	}
}

func TestAddOptionUnknownCodes(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/profiles/p1/options",
		map[string]string{"collegeCode": "E999", "branchCode": "CS"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown college = %d, want 400", w.Code)
	}

	w = env.do(t, http.MethodPost, "/api/v1/profiles/p1/options",
		map[string]string{"collegeCode": "E001", "branchCode": "ZZ"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown branch = %d, want 400", w.Code)
	}
}

func TestPriorityZeroRemoves(t *testing.T) {
	env := newTestEnv(t)

	var ids []string
	for _, branch := range []string{"CS", "EC", "ME"} {
		w := env.do(t, http.MethodPost, "/api/v1/profiles/p1/options",
			map[string]string{"collegeCode": "E001", "branchCode": branch})
		if w.Code != http.StatusCreated {
			t.Fatalf("add %s = %d", branch, w.Code)
		}
		ids = append(ids, decode(t, w)["id"].(string))
	}

	zero := 0
	w := env.do(t, http.MethodPut, "/api/v1/profiles/p1/options/"+ids[1]+"/priority",
		map[string]*int{"priority": &zero})
	if w.Code != http.StatusOK {
		t.Fatalf("priority 0 = %d: %s", w.Code, w.Body.String())
	}

	opts := decode(t, w)["options"].([]any)
	if len(opts) != 2 {
		t.Fatalf("len = %d, want 2", len(opts))
	}
	first := opts[0].(map[string]any)
	second := opts[1].(map[string]any)
	if first["id"] != ids[0] || first["priority"] != float64(1) {
		t.Errorf("first = %v", first)
	}
	if second["id"] != ids[2] || second["priority"] != float64(2) {
		t.Errorf("second = %v", second)
	}
}

func TestNegativePriorityRejected(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/profiles/p1/options",
		map[string]string{"collegeCode": "E001", "branchCode": "CS"})
	id := decode(t, w)["id"].(string)

	neg := -1
	w = env.do(t, http.MethodPut, "/api/v1/profiles/p1/options/"+id+"/priority",
		map[string]*int{"priority": &neg})
	if w.Code != http.StatusBadRequest {
		t.Errorf("negative priority = %d, want 400", w.Code)
	}
}

func TestSaveLoadClear(t *testing.T) {
	env := newTestEnv(t)

	env.do(t, http.MethodPost, "/api/v1/profiles/p1/options",
		map[string]string{"collegeCode": "E001", "branchCode": "CS"})

	if w := env.do(t, http.MethodPost, "/api/v1/profiles/p1/options/save", nil); w.Code != http.StatusOK {
		t.Fatalf("save = %d: %s", w.Code, w.Body.String())
	}

	// Clear wipes both memory and the snapshot.
	if w := env.do(t, http.MethodDelete, "/api/v1/profiles/p1/options", nil); w.Code != http.StatusOK {
		t.Fatalf("clear = %d", w.Code)
	}
	w := env.do(t, http.MethodPost, "/api/v1/profiles/p1/options/load", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("load = %d", w.Code)
	}
	if body := decode(t, w); body["count"] != float64(0) {
		t.Errorf("count after clear+load = %v, want 0", body["count"])
	}
}

func TestSaveLoadRoundTripOverHTTP(t *testing.T) {
	env := newTestEnv(t)

	env.do(t, http.MethodPost, "/api/v1/profiles/p1/options",
		map[string]string{"collegeCode": "E001", "branchCode": "CS"})
	env.do(t, http.MethodPost, "/api/v1/profiles/p1/options/save", nil)

	// Mutate without saving, then load back the snapshot.
	env.do(t, http.MethodPost, "/api/v1/profiles/p1/options",
		map[string]string{"collegeCode": "E005", "branchCode": "EC"})

	w := env.do(t, http.MethodPost, "/api/v1/profiles/p1/options/load", nil)
	if body := decode(t, w); body["count"] != float64(1) {
		t.Errorf("count = %v, want the saved single entry", body["count"])
	}
}

func TestAnalysisGatedOnEntitlement(t *testing.T) {
	env := newTestEnv(t)

	env.do(t, http.MethodPost, "/api/v1/profiles/p1/options",
		map[string]string{"collegeCode": "E001", "branchCode": "CS"})

	req := map[string]any{"rank": 1800, "category": "GM", "year": "2024", "round": "1"}
	w := env.do(t, http.MethodPost, "/api/v1/profiles/p1/analysis", req)
	if w.Code != http.StatusPaymentRequired {
		t.Fatalf("ungated analysis = %d, want 402", w.Code)
	}

	if err := env.db.GrantEntitlement(t.Context(), "p1", storage.FeatureAnalytics, "o", "p"); err != nil {
		t.Fatal(err)
	}

	w = env.do(t, http.MethodPost, "/api/v1/profiles/p1/analysis", req)
	if w.Code != http.StatusOK {
		t.Fatalf("analysis = %d: %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	rows := body["rows"].([]any)
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	row := rows[0].(map[string]any)
	if row["status"] != cutoff.StatusHigh || row["match_type"] != "Exact match" {
		t.Errorf("row = %v", row)
	}
}

func TestExportGating(t *testing.T) {
	env := newTestEnv(t)

	if w := env.do(t, http.MethodGet, "/api/v1/profiles/p1/export/pdf", nil); w.Code != http.StatusPaymentRequired {
		t.Errorf("pdf without entitlement = %d, want 402", w.Code)
	}

	// XLSX export is free.
	w := env.do(t, http.MethodGet, "/api/v1/profiles/p1/export/xlsx", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("xlsx = %d", w.Code)
	}

	if err := env.db.GrantEntitlement(t.Context(), "p1", storage.FeaturePDF, "o", "p"); err != nil {
		t.Fatal(err)
	}
	w = env.do(t, http.MethodGet, "/api/v1/profiles/p1/export/pdf?rank=12000&category=GM", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("pdf = %d: %s", w.Code, w.Body.String())
	}
	if !strings.HasPrefix(w.Body.String(), "%PDF") {
		t.Error("response is not a PDF")
	}
}

func TestCreateOrder(t *testing.T) {
	env := newTestEnv(t)

	amount := int64(500)
	w := env.do(t, http.MethodPost, "/api/v1/orders", map[string]*int64{"amount": &amount})
	if w.Code != http.StatusOK {
		t.Fatalf("order = %d: %s", w.Code, w.Body.String())
	}
	if body := decode(t, w); body["id"] != "order_test" {
		t.Errorf("body = %v", body)
	}
}

func TestCreateOrderErrors(t *testing.T) {
	env := newTestEnv(t)

	// Missing amount.
	w := env.do(t, http.MethodPost, "/api/v1/orders", map[string]string{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing amount = %d, want 400", w.Code)
	}

	// Non-positive amount.
	zero := int64(0)
	w = env.do(t, http.MethodPost, "/api/v1/orders", map[string]*int64{"amount": &zero})
	if w.Code != http.StatusBadRequest {
		t.Errorf("zero amount = %d, want 400", w.Code)
	}

	// Wrong method on a known path.
	w = env.do(t, http.MethodGet, "/api/v1/orders", nil)
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET orders = %d, want 405", w.Code)
	}

	// Provider failure.
	env.orders.err = &apperrors.ProviderError{Operation: "create_order", Err: fmt.Errorf("gateway down")}
	amount := int64(500)
	w = env.do(t, http.MethodPost, "/api/v1/orders", map[string]*int64{"amount": &amount})
	if w.Code != http.StatusInternalServerError {
		t.Errorf("provider failure = %d, want 500", w.Code)
	}
	if body := decode(t, w); body["error"] == "" {
		t.Error("error body must carry an error field")
	}
}

func TestGrantEntitlementSignature(t *testing.T) {
	env := newTestEnv(t)

	grant := map[string]string{
		"feature":             storage.FeaturePDF,
		"razorpay_order_id":   "order_1",
		"razorpay_payment_id": "pay_1",
		"razorpay_signature":  "sig",
	}

	// Bad signature keeps the feature locked.
	env.orders.sigErr = apperrors.ErrSignatureMismatch
	w := env.do(t, http.MethodPost, "/api/v1/profiles/p1/entitlements", grant)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad signature = %d, want 400", w.Code)
	}
	if has, _ := env.db.HasEntitlement(t.Context(), "p1", storage.FeaturePDF); has {
		t.Fatal("entitlement granted despite signature failure")
	}

	// Valid signature grants.
	env.orders.sigErr = nil
	w = env.do(t, http.MethodPost, "/api/v1/profiles/p1/entitlements", grant)
	if w.Code != http.StatusOK {
		t.Fatalf("grant = %d: %s", w.Code, w.Body.String())
	}
	if has, _ := env.db.HasEntitlement(t.Context(), "p1", storage.FeaturePDF); !has {
		t.Fatal("entitlement missing after grant")
	}

	w = env.do(t, http.MethodGet, "/api/v1/profiles/p1/entitlements", nil)
	body := decode(t, w)
	features := body["entitlements"].([]any)
	if len(features) != 1 || features[0] != storage.FeaturePDF {
		t.Errorf("entitlements = %v", features)
	}
}

func TestRecommendationsEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/recommendations",
		map[string]any{"year": "2024", "round": "1", "course": "CS", "category": "GM", "rank": 1000})
	if w.Code != http.StatusOK {
		t.Fatalf("recommendations = %d: %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	if body["count"] != float64(2) {
		t.Errorf("count = %v, want 2", body["count"])
	}
	recs := body["recommendations"].([]any)
	first := recs[0].(map[string]any)
	if first["institute_code"] != "E005" {
		t.Errorf("first = %v, want the lowest cutoff first", first)
	}
}

func TestRecommendationsMissingRank(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/recommendations",
		map[string]any{"year": "2024", "round": "1", "course": "CS", "category": "GM"})
	if w.Code != http.StatusOK {
		t.Fatalf("recommendations = %d: %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	if body["count"] != float64(0) {
		t.Errorf("count = %v, want 0 without a rank", body["count"])
	}
	if recs, ok := body["recommendations"].([]any); !ok || len(recs) != 0 {
		t.Errorf("recommendations = %v, want empty list", body["recommendations"])
	}
}

func TestFacetEndpoints(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/v1/cutoffs/years", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("years = %d", w.Code)
	}
	years := decode(t, w)["years"].([]any)
	if len(years) != 1 || years[0] != "2024" {
		t.Errorf("years = %v", years)
	}

	w = env.do(t, http.MethodGet, "/api/v1/cutoffs/courses?year=2024&round=1", nil)
	courses := decode(t, w)["courses"].([]any)
	if len(courses) != 2 {
		t.Errorf("courses = %v", courses)
	}
}

func TestCollegeSearch(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/v1/colleges?q=visvesvaraya", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("colleges = %d", w.Code)
	}
	if body := decode(t, w); body["count"] == float64(0) {
		t.Error("expected at least one college for visvesvaraya")
	}
}

func TestAutoGenerateEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/profiles/p1/options/autogenerate",
		map[string]any{"rank": 1000, "category": "GM", "branchCodes": []string{"CS"}})
	if w.Code != http.StatusOK {
		t.Fatalf("autogenerate = %d: %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	if body["count"] != float64(2) {
		t.Errorf("count = %v, want 2 colleges offering CS above rank 1000", body["count"])
	}
	opts := body["options"].([]any)
	first := opts[0].(map[string]any)
	// E005 cutoff 1500 is closer to rank 1000 than E001 cutoff 2000.
	if first["collegeCode"] != "E005" || first["priority"] != float64(1) {
		t.Errorf("first = %v", first)
	}
}

func TestNotesAutosave(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/profiles/p1/options",
		map[string]string{"collegeCode": "E001", "branchCode": "CS"})
	id := decode(t, w)["id"].(string)

	w = env.do(t, http.MethodPut, "/api/v1/profiles/p1/options/"+id+"/notes",
		map[string]string{"notes": "campus visit done"})
	if w.Code != http.StatusOK {
		t.Fatalf("notes = %d", w.Code)
	}

	// The autosaved snapshot is loadable without an explicit save.
	entries, _, err := env.db.LoadOptions(t.Context(), "p1")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Notes != "campus visit done" {
		t.Errorf("entries = %+v", entries)
	}
}
