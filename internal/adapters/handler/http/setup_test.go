package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	adapterHTTP "github.com/comitanigiacomo/kanso-calories/internal/adapters/handler/http"
	"github.com/comitanigiacomo/kanso-calories/internal/adapters/repository"
	"github.com/comitanigiacomo/kanso-calories/internal/core/domain"
	"github.com/comitanigiacomo/kanso-calories/internal/core/services"
	"github.com/comitanigiacomo/kanso-calories/internal/logger"
)

var fixedNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

type repoSet struct {
	entries  domain.EntryRepository
	weights  domain.WeightRepository
	profiles domain.ProfileRepository
	presets  domain.PresetRepository
}

func memoryRepos() repoSet {
	return repoSet{
		entries:  repository.NewInMemoryEntryRepository(),
		weights:  repository.NewInMemoryWeightRepository(),
		profiles: repository.NewInMemoryProfileRepository(),
		presets:  repository.NewInMemoryPresetRepository(),
	}
}

func newRouter(repos repoSet) *gin.Engine {
	gin.SetMode(gin.TestMode)

	entrySvc := services.NewEntryService(repos.entries)
	dashboardSvc := services.NewDashboardService(repos.entries, repos.weights, repos.profiles, repos.presets, time.UTC).
		WithClock(func() time.Time { return fixedNow })

	return adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		EntryHandler:     adapterHTTP.NewEntryHandler(entrySvc),
		WeightHandler:    adapterHTTP.NewWeightHandler(services.NewWeightService(repos.weights)),
		ProfileHandler:   adapterHTTP.NewProfileHandler(services.NewProfileService(repos.profiles)),
		PresetHandler:    adapterHTTP.NewPresetHandler(services.NewPresetService(repos.presets, entrySvc)),
		DashboardHandler: adapterHTTP.NewDashboardHandler(dashboardSvc),
		Logger:           logger.Discard(),
		StartTime:        fixedNow,
	})
}

func setupRouter() *gin.Engine {
	return newRouter(memoryRepos())
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

type errorBody struct {
	Error string `json:"error"`
}

var errStoreDown = errors.New("connection refused")

type failingEntryRepo struct{}

func (failingEntryRepo) Create(ctx context.Context, e *domain.LogEntry) error { return errStoreDown }
func (failingEntryRepo) List(ctx context.Context) ([]domain.LogEntry, error) {
	return nil, errStoreDown
}
