package routers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"pod-tracker-service/internal/app/config"
	"pod-tracker-service/internal/app/delivery/http/controllers"
	"pod-tracker-service/internal/app/delivery/http/middlewares"
	"pod-tracker-service/internal/pkg/dto/requests"
	"pod-tracker-service/internal/pkg/dto/responses"
	"pod-tracker-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockPatientUsecase struct {
	mock.Mock
}

func (m *MockPatientUsecase) CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.Patient, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.Patient)
	return result, args.Error(1)
}

func (m *MockPatientUsecase) FindAll(ctx context.Context) ([]responses.Patient, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).([]responses.Patient)
	return result, args.Error(1)
}

func (m *MockPatientUsecase) FindByID(ctx context.Context, patientID string) (*responses.Patient, error) {
	args := m.Called(ctx, patientID)
	result, _ := args.Get(0).(*responses.Patient)
	return result, args.Error(1)
}

func (m *MockPatientUsecase) UpdateByID(ctx context.Context, patientID string, request *requests.UpdatePatient) (*responses.Patient, error) {
	args := m.Called(ctx, patientID, request)
	result, _ := args.Get(0).(*responses.Patient)
	return result, args.Error(1)
}

func (m *MockPatientUsecase) DeleteByID(ctx context.Context, patientID string) error {
	args := m.Called(ctx, patientID)
	return args.Error(0)
}

const testPatientID = "65a1f0c2e4b0a1b2c3d4e5f6"

func samplePatient() *responses.Patient {
	createdAt := time.Date(2024, time.January, 2, 9, 0, 0, 0, time.UTC)
	return &responses.Patient{
		ID:          testPatientID,
		Name:        "Jane Doe",
		MRN:         "MRN123",
		SurgeryType: "Appendectomy",
		OTDate:      "2024-01-01",
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
		POD:         5,
	}
}

func newTestRouter(t *testing.T, internalConfig *config.InternalConfig) (*chi.Mux, *MockPatientUsecase) {
	t.Helper()
	logger := zap.NewNop()
	usecase := new(MockPatientUsecase)

	router := chi.NewRouter()
	SetupRoutes(
		router,
		internalConfig,
		middlewares.NewMiddlewares(logger, internalConfig),
		controllers.NewHealthController(internalConfig),
		controllers.NewPatientController(logger, usecase, internalConfig),
	)
	return router, usecase
}

func developmentConfig() *config.InternalConfig {
	return &config.InternalConfig{App: config.App{
		Env:                        "development",
		MaxRequests:                1000,
		RequestTimeoutInSeconds:    10,
		RequestBodyLimitInMegabyte: 1,
	}}
}

func serve(router http.Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestHealthRoute(t *testing.T) {
	router, _ := newTestRouter(t, developmentConfig())

	rr := serve(router, http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	data := decodeBody(t, rr)["data"].(map[string]interface{})
	assert.Equal(t, "ok", data["status"])
	assert.Equal(t, "POD Tracker API", data["service"])
	assert.Equal(t, "development", data["environment"])
	assert.NotEmpty(t, data["timestamp"])
}

func TestPatientRoutes(t *testing.T) {
	t.Run("Create Returns 201 With POD", func(t *testing.T) {
		router, usecase := newTestRouter(t, developmentConfig())
		usecase.On("CreatePatient", mock.Anything, &requests.CreatePatient{
			Name: "Jane Doe", MRN: "MRN123", SurgeryType: "Appendectomy", OTDate: "2024-01-01",
		}).Return(samplePatient(), nil)

		body := []byte(`{"name":"Jane Doe","mrn":"MRN123","surgeryType":"Appendectomy","otDate":"2024-01-01","pod":99,"id":"x"}`)
		rr := serve(router, http.MethodPost, "/api/patients", body)

		assert.Equal(t, http.StatusCreated, rr.Code)
		response := decodeBody(t, rr)
		assert.Equal(t, true, response["success"])
		data := response["data"].(map[string]interface{})
		assert.Equal(t, testPatientID, data["id"])
		assert.Equal(t, float64(5), data["pod"])
		usecase.AssertExpectations(t)
	})

	t.Run("Create With Missing Fields", func(t *testing.T) {
		router, usecase := newTestRouter(t, developmentConfig())
		usecase.On("CreatePatient", mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrMissingRequiredField(nil))

		rr := serve(router, http.MethodPost, "/api/patients", []byte(`{"name":"Jane"}`))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "name, mrn, and otDate are required", decodeBody(t, rr)["message"])
	})

	t.Run("Create With Malformed JSON", func(t *testing.T) {
		router, usecase := newTestRouter(t, developmentConfig())

		rr := serve(router, http.MethodPost, "/api/patients", []byte(`{"name":`))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, false, decodeBody(t, rr)["success"])
		usecase.AssertNotCalled(t, "CreatePatient", mock.Anything, mock.Anything)
	})

	t.Run("Create With Empty Body", func(t *testing.T) {
		router, usecase := newTestRouter(t, developmentConfig())
		usecase.On("CreatePatient", mock.Anything, &requests.CreatePatient{}).
			Return(nil, exceptions.ErrMissingRequiredField(nil))

		rr := serve(router, http.MethodPost, "/api/patients", nil)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "name, mrn, and otDate are required", decodeBody(t, rr)["message"])
		usecase.AssertExpectations(t)
	})

	t.Run("Create With Oversized Body", func(t *testing.T) {
		router, usecase := newTestRouter(t, developmentConfig())
		oversized := append([]byte(`{"name":"`), bytes.Repeat([]byte("a"), 2<<20)...)
		oversized = append(oversized, []byte(`"}`)...)

		rr := serve(router, http.MethodPost, "/api/patients", oversized)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
		usecase.AssertNotCalled(t, "CreatePatient", mock.Anything, mock.Anything)
	})

	t.Run("List Empty Store", func(t *testing.T) {
		router, usecase := newTestRouter(t, developmentConfig())
		usecase.On("FindAll", mock.Anything).Return([]responses.Patient{}, nil)

		rr := serve(router, http.MethodGet, "/api/patients", nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, []interface{}{}, decodeBody(t, rr)["data"])
	})

	t.Run("List Store Failure", func(t *testing.T) {
		router, usecase := newTestRouter(t, &config.InternalConfig{App: config.App{Env: "production", MaxRequests: 1000}})
		usecase.On("FindAll", mock.Anything).Return(nil, exceptions.ErrMongoDBIterateDocuments(assert.AnError))

		rr := serve(router, http.MethodGet, "/api/patients", nil)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		response := decodeBody(t, rr)
		assert.Equal(t, "Failed to fetch patients", response["message"])
		assert.NotContains(t, response, "dev_message")
	})

	t.Run("Error Detail Follows The Loaded Config", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		router, usecase := newTestRouter(t, developmentConfig())
		usecase.On("FindAll", mock.Anything).Return(nil, exceptions.ErrMongoDBIterateDocuments(assert.AnError))

		rr := serve(router, http.MethodGet, "/api/patients", nil)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Contains(t, decodeBody(t, rr), "dev_message")
	})

	t.Run("Get By ID", func(t *testing.T) {
		router, usecase := newTestRouter(t, developmentConfig())
		usecase.On("FindByID", mock.Anything, testPatientID).Return(samplePatient(), nil)

		rr := serve(router, http.MethodGet, "/api/patients/"+testPatientID, nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Jane Doe", decodeBody(t, rr)["data"].(map[string]interface{})["name"])
	})

	t.Run("Get Unknown ID", func(t *testing.T) {
		router, usecase := newTestRouter(t, developmentConfig())
		usecase.On("FindByID", mock.Anything, "missing").Return(nil, exceptions.ErrPatientNotFound(nil, "missing"))

		rr := serve(router, http.MethodGet, "/api/patients/missing", nil)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Patient not found", decodeBody(t, rr)["message"])
	})

	t.Run("Update Passes Only Present Fields", func(t *testing.T) {
		router, usecase := newTestRouter(t, developmentConfig())
		surgeon := "Dr. Smith"
		updated := samplePatient()
		updated.Surgeon = surgeon
		usecase.On("UpdateByID", mock.Anything, testPatientID, &requests.UpdatePatient{Surgeon: &surgeon}).Return(updated, nil)

		rr := serve(router, http.MethodPut, "/api/patients/"+testPatientID, []byte(`{"surgeon":"Dr. Smith","createdAt":"2020-01-01T00:00:00Z"}`))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, surgeon, decodeBody(t, rr)["data"].(map[string]interface{})["surgeon"])
		usecase.AssertExpectations(t)
	})

	t.Run("Delete", func(t *testing.T) {
		router, usecase := newTestRouter(t, developmentConfig())
		usecase.On("DeleteByID", mock.Anything, testPatientID).Return(nil).Once()
		usecase.On("DeleteByID", mock.Anything, testPatientID).Return(exceptions.ErrPatientNotFound(nil, testPatientID)).Once()

		rr := serve(router, http.MethodDelete, "/api/patients/"+testPatientID, nil)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "patient deleted", decodeBody(t, rr)["message"])

		rr = serve(router, http.MethodDelete, "/api/patients/"+testPatientID, nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Deadline Exceeded", func(t *testing.T) {
		router, usecase := newTestRouter(t, developmentConfig())
		usecase.On("FindAll", mock.Anything).Return(nil, context.DeadlineExceeded)

		rr := serve(router, http.MethodGet, "/api/patients", nil)

		assert.Equal(t, http.StatusGatewayTimeout, rr.Code)
	})

	t.Run("Deadline Hidden Behind Store Error", func(t *testing.T) {
		internalConfig := developmentConfig()
		internalConfig.App.RequestTimeoutInSeconds = 1
		router, usecase := newTestRouter(t, internalConfig)
		usecase.On("FindAll", mock.Anything).
			Run(func(args mock.Arguments) {
				<-args.Get(0).(context.Context).Done()
			}).
			Return(nil, exceptions.ErrMongoDBFindDocument(nil, "Failed to fetch patients"))

		rr := serve(router, http.MethodGet, "/api/patients", nil)

		assert.Equal(t, http.StatusGatewayTimeout, rr.Code)
	})

	t.Run("Handler Panic", func(t *testing.T) {
		router, usecase := newTestRouter(t, developmentConfig())
		usecase.On("FindAll", mock.Anything).Run(func(mock.Arguments) {
			panic("boom")
		})

		rr := serve(router, http.MethodGet, "/api/patients", nil)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, false, decodeBody(t, rr)["success"])
	})
}

func TestUnknownRoutes(t *testing.T) {
	router, _ := newTestRouter(t, developmentConfig())

	t.Run("Unknown Path", func(t *testing.T) {
		rr := serve(router, http.MethodGet, "/api/unknown", nil)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		response := decodeBody(t, rr)
		assert.Equal(t, "Route GET /api/unknown not found", response["message"])
		routes := response["data"].(map[string]interface{})["availableRoutes"].([]interface{})
		assert.ElementsMatch(t, []interface{}{
			"GET /",
			"GET /api/patients",
			"POST /api/patients",
			"GET /api/patients/:id",
			"PUT /api/patients/:id",
			"DELETE /api/patients/:id",
		}, routes)
	})

	t.Run("Wrong Method On Known Path", func(t *testing.T) {
		rr := serve(router, http.MethodPatch, "/api/patients", nil)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Route PATCH /api/patients not found", decodeBody(t, rr)["message"])
	})
}

func TestCORS(t *testing.T) {
	preflight := func(router http.Handler, origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/api/patients", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		return rr
	}

	t.Run("Any Origin Outside Production", func(t *testing.T) {
		router, _ := newTestRouter(t, developmentConfig())

		rr := preflight(router, "http://example.com")

		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Production Allows Only The Frontend", func(t *testing.T) {
		router, _ := newTestRouter(t, &config.InternalConfig{App: config.App{
			Env:         "production",
			FrontendURL: "https://pod.example.org",
			MaxRequests: 1000,
		}})

		allowed := preflight(router, "https://pod.example.org")
		assert.Equal(t, "https://pod.example.org", allowed.Header().Get("Access-Control-Allow-Origin"))

		denied := preflight(router, "http://evil.example.com")
		assert.Empty(t, denied.Header().Get("Access-Control-Allow-Origin"))
	})
}
