package podclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"pod-tracker-service/internal/pkg/constvars"
	"pod-tracker-service/internal/pkg/dto/requests"
	"pod-tracker-service/internal/pkg/dto/responses"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"
)

const (
	DefaultBaseURL = "http://localhost:4000"
	DefaultTimeout = 10 * time.Second
)

type Config struct {
	BaseURL  string
	Timeout  time.Duration
	RetryMax int
	Logger   *logrus.Logger
}

type PatientClient struct {
	BaseURL    string
	HTTPClient *retryablehttp.Client
}

// APIError is a non 2xx answer. Message is the server's own message when
// the body carried one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type noRetryKey struct{}

func NewPatientClient(cfg Config) *PatientClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.RetryMax
	retryClient.RetryWaitMin = 200 * time.Millisecond
	retryClient.RetryWaitMax = 2 * time.Second
	retryClient.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	retryClient.CheckRetry = retryReadsOnly
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	if cfg.Logger != nil {
		retryClient.Logger = cfg.Logger
	} else {
		retryClient.Logger = nil
	}

	return &PatientClient{
		BaseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		HTTPClient: retryClient,
	}
}

// retryReadsOnly keeps writes to a single attempt, so a create that timed
// out after reaching the server is never stored twice.
func retryReadsOnly(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Value(noRetryKey{}) != nil {
		return false, nil
	}
	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}

func (c *PatientClient) List(ctx context.Context) ([]responses.Patient, error) {
	patients := make([]responses.Patient, 0)
	err := c.do(ctx, http.MethodGet, "/api/patients", nil, &patients)
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (c *PatientClient) Get(ctx context.Context, patientID string) (*responses.Patient, error) {
	patient := new(responses.Patient)
	err := c.do(ctx, http.MethodGet, "/api/patients/"+url.PathEscape(patientID), nil, patient)
	if err != nil {
		return nil, err
	}
	return patient, nil
}

func (c *PatientClient) Create(ctx context.Context, request *requests.CreatePatient) (*responses.Patient, error) {
	patient := new(responses.Patient)
	err := c.do(ctx, http.MethodPost, "/api/patients", request, patient)
	if err != nil {
		return nil, err
	}
	return patient, nil
}

func (c *PatientClient) Update(ctx context.Context, patientID string, request *requests.UpdatePatient) (*responses.Patient, error) {
	patient := new(responses.Patient)
	err := c.do(ctx, http.MethodPut, "/api/patients/"+url.PathEscape(patientID), request, patient)
	if err != nil {
		return nil, err
	}
	return patient, nil
}

func (c *PatientClient) Delete(ctx context.Context, patientID string) error {
	return c.do(ctx, http.MethodDelete, "/api/patients/"+url.PathEscape(patientID), nil, nil)
}

func (c *PatientClient) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		payload = bytes.NewReader(raw)
	}

	if method != http.MethodGet {
		ctx = context.WithValue(ctx, noRetryKey{}, true)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.BaseURL+path, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if body != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var decoded envelope
	decodeErr := json.Unmarshal(raw, &decoded)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := decoded.Message
		if decodeErr != nil || message == "" {
			message = fmt.Sprintf("request failed with status %d", resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}
	if decodeErr != nil {
		return fmt.Errorf("decode response: %w", decodeErr)
	}

	if out == nil || len(decoded.Data) == 0 || string(decoded.Data) == "null" {
		return nil
	}
	err = json.Unmarshal(decoded.Data, out)
	if err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}
	return nil
}
