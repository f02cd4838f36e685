package cli

import (
	"bufio"
	"context"
	"io"
	"pod-tracker-service/internal/pkg/dto/requests"
	"pod-tracker-service/internal/pkg/dto/responses"

	"github.com/sirupsen/logrus"
)

type PatientAPI interface {
	List(ctx context.Context) ([]responses.Patient, error)
	Get(ctx context.Context, patientID string) (*responses.Patient, error)
	Create(ctx context.Context, request *requests.CreatePatient) (*responses.Patient, error)
	Update(ctx context.Context, patientID string, request *requests.UpdatePatient) (*responses.Patient, error)
	Delete(ctx context.Context, patientID string) error
}

// Console renders the patient screens on a terminal.
type Console struct {
	API      PatientAPI
	Out      io.Writer
	Prompter *Prompter
	Log      *logrus.Logger
	BaseURL  string
}

func NewConsole(api PatientAPI, in io.Reader, out io.Writer, logger *logrus.Logger, baseURL string) *Console {
	return &Console{
		API:      api,
		Out:      out,
		Prompter: NewPrompter(in, out),
		Log:      logger,
		BaseURL:  baseURL,
	}
}

type Prompter struct {
	In  *bufio.Reader
	Out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		In:  bufio.NewReader(in),
		Out: out,
	}
}
