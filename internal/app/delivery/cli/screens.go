package cli

import (
	"context"
	"errors"
	"fmt"
	"pod-tracker-service/internal/app/services/shared/podclient"
	"pod-tracker-service/internal/pkg/dto/requests"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	DefaultRefreshInterval = 30 * time.Second

	deleteQuestion = "Are you sure you want to delete this patient?"
	saveFailed     = "Failed to save patient. Please try again."
	deleteFailed   = "Failed to delete patient"
)

func (c *Console) loadFailedMessage() string {
	return fmt.Sprintf("Failed to load patients. Make sure the backend is running at %s.", c.BaseURL)
}

func (c *Console) List(ctx context.Context) error {
	patients, err := c.API.List(ctx)
	if err != nil {
		c.Log.WithError(err).Debug("listing patients failed")
		fmt.Fprintln(c.Out, c.loadFailedMessage())
		return err
	}
	RenderList(c.Out, patients)
	return nil
}

// Watch redraws the list every interval until ctx ends. Each refresh runs
// to completion before the next tick is read, so refreshes never overlap.
// A failed refresh is shown inline and the next tick tries again.
func (c *Console) Watch(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}

	c.refresh(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			c.refresh(ctx)
		}
	}
}

func (c *Console) refresh(ctx context.Context) {
	fmt.Fprintf(c.Out, "\n-- %s --\n", time.Now().Format(time.Kitchen))
	err := c.List(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		c.Log.WithFields(logrus.Fields{"base_url": c.BaseURL}).WithError(err).Warn("refresh failed")
	}
}

func (c *Console) Show(ctx context.Context, patientID string) error {
	patient, err := c.API.Get(ctx, patientID)
	if err != nil {
		fmt.Fprintln(c.Out, err.Error())
		return err
	}
	RenderCard(c.Out, *patient)
	return nil
}

// Add fills the blanks of preset from the prompter and creates the patient.
// Optional fields are only asked for when a required one was missing.
func (c *Console) Add(ctx context.Context, preset requests.CreatePatient) error {
	request, err := c.completeForm(preset)
	if err != nil {
		return err
	}

	patient, err := c.API.Create(ctx, &request)
	if err != nil {
		c.Log.WithError(err).Debug("creating patient failed")
		fmt.Fprintln(c.Out, saveMessage(err))
		return err
	}

	fmt.Fprintln(c.Out, "Patient saved.")
	RenderCard(c.Out, *patient)
	return nil
}

func (c *Console) completeForm(preset requests.CreatePatient) (requests.CreatePatient, error) {
	interactive := preset.Name == "" || preset.MRN == "" || preset.OTDate == ""
	if !interactive {
		return preset, nil
	}

	var err error
	fields := []struct {
		value    *string
		label    string
		required bool
		date     bool
	}{
		{&preset.Name, "Name", true, false},
		{&preset.MRN, "MRN", true, false},
		{&preset.SurgeryType, "Surgery Type", false, false},
		{&preset.OTDate, "OT Date", true, true},
		{&preset.Surgeon, "Surgeon", false, false},
		{&preset.Unit, "Unit", false, false},
	}
	for _, field := range fields {
		if *field.value != "" {
			continue
		}
		if field.date {
			*field.value, err = c.Prompter.Date(field.label, field.required)
		} else {
			*field.value, err = c.Prompter.Text(field.label, field.required)
		}
		if err != nil {
			return preset, err
		}
	}
	return preset, nil
}

func (c *Console) Update(ctx context.Context, patientID string, request *requests.UpdatePatient) error {
	patient, err := c.API.Update(ctx, patientID, request)
	if err != nil {
		c.Log.WithError(err).Debug("updating patient failed")
		fmt.Fprintln(c.Out, saveMessage(err))
		return err
	}

	fmt.Fprintln(c.Out, "Patient updated.")
	RenderCard(c.Out, *patient)
	return nil
}

// Delete asks first unless skipConfirm is set, then shows the list again.
func (c *Console) Delete(ctx context.Context, patientID string, skipConfirm bool) error {
	if !skipConfirm {
		confirmed, err := c.Prompter.Confirm(deleteQuestion)
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Fprintln(c.Out, "Delete cancelled.")
			return nil
		}
	}

	err := c.API.Delete(ctx, patientID)
	if err != nil {
		c.Log.WithError(err).Debug("deleting patient failed")
		fmt.Fprintln(c.Out, deleteFailed)
		return err
	}

	fmt.Fprintln(c.Out, "Patient deleted.")
	return c.List(ctx)
}

// saveMessage prefers the server's own explanation of a rejected write.
func saveMessage(err error) string {
	var apiErr *podclient.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return saveFailed
}
