package cli

import (
	"fmt"
	"io"
	"pod-tracker-service/internal/pkg/constvars"
	"pod-tracker-service/internal/pkg/dto/responses"
	"pod-tracker-service/internal/pkg/utils"
)

// CardDate shows a YYYY-MM-DD day as "Jan 2, 2006". Anything unparseable is
// shown as received.
func CardDate(otDate string) string {
	date, err := utils.ParseCalendarDate(otDate)
	if err != nil {
		return otDate
	}
	return date.Format(constvars.CardDateLayout)
}

func RenderCard(w io.Writer, patient responses.Patient) {
	fmt.Fprintf(w, "%s  [POD %d]\n", patient.Name, patient.POD)
	fmt.Fprintf(w, "  MRN: %s\n", patient.MRN)
	if patient.SurgeryType != "" {
		fmt.Fprintf(w, "  %s\n", patient.SurgeryType)
	}
	fmt.Fprintf(w, "  OT Date: %s\n", CardDate(patient.OTDate))
	if patient.Surgeon != "" {
		fmt.Fprintf(w, "  Surgeon: %s\n", patient.Surgeon)
	}
	if patient.Unit != "" {
		fmt.Fprintf(w, "  Unit: %s\n", patient.Unit)
	}
	fmt.Fprintf(w, "  ID: %s\n", patient.ID)
}
