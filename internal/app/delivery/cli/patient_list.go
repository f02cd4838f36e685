package cli

import (
	"fmt"
	"io"
	"pod-tracker-service/internal/pkg/dto/responses"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

const EmptyListHint = `No patients yet. Run "podctl add" to get started.`

func CountLine(count int) string {
	if count == 1 {
		return "1 patient found"
	}
	return fmt.Sprintf("%d patients found", count)
}

// RenderList prints patients in the order given, newest first as served.
func RenderList(w io.Writer, patients []responses.Patient) {
	if len(patients) == 0 {
		fmt.Fprintln(w, EmptyListHint)
		return
	}

	fmt.Fprintln(w, CountLine(len(patients)))
	fmt.Fprintln(w)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"POD", "Name", "MRN", "Surgery", "OT Date", "Surgeon", "Unit", "ID"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	for _, patient := range patients {
		table.Append([]string{
			strconv.Itoa(patient.POD),
			patient.Name,
			patient.MRN,
			patient.SurgeryType,
			CardDate(patient.OTDate),
			patient.Surgeon,
			patient.Unit,
			patient.ID,
		})
	}
	table.Render()
}
