package importer

// preview.go provides read-only analysis of an import payload: every
// row is mapped, built, and validated exactly as a real run would, but
// the gateway is never touched.

import (
	"fmt"
)

// PreviewErrorSamples caps how many row errors a preview reports.
var PreviewErrorSamples = 20

// PreviewReport summarizes what a run of the same request would do,
// ignoring persistence outcomes.
type PreviewReport struct {
	TotalRows int      `json:"totalRows"`
	ValidRows int      `json:"validRows"`
	ErrorRows int      `json:"errorRows"`
	Errors    []string `json:"errors"`
}

// Preview validates all rows of a request without persisting anything.
// The skip/abort policy does not apply: every row is always analyzed.
func (s *Service) Preview(req Request) (*PreviewReport, error) {
	ks, ok := kinds[req.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKind, req.Kind)
	}

	rows := splitRows(string(sanitizeUTF8([]byte(req.Payload))), req.HasHeaders)
	if len(rows) == 0 {
		return nil, ErrEmptyPayload
	}

	report := &PreviewReport{
		TotalRows: len(rows),
		Errors:    []string{},
	}

	for i, row := range rows {
		if err := ks.Check(row); err != nil {
			report.ErrorRows++
			if len(report.Errors) < PreviewErrorSamples {
				report.Errors = append(report.Errors, fmt.Sprintf("Row %d: %s", i+1, err))
			}
			continue
		}
		report.ValidRows++
	}

	return report, nil
}
