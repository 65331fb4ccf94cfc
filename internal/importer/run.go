package importer

// run.go is the import orchestrator. It owns the row loop, the
// skip/abort policy, row accounting, and the bounded error report.
//
// Rows are processed strictly in order and each gateway call is
// awaited before the next row begins: a later row's insert may depend
// on an earlier one, so the pipeline never races writes.

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// ReportErrorCap is the maximum number of error messages included in a
// report. It bounds reporting only: every failed row is still counted.
var ReportErrorCap = 10

// Service drives import runs against a persistence gateway.
type Service struct {
	gw Gateway
}

// NewService creates an import service writing through gw.
func NewService(gw Gateway) *Service {
	return &Service{gw: gw}
}

// Run executes one import request and returns its report.
//
// Request-level failures (unrecognized kind, no data rows) are
// returned as errors wrapping ErrInvalidKind or ErrEmptyPayload; no
// rows are processed. Row-level failures never escape: they are
// converted into outcomes and surfaced through the report.
func (s *Service) Run(ctx context.Context, req Request) (*Report, error) {
	ks, ok := kinds[req.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKind, req.Kind)
	}

	rows := splitRows(string(sanitizeUTF8([]byte(req.Payload))), req.HasHeaders)
	if len(rows) == 0 {
		return nil, ErrEmptyPayload
	}

	runID := uuid.New().String()
	logger := slog.Default().With("run_id", runID, "kind", req.Kind)
	logger.Info("import started",
		"rows", len(rows),
		"has_headers", req.HasHeaders,
		"skip_errors", req.SkipErrors,
	)

	outcomes := make([]RowOutcome, 0, len(rows))
	for i, row := range rows {
		index := i + 1

		err := ks.Process(ctx, s.gw, row)
		if err != nil {
			outcomes = append(outcomes, RowOutcome{
				Index:   index,
				Status:  RowFailed,
				Message: fmt.Sprintf("Row %d: %s", index, err),
			})
			logger.Warn("row failed",
				"row", index,
				"stage", failureStage(err),
				"error", err.Error(),
			)
			if !req.SkipErrors {
				break
			}
			continue
		}

		outcomes = append(outcomes, RowOutcome{Index: index, Status: RowImported})
	}

	report := buildReport(len(rows), outcomes, req.SkipErrors)
	logger.Info("import completed",
		"total", report.TotalRows,
		"imported", report.ImportedRows,
		"failed", report.FailedRows,
		"success", report.Success,
	)
	return report, nil
}

// buildReport computes the aggregate report from the full outcome
// sequence. The error list is truncated here, at emission time; the
// failed count always reflects every failure.
func buildReport(totalRows int, outcomes []RowOutcome, skipErrors bool) *Report {
	report := &Report{
		TotalRows: totalRows,
		Errors:    []string{},
	}

	for _, o := range outcomes {
		switch o.Status {
		case RowImported:
			report.ImportedRows++
		case RowFailed:
			report.FailedRows++
			if len(report.Errors) < ReportErrorCap {
				report.Errors = append(report.Errors, o.Message)
			}
		}
	}

	report.Success = report.FailedRows == 0 || (skipErrors && report.ImportedRows > 0)
	report.Message = fmt.Sprintf("Import completed. %d records imported, %d failed.",
		report.ImportedRows, report.FailedRows)
	return report
}
