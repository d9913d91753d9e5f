package service

import (
	"context"
	"io"

	"taller/internal/application/dto"
)

// ImportService defines the interface for the spreadsheet ingestion pipeline.
type ImportService interface {
	// ImportCSV ingests a CSV export (workshop intake form), upserting
	// clients and vehicles, recording services and recomputing the reminder
	// schedule of every affected vehicle. Header names are matched loosely
	// (case, accents and spacing are ignored).
	ImportCSV(ctx context.Context, r io.Reader) (*dto.ImportResult, error)
}
