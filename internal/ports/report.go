package ports

import "snap-seed-sync/internal/types"

type ReportPort interface {
	WriteReport(path string, report types.SyncReport) error
}
