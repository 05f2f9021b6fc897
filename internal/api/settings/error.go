package settings

import "StudentPlanner/pkg/response"

var (
	ErrExportSnapshot  = response.NewError(500, "failed to export snapshot")
	ErrSavePreferences = response.NewError(500, "failed to persist preferences")
)
