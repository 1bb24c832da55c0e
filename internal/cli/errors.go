package cli

// Error codes for --json error responses. Scripts may rely on them.
const (
	ErrConfigInvalid = "CONFIG_INVALID"

	ErrFileExists     = "FILE_EXISTS"
	ErrFileWriteError = "FILE_WRITE_ERROR"

	// The bare "tour" project.
	ErrProjectRejected = "PROJECT_REJECTED"

	ErrInvalidInput    = "INVALID_INPUT"
	ErrMissingArgument = "MISSING_ARGUMENT"

	ErrInternal = "INTERNAL_ERROR"
)

// Warning codes for non-fatal issues.
const (
	WarnCategoriesDefault = "CATEGORIES_DEFAULT"
	WarnCategoryExists    = "CATEGORY_EXISTS"
	WarnCategoryMissing   = "CATEGORY_MISSING"
	WarnHooksDirMissing   = "HOOKS_DIR_MISSING"
	WarnTourIsCategory    = "TOUR_IS_CATEGORY"
)
