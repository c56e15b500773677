package errors

// Config errors

func ConfigNotFound(path string) *KtdocsError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigInvalid(path string, cause error) *KtdocsError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "configuration file is invalid").
		WithContext("path", path)
}

// Tree errors

func ValidationFailed(field, reason string) *KtdocsError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

func LintFailed(errorCount, warningCount int) *KtdocsError {
	return New(CategoryValidation, SeverityError, "documentation tree is malformed").
		WithContext("errors", errorCount).
		WithContext("warnings", warningCount)
}

// LintWarnings is returned when warnings are configured to fail a run.
func LintWarnings(warningCount int) *KtdocsError {
	return New(CategoryValidation, SeverityWarning, "documentation tree has warnings").
		WithContext("warnings", warningCount)
}

func UnsupportedFormat(path, ext string) *KtdocsError {
	return New(CategoryValidation, SeverityFatal, "unsupported tree file format").
		WithContext("path", path).
		WithContext("extension", ext)
}

func DecodeFailed(path string, cause error) *KtdocsError {
	return Wrap(cause, CategoryEncoding, SeverityFatal, "failed to decode documentation tree").
		WithContext("path", path)
}

func EncodeFailed(format string, cause error) *KtdocsError {
	return Wrap(cause, CategoryEncoding, SeverityFatal, "failed to encode documentation tree").
		WithContext("format", format)
}

// Filesystem errors

func ReadFailed(path string, cause error) *KtdocsError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "failed to read file").
		WithContext("path", path)
}

func WriteFailed(path string, cause error) *KtdocsError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "failed to write file").
		WithContext("path", path)
}

// ScaffoldOutOfDate reports pages that no longer match the tree.
func ScaffoldOutOfDate(dir string, problems int) *KtdocsError {
	return New(CategoryValidation, SeverityError, "scaffolded pages are out of date").
		WithContext("directory", dir).
		WithContext("problems", problems)
}

// Internal errors

func InternalError(message string, cause error) *KtdocsError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
