package errors

// Convenience functions for common error patterns

// Config errors

func ConfigNotReadable(path string, cause error) *SiteError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "configuration file could not be read").
		WithContext("path", path)
}

func ConfigInvalid(path string, cause error) *SiteError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "configuration file is invalid").
		WithContext("path", path)
}

func ValidationFailed(field, reason string) *SiteError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// Content errors

func ContentReadFailed(path string, cause error) *SiteError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "content file could not be read").
		WithContext("path", path)
}

func FrontmatterInvalid(path string, cause error) *SiteError {
	return Wrap(cause, CategoryContent, SeverityFatal, "frontmatter could not be parsed").
		WithContext("path", path)
}

func MarkdownRenderFailed(path string, cause error) *SiteError {
	return Wrap(cause, CategoryContent, SeverityFatal, "markdown rendering failed").
		WithContext("path", path)
}

// Template errors

func TemplateMissing(name string, cause error) *SiteError {
	return Wrap(cause, CategoryTemplate, SeverityFatal, "template could not be loaded").
		WithContext("template", name)
}

// Output errors

func OutputWriteFailed(path string, cause error) *SiteError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "output could not be written").
		WithContext("path", path)
}

func StaticCopyFailed(src string, cause error) *SiteError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "static assets could not be copied").
		WithContext("source", src)
}

// Build pipeline errors

func StageFailed(stage string, cause error) *SiteError {
	return Wrap(cause, CategoryBuild, SeverityFatal, "build failed").
		WithContext("stage", stage)
}

func WorkspaceError(operation string, cause error) *SiteError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "workspace operation failed").
		WithContext("operation", operation)
}

// WorkspaceCleanupFailed is not fatal: the build result stands, only the
// temporary directory is left behind.
func WorkspaceCleanupFailed(path string, cause error) *SiteError {
	return Wrap(cause, CategoryFileSystem, SeverityError, "workspace cleanup failed").
		WithContext("path", path)
}

// Internal errors

func InternalError(message string, cause error) *SiteError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
