// Package apperr defines shared error sentinels for artifact-info.
// It is a leaf package with no internal imports, so the renderer, the
// namespace translator and the generator can all wrap the same sentinels
// without creating import cycles.
package apperr
