// Package generator drives one artifact-info run: it decides whether the
// project's packaging calls for generation, builds the property map from the
// options and the collected build facts, renders the template and writes the
// result under <output dir>/<namespace as path>/<type name>.<ext>.
package generator
