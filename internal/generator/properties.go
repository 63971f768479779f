package generator

import (
	"github.com/tbckr/artifact-info/internal/buildmeta"
	"github.com/tbckr/artifact-info/internal/namespace"
	"github.com/tbckr/artifact-info/internal/render"
)

// Property names recognised by the templates.
const (
	PropPackageName = "packageName"
	PropClassName   = "className"
	PropGroupID     = "groupId"
	PropArtifactID  = "artifactId"
	PropVersion     = "version"
	PropName        = "name"
	PropDescription = "description"
	PropBuiltBy     = "builtBy"
	PropBuildDate   = "buildDate"
	PropBuildHost   = "buildHost"

	// PropGoPackage is derived from the namespace for the Go package clause.
	PropGoPackage = "goPackage"
)

// PropertyNames lists the properties in the order they are reported.
func PropertyNames() []string {
	return []string{
		PropPackageName,
		PropClassName,
		PropGroupID,
		PropArtifactID,
		PropVersion,
		PropName,
		PropDescription,
		PropBuiltBy,
		PropBuildDate,
		PropBuildHost,
		PropGoPackage,
	}
}

// Properties folds the static options and the collected facts into the map
// handed to the renderer. opts must already carry its defaults.
func Properties(opts Options, facts buildmeta.Facts) render.PropertyMap {
	return render.PropertyMap{
		PropPackageName: opts.Namespace,
		PropClassName:   opts.TypeName,
		PropGroupID:     opts.Identity.GroupID,
		PropArtifactID:  opts.Identity.ArtifactID,
		PropVersion:     opts.Identity.Version,
		PropName:        facts.Name,
		PropDescription: facts.Description,
		PropBuiltBy:     facts.BuiltBy,
		PropBuildDate:   facts.BuildDate,
		PropBuildHost:   facts.BuildHost,
		PropGoPackage:   namespace.PackageClause(opts.Namespace),
	}
}
