package buildmeta

// Identity describes the project a source is generated for.
// A nil Name or Description means the project does not declare one, which is
// different from declaring an empty string.
type Identity struct {
	GroupID     string
	ArtifactID  string
	Version     string
	Name        *string
	Description *string
	Packaging   string
}

// ProjectName returns the declared name, or the artifact id when none is declared.
func ProjectName(id Identity) string {
	if id.Name != nil {
		return *id.Name
	}
	return id.ArtifactID
}

// ProjectDescription returns the declared description, or "" when none is declared.
func ProjectDescription(id Identity) string {
	if id.Description != nil {
		return *id.Description
	}
	return ""
}
