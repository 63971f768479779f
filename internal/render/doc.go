// Package render substitutes @name@ tokens in a text template with the values
// of a property map. Replacement is literal: values are never interpreted as
// patterns and text outside token boundaries is left untouched. Tokens whose
// name is not in the map survive verbatim.
package render
