package domain

import "strings"

// RefKey is the JSON-Schema reference keyword.
const RefKey = "$ref"

// DefinitionsPrefix identifies a same-document reference into "definitions".
const DefinitionsPrefix = "#/definitions/"

// RefRule describes how internal references are turned into external ones.
type RefRule struct {
	// Prefix selects the $ref values to rewrite.
	Prefix string

	// Target is prepended to matching values, e.g. "../automations.schema.json".
	Target string

	// TraverseArrays enables descent into array elements.
	TraverseArrays bool
}

// Matches reports whether ref should be rewritten under this rule.
func (r RefRule) Matches(ref string) bool {
	return r.Prefix != "" && strings.HasPrefix(ref, r.Prefix)
}

// Apply returns the rewritten reference. The fragment is kept intact.
func (r RefRule) Apply(ref string) string {
	return r.Target + ref
}

// DefaultRefRule returns the rule used for the automations schema tree.
func DefaultRefRule() RefRule {
	return RefRule{
		Prefix:         DefinitionsPrefix,
		Target:         "../automations.schema.json",
		TraverseArrays: true,
	}
}

// PathRewrite is a literal text substitution applied to raw schema files.
type PathRewrite struct {
	Old string
	New string
}

// DefaultPathRewrite moves references to the shared definitions one level up.
// The leading quote anchors the match so rewritten text is not matched again.
func DefaultPathRewrite() PathRewrite {
	return PathRewrite{
		Old: `"../common/`,
		New: `"../../common/`,
	}
}
