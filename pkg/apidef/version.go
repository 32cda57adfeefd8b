/*
 * Copyright (c) 2024-present Provgen authors
 */

package apidef

// Canonical version ladder assumed when a product declares no registry
// of its own. Later entries are wider: a property gated to beta is
// visible in beta and alpha but not in ga.
const (
	VersionGA    = "ga"
	VersionBeta  = "beta"
	VersionAlpha = "alpha"
)

// Version is one entry of a product's version registry. Ordering is by
// declaration rank: rank 0 is the narrowest (most stable) version.
type Version struct {
	name string
	rank int
}

func (v *Version) Name() string { return v.name }

func (v *Version) Rank() int { return v.rank }

// Older reports whether v precedes o in the registry, i.e. v exposes a
// narrower API surface than o.
func (v *Version) Older(o *Version) bool { return v.rank < o.rank }

func (v *Version) String() string { return v.name }
