// Package config defines the orval configuration and its override layers.
//
// The configuration has one global override record, an ordered list of per-tag
// records and a map of per-operation records (see [Overrides]). For a single
// operation they are folded with [Merge] into one effective [Override]:
//
//	global ⊕ tag₁ ⊕ tag₂ ⊕ … ⊕ operation
//
// where later layers win. The per-field policy is documented on [Merge]: scalars
// and lists are replaced, nested records merge key by key, and the free-form
// Extensions map is merged structurally with lists replacing.
//
// Configuration files are YAML. [Load] validates a file against an embedded
// JSON schema before decoding it, so mistakes are reported with their location:
//
//	cfg, err := config.Load("orval.yaml")
//	if errors.Is(err, oaserrors.ErrConfig) {
//		// schema violation or invalid value
//	}
package config
