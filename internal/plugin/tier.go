package plugin

// Tier identifies where a plugin reference was resolved.
type Tier int

// Resolution tiers, in lookup order.
const (
	// TierNone - the reference did not resolve.
	TierNone Tier = iota

	// TierRegistry - found in the plugin registry by id.
	TierRegistry

	// TierGlobal - found in the global fallback namespace by id.
	TierGlobal

	// TierInline - the reference was a function.
	TierInline
)

// String returns the tier name used in logs and metric labels.
func (t Tier) String() string {
	switch t {
	case TierRegistry:
		return "registry"
	case TierGlobal:
		return "global"
	case TierInline:
		return "inline"
	default:
		return "none"
	}
}
