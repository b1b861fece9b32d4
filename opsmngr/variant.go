package opsmngr

import (
	"fmt"
	"strings"
)

// Variant identifies which deployment of the MMS API a client talks to.
// The values are bit flags so an endpoint can declare support for more
// than one variant.
type Variant uint8

const (
	// OpsManager is an on-premise Ops Manager installation.
	OpsManager Variant = 1 << iota
	// CloudManager is the hosted Cloud Manager service.
	CloudManager
)

// anyVariant marks endpoints available on both deployments.
const anyVariant = OpsManager | CloudManager

// String returns a human readable name for the variant.
func (v Variant) String() string {
	switch v {
	case OpsManager:
		return "Ops Manager"
	case CloudManager:
		return "Cloud Manager"
	case anyVariant:
		return "Ops Manager / Cloud Manager"
	default:
		return fmt.Sprintf("Variant(%d)", uint8(v))
	}
}

// supports reports whether v includes the given variant flag.
func (v Variant) supports(other Variant) bool {
	return v&other != 0
}

// ParseVariant converts a configuration string into a Variant.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "-", "")) {
	case "", "opsmanager":
		return OpsManager, nil
	case "cloudmanager":
		return CloudManager, nil
	default:
		return 0, fmt.Errorf("unknown API variant %q (must be opsmanager or cloudmanager)", s)
	}
}
