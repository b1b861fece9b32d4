package opsmngr

// Entity is an API resource decoded from JSON. The client does not model
// the internal structure of groups, hosts, alerts and so on; documents are
// passed through exactly as the server returned them.
type Entity map[string]any

// ID returns the "id" field of the entity, or an empty string.
func (e Entity) ID() string {
	return e.Str("id")
}

// Str returns the named field as a string, or an empty string when the
// field is absent or not a string.
func (e Entity) Str(key string) string {
	s, _ := e[key].(string)
	return s
}

// Results unwraps the "results" array of a paginated list response. Entries
// that are not JSON objects are skipped.
func (e Entity) Results() []Entity {
	raw, ok := e["results"].([]any)
	if !ok {
		return nil
	}

	out := make([]Entity, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]any); ok {
			out = append(out, Entity(m))
		}
	}
	return out
}

// TotalCount returns the "totalCount" field of a list response, or zero.
func (e Entity) TotalCount() int {
	n, _ := e["totalCount"].(float64)
	return int(n)
}

// agent type names used by the agents endpoint
const (
	agentTypeMonitoring = "MONITORING"
	agentTypeBackup     = "BACKUP"
	agentTypeAutomation = "AUTOMATION"
)
