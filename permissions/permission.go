// Package permissions loads the route access table embedded in permissions.json.
package permissions

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission is the access rule of one chi route pattern. Public routes accept anonymous
// callers; Roles restricts signed-in callers when it is not empty.
type Permission struct {
	Roles  []string `json:"permissions"`
	Path   string   `json:"path"`
	Method string   `json:"method"`
	Public bool     `json:"skip"`
}

// Allows reports whether a caller with role may use the route.
func (p Permission) Allows(role string) bool {
	return len(p.Roles) == 0 || slices.Contains(p.Roles, role)
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	// Skip turns authentication off for every route. Local development only.
	Skip bool `json:"skip"`

	routes map[string]Permission
}

func routeKey(method, path string) string {
	return method + " " + path
}

// FindPermissions returns the rule for a route pattern, or the zero Permission, which
// requires a signed-in caller with any role.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	if r == nil {
		return Permission{}
	}

	return r.routes[routeKey(method, path)]
}

// Parse decodes an access table. Duplicate method and path pairs are rejected.
func Parse(data []byte) (*PermissionData, error) {
	var table PermissionData
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to decode permissions: %w", err)
	}

	table.routes = make(map[string]Permission, len(table.Endpoints))
	for _, endpoint := range table.Endpoints {
		key := routeKey(endpoint.Method, endpoint.Path)
		if _, dup := table.routes[key]; dup {
			return nil, fmt.Errorf("duplicate permission for %s", key)
		}

		table.routes[key] = endpoint
	}

	return &table, nil
}

func Get() *PermissionData {
	table, err := Parse(permissionsData)
	if err != nil {
		log.Err(err).Msg("Failed to load embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(table.Endpoints)).Msg("Successfully loaded embedded permissions")

	return table
}
