// Package permissions loads the embedded route table that decides which staff
// roles may call each endpoint.
package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission is one route entry. Path is the chi route pattern, not the request path.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

// Allows reports whether role may call the route. An entry without roles
// admits any authenticated caller.
func (p Permission) Allows(role string) bool {
	return p.Skip || len(p.Permissions) == 0 || slices.Contains(p.Permissions, role)
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`
}

// FindPermissions returns the zero Permission for routes missing from the table.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	for _, endpoint := range r.Endpoints {
		if endpoint.Path == path && endpoint.Method == method {
			return endpoint
		}
	}

	return Permission{}
}

func Get() *PermissionData {
	var data PermissionData

	if err := json.Unmarshal(permissionsData, &data); err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	log.Debug().Int("endpoints", len(data.Endpoints)).Msg("Loaded embedded permissions")

	return &data
}
