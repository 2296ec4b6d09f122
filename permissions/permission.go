// Package permissions maps roles to route permissions from an embedded
// policy file.
package permissions

import (
	_ "embed"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsFile []byte

type policy struct {
	Roles map[string][]string `json:"roles"`
}

var (
	loaded policy
	once   sync.Once
)

func load() {
	once.Do(func() {
		if err := json.Unmarshal(permissionsFile, &loaded); err != nil {
			log.Fatal().Err(err).Msg("failed to parse embedded permissions file")
		}
	})
}

// HasPermission reports whether the role grants the named permission. A "*"
// entry grants everything.
func HasPermission(role, permission string) bool {
	load()

	for _, p := range loaded.Roles[role] {
		if p == "*" || p == permission {
			return true
		}
	}

	return false
}
