// Package migration upgrades persisted challenge records across schema
// versions. Steps run in order from the record's version up to the current
// schema version.
package migration

import (
	"github.com/hard75/hard75/internal/constants"
	"github.com/hard75/hard75/internal/logger"
	"github.com/hard75/hard75/internal/models"
)

// Step upgrades a challenge from FromVersion to FromVersion+1
type Step struct {
	FromVersion int
	Name        string
	Apply       func(models.Challenge) models.Challenge
}

// steps holds the registered migrations, ordered by FromVersion. Version 0
// records predate the version field; the step is a plain bump kept as a
// forward-compatible placeholder.
var steps = []Step{
	{
		FromVersion: 0,
		Name:        "add schema version",
		Apply:       func(ch models.Challenge) models.Challenge { return ch },
	},
}

// Run applies every step between ch.Version and the current schema
// version, then stamps the record with the current version.
func Run(ch models.Challenge) models.Challenge {
	for _, step := range steps {
		if ch.Version <= step.FromVersion && step.FromVersion < constants.SchemaVersion {
			logger.Debug("Applying migration", "step", step.Name, "from", step.FromVersion)
			ch = step.Apply(ch)
			ch.Version = step.FromVersion + 1
		}
	}
	ch.Version = constants.SchemaVersion
	return ch
}
