package sim

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Config carries every tunable recognized by the core (§6): FOV radius
// default, the per-agent entry-time schedule, MAX_WAIT, planner mode and
// optional timeouts. Ported in shape from the swarm simulation repo's own
// Config/DefaultConfig/LoadConfig trio (internal/simulation/config.go),
// generalized from boid physics parameters to exploration parameters.
// TimeoutTicks is applied by Simulation.Run; TimeoutWallclockMS is validated
// and carried but not read by Simulation, whose wall-clock budget is the
// argument passed to Run.
type Config struct {
	FOVRadius          int    `json:"fovRadius"`
	EntryTimeSchedule  []int  `json:"entryTimeSchedule"`
	MaxWait            int    `json:"maxWait"`
	PlannerMode        string `json:"plannerMode"` // "frontier" or "random"
	TimeoutTicks       int    `json:"timeoutTicks"`
	TimeoutWallclockMS int    `json:"timeoutWallclockMs"`
}

// DefaultConfig returns the engine's out-of-the-box tuning: full frontier
// policy, FOV radius 5, MAX_WAIT=3, no timeout.
func DefaultConfig() *Config {
	return &Config{
		FOVRadius:   5,
		MaxWait:     MaxWaitDefault,
		PlannerMode: "frontier",
	}
}

// configSchemaURL is the synthetic resource URL the embedded schema below is
// registered under; no network access occurs, jsonschema only uses it as a
// map key for the AddResource/Compile pair.
const configSchemaURL = "swarm-slam://config.schema.json"

const configSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "fovRadius": {"type": "integer", "minimum": 0},
    "entryTimeSchedule": {"type": "array", "items": {"type": "integer", "minimum": 0}},
    "maxWait": {"type": "integer", "minimum": 0},
    "plannerMode": {"type": "string", "enum": ["frontier", "random"]},
    "timeoutTicks": {"type": "integer", "minimum": 0},
    "timeoutWallclockMs": {"type": "integer", "minimum": 0}
  },
  "additionalProperties": false
}`

// LoadConfig reads configFile as JSON and validates it against the engine's
// schema (or, if schemaFile is non-empty, against that schema instead),
// following the same compile-then-validate-then-unmarshal sequence as the
// swarm simulation repo's LoadConfig.
func LoadConfig(configFile string, schemaFile string) (*Config, error) {
	compiler := jsonschema.NewCompiler()
	schemaRef := configSchemaURL
	if schemaFile != "" {
		schemaRef = schemaFile
	} else if err := compiler.AddResource(configSchemaURL, bytes.NewReader([]byte(configSchemaJSON))); err != nil {
		return nil, fmt.Errorf("failed to register default config schema: %w", err)
	}

	sch, err := compiler.Compile(schemaRef)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}
