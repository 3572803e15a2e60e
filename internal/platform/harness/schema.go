package harness

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/vovakirdan/duck-tower/internal/games/ducks"
)

// StateSchema reflects the JSON schema of the state snapshot.
func StateSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}

	schema := reflector.Reflect(&ducks.Snapshot{})
	schema.Title = "Duck Tower State"
	schema.Description = "Observable game state sent after every harness command."
	return schema
}

// SchemaJSON returns the indented state schema document.
func SchemaJSON() ([]byte, error) {
	data, err := json.MarshalIndent(StateSchema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("harness: marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}
