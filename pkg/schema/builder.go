package schema

import (
	"fmt"

	"github.com/schemalens/schema-audit/pkg/logging"
)

// graphKey is the JSON-LD graph-container field. A block carrying it is a
// wrapper: its members are the real entities.
const graphKey = "@graph"

// workItem is one pending block on the flattening stack.
type workItem struct {
	value      any
	provenance string
}

// Flatten turns the raw top-level block sequences into an ordered entity
// list. Linked-data blocks come first, then microdata, then RDFa, each with
// its own provenance prefix. Blocks that are not mappings are skipped and
// logged, never fatal.
//
// Emission preserves document order: a graph container's members come out
// before any block that follows the container. Traversal is iterative with
// an explicit stack, pushed in reverse, so graph containers can nest and
// pathological input cannot exhaust the call stack.
func Flatten(linkedData, microdata, rdfa []any, log logging.Logger) []Entity {
	if log == nil {
		log = logging.NewNopLogger()
	}

	var entities []Entity
	entities = appendFlattened(entities, "block", linkedData, log)
	entities = appendFlattened(entities, "microdata", microdata, log)
	entities = appendFlattened(entities, "rdfa", rdfa, log)
	return entities
}

func appendFlattened(entities []Entity, prefix string, blocks []any, log logging.Logger) []Entity {
	stack := make([]workItem, 0, len(blocks))
	for i := len(blocks) - 1; i >= 0; i-- {
		stack = append(stack, workItem{
			value:      blocks[i],
			provenance: fmt.Sprintf("%s[%d]", prefix, i),
		})
	}

	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		block, ok := item.value.(map[string]any)
		if !ok {
			log.Warn("skipping non-mapping block",
				logging.Provenance(item.provenance))
			continue
		}

		// A graph container defers to its members; the wrapper itself
		// is not an entity.
		if members, ok := block[graphKey].([]any); ok && len(members) > 0 {
			for j := len(members) - 1; j >= 0; j-- {
				stack = append(stack, workItem{
					value:      members[j],
					provenance: fmt.Sprintf("%s.graph[%d]", item.provenance, j),
				})
			}
			continue
		}

		entities = append(entities, buildEntity(block, item.provenance))
	}
	return entities
}

func buildEntity(block map[string]any, provenance string) Entity {
	e := Entity{
		Types:      TypeList(block["@type"]),
		Attrs:      block,
		Provenance: provenance,
	}
	if id, ok := block["@id"].(string); ok {
		e.ID = id
	}
	return e
}
