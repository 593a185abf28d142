package source

import (
	"context"
	"fmt"
	"os"

	"github.com/ukaji3/rollsheet-go/pkg/rollsheet/models"
	"gopkg.in/yaml.v3"
)

// recordKeys are the mapping keys that may hold the record list.
var recordKeys = []string{"records", "asistentes", "attendees"}

// YAML reads records from a YAML or JSON document: either a top-level list of
// records or a mapping holding the list under "records". Record keys accept
// the same labels as CSV headers.
type YAML struct {
	Path string
	// Data is used instead of Path when set.
	Data []byte
}

// Records implements Source.
func (y *YAML) Records(ctx context.Context) ([]models.AttendanceRecord, error) {
	data := y.Data
	if data == nil {
		var err error
		data, err = os.ReadFile(y.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to read records: %w", err)
		}
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(trimBOM(data), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse records: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	list := recordList(&doc)
	if list == nil {
		return nil, fmt.Errorf("%w: no record list in %s", ErrNoRecords, y.Path)
	}

	var raw []map[string]string
	if err := list.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode records: %w", err)
	}
	records := make([]models.AttendanceRecord, 0, len(raw))
	for _, m := range raw {
		if len(m) == 0 {
			continue
		}
		records = append(records, fromMap(m))
	}
	return records, nil
}

func recordList(n *yaml.Node) *yaml.Node {
	if n.Kind == yaml.DocumentNode {
		if len(n.Content) == 0 {
			return nil
		}
		n = n.Content[0]
	}
	switch n.Kind {
	case yaml.SequenceNode:
		return n
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			for _, key := range recordKeys {
				if normalizeKey(n.Content[i].Value) == key && n.Content[i+1].Kind == yaml.SequenceNode {
					return n.Content[i+1]
				}
			}
		}
	}
	return nil
}
