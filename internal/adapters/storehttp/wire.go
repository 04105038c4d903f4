package storehttp

import "promptdeck/internal/ports"

type wireDocument struct {
	ID         string         `json:"id"`
	Fields     map[string]any `json:"fields"`
	CreateTime string         `json:"createTime,omitempty"`
}

type wireSnapshot struct {
	Documents []wireDocument `json:"documents"`
}

type insertRequest struct {
	Fields map[string]any `json:"fields"`
}

type updateRequest struct {
	Fields map[string]any `json:"fields"`
}

type insertResponse struct {
	ID string `json:"id"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s wireSnapshot) toSnapshot() ports.Snapshot {
	documents := make([]ports.Document, 0, len(s.Documents))
	for _, doc := range s.Documents {
		documents = append(documents, ports.Document{
			ID:     doc.ID,
			Fields: doc.Fields,
		})
	}

	return ports.Snapshot{Documents: documents}
}
