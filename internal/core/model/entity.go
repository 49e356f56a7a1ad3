package model

// EntityLabel is the closed set of canonical entity types. Labels arrive
// lower-cased from the NER service and map onto graph node labels via
// NodeLabel, so query text never interpolates caller-provided strings into
// label position.
type EntityLabel string

const (
	LabelPerson       EntityLabel = "person"
	LabelOrganization EntityLabel = "organization"
	LabelLocation     EntityLabel = "location"
)

// Labels lists every recognized entity label. The same set must be passed to
// the NER service at ingestion and at question time so that resolution stays
// symmetric.
func Labels() []EntityLabel {
	return []EntityLabel{LabelPerson, LabelOrganization, LabelLocation}
}

// NodeLabel returns the graph node label for l and false for any label
// outside the closed set.
func (l EntityLabel) NodeLabel() (string, bool) {
	switch l {
	case LabelPerson:
		return "Person", true
	case LabelOrganization:
		return "Organization", true
	case LabelLocation:
		return "Location", true
	}
	return "", false
}

// FullTextIndex returns the name of the full-text index covering the name
// property of this label's node type.
func (l EntityLabel) FullTextIndex() (string, bool) {
	if _, ok := l.NodeLabel(); !ok {
		return "", false
	}
	return string(l) + "Name", true
}

// Entity is a canonical entity reference by surface name and label.
type Entity struct {
	Name  string      `json:"name"`
	Label EntityLabel `json:"label"`
}

// Mention records that a chunk at the given position mentions an entity.
type Mention struct {
	Entity        Entity `json:"entity"`
	ChunkPosition int    `json:"chunk_position"`
}

// Candidate is one fuzzy-resolution hit from a full-text index.
type Candidate struct {
	UID   string  `json:"uid"`
	Name  string  `json:"name"`
	Label string  `json:"label"`
	Score float64 `json:"score"`
}
