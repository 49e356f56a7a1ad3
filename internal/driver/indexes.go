package driver

import (
	"fmt"
	"strings"
)

// DefaultVectorDims matches the default embedding model's output size.
const DefaultVectorDims = 768

var (
	uidConstraintLabels  = []string{"Article", "Chunk", "Person", "Organization", "Location", "Source", "Topic"}
	nameConstraintLabels = []string{"Person", "Organization", "Location", "Source", "Topic"}
	fullTextNameLabels   = []string{"Person", "Organization", "Location", "Source", "Topic"}
)

// schemaQueries returns every bootstrap statement: uniqueness constraints,
// scan indexes, the full-text indexes consumed by entity resolution and the
// vector index over chunk embeddings.
func schemaQueries(vectorDims int) []string {
	if vectorDims <= 0 {
		vectorDims = DefaultVectorDims
	}
	var queries []string

	for _, label := range uidConstraintLabels {
		queries = append(queries, uniqueConstraint(label, "uid"))
	}
	for _, label := range nameConstraintLabels {
		queries = append(queries, uniqueConstraint(label, "name"))
	}
	queries = append(queries, uniqueConstraint("Article", "url"))

	queries = append(queries,
		plainIndex("Article", "title"),
		plainIndex("Article", "publishing_date"),
		plainIndex("Chunk", "category"),
	)

	for _, label := range fullTextNameLabels {
		queries = append(queries, fullTextIndex(label, "name"))
	}
	queries = append(queries, fullTextIndex("Article", "title"))

	queries = append(queries, fmt.Sprintf(
		"CREATE VECTOR INDEX chunkEmbedding IF NOT EXISTS "+
			"FOR (c:Chunk) ON c.embedding "+
			"OPTIONS {indexConfig: { `vector.dimensions`: %d, `vector.similarity_function`: 'cosine' }}",
		vectorDims,
	))

	return queries
}

func uniqueConstraint(label, property string) string {
	return fmt.Sprintf(
		"CREATE CONSTRAINT %s_%s_unique IF NOT EXISTS FOR (n:%s) REQUIRE n.%s IS UNIQUE",
		strings.ToLower(label), property, label, property,
	)
}

func plainIndex(label, property string) string {
	return fmt.Sprintf(
		"CREATE INDEX %s_%s_index IF NOT EXISTS FOR (n:%s) ON (n.%s)",
		strings.ToLower(label), property, label, property,
	)
}

// fullTextIndex names indexes like the resolver expects: "personName",
// "articleTitle".
func fullTextIndex(label, property string) string {
	name := strings.ToLower(label) + upperFirst(property)
	return fmt.Sprintf(
		"CREATE FULLTEXT INDEX %s IF NOT EXISTS FOR (n:%s) ON EACH [n.%s]",
		name, label, property,
	)
}


func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
