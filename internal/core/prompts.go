package core

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dkm1006/news-graph-rag/internal/core/model"
)

// graphSchema describes the node labels, relationships and properties the
// Cypher-generation model may use.
const graphSchema = `Node labels and properties:
  Article { title, publishing_date, language, url, uid }
  Chunk { text, category, section, position, uid }
  Source { name, type, url, uid }
  Person { name, uid }
  Organization { name, uid }
  Location { name, uid }
  Topic { name, uid }
Relationships:
  (Source)-[:PUBLISHED]->(Article)
  (Article)-[:CONTAINS]->(Chunk)
  (Chunk)-[:MENTIONS]->(Person|Organization|Location)
  (Person)-[:AUTHORED]->(Article)
  (Article)-[:HAS_TOPIC]->(Topic)`

const cypherGenerationTemplate = `Given an input question, convert it to a Cypher query. No pre-amble.
Based on the graph schema below, write a Cypher query that answers the user's question.
Use only the node labels, relationships and properties provided in the schema:
%s
Entities in the question map to the following database values:
%s

Here are some examples:
Example 1: For the question "List 10 titles of articles mentioning Ursula von der Leyen" and the entity list "(:Person { name: 'Ursula von der Leyen' }), (:Person { name: 'Ursula v. d. Leyn' })" the generated Cypher query should be
"MATCH (a:Article)-[:CONTAINS]->(c:Chunk)-[:MENTIONS]->(o:Person) WHERE o.name IN ['Ursula von der Leyen', 'Ursula v. d. Leyn'] RETURN DISTINCT a.title LIMIT 10"

Example 2: For the question "How many sources mention the EU commission?" and the entity list "(:Organization { name: 'EU-Kommission' })" the generated Cypher query should be
"MATCH (s:Source)-[:PUBLISHED]->(a:Article)-[:CONTAINS]->(c:Chunk)-[:MENTIONS]->(o:Organization) WHERE o.name IN ['EU-Kommission'] WITH DISTINCT s RETURN count(s)"

Example 3: For the question "News about France and Macron?" and the entity list "(:Location { name: 'France' }), (:Person { name: 'Emmanuel Macron' })" the generated Cypher query should be
"MATCH (c:Chunk)-[:MENTIONS]->(o:Location) WHERE o.name = 'France' UNION MATCH (c:Chunk)-[:MENTIONS]->(o:Person) WHERE o.name = 'Emmanuel Macron' RETURN c.text LIMIT 10"

Question: %s
Cypher query:`

const answerTemplate = `Answer the question below in appropriate detail, given the following context. The context was retrieved from the database by the following query:

Query: %s

Context:
%s

Question: %s

Answer: `

// CandidatesToContext renders resolved entities the way the generation
// prompt expects: "(:Person { name: 'Ursula von der Leyen' })".
func CandidatesToContext(candidates []model.Candidate) string {
	parts := make([]string, len(candidates))
	for i, c := range candidates {
		parts[i] = fmt.Sprintf("(:%s { name: '%s' })", c.Label, c.Name)
	}
	return strings.Join(parts, ", ")
}

// RecordsToContext serializes query result rows as "key: value" lines, rows
// separated by a ===== divider. Keys are sorted for deterministic output.
func RecordsToContext(rows []map[string]interface{}) string {
	rendered := make([]string, len(rows))
	for i, row := range rows {
		keys := make([]string, 0, len(row))
		for key := range row {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		lines := make([]string, len(keys))
		for j, key := range keys {
			lines[j] = fmt.Sprintf("%s: %v", key, row[key])
		}
		rendered[i] = strings.Join(lines, "\n")
	}
	return strings.Join(rendered, "\n=====\n")
}

// stripCodeFence removes a surrounding markdown code fence, which chat
// models frequently wrap generated Cypher in.
func stripCodeFence(response string) string {
	trimmed := strings.TrimSpace(response)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```")
	if newline := strings.IndexByte(trimmed, '\n'); newline >= 0 {
		first := strings.TrimSpace(trimmed[:newline])
		// A language tag like "cypher" sits on the fence line.
		if first == "" || !strings.ContainsAny(first, " (") {
			trimmed = trimmed[newline+1:]
		}
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
