package driver

// Cypher for the upsert protocol. Canonical nodes (Source, Person,
// Organization, Location, Topic) are MERGEd by natural key with a uid
// assigned only on first creation; Article and Chunk nodes are CREATEd
// unconditionally, so calling those statements twice duplicates nodes.
// Entity labels are fixed per statement rather than substituted in, so no
// caller input ever reaches label position.
const (
	CreateArticleQuery = `
		CREATE (a:Article { title: $title, publishing_date: $date, language: $language, url: $url, uid: $uid })
		RETURN a.uid AS uid, a.title AS article_headline
	`

	MergeChunksQuery = `
		MATCH (a:Article { uid: $article_uid })
		WITH a
		UNWIND $chunks AS chunk
		CREATE (c:Chunk { text: chunk.text, category: chunk.category, section: chunk.section, position: chunk.position, uid: chunk.uid })
		MERGE (a)-[:CONTAINS]->(c)
		RETURN a.title AS article_headline, count(c) AS num_chunks
	`

	SetEmbeddingsQuery = `
		UNWIND $items AS item
		MATCH (c:Chunk { uid: item.uid })
		CALL db.create.setNodeVectorProperty(c, 'embedding', item.vector)
		RETURN count(c) AS updated
	`

	MergeSourceQuery = `
		MATCH (a:Article { uid: $article_uid })
		WITH a
		MERGE (s:Source { name: $name, type: $type, url: $url })
		ON CREATE SET s.uid = $uid
		MERGE (s)-[:PUBLISHED]->(a)
		RETURN a.title AS article_headline, s.name AS source_name
	`

	// Authorship is stored in the reverse direction by convention:
	// (Person)-[:AUTHORED]->(Article).
	MergeAuthorsQuery = `
		MATCH (a:Article { uid: $article_uid })
		WITH a
		UNWIND $items AS item
		MERGE (p:Person { name: item.name })
		ON CREATE SET p.uid = item.uid
		MERGE (a)<-[:AUTHORED]-(p)
		RETURN a.title AS article_headline, count(p) AS num_rels
	`

	MergeTopicsQuery = `
		MATCH (a:Article { uid: $article_uid })
		WITH a
		UNWIND $items AS item
		MERGE (t:Topic { name: item.name })
		ON CREATE SET t.uid = item.uid
		MERGE (a)-[:HAS_TOPIC]->(t)
		RETURN a.title AS article_headline, count(t) AS num_rels
	`

	// One mention statement per entity label. The MENTIONS edge is MERGEd,
	// so a chunk mentioning the same entity twice yields a single edge.
	MergePersonMentionsQuery = `
		MATCH (a:Article { uid: $article_uid })
		WITH a
		UNWIND $entities AS entity
		MERGE (e:Person { name: entity.name })
		ON CREATE SET e.uid = entity.uid
		WITH a, e, entity
		MATCH (a)-[:CONTAINS]->(c:Chunk { position: entity.chunk })
		MERGE (c)-[:MENTIONS]->(e)
		RETURN c.uid AS chunk_uid, e.uid AS entity_uid
	`

	MergeOrganizationMentionsQuery = `
		MATCH (a:Article { uid: $article_uid })
		WITH a
		UNWIND $entities AS entity
		MERGE (e:Organization { name: entity.name })
		ON CREATE SET e.uid = entity.uid
		WITH a, e, entity
		MATCH (a)-[:CONTAINS]->(c:Chunk { position: entity.chunk })
		MERGE (c)-[:MENTIONS]->(e)
		RETURN c.uid AS chunk_uid, e.uid AS entity_uid
	`

	MergeLocationMentionsQuery = `
		MATCH (a:Article { uid: $article_uid })
		WITH a
		UNWIND $entities AS entity
		MERGE (e:Location { name: entity.name })
		ON CREATE SET e.uid = entity.uid
		WITH a, e, entity
		MATCH (a)-[:CONTAINS]->(c:Chunk { position: entity.chunk })
		MERGE (c)-[:MENTIONS]->(e)
		RETURN c.uid AS chunk_uid, e.uid AS entity_uid
	`

	EntityCandidatesQuery = `
		CALL db.index.fulltext.queryNodes($index, $fulltext_query, {limit: $limit})
		YIELD node, score
		RETURN node.uid AS uid, node.name AS name, labels(node)[0] AS label, score
	`

	ChunksByArticleQuery = `
		MATCH (a:Article)-[:CONTAINS]->(c:Chunk)
		WHERE a.uid IN $article_uids
		RETURN a.uid AS article_uid, collect(c) AS chunks
	`
)
