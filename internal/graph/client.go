// Package graph implements the upsert protocol and fuzzy entity resolution
// against the news knowledge graph.
package graph

import (
	"context"
	"fmt"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/dkm1006/news-graph-rag/internal/core/model"
	"github.com/dkm1006/news-graph-rag/internal/driver"
	"github.com/dkm1006/news-graph-rag/internal/uid"
)

type Options struct {
	// UIDLength is the number of random characters kept in generated uids.
	UIDLength int
	// Fuzziness is the per-word similarity threshold for full-text queries.
	Fuzziness float64
	// CandidateLimit caps full-text hits per resolved mention.
	CandidateLimit int
}

const (
	DefaultFuzziness      = 0.8
	DefaultCandidateLimit = 10
)

// Client wraps a GraphDriver with the domain's upsert operations. Canonical
// nodes are merged by natural key, so re-running any Merge* call with the
// same inputs reuses existing nodes. CreateArticle and MergeChunks create
// unconditionally and rely on the caller invoking them once per article; a
// second CreateArticle for the same url is rejected by the database's
// uniqueness constraint and surfaces as an error.
type Client struct {
	driver driver.GraphDriver
	opts   Options
}

func NewClient(d driver.GraphDriver, opts Options) *Client {
	if opts.UIDLength <= 0 {
		opts.UIDLength = uid.DefaultLength
	}
	if opts.Fuzziness <= 0 {
		opts.Fuzziness = DefaultFuzziness
	}
	if opts.CandidateLimit <= 0 {
		opts.CandidateLimit = DefaultCandidateLimit
	}
	return &Client{driver: d, opts: opts}
}

// NewUID mints a fresh prefixed identifier.
func (c *Client) NewUID(prefix string) string {
	return uid.Generate(prefix, c.opts.UIDLength)
}

// CreateArticle creates a new Article node with a fresh uid and returns the
// uid. Not idempotent: callers must ensure exactly-once invocation per
// physical article.
func (c *Client) CreateArticle(ctx context.Context, article model.Article) (string, error) {
	articleUID := c.NewUID("Article")
	params := map[string]interface{}{
		"uid":      articleUID,
		"title":    article.Title,
		"date":     article.PublishingDate,
		"language": article.Language,
		"url":      article.URL,
	}
	if _, err := c.driver.ExecuteQuery(ctx, driver.CreateArticleQuery, params); err != nil {
		return "", fmt.Errorf("failed to create article: %w", err)
	}
	return articleUID, nil
}

// MergeChunks creates one Chunk node per input chunk and links each to the
// article via CONTAINS. Chunks must carry their uid already; call at most
// once per article.
func (c *Client) MergeChunks(ctx context.Context, chunks []model.Chunk, articleUID string) error {
	if len(chunks) == 0 {
		return nil
	}
	items := make([]map[string]interface{}, len(chunks))
	for i, chunk := range chunks {
		items[i] = map[string]interface{}{
			"uid":      chunk.UID,
			"text":     chunk.Text,
			"category": string(chunk.Category),
			"section":  chunk.Section,
			"position": chunk.Position,
		}
	}
	params := map[string]interface{}{"article_uid": articleUID, "chunks": items}
	if _, err := c.driver.ExecuteQuery(ctx, driver.MergeChunksQuery, params); err != nil {
		return fmt.Errorf("failed to merge chunks: %w", err)
	}
	return nil
}

// MergeEmbeddings attaches embedding vectors to existing chunks, keyed by
// chunk uid. Unknown uids are skipped silently (the MATCH finds nothing);
// the returned count tells the caller how many chunks were actually updated.
func (c *Client) MergeEmbeddings(ctx context.Context, embeddings map[string][]float32) (int64, error) {
	if len(embeddings) == 0 {
		return 0, nil
	}
	items := make([]map[string]interface{}, 0, len(embeddings))
	for chunkUID, vector := range embeddings {
		items = append(items, map[string]interface{}{"uid": chunkUID, "vector": vector})
	}
	result, err := c.driver.ExecuteQuery(ctx, driver.SetEmbeddingsQuery, map[string]interface{}{"items": items})
	if err != nil {
		return 0, fmt.Errorf("failed to set embeddings: %w", err)
	}
	if len(result.Records) > 0 {
		if updated, ok := result.Records[0].Get("updated"); ok {
			if n, ok := updated.(int64); ok {
				return n, nil
			}
		}
	}
	return 0, nil
}

// MergeSource locates or creates the canonical Source node keyed by
// (name, type, url) and links it to the article. Idempotent.
func (c *Client) MergeSource(ctx context.Context, source model.SourceInfo, articleUID string) error {
	params := map[string]interface{}{
		"article_uid": articleUID,
		"name":        source.Publisher,
		"type":        source.Type,
		"url":         source.URL,
		"uid":         c.NewUID("Source"),
	}
	if _, err := c.driver.ExecuteQuery(ctx, driver.MergeSourceQuery, params); err != nil {
		return fmt.Errorf("failed to merge source: %w", err)
	}
	return nil
}

// MergeAuthors merges one Person node per author name and links each to the
// article with the reverse AUTHORED edge. Idempotent per name.
func (c *Client) MergeAuthors(ctx context.Context, authors []string, articleUID string) error {
	return c.mergeNamedNodes(ctx, driver.MergeAuthorsQuery, "Person", authors, articleUID)
}

// MergeTopics merges one Topic node per name and links each to the article.
// Idempotent per name.
func (c *Client) MergeTopics(ctx context.Context, topics []string, articleUID string) error {
	return c.mergeNamedNodes(ctx, driver.MergeTopicsQuery, "Topic", topics, articleUID)
}

func (c *Client) mergeNamedNodes(ctx context.Context, query, prefix string, names []string, articleUID string) error {
	if len(names) == 0 {
		return nil
	}
	items := make([]map[string]interface{}, len(names))
	for i, name := range names {
		items[i] = map[string]interface{}{"name": name, "uid": c.NewUID(prefix)}
	}
	params := map[string]interface{}{"article_uid": articleUID, "items": items}
	if _, err := c.driver.ExecuteQuery(ctx, query, params); err != nil {
		return fmt.Errorf("failed to merge %s nodes: %w", prefix, err)
	}
	return nil
}

// MergeMentions partitions mention records by entity label and, per label,
// merges the canonical entity nodes by name and MERGEs a MENTIONS edge from
// the mentioning chunk (matched by article uid and position). Entity nodes
// are idempotent; because the edge is MERGEd as well, identical mentions
// within one chunk collapse to a single edge.
func (c *Client) MergeMentions(ctx context.Context, mentions []model.Mention, articleUID string) error {
	partitions := make(map[model.EntityLabel][]map[string]interface{})
	for _, m := range mentions {
		nodeLabel, ok := m.Entity.Label.NodeLabel()
		if !ok {
			log.Warn("Skipping mention with unknown label", "label", m.Entity.Label, "name", m.Entity.Name)
			continue
		}
		partitions[m.Entity.Label] = append(partitions[m.Entity.Label], map[string]interface{}{
			"name":  m.Entity.Name,
			"uid":   c.NewUID(nodeLabel),
			"chunk": m.ChunkPosition,
		})
	}

	for _, label := range model.Labels() {
		entities := partitions[label]
		if len(entities) == 0 {
			continue
		}
		var query string
		switch label {
		case model.LabelPerson:
			query = driver.MergePersonMentionsQuery
		case model.LabelOrganization:
			query = driver.MergeOrganizationMentionsQuery
		case model.LabelLocation:
			query = driver.MergeLocationMentionsQuery
		}
		params := map[string]interface{}{"article_uid": articleUID, "entities": entities}
		if _, err := c.driver.ExecuteQuery(ctx, query, params); err != nil {
			return fmt.Errorf("failed to merge %s mentions: %w", label, err)
		}
	}
	return nil
}

// ArticleChunks fetches the stored chunks of the given articles, keyed by
// article uid. Unknown uids are simply absent from the result.
func (c *Client) ArticleChunks(ctx context.Context, articleUIDs []string) (map[string][]model.Chunk, error) {
	params := map[string]interface{}{"article_uids": articleUIDs}
	result, err := c.driver.ExecuteQuery(ctx, driver.ChunksByArticleQuery, params)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chunks: %w", err)
	}

	byArticle := make(map[string][]model.Chunk, len(result.Records))
	for _, record := range result.Records {
		articleUID := ""
		if v, ok := record.Get("article_uid"); ok {
			articleUID, _ = v.(string)
		}
		raw, ok := record.Get("chunks")
		if !ok || articleUID == "" {
			continue
		}
		nodes, _ := raw.([]interface{})
		chunks := make([]model.Chunk, 0, len(nodes))
		for _, n := range nodes {
			node, ok := n.(neo4j.Node)
			if !ok {
				continue
			}
			chunk := model.Chunk{}
			chunk.UID, _ = node.Props["uid"].(string)
			chunk.Text, _ = node.Props["text"].(string)
			if category, ok := node.Props["category"].(string); ok {
				chunk.Category = model.ChunkCategory(category)
			}
			if section, ok := node.Props["section"].(int64); ok {
				chunk.Section = int(section)
			}
			if position, ok := node.Props["position"].(int64); ok {
				chunk.Position = int(position)
			}
			chunks = append(chunks, chunk)
		}
		sort.Slice(chunks, func(i, j int) bool { return chunks[i].Position < chunks[j].Position })
		byArticle[articleUID] = chunks
	}
	return byArticle, nil
}

// Query executes arbitrary Cypher (e.g. an LLM-generated query) and returns
// the rows as name->value maps.
func (c *Client) Query(ctx context.Context, cypher string, params map[string]interface{}) ([]map[string]interface{}, error) {
	result, err := c.driver.ExecuteQuery(ctx, cypher, params)
	if err != nil {
		return nil, err
	}
	rows := make([]map[string]interface{}, 0, len(result.Records))
	for _, record := range result.Records {
		row := make(map[string]interface{}, len(record.Keys))
		for i, key := range record.Keys {
			row[key] = record.Values[i]
		}
		rows = append(rows, row)
	}
	return rows, nil
}
