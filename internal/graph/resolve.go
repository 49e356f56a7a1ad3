package graph

import (
	"context"
	"fmt"

	"github.com/dkm1006/news-graph-rag/internal/core/model"
	"github.com/dkm1006/news-graph-rag/internal/driver"
)

// EntityCandidates runs a tolerant full-text search for the given mention
// text against the label-specific index and returns the ranked hits. An
// empty result is not an error; downstream query generation must tolerate a
// resolution miss.
func (c *Client) EntityCandidates(ctx context.Context, mention string, label model.EntityLabel) ([]model.Candidate, error) {
	index, ok := label.FullTextIndex()
	if !ok {
		return nil, fmt.Errorf("no full-text index for label %q", label)
	}
	query := FullTextQuery(mention, c.opts.Fuzziness)
	if query == "" {
		return nil, nil
	}

	params := map[string]interface{}{
		"index":          index,
		"fulltext_query": query,
		"limit":          c.opts.CandidateLimit,
	}
	result, err := c.driver.ExecuteQuery(ctx, driver.EntityCandidatesQuery, params)
	if err != nil {
		return nil, fmt.Errorf("candidate lookup failed for %q: %w", mention, err)
	}

	candidates := make([]model.Candidate, 0, len(result.Records))
	for _, record := range result.Records {
		var candidate model.Candidate
		if v, ok := record.Get("uid"); ok {
			candidate.UID, _ = v.(string)
		}
		if v, ok := record.Get("name"); ok {
			candidate.Name, _ = v.(string)
		}
		if v, ok := record.Get("label"); ok {
			candidate.Label, _ = v.(string)
		}
		if v, ok := record.Get("score"); ok {
			candidate.Score, _ = v.(float64)
		}
		candidates = append(candidates, candidate)
	}
	return candidates, nil
}

// ResolveEntities aggregates candidates for every recognized mention into
// one list, deduplicated by node uid (keeping the first, i.e. highest-scored
// per mention, occurrence).
func (c *Client) ResolveEntities(ctx context.Context, entities []model.Entity) ([]model.Candidate, error) {
	var all []model.Candidate
	seen := make(map[string]struct{})
	for _, entity := range entities {
		candidates, err := c.EntityCandidates(ctx, entity.Name, entity.Label)
		if err != nil {
			return nil, err
		}
		for _, candidate := range candidates {
			if _, dup := seen[candidate.UID]; dup {
				continue
			}
			seen[candidate.UID] = struct{}{}
			all = append(all, candidate)
		}
	}
	return all, nil
}
