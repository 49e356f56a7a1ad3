package model

import "time"

// Article is the crawler's output: metadata plus a structured body.
type Article struct {
	Title          string      `json:"title"`
	Language       string      `json:"language"`
	PublishingDate time.Time   `json:"publishing_date"`
	URL            string      `json:"url"`
	Body           ArticleBody `json:"body"`
	Topics         []string    `json:"topics,omitempty"`
	Authors        []string    `json:"authors,omitempty"`
	Source         SourceInfo  `json:"source"`
}

// ArticleBody holds the summary followed by the article's sections in
// source order.
type ArticleBody struct {
	Summary  string    `json:"summary"`
	Sections []Section `json:"sections,omitempty"`
}

type Section struct {
	Headline   string   `json:"headline"`
	Paragraphs []string `json:"paragraphs,omitempty"`
}

// SourceInfo identifies the publisher. The triple (Publisher, Type, URL) is
// the natural key of the Source node.
type SourceInfo struct {
	Publisher string `json:"publisher"`
	Type      string `json:"type"`
	URL       string `json:"url"`
}

type ChunkCategory string

const (
	CategorySummary   ChunkCategory = "summary"
	CategoryHeadline  ChunkCategory = "headline"
	CategoryParagraph ChunkCategory = "paragraph"
)

// Chunk is a bounded piece of article text with a stable position in
// document order. Section 0 is always the summary; sections >= 1 map 1:1 to
// the article's sections. Embedding is nil until computed and attached.
type Chunk struct {
	UID       string        `json:"uid"`
	Text      string        `json:"text"`
	Category  ChunkCategory `json:"category"`
	Section   int           `json:"section"`
	Position  int           `json:"position"`
	Embedding []float32     `json:"embedding,omitempty"`
}
