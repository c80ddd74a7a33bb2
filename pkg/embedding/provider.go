package embedding

// EmbeddingProvider defines the interface for generating text embeddings.
// GenerateBatch is used on the ingestion path; the query path only ever
// embeds a single text.
type EmbeddingProvider interface {
	Generate(text string) ([]float32, error)
	GenerateBatch(texts []string) ([][]float32, error)
}
