package constant

// Logger module tags.
const (
	ModuleHub = "Hub"
)

// Document chunking parameters for knowledge ingestion.
const (
	DocumentChunkSize    = 1000
	DocumentChunkOverlap = 200
)
