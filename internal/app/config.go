package app

// Config holds runtime wiring options for building the app.
type Config struct {
	CorpusDir string // corpus directory of .edus/.rels documents
	OutputDir string // where extraction and decoding artifacts land
	ModelPath string // trained model file; optional for extraction
	Live      bool   // extract unlabelled vectors
}
