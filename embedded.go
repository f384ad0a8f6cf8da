package namegram

import (
	_ "embed"
	"sync"
)

// Prebuilt depth-3 model trained on a corpus of common English words and
// identifier tokens. Regenerate with the build subcommand in tool.go.
//
//go:embed model.b64
var embeddedModel string

var (
	loadOnce  sync.Once
	loadChain *Chain
	loadErr   error
)

// Load decodes the embedded prebuilt model. The decode runs once; every
// call returns the same immutable chain.
func Load() (*Chain, error) {
	loadOnce.Do(func() {
		loadChain, loadErr = Decode(embeddedModel)
	})
	return loadChain, loadErr
}
