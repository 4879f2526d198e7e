package vision

import (
	"fmt"

	"sperm-analyzer/internal/domain/port"
)

const (
	BackendNative = "native"
	BackendGoCV   = "gocv"
)

// NewAnalyzer выбирает реализацию конвейера по имени.
func NewAnalyzer(backend string, opts Options) (port.ImageAnalyzer, error) {
	switch backend {
	case "", BackendNative:
		p, err := NewPipeline(opts)
		if err != nil {
			return nil, err
		}
		return p, nil
	case BackendGoCV:
		p, err := NewGoCVPipeline(opts)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
	return nil, fmt.Errorf("unknown vision backend %q (use %s or %s)", backend, BackendNative, BackendGoCV)
}

var _ port.ImageAnalyzer = (*GoCVPipeline)(nil)
