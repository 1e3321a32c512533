//go:build !linux

package linux

import (
	"context"

	"go.uber.org/zap"

	"github.com/neuroplastio/neio-badge/internal/protocol"
)

func Diagnose(log *zap.Logger) ([]Node, error) {
	return nil, ErrUnsupported
}

type EmulatorOption func()

func WithName(name string) EmulatorOption {
	return func() {}
}

func WithDisplay(display protocol.DisplayType) EmulatorOption {
	return func() {}
}

type Emulator struct{}

func NewEmulator(log *zap.Logger, opts ...EmulatorOption) *Emulator {
	return &Emulator{}
}

func (e *Emulator) Stats() *Stats {
	return &Stats{}
}

func (e *Emulator) Run(ctx context.Context, onUpload func(Upload)) error {
	return ErrUnsupported
}
