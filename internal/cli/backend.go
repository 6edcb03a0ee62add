package cli

import (
	"github.com/1broseidon/termgrid/internal/config"
	"github.com/1broseidon/termgrid/internal/platform"
)

// backendOpener returns the window system a command runs against and a
// function releasing it.
type backendOpener func(simulate bool, cfg *config.Config) (platform.WindowSystem, func(), error)

func openBackend(simulate bool, cfg *config.Config) (platform.WindowSystem, func(), error) {
	if simulate {
		return platform.NewSimulated(cfg.FallbackScreenSize(), platform.SampleWindows()...), func() {}, nil
	}
	backend, err := platform.NewLinuxBackendFromDisplay()
	if err != nil {
		return nil, nil, err
	}
	return backend, backend.Disconnect, nil
}
