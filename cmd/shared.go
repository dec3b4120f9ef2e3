package cmd

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"github.com/viant/synccell/hub"
	"github.com/viant/synccell/hub/config"
)

var (
	cfgPath string

	svcOnce sync.Once
	svcInst *hub.Service
	svcErr  error
)

// setConfigPath remembers the CLI-level -f/--config parameter so that the
// hub singleton can be created lazily by whichever sub-command is executed
// first.
func setConfigPath(p string) { cfgPath = p }

// serviceSingleton initialises a hub.Service only once and reuses the
// instance across sub-commands within the same CLI invocation.
func serviceSingleton() (*hub.Service, error) {
	svcOnce.Do(func() {
		ctx := context.Background()
		var cfg *config.Config
		if cfgPath != "" {
			var err error
			cfg, err = config.Load(ctx, cfgPath)
			if err != nil {
				svcErr = err
				return
			}
			if debug := os.Getenv("SYNCCELL_DEBUG_CONFIG"); debug == "1" {
				_ = json.NewEncoder(os.Stderr).Encode(cfg)
			}
		}

		svcInst, svcErr = hub.New(ctx, hub.WithConfig(cfg))
		if svcErr == nil {
			svcErr = svcInst.Start(ctx)
		}
	})
	return svcInst, svcErr
}
