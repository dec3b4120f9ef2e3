package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/viant/mcp"
)

// ServeCmd launches an MCP server that exposes the hub cells as tools.  The
// server options are taken from the `server` section of the config file.
type ServeCmd struct {
	Address string `short:"a" long:"address" description:"listen address, overrides the config" default:""`
}

func (c *ServeCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	var srvOpts *mcp.ServerOptions
	if cfg := svc.Config(); cfg != nil {
		srvOpts = cfg.Server
	}

	mcpServer, err := mcp.NewServer(svc.NewHandler, srvOpts)
	if err != nil {
		return err
	}

	httpSrv := mcpServer.HTTP(context.Background(), c.Address)
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server: %v", err)
		}
	}()

	log.Printf("synccell hub listening on %s (%d cells)", httpSrv.Addr, len(svc.Store().List()))

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	fmt.Println("shutting down…")
	if err := svc.Shutdown(context.Background()); err != nil {
		log.Printf("shutdown workflow runtime: %v", err)
	}
	return httpSrv.Close()
}
