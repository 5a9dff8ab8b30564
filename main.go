package main

import (
	"fmt"
	"os"

	"github.com/bridgetable/server/config"
	"github.com/bridgetable/server/logger"
	"github.com/bridgetable/server/network"
)

func main() {
	cfg := config.Load()
	if err := logger.Init(cfg.Debug); err != nil {
		fmt.Println("logger init failed:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Log.Sync() }()

	server := network.NewWebsocketServer(cfg.Addr)
	if err := server.Serve(); err != nil {
		logger.Log.Error(err.Error())
		os.Exit(1)
	}
}
