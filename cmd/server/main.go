package main

import (
	"newsgraph/internal/server"
	"newsgraph/internal/util"
	"newsgraph/pkg/logger"
	"newsgraph/pkg/logger/console"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	logger.Init(console.New(console.Params{
		Debug: debug,
	}))

	server.Init()
}
