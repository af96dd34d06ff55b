package main

import (
	"github.com/fzft/go-probing-set/cmd"
	"github.com/fzft/go-probing-set/log"
)

func main() {
	if err := log.InitLogger(); err != nil {
		panic(err)
	}
	cli := cmd.NewCli(version())
	cli.Run()
}
