package main

import (
	"github.com/tap-channeldock/tap-channeldock/pkg/cli"
)

func main() {
	cli.Execute()
}
