package main

import (
	"github.com/NVIDIA/orderquery/pkg/cli"
)

func main() {
	cli.Execute()
}
