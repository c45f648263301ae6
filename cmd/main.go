package main

import (
	"github.com/consensys/go-combin/pkg/cmd"
)

func main() {
	cmd.Execute()
}
