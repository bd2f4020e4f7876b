package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

const version = "0.1.0"

func main() {
	cli.MainContext(context.Background(), MainCommand())
}
