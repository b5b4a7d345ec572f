package main

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/scott-cotton/cli"
)

func main() {
	// .env values feed ${EXPR} expansion in loaded files
	_ = godotenv.Load()
	cli.MainContext(context.Background(), MainCommand())
}
