package main

import "github.com/tessro/isoshelf/internal/cli"

func main() {
	cli.Execute()
}
