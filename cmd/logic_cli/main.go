package main

import "github.com/DjordjeVuckovic/logicka/internal/cli"

func main() {
	cli.Execute()
}
