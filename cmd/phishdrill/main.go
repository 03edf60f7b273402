package main

import (
	"github.com/ekaraca/phishdrill/internal/cli"
)

func main() {
	cli.Execute()
}
