// Iroha generates Material Design colour schemes from images and colours
// and renders them as JSON or through templates.
package main

import (
	"github.com/jmylchreest/iroha/internal/cli"
)

func main() {
	cli.Execute()
}
