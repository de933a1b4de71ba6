// Command scenario runs scenario plugins found in the working directory.
// Projects that compile their scenarios in call scenario.Main from their
// own main package instead.
package main

import (
	"scenario/pkg/scenario"
)

var version = "dev"

func main() {
	scenario.Version = version
	scenario.Main()
}
