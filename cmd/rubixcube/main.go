// rubixcube - CLI for inspecting 3x3 cube states.
package main

import (
	"github.com/LaurenceJKing/RubixCube/internal/cli"
)

func main() {
	cli.Execute()
}
