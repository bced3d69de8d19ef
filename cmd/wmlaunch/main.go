package main

import (
	"os"

	"github.com/wpmon/wmlaunch/cmd/wmlaunch/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
