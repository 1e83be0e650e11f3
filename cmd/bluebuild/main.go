package main

import (
	"os"

	"github.com/blue-build/bluebuild/internal/bluebuild"
)

func main() {
	os.Exit(bluebuild.Main())
}
