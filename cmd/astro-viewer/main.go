package main

import (
	"os"

	"astro-viewer/internal/app"
)

func main() {
	os.Exit(app.Main())
}
