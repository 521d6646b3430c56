// cmd/gbsplit/main.go
package main

import (
	"gbsplit/internal/app"
	"gbsplit/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
