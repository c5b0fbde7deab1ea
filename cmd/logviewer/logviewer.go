package main

import "github.com/Egor213/LogViewer/internal/app"

func main() {
	app.Run()
}
