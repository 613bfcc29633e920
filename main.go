package main

import "healthscreen/internal/app"

func main() {
	app.Main()
}
