package main

import "rabt_backend/internal/app"

func main() {
	app.Run()
}
