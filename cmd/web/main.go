package main

import "github.com/Abdullah149081/career-connect-backend/internal/app"

func main() {
	app.Run()
}
