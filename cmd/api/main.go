package main

import (
	_ "nagrik_seva/docs"
	"nagrik_seva/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Nagrik Seva Request Lifecycle API
// @version         1.0
// @description     Citizen service request engine (lifecycle, payments, assignment) backed by DynamoDB.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey UserID
// @in header
// @name X-User-Id

// @securityDefinitions.apikey ActorID
// @in header
// @name X-Actor-Id

func main() {
	routes.Run()
}
