package docs

import "github.com/swaggo/swag"

// @title           Task Board API
// @version         1.0
// @description     API for managing projects, kanban tasks, team members, teams, milestones, and calendar events

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// @tag.name Auth
// @tag.description Registration and login

// @tag.name Projects
// @tag.description Project management operations

// @tag.name Tasks
// @tag.description Kanban task operations

// @tag.name Team
// @tag.description Team member operations

// @tag.name Teams
// @tag.description Team grouping operations

// @tag.name Milestones
// @tag.description Project milestone operations

// @tag.name Events
// @tag.description Calendar event operations

// @tag.name Stats
// @tag.description Dashboard statistics

// @tag.name API Keys
// @tag.description API key management and validation

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Task Board API",
	Description:      "API for managing projects, kanban tasks, teams, milestones, and events",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

const docTemplate = `{
    "schemes": ["http"],
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {}
}`

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
