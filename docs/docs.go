// Package docs registers the OpenAPI document served at /swagger.
// Regenerate with `swag init -g cmd/api/main.go`.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/chat": {
            "post": {
                "description": "Runs one assistant turn. The conversation is resumed from state, or from the stored session, and saved back under session_id. include_analysis defaults to true.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "Chat turn",
                "parameters": [
                    {
                        "description": "Chat request",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.chatReq"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.chatResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "502": {"description": "Model call failed or the turn hit the iteration limit", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/status": {
            "get": {
                "description": "Model name and reachability of the model provider, Google and GitHub. Every failed check carries its reason.",
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "Service status",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/http.statusResp"}}}
            }
        },
        "/api/v1/workload": {
            "get": {
                "description": "Aggregates calendar, tasks and GitHub into estimated hours, a tier and recommendations. A failing source contributes zero and is listed in source_errors.",
                "produces": ["application/json"],
                "tags": ["Workload"],
                "summary": "Workload analysis",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/http.workloadResp"}}}
            }
        },
        "/api/v1/summary": {
            "get": {
                "description": "Counts today's calendar events, pending tasks, assigned issues and open pull requests.",
                "produces": ["application/json"],
                "tags": ["Workload"],
                "summary": "Daily summary",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/http.summaryResp"}}}
            }
        },
        "/api/v1/dashboard": {
            "get": {
                "description": "Daily summary, workload analysis and open assigned issues from a single collection.",
                "produces": ["application/json"],
                "tags": ["Workload"],
                "summary": "Dashboard",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/http.dashboardResp"}}}
            }
        },
        "/api/v1/tasks": {
            "get": {
                "description": "Lists pending Google Tasks with parsed priority and estimate, plus total, completed and pending counts.",
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Pending tasks",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.tasksResp"}},
                    "502": {"description": "Tasks API call failed", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "503": {"description": "Google Tasks not configured", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/calendar": {
            "get": {
                "description": "Lists the Google Calendar events of one day. date accepts today, tomorrow, a weekday, \"in N days\" or YYYY-MM-DD and defaults to today.",
                "produces": ["application/json"],
                "tags": ["Calendar"],
                "summary": "Agenda of a day",
                "parameters": [
                    {"type": "string", "default": "today", "description": "Day to list", "name": "date", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.dayResp"}},
                    "400": {"description": "Unrecognized date", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "502": {"description": "Calendar API call failed", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "503": {"description": "Google Calendar not configured", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/github": {
            "get": {
                "description": "Open issues and pull requests of one repository, or without repo the issues assigned to and pull requests authored by the token owner. estimated_hours weights issues by label priority plus a flat share per pull request.",
                "produces": ["application/json"],
                "tags": ["GitHub"],
                "summary": "GitHub work",
                "parameters": [
                    {"type": "string", "description": "Repository as owner/name", "name": "repo", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.githubResp"}},
                    "400": {"description": "repo is not owner/name", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "502": {"description": "GitHub API call failed", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "503": {"description": "GitHub token not configured", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Check if the API is healthy",
                "produces": ["application/json"],
                "tags": ["System"],
                "summary": "Health check",
                "responses": {"200": {"description": "API is healthy", "schema": {"type": "object", "properties": {"error_code": {"type": "integer"}, "message": {"type": "string"}, "data": {"$ref": "#/definitions/httpserver.healthResp"}}}}}
            }
        },
        "/ready": {
            "get": {
                "description": "Check if the API is ready to serve traffic",
                "produces": ["application/json"],
                "tags": ["System"],
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "API is ready", "schema": {"type": "object", "properties": {"error_code": {"type": "integer"}, "message": {"type": "string"}, "data": {"$ref": "#/definitions/httpserver.healthResp"}}}},
                    "503": {"description": "Chat domain not mounted", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/live": {
            "get": {
                "description": "Check if the API is alive",
                "produces": ["application/json"],
                "tags": ["System"],
                "summary": "Liveness check",
                "responses": {"200": {"description": "API is alive", "schema": {"type": "object", "properties": {"error_code": {"type": "integer"}, "message": {"type": "string"}, "data": {"$ref": "#/definitions/httpserver.healthResp"}}}}}
            }
        }
    },
    "definitions": {
        "httpserver.healthResp": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "service": {"type": "string"},
                "version": {"type": "string"},
                "uptime": {"type": "string"}
            }
        },
        "http.chatReq": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "session_id": {"type": "string"},
                "state": {"$ref": "#/definitions/model.Conversation"},
                "include_analysis": {"type": "boolean"}
            }
        },
        "http.chatResp": {
            "type": "object",
            "properties": {
                "response": {"type": "string"},
                "classification": {"type": "string", "enum": ["success", "info", "warning", "error"]},
                "session_id": {"type": "string"},
                "state": {"$ref": "#/definitions/model.Conversation"},
                "daily_summary": {"$ref": "#/definitions/workload.DailySummary"},
                "workload": {"$ref": "#/definitions/workload.Analysis"}
            }
        },
        "http.statusResp": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "model": {"type": "string"},
                "checks": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "name": {"type": "string"},
                            "ok": {"type": "boolean"},
                            "reason": {"type": "string"}
                        }
                    }
                }
            }
        },
        "http.workloadResp": {
            "type": "object",
            "properties": {
                "effort_level": {"type": "string"},
                "snapshot": {"$ref": "#/definitions/workload.Snapshot"},
                "description": {"type": "string"},
                "utilization": {"type": "string"},
                "recommendations": {"type": "array", "items": {"type": "string"}},
                "report": {"type": "string"},
                "source_errors": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "http.summaryResp": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "events_today": {"type": "integer"},
                "tasks_pending": {"type": "integer"},
                "github_issues": {"type": "integer"},
                "github_prs": {"type": "integer"},
                "summary": {"type": "string"},
                "source_errors": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "http.dashboardResp": {
            "type": "object",
            "properties": {
                "summary": {"$ref": "#/definitions/http.summaryResp"},
                "workload": {"$ref": "#/definitions/http.workloadResp"},
                "issues": {"type": "array", "items": {"type": "object"}},
                "productivity_score": {"type": "integer", "description": "100, 85, 70, 55 or 40 by open task, issue and pull request count"}
            }
        },
        "http.tasksResp": {
            "type": "object",
            "properties": {
                "tasks": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "id": {"type": "string"},
                            "title": {"type": "string"},
                            "description": {"type": "string"},
                            "priority": {"type": "string", "enum": ["low", "medium", "high", "critical"]},
                            "estimated_hours": {"type": "number"},
                            "due": {"type": "string"},
                            "overdue": {"type": "boolean"}
                        }
                    }
                },
                "total": {"type": "integer"},
                "completed": {"type": "integer"},
                "pending": {"type": "integer"},
                "overdue": {"type": "integer"}
            }
        },
        "http.dayResp": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "events": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "id": {"type": "string"},
                            "title": {"type": "string"},
                            "start": {"type": "string", "format": "date-time"},
                            "end": {"type": "string", "format": "date-time"},
                            "all_day": {"type": "boolean"},
                            "hours": {"type": "number"},
                            "location": {"type": "string"},
                            "link": {"type": "string"}
                        }
                    }
                },
                "event_count": {"type": "integer"},
                "booked_hours": {"type": "number"}
            }
        },
        "http.githubResp": {
            "type": "object",
            "properties": {
                "repo": {"type": "string"},
                "issues": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "number": {"type": "integer"},
                            "repo": {"type": "string"},
                            "title": {"type": "string"},
                            "url": {"type": "string"},
                            "priority": {"type": "string"},
                            "labels": {"type": "array", "items": {"type": "string"}},
                            "created_at": {"type": "string", "format": "date-time"}
                        }
                    }
                },
                "prs": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "number": {"type": "integer"},
                            "repo": {"type": "string"},
                            "title": {"type": "string"},
                            "url": {"type": "string"},
                            "status": {"type": "string", "enum": ["open", "draft"]},
                            "created_at": {"type": "string", "format": "date-time"}
                        }
                    }
                },
                "estimated_hours": {"type": "number"}
            }
        },
        "model.Conversation": {
            "type": "object",
            "properties": {
                "messages": {"type": "array", "items": {"type": "object"}},
                "action_records": {"type": "array", "items": {"type": "object"}},
                "context": {"type": "object", "additionalProperties": true}
            }
        },
        "workload.Snapshot": {
            "type": "object",
            "properties": {
                "scheduled_hours": {"type": "number"},
                "pending_task_hours": {"type": "number"},
                "issue_tracker_hours": {"type": "number"},
                "event_count": {"type": "integer"},
                "task_count": {"type": "integer"},
                "issue_count": {"type": "integer"},
                "pull_request_count": {"type": "integer"},
                "total_hours": {"type": "number"},
                "utilization_percent": {"type": "number"},
                "tier": {"type": "string", "enum": ["low", "medium", "high", "overloaded"]}
            }
        },
        "workload.DailySummary": {"type": "object", "additionalProperties": true},
        "workload.Analysis": {"type": "object", "additionalProperties": true},
        "response.Resp": {
            "type": "object",
            "properties": {
                "error_code": {"type": "integer"},
                "message": {"type": "string"},
                "data": {}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "DevFlow API",
	Description:      "Developer productivity assistant: chat orchestration over calendar, tasks and GitHub, plus workload analysis.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
