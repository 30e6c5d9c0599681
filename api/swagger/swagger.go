package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "FocusFlow API",
        "description": "Personal study dashboard: todos, marks, subjects, timetable, notes and AI insights",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Todos", "description": "Todo list"},
        {"name": "Marks", "description": "Test results and derived summaries"},
        {"name": "Subjects", "description": "Subject roster"},
        {"name": "Timetable", "description": "Weekly timetable"},
        {"name": "Notes", "description": "Free-form notes"},
        {"name": "Insights", "description": "AI study suggestions, mark analysis and Q&A"},
        {"name": "Dashboard", "description": "Landing-page snapshot"},
        {"name": "Unlock", "description": "Session edit gate"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/api/v1/todos": {
            "get": {
                "tags": ["Todos"],
                "summary": "List todos",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["Todos"],
                "summary": "Add a todo",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "202": {"description": "Accepted but not yet persisted"},
                    "400": {"description": "Validation error"}
                }
            }
        },
        "/api/v1/todos/{id}": {
            "delete": {
                "tags": ["Todos"],
                "summary": "Delete a todo (idempotent)",
                "responses": {"204": {"description": "Deleted"}}
            }
        },
        "/api/v1/todos/{id}/toggle": {
            "patch": {
                "tags": ["Todos"],
                "summary": "Toggle completion",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Unknown todo"}
                }
            }
        },
        "/api/v1/marks": {
            "get": {
                "tags": ["Marks"],
                "summary": "List marks, most recent first",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Marks"],
                "summary": "Record a mark",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Validation error"}
                }
            }
        },
        "/api/v1/marks/{id}": {
            "delete": {
                "tags": ["Marks"],
                "summary": "Delete a mark (idempotent)",
                "responses": {"204": {"description": "Deleted"}}
            }
        },
        "/api/v1/marks/summaries": {
            "get": {
                "tags": ["Marks"],
                "summary": "Per-subject and overall summaries",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/marks/report": {
            "get": {
                "tags": ["Marks"],
                "summary": "Download the marks summary as CSV or PDF",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {"200": {"description": "Report file"}}
            }
        },
        "/api/v1/subjects": {
            "get": {
                "tags": ["Subjects"],
                "summary": "List subjects",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Subjects"],
                "summary": "Add a subject",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Validation error"}
                }
            }
        },
        "/api/v1/subjects/{id}": {
            "get": {
                "tags": ["Subjects"],
                "summary": "Get subject by id",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Unknown subject"}
                }
            },
            "delete": {
                "tags": ["Subjects"],
                "summary": "Delete a subject (idempotent)",
                "responses": {"204": {"description": "Deleted"}}
            }
        },
        "/api/v1/timetable": {
            "get": {
                "tags": ["Timetable"],
                "summary": "List entries in week order",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Timetable"],
                "summary": "Schedule an entry",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Validation error"}
                }
            }
        },
        "/api/v1/timetable/{id}": {
            "delete": {
                "tags": ["Timetable"],
                "summary": "Delete an entry (idempotent)",
                "responses": {"204": {"description": "Deleted"}}
            }
        },
        "/api/v1/timetable/grid": {
            "get": {
                "tags": ["Timetable"],
                "summary": "Weekly grid over fixed hourly slots",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/notes": {
            "get": {
                "tags": ["Notes"],
                "summary": "List notes, most recently updated first",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Notes"],
                "summary": "Add a note",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Validation error"}
                }
            }
        },
        "/api/v1/notes/{id}": {
            "get": {
                "tags": ["Notes"],
                "summary": "Get note by id",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Unknown note"}
                }
            },
            "put": {
                "tags": ["Notes"],
                "summary": "Edit a note in place",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Unknown note"}
                }
            },
            "delete": {
                "tags": ["Notes"],
                "summary": "Delete a note (idempotent)",
                "responses": {"204": {"description": "Deleted"}}
            }
        },
        "/api/v1/insights/study-suggestions": {
            "post": {
                "tags": ["Insights"],
                "summary": "Generate a study plan",
                "responses": {
                    "200": {"description": "OK"},
                    "409": {"description": "A request is already running"},
                    "502": {"description": "Assistant unavailable"}
                }
            }
        },
        "/api/v1/insights/mark-analysis": {
            "post": {
                "tags": ["Insights"],
                "summary": "Generate an advisor report",
                "responses": {
                    "200": {"description": "OK"},
                    "409": {"description": "A request is already running"},
                    "502": {"description": "Assistant unavailable"}
                }
            }
        },
        "/api/v1/insights/conceptor": {
            "post": {
                "tags": ["Insights"],
                "summary": "Answer a free-form question",
                "responses": {
                    "200": {"description": "OK"},
                    "409": {"description": "A request is already running"},
                    "502": {"description": "Assistant unavailable"}
                }
            }
        },
        "/api/v1/dashboard": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Dashboard snapshot",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/unlock": {
            "post": {
                "tags": ["Unlock"],
                "summary": "Exchange the passkey for an edit-session token",
                "responses": {
                    "200": {"description": "Token issued"},
                    "401": {"description": "Incorrect passkey"}
                }
            }
        }
    },
    "definitions": {
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
