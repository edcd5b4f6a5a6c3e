// Package docs registers the OpenAPI description served at /swagger.
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
        "/quizzes": {
            "get": {
                "produces": ["application/json"],
                "tags": ["quizzes"],
                "summary": "List quizzes, newest first",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/quizzes/generate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["quizzes"],
                "summary": "Generate a quiz for a topic",
                "parameters": [
                    {
                        "description": "Topic",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/quiz.GenerateQuizDTO"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/quizzes/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["quizzes"],
                "summary": "Get a quiz",
                "parameters": [
                    {"type": "string", "description": "Quiz ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/quizzes/{id}/submit": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["quizzes"],
                "summary": "Submit answers and get the scored breakdown",
                "parameters": [
                    {"type": "string", "description": "Quiz ID", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Answers",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/quiz.SubmitQuizDTO"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/quiz.SubmissionResponse"}},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/quizzes/{id}/results": {
            "get": {
                "produces": ["application/json"],
                "tags": ["quizzes"],
                "summary": "List results for a quiz with per-question breakdown",
                "parameters": [
                    {"type": "string", "description": "Quiz ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/ai-quiz": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ai-quiz"],
                "summary": "Preview generated questions without storing them",
                "parameters": [
                    {
                        "description": "Topic",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/aiquiz.QuestionRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/aiquiz.QuestionResponse"}},
                    "400": {"description": "Bad Request"},
                    "502": {"description": "Bad Gateway"}
                }
            }
        },
        "/topics/{topic}/summary": {
            "get": {
                "produces": ["application/json"],
                "tags": ["topics"],
                "summary": "Wikipedia summary for a topic",
                "parameters": [
                    {"type": "string", "description": "Topic", "name": "topic", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"},
                    "502": {"description": "Bad Gateway"}
                }
            }
        }
    },
    "definitions": {
        "aiquiz.Question": {
            "type": "object",
            "properties": {
                "question": {"type": "string"},
                "options": {"type": "object", "additionalProperties": {"type": "string"}},
                "correct_answer": {"type": "string"}
            }
        },
        "aiquiz.QuestionRequest": {
            "type": "object",
            "required": ["topic"],
            "properties": {"topic": {"type": "string", "maxLength": 255}}
        },
        "aiquiz.QuestionResponse": {
            "type": "object",
            "properties": {
                "questions": {"type": "array", "items": {"$ref": "#/definitions/aiquiz.Question"}}
            }
        },
        "quiz.GenerateQuizDTO": {
            "type": "object",
            "required": ["topic"],
            "properties": {"topic": {"type": "string", "maxLength": 255}}
        },
        "quiz.SubmitQuizDTO": {
            "type": "object",
            "required": ["answers"],
            "properties": {
                "answers": {"type": "array", "items": {"type": "string", "enum": ["A", "B", "C", "D"]}}
            }
        },
        "quiz.QuestionResult": {
            "type": "object",
            "properties": {
                "question": {"type": "string"},
                "user_answer": {"type": "string"},
                "correct_answer": {"type": "string"},
                "is_correct": {"type": "boolean"},
                "options": {"type": "object", "additionalProperties": {"type": "string"}},
                "explanation": {"type": "string"}
            }
        },
        "quiz.SubmissionResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "score": {"type": "integer"},
                "total_questions": {"type": "integer"},
                "percentage": {"type": "number"},
                "question_results": {"type": "array", "items": {"$ref": "#/definitions/quiz.QuestionResult"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Quiz Generator API",
	Description:      "Generates grounded multiple-choice quizzes and scores submissions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
