// Package swagger registers the OpenAPI description served under /swagger.
package swagger

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
        "/integrity/structure": {
            "get": {
                "description": "Checks if the document and output folders exist in the storage bucket. Optionally creates missing folders.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "integrity"
                ],
                "summary": "Check Structure",
                "parameters": [
                    {
                        "type": "boolean",
                        "description": "Fix missing folders",
                        "name": "fix",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Structure Report",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "503": {
                        "description": "Storage not configured",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/lines/bucket": {
            "get": {
                "description": "Checks every document under a prefix of the storage bucket. Optionally uploads fixed copies.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "lines"
                ],
                "summary": "Check Bucket Documents",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Object prefix",
                        "name": "prefix",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "description": "Upload fixed copies",
                        "name": "fix",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "description": "Fill missing lines (default true)",
                        "name": "missing",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "description": "Renumber duplicate lines (default true)",
                        "name": "duplicates",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Batch Report",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "503": {
                        "description": "Storage not configured",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/lines/check": {
            "post": {
                "description": "Checks uploaded documents for missing and duplicate line markers.",
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "lines"
                ],
                "summary": "Check Documents",
                "parameters": [
                    {
                        "type": "file",
                        "description": "Documents to check",
                        "name": "files",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Batch Report",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "400": {
                        "description": "No document uploaded",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/lines/fix": {
            "post": {
                "description": "Rewrites the document with placeholders for missing lines and renumbered duplicates.",
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
                ],
                "tags": [
                    "lines"
                ],
                "summary": "Fix Document",
                "parameters": [
                    {
                        "type": "file",
                        "description": "Document",
                        "name": "file",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "boolean",
                        "description": "Fill missing lines (default true)",
                        "name": "missing",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "description": "Renumber duplicate lines (default true)",
                        "name": "duplicates",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Fixed document",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "422": {
                        "description": "Unreadable document",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/lines/plan": {
            "post": {
                "description": "Returns the analysis and the renumbering a fix would apply.",
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "lines"
                ],
                "summary": "Plan Fix",
                "parameters": [
                    {
                        "type": "file",
                        "description": "Document",
                        "name": "file",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "boolean",
                        "description": "Fill missing lines (default true)",
                        "name": "missing",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "description": "Renumber duplicate lines (default true)",
                        "name": "duplicates",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Plan",
                        "schema": {
                            "$ref": "#/definitions/reconcile.ReconcilePlan"
                        }
                    },
                    "422": {
                        "description": "Unreadable document",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "reconcile.Action": {
            "type": "object",
            "properties": {
                "from": {
                    "type": "integer"
                },
                "payload": {
                    "type": "string"
                },
                "reason": {
                    "type": "string"
                },
                "to": {
                    "type": "integer"
                },
                "type": {
                    "$ref": "#/definitions/reconcile.ActionType"
                }
            }
        },
        "reconcile.ActionType": {
            "type": "string",
            "enum": [
                "insert_placeholder",
                "renumber"
            ],
            "x-enum-varnames": [
                "ActionInsertPlaceholder",
                "ActionRenumber"
            ]
        },
        "reconcile.LineEntry": {
            "type": "object",
            "properties": {
                "number": {
                    "type": "integer"
                },
                "payload": {
                    "type": "string"
                }
            }
        },
        "reconcile.PlanSummary": {
            "type": "object",
            "properties": {
                "duplicates": {
                    "type": "integer"
                },
                "missing": {
                    "type": "integer"
                },
                "placeholders_inserted": {
                    "type": "integer"
                },
                "renumbered": {
                    "type": "integer"
                },
                "total_lines": {
                    "type": "integer"
                }
            }
        },
        "reconcile.ReconcilePlan": {
            "type": "object",
            "properties": {
                "actions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/reconcile.Action"
                    }
                },
                "report": {
                    "$ref": "#/definitions/reconcile.SequenceReport"
                },
                "sequence": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/reconcile.LineEntry"
                    }
                },
                "summary": {
                    "$ref": "#/definitions/reconcile.PlanSummary"
                }
            }
        },
        "reconcile.SequenceReport": {
            "type": "object",
            "properties": {
                "duplicates": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                },
                "missing": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Line Checker API",
	Description:      "API for checking and fixing line markers in DOCX scripts.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
