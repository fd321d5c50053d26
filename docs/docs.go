// Package docs registers the OpenAPI description served under /swagger.
// Keep it in sync with the handler annotations when routes change.
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
		"/user": {
			"post": {
				"tags": [
					"users"
				],
				"summary": "Create or fetch the current user",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "Existing user",
						"schema": {
							"$ref": "#/definitions/models.User"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"201": {
						"description": "User created",
						"schema": {
							"$ref": "#/definitions/models.User"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"schema": {
							"$ref": "#/definitions/models.SyncUserRequest"
						}
					}
				]
			}
		},
		"/courses/all": {
			"get": {
				"tags": [
					"courses"
				],
				"summary": "Get all courses",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.Course"
							}
						}
					},
					"500": {
						"description": "Error",
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
		"/courses/{cid}": {
			"get": {
				"tags": [
					"courses"
				],
				"summary": "Get a course",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Course"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"parameters": [
					{
						"in": "path",
						"name": "cid",
						"type": "string",
						"required": true
					}
				]
			}
		},
		"/courses": {
			"get": {
				"tags": [
					"courses"
				],
				"summary": "Get my courses",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.Course"
							}
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/courses/{cid}/enroll": {
			"post": {
				"tags": [
					"enrollments"
				],
				"summary": "Enroll in a course",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Enrollment created",
						"schema": {
							"$ref": "#/definitions/models.Enrollment"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"in": "path",
						"name": "cid",
						"type": "string",
						"required": true
					}
				]
			}
		},
		"/enrollments": {
			"get": {
				"tags": [
					"enrollments"
				],
				"summary": "Get my enrollments",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.EnrollmentWithCourse"
							}
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"post": {
				"tags": [
					"enrollments"
				],
				"summary": "Enroll in a course by ID",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Enrollment created",
						"schema": {
							"$ref": "#/definitions/models.Enrollment"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.CreateEnrollmentRequest"
						}
					}
				]
			}
		},
		"/progress": {
			"get": {
				"tags": [
					"progress"
				],
				"summary": "Get my progress",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.Progress"
							}
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"in": "query",
						"name": "courseId",
						"type": "integer"
					}
				]
			},
			"post": {
				"tags": [
					"progress"
				],
				"summary": "Record chapter progress",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Progress"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.RecordProgressRequest"
						}
					}
				]
			}
		},
		"/admin/courses": {
			"get": {
				"tags": [
					"admin"
				],
				"summary": "List courses for administration",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.Course"
							}
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"post": {
				"tags": [
					"admin"
				],
				"summary": "Create a course",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Course created",
						"schema": {
							"$ref": "#/definitions/models.Course"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.CourseRequest"
						}
					}
				]
			}
		},
		"/admin/courses/{id}": {
			"get": {
				"tags": [
					"admin"
				],
				"summary": "Get a course for editing",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Course"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"in": "path",
						"name": "id",
						"type": "integer",
						"required": true
					}
				]
			},
			"put": {
				"tags": [
					"admin"
				],
				"summary": "Update a course",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Course"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"in": "path",
						"name": "id",
						"type": "integer",
						"required": true
					},
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.CourseRequest"
						}
					}
				]
			},
			"delete": {
				"tags": [
					"admin"
				],
				"summary": "Delete a course",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.DeleteCourseResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"in": "path",
						"name": "id",
						"type": "integer",
						"required": true
					}
				]
			}
		},
		"/admin/stats": {
			"get": {
				"tags": [
					"admin"
				],
				"summary": "Get dashboard stats",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.DashboardStats"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/admin/users": {
			"get": {
				"tags": [
					"admin"
				],
				"summary": "List users with enrollment counts",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.UserWithEnrollments"
							}
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/upload": {
			"post": {
				"tags": [
					"upload"
				],
				"summary": "Upload a file",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "File stored",
						"schema": {
							"$ref": "#/definitions/models.UploadResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"consumes": [
					"multipart/form-data"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"in": "formData",
						"name": "file",
						"type": "file",
						"required": true
					}
				]
			}
		},
		"/uploads/{name}": {
			"get": {
				"description": "Serve a stored file with range request support",
				"produces": [
					"application/octet-stream"
				],
				"tags": [
					"upload"
				],
				"summary": "Download an uploaded file",
				"parameters": [
					{
						"type": "string",
						"description": "Stored file name",
						"name": "name",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "File content",
						"schema": {
							"type": "file"
						}
					},
					"404": {
						"description": "File not found",
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
		"models.SyncUserRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				}
			}
		},
		"models.User": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"subscriptionId": {
					"type": "string"
				},
				"subscriptionPlan": {
					"type": "string"
				},
				"createdAt": {
					"type": "string"
				},
				"updatedAt": {
					"type": "string"
				}
			}
		},
		"models.Chapter": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"duration": {
					"type": "string"
				},
				"videoUrl": {
					"type": "string"
				},
				"youtubeUrl": {
					"type": "string"
				},
				"videoSource": {
					"type": "string",
					"enum": [
						"youtube",
						"upload"
					]
				},
				"content": {
					"type": "string"
				},
				"section": {
					"type": "string"
				},
				"topics": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"models.Instructor": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"bio": {
					"type": "string"
				}
			}
		},
		"models.CourseContent": {
			"type": "object",
			"properties": {
				"chapters": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.Chapter"
					}
				},
				"price": {
					"type": "number"
				},
				"isFree": {
					"type": "boolean"
				},
				"videoSource": {
					"type": "string"
				},
				"youtubeUrl": {
					"type": "string"
				},
				"videoUrl": {
					"type": "string"
				},
				"instructor": {
					"$ref": "#/definitions/models.Instructor"
				},
				"outcomes": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"models.Course": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"cid": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"category": {
					"type": "string"
				},
				"level": {
					"type": "string",
					"enum": [
						"beginner",
						"intermediate",
						"advanced"
					]
				},
				"noOfChapters": {
					"type": "integer"
				},
				"includeVideo": {
					"type": "boolean"
				},
				"courseJson": {
					"$ref": "#/definitions/models.CourseContent"
				},
				"userEmail": {
					"type": "string"
				},
				"isPublished": {
					"type": "boolean"
				},
				"bannerImageUrl": {
					"type": "string"
				},
				"createdAt": {
					"type": "string"
				},
				"updatedAt": {
					"type": "string"
				}
			}
		},
		"models.CourseSummary": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"cid": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"category": {
					"type": "string"
				},
				"level": {
					"type": "string"
				},
				"noOfChapters": {
					"type": "integer"
				},
				"bannerImageUrl": {
					"type": "string"
				}
			}
		},
		"models.ChapterInput": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"duration": {
					"type": "string"
				},
				"videoUrl": {
					"type": "string"
				},
				"youtubeUrl": {
					"type": "string"
				},
				"videoSource": {
					"type": "string"
				},
				"content": {
					"type": "string"
				},
				"section": {
					"type": "string"
				},
				"topics": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"models.CourseRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"category": {
					"type": "string"
				},
				"level": {
					"type": "string",
					"example": "beginner"
				},
				"includeVideo": {
					"type": "boolean"
				},
				"isFree": {
					"type": "boolean"
				},
				"price": {
					"type": "number"
				},
				"videoSource": {
					"type": "string"
				},
				"youtubeUrl": {
					"type": "string"
				},
				"videoUrl": {
					"type": "string"
				},
				"bannerImageUrl": {
					"type": "string"
				},
				"instructorName": {
					"type": "string"
				},
				"instructorBio": {
					"type": "string"
				},
				"outcomes": {
					"type": "string"
				},
				"chapters": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.ChapterInput"
					}
				}
			}
		},
		"models.DeleteCourseResponse": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				}
			}
		},
		"models.CreateEnrollmentRequest": {
			"type": "object",
			"properties": {
				"courseId": {
					"type": "integer"
				}
			}
		},
		"models.Enrollment": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"userId": {
					"type": "integer"
				},
				"courseId": {
					"type": "integer"
				},
				"enrolledAt": {
					"type": "string"
				},
				"progress": {
					"type": "number"
				},
				"completedChapters": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"isCompleted": {
					"type": "boolean"
				}
			}
		},
		"models.EnrollmentWithCourse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"progress": {
					"type": "number"
				},
				"enrolledAt": {
					"type": "string"
				},
				"isCompleted": {
					"type": "boolean"
				},
				"course": {
					"$ref": "#/definitions/models.CourseSummary"
				}
			}
		},
		"models.RecordProgressRequest": {
			"type": "object",
			"required": [
				"chapterId",
				"courseId"
			],
			"properties": {
				"courseId": {
					"type": "integer"
				},
				"chapterId": {
					"type": "string"
				},
				"isCompleted": {
					"type": "boolean"
				},
				"timeSpent": {
					"type": "integer"
				}
			}
		},
		"models.Progress": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"userId": {
					"type": "integer"
				},
				"courseId": {
					"type": "integer"
				},
				"chapterId": {
					"type": "string"
				},
				"isCompleted": {
					"type": "boolean"
				},
				"completedAt": {
					"type": "string"
				},
				"timeSpent": {
					"type": "integer"
				}
			}
		},
		"models.DashboardStats": {
			"type": "object",
			"properties": {
				"totalCourses": {
					"type": "integer"
				},
				"totalUsers": {
					"type": "integer"
				},
				"totalEnrollments": {
					"type": "integer"
				},
				"activeUsers": {
					"type": "integer"
				},
				"totalRevenue": {
					"type": "number"
				}
			}
		},
		"models.UserWithEnrollments": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"subscriptionPlan": {
					"type": "string"
				},
				"createdAt": {
					"type": "string"
				},
				"enrolledCount": {
					"type": "integer"
				}
			}
		},
		"models.UploadResponse": {
			"type": "object",
			"properties": {
				"url": {
					"type": "string"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"description": "Identity token issued by the identity provider, as \"Bearer <token>\"",
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "CourseHub API",
	Description:      "API for the course catalog, enrollments, chapter progress and uploads",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
