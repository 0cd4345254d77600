// Package docs registers the OpenAPI description of the report API.
// Regenerate with: swag init -g cmd/report_api/main.go
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
        "/api/v1/dashboard/metrics": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Dashboard metrics",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.DashboardMetrics"}}}
            }
        },
        "/api/v1/dashboard/data": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Recently collected documents",
                "parameters": [{"type": "string", "default": "today", "description": "today, 3days or 7days", "name": "period", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.DocumentRow"}}}}
            }
        },
        "/api/v1/search/sites": {
            "get": {
                "produces": ["application/json"],
                "tags": ["search"],
                "summary": "Searchable sites",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Site"}}}}
            }
        },
        "/api/v1/search/results": {
            "get": {
                "produces": ["application/json"],
                "tags": ["search"],
                "summary": "Search collected documents",
                "parameters": [
                    {"type": "string", "description": "Comma separated site codes", "name": "sites", "in": "query"},
                    {"type": "string", "description": "Keyword", "name": "keyword", "in": "query"},
                    {"type": "integer", "default": 1, "description": "Page", "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "description": "Page size (10-100)", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/search.Result"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/statistics/metrics": {
            "get": {"produces": ["application/json"], "tags": ["statistics"], "summary": "Catalog and collection totals",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Overview"}}}}
        },
        "/api/v1/statistics/sites": {
            "get": {"produces": ["application/json"], "tags": ["statistics"], "summary": "Documents per site",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.SiteCount"}}}}}
        },
        "/api/v1/statistics/files": {
            "get": {"produces": ["application/json"], "tags": ["statistics"], "summary": "Attachments per site",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.SiteFileCount"}}}}}
        },
        "/api/v1/statistics/detail": {
            "get": {"produces": ["application/json"], "tags": ["statistics"], "summary": "Documents and attachments per site page",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.DetailCount"}}}}}
        },
        "/api/v1/statistics/period": {
            "get": {"produces": ["application/json"], "tags": ["statistics"], "summary": "First and last collection date",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.CollectionPeriod"}}}}
        },
        "/api/v1/settings/system-info": {
            "get": {"produces": ["application/json"], "tags": ["settings"], "summary": "Runtime, store and catalog state",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.SystemInfo"}}}}
        },
        "/api/v1/catalog": {
            "get": {"produces": ["application/json"], "tags": ["catalog"], "summary": "Current catalog snapshot",
                "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/catalog/sync": {
            "post": {"produces": ["application/json"], "tags": ["catalog"], "summary": "Reload the catalog from the site description",
                "responses": {"200": {"description": "OK"}, "422": {"description": "Unprocessable Entity"}}}
        },
        "/api/v1/logs/dates": {
            "get": {"produces": ["application/json"], "tags": ["logs"], "summary": "Selectable log dates",
                "parameters": [{"type": "integer", "default": 7, "description": "Number of days", "name": "days", "in": "query"}],
                "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/logs/files": {
            "get": {"produces": ["application/json"], "tags": ["logs"], "summary": "Crawler log files, newest first",
                "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/logs/files/{name}": {
            "get": {"produces": ["application/json"], "tags": ["logs"], "summary": "Crawler log file content",
                "parameters": [{"type": "string", "description": "Log file name", "name": "name", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}
        },
        "/api/v1/logs/crawler": {
            "get": {"produces": ["application/json"], "tags": ["logs"], "summary": "Crawler log of one day",
                "parameters": [{"type": "string", "description": "YYYY-MM-DD", "name": "date", "in": "query", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}
        },
        "/api/v1/attachments/{site}/{page}/{seq}": {
            "get": {"produces": ["application/json"], "tags": ["attachments"], "summary": "Attachments of a document",
                "parameters": [
                    {"type": "string", "description": "Site code", "name": "site", "in": "path", "required": true},
                    {"type": "string", "description": "Page code", "name": "page", "in": "path", "required": true},
                    {"type": "string", "description": "Document sequence", "name": "seq", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Attachment"}}}}}
        },
        "/api/v1/attachments/{site}/{page}/{seq}/{filename}": {
            "get": {"produces": ["application/octet-stream"], "tags": ["attachments"], "summary": "Download an attachment",
                "parameters": [
                    {"type": "string", "description": "Site code", "name": "site", "in": "path", "required": true},
                    {"type": "string", "description": "Page code", "name": "page", "in": "path", "required": true},
                    {"type": "string", "description": "Document sequence", "name": "seq", "in": "path", "required": true},
                    {"type": "string", "description": "File name", "name": "filename", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "file"}}, "404": {"description": "Not Found"}}}
        }
    },
    "definitions": {
        "domain.DashboardMetrics": {
            "type": "object",
            "properties": {
                "site_count": {"type": "string"},
                "today_collect": {"type": "string"},
                "three_days_collect": {"type": "string"},
                "seven_days_collect": {"type": "string"},
                "total_collect": {"type": "string"},
                "error_count": {"type": "integer"}
            }
        },
        "domain.DocumentRow": {
            "type": "object",
            "properties": {
                "site_name": {"type": "string"},
                "page_id": {"type": "string"},
                "title": {"type": "string"},
                "registration_date": {"type": "string"},
                "collection_date": {"type": "string"},
                "site_url": {"type": "string"},
                "detail_url": {"type": "string"},
                "org_url": {"type": "string"},
                "summary": {"type": "string"},
                "real_seq": {"type": "string"},
                "site_code": {"type": "string"},
                "page_code": {"type": "string"}
            }
        },
        "domain.Site": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "name": {"type": "string"}}
        },
        "domain.SiteCount": {
            "type": "object",
            "properties": {"site": {"type": "string"}, "count": {"type": "integer"}}
        },
        "domain.SiteFileCount": {
            "type": "object",
            "properties": {"site": {"type": "string"}, "file_count": {"type": "integer"}}
        },
        "domain.DetailCount": {
            "type": "object",
            "properties": {"site": {"type": "string"}, "page": {"type": "string"}, "posts": {"type": "integer"}, "files": {"type": "integer"}}
        },
        "domain.Overview": {
            "type": "object",
            "properties": {
                "total_sites": {"type": "integer"},
                "total_pages": {"type": "integer"},
                "total_posts": {"type": "integer"},
                "total_attachments": {"type": "integer"}
            }
        },
        "domain.CollectionPeriod": {
            "type": "object",
            "properties": {"first_date": {"type": "string"}, "last_date": {"type": "string"}}
        },
        "domain.SystemInfo": {
            "type": "object",
            "properties": {
                "go_version": {"type": "string"},
                "database_type": {"type": "string"},
                "database_healthy": {"type": "boolean"},
                "time_zone": {"type": "string"},
                "catalog_source": {"type": "string"},
                "catalog_version": {"type": "string"},
                "catalog_synced_at": {"type": "string"},
                "catalog_sites": {"type": "integer"},
                "catalog_pages": {"type": "integer"},
                "search_paging": {"type": "string"}
            }
        },
        "domain.Attachment": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "parent_id": {"type": "integer"},
                "save_folder": {"type": "string"},
                "save_file_name": {"type": "string"}
            }
        },
        "search.Result": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/domain.DocumentRow"}},
                "total": {"type": "integer"},
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_pages": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Crawl Report API",
	Description:      "Dashboard metrics, keyword search and statistics over crawled documents",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
