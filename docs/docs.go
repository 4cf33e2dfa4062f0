// Package docs swagger 文档，与 controller 上的注解保持同步
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
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["系统"],
                "summary": "服务横幅",
                "responses": {"200": {"description": "message, timestamp", "schema": {"type": "object"}}}
            }
        },
        "/health": {
            "get": {
                "description": "数据库不可用时仍返回 200，database 字段为 failed",
                "produces": ["application/json"],
                "tags": ["系统"],
                "summary": "健康检查",
                "responses": {"200": {"description": "status, database, openai", "schema": {"type": "object"}}}
            }
        },
        "/api/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["认证"],
                "description": "创建账号并返回 30 天有效的 JWT",
                "summary": "注册新用户",
                "parameters": [{"description": "用户注册信息", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controller.RegisterRequest"}}],
                "responses": {
                    "200": {"description": "success, token, user", "schema": {"type": "object"}},
                    "400": {"description": "缺少字段", "schema": {"$ref": "#/definitions/util.ErrorResponse"}},
                    "409": {"description": "邮箱已被注册", "schema": {"$ref": "#/definitions/util.ErrorResponse"}},
                    "500": {"description": "服务器内部错误", "schema": {"$ref": "#/definitions/util.ErrorResponse"}}
                }
            }
        },
        "/api/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["认证"],
                "description": "验证用户身份并返回JWT令牌",
                "summary": "用户登录",
                "parameters": [{"description": "用户登录凭据", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controller.LoginRequest"}}],
                "responses": {
                    "200": {"description": "success, token, user", "schema": {"type": "object"}},
                    "400": {"description": "凭据无效", "schema": {"$ref": "#/definitions/util.ErrorResponse"}}
                }
            }
        },
        "/api/auth/me": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["认证"],
                "summary": "获取当前用户",
                "responses": {
                    "200": {"description": "success, user", "schema": {"type": "object"}},
                    "401": {"description": "未授权", "schema": {"$ref": "#/definitions/util.ErrorResponse"}},
                    "404": {"description": "用户不存在", "schema": {"$ref": "#/definitions/util.ErrorResponse"}}
                }
            }
        },
        "/api/ai/explain": {
            "post": {
                "description": "provider 失败时仍返回 200，success=false，explanation 中带有致歉文本",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["AI"],
                "summary": "通俗解释概念",
                "parameters": [{"description": "概念", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controller.ExplainRequest"}}],
                "responses": {
                    "200": {"description": "success, concept, explanation", "schema": {"type": "object"}},
                    "400": {"description": "缺少 concept", "schema": {"$ref": "#/definitions/util.ErrorResponse"}}
                }
            }
        },
        "/api/ai/study-notes": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["AI"],
                "summary": "生成学习笔记",
                "parameters": [{"description": "主题", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controller.TopicRequest"}}],
                "responses": {
                    "200": {"description": "success, topic, notes", "schema": {"type": "object"}},
                    "400": {"description": "缺少 topic", "schema": {"$ref": "#/definitions/util.ErrorResponse"}},
                    "500": {"description": "provider 失败", "schema": {"$ref": "#/definitions/util.ErrorResponse"}},
                    "504": {"description": "provider 超时", "schema": {"$ref": "#/definitions/util.ErrorResponse"}}
                }
            }
        },
        "/api/ai/flashcards": {
            "post": {
                "description": "flashcards 为原始文本，cards 为解析后的问答对",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["AI"],
                "summary": "生成闪卡",
                "parameters": [{"description": "主题与数量（默认 5，最多 20）", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controller.FlashcardsRequest"}}],
                "responses": {
                    "200": {"description": "success, topic, flashcards, cards, count", "schema": {"type": "object"}},
                    "400": {"description": "参数错误", "schema": {"$ref": "#/definitions/util.ErrorResponse"}},
                    "500": {"description": "provider 失败", "schema": {"$ref": "#/definitions/util.ErrorResponse"}},
                    "504": {"description": "provider 超时", "schema": {"$ref": "#/definitions/util.ErrorResponse"}}
                }
            }
        },
        "/api/ai/generate-quiz": {
            "post": {
                "description": "无法解析为题目数组时 questions 为原始文本并带 raw=true",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["AI"],
                "summary": "生成测验",
                "parameters": [{"description": "主题与难度（easy|medium|hard）", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controller.QuizRequest"}}],
                "responses": {
                    "200": {"description": "success, topic, difficulty, questions", "schema": {"type": "object"}},
                    "400": {"description": "参数错误", "schema": {"$ref": "#/definitions/util.ErrorResponse"}},
                    "500": {"description": "provider 失败", "schema": {"$ref": "#/definitions/util.ErrorResponse"}},
                    "504": {"description": "provider 超时", "schema": {"$ref": "#/definitions/util.ErrorResponse"}}
                }
            }
        },
        "/api/analytics/track": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "description": "未知的 type 只记录会话，不计入 featureUsage",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["分析"],
                "summary": "记录一次学习行为",
                "parameters": [{"description": "学习行为", "name": "body", "in": "body", "schema": {"$ref": "#/definitions/controller.TrackRequest"}}],
                "responses": {
                    "200": {"description": "success, message", "schema": {"type": "object"}},
                    "400": {"description": "请求体不是合法 JSON", "schema": {"$ref": "#/definitions/util.ErrorResponse"}},
                    "401": {"description": "未授权", "schema": {"$ref": "#/definitions/util.ErrorResponse"}}
                }
            }
        },
        "/api/analytics/stats": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "最近七天、热门主题（前 5）、功能使用次数与最近 10 次会话",
                "produces": ["application/json"],
                "tags": ["分析"],
                "summary": "获取学习统计",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.AnalyticsSummary"}},
                    "401": {"description": "未授权", "schema": {"$ref": "#/definitions/util.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "controller.RegisterRequest": {
            "type": "object",
            "required": ["email", "password", "username"],
            "properties": {"username": {"type": "string"}, "email": {"type": "string"}, "password": {"type": "string"}}
        },
        "controller.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "controller.ExplainRequest": {
            "type": "object",
            "properties": {"concept": {"type": "string"}}
        },
        "controller.TopicRequest": {
            "type": "object",
            "properties": {"topic": {"type": "string"}}
        },
        "controller.FlashcardsRequest": {
            "type": "object",
            "properties": {"topic": {"type": "string"}, "count": {"type": "integer"}}
        },
        "controller.QuizRequest": {
            "type": "object",
            "properties": {"topic": {"type": "string"}, "difficulty": {"type": "string"}}
        },
        "controller.TrackRequest": {
            "type": "object",
            "properties": {
                "topic": {"type": "string"},
                "type": {"type": "string"},
                "duration": {"type": "number"},
                "timestamp": {"type": "string"}
            }
        },
        "model.FeatureUsage": {
            "type": "object",
            "properties": {"explain": {"type": "integer"}, "notes": {"type": "integer"}, "flashcards": {"type": "integer"}, "quiz": {"type": "integer"}}
        },
        "model.TopicCount": {
            "type": "object",
            "properties": {"topic": {"type": "string"}, "count": {"type": "integer"}}
        },
        "model.DayCount": {
            "type": "object",
            "properties": {"date": {"type": "string"}, "day": {"type": "string"}, "count": {"type": "integer"}}
        },
        "model.StudySession": {
            "type": "object",
            "properties": {"topic": {"type": "string"}, "type": {"type": "string"}, "duration": {"type": "integer"}, "timestamp": {"type": "string"}}
        },
        "model.AnalyticsSummary": {
            "type": "object",
            "properties": {
                "totalSessions": {"type": "integer"},
                "featureUsage": {"$ref": "#/definitions/model.FeatureUsage"},
                "topTopics": {"type": "array", "items": {"$ref": "#/definitions/model.TopicCount"}},
                "last7Days": {"type": "array", "items": {"$ref": "#/definitions/model.DayCount"}},
                "recentSessions": {"type": "array", "items": {"$ref": "#/definitions/model.StudySession"}}
            }
        },
        "util.ErrorResponse": {
            "type": "object",
            "properties": {"success": {"type": "boolean"}, "error": {"type": "string"}, "message": {"type": "string"}}
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo 导出的文档信息，router 中会改写 BasePath
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3001",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "AI Study Buddy API",
	Description:      "AI 学习助手后端：概念解释、学习笔记、闪卡、测验生成，以及用户认证与学习统计。",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
