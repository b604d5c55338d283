package api

import "github.com/gin-gonic/gin"

func schemaRef(name string) gin.H {
	return gin.H{"$ref": "#/components/schemas/" + name}
}

func jsonContent(schema gin.H) gin.H {
	return gin.H{"application/json": gin.H{"schema": schema}}
}

func response(description string, schema gin.H) gin.H {
	return gin.H{"description": description, "content": jsonContent(schema)}
}

func arrayOf(name string) gin.H {
	return gin.H{"type": "array", "items": schemaRef(name)}
}

var idParameter = gin.H{
	"name":     "id",
	"in":       "path",
	"required": true,
	"schema":   gin.H{"type": "number", "example": 1},
}

var errorResponses = gin.H{
	"400": response("Invalid request", schemaRef("Error")),
	"404": response("Not found", schemaRef("Error")),
}

func listOperation(description, item string) gin.H {
	return gin.H{
		"responses": gin.H{"200": response(description, arrayOf(item))},
	}
}

func getOperation(description, item string) gin.H {
	responses := gin.H{"200": response(description, schemaRef(item))}
	for code, r := range errorResponses {
		responses[code] = r
	}

	return gin.H{
		"parameters": []gin.H{idParameter},
		"responses":  responses,
	}
}

func createOperation(description, payload, item string) gin.H {
	return gin.H{
		"requestBody": gin.H{"required": true, "content": jsonContent(schemaRef(payload))},
		"responses": gin.H{
			"201": response(description, schemaRef(item)),
			"400": response("Invalid request", schemaRef("Error")),
		},
	}
}

func object(required []string, properties gin.H) gin.H {
	return gin.H{"type": "object", "required": required, "properties": properties}
}

func str(example string) gin.H {
	return gin.H{"type": "string", "example": example}
}

func nullableStr(example string) gin.H {
	return gin.H{"type": "string", "nullable": true, "example": example}
}

func num(example int) gin.H {
	return gin.H{"type": "number", "example": example}
}

// OpenAPIDocument describes every route served by NewRouter.
func OpenAPIDocument() gin.H {
	return gin.H{
		"openapi": "3.0.0",
		"info": gin.H{
			"title":   "Cinegoose API",
			"version": "1.0.0",
		},
		"paths": gin.H{
			"/": gin.H{
				"get": gin.H{"responses": gin.H{"200": response("Service greeting", schemaRef("RootResponse"))}},
			},
			"/api/movies": gin.H{
				"get": listOperation("Movies fetched successfully", "Movie"),
			},
			"/api/movies/{id}": gin.H{
				"get": getOperation("Movie fetched successfully", "Movie"),
			},
			"/api/movie": gin.H{
				"post": createOperation("Movie created successfully", "NewMovie", "Movie"),
			},
			"/api/geese": gin.H{
				"get":  listOperation("Famous geese fetched successfully", "FamousGoose"),
				"post": createOperation("Famous goose created successfully", "NewFamousGoose", "FamousGoose"),
			},
			"/api/geese/{id}": gin.H{
				"get": getOperation("Famous goose fetched successfully", "FamousGoose"),
			},
			"/api/quotes": gin.H{
				"get":  listOperation("Goose quotes fetched successfully", "GooseQuote"),
				"post": createOperation("Goose quote created successfully", "NewGooseQuote", "GooseQuote"),
			},
			"/api/quotes/{id}": gin.H{
				"get": getOperation("Goose quote fetched successfully", "GooseQuote"),
			},
		},
		"components": gin.H{
			"schemas": gin.H{
				"Movie": object([]string{"id", "title", "director", "releaseDate"}, gin.H{
					"id":          num(1),
					"title":       str("The Goosefather"),
					"director":    str("Goose Coppola"),
					"releaseDate": str("1972-03-24"),
				}),
				"NewMovie": object([]string{"title", "director", "releaseDate"}, gin.H{
					"title":       str("The Goosefather"),
					"director":    str("Goose Coppola"),
					"releaseDate": str("1972-03-24"),
				}),
				"FamousGoose": object([]string{"id", "name", "movieId", "character", "description"}, gin.H{
					"id":          num(1),
					"name":        str("Honkleone"),
					"movieId":     num(1),
					"character":   str("Don Vito Honkleone"),
					"description": nullableStr("The patriarch of the Honkleone crime family"),
				}),
				"NewFamousGoose": object([]string{"name", "movieId", "character"}, gin.H{
					"name":        str("Honkleone"),
					"movieId":     num(1),
					"character":   str("Don Vito Honkleone"),
					"description": str("The patriarch of the Honkleone crime family"),
				}),
				"GooseQuote": object([]string{"id", "gooseId", "quote", "context", "timestamp"}, gin.H{
					"id":        num(1),
					"gooseId":   num(1),
					"quote":     str("I'm gonna make him a honk he can't refuse."),
					"context":   nullableStr("Speaking to Tom Hagen about resolving a dispute"),
					"timestamp": nullableStr("00:45:30"),
				}),
				"NewGooseQuote": object([]string{"gooseId", "quote"}, gin.H{
					"gooseId":   num(1),
					"quote":     str("I'm gonna make him a honk he can't refuse."),
					"context":   str("Speaking to Tom Hagen about resolving a dispute"),
					"timestamp": str("00:45:30"),
				}),
				"RootResponse": object([]string{"message"}, gin.H{
					"message": gin.H{
						"type":        "string",
						"example":     rootMessage,
						"description": "A description and a goose and movie emoji",
					},
				}),
				"Error": object([]string{"error"}, gin.H{
					"error": str("movie not found"),
				}),
			},
		},
	}
}
