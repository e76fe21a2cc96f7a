package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
)

// SetupRouter configures all application routes: the liveness probe at /
// and the GraphQL endpoint at /graphql.
func SetupRouter(router *gin.Engine, schema *graphql.Schema) {
	// Liveness probe; body kept bit-for-bit stable for existing checks
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "hello world !"})
	})

	router.POST("/graphql", gin.WrapH(&relay.Handler{Schema: schema}))
}
