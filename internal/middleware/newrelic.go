package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
)

// NewRelicSessionAttributes tags the request's New Relic transaction with the signed-in
// user and role. It is a no-op when the request is not instrumented.
func NewRelicSessionAttributes() gin.HandlerFunc {
	return func(c *gin.Context) {
		txn := nrgin.Transaction(c)
		if sess := SessionFrom(c); txn != nil && sess != nil {
			txn.AddAttribute("userId", sess.UserID)
			txn.AddAttribute("role", string(sess.Role))
		}

		c.Next()

		// Record error if present.
		if txn != nil {
			for _, err := range c.Errors {
				txn.NoticeError(err.Err)
			}
		}
	}
}
