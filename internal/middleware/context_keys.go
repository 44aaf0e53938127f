package middleware

import "github.com/gin-gonic/gin"

// contextKey is a private type for request context keys. Using a custom
// type prevents collisions with other packages.
type contextKey string

const (
	loggerCtxKey  = contextKey("logger")
	customerIDKey = contextKey("customerID")
)

// GetCustomerIDFromContext retrieves the authenticated customer ID from the
// Gin context. It returns the customer ID and a boolean indicating if it
// was found.
func GetCustomerIDFromContext(c *gin.Context) (int, bool) {
	val, exists := c.Get(string(customerIDKey))
	if !exists {
		// check in the request context as well
		ctxVal := c.Request.Context().Value(customerIDKey)
		if ctxVal != nil {
			if id, ok := ctxVal.(int); ok {
				return id, true
			}
		}
		return 0, false
	}

	customerID, ok := val.(int)
	if !ok {
		// This should not happen if the auth middleware sets it correctly
		return 0, false
	}

	return customerID, true
}
