package http

import "github.com/gin-gonic/gin"

// Every success response shares the {success, data, [message]} envelope;
// every failure shares {success, message, [errors|code]}.

func Success(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func SuccessMessage(c *gin.Context, code int, message string, data interface{}) {
	body := gin.H{"success": true, "message": message}
	if data != nil {
		body["data"] = data
	}
	c.JSON(code, body)
}

func ErrorResponse(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "message": message})
}

func ValidationFailed(c *gin.Context, messages []string) {
	c.JSON(400, gin.H{"success": false, "message": "Validation error", "errors": messages})
}
