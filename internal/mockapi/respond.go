package mockapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// envelope is the uniform response shape of every endpoint. Failures keep
// HTTP 200; clients branch on the success flag.
//
// envelope 是每个端点的统一响应形状。失败保持HTTP 200；客户端根据success标志分支。
type envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// respondOK writes a successful envelope.
// respondOK 写入成功信封。
func respondOK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, envelope{Success: true, Message: message, Data: data})
}

// respondFail writes a failed envelope.
// respondFail 写入失败信封。
func respondFail(c *gin.Context, message string) {
	c.JSON(http.StatusOK, envelope{Success: false, Message: message})
}

// respondError maps a store error to a failed envelope with a message the
// client can show as-is.
//
// respondError 将存储错误映射到失败信封，其消息客户端可以原样显示。
func respondError(c *gin.Context, err error) {
	respondFail(c, failureMessage(err))
}
