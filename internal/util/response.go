package util

import "github.com/gin-gonic/gin"

// Error 统一错误返回：{code, result, message}，code 与 HTTP 状态码一致。
// 成功路径不走信封，handler 直接返回原始 DTO。
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{
		"code":    status,
		"result":  nil,
		"message": msg,
	})
}
