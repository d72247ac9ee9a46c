// file: utils/flash.go
package utils

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

const flashCookie = "practicectf_flash"

// Flash 把一条提示消息写进短期 cookie，在下一次页面渲染时取出。
// 用 cookie 而不是 Redis 是因为注册/登录页在会话建立之前也要闪现消息。
func Flash(c *gin.Context, msg string) {
	msgs := readFlashes(c)
	msgs = append(msgs, msg)
	data, err := json.Marshal(msgs)
	if err != nil {
		return
	}
	encoded := base64.URLEncoding.EncodeToString(data)
	c.SetCookie(flashCookie, encoded, 300, "/", "", false, true)
}

// ConsumeFlashes 取出全部闪现消息并清除 cookie
func ConsumeFlashes(c *gin.Context) []string {
	msgs := readFlashes(c)
	if len(msgs) > 0 {
		c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	}
	return msgs
}

func readFlashes(c *gin.Context) []string {
	encoded, err := c.Cookie(flashCookie)
	if err != nil || encoded == "" {
		return nil
	}
	data, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return nil
	}
	var msgs []string
	if err := json.Unmarshal(data, &msgs); err != nil {
		return nil
	}
	return msgs
}

// Redirect 统一的 303 跳转，POST 之后回到 GET 页面
func Redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}
