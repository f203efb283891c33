// Package flash carries transient one-request messages across
// redirects using session flashes. Every error the application
// surfaces to the browser goes through here; nothing renders a raw
// error page.
package flash

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Message levels, mirrored by the page templates.
const (
	LevelSuccess = "success"
	LevelError   = "error"
	LevelWarning = "warning"
)

// Message is a single flashed notice.
type Message struct {
	Level string
	Text  string
}

// Success flashes an informational message.
func Success(c *gin.Context, text string) {
	add(c, LevelSuccess, text)
}

// Error flashes a recoverable error message.
func Error(c *gin.Context, text string) {
	add(c, LevelError, text)
}

// Warning flashes a non-fatal warning.
func Warning(c *gin.Context, text string) {
	add(c, LevelWarning, text)
}

func add(c *gin.Context, level, text string) {
	session := sessions.Default(c)
	session.AddFlash(text, level)
	// A failed save only drops the notice, never the response.
	_ = session.Save()
}

// Take pops all pending messages, clearing them from the session.
func Take(c *gin.Context) []Message {
	session := sessions.Default(c)

	var messages []Message
	for _, level := range []string{LevelSuccess, LevelError, LevelWarning} {
		for _, v := range session.Flashes(level) {
			if text, ok := v.(string); ok {
				messages = append(messages, Message{Level: level, Text: text})
			}
		}
	}
	_ = session.Save()

	return messages
}
