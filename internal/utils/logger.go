package utils

import (
	"fmt"
	"time"

	"github.com/fatih/color"
)

// LogInfo prints an informational message (yellow)
func LogInfo(format string, v ...interface{}) {
	message := fmt.Sprintf(format, v...)
	color.Yellow("[INFO] %s", message)
}

// LogError prints an error message (red)
func LogError(format string, v ...interface{}) {
	message := fmt.Sprintf(format, v...)
	color.Red("[ERROR] %s", message)
}

// LogDebug prints a debug message (cyan)
func LogDebug(format string, v ...interface{}) {
	message := fmt.Sprintf(format, v...)
	color.Cyan("[DEBUG] %s", message)
}

// LogRequest prints the details of an incoming HTTP request (yellow)
func LogRequest(method, path, ip string) {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	color.Yellow("[%s] %s %s from %s", timestamp, method, path, ip)
}
