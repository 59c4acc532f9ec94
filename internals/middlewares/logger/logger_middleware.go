package logger

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// LoggerMiddleware mencatat semua lalu lintas request absensi.
// Jam log pakai zona sekolah supaya gampang dicocokkan dengan jam sesi.
func LoggerMiddleware() fiber.Handler {
	return logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Format:     "[${time}] ${status} ${method} ${path} (${latency}) dari ${ip}\n",
	})
}
