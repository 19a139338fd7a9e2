package httpserver

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"restoration-financials/internal/service/report"
)

func rangeFromQuery(c *gin.Context) (report.Range, error) {
	return report.ParseRange(c.Query("from"), c.Query("to"))
}

func limitFromQuery(c *gin.Context) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return report.DefaultTopJobs, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid limit %q", raw)
	}
	return n, nil
}
