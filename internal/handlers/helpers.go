package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"budgetwise/internal/calendar"
	apperrors "budgetwise/internal/errors"
	"budgetwise/internal/logger"
	"budgetwise/internal/uuid"
)

// getUserID extracts the authenticated user ID from the Gin context.
// Returns ErrUnauthorized if not present.
func getUserID(c *gin.Context) (string, error) {
	userID := c.GetString("userID")
	if userID == "" {
		return "", apperrors.ErrUnauthorized
	}
	return userID, nil
}

// parsePathID validates a UUID path parameter.
// Returns ErrInvalidInput if the parameter is not a UUID.
func parsePathID(c *gin.Context, param string) (string, error) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return id, nil
}

// UserDateQuery carries the optional client-side notion of today. It is
// accepted in the query string and, for writes, in the JSON body.
type UserDateQuery struct {
	UserDate  string `form:"userDate" json:"userDate" binding:"omitempty,budget_date"`
	UserYear  int    `form:"userYear" json:"userYear" binding:"omitempty,min=1900,max=9999"`
	UserMonth int    `form:"userMonth" json:"userMonth" binding:"omitempty,min=1,max=12"`
}

func (q UserDateQuery) resolve(now time.Time) (calendar.UserDate, error) {
	ud, err := calendar.Resolve(q.UserDate, q.UserYear, q.UserMonth, now)
	if err != nil {
		return calendar.UserDate{}, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	return ud, nil
}

// userDate resolves the user-date context from the query string, letting
// body overrides (already bound by the caller) win.
func userDate(c *gin.Context, body *UserDateQuery) (calendar.UserDate, error) {
	var q UserDateQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return calendar.UserDate{}, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	if body != nil {
		if body.UserDate != "" {
			q.UserDate = body.UserDate
		}
		if body.UserYear != 0 || body.UserMonth != 0 {
			q.UserYear, q.UserMonth = body.UserYear, body.UserMonth
		}
	}
	return q.resolve(time.Now())
}

// MonthQuery selects a budget month; both fields default to the user's
// current month.
type MonthQuery struct {
	Year  int `form:"year" binding:"omitempty,min=1900,max=9999"`
	Month int `form:"month" binding:"omitempty,min=1,max=12"`
	UserDateQuery
}

// target is the month q selects, defaulting to ud's current month.
func (q MonthQuery) target(ud calendar.UserDate) (calendar.Month, error) {
	if q.Year == 0 && q.Month == 0 {
		return ud.Current, nil
	}
	m := calendar.Month{Year: q.Year, Month: q.Month}
	if !m.Valid() {
		return calendar.Month{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "year and month must be given together")
	}
	return m, nil
}

// monthParam resolves the month a read or ensure call targets.
func monthParam(c *gin.Context) (calendar.Month, error) {
	var q MonthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return calendar.Month{}, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	ud, err := q.resolve(time.Now())
	if err != nil {
		return calendar.Month{}, err
	}
	return q.target(ud)
}

// writeMonth resolves the month a write targets from the year and month
// query fields, falling back to the already resolved ud.
func writeMonth(c *gin.Context, ud calendar.UserDate) (calendar.Month, error) {
	var q MonthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return calendar.Month{}, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	return q.target(ud)
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrInternalServer.Code,
			"message": apperrors.ErrInternalServer.Message,
		},
	})
}
