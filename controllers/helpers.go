package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	mysqldrv "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// isDuplicate reports a MySQL duplicate-entry violation (error 1062).
func isDuplicate(err error) bool {
	var myErr *mysqldrv.MySQLError
	return errors.As(err, &myErr) && myErr.Number == 1062
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func uidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	uid, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}
	return uid, true
}
