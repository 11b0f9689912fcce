package utils

import (
	"database/sql"
	"time"
)

func NullStringToString(v sql.NullString) string {
	if v.Valid {
		return v.String
	}
	return ""
}

func NullInt64ToInt(v sql.NullInt64) int {
	if v.Valid {
		return int(v.Int64)
	}
	return 0
}

func NullTimeToPointer(v sql.NullTime) *time.Time {
	if v.Valid {
		return &v.Time
	}
	return nil
}
