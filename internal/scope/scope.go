package scope

import (
	"time"

	"gorm.io/gorm"
)

// Active membatasi query ke baris yang belum dinonaktifkan.
func Active() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("aktif = ?", true)
	}
}

// Period membatasi query ke baris dengan tanggal di dalam rentang periode.
func Period(column string, start, end time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" >= ? AND "+column+" <= ?", start, end)
	}
}
