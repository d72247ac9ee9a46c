// file: database/connect.go
package database

import (
	"log"
	"time"

	"PracticeCTF/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Connect 建立 MySQL 连接并配置连接池。
// TranslateError 开启后，唯一索引冲突会映射为 gorm.ErrDuplicatedKey，
// 提交流程依赖它来串行化并发的正确提交。
func Connect(dsn string) *gorm.DB {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("Failed to get underlying sql.DB:", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	// 连接在 1 小时后过期重建，避免 MySQL wait_timeout 踢掉空闲连接
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Database connection successfully established and connection pool configured.")
	return db
}

// MigrateTables 自动迁移三张表
func MigrateTables(db *gorm.DB) {
	if err := db.AutoMigrate(&models.User{}, &models.Challenge{}, &models.Submission{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
	log.Println("Database migration completed.")
}
