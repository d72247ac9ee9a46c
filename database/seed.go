// file: database/seed.go
package database

import (
	"log"

	"PracticeCTF/models"

	"gorm.io/gorm"
)

// SeedChallenges 在题目表为空时写入两道示例题
func SeedChallenges(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Challenge{}).Count(&count).Error; err != nil {
		log.Printf("warning: challenge count failed, skipping seed: %v", err)
		return
	}
	if count > 0 {
		return
	}

	challenges := []models.Challenge{
		{
			ChallengeName: "Basic Crypto",
			Description:   "Decode Base64: ZmxhZ3tCYXNlNjRfSXNfRnVuIX0=",
			Flag:          "flag{Base64_Is_Fun!}",
			Points:        100,
		},
		{
			ChallengeName: "HTML Source Flag",
			Description:   "View page source of example.com and find hidden flag (demo).",
			Flag:          "flag{view_source_master}",
			Points:        150,
		},
	}

	if err := db.Create(&challenges).Error; err != nil {
		log.Printf("warning: seeding sample challenges failed: %v", err)
		return
	}
	log.Printf("Seeded %d sample challenges.", len(challenges))
}
