package academics

import (
	"encoding/json"
	"log"
	"os"
	"strings"

	"gorm.io/gorm"

	subjectModel "kampusku_backend/internals/features/academics/subjects/model"
)

type SubjectSeed struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Credits int    `json:"credits"`
}

// SeedSubjectsFromJSON inserts the base subject catalogue. Existing codes
// are skipped, so re-running is safe.
func SeedSubjectsFromJSON(db *gorm.DB, filePath string) {
	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("[SEED ERROR] read %s: %v", filePath, err)
	}

	var inputs []SubjectSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("[SEED ERROR] decode %s: %v", filePath, err)
	}

	for _, data := range inputs {
		code := strings.ToUpper(strings.TrimSpace(data.Code))

		var existing subjectModel.SubjectModel
		if err := db.Where("code = ?", code).First(&existing).Error; err == nil {
			log.Printf("[SEED] subject %s already exists, skipped", code)
			continue
		}

		s := subjectModel.SubjectModel{
			Code:    code,
			Name:    strings.TrimSpace(data.Name),
			Credits: data.Credits,
		}
		if err := db.Create(&s).Error; err != nil {
			log.Printf("[SEED ERROR] insert subject %s: %v", code, err)
		} else {
			log.Printf("[SEED] inserted subject %s", code)
		}
	}
}
