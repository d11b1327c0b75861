package ds

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Заявка из мастера. Строки только добавляются, приложение их не меняет
type Submission struct {
	ID           uint           `gorm:"primaryKey"`
	SubmissionID string         `gorm:"column:submission_id;type:varchar(64);uniqueIndex;not null"`
	CompanyName  string         `gorm:"type:varchar(255)"`
	ContactName  string         `gorm:"type:varchar(255)"`
	Email        string         `gorm:"type:varchar(255)"`
	Phone        string         `gorm:"type:varchar(50)"`
	SubmittedAt  time.Time      `gorm:"not null;index"`
	Data         datatypes.JSON `gorm:"not null"`
	Pricing      datatypes.JSON
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Submission) TableName() string { return "submissions" }

// NewSubmissionID: SUB-<unix millis>-<9 заглавных букв/цифр>
func NewSubmissionID(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:9]
	return "SUB-" + strconv.FormatInt(now.UnixMilli(), 10) + "-" + suffix
}
