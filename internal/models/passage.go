package models

import (
	"time"

	"gorm.io/datatypes"
)

type QuestionType string

const (
	MultipleChoice    QuestionType = "MCQ"
	TrueFalseNotGiven QuestionType = "TRUE_FALSE"
	FillBlank         QuestionType = "FILL_BLANK"
	Matching          QuestionType = "MATCHING"
	WrittenAnswer     QuestionType = "TEXT"
)

// ReadingPassage is the unit a test session runs against. Passages and their
// questions are seeded once and read-only afterwards.
type ReadingPassage struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Title         string    `json:"title" gorm:"not null;size:255" validate:"required,max=255"`
	Content       string    `json:"content" gorm:"type:text;not null" validate:"required"`
	PassageNumber int       `json:"passage_number" gorm:"default:1;index"`
	CreatedAt     time.Time `json:"created_at"`

	// Relations
	Questions []Question `json:"questions" gorm:"foreignKey:PassageID"`
}

func (ReadingPassage) TableName() string {
	return "reading_passages"
}

type Question struct {
	ID        uint         `json:"id" gorm:"primaryKey"`
	PassageID uint         `json:"passage_id" gorm:"not null;index;uniqueIndex:idx_passage_question_number"`
	Type      QuestionType `json:"question_type" gorm:"size:15;default:MCQ;not null" validate:"omitempty,question_type"`
	Text      string       `json:"question_text" gorm:"type:text;not null" validate:"required"`
	Number    int          `json:"question_number" gorm:"not null;uniqueIndex:idx_passage_question_number"`

	// Choice set for MCQ questions, keyed by option label ("A".."D").
	Options datatypes.JSON `json:"options,omitempty" gorm:"type:jsonb"`

	// For FILL_BLANK the answer key may hold several acceptable values as a
	// comma-separated list.
	CorrectAnswer string  `json:"correct_answer" gorm:"size:500;not null" validate:"required,max=500"`
	Explanation   *string `json:"explanation,omitempty" gorm:"type:text"`
	Marks         int     `json:"marks" gorm:"default:1" validate:"omitempty,min=1"`

	CreatedAt time.Time `json:"created_at"`
}

func (Question) TableName() string {
	return "questions"
}
