// Package seed loads a default reading passage into an empty database so a
// fresh deployment can serve a test immediately. Content authoring happens
// outside this service; the seed only covers the bootstrap case.
package seed

import (
	"context"
	"fmt"

	"github.com/ielts-prep/reading-test-service/internal/models"
	"github.com/ielts-prep/reading-test-service/internal/repositories"
	"github.com/ielts-prep/reading-test-service/internal/utils"
	"gorm.io/datatypes"
)

// Load creates the default passage when no passages exist yet.
func Load(ctx context.Context, repo repositories.Repository, logger utils.Logger) error {
	count, err := repo.Passage().Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count passages: %w", err)
	}
	if count > 0 {
		return nil
	}

	passage := defaultPassage()
	if err := repo.Passage().Create(ctx, passage); err != nil {
		return fmt.Errorf("failed to seed default passage: %w", err)
	}

	logger.Info("Seeded default reading passage",
		"passage_id", passage.ID,
		"questions", len(passage.Questions))
	return nil
}

func mcqOptions(a, b, c, d string) datatypes.JSON {
	return datatypes.JSON([]byte(fmt.Sprintf(`{"A":%q,"B":%q,"C":%q,"D":%q}`, a, b, c, d)))
}

func defaultPassage() *models.ReadingPassage {
	return &models.ReadingPassage{
		Title:         "The Honey Bee Waggle Dance",
		PassageNumber: 1,
		Content: "When a forager honey bee locates a rich source of nectar, she returns " +
			"to the hive and performs a figure-of-eight movement known as the waggle " +
			"dance. The angle of the dance relative to gravity encodes the direction of " +
			"the food source relative to the sun, while the duration of the waggle phase " +
			"signals its distance. Karl von Frisch, who decoded the dance in the 1940s, " +
			"received a Nobel Prize for the discovery in 1973. Later researchers showed " +
			"that recruits also rely on scent carried on the dancer's body, and that the " +
			"dance is calibrated: bees raised in different environments interpret the " +
			"same waggle duration as different distances. The dance remains one of the " +
			"most studied examples of symbolic communication outside human language.",
		Questions: []models.Question{
			{
				Number: 1, Type: models.MultipleChoice,
				Text:          "What does the angle of the waggle dance encode?",
				Options:       mcqOptions("The distance to the food", "The direction of the food relative to the sun", "The quality of the nectar", "The size of the hive"),
				CorrectAnswer: "B",
			},
			{
				Number: 2, Type: models.MultipleChoice,
				Text:          "Who decoded the waggle dance?",
				Options:       mcqOptions("Charles Darwin", "Thomas Seeley", "Karl von Frisch", "Jane Goodall"),
				CorrectAnswer: "C",
			},
			{
				Number: 3, Type: models.TrueFalseNotGiven,
				Text:          "Von Frisch received a Nobel Prize in 1973.",
				CorrectAnswer: "true",
			},
			{
				Number: 4, Type: models.TrueFalseNotGiven,
				Text:          "All bee species perform the waggle dance.",
				CorrectAnswer: "not given",
			},
			{
				Number: 5, Type: models.TrueFalseNotGiven,
				Text:          "Recruits ignore scent cues entirely.",
				CorrectAnswer: "false",
			},
			{
				Number: 6, Type: models.FillBlank,
				Text:          "The duration of the waggle phase signals the ______ of the food source.",
				CorrectAnswer: "distance",
			},
			{
				Number: 7, Type: models.FillBlank,
				Text:          "The dance follows a figure-of-______ pattern.",
				CorrectAnswer: "eight, 8",
			},
			{
				Number: 8, Type: models.FillBlank,
				Text:          "Recruits also rely on ______ carried on the dancer's body.",
				CorrectAnswer: "scent, smell",
			},
			{
				Number: 9, Type: models.Matching,
				Text:          "Match the researcher to the achievement: decoding the dance.",
				CorrectAnswer: "von frisch",
			},
			{
				Number: 10, Type: models.Matching,
				Text:          "Match the dance feature to the information it conveys: waggle duration.",
				CorrectAnswer: "distance",
			},
			{
				Number: 11, Type: models.WrittenAnswer,
				Text:          "In which decade was the dance decoded?",
				CorrectAnswer: "1940s",
			},
			{
				Number: 12, Type: models.WrittenAnswer,
				Text:          "What reference point does the dance angle use inside the hive?",
				CorrectAnswer: "gravity",
			},
			{
				Number: 13, Type: models.MultipleChoice,
				Text:          "The passage describes the waggle dance as an example of what?",
				Options:       mcqOptions("Instinctive aggression", "Symbolic communication", "Seasonal migration", "Territorial marking"),
				CorrectAnswer: "B",
			},
		},
	}
}
