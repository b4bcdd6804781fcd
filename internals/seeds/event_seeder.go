// internals/seeds/event_seeder.go
package seeds

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"perseverantia_backend/internals/constants"
	"perseverantia_backend/internals/features/registration/model"
)

type eventSeed struct {
	name        string
	category    string
	description string
	minPart     int
	maxPart     int
	minGrade    int
	maxGrade    int
	gender      model.GenderRequirement
}

var categorySeeds = []struct {
	name        string
	description string
}{
	{constants.CategorySports, "Athletic competitions and physical challenges"},
	{constants.CategoryStage, "Performing arts and creative showcases"},
	{constants.CategoryClassroom, "Academic competitions and intellectual challenges"},
}

var eventSeeds = []eventSeed{
	{"Explorare", constants.CategorySports, "Adventure and exploration challenge", 4, 6, 8, 12, model.GenderAny},
	{"Monopolium", constants.CategorySports, "Strategic board game competition", 3, 5, 8, 12, model.GenderAny},
	{"Football", constants.CategorySports, "Inter-school football tournament", 11, 15, 8, 12, model.GenderAny},
	{"Basketball", constants.CategorySports, "Basketball championship", 5, 8, 8, 12, model.GenderAny},
	{"Gully Cricket", constants.CategorySports, "Street cricket tournament", 6, 10, 8, 12, model.GenderAny},
	{"Table Tennis", constants.CategorySports, "Table tennis singles and doubles", 2, 4, 8, 12, model.GenderAny},
	{"Tug of War", constants.CategorySports, "Traditional tug of war competition", 8, 12, 8, 12, model.GenderAny},
	{"E-Sports", constants.CategorySports, "Video game tournament", 1, 7, 8, 12, model.GenderAny},

	{"Gratia", constants.CategoryStage, "Group dance performance competition", 6, 8, 9, 12, model.GenderAny},
	{"Panache", constants.CategoryStage, "Fashion and style showcase", 5, 7, 8, 12, model.GenderAny},
	{"Symphonia", constants.CategoryStage, "Musical performance competition", 5, 7, 8, 12, model.GenderAny},
	{"Mr. and Mrs. Perseverantia", constants.CategoryStage, "Personality and talent showcase for one male and one female participant", 2, 2, 9, 12, model.GenderMaleFemaleRequired},

	{"Admeta: Category 1", constants.CategoryClassroom, "Academic debate for grades 9-10", 2, 2, 9, 10, model.GenderAny},
	{"Admeta: Category 2", constants.CategoryClassroom, "Academic debate for grades 11-12", 2, 2, 11, 12, model.GenderAny},
	{"Artem", constants.CategoryClassroom, "Art and creativity challenge", 1, 1, 11, 12, model.GenderAny},
	{"Carmen: Category 1", constants.CategoryClassroom, "Poetry and creative writing for grades 9-10", 1, 1, 9, 10, model.GenderAny},
	{"Carmen: Category 2", constants.CategoryClassroom, "Poetry and creative writing for grades 11-12", 1, 1, 11, 12, model.GenderAny},
	{"Fabula", constants.CategoryClassroom, "Storytelling and narrative competition", 4, 10, 9, 12, model.GenderAny},
	{"Fortuna", constants.CategoryClassroom, "Strategy and luck-based games", 2, 3, 9, 12, model.GenderAny},
	{"Codeferno", constants.CategoryClassroom, "Programming and coding competition", 1, 1, 9, 12, model.GenderAny},
	{"Gustatio", constants.CategoryClassroom, "Culinary arts and cooking challenge", 2, 2, 9, 12, model.GenderAny},
	{"Mahim 16", constants.CategoryClassroom, "Local knowledge and trivia", 3, 4, 9, 12, model.GenderAny},
	{"‘Ad’venturium", constants.CategoryClassroom, "Business and entrepreneurship challenge (requires one grade 9-10 and one grade 11-12)", 2, 2, 9, 12, model.GenderAny},
}

// SeedEvents inserts the categories and the event catalog. Reruns are safe:
// existing rows are matched by name and their constraint fields refreshed so
// rule changes land without dropping registrations.
func SeedEvents(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		categoryIDs := map[string]uuid.UUID{}
		for _, c := range categorySeeds {
			desc := c.description
			var cat model.EventCategoryModel
			err := tx.Where("event_category_name = ?", c.name).
				Attrs(model.EventCategoryModel{
					EventCategoryName:        c.name,
					EventCategoryDescription: &desc,
				}).
				FirstOrCreate(&cat).Error
			if err != nil {
				return err
			}
			categoryIDs[c.name] = cat.EventCategoryID
		}

		for _, e := range eventSeeds {
			desc := e.description
			seed := model.EventModel{
				EventName:              e.name,
				EventCategoryID:        categoryIDs[e.category],
				EventDescription:       &desc,
				EventMinParticipants:   e.minPart,
				EventMaxParticipants:   e.maxPart,
				EventMinGrade:          e.minGrade,
				EventMaxGrade:          e.maxGrade,
				EventGenderRequirement: e.gender,
				EventIsActive:          true,
			}

			var existing model.EventModel
			err := tx.Where("event_name = ?", e.name).First(&existing).Error
			switch {
			case err == gorm.ErrRecordNotFound:
				if err := tx.Create(&seed).Error; err != nil {
					return err
				}
			case err != nil:
				return err
			default:
				updates := map[string]any{
					"event_category_id":        seed.EventCategoryID,
					"event_description":        seed.EventDescription,
					"event_min_participants":   seed.EventMinParticipants,
					"event_max_participants":   seed.EventMaxParticipants,
					"event_min_grade":          seed.EventMinGrade,
					"event_max_grade":          seed.EventMaxGrade,
					"event_gender_requirement": seed.EventGenderRequirement,
				}
				if err := tx.Model(&existing).Updates(updates).Error; err != nil {
					return err
				}
			}
		}

		log.Printf("✅ Seeded %d categories and %d events", len(categorySeeds), len(eventSeeds))
		return nil
	})
}
