package exercises

import (
	"strings"
	"time"

	"github.com/2beens/fittrack/internal/store"
)

type Exercise struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	MuscleGroup  *string   `db:"muscle_group" json:"muscle_group"`
	RepsTarget   *string   `db:"reps_target" json:"reps_target"`
	Instructions *string   `db:"instructions" json:"instructions"`
	VideoURL     *string   `db:"video_url" json:"video_url"`
	Description  *string   `db:"description" json:"description"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// NewExercise is the create form. Empty optional fields are stored as null.
type NewExercise struct {
	Name         string  `json:"name" validate:"required"`
	MuscleGroup  *string `json:"muscle_group"`
	RepsTarget   *string `json:"reps_target"`
	Instructions *string `json:"instructions"`
	VideoURL     *string `json:"video_url"`
	Description  *string `json:"description"`
}

func (e NewExercise) values() store.Values {
	return store.Values{
		"name":         strings.TrimSpace(e.Name),
		"muscle_group": emptyToNil(e.MuscleGroup),
		"reps_target":  emptyToNil(e.RepsTarget),
		"instructions": emptyToNil(e.Instructions),
		"video_url":    emptyToNil(e.VideoURL),
		"description":  emptyToNil(e.Description),
	}
}

// ExerciseUpdate is the edit form of both the catalog and the plan view. Fields
// left out are not changed; an optional field sent as "" is cleared.
type ExerciseUpdate struct {
	Name         *string `json:"name" validate:"omitnil,min=1"`
	MuscleGroup  *string `json:"muscle_group"`
	RepsTarget   *string `json:"reps_target"`
	Instructions *string `json:"instructions"`
	VideoURL     *string `json:"video_url"`
	Description  *string `json:"description"`
}

func (u ExerciseUpdate) values() store.Values {
	values := store.Values{}
	if u.Name != nil {
		values["name"] = strings.TrimSpace(*u.Name)
	}
	optional := map[string]*string{
		"muscle_group": u.MuscleGroup,
		"reps_target":  u.RepsTarget,
		"instructions": u.Instructions,
		"video_url":    u.VideoURL,
		"description":  u.Description,
	}
	for col, v := range optional {
		if v != nil {
			values[col] = emptyToNil(v)
		}
	}
	return values
}

func emptyToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}

func (u ExerciseUpdate) IsEmpty() bool {
	return u.Name == nil && u.MuscleGroup == nil && u.RepsTarget == nil &&
		u.Instructions == nil && u.VideoURL == nil && u.Description == nil
}
