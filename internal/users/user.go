package users

import (
	"errors"
	"time"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityVery      ActivityLevel = "very"
	ActivityExtra     ActivityLevel = "extra"
)

type User struct {
	ID            int           `json:"id"`
	Email         string        `json:"email"`
	PasswordHash  string        `json:"-"`
	Name          string        `json:"name"`
	Age           int           `json:"age"`
	Gender        Gender        `json:"gender"`
	Height        float64       `json:"height"` // cm
	Weight        float64       `json:"weight"` // kg
	ActivityLevel ActivityLevel `json:"activityLevel"`
	FitnessGoal   string        `json:"fitnessGoal,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

func (al ActivityLevel) Valid() bool {
	switch al {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityVery, ActivityExtra:
		return true
	}
	return false
}

func (u *User) Validate() error {
	if u.Email == "" {
		return errors.New("email empty")
	}
	if u.Name == "" {
		return errors.New("name empty")
	}
	if u.Age <= 0 {
		return errors.New("age invalid")
	}
	if !u.Gender.Valid() {
		return errors.New("gender invalid")
	}
	if u.Height <= 0 {
		return errors.New("height invalid")
	}
	if u.Weight <= 0 {
		return errors.New("weight invalid")
	}
	if !u.ActivityLevel.Valid() {
		return errors.New("activity level invalid")
	}
	return nil
}
