package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/wellfit/internal/models"
	"github.com/julianstephens/wellfit/internal/validation"
)

type authAction string

const (
	actionLogin    authAction = "login"
	actionRegister authAction = "register"
)

// LoginFormModel backs the login/register form.
type LoginFormModel struct {
	Action   authAction
	Email    string
	Password string
}

func (f *LoginFormModel) Credentials() models.Credentials {
	return models.Credentials{Email: f.Email, Password: f.Password}
}

// GoalsFormModel holds the raw text of each goal field.
type GoalsFormModel struct {
	Water   string
	Sleep   string
	Workout string
}

func newGoalsFormModel(goals models.Goals) *GoalsFormModel {
	return &GoalsFormModel{
		Water:   strconv.Itoa(goals.Get(models.HabitWater)),
		Sleep:   strconv.Itoa(goals.Get(models.HabitSleep)),
		Workout: strconv.Itoa(goals.Get(models.HabitWorkout)),
	}
}

func (f *GoalsFormModel) Fields() map[string]string {
	return map[string]string{
		string(models.HabitWater):   f.Water,
		string(models.HabitSleep):   f.Sleep,
		string(models.HabitWorkout): f.Workout,
	}
}

func validateGoalField(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if validation.ParseGoalValue(s) < 1 {
		return fmt.Errorf("goal must be a whole number of at least 1")
	}
	return nil
}

// NewLoginForm creates the form shown while no session is held
func NewLoginForm(fm *LoginFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[authAction]().
				Title("Account").
				Options(
					huh.NewOption("Log in", actionLogin),
					huh.NewOption("Create account", actionRegister),
				).
				Value(&fm.Action),
			huh.NewInput().
				Title("Email").
				Value(&fm.Email).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("email is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&fm.Password).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("password is required")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewGoalsForm creates the goal editing form. Blank fields keep their goal.
func NewGoalsForm(fm *GoalsFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(models.HabitWater.Title()+" (glasses)").
				Value(&fm.Water).
				Validate(validateGoalField),
			huh.NewInput().
				Title(models.HabitSleep.Title()+" (hours)").
				Value(&fm.Sleep).
				Validate(validateGoalField),
			huh.NewInput().
				Title(models.HabitWorkout.Title()+" (sessions)").
				Value(&fm.Workout).
				Validate(validateGoalField),
		),
	).WithTheme(huh.ThemeDracula())
}
