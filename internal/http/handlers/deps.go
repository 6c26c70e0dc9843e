package handlers

import (
	"github.com/jmoiron/sqlx"

	"phonestore/internal/config"
	"phonestore/internal/repos"
	"phonestore/internal/services"
)

type Deps struct {
	PhoneHandler  *PhoneHandler
	HealthHandler *HealthHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	phoneRepo := repos.NewPhoneRepo(db)
	phoneSvc := services.NewPhoneService(phoneRepo)

	return &Deps{
		PhoneHandler:  &PhoneHandler{Phones: phoneSvc},
		HealthHandler: &HealthHandler{},
	}
}
