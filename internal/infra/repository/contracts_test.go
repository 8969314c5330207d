package repository

import (
	domainAppointment "github.com/BruksfildServices01/venue-site/internal/domain/appointment"
	domainGame "github.com/BruksfildServices01/venue-site/internal/domain/game"
	domainHallOfShame "github.com/BruksfildServices01/venue-site/internal/domain/hallofshame"
	domainUser "github.com/BruksfildServices01/venue-site/internal/domain/user"
)

var (
	_ domainAppointment.Repository = (*AppointmentGormRepository)(nil)
	_ domainGame.Repository        = (*GameGormRepository)(nil)
	_ domainHallOfShame.Repository = (*HallOfShameGormRepository)(nil)
	_ domainUser.Repository        = (*UserGormRepository)(nil)
)
