package commands

import (
	"context"

	"hotel-ordering/internal/domain/owner"
	"hotel-ordering/internal/infra"
	"hotel-ordering/internal/pkg/errs"
	"hotel-ordering/internal/pkg/jwt"
	"hotel-ordering/internal/pkg/password"

	"github.com/google/uuid"
)

type LoginResult struct {
	Token   string
	OwnerID uuid.UUID
	HotelID uuid.UUID
	Role    string
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	ownerRepo  OwnerReader
	jwtService *jwt.Service
}

func NewAuthCommands(ownerRepo OwnerReader, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		ownerRepo:  ownerRepo,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	record, err := a.ownerRepo.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same error as a wrong password so probing for accounts yields nothing.
			return nil, errs.Mark(err, errs.ErrInvalidCredentials)
		}
		return nil, errs.Mark(err, errs.ErrPersistenceFailure)
	}

	if err := password.ComparePassword(record.PasswordHash, plainPassword); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	if !record.HotelActive {
		return nil, errs.ErrHotelInactive
	}

	role, err := owner.NewRole(record.Role)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	token, err := a.jwtService.GenerateToken(record.ID, record.HotelID, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to sign token")
	}

	return &LoginResult{
		Token:   token,
		OwnerID: record.ID,
		HotelID: record.HotelID,
		Role:    role.String(),
	}, nil
}
