package seed

import (
	"context"
	"errors"
	"fmt"

	"baladiya/internal/store"
	"baladiya/pkg/types"

	"golang.org/x/crypto/bcrypt"
)

type seedUser struct {
	FullName string
	CIN      string
	Password string
	Role     types.Role
}

var seedUsers = []seedUser{
	{FullName: "Admin User", CIN: "admin", Password: "admin", Role: types.RoleAdmin},
	{FullName: "Ahmed Citizen", CIN: "AB123456", Password: "password", Role: types.RoleCitizen},
}

// Users creates the demo accounts when their CINs are absent. Existing
// accounts are left alone so reseeding never resets passwords.
func Users(ctx context.Context, userRepo *store.UserRepository) (map[string]*types.User, error) {
	created := make(map[string]*types.User, len(seedUsers))

	for _, su := range seedUsers {
		existing, err := userRepo.UserByCIN(ctx, su.CIN)
		if err == nil {
			created[su.CIN] = existing
			continue
		}
		if !errors.Is(err, types.ErrUserNotFound) {
			return nil, fmt.Errorf("failed to look up seed user %s: %w", su.CIN, err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash seed password for %s: %w", su.CIN, err)
		}

		user, err := userRepo.Create(ctx, &types.User{
			FullName: su.FullName,
			CIN:      su.CIN,
			Password: string(hash),
			Role:     su.Role,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create seed user %s: %w", su.CIN, err)
		}

		created[su.CIN] = user
	}

	return created, nil
}
