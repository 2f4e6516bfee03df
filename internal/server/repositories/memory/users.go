package memory

import (
	"context"

	"github.com/dmitrijs2005/unielect/internal/common"
	"github.com/dmitrijs2005/unielect/internal/server/models"
	"github.com/google/uuid"
)

type userRepo struct{ *repos }

func (r *userRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	err := r.do(ctx, "users.Create", func(st *state) error {
		for _, u := range st.users.rows {
			if u.Email == user.Email {
				return uniqueViolation("users_email_key")
			}
		}
		if user.ID == "" {
			user.ID = uuid.NewString()
		}
		if user.Status == "" {
			user.Status = models.UserActive
		}
		user.CreatedAt = r.now()
		st.users.put(user.ID, *user)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepo) find(ctx context.Context, op string, match func(models.User) bool) (*models.User, error) {
	var found *models.User
	err := r.do(ctx, op, func(st *state) error {
		st.users.each(func(_ string, u models.User) {
			if found == nil && match(u) {
				found = &u
			}
		})
		if found == nil {
			return common.ErrorNotFound
		}
		return nil
	})
	return found, err
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.find(ctx, "users.GetByID", func(u models.User) bool { return u.ID == id })
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.find(ctx, "users.GetByEmail", func(u models.User) bool { return u.Email == email })
}

func (r *userRepo) ListByRole(ctx context.Context, role models.Role, status models.UserStatus) ([]*models.User, error) {
	var result []*models.User
	err := r.do(ctx, "users.ListByRole", func(st *state) error {
		st.users.each(func(_ string, u models.User) {
			if u.Role == role && u.Status == status {
				result = append(result, &u)
			}
		})
		return nil
	})
	return result, err
}

func (r *userRepo) DeleteByRole(ctx context.Context, role models.Role) ([]string, error) {
	var ids []string
	err := r.do(ctx, "users.DeleteByRole", func(st *state) error {
		st.users.each(func(id string, u models.User) {
			if u.Role == role {
				ids = append(ids, id)
			}
		})
		for _, id := range ids {
			st.users.remove(id)
			st.assignments.removeWhere(func(a models.AdminAssignment) bool { return a.AdminID == id })
		}
		return nil
	})
	return ids, err
}
