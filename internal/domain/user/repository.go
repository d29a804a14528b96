package user

import "context"

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	List(ctx context.Context) ([]User, error)
	// Upsert inserts the user or refreshes the existing row with the same email.
	Upsert(ctx context.Context, u User) (User, error)
}
