package repos

import (
	"adminpanel/internal/domain"

	"github.com/jmoiron/sqlx"
)

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

func (r *UserRepo) List() ([]domain.User, error) {
	var out []domain.User
	err := r.DB.Select(&out, `SELECT id,name,email,role,picture,
	                                 created_at,COALESCE(updated_at,'') AS updated_at
	                            FROM users`)
	return out, err
}

func (r *UserRepo) ByID(id string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT id,name,email,role,picture,
	                            created_at,COALESCE(updated_at,'') AS updated_at
	                       FROM users WHERE id=?`, id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) Create(u *domain.User) error {
	_, err := r.DB.Exec(`INSERT INTO users(id,name,email,role,picture)
	                      VALUES(?,?,?,?,?)`,
		u.ID, u.Name, u.Email, u.Role, u.Picture)
	return err
}

func (r *UserRepo) Update(u *domain.User) error {
	_, err := r.DB.Exec(`UPDATE users SET name=?,email=?,role=?,picture=?,updated_at=CURRENT_TIMESTAMP
	                      WHERE id=?`, u.Name, u.Email, u.Role, u.Picture, u.ID)
	return err
}

func (r *UserRepo) Delete(id string) error {
	_, err := r.DB.Exec(`DELETE FROM users WHERE id=?`, id)
	return err
}

func (r *UserRepo) EmailTaken(email string) (bool, error) {
	var n int
	err := r.DB.Get(&n, `SELECT COUNT(*) FROM users WHERE LOWER(email)=LOWER(?)`, email)
	return n > 0, err
}

// EmailTakenByOther reports whether another row already holds the email,
// so a row updating itself with an unchanged address does not trip.
func (r *UserRepo) EmailTakenByOther(email, id string) (bool, error) {
	var n int
	err := r.DB.Get(&n, `SELECT COUNT(*) FROM users WHERE LOWER(email)=LOWER(?) AND id!=?`, email, id)
	return n > 0, err
}
